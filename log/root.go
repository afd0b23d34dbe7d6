// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/metabasenet/metabasenet/conf"
	prefixed "github.com/metabasenet/metabasenet/log/logrus-prefixed-formatter"
	"github.com/sirupsen/logrus"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

var (
	root = &logger{ctx: []interface{}{}, mapPool: sync.Pool{
		New: func() any {
			return map[string]interface{}{}
		},
	}}
	terminal = logrus.New()

	// rotationManager enforces the total-on-disk-size cap across this
	// process's lumberjack-rotated log files, once Init starts it.
	rotationManager *LogManager
)

type Lvl int

const skipLevel = 3

const (
	LvlCrit Lvl = iota
	LvlFatal
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

// logManagerCheckInterval is how often a running LogManager re-scans its
// directory in production; tests inject a much shorter interval.
const logManagerCheckInterval = time.Hour

// LogManager deletes the oldest rotated log files once the combined size of
// every *.log/*.log.gz file under logDir exceeds totalSizeCap. lumberjack
// already bounds each file's size and backup count; LogManager adds the one
// thing it doesn't do on its own — a ceiling on the directory as a whole,
// for deployments that hand this process a fixed log volume.
type LogManager struct {
	logDir        string
	totalSizeCap  int64 // bytes
	checkInterval time.Duration
	sink          Sink
	cancel        context.CancelFunc
	mu            sync.Mutex
}

// NewLogManager builds a LogManager that reports what it removes through
// sink instead of the package-level convenience functions, so the cleanup
// loop is a plain Sink consumer like every other long-running component in
// this tree (nil sink falls back to Discard).
func NewLogManager(logDir string, totalSizeCapMB int, checkInterval time.Duration, sink Sink) *LogManager {
	if sink == nil {
		sink = Discard
	}
	return &LogManager{
		logDir:        logDir,
		totalSizeCap:  int64(totalSizeCapMB) * 1024 * 1024,
		checkInterval: checkInterval,
		sink:          sink,
	}
}

// Start launches the background cleanup loop. A zero or negative
// totalSizeCap means no limit, and Start is a no-op.
func (m *LogManager) Start() {
	if m.totalSizeCap <= 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	go func() {
		ticker := time.NewTicker(m.checkInterval)
		defer ticker.Stop()

		m.cleanup()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.cleanup()
			}
		}
	}()
}

// Stop cancels the background cleanup loop, if one was started.
func (m *LogManager) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
}

// cleanup removes the oldest log files until the directory's total size is
// back under the cap, or only one file remains (the one lumberjack is
// actively writing to, which is never removed).
func (m *LogManager) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	files, err := m.getLogFiles()
	if err != nil {
		return
	}

	var totalSize int64
	for _, f := range files {
		totalSize += f.size
	}

	for totalSize > m.totalSizeCap && len(files) > 1 {
		oldest := files[0]
		if err := os.Remove(oldest.path); err != nil {
			break
		}
		totalSize -= oldest.size
		files = files[1:]
		m.sink.Info("log cleanup removed file", "file", filepath.Base(oldest.path), "size_mb", oldest.size/1024/1024)
	}
}

type logFileInfo struct {
	path    string
	size    int64
	modTime time.Time
}

// getLogFiles lists every *.log and *.log.gz file under logDir, oldest
// first.
func (m *LogManager) getLogFiles() ([]logFileInfo, error) {
	var files []logFileInfo

	err := filepath.Walk(m.logDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext == ".log" || ext == ".gz" {
			files = append(files, logFileInfo{
				path:    path,
				size:    info.Size(),
				modTime: info.ModTime(),
			})
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.Before(files[j].modTime)
	})

	return files, nil
}

// Init wires up the process-wide logrus output: console-only when
// config.LogFile is empty, otherwise a lumberjack-rotated file under
// nodeConfig.DataPath/log (optionally mirrored to the console), with a
// LogManager started when config.TotalSizeCap bounds the directory's total
// size beyond what lumberjack's own MaxBackups/MaxAge already enforce.
func Init(nodeConfig conf.NodeConfig, config conf.LoggerConfig) {
	_ = config.Validate()

	formatter := new(prefixed.TextFormatter)
	formatter.TimestampFormat = "2006-01-02 15:04:05"
	formatter.FullTimestamp = true
	formatter.DisableColors = false

	lvl, _ := logrus.ParseLevel(config.Level)

	if config.LogFile == "" {
		terminal.SetFormatter(formatter)
		terminal.SetLevel(lvl)
		terminal.SetOutput(os.Stdout)
		return
	}

	logDir := filepath.Join(nodeConfig.DataPath, "log")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		return
	}

	logPath := filepath.Join(logDir, config.LogFile)

	lj := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
		LocalTime:  config.LocalTime,
	}

	var fileFormatter logrus.Formatter
	if config.JSONFormat {
		jsonFormatter := new(logrus.JSONFormatter)
		jsonFormatter.TimestampFormat = "2006-01-02 15:04:05"
		fileFormatter = jsonFormatter
	} else {
		textFormatter := new(prefixed.TextFormatter)
		textFormatter.TimestampFormat = "2006-01-02 15:04:05"
		textFormatter.FullTimestamp = true
		textFormatter.DisableColors = true
		fileFormatter = textFormatter
	}

	terminal.SetFormatter(fileFormatter)
	terminal.SetLevel(lvl)

	if config.Console {
		terminal.SetOutput(io.MultiWriter(lj, os.Stdout))
	} else {
		terminal.SetOutput(lj)
	}

	if config.TotalSizeCap > 0 {
		rotationManager = NewLogManager(logDir, config.TotalSizeCap, logManagerCheckInterval, Root())
		rotationManager.Start()
	}

	Info("logger initialized",
		"file", logPath,
		"level", config.Level,
		"max_size_mb", config.MaxSize,
		"max_backups", config.MaxBackups,
		"max_age_days", config.MaxAge,
		"compress", config.Compress,
		"total_size_cap_mb", config.TotalSizeCap,
	)
}

// Close stops the background log cleanup loop, if Init started one.
func Close() {
	if rotationManager != nil {
		rotationManager.Stop()
		rotationManager = nil
	}
}

// New returns a new logger with the given context.
// New is a convenient alias for Root().New
func New(ctx ...interface{}) Logger {
	return root.New(ctx...)
}

// Root returns the root logger
func Root() Logger {
	return root
}

// Trace is a convenient alias for Root().Trace
func Trace(msg string, ctx ...interface{}) {
	root.write(msg, LvlTrace, ctx, skipLevel)
}

func Tracef(msg string, ctx ...interface{}) {
	root.write(fmt.Sprintf(msg, ctx...), LvlTrace, []interface{}{}, skipLevel)
}

// Debug is a convenient alias for Root().Debug
func Debug(msg string, ctx ...interface{}) {
	root.write(msg, LvlDebug, ctx, skipLevel)
}

func Debugf(msg string, ctx ...interface{}) {
	root.write(fmt.Sprintf(msg, ctx...), LvlDebug, []interface{}{}, skipLevel)
}

// Info is a convenient alias for Root().Info
func Info(msg string, ctx ...interface{}) {
	root.write(msg, LvlInfo, ctx, skipLevel)
}

// Infof is a convenient alias for Root().Info
func Infof(msg string, ctx ...interface{}) {
	root.write(fmt.Sprintf(msg, ctx...), LvlInfo, []interface{}{}, skipLevel)
}

// Warn is a convenient alias for Root().Warn
func Warn(msg string, ctx ...interface{}) {
	root.write(msg, LvlWarn, ctx, skipLevel)
}

// Warnf is a convenient alias for Root().Warn
func Warnf(msg string, ctx ...interface{}) {
	root.write(fmt.Sprintf(msg, ctx...), LvlWarn, []interface{}{}, skipLevel)
}

// Error is a convenient alias for Root().Error
func Error(msg string, ctx ...interface{}) {
	root.write(msg, LvlError, ctx, skipLevel)
}

// Errorf is a convenient alias for Root().Error
func Errorf(msg string, ctx ...interface{}) {
	root.write(fmt.Sprintf(msg, ctx...), LvlError, []interface{}{}, skipLevel)
}

// Crit is a convenient alias for Root().Crit
func Crit(msg string, ctx ...interface{}) {
	root.write(msg, LvlCrit, ctx, skipLevel)
	os.Exit(1)
}

// Critf is a convenient alias for Root().Crit
func Critf(msg string, ctx ...interface{}) {
	root.write(fmt.Sprintf(msg, ctx...), LvlCrit, []interface{}{}, skipLevel)
	os.Exit(1)
}

// A Logger writes key/value pairs through the package's logrus logger
type Logger interface {
	// New returns a new Logger that has this logger's context plus the given context
	New(ctx ...interface{}) Logger

	// Log a message at the given level with context key/value pairs
	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
}

// TerminalStringer is an analogous interface to the stdlib stringer, allowing
// own types to have custom shortened serialization formats when printed to the
// screen.
type TerminalStringer interface {
	TerminalString() string
}
