// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package log

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metabasenet/metabasenet/conf"
)

// recordingSink captures every message logged through it, so tests can
// assert on what LogManager reports without parsing logrus output.
type recordingSink struct {
	mu   sync.Mutex
	msgs []string
}

func (s *recordingSink) record(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
}

func (s *recordingSink) Trace(msg string, _ ...interface{}) { s.record(msg) }
func (s *recordingSink) Debug(msg string, _ ...interface{}) { s.record(msg) }
func (s *recordingSink) Info(msg string, _ ...interface{})  { s.record(msg) }
func (s *recordingSink) Warn(msg string, _ ...interface{})  { s.record(msg) }
func (s *recordingSink) Error(msg string, _ ...interface{}) { s.record(msg) }
func (s *recordingSink) Crit(msg string, _ ...interface{})  { s.record(msg) }

func (s *recordingSink) messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.msgs))
	copy(out, s.msgs)
	return out
}

func writeLogFile(t *testing.T, dir, name string, size int, mtime time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func dirEntryNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestLevelOrderingMatchesVerbosityFromQuietToChatty(t *testing.T) {
	assert.Less(t, int(LvlCrit), int(LvlFatal))
	assert.Less(t, int(LvlFatal), int(LvlError))
	assert.Less(t, int(LvlError), int(LvlWarn))
	assert.Less(t, int(LvlWarn), int(LvlInfo))
	assert.Less(t, int(LvlInfo), int(LvlDebug))
	assert.Less(t, int(LvlDebug), int(LvlTrace))
}

func TestLoggerSatisfiesSinkAndLoggerInterfaces(t *testing.T) {
	var _ Sink = &logger{}
	var _ Logger = &logger{}
	var _ Sink = Root()
	assert.Same(t, Root(), Default().(Logger))
}

func TestNewBindsContextOntoChildLoggers(t *testing.T) {
	scoped := New("module", "ctsdb")
	require.NotNil(t, scoped)

	child := scoped.New("op", "flush")
	require.NotNil(t, child)
	child.Info("flushed chunk", "bytes", 128)
}

func TestLogManagerCleansOldestFilesUntilUnderCap(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeLogFile(t, dir, "a.log", 100, now.Add(-3*time.Hour))
	writeLogFile(t, dir, "b.log", 100, now.Add(-2*time.Hour))
	writeLogFile(t, dir, "c.log", 100, now.Add(-1*time.Hour))

	sink := &recordingSink{}
	manager := NewLogManager(dir, 0, time.Hour, sink)
	manager.totalSizeCap = 150 // MB granularity is too coarse for this fixture
	manager.cleanup()

	names := dirEntryNames(t, dir)
	assert.NotContains(t, names, "a.log", "oldest file should have been removed first")
	assert.NotContains(t, names, "b.log", "second-oldest file should also clear the cap")
	assert.Contains(t, names, "c.log", "newest file must survive")
	assert.NotEmpty(t, sink.messages(), "cleanup must report every file it removes")
}

func TestLogManagerNeverRemovesTheLastRemainingFile(t *testing.T) {
	dir := t.TempDir()
	writeLogFile(t, dir, "only.log", 100, time.Now())

	manager := NewLogManager(dir, 0, time.Hour, Discard)
	manager.totalSizeCap = 1 // far under the single file's size
	manager.cleanup()

	assert.Len(t, dirEntryNames(t, dir), 1)
}

func TestLogManagerWithZeroCapNeverStartsACleanupLoop(t *testing.T) {
	manager := NewLogManager(t.TempDir(), 0, time.Millisecond, Discard)
	manager.Start()
	assert.Nil(t, manager.cancel)
	assert.NotPanics(t, manager.Stop)
}

func TestNewLogManagerFallsBackToDiscardWhenSinkIsNil(t *testing.T) {
	manager := NewLogManager(t.TempDir(), 10, time.Hour, nil)
	assert.Equal(t, Discard, manager.sink)
}

func TestInitConsoleOnlyDoesNotCreateALogDirectory(t *testing.T) {
	dataPath := t.TempDir()
	Init(conf.NodeConfig{DataPath: dataPath}, conf.LoggerConfig{Level: "info", Console: true})
	Info("console only")

	_, err := os.Stat(filepath.Join(dataPath, "log"))
	assert.True(t, os.IsNotExist(err), "console-only Init must not create a log directory")
}

func TestInitWithFileStartsRotationManagerWhenCapped(t *testing.T) {
	dataPath := t.TempDir()
	Init(conf.NodeConfig{DataPath: dataPath}, conf.LoggerConfig{
		LogFile:      "node.log",
		Level:        "debug",
		MaxSize:      10,
		MaxBackups:   3,
		MaxAge:       1,
		Console:      false,
		JSONFormat:   true,
		TotalSizeCap: 50,
	})
	defer Close()

	Info("node starting", "component", "test")

	logDir := filepath.Join(dataPath, "log")
	_, err := os.Stat(logDir)
	require.NoError(t, err, "file-backed Init must create the log directory")
	require.NotNil(t, rotationManager, "a positive TotalSizeCap must start a LogManager")
}

func TestInitWithFileLeavesRotationManagerNilWhenUncapped(t *testing.T) {
	dataPath := t.TempDir()
	Init(conf.NodeConfig{DataPath: dataPath}, conf.LoggerConfig{
		LogFile: "node.log",
		Level:   "info",
		MaxSize: 10,
	})
	defer Close()

	assert.Nil(t, rotationManager)
}

func TestCloseStopsRotationManagerAndIsIdempotent(t *testing.T) {
	dataPath := t.TempDir()
	Init(conf.NodeConfig{DataPath: dataPath}, conf.LoggerConfig{
		LogFile:      "node.log",
		Level:        "info",
		MaxSize:      10,
		TotalSizeCap: 10,
	})
	require.NotNil(t, rotationManager)

	Close()
	assert.Nil(t, rotationManager)
	assert.NotPanics(t, Close, "closing an already-closed logger must be a no-op")
}

func TestAllLevelsAndFormattedVariantsWriteWithoutPanicking(t *testing.T) {
	dataPath := t.TempDir()
	Init(conf.NodeConfig{DataPath: dataPath}, conf.LoggerConfig{
		LogFile:    "levels.log",
		Level:      "trace",
		MaxSize:    10,
		Console:    false,
		JSONFormat: true,
	})
	defer Close()

	assert.NotPanics(t, func() {
		Trace("trace message")
		Debug("debug message")
		Info("info message")
		Warn("warn message")
		Error("error message")

		Tracef("trace %s", "formatted")
		Debugf("debug %s", "formatted")
		Infof("info %s", "formatted")
		Warnf("warn %s", "formatted")
		Errorf("error %s", "formatted")

		Info("with context", "key1", "value1", "key2", 123)
	})
}

func TestCtxToArrayFlattensKeyValuePairs(t *testing.T) {
	ctx := Ctx{"key1": "value1", "key2": 123}
	assert.Len(t, ctx.toArray(), 4)
}

func TestNormalizePadsOddLengthContextWithNil(t *testing.T) {
	ctx := []interface{}{"key1", "value1", "key2"}
	normalized := normalize(ctx)
	require.Len(t, normalized, 4)
	assert.Nil(t, normalized[3])
}

func BenchmarkLogInfoToFile(b *testing.B) {
	dataPath := b.TempDir()
	Init(conf.NodeConfig{DataPath: dataPath}, conf.LoggerConfig{
		LogFile:    "bench.log",
		Level:      "info",
		MaxSize:    100,
		Console:    false,
		JSONFormat: true,
	})
	defer Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Info("benchmark message", "iteration", i)
	}
}
