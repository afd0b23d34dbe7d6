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

// Package prefixed is an in-tree fork of x-cray/logrus-prefixed-formatter,
// kept local so the console log format doesn't drift across logrus upgrades.
package prefixed

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

const defaultTimestampFormat = "2006-01-02 15:04:05"

// TextFormatter formats logrus entries as "TIME [LEVEL] message key=val ...".
type TextFormatter struct {
	// ForceColors forces colored output even when not attached to a tty.
	ForceColors bool
	// DisableColors disables colored output entirely.
	DisableColors bool
	// FullTimestamp has no effect: Format always prints the full timestamp.
	FullTimestamp bool
	// TimestampFormat is the timestamp layout; empty means defaultTimestampFormat.
	TimestampFormat string
	// DisableSorting leaves field keys in map iteration order instead of sorting them.
	DisableSorting bool

	once sync.Once
	isTerminal bool
}

func (f *TextFormatter) init() {
	f.isTerminal = isatty.IsTerminal(uintptr(1))
	if f.TimestampFormat == "" {
		f.TimestampFormat = defaultTimestampFormat
	}
}

func (f *TextFormatter) useColors() bool {
	if f.DisableColors {
		return false
	}
	return f.ForceColors || f.isTerminal
}

var levelColors = map[logrus.Level]int{
	logrus.DebugLevel: 37, // white
	logrus.InfoLevel:  36, // cyan
	logrus.WarnLevel:  33, // yellow
	logrus.ErrorLevel: 31, // red
	logrus.FatalLevel: 31,
	logrus.PanicLevel: 31,
}

// Format renders a single logrus entry.
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	f.once.Do(f.init)

	var b bytes.Buffer

	timestamp := entry.Time.Format(f.TimestampFormat)
	level := strings.ToUpper(entry.Level.String())

	if f.useColors() {
		color := levelColors[entry.Level]
		fmt.Fprintf(&b, "\x1b[%dm%s\x1b[0m [%s] %s", color, timestamp, level, entry.Message)
	} else {
		fmt.Fprintf(&b, "%s [%s] %s", timestamp, level, entry.Message)
	}

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	if !f.DisableSorting {
		sort.Strings(keys)
	}
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')

	return b.Bytes(), nil
}
