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
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Ctx is a shorthand for passing a bag of key/value pairs into a log call
// instead of a flat variadic list.
type Ctx map[string]interface{}

// toArray flattens c into the key1, value1, key2, value2, ... form the
// write path expects.
func (c Ctx) toArray() []interface{} {
	arr := make([]interface{}, 0, len(c)*2)
	for k, v := range c {
		arr = append(arr, k, v)
	}
	return arr
}

// normalize pads an odd-length context slice with a trailing nil so it can
// always be walked two elements at a time.
func normalize(ctx []interface{}) []interface{} {
	if len(ctx)%2 != 0 {
		ctx = append(ctx, nil)
	}
	return ctx
}

// logger implements Logger on top of the package-level logrus instance. Each
// New() call returns a logger carrying an extra slice of bound key/value
// pairs, so callers can build a scoped logger once (log.New("module", "ctsdb"))
// and reuse it without repeating the context on every call.
type logger struct {
	ctx     []interface{}
	mapPool sync.Pool
}

var lvlToLogrus = map[Lvl]logrus.Level{
	LvlCrit:  logrus.FatalLevel,
	LvlFatal: logrus.FatalLevel,
	LvlError: logrus.ErrorLevel,
	LvlWarn:  logrus.WarnLevel,
	LvlInfo:  logrus.InfoLevel,
	LvlDebug: logrus.DebugLevel,
	LvlTrace: logrus.TraceLevel,
}

func (l *logger) fields(ctx []interface{}) logrus.Fields {
	m := l.mapPool.Get().(map[string]interface{})
	defer func() {
		for k := range m {
			delete(m, k)
		}
		l.mapPool.Put(m)
	}()

	merge := func(pairs []interface{}) {
		for i := 0; i+1 < len(pairs); i += 2 {
			key, ok := pairs[i].(string)
			if !ok {
				key = fmt.Sprintf("%v", pairs[i])
			}
			m[key] = pairs[i+1]
		}
	}
	merge(l.ctx)
	merge(ctx)

	out := make(logrus.Fields, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (l *logger) write(msg string, lvl Lvl, ctx []interface{}, skip int) {
	entry := terminal.WithFields(l.fields(ctx))
	level, ok := lvlToLogrus[lvl]
	if !ok {
		level = logrus.InfoLevel
	}
	entry.Log(level, msg)
	if lvl == LvlCrit {
		entry.Log(logrus.FatalLevel, msg)
	}
}

// New returns a Logger carrying this logger's bound context plus ctx.
func (l *logger) New(ctx ...interface{}) Logger {
	child := make([]interface{}, 0, len(l.ctx)+len(ctx))
	child = append(child, l.ctx...)
	child = append(child, ctx...)
	return &logger{ctx: child, mapPool: l.mapPool}
}

func (l *logger) Trace(msg string, ctx ...interface{}) { l.write(msg, LvlTrace, ctx, skipLevel) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(msg, LvlDebug, ctx, skipLevel) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(msg, LvlInfo, ctx, skipLevel) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(msg, LvlWarn, ctx, skipLevel) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(msg, LvlError, ctx, skipLevel) }
func (l *logger) Crit(msg string, ctx ...interface{})  { l.write(msg, LvlCrit, ctx, skipLevel) }
