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

// Package chrono collects the node's clock primitives: wall-clock readers and
// one timestamp display layout, rendered in local time or UTC.
package chrono

import "time"

const displayLayout = "2006-01-02 15:04:05"

// NowUTCSeconds returns the current wall-clock time, seconds since the Unix
// epoch. This is the time unit CTSDB buckets are computed from.
func NowUTCSeconds() int64 {
	return time.Now().UTC().Unix()
}

// NowUTCMillis returns the current wall-clock time in milliseconds.
func NowUTCMillis() int64 {
	return time.Now().UTC().UnixMilli()
}

// FormatLocal renders t using the local time zone.
func FormatLocal(t time.Time) string {
	return t.Local().Format(displayLayout)
}

// FormatUTC renders t using UTC.
func FormatUTC(t time.Time) string {
	return t.UTC().Format(displayLayout)
}

// SecondsToTime converts a CTSDB-style Unix-seconds timestamp back to a
// time.Time in UTC, the inverse of NowUTCSeconds.
func SecondsToTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
