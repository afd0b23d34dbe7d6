// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package chrono

import (
	"testing"
	"time"
)

func TestNowUTCSecondsMonotonic(t *testing.T) {
	a := NowUTCSeconds()
	time.Sleep(5 * time.Millisecond)
	b := NowUTCSeconds()
	if b < a {
		t.Fatalf("expected b >= a, got a=%d b=%d", a, b)
	}
}

func TestSecondsToTimeRoundTrip(t *testing.T) {
	now := NowUTCSeconds()
	tm := SecondsToTime(now)
	if tm.Unix() != now {
		t.Fatalf("round trip mismatch: got %d want %d", tm.Unix(), now)
	}
	if tm.Location() != time.UTC {
		t.Fatal("expected UTC location")
	}
}

func TestFormatUTC(t *testing.T) {
	tm := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	got := FormatUTC(tm)
	want := "2024-01-02 02:04:05"
	if got != want {
		t.Fatalf("FormatUTC = %q, want %q", got, want)
	}
}

func TestNowUTCMillisGranularity(t *testing.T) {
	ms := NowUTCMillis()
	if ms <= 0 {
		t.Fatal("expected positive millis")
	}
}
