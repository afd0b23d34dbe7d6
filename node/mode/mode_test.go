// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package mode

import (
	"testing"

	"github.com/metabasenet/metabasenet/conf"
)

func TestKindsForKnownModes(t *testing.T) {
	for _, m := range []conf.Mode{conf.ModeServer, conf.ModeMiner, conf.ModeClient, conf.ModePurge} {
		kinds, ok := KindsFor(m)
		if !ok {
			t.Fatalf("expected mode %s to be known", m)
		}
		if len(kinds) == 0 {
			t.Fatalf("expected non-empty kind list for %s", m)
		}
		if kinds[0] != KindLock {
			t.Fatalf("expected LOCK to be first for mode %s, got %s", m, kinds[0])
		}
	}
}

func TestKindsForUnknownMode(t *testing.T) {
	if _, ok := KindsFor(conf.Mode("BOGUS")); ok {
		t.Fatal("expected unknown mode to report false")
	}
}

func TestPurgeModeIsLockOnly(t *testing.T) {
	kinds, ok := KindsFor(conf.ModePurge)
	if !ok {
		t.Fatal("expected PURGE to be known")
	}
	if len(kinds) != 1 || kinds[0] != KindLock {
		t.Fatalf("expected PURGE to map to [LOCK] only, got %v", kinds)
	}
}

func TestKindsForReturnsACopy(t *testing.T) {
	a, _ := KindsFor(conf.ModeServer)
	a[0] = "MUTATED"
	b, _ := KindsFor(conf.ModeServer)
	if b[0] != KindLock {
		t.Fatal("expected mutation of returned slice not to affect the registry")
	}
}
