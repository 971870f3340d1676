//
// prg_test.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package engine

import (
	"testing"
)

func TestPRGDeterministic(t *testing.T) {
	seed := [32]byte{1, 2, 3}

	a, err := newPRG(&seed)
	if err != nil {
		t.Fatalf("newPRG failed: %s", err)
	}
	b, err := newPRG(&seed)
	if err != nil {
		t.Fatalf("newPRG failed: %s", err)
	}

	for i := 0; i < 16; i++ {
		va, vb := a.uint64(), b.uint64()
		if va != vb {
			t.Fatalf("round %d: %d != %d", i, va, vb)
		}
	}
}

func TestPRGFreshSeed(t *testing.T) {
	a, err := newPRG(nil)
	if err != nil {
		t.Fatalf("newPRG failed: %s", err)
	}
	b, err := newPRG(nil)
	if err != nil {
		t.Fatalf("newPRG failed: %s", err)
	}

	same := true
	for i := 0; i < 8; i++ {
		if a.uint64() != b.uint64() {
			same = false
		}
	}
	if same {
		t.Errorf("independent generators produced identical output")
	}
}
