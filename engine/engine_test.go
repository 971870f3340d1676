//
// engine_test.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package engine

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/sharelab/mpc/share"
)

var testSeed = [32]byte{0x42}

func testBackend(t *testing.T, parties int) *Backend {
	t.Helper()

	b, err := New(Options{
		Parties: parties,
		Seed:    &testSeed,
		Logger:  log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("New failed: %s", err)
	}
	return b
}

func TestNewParties(t *testing.T) {
	b := testBackend(t, 0)
	if b.Parties() != 3 {
		t.Errorf("unexpected default party count: %d", b.Parties())
	}

	if _, err := New(Options{Parties: 1}); err == nil {
		t.Errorf("New accepted a single party")
	}
}

func TestMultiParty(t *testing.T) {
	for parties := 2; parties <= 5; parties++ {
		b := testBackend(t, parties)

		x, err := InputArithmetic(b, uint32(1000))
		if err != nil {
			t.Fatalf("InputArithmetic failed: %s", err)
		}
		y, err := InputArithmetic(b, uint32(2345))
		if err != nil {
			t.Fatalf("InputArithmetic failed: %s", err)
		}
		sum, err := x.Add(y)
		if err != nil {
			t.Fatalf("Add failed: %s", err)
		}
		out, err := sum.Out(share.AllParties)
		if err != nil {
			t.Fatalf("Out failed: %s", err)
		}
		if err := b.Run(); err != nil {
			t.Fatalf("Run failed: %s", err)
		}
		v, err := b.Uint64(out)
		if err != nil {
			t.Fatalf("Uint64 failed: %s", err)
		}
		if v != 3345 {
			t.Errorf("%d parties: unexpected sum %d", parties, v)
		}
	}
}

func TestRunOnce(t *testing.T) {
	b := testBackend(t, 2)

	x, err := b.InputBoolean(1, 1)
	if err != nil {
		t.Fatalf("InputBoolean failed: %s", err)
	}
	out, err := x.Out(share.AllParties)
	if err != nil {
		t.Fatalf("Out failed: %s", err)
	}

	if _, err := b.Uint64(out); err == nil {
		t.Errorf("Uint64 succeeded before Run")
	}
	if err := b.Run(); err != nil {
		t.Fatalf("Run failed: %s", err)
	}
	if err := b.Run(); err == nil {
		t.Errorf("Run succeeded twice")
	}
}

func TestInputMasking(t *testing.T) {
	b := testBackend(t, 3)

	x, err := b.InputBoolean(4, 0xff)
	if err != nil {
		t.Fatalf("InputBoolean failed: %s", err)
	}
	out, err := x.Out(share.AllParties)
	if err != nil {
		t.Fatalf("Out failed: %s", err)
	}
	if err := b.Run(); err != nil {
		t.Fatalf("Run failed: %s", err)
	}
	v, err := b.Uint64(out)
	if err != nil {
		t.Fatalf("Uint64 failed: %s", err)
	}
	if v != 0xf {
		t.Errorf("input not masked to bit length: %#x", v)
	}
}

func TestUnrevealedShare(t *testing.T) {
	b := testBackend(t, 2)

	x, err := InputArithmetic(b, uint8(7))
	if err != nil {
		t.Fatalf("InputArithmetic failed: %s", err)
	}
	if err := b.Run(); err != nil {
		t.Fatalf("Run failed: %s", err)
	}

	// Secret shares never read back as plaintext.
	if _, err := b.Uint64(x); err == nil {
		t.Errorf("Uint64 read an unrevealed share")
	}
}

func TestShareRandomness(t *testing.T) {
	b := testBackend(t, 3)

	x, err := InputArithmetic(b, uint64(12345))
	if err != nil {
		t.Fatalf("InputArithmetic failed: %s", err)
	}
	if err := b.Run(); err != nil {
		t.Fatalf("Run failed: %s", err)
	}

	// The input wire's shares must sum to the plaintext without any
	// single share equaling it.
	st := b.state[x.Share().Wires()[0].ID()]
	var sum uint64
	distinct := false
	for _, s := range st.shares[0] {
		sum += s
		if s != 12345 {
			distinct = true
		}
	}
	if sum != 12345 {
		t.Errorf("shares sum to %d", sum)
	}
	if !distinct {
		t.Errorf("shares are not randomized")
	}
}

func TestReport(t *testing.T) {
	b := testBackend(t, 2)

	x, err := b.InputBoolean(2, 0b01)
	if err != nil {
		t.Fatalf("InputBoolean failed: %s", err)
	}
	y, err := b.InputBoolean(2, 0b11)
	if err != nil {
		t.Fatalf("InputBoolean failed: %s", err)
	}
	and, err := x.And(y)
	if err != nil {
		t.Fatalf("And failed: %s", err)
	}
	if _, err := and.Out(share.AllParties); err != nil {
		t.Fatalf("Out failed: %s", err)
	}

	var buf bytes.Buffer
	b.Report(&buf)

	report := buf.String()
	for _, label := range []string{"Gate", "Total", "AND", "INPUT"} {
		if !strings.Contains(report, label) {
			t.Errorf("report is missing %q:\n%s", label, report)
		}
	}
}
