//
// share_test.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share_test

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sharelab/mpc/engine"
	"github.com/sharelab/mpc/share"
)

var testSeed = [32]byte{0x5e, 0xed, 0x01}

func newBackend(t *testing.T) *engine.Backend {
	t.Helper()

	b, err := engine.New(engine.Options{
		Parties: 3,
		Seed:    &testSeed,
		Logger:  log.New(io.Discard, "", 0),
	})
	require.NoError(t, err)
	return b
}

// reveal schedules an output for the handle, runs the circuit, and
// returns the revealed first-lane value.
func reveal(t *testing.T, b *engine.Backend, h share.Handle) uint64 {
	t.Helper()

	out, err := h.Out(share.AllParties)
	require.NoError(t, err)
	require.NoError(t, b.Run())

	v, err := b.Uint64(out)
	require.NoError(t, err)
	return v
}
