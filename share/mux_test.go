//
// mux_test.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sharelab/mpc/engine"
	"github.com/sharelab/mpc/share"
)

func TestMuxBoolean(t *testing.T) {
	for _, sel := range []uint64{0, 1} {
		b := newBackend(t)

		s, err := b.InputBoolean(1, sel)
		require.NoError(t, err)
		x, err := b.InputBoolean(8, 0xaa)
		require.NoError(t, err)
		y, err := b.InputBoolean(8, 0x55)
		require.NoError(t, err)

		m, err := s.Mux(x, y)
		require.NoError(t, err)
		require.Equal(t, 1, b.Stats().Count(share.GateMux))

		expected := uint64(0x55)
		if sel == 1 {
			expected = 0xaa
		}
		require.Equal(t, expected, reveal(t, b, m))
	}
}

func TestMuxBMR(t *testing.T) {
	for _, sel := range []uint64{0, 1} {
		b := newBackend(t)

		s, err := b.InputBMR(1, sel)
		require.NoError(t, err)
		x, err := b.InputBMR(4, 0b1001)
		require.NoError(t, err)
		y, err := b.InputBMR(4, 0b0110)
		require.NoError(t, err)

		m, err := s.Mux(x, y)
		require.NoError(t, err)

		// BMR derives the selection from XOR and AND gates.
		require.Equal(t, 0, b.Stats().Count(share.GateMux))

		expected := uint64(0b0110)
		if sel == 1 {
			expected = 0b1001
		}
		require.Equal(t, expected, reveal(t, b, m))
	}
}

func TestMuxArithmetic(t *testing.T) {
	b := newBackend(t)

	s, err := engine.InputArithmetic(b, uint8(1))
	require.NoError(t, err)
	x, err := engine.InputArithmetic(b, uint8(2))
	require.NoError(t, err)
	y, err := engine.InputArithmetic(b, uint8(3))
	require.NoError(t, err)

	_, err = s.Mux(x, y)
	require.ErrorIs(t, err, share.ErrNotImplemented)
}

func TestMuxContractViolations(t *testing.T) {
	b := newBackend(t)

	s, err := b.InputBoolean(1, 1)
	require.NoError(t, err)
	wide, err := b.InputBoolean(2, 1)
	require.NoError(t, err)
	x, err := b.InputBoolean(4, 1)
	require.NoError(t, err)
	y, err := b.InputBoolean(3, 1)
	require.NoError(t, err)
	g, err := b.InputBMR(4, 1)
	require.NoError(t, err)

	require.Panics(t, func() {
		s.Mux(x, g)
	})
	require.Panics(t, func() {
		s.Mux(x, y)
	})
	require.Panics(t, func() {
		wide.Mux(x, x)
	})

	// Mismatched SIMD counts never reach execution.
	lanes, err := b.InputBoolean(1, 1, 0)
	require.NoError(t, err)
	require.Panics(t, func() {
		lanes.Mux(x, x)
	})
}
