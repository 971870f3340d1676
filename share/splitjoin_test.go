//
// splitjoin_test.go
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

func TestSplitJoinRoundTrip(t *testing.T) {
	for _, bits := range []int{1, 8, 13, 32} {
		b := newBackend(t)

		value := uint64(0x5a5a5a5a) & share.Mask(bits)
		x, err := b.InputBoolean(bits, value)
		require.NoError(t, err)

		parts := x.Split()
		require.Len(t, parts, bits)
		for _, p := range parts {
			require.Equal(t, 1, p.BitLength())
		}

		joined, err := share.Join(parts)
		require.NoError(t, err)
		require.Equal(t, bits, joined.BitLength())

		// Split and Join are structural; no gate is added.
		require.Equal(t, 1, b.Register().NumGates())

		require.Equal(t, value, reveal(t, b, joined))
	}
}

func TestJoinReorders(t *testing.T) {
	b := newBackend(t)

	x, err := b.InputBoolean(4, 0b0011)
	require.NoError(t, err)

	parts := x.Split()
	reversed := []share.Handle{parts[3], parts[2], parts[1], parts[0]}
	joined, err := share.Join(reversed)
	require.NoError(t, err)

	require.Equal(t, uint64(0b1100), reveal(t, b, joined))
}

func TestSplitArithmetic(t *testing.T) {
	b := newBackend(t)

	x, err := engine.InputArithmetic(b, uint16(7))
	require.NoError(t, err)
	y, err := engine.InputArithmetic(b, uint16(9))
	require.NoError(t, err)

	// An arithmetic vector splits into ring elements, not bits.
	joined, err := share.Join([]share.Handle{x, y})
	require.NoError(t, err)
	require.Equal(t, 16, joined.BitLength())
	require.Len(t, joined.Share().Wires(), 2)

	parts := joined.Split()
	require.Len(t, parts, 2)

	sum, err := parts[0].Add(parts[1])
	require.NoError(t, err)
	require.Equal(t, uint64(16), reveal(t, b, sum))
}

func TestRevealJoinedArithmetic(t *testing.T) {
	b := newBackend(t)

	x, err := engine.InputArithmetic(b, uint16(7))
	require.NoError(t, err)
	y, err := engine.InputArithmetic(b, uint16(9))
	require.NoError(t, err)

	joined, err := share.Join([]share.Handle{x, y})
	require.NoError(t, err)
	out, err := joined.Out(share.AllParties)
	require.NoError(t, err)
	require.NoError(t, b.Run())

	// Revealing a joined vector keeps every element.
	values, err := b.Uint64s(out)
	require.NoError(t, err)
	require.Equal(t, []uint64{7, 9}, values)
}

func TestSplitConstant(t *testing.T) {
	b := newBackend(t)

	c, err := engine.ConstantArithmetic(b, uint8(5))
	require.NoError(t, err)

	parts := c.Split()
	require.Len(t, parts, 1)
	require.Equal(t, share.Constant, parts[0].Protocol())
}

func TestJoinErrors(t *testing.T) {
	b := newBackend(t)

	_, err := share.Join(nil)
	require.ErrorIs(t, err, share.ErrEmptyInput)

	bits, err := b.InputBoolean(2, 1)
	require.NoError(t, err)
	bmr, err := b.InputBMR(2, 1)
	require.NoError(t, err)
	_, err = share.Join([]share.Handle{bits, bmr})
	require.ErrorIs(t, err, share.ErrProtocolMismatch)

	c, err := engine.ConstantArithmetic(b, uint8(5))
	require.NoError(t, err)
	_, err = share.Join([]share.Handle{c, c})
	require.ErrorIs(t, err, share.ErrUnsupportedOperation)
}
