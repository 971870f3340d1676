//
// evaluate_test.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sharelab/mpc/circuit"
	"github.com/sharelab/mpc/share"
)

// parseCircuit parses an inline Bristol-format description.
func parseCircuit(t *testing.T, data string) *circuit.Circuit {
	t.Helper()

	circ, err := circuit.Parse(strings.NewReader(data))
	require.NoError(t, err)
	return circ
}

func TestEvaluateXor(t *testing.T) {
	// Bitwise XOR of two 2-bit arguments.
	circ := parseCircuit(t, `2 6
2 2 2

2 1 0 2 4 XOR
2 1 1 3 5 XOR
`)

	b := newBackend(t)

	// Input bits [x0 x1 y0 y1]: x=0b01, y=0b11.
	x, err := b.InputBoolean(4, 0b1101)
	require.NoError(t, err)

	result, err := x.Evaluate(circ)
	require.NoError(t, err)
	require.Equal(t, 2, result.BitLength())

	require.Equal(t, uint64(0b10), reveal(t, b, result))
}

func TestEvaluateAllOps(t *testing.T) {
	// w3=AND(x0,x1) w4=OR(y0,w3) w5=XNOR(w4,x0) w6=INV(w5)
	circ := parseCircuit(t, `4 7
2 1 1

2 1 0 1 3 AND
2 1 2 3 4 OR
2 1 4 0 5 XNOR
1 1 5 6 INV
`)

	for v := uint64(0); v < 8; v++ {
		b := newBackend(t)

		x, err := b.InputBoolean(3, v)
		require.NoError(t, err)

		result, err := x.Evaluate(circ)
		require.NoError(t, err)

		x0, x1, y0 := v&1, (v>>1)&1, (v>>2)&1
		and := x0 & x1
		or := y0 | and
		xnor := 1 &^ (or ^ x0)
		expected := 1 &^ xnor

		require.Equalf(t, expected, reveal(t, b, result), "input %#b", v)
	}
}

func TestEvaluateBMR(t *testing.T) {
	circ := parseCircuit(t, `1 3
2 0 1

2 1 0 1 2 AND
`)

	b := newBackend(t)
	x, err := b.InputBMR(2, 0b11)
	require.NoError(t, err)

	result, err := x.Evaluate(circ)
	require.NoError(t, err)
	require.Equal(t, uint64(1), reveal(t, b, result))
}

func TestEvaluateInvalid(t *testing.T) {
	b := newBackend(t)
	x, err := b.InputBoolean(2, 0b01)
	require.NoError(t, err)

	// Gate count disagrees with the gate list.
	_, err = x.Evaluate(&circuit.Circuit{
		NumGates:   2,
		NumWires:   3,
		NumInputsA: 2,
		NumOutputs: 1,
		Gates: []circuit.Gate{
			{Input0: 0, Input1: 1, Output: 2, Op: circuit.AND},
		},
	})
	require.ErrorIs(t, err, share.ErrInvalidDescription)

	// Wire bookkeeping disagrees.
	_, err = x.Evaluate(&circuit.Circuit{
		NumGates:   1,
		NumWires:   7,
		NumInputsA: 2,
		NumOutputs: 1,
		Gates: []circuit.Gate{
			{Input0: 0, Input1: 1, Output: 2, Op: circuit.AND},
		},
	})
	require.ErrorIs(t, err, share.ErrInvalidDescription)

	// No outputs.
	_, err = x.Evaluate(&circuit.Circuit{
		NumGates:   1,
		NumWires:   3,
		NumInputsA: 2,
		Gates: []circuit.Gate{
			{Input0: 0, Input1: 1, Output: 2, Op: circuit.AND},
		},
	})
	require.ErrorIs(t, err, share.ErrInvalidDescription)

	// A gate reads a wire nothing assigned. The input share is too
	// short for the description's input wires.
	_, err = x.Evaluate(&circuit.Circuit{
		NumGates:   1,
		NumWires:   4,
		NumInputsA: 3,
		NumOutputs: 1,
		Gates: []circuit.Gate{
			{Input0: 0, Input1: 2, Output: 3, Op: circuit.AND},
		},
	})
	require.ErrorIs(t, err, share.ErrInvalidDescription)
}
