//
// input.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share

import (
	"fmt"
)

// NewInput registers an input gate producing a secret share of the
// given protocol and shape and returns the share together with the
// gate's execution position. The backend binds plaintext values to
// the position and secret-shares them when the circuit runs.
func NewInput(reg *Register, p Protocol, bits, simd int) (Share, int, error) {
	if simd <= 0 {
		return nil, 0, fmt.Errorf("%w: input needs at least one SIMD value",
			ErrEmptyInput)
	}

	switch p {
	case ArithmeticGMW:
		if !validWidth(bits) {
			return nil, 0, fmt.Errorf("%w: %d", ErrInvalidBitLength, bits)
		}
		out := reg.NewWire(ArithmeticGMW, bits, simd, false)
		id := reg.RegisterNextGate(&Gate{
			Kind:     GateInput,
			Protocol: ArithmeticGMW,
			Bits:     bits,
			SIMD:     simd,
			Out:      []*Wire{out},
		})
		return &arithmeticShare{
			reg:   reg,
			wires: []*Wire{out},
			bits:  bits,
		}, id, nil

	case BooleanGMW, BMR:
		if bits <= 0 {
			return nil, 0, fmt.Errorf("%w: %d", ErrInvalidBitLength, bits)
		}
		out := make([]*Wire, bits)
		for i := range out {
			out[i] = reg.NewWire(p, 1, simd, false)
		}
		id := reg.RegisterNextGate(&Gate{
			Kind:     GateInput,
			Protocol: p,
			Bits:     1,
			SIMD:     simd,
			Out:      out,
		})
		return newBitShare(reg, p, out), id, nil

	default:
		return nil, 0, fmt.Errorf("%w: input for %v shares",
			ErrUnsupportedOperation, p)
	}
}

// NewConstantArithmetic constructs a public arithmetic constant with
// one value per SIMD lane. Values are reduced into the ring.
func NewConstantArithmetic(reg *Register, bits int, values []uint64) (Share, error) {
	if !validWidth(bits) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBitLength, bits)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: constant needs at least one value",
			ErrEmptyInput)
	}

	masked := make([]uint64, len(values))
	mask := Mask(bits)
	for i, v := range values {
		masked[i] = v & mask
	}

	w := reg.NewConstantWire(Constant, bits, masked)
	reg.RegisterNextGate(&Gate{
		Kind:     GateInput,
		Protocol: Constant,
		Bits:     bits,
		SIMD:     len(masked),
		Out:      []*Wire{w},
	})
	return &constantArithmeticShare{reg: reg, wire: w, bits: bits}, nil
}
