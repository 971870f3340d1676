//
// mux.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share

import (
	"fmt"
)

// Mux selects a where the selector bit is set and b where it is
// clear. The selector (the receiver) must be exactly one bit and
// share its protocol with both alternatives, which must have equal
// bit lengths; violations are programming-contract errors and panic.
//
// Boolean-GMW uses a native multiplexer gate. BMR derives the
// selection as b XOR (broadcast(selector) AND (a XOR b)). The
// OT-based arithmetic multiplexer is not implemented.
func (h Handle) Mux(a, b Handle) (Handle, error) {
	h.mustValid()
	a.mustValid()
	b.mustValid()
	if h.Protocol() != a.Protocol() || h.Protocol() != b.Protocol() {
		panic(fmt.Sprintf(
			"share: mux operands must share the selector's protocol: %v, %v, %v",
			h.Protocol(), a.Protocol(), b.Protocol()))
	}
	if a.BitLength() != b.BitLength() {
		panic(fmt.Sprintf(
			"share: mux alternatives must have equal bit lengths: %d vs %d",
			a.BitLength(), b.BitLength()))
	}
	if h.SIMD() != a.SIMD() || h.SIMD() != b.SIMD() {
		panic(fmt.Sprintf("share: SIMD counts differ: %d vs %d vs %d",
			h.SIMD(), a.SIMD(), b.SIMD()))
	}
	if h.Protocol().Boolean() && h.BitLength() != 1 {
		panic(fmt.Sprintf("share: mux selector must be one bit, have %d",
			h.BitLength()))
	}

	switch s := h.s.(type) {
	case *arithmeticShare, *constantArithmeticShare:
		return Handle{}, fmt.Errorf(
			"%w: OT-based mux for arithmetic shares", ErrNotImplemented)

	case *booleanShare:
		aw := a.s.Wires()
		bw := b.s.Wires()
		simd := s.wires[0].SIMD()
		out := make([]*Wire, len(aw))
		for i := range out {
			out[i] = s.reg.NewWire(BooleanGMW, 1, simd, false)
		}
		s.reg.RegisterNextGate(&Gate{
			Kind:     GateMux,
			Protocol: BooleanGMW,
			Bits:     1,
			SIMD:     simd,
			In:       [][]*Wire{s.wires, aw, bw},
			Out:      out,
		})
		return Wrap(&booleanShare{reg: s.reg, wires: out}), nil

	case *bmrShare:
		aXorB, err := a.Xor(b)
		if err != nil {
			return Handle{}, err
		}
		broadcast := make([]Handle, aXorB.BitLength())
		for i := range broadcast {
			broadcast[i] = h
		}
		mask, err := Join(broadcast)
		if err != nil {
			return Handle{}, err
		}
		mask, err = mask.And(aXorB)
		if err != nil {
			return Handle{}, err
		}
		return b.Xor(mask)

	default:
		return Handle{}, fmt.Errorf("%w: mux on %v shares",
			ErrUnsupportedOperation, h.Protocol())
	}
}
