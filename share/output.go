//
// output.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share

import (
	"fmt"
)

// Out schedules a reveal of the share toward the owner party
// (AllParties reveals to everyone) and returns a handle to the
// pending plaintext. The value materializes when the backend executes
// the circuit; the only side effect here is gate registration.
func (h Handle) Out(owner int) (Handle, error) {
	h.mustValid()

	reg := h.s.Register()
	backend := reg.backend
	if backend == nil {
		panic("share: register has no backend")
	}

	var out Share
	var err error
	switch h.s.(type) {
	case *arithmeticShare:
		if !validWidth(h.BitLength()) {
			return Handle{}, fmt.Errorf("%w: %d", ErrInvalidBitLength,
				h.BitLength())
		}
		out, err = backend.ArithmeticOutput(h.s, owner)
	case *booleanShare:
		out, err = backend.BooleanOutput(h.s, owner)
	case *bmrShare:
		out, err = backend.BMROutput(h.s, owner)
	default:
		return Handle{}, fmt.Errorf("%w: revealing %v shares",
			ErrUnsupportedOperation, h.Protocol())
	}
	if err != nil {
		return Handle{}, err
	}
	return Wrap(out), nil
}

// NewOutput registers an output gate revealing the share toward
// owner. Backends call this from their per-protocol output entry
// points; the returned share's wires receive the reconstructed
// plaintext during execution.
func NewOutput(reg *Register, s Share, owner int) (Share, error) {
	wires := s.Wires()
	simd := s.SIMD()

	out := make([]*Wire, len(wires))
	for i, w := range wires {
		out[i] = reg.NewWire(w.Protocol(), w.Bits(), simd, false)
	}
	reg.RegisterNextGate(&Gate{
		Kind:     GateOutput,
		Protocol: s.Protocol(),
		Bits:     wires[0].Bits(),
		SIMD:     simd,
		In:       [][]*Wire{wires},
		Out:      out,
		Owner:    owner,
	})

	switch v := s.(type) {
	case *arithmeticShare:
		return &arithmeticShare{reg: reg, wires: out, bits: v.bits}, nil
	case *booleanShare:
		return &booleanShare{reg: reg, wires: out}, nil
	case *bmrShare:
		return &bmrShare{reg: reg, wires: out}, nil
	default:
		return nil, fmt.Errorf("%w: revealing %v shares",
			ErrUnsupportedOperation, s.Protocol())
	}
}
