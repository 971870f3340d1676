//
// wrapper.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share

import (
	"fmt"
)

// Handle is a thin, cheaply-copyable wrapper over a share. Every
// operator validates its operands, registers exactly the gates the
// operation needs, and returns a handle over the new gate's output;
// no operator ever mutates an existing share.
type Handle struct {
	s Share
}

// Wrap wraps the share into a handle.
func Wrap(s Share) Handle {
	if s == nil {
		panic("share: wrapping nil share")
	}
	return Handle{s: s}
}

// Share returns the wrapped share.
func (h Handle) Share() Share {
	return h.s
}

// Valid tests if the handle wraps a share.
func (h Handle) Valid() bool {
	return h.s != nil
}

// Protocol returns the wrapped share's protocol.
func (h Handle) Protocol() Protocol {
	h.mustValid()
	return h.s.Protocol()
}

// BitLength returns the wrapped share's bit length.
func (h Handle) BitLength() int {
	h.mustValid()
	return h.s.BitLength()
}

// SIMD returns the wrapped share's SIMD value count.
func (h Handle) SIMD() int {
	h.mustValid()
	return h.s.SIMD()
}

func (h Handle) String() string {
	if h.s == nil {
		return "share{nil}"
	}
	return fmt.Sprintf("share{%v/%d bits/%d simd}",
		h.s.Protocol(), h.s.BitLength(), h.s.SIMD())
}

func (h Handle) mustValid() {
	if h.s == nil {
		panic("share: operation on empty handle")
	}
}

// sameShape enforces the common binary-operand contract: equal
// protocols and bit lengths are usage errors, mismatched SIMD counts
// a programming-contract violation.
func sameShape(a, b Share) error {
	if a.Protocol() != b.Protocol() {
		return fmt.Errorf("%w: %v vs %v", ErrProtocolMismatch,
			a.Protocol(), b.Protocol())
	}
	if a.BitLength() != b.BitLength() {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch,
			a.BitLength(), b.BitLength())
	}
	if a.SIMD() != b.SIMD() {
		panic(fmt.Sprintf("share: SIMD counts differ: %d vs %d",
			a.SIMD(), b.SIMD()))
	}
	return nil
}

// Not constructs a protocol-specific inversion gate. Arithmetic
// shares do not support boolean primitives.
func (h Handle) Not() (Handle, error) {
	h.mustValid()

	switch s := h.s.(type) {
	case *booleanShare:
		return newBitwiseGate(s.reg, GateInv, BooleanGMW, s.wires, nil), nil
	case *bmrShare:
		return newBitwiseGate(s.reg, GateInv, BMR, s.wires, nil), nil
	default:
		return Handle{}, fmt.Errorf(
			"%w: boolean NOT on %v share", ErrUnsupportedOperation,
			h.s.Protocol())
	}
}

// Xor constructs a protocol-specific XOR gate over the operands.
func (h Handle) Xor(other Handle) (Handle, error) {
	return h.bitwise(GateXor, other)
}

// And constructs a protocol-specific AND gate over the operands.
func (h Handle) And(other Handle) (Handle, error) {
	return h.bitwise(GateAnd, other)
}

// Or computes NOT(AND(NOT(a), NOT(b))). OR is not a primitive gate;
// the derivation costs one inversion pair plus one AND gate.
func (h Handle) Or(other Handle) (Handle, error) {
	h.mustValid()
	other.mustValid()
	if err := sameShape(h.s, other.s); err != nil {
		return Handle{}, err
	}
	if !h.s.Protocol().Boolean() {
		return Handle{}, fmt.Errorf("%w: boolean OR on %v share",
			ErrUnsupportedOperation, h.s.Protocol())
	}

	na, err := h.Not()
	if err != nil {
		return Handle{}, err
	}
	nb, err := other.Not()
	if err != nil {
		return Handle{}, err
	}
	and, err := na.And(nb)
	if err != nil {
		return Handle{}, err
	}
	return and.Not()
}

func (h Handle) bitwise(kind GateKind, other Handle) (Handle, error) {
	h.mustValid()
	other.mustValid()
	if err := sameShape(h.s, other.s); err != nil {
		return Handle{}, err
	}

	switch s := h.s.(type) {
	case *booleanShare:
		o := other.s.(*booleanShare)
		return newBitwiseGate(s.reg, kind, BooleanGMW, s.wires, o.wires), nil
	case *bmrShare:
		o := other.s.(*bmrShare)
		return newBitwiseGate(s.reg, kind, BMR, s.wires, o.wires), nil
	default:
		return Handle{}, fmt.Errorf("%w: boolean %v on %v shares",
			ErrUnsupportedOperation, kind, h.s.Protocol())
	}
}

// newBitwiseGate registers a bitwise gate over the per-bit wires a
// and b (b is nil for inversions) and returns a handle over the
// gate's output share.
func newBitwiseGate(reg *Register, kind GateKind, p Protocol, a, b []*Wire) Handle {
	simd := a[0].SIMD()
	out := make([]*Wire, len(a))
	for i := range out {
		out[i] = reg.NewWire(p, 1, simd, false)
	}

	in := [][]*Wire{a}
	if b != nil {
		in = append(in, b)
	}
	reg.RegisterNextGate(&Gate{
		Kind:     kind,
		Protocol: p,
		Bits:     1,
		SIMD:     simd,
		In:       in,
		Out:      out,
	})
	return Wrap(newBitShare(reg, p, out))
}
