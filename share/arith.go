//
// arith.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share

import (
	"fmt"
)

// Unsigned constrains arithmetic shares to the supported ring widths.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// widthOf returns the ring width of the instantiating type.
func widthOf[T Unsigned]() int {
	switch any(T(0)).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	default:
		return 64
	}
}

func validWidth(bits int) bool {
	switch bits {
	case 8, 16, 32, 64:
		return true
	default:
		return false
	}
}

// Mask returns the value mask of the arithmetic ring width.
func Mask(bits int) uint64 {
	return ^uint64(0) >> (64 - bits)
}

// Add constructs an addition gate over the operands. If exactly one
// operand is a constant, the cheaper constant-folding gate variant is
// used regardless of argument order.
func (h Handle) Add(other Handle) (Handle, error) {
	return h.arithmetic(GateAdd, other)
}

// Sub constructs a subtraction gate over the operands. Subtraction
// has no constant-operand gate variant; a constant operand is a
// contract violation.
func (h Handle) Sub(other Handle) (Handle, error) {
	return h.arithmetic(GateSub, other)
}

// Mul constructs a multiplication gate over the operands. A constant
// operand selects the constant-folding variant; multiplying a share
// by the identical share instance registers a square gate with half
// the multiplicative complexity.
func (h Handle) Mul(other Handle) (Handle, error) {
	return h.arithmetic(GateMul, other)
}

func (h Handle) arithmetic(kind GateKind, other Handle) (Handle, error) {
	h.mustValid()
	other.mustValid()

	if h.BitLength() != other.BitLength() {
		return Handle{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch,
			h.BitLength(), other.BitLength())
	}
	if h.SIMD() != other.SIMD() {
		panic(fmt.Sprintf("share: SIMD counts differ: %d vs %d",
			h.SIMD(), other.SIMD()))
	}
	if h.Protocol() != ArithmeticGMW && other.Protocol() != ArithmeticGMW {
		return Handle{}, fmt.Errorf(
			"%w: arithmetic %v needs an arithmetic operand",
			ErrUnsupportedOperation, kind)
	}
	for _, p := range []Protocol{h.Protocol(), other.Protocol()} {
		if p != ArithmeticGMW && p != Constant {
			return Handle{}, fmt.Errorf(
				"%w: arithmetic %v on %v share",
				ErrUnsupportedOperation, kind, p)
		}
	}
	if kind == GateMul && h.s == other.s {
		kind = GateSquare
	}
	return monomorphize(kind, h.s, other.s)
}

// monomorphize dispatches the arithmetic gate construction to the
// instantiation matching the operands' ring width. This is the single
// width switch of the package; every other arithmetic entry point
// validates widths through validWidth.
func monomorphize(kind GateKind, a, b Share) (Handle, error) {
	switch a.BitLength() {
	case 8:
		return newArithmeticGate[uint8](kind, a, b)
	case 16:
		return newArithmeticGate[uint16](kind, a, b)
	case 32:
		return newArithmeticGate[uint32](kind, a, b)
	case 64:
		return newArithmeticGate[uint64](kind, a, b)
	default:
		return Handle{}, fmt.Errorf("%w: %d", ErrInvalidBitLength,
			a.BitLength())
	}
}

// newArithmeticGate registers the arithmetic gate for the ring of T.
// For square gates b is the same share as a and only a is wired in.
func newArithmeticGate[T Unsigned](kind GateKind, a, b Share) (Handle, error) {
	bits := widthOf[T]()
	reg := a.Register()
	simd := a.SIMD()

	if kind == GateSquare {
		return registerArithmeticGate(reg, GateSquare, bits, simd,
			[][]*Wire{a.Wires()}, len(a.Wires())), nil
	}

	if a.IsConstant() || b.IsConstant() {
		// Canonicalize the constant operand to the second slot.
		nc, c := a, b
		if a.IsConstant() {
			nc, c = b, a
		}
		switch kind {
		case GateAdd:
			kind = GateConstAdd
		case GateMul:
			kind = GateConstMul
		case GateSub:
			// Subtraction deliberately lacks a constant-folding
			// gate; the general gate needs two secret operands.
			panic("share: no constant-operand subtraction gate")
		}
		return registerArithmeticGate(reg, kind, bits, simd,
			[][]*Wire{nc.Wires(), c.Wires()}, len(nc.Wires())), nil
	}

	return registerArithmeticGate(reg, kind, bits, simd,
		[][]*Wire{a.Wires(), b.Wires()}, len(a.Wires())), nil
}

func registerArithmeticGate(reg *Register, kind GateKind, bits, simd int,
	in [][]*Wire, lanes int) Handle {

	out := make([]*Wire, lanes)
	for i := range out {
		out[i] = reg.NewWire(ArithmeticGMW, bits, simd, false)
	}
	reg.RegisterNextGate(&Gate{
		Kind:     kind,
		Protocol: ArithmeticGMW,
		Bits:     bits,
		SIMD:     simd,
		In:       in,
		Out:      out,
	})
	return Wrap(&arithmeticShare{reg: reg, wires: out, bits: bits})
}
