//
// convert.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share

import (
	"fmt"
)

// Convert converts the share to the target protocol. The protocols
// form a triangle with native edges Boolean-GMW→Arithmetic-GMW,
// Arithmetic-GMW→BMR, and Boolean-GMW↔BMR; the remaining directions
// route through the intermediate protocol with exactly two gates:
//
//	Arithmetic-GMW → Boolean-GMW: via BMR
//	BMR → Arithmetic-GMW: via Boolean-GMW
func (h Handle) Convert(target Protocol) (Handle, error) {
	h.mustValid()

	source := h.Protocol()
	if source == target {
		return Handle{}, fmt.Errorf("%w: %v", ErrInvalidConversion, target)
	}
	if source == Constant {
		return Handle{}, fmt.Errorf("%w: converting constant shares",
			ErrUnsupportedOperation)
	}

	switch target {
	case ArithmeticGMW:
		if source == BooleanGMW {
			return h.booleanToArithmetic()
		}
		// BMR routes over Boolean-GMW.
		b, err := h.Convert(BooleanGMW)
		if err != nil {
			return Handle{}, err
		}
		return b.Convert(ArithmeticGMW)

	case BooleanGMW:
		if source == ArithmeticGMW {
			// Arithmetic-GMW routes over BMR.
			g, err := h.Convert(BMR)
			if err != nil {
				return Handle{}, err
			}
			return g.Convert(BooleanGMW)
		}
		return h.bmrToBoolean()

	case BMR:
		if source == ArithmeticGMW {
			return h.arithmeticToBMR()
		}
		return h.booleanToBMR()

	default:
		return Handle{}, fmt.Errorf("%w: converting to %v",
			ErrUnsupportedOperation, target)
	}
}

// booleanToArithmetic registers the native Boolean-GMW to
// Arithmetic-GMW conversion gate. The boolean bit length becomes the
// arithmetic ring width and must be one of the supported widths.
func (h Handle) booleanToArithmetic() (Handle, error) {
	s := h.s.(*booleanShare)
	bits := len(s.wires)
	if !validWidth(bits) {
		return Handle{}, fmt.Errorf("%w: %d", ErrInvalidBitLength, bits)
	}
	simd := s.wires[0].SIMD()

	out := s.reg.NewWire(ArithmeticGMW, bits, simd, false)
	s.reg.RegisterNextGate(&Gate{
		Kind:     GateBooleanToArithmetic,
		Protocol: ArithmeticGMW,
		Bits:     bits,
		SIMD:     simd,
		In:       [][]*Wire{s.wires},
		Out:      []*Wire{out},
	})
	return Wrap(&arithmeticShare{
		reg:   s.reg,
		wires: []*Wire{out},
		bits:  bits,
	}), nil
}

// arithmeticToBMR registers the native Arithmetic-GMW to BMR
// conversion gate, generic over the supported ring widths. The
// arithmetic value decomposes into one BMR wire per bit.
func (h Handle) arithmeticToBMR() (Handle, error) {
	s := h.s.(*arithmeticShare)
	if !validWidth(s.bits) {
		return Handle{}, fmt.Errorf("%w: %d", ErrInvalidBitLength, s.bits)
	}
	simd := s.wires[0].SIMD()

	out := make([]*Wire, s.bits)
	for i := range out {
		out[i] = s.reg.NewWire(BMR, 1, simd, false)
	}
	s.reg.RegisterNextGate(&Gate{
		Kind:     GateArithmeticToBMR,
		Protocol: BMR,
		Bits:     s.bits,
		SIMD:     simd,
		In:       [][]*Wire{s.wires},
		Out:      out,
	})
	return Wrap(&bmrShare{reg: s.reg, wires: out}), nil
}

// booleanToBMR registers the native Boolean-GMW to BMR conversion
// gate: one BMR wire per boolean wire.
func (h Handle) booleanToBMR() (Handle, error) {
	s := h.s.(*booleanShare)
	return h.bridgeBitwise(s.reg, GateBooleanToBMR, BMR, s.wires), nil
}

// bmrToBoolean registers the native BMR to Boolean-GMW conversion
// gate: one boolean wire per BMR wire.
func (h Handle) bmrToBoolean() (Handle, error) {
	s := h.s.(*bmrShare)
	return h.bridgeBitwise(s.reg, GateBMRToBoolean, BooleanGMW, s.wires), nil
}

func (h Handle) bridgeBitwise(reg *Register, kind GateKind, target Protocol,
	in []*Wire) Handle {

	simd := in[0].SIMD()
	out := make([]*Wire, len(in))
	for i := range out {
		out[i] = reg.NewWire(target, 1, simd, false)
	}
	reg.RegisterNextGate(&Gate{
		Kind:     kind,
		Protocol: target,
		Bits:     1,
		SIMD:     simd,
		In:       [][]*Wire{in},
		Out:      out,
	})
	return Wrap(newBitShare(reg, target, out))
}
