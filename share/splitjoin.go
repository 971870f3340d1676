//
// splitjoin.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share

import (
	"fmt"
)

// Split decomposes the share into one handle per wire, preserving
// wire order. Split is structural: the resulting handles alias the
// original wires and no gate is constructed.
func (h Handle) Split() []Handle {
	h.mustValid()

	switch s := h.s.(type) {
	case *booleanShare:
		result := make([]Handle, len(s.wires))
		for i, w := range s.wires {
			result[i] = Wrap(&booleanShare{reg: s.reg, wires: []*Wire{w}})
		}
		return result
	case *bmrShare:
		result := make([]Handle, len(s.wires))
		for i, w := range s.wires {
			result[i] = Wrap(&bmrShare{reg: s.reg, wires: []*Wire{w}})
		}
		return result
	case *arithmeticShare:
		result := make([]Handle, len(s.wires))
		for i, w := range s.wires {
			result[i] = Wrap(&arithmeticShare{
				reg:   s.reg,
				wires: []*Wire{w},
				bits:  s.bits,
			})
		}
		return result
	case *constantArithmeticShare:
		return []Handle{h}
	default:
		panic(fmt.Sprintf("share: unknown share variant %T", h.s))
	}
}

// Join concatenates the wires of the shares in input order into one
// share. Join is structural and constructs no gate. All shares must
// belong to one protocol; arithmetic wires must share one of the
// supported ring widths.
func Join(shares []Handle) (Handle, error) {
	if len(shares) == 0 {
		return Handle{}, ErrEmptyInput
	}
	for _, s := range shares {
		s.mustValid()
	}
	protocol := shares[0].Protocol()
	for _, s := range shares[1:] {
		if s.Protocol() != protocol {
			return Handle{}, fmt.Errorf("%w: %v vs %v",
				ErrProtocolMismatch, protocol, s.Protocol())
		}
	}

	reg := shares[0].s.Register()
	var wires []*Wire
	for _, s := range shares {
		wires = append(wires, s.s.Wires()...)
	}

	switch protocol {
	case ArithmeticGMW:
		bits := wires[0].Bits()
		if !validWidth(bits) {
			return Handle{}, fmt.Errorf("%w: %d", ErrInvalidBitLength, bits)
		}
		for _, w := range wires[1:] {
			if w.Bits() != bits {
				return Handle{}, fmt.Errorf("%w: %d vs %d",
					ErrInvalidBitLength, bits, w.Bits())
			}
		}
		return Wrap(&arithmeticShare{reg: reg, wires: wires, bits: bits}), nil
	case BooleanGMW, BMR:
		return Wrap(newBitShare(reg, protocol, wires)), nil
	default:
		return Handle{}, fmt.Errorf("%w: joining %v shares",
			ErrUnsupportedOperation, protocol)
	}
}
