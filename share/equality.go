//
// equality.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share

// Equal compares the operands bitwise and reduces to a single bit:
// XNOR per bit, then AND across all bits. Power-of-two bit lengths
// use a balanced AND tree directly; other lengths are decomposed into
// power-of-two groups along the binary representation of the length,
// each group tree-reduced, and the procedure repeated until one bit
// remains.
//
// Mismatched or zero operand lengths are reported through the
// register's logger before the bitwise comparison rejects them.
func (h Handle) Equal(other Handle) (Handle, error) {
	h.mustValid()
	other.mustValid()

	logger := h.s.Register().Logger()
	if h.BitLength() != other.BitLength() {
		logger.Errorf(
			"comparing shares of different bit lengths: %d vs %d",
			h.BitLength(), other.BitLength())
	} else if h.BitLength() == 0 {
		logger.Errorf("comparing shares of bit length 0 is not allowed")
	}

	// XNOR
	x, err := h.Xor(other)
	if err != nil {
		return Handle{}, err
	}
	result, err := x.Not()
	if err != nil {
		return Handle{}, err
	}

	if result.BitLength() == 1 {
		return result, nil
	}
	if isPowerOfTwo(result.BitLength()) {
		return fullAndTree(result)
	}

	for result.BitLength() != 1 {
		n := result.BitLength()
		split := result.Split()

		var groups []Handle
		var offset int
		for i := 1; i <= n; i *= 2 {
			if n&i == i {
				group, err := Join(split[offset : offset+i])
				if err != nil {
					return Handle{}, err
				}
				groups = append(groups, group)
				offset += i
			}
		}

		reduced := make([]Handle, 0, len(groups))
		for _, group := range groups {
			r, err := fullAndTree(group)
			if err != nil {
				return Handle{}, err
			}
			reduced = append(reduced, r)
		}
		result, err = Join(reduced)
		if err != nil {
			return Handle{}, err
		}
	}
	return result, nil
}

// fullAndTree reduces a power-of-two-length share to one bit with a
// balanced binary AND tree: each round ANDs the share's two halves,
// halving the bit length.
func fullAndTree(h Handle) (Handle, error) {
	for h.BitLength() > 1 {
		bits := h.Split()
		half := len(bits) / 2

		left, err := Join(bits[:half])
		if err != nil {
			return Handle{}, err
		}
		right, err := Join(bits[half:])
		if err != nil {
			return Handle{}, err
		}
		h, err = left.And(right)
		if err != nil {
			return Handle{}, err
		}
	}
	return h, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
