//
// protocol.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

// Package share implements the typed share abstraction over MPC
// protocols. A share is an opaque handle to a value that is secretly
// distributed among parties under one protocol; the Handle wrapper
// exposes boolean and arithmetic operators that construct new gates
// into an explicit Register instead of evaluating anything in place.
package share

import (
	"fmt"
)

// Protocol identifies the secret-sharing scheme of a share.
type Protocol byte

// Supported protocols.
const (
	// ArithmeticGMW shares are additive shares over the ring of
	// unsigned 8, 16, 32, or 64 bit integers.
	ArithmeticGMW Protocol = iota

	// BooleanGMW shares are XOR shares of single bits.
	BooleanGMW

	// BMR shares follow the garbled-circuit protocol; one wire per
	// bit like BooleanGMW.
	BMR

	// Constant tags public, non-shared values that participate in
	// constant-folding gate variants.
	Constant
)

func (p Protocol) String() string {
	switch p {
	case ArithmeticGMW:
		return "ArithmeticGMW"
	case BooleanGMW:
		return "BooleanGMW"
	case BMR:
		return "BMR"
	case Constant:
		return "Constant"
	default:
		return fmt.Sprintf("{Protocol %d}", byte(p))
	}
}

// Boolean tests if the protocol operates on single-bit wires.
func (p Protocol) Boolean() bool {
	return p == BooleanGMW || p == BMR
}
