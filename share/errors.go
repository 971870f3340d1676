//
// errors.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share

import (
	"errors"
)

// Recoverable usage errors. All of them surface at the offending call;
// gate registration itself never fails. Contract violations that
// correct calling code can never trigger (nil handles, mux selector
// width, mismatched SIMD counts) panic instead.
var (
	// ErrProtocolMismatch signals operands of different protocols
	// where identical protocols are required.
	ErrProtocolMismatch = errors.New("share: operand protocols differ")

	// ErrLengthMismatch signals operands of different bit lengths
	// where equal lengths are required.
	ErrLengthMismatch = errors.New("share: operand bit lengths differ")

	// ErrUnsupportedOperation signals an operation invoked against a
	// protocol that cannot support it.
	ErrUnsupportedOperation = errors.New(
		"share: operation not supported for protocol")

	// ErrInvalidBitLength signals an arithmetic width outside 8, 16,
	// 32, and 64 bits.
	ErrInvalidBitLength = errors.New(
		"share: arithmetic bit length must be 8, 16, 32, or 64")

	// ErrNotImplemented signals a documented but unbuilt code path.
	ErrNotImplemented = errors.New("share: not implemented")

	// ErrInvalidConversion signals a conversion from a protocol to
	// itself.
	ErrInvalidConversion = errors.New(
		"share: share is already in the target protocol")

	// ErrInvalidDescription signals a circuit description with
	// inconsistent bookkeeping or unassigned wire references.
	ErrInvalidDescription = errors.New(
		"share: invalid circuit description")

	// ErrEmptyInput signals a Join over zero shares.
	ErrEmptyInput = errors.New("share: no shares to join")
)
