//
// share.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share

import (
	"fmt"
)

// Share is an opaque handle to a secret value distributed among
// parties under exactly one protocol. The set of implementations is
// closed: Boolean-GMW, BMR, arithmetic-GMW, and constant shares.
// Shares are immutable once constructed; operators always allocate a
// new share instead of mutating an existing one.
type Share interface {
	// Protocol returns the secret-sharing scheme of the share.
	Protocol() Protocol

	// BitLength returns the wire count for boolean protocols and the
	// ring width for arithmetic shares.
	BitLength() int

	// SIMD returns the number of batched parallel instances behind
	// one gate graph position.
	SIMD() int

	// Wires returns the ordered wires of the share.
	Wires() []*Wire

	// IsConstant tests if the share carries a public constant.
	IsConstant() bool

	// Register returns the gate register the share belongs to.
	Register() *Register

	// variant seals the interface.
	variant()
}

// booleanShare is a Boolean-GMW share: one XOR-shared wire per bit.
type booleanShare struct {
	reg   *Register
	wires []*Wire
}

func (s *booleanShare) Protocol() Protocol  { return BooleanGMW }
func (s *booleanShare) BitLength() int      { return len(s.wires) }
func (s *booleanShare) SIMD() int           { return s.wires[0].SIMD() }
func (s *booleanShare) Wires() []*Wire      { return s.wires }
func (s *booleanShare) IsConstant() bool    { return false }
func (s *booleanShare) Register() *Register { return s.reg }
func (s *booleanShare) variant()            {}

// bmrShare is a BMR (garbled-circuit) share: one wire per bit.
type bmrShare struct {
	reg   *Register
	wires []*Wire
}

func (s *bmrShare) Protocol() Protocol  { return BMR }
func (s *bmrShare) BitLength() int      { return len(s.wires) }
func (s *bmrShare) SIMD() int           { return s.wires[0].SIMD() }
func (s *bmrShare) Wires() []*Wire      { return s.wires }
func (s *bmrShare) IsConstant() bool    { return false }
func (s *bmrShare) Register() *Register { return s.reg }
func (s *bmrShare) variant()            {}

// arithmeticShare is an additive share over the 2^bits integer
// ring. It usually holds a single lane wire; Join may concatenate
// several lanes of the same width.
type arithmeticShare struct {
	reg   *Register
	wires []*Wire
	bits  int
}

func (s *arithmeticShare) Protocol() Protocol  { return ArithmeticGMW }
func (s *arithmeticShare) BitLength() int      { return s.bits }
func (s *arithmeticShare) SIMD() int           { return s.wires[0].SIMD() }
func (s *arithmeticShare) Wires() []*Wire      { return s.wires }
func (s *arithmeticShare) IsConstant() bool    { return false }
func (s *arithmeticShare) Register() *Register { return s.reg }
func (s *arithmeticShare) variant()            {}

// constantArithmeticShare is a public integer constant that
// participates in the constant-folding arithmetic gate variants.
type constantArithmeticShare struct {
	reg  *Register
	wire *Wire
	bits int
}

func (s *constantArithmeticShare) Protocol() Protocol  { return Constant }
func (s *constantArithmeticShare) BitLength() int      { return s.bits }
func (s *constantArithmeticShare) SIMD() int           { return s.wire.SIMD() }
func (s *constantArithmeticShare) Wires() []*Wire      { return []*Wire{s.wire} }
func (s *constantArithmeticShare) IsConstant() bool    { return true }
func (s *constantArithmeticShare) Register() *Register { return s.reg }
func (s *constantArithmeticShare) variant()            {}

// newBitShare constructs the boolean-protocol share variant for the
// wires. Every wire must already belong to the protocol.
func newBitShare(reg *Register, p Protocol, wires []*Wire) Share {
	switch p {
	case BooleanGMW:
		return &booleanShare{reg: reg, wires: wires}
	case BMR:
		return &bmrShare{reg: reg, wires: wires}
	default:
		panic(fmt.Sprintf("share: %v is not a boolean protocol", p))
	}
}
