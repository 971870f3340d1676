//
// engine.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

// Package engine implements a local simulation backend for the share
// abstraction: inputs are secret-shared among n simulated parties
// (XOR shares for boolean and BMR wires, additive shares modulo 2^w
// for arithmetic lanes) and the registered gates are evaluated in
// order with trusted-dealer semantics for the multiplicative and
// conversion gates. The simulation reproduces the plaintext semantics
// of the protocols, not their cryptography, and exists for tests,
// demos, and circuit inspection.
package engine

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/sharelab/mpc/share"
)

// Options configures a backend.
type Options struct {
	// Parties is the number of simulated parties, at least two.
	// Zero selects the default of three.
	Parties int

	// Seed makes the simulated share randomness deterministic.
	Seed *[32]byte

	// Logger receives error and debug reports. Nil logs to stderr.
	Logger *log.Logger

	// Verbose enables per-gate debug output.
	Verbose bool
}

// Backend owns the gate register of one computation run and executes
// the accumulated circuit. Circuit construction against one backend
// is single-threaded; Run may be called once.
type Backend struct {
	reg     *share.Register
	logger  *share.GoLogger
	parties int
	prg     *prg
	inputs  map[int][]uint64
	state   []wireState
	ran     bool
}

// New creates a backend with an empty gate register.
func New(opts Options) (*Backend, error) {
	parties := opts.Parties
	if parties == 0 {
		parties = 3
	}
	if parties < 2 {
		return nil, fmt.Errorf("engine: need at least 2 parties, got %d",
			parties)
	}

	p, err := newPRG(opts.Seed)
	if err != nil {
		return nil, err
	}

	l := opts.Logger
	if l == nil {
		l = log.New(os.Stderr, "mpc: ", log.LstdFlags)
	}

	b := &Backend{
		logger:  &share.GoLogger{Log: l, Verbose: opts.Verbose},
		parties: parties,
		prg:     p,
		inputs:  make(map[int][]uint64),
	}
	b.reg = share.NewRegister(b, b.logger)
	return b, nil
}

// Register returns the backend's gate register.
func (b *Backend) Register() *share.Register {
	return b.reg
}

// Parties returns the number of simulated parties.
func (b *Backend) Parties() int {
	return b.parties
}

// ArithmeticOutput implements share.Backend.
func (b *Backend) ArithmeticOutput(s share.Share, owner int) (share.Share, error) {
	return share.NewOutput(b.reg, s, owner)
}

// BooleanOutput implements share.Backend.
func (b *Backend) BooleanOutput(s share.Share, owner int) (share.Share, error) {
	return share.NewOutput(b.reg, s, owner)
}

// BMROutput implements share.Backend.
func (b *Backend) BMROutput(s share.Share, owner int) (share.Share, error) {
	return share.NewOutput(b.reg, s, owner)
}

// InputArithmetic registers an arithmetic input gate over the ring of
// T with one SIMD lane per value.
func InputArithmetic[T share.Unsigned](b *Backend, values ...T) (share.Handle, error) {
	bits := widthOf[T]()
	lanes := make([]uint64, len(values))
	for i, v := range values {
		lanes[i] = uint64(v)
	}

	s, id, err := share.NewInput(b.reg, share.ArithmeticGMW, bits, len(values))
	if err != nil {
		return share.Handle{}, err
	}
	b.inputs[id] = lanes
	return share.Wrap(s), nil
}

// ConstantArithmetic creates a public arithmetic constant over the
// ring of T with one SIMD lane per value.
func ConstantArithmetic[T share.Unsigned](b *Backend, values ...T) (share.Handle, error) {
	lanes := make([]uint64, len(values))
	for i, v := range values {
		lanes[i] = uint64(v)
	}

	s, err := share.NewConstantArithmetic(b.reg, widthOf[T](), lanes)
	if err != nil {
		return share.Handle{}, err
	}
	return share.Wrap(s), nil
}

// InputBoolean registers a Boolean-GMW input gate of the given bit
// length with one SIMD lane per value.
func (b *Backend) InputBoolean(bits int, values ...uint64) (share.Handle, error) {
	return b.inputBits(share.BooleanGMW, bits, values)
}

// InputBMR registers a BMR input gate of the given bit length with
// one SIMD lane per value.
func (b *Backend) InputBMR(bits int, values ...uint64) (share.Handle, error) {
	return b.inputBits(share.BMR, bits, values)
}

func (b *Backend) inputBits(p share.Protocol, bits int, values []uint64) (
	share.Handle, error) {

	s, id, err := share.NewInput(b.reg, p, bits, len(values))
	if err != nil {
		return share.Handle{}, err
	}

	lanes := make([]uint64, len(values))
	var mask uint64 = ^uint64(0)
	if bits < 64 {
		mask = 1<<bits - 1
	}
	for i, v := range values {
		lanes[i] = v & mask
	}
	b.inputs[id] = lanes
	return share.Wrap(s), nil
}

// Uint64s returns the revealed per-SIMD-lane values of an output
// handle after Run. Boolean and BMR outputs pack their wires with
// wire 0 as the least significant bit; arithmetic outputs return the
// lanes of every wire in wire order.
func (b *Backend) Uint64s(h share.Handle) ([]uint64, error) {
	if !b.ran {
		return nil, errors.New("engine: circuit has not been executed")
	}
	s := h.Share()
	if s == nil {
		return nil, errors.New("engine: empty handle")
	}

	wires := s.Wires()
	switch s.Protocol() {
	case share.ArithmeticGMW:
		// Joined arithmetic vectors carry one value per wire.
		var lanes []uint64
		for _, w := range wires {
			st := b.state[w.ID()]
			if !st.isClear {
				return nil, errors.New(
					"engine: share is not a revealed output")
			}
			lanes = append(lanes, st.clear...)
		}
		return lanes, nil

	case share.BooleanGMW, share.BMR:
		lanes := make([]uint64, s.SIMD())
		for j, w := range wires {
			st := b.state[w.ID()]
			if !st.isClear {
				return nil, errors.New(
					"engine: share is not a revealed output")
			}
			for l := range lanes {
				lanes[l] |= st.clear[l] << j
			}
		}
		return lanes, nil

	default:
		return nil, fmt.Errorf("engine: cannot read %v share", s.Protocol())
	}
}

// Uint64 returns the revealed value of the first SIMD lane.
func (b *Backend) Uint64(h share.Handle) (uint64, error) {
	lanes, err := b.Uint64s(h)
	if err != nil {
		return 0, err
	}
	return lanes[0], nil
}

// Bool returns the revealed value of the first SIMD lane as a
// boolean.
func (b *Backend) Bool(h share.Handle) (bool, error) {
	v, err := b.Uint64(h)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func widthOf[T share.Unsigned]() int {
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
