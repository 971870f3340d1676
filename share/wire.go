//
// wire.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share

// Wire is one bit (or one arithmetic lane) of a share's
// representation and a node in the gate graph. Wires live in the
// Register's arena and are referenced by stable IDs; the graph is
// append-only and wires are never freed during construction.
type Wire struct {
	id       int
	protocol Protocol
	bits     int
	simd     int
	constant bool
	clear    []uint64
}

// ID returns the wire's stable arena index.
func (w *Wire) ID() int {
	return w.id
}

// Protocol returns the protocol the wire belongs to.
func (w *Wire) Protocol() Protocol {
	return w.protocol
}

// Bits returns the wire width: 1 for boolean and BMR wires, the ring
// width for arithmetic lanes.
func (w *Wire) Bits() int {
	return w.bits
}

// SIMD returns the number of parallel value instances packed behind
// the wire.
func (w *Wire) SIMD() int {
	return w.simd
}

// Constant tests if the wire carries a public constant.
func (w *Wire) Constant() bool {
	return w.constant
}

// Clear returns the public per-SIMD values of a constant wire, nil
// for secret wires.
func (w *Wire) Clear() []uint64 {
	return w.clear
}
