//
// register.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share

// Backend materializes revealed values. Handle.Out dispatches to the
// per-protocol entry points; everything else in this package only
// registers gates.
type Backend interface {
	// ArithmeticOutput schedules a reveal of the arithmetic share
	// toward owner and returns the pending output share.
	ArithmeticOutput(s Share, owner int) (Share, error)

	// BooleanOutput schedules a reveal of the Boolean-GMW share.
	BooleanOutput(s Share, owner int) (Share, error)

	// BMROutput schedules a reveal of the BMR share.
	BMROutput(s Share, owner int) (Share, error)
}

// Stats holds per-kind gate counts of a register.
type Stats [numGateKinds]int

// Count returns the number of gates of the given kind.
func (s Stats) Count(kind GateKind) int {
	return s[kind]
}

// Total returns the total gate count over all kinds.
func (s Stats) Total() int {
	var total int
	for _, count := range s {
		total += count
	}
	return total
}

// Register accumulates the gates of one computation run. It is an
// append-only arena: gates and wires are referenced by stable indices
// and live until the run's context is torn down. Construction is
// single-threaded; callers must serialize concurrent use externally.
type Register struct {
	backend Backend
	logger  Logger
	gates   []*Gate
	wires   []*Wire
	stats   Stats
}

// NewRegister creates an empty gate register. A nil logger suppresses
// all reports.
func NewRegister(backend Backend, logger Logger) *Register {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Register{
		backend: backend,
		logger:  logger,
	}
}

// Logger returns the error/debug reporting collaborator.
func (r *Register) Logger() Logger {
	return r.logger
}

// NewWire allocates a wire in the register's arena.
func (r *Register) NewWire(p Protocol, bits, simd int, constant bool) *Wire {
	w := &Wire{
		id:       len(r.wires),
		protocol: p,
		bits:     bits,
		simd:     simd,
		constant: constant,
	}
	r.wires = append(r.wires, w)
	return w
}

// NewConstantWire allocates a wire carrying a public constant with
// one value per SIMD lane.
func (r *Register) NewConstantWire(p Protocol, bits int, values []uint64) *Wire {
	w := r.NewWire(p, bits, len(values), true)
	w.clear = values
	return w
}

// RegisterNextGate appends the gate and assigns its stable execution
// position. Registration never fails: construction-time validation
// happens strictly before a gate reaches the register.
func (r *Register) RegisterNextGate(g *Gate) int {
	id := len(r.gates)
	r.gates = append(r.gates, g)
	r.stats[g.Kind]++
	return id
}

// Gates returns the registered gates in execution order.
func (r *Register) Gates() []*Gate {
	return r.gates
}

// NumGates returns the number of registered gates.
func (r *Register) NumGates() int {
	return len(r.gates)
}

// NumWires returns the number of allocated wires.
func (r *Register) NumWires() int {
	return len(r.wires)
}

// Stats returns the per-kind gate counts.
func (r *Register) Stats() Stats {
	return r.stats
}
