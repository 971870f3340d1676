//
// evaluate.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share

import (
	"fmt"

	"github.com/sharelab/mpc/circuit"
)

// Evaluate replays the circuit description against the share: the
// share is split into one handle per input wire, the description's
// gates run in listed order through the boolean operators, and the
// final output wires join into the result. The share's bit length
// must cover the description's input wires; a mismatch is reported
// through the register's logger and surfaces as an invalid
// description when a gate reads a missing wire.
func (h Handle) Evaluate(circ *circuit.Circuit) (Handle, error) {
	h.mustValid()

	reg := h.s.Register()
	numInputs := circ.NumInputs()
	if numInputs != h.BitLength() {
		reg.Logger().Errorf(
			"evaluate: expected a share of bit length %d, got bit length %d",
			numInputs, h.BitLength())
	}

	if circ.NumGates != len(circ.Gates) {
		return Handle{}, fmt.Errorf(
			"%w: gate count %d does not match %d gates",
			ErrInvalidDescription, circ.NumGates, len(circ.Gates))
	}
	if circ.NumGates+numInputs != circ.NumWires {
		return Handle{}, fmt.Errorf(
			"%w: %d gates + %d inputs does not match %d wires",
			ErrInvalidDescription, circ.NumGates, numInputs, circ.NumWires)
	}
	if circ.NumOutputs <= 0 || circ.NumOutputs > circ.NumWires {
		return Handle{}, fmt.Errorf("%w: %d output wires of %d wires",
			ErrInvalidDescription, circ.NumOutputs, circ.NumWires)
	}

	wires := make([]Handle, circ.NumWires)
	for i, hw := range h.Split() {
		if i >= len(wires) {
			break
		}
		wires[i] = hw
	}

	get := func(w circuit.Wire) (Handle, error) {
		if w.ID() >= len(wires) || !wires[w.ID()].Valid() {
			return Handle{}, fmt.Errorf(
				"%w: gate reads unassigned wire %v",
				ErrInvalidDescription, w)
		}
		return wires[w.ID()], nil
	}

	for _, gate := range circ.Gates {
		if gate.Output.ID() >= len(wires) {
			return Handle{}, fmt.Errorf(
				"%w: gate output wire %v out of range",
				ErrInvalidDescription, gate.Output)
		}

		var result Handle
		var err error
		switch gate.Op {
		case circuit.XOR, circuit.XNOR, circuit.AND, circuit.OR:
			a, err2 := get(gate.Input0)
			if err2 != nil {
				return Handle{}, err2
			}
			b, err2 := get(gate.Input1)
			if err2 != nil {
				return Handle{}, err2
			}
			switch gate.Op {
			case circuit.XOR:
				result, err = a.Xor(b)
			case circuit.XNOR:
				result, err = a.Xor(b)
				if err == nil {
					result, err = result.Not()
				}
			case circuit.AND:
				result, err = a.And(b)
			case circuit.OR:
				result, err = a.Or(b)
			}
		case circuit.INV:
			a, err2 := get(gate.Input0)
			if err2 != nil {
				return Handle{}, err2
			}
			result, err = a.Not()
		default:
			return Handle{}, fmt.Errorf("%w: invalid operation %v",
				ErrInvalidDescription, gate.Op)
		}
		if err != nil {
			return Handle{}, err
		}
		wires[gate.Output.ID()] = result
	}

	output := make([]Handle, 0, circ.NumOutputs)
	for i := circ.NumWires - circ.NumOutputs; i < circ.NumWires; i++ {
		if !wires[i].Valid() {
			return Handle{}, fmt.Errorf(
				"%w: output wire w%d never assigned",
				ErrInvalidDescription, i)
		}
		output = append(output, wires[i])
	}
	return Join(output)
}
