//
// circuit.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

// Package circuit implements protocol-agnostic boolean circuit
// descriptions. A description is a flat, topologically ordered list of
// 1- and 2-input gates over wire indices. Descriptions are typically
// loaded from precompiled circuit files and replayed against live
// shares of any boolean-capable protocol.
package circuit

import (
	"fmt"
)

// Operation specifies gate function.
type Operation byte

// Gate functions.
const (
	XOR Operation = iota
	XNOR
	AND
	OR
	INV
)

// Stats holds per-operation gate counts of a circuit.
type Stats [INV + 1]int

func (op Operation) String() string {
	switch op {
	case XOR:
		return "XOR"
	case XNOR:
		return "XNOR"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case INV:
		return "INV"
	default:
		return fmt.Sprintf("{Operation %d}", op)
	}
}

// Wire specifies a wire index.
type Wire uint32

// ID returns the wire index as integer.
func (w Wire) ID() int {
	return int(w)
}

func (w Wire) String() string {
	return fmt.Sprintf("w%d", w)
}

// Gate specifies a boolean gate. INV gates use Input0 only.
type Gate struct {
	Input0 Wire
	Input1 Wire
	Output Wire
	Op     Operation
}

func (g Gate) String() string {
	return fmt.Sprintf("%v %v %v", g.Inputs(), g.Op, g.Output)
}

// Inputs returns gate input wires.
func (g Gate) Inputs() []Wire {
	switch g.Op {
	case XOR, XNOR, AND, OR:
		return []Wire{g.Input0, g.Input1}
	case INV:
		return []Wire{g.Input0}
	default:
		panic(fmt.Sprintf("unsupported gate type %s", g.Op))
	}
}

// Circuit specifies a boolean circuit. The first NumInputsA wires are
// the wires of the first input argument, followed by the NumInputsB
// wires of the optional second argument. The last NumOutputs wires
// hold the circuit result.
type Circuit struct {
	NumGates   int
	NumWires   int
	NumInputsA int
	NumInputsB int
	NumOutputs int
	Gates      []Gate
	Stats      Stats
}

// NumInputs returns the total number of circuit input wires.
func (c *Circuit) NumInputs() int {
	return c.NumInputsA + c.NumInputsB
}

func (c *Circuit) String() string {
	var stats string

	for k := XOR; k <= INV; k++ {
		v := c.Stats[k]
		if len(stats) > 0 {
			stats += " "
		}
		stats += fmt.Sprintf("%s=%d", k, v)
	}
	return fmt.Sprintf("#gates=%d (%s) #w=%d", c.NumGates, stats, c.NumWires)
}

// Cost computes the relative computational cost of the circuit.
func (c *Circuit) Cost() int {
	return (c.Stats[AND]+c.Stats[OR])*4 + c.Stats[INV]*2
}

// Dump prints a debug dump of the circuit.
func (c *Circuit) Dump() {
	fmt.Printf("circuit %s\n", c)
	for id, gate := range c.Gates {
		fmt.Printf("%04d\t%s\n", id, gate)
	}
}

// AssignStats recomputes the per-operation gate counts.
func (c *Circuit) AssignStats() {
	var stats Stats
	for _, g := range c.Gates {
		stats[g.Op]++
	}
	c.Stats = stats
}

// Validate checks the circuit bookkeeping: wire counts must be
// consistent, every gate must consume only input wires or outputs of
// earlier gates, and every gate must produce a fresh non-input wire.
func (c *Circuit) Validate() error {
	if c.NumInputsA <= 0 {
		return fmt.Errorf("circuit: no input wires for parent a")
	}
	if c.NumInputsB < 0 {
		return fmt.Errorf("circuit: negative input count for parent b")
	}
	if c.NumOutputs <= 0 {
		return fmt.Errorf("circuit: no output wires")
	}
	if c.NumGates != len(c.Gates) {
		return fmt.Errorf("circuit: gate count %d does not match %d gates",
			c.NumGates, len(c.Gates))
	}
	if c.NumGates+c.NumInputs() != c.NumWires {
		return fmt.Errorf(
			"circuit: %d gates + %d inputs does not match %d wires",
			c.NumGates, c.NumInputs(), c.NumWires)
	}
	if c.NumOutputs > c.NumWires {
		return fmt.Errorf("circuit: %d output wires exceed %d wires",
			c.NumOutputs, c.NumWires)
	}

	assigned := make([]bool, c.NumWires)
	for i := 0; i < c.NumInputs(); i++ {
		assigned[i] = true
	}
	for id, gate := range c.Gates {
		for _, in := range gate.Inputs() {
			if in.ID() >= c.NumWires {
				return fmt.Errorf("circuit: gate %d input %s out of range",
					id, in)
			}
			if !assigned[in.ID()] {
				return fmt.Errorf("circuit: gate %d reads unassigned wire %s",
					id, in)
			}
		}
		out := gate.Output.ID()
		if out >= c.NumWires {
			return fmt.Errorf("circuit: gate %d output %s out of range",
				id, gate.Output)
		}
		if assigned[out] {
			return fmt.Errorf("circuit: gate %d reassigns wire %s",
				id, gate.Output)
		}
		assigned[out] = true
	}
	for w := c.NumWires - c.NumOutputs; w < c.NumWires; w++ {
		if !assigned[w] {
			return fmt.Errorf("circuit: output wire w%d never assigned", w)
		}
	}
	return nil
}
