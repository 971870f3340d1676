//
// gate.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share

import (
	"fmt"
)

// GateKind specifies the gate function.
type GateKind byte

// Gate functions. The backend evaluates registered gates in order;
// this package only describes graph shape.
const (
	GateInput GateKind = iota
	GateOutput
	GateXor
	GateAnd
	GateInv
	GateMux
	GateAdd
	GateSub
	GateMul
	GateSquare
	GateConstAdd
	GateConstMul
	GateBooleanToArithmetic
	GateArithmeticToBMR
	GateBooleanToBMR
	GateBMRToBoolean

	numGateKinds
)

func (k GateKind) String() string {
	switch k {
	case GateInput:
		return "INPUT"
	case GateOutput:
		return "OUTPUT"
	case GateXor:
		return "XOR"
	case GateAnd:
		return "AND"
	case GateInv:
		return "INV"
	case GateMux:
		return "MUX"
	case GateAdd:
		return "ADD"
	case GateSub:
		return "SUB"
	case GateMul:
		return "MUL"
	case GateSquare:
		return "SQUARE"
	case GateConstAdd:
		return "CADD"
	case GateConstMul:
		return "CMUL"
	case GateBooleanToArithmetic:
		return "B2A"
	case GateArithmeticToBMR:
		return "A2BMR"
	case GateBooleanToBMR:
		return "B2BMR"
	case GateBMRToBoolean:
		return "BMR2B"
	default:
		return fmt.Sprintf("{GateKind %d}", byte(k))
	}
}

// GateKinds returns all gate kinds in declaration order.
func GateKinds() []GateKind {
	kinds := make([]GateKind, numGateKinds)
	for i := range kinds {
		kinds[i] = GateKind(i)
	}
	return kinds
}

// AllParties is the output-owner sentinel revealing a value to every
// party.
const AllParties = -1

// Gate is a node in the circuit graph. It records which prior wires
// feed it; it never copies secret material. The wires in Out are
// allocated when the gate is constructed, so the gate's output share
// is available before the circuit executes.
type Gate struct {
	Kind     GateKind
	Protocol Protocol
	Bits     int
	SIMD     int
	In       [][]*Wire
	Out      []*Wire

	// Owner is the receiving party of OUTPUT gates.
	Owner int
}

func (g *Gate) String() string {
	return fmt.Sprintf("%s/%s #in=%d #out=%d", g.Kind, g.Protocol,
		len(g.In), len(g.Out))
}
