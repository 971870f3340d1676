//
// exec.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package engine

import (
	"errors"
	"fmt"

	"github.com/markkurossi/text/superscript"

	"github.com/sharelab/mpc/share"
)

// wireState holds the execution-time value of one wire: per-lane
// party shares for secret wires, clear per-lane values for constants
// and revealed outputs.
type wireState struct {
	shares  [][]uint64 // [lane][party]
	clear   []uint64
	isClear bool
}

// Run executes the registered gates in order. Linear gates evaluate
// party-locally; AND, multiplication, multiplexer, and conversion
// gates reconstruct and re-share through the simulated trusted
// dealer. Run may be called once per backend.
func (b *Backend) Run() error {
	if b.ran {
		return errors.New("engine: circuit already executed")
	}
	b.ran = true
	b.state = make([]wireState, b.reg.NumWires())

	for id, g := range b.reg.Gates() {
		if err := b.evalGate(id, g); err != nil {
			return fmt.Errorf("engine: gate %d (%s): %w", id, g.Kind, err)
		}
	}
	return nil
}

func (b *Backend) evalGate(id int, g *share.Gate) error {
	switch g.Kind {
	case share.GateInput:
		return b.evalInput(id, g)

	case share.GateOutput:
		return b.evalOutput(g)

	case share.GateXor:
		return b.evalXor(g)

	case share.GateInv:
		for i, ow := range g.Out {
			in, err := b.secretShares(g.In[0][i])
			if err != nil {
				return err
			}
			lanes := make([][]uint64, len(in))
			for l, parties := range in {
				out := append([]uint64(nil), parties...)
				// Party 0 flips the bit; the XOR of the shares
				// flips with it.
				out[0] ^= 1
				lanes[l] = out
			}
			b.state[ow.ID()] = wireState{shares: lanes}
		}
		return nil

	case share.GateAnd:
		return b.dealerBitwise(g, func(av, bv uint64) uint64 {
			return av & bv
		})

	case share.GateMux:
		return b.evalMux(g)

	case share.GateAdd:
		return b.linearArith(g, func(a, p uint64, mask uint64) uint64 {
			return (a + p) & mask
		})

	case share.GateSub:
		return b.linearArith(g, func(a, p uint64, mask uint64) uint64 {
			return (a - p) & mask
		})

	case share.GateMul:
		return b.dealerArith(g, func(av, bv, mask uint64) uint64 {
			return (av * bv) & mask
		})

	case share.GateSquare:
		return b.dealerArithUnary(g, func(av, mask uint64) uint64 {
			return (av * av) & mask
		})

	case share.GateConstAdd:
		return b.constArith(g, func(sh, cv, mask uint64, party int) uint64 {
			if party == 0 {
				return (sh + cv) & mask
			}
			return sh
		})

	case share.GateConstMul:
		return b.constArith(g, func(sh, cv, mask uint64, party int) uint64 {
			return (sh * cv) & mask
		})

	case share.GateBooleanToArithmetic:
		return b.evalBooleanToArithmetic(g)

	case share.GateArithmeticToBMR:
		return b.evalArithmeticToBMR(g)

	case share.GateBooleanToBMR, share.GateBMRToBoolean:
		// Bit-for-bit bridge: reconstruct and re-share each bit in
		// the target protocol.
		return b.dealerBitwise(g, func(av, _ uint64) uint64 {
			return av
		})

	default:
		return fmt.Errorf("invalid gate kind %v", g.Kind)
	}
}

func (b *Backend) evalInput(id int, g *share.Gate) error {
	if g.Protocol == share.Constant {
		// Constant wires carry their public value.
		return nil
	}

	values, ok := b.inputs[id]
	if !ok {
		return errors.New("input gate has no bound values")
	}

	switch g.Protocol {
	case share.ArithmeticGMW:
		mask := share.Mask(g.Bits)
		lanes := make([][]uint64, len(values))
		for l, v := range values {
			lanes[l] = b.reshareAdd(v&mask, mask)
		}
		b.state[g.Out[0].ID()] = wireState{shares: lanes}
		b.debugShares("in", g.Out[0].ID(), lanes)
		return nil

	case share.BooleanGMW, share.BMR:
		for j, ow := range g.Out {
			lanes := make([][]uint64, len(values))
			for l, v := range values {
				lanes[l] = b.reshareXor((v>>j)&1, 1)
			}
			b.state[ow.ID()] = wireState{shares: lanes}
		}
		return nil

	default:
		return fmt.Errorf("invalid input protocol %v", g.Protocol)
	}
}

func (b *Backend) evalOutput(g *share.Gate) error {
	for i, ow := range g.Out {
		w := g.In[0][i]
		lanes := make([]uint64, w.SIMD())
		for l := range lanes {
			v, err := b.reconstruct(w, l)
			if err != nil {
				return err
			}
			lanes[l] = v
		}
		// The simulation reveals to all parties; Owner only records
		// who was supposed to learn the value.
		b.state[ow.ID()] = wireState{clear: lanes, isClear: true}
	}
	return nil
}

func (b *Backend) evalMux(g *share.Gate) error {
	sel := g.In[0][0]
	for i, ow := range g.Out {
		aw, bw := g.In[1][i], g.In[2][i]
		lanes := make([][]uint64, sel.SIMD())
		for l := range lanes {
			sv, err := b.reconstruct(sel, l)
			if err != nil {
				return err
			}
			src := bw
			if sv != 0 {
				src = aw
			}
			v, err := b.reconstruct(src, l)
			if err != nil {
				return err
			}
			lanes[l] = b.reshareXor(v, 1)
		}
		b.state[ow.ID()] = wireState{shares: lanes}
	}
	return nil
}

func (b *Backend) evalBooleanToArithmetic(g *share.Gate) error {
	mask := share.Mask(g.Bits)
	out := g.Out[0]
	lanes := make([][]uint64, out.SIMD())
	for l := range lanes {
		var v uint64
		for j, w := range g.In[0] {
			bit, err := b.reconstruct(w, l)
			if err != nil {
				return err
			}
			v |= bit << j
		}
		lanes[l] = b.reshareAdd(v&mask, mask)
	}
	b.state[out.ID()] = wireState{shares: lanes}
	return nil
}

func (b *Backend) evalArithmeticToBMR(g *share.Gate) error {
	in := g.In[0][0]
	for j, ow := range g.Out {
		lanes := make([][]uint64, in.SIMD())
		for l := range lanes {
			v, err := b.reconstruct(in, l)
			if err != nil {
				return err
			}
			lanes[l] = b.reshareXor((v>>j)&1, 1)
		}
		b.state[ow.ID()] = wireState{shares: lanes}
	}
	return nil
}

// linearArith evaluates a party-local arithmetic gate share by
// share.
func (b *Backend) linearArith(g *share.Gate,
	f func(a, p, mask uint64) uint64) error {

	mask := share.Mask(g.Bits)
	for i, ow := range g.Out {
		a, err := b.secretShares(g.In[0][i])
		if err != nil {
			return err
		}
		p, err := b.secretShares(g.In[1][i])
		if err != nil {
			return err
		}
		lanes := make([][]uint64, len(a))
		for l := range a {
			out := make([]uint64, b.parties)
			for party := range out {
				out[party] = f(a[l][party], p[l][party], mask)
			}
			lanes[l] = out
		}
		b.state[ow.ID()] = wireState{shares: lanes}
	}
	return nil
}

// constArith evaluates a constant-folding arithmetic gate: the
// constant group holds a single public wire broadcast over the
// secret lanes.
func (b *Backend) constArith(g *share.Gate,
	f func(sh, cv, mask uint64, party int) uint64) error {

	mask := share.Mask(g.Bits)
	cw := g.In[1][0]
	for i, ow := range g.Out {
		a, err := b.secretShares(g.In[0][i])
		if err != nil {
			return err
		}
		lanes := make([][]uint64, len(a))
		for l := range a {
			cv := clearLane(cw.Clear(), l)
			out := make([]uint64, b.parties)
			for party := range out {
				out[party] = f(a[l][party], cv, mask, party)
			}
			lanes[l] = out
		}
		b.state[ow.ID()] = wireState{shares: lanes}
	}
	return nil
}

// dealerArith evaluates a two-operand multiplicative gate by
// reconstructing the operands and re-sharing the product.
func (b *Backend) dealerArith(g *share.Gate,
	f func(av, bv, mask uint64) uint64) error {

	mask := share.Mask(g.Bits)
	for i, ow := range g.Out {
		aw, pw := g.In[0][i], g.In[1][i]
		lanes := make([][]uint64, aw.SIMD())
		for l := range lanes {
			av, err := b.reconstruct(aw, l)
			if err != nil {
				return err
			}
			pv, err := b.reconstruct(pw, l)
			if err != nil {
				return err
			}
			lanes[l] = b.reshareAdd(f(av, pv, mask), mask)
		}
		b.state[ow.ID()] = wireState{shares: lanes}
	}
	return nil
}

func (b *Backend) dealerArithUnary(g *share.Gate,
	f func(av, mask uint64) uint64) error {

	mask := share.Mask(g.Bits)
	for i, ow := range g.Out {
		aw := g.In[0][i]
		lanes := make([][]uint64, aw.SIMD())
		for l := range lanes {
			av, err := b.reconstruct(aw, l)
			if err != nil {
				return err
			}
			lanes[l] = b.reshareAdd(f(av, mask), mask)
		}
		b.state[ow.ID()] = wireState{shares: lanes}
	}
	return nil
}

// dealerBitwise evaluates a bitwise gate by reconstructing the
// operand bits and re-sharing the result in the output protocol.
func (b *Backend) dealerBitwise(g *share.Gate,
	f func(av, bv uint64) uint64) error {

	for i, ow := range g.Out {
		aw := g.In[0][i]
		var pw *share.Wire
		if len(g.In) > 1 {
			pw = g.In[1][i]
		}
		lanes := make([][]uint64, aw.SIMD())
		for l := range lanes {
			av, err := b.reconstruct(aw, l)
			if err != nil {
				return err
			}
			var pv uint64
			if pw != nil {
				pv, err = b.reconstruct(pw, l)
				if err != nil {
					return err
				}
			}
			lanes[l] = b.reshareXor(f(av, pv), 1)
		}
		b.state[ow.ID()] = wireState{shares: lanes}
	}
	return nil
}

// evalXor evaluates XOR party-locally over the operand shares.
func (b *Backend) evalXor(g *share.Gate) error {
	for i, ow := range g.Out {
		a, err := b.secretShares(g.In[0][i])
		if err != nil {
			return err
		}
		p, err := b.secretShares(g.In[1][i])
		if err != nil {
			return err
		}
		lanes := make([][]uint64, len(a))
		for l := range a {
			out := make([]uint64, len(a[l]))
			for party := range out {
				out[party] = a[l][party] ^ p[l][party]
			}
			lanes[l] = out
		}
		b.state[ow.ID()] = wireState{shares: lanes}
	}
	return nil
}

// secretShares returns the per-lane party shares of a secret wire.
func (b *Backend) secretShares(w *share.Wire) ([][]uint64, error) {
	st := b.state[w.ID()]
	if st.shares == nil {
		return nil, fmt.Errorf("wire %d has not been evaluated", w.ID())
	}
	return st.shares, nil
}

// reconstruct opens the wire's value on the given SIMD lane: XOR of
// the shares for bit wires, sum modulo 2^bits for arithmetic lanes,
// the public value for constants.
func (b *Backend) reconstruct(w *share.Wire, lane int) (uint64, error) {
	if w.Constant() {
		return clearLane(w.Clear(), lane), nil
	}
	st := b.state[w.ID()]
	if st.isClear {
		return clearLane(st.clear, lane), nil
	}
	if st.shares == nil {
		return 0, fmt.Errorf("wire %d has not been evaluated", w.ID())
	}

	parties := st.shares[lane]
	if w.Protocol() == share.ArithmeticGMW {
		mask := share.Mask(w.Bits())
		var sum uint64
		for _, s := range parties {
			sum += s
		}
		return sum & mask, nil
	}
	var v uint64
	for _, s := range parties {
		v ^= s
	}
	return v, nil
}

// reshareXor splits the value into fresh XOR shares.
func (b *Backend) reshareXor(value, mask uint64) []uint64 {
	shares := make([]uint64, b.parties)
	var acc uint64
	for i := 1; i < b.parties; i++ {
		r := b.prg.uint64() & mask
		shares[i] = r
		acc ^= r
	}
	shares[0] = (value ^ acc) & mask
	return shares
}

// reshareAdd splits the value into fresh additive shares modulo the
// mask's ring.
func (b *Backend) reshareAdd(value, mask uint64) []uint64 {
	shares := make([]uint64, b.parties)
	var acc uint64
	for i := 1; i < b.parties; i++ {
		r := b.prg.uint64() & mask
		shares[i] = r
		acc += r
	}
	shares[0] = (value - acc) & mask
	return shares
}

func clearLane(values []uint64, lane int) uint64 {
	if len(values) == 1 {
		return values[0]
	}
	return values[lane]
}

// debugShares logs the per-party shares of a wire when verbose.
func (b *Backend) debugShares(label string, wire int, lanes [][]uint64) {
	for l, parties := range lanes {
		for party, v := range parties {
			b.logger.Debugf("%s w%d[%d]: share%s=%d",
				label, wire, l, superscript.Itoa(party), v)
		}
	}
}
