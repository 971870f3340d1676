//
// main.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/sharelab/mpc/engine"
	"github.com/sharelab/mpc/share"
)

func main() {
	parties := flag.Int("parties", 0,
		"number of parties (default one per contribution)")
	threshold := flag.Uint64("threshold", 0, "threshold to compare against")
	chartFile := flag.String("chart", "",
		"write gate-distribution HTML chart to file")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	if len(flag.Args()) < 2 {
		log.Fatalf("usage: thresum [options] value value...")
	}
	values, err := parseValues(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	n := *parties
	if n == 0 {
		n = len(values)
	}
	backend, err := engine.New(engine.Options{
		Parties: n,
		Verbose: *verbose,
	})
	if err != nil {
		log.Fatal(err)
	}

	match, sum, err := buildCircuit(backend, values, uint32(*threshold))
	if err != nil {
		log.Fatal(err)
	}
	if err := backend.Run(); err != nil {
		log.Fatal(err)
	}

	total, err := backend.Uint64(sum)
	if err != nil {
		log.Fatal(err)
	}
	hit, err := backend.Bool(match)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("sum: %d\n", total)
	fmt.Printf("sum == %d: %v\n", *threshold, hit)
	backend.Report(os.Stdout)

	if len(*chartFile) > 0 {
		if err := writeChart(*chartFile, backend.Stats()); err != nil {
			log.Fatalf("chart: %s", err)
		}
		fmt.Printf("gate distribution written to %s\n", *chartFile)
	}
}

// buildCircuit shares the contributions, sums them in the arithmetic
// ring, and compares the sum for equality against the threshold in
// the boolean domain. The reveal handles for the equality bit and
// the sum are returned.
func buildCircuit(backend *engine.Backend, values []uint32, threshold uint32) (
	match, sum share.Handle, err error) {

	acc, err := engine.InputArithmetic(backend, values[0])
	if err != nil {
		return
	}
	for _, v := range values[1:] {
		var in share.Handle
		in, err = engine.InputArithmetic(backend, v)
		if err != nil {
			return
		}
		acc, err = acc.Add(in)
		if err != nil {
			return
		}
	}

	limit, err := engine.InputArithmetic(backend, threshold)
	if err != nil {
		return
	}

	// Equality is a boolean operation; route both operands through
	// the conversion chain.
	accBits, err := acc.Convert(share.BooleanGMW)
	if err != nil {
		return
	}
	limitBits, err := limit.Convert(share.BooleanGMW)
	if err != nil {
		return
	}
	eq, err := accBits.Equal(limitBits)
	if err != nil {
		return
	}

	match, err = eq.Out(share.AllParties)
	if err != nil {
		return
	}
	sum, err = acc.Out(share.AllParties)
	return
}

func parseValues(args []string) ([]uint32, error) {
	values := make([]uint32, len(args))
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %s", arg, err)
		}
		values[i] = uint32(v)
	}
	return values, nil
}
