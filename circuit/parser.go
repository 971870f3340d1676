//
// parser.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package circuit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load loads a circuit description from the Bristol-format file.
func Load(file string) (*Circuit, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse parses a circuit description in the Bristol circuit format:
// the first line holds the gate and wire counts, the second line the
// input and output wire counts, and each remaining line one gate.
func Parse(in io.Reader) (*Circuit, error) {
	r := bufio.NewReader(in)

	// NumGates NumWires
	line, err := readLine(r)
	if err != nil {
		return nil, err
	}
	if len(line) != 2 {
		return nil, errors.New("circuit: invalid 1st line")
	}
	numGates, err := strconv.Atoi(line[0])
	if err != nil {
		return nil, err
	}
	numWires, err := strconv.Atoi(line[1])
	if err != nil {
		return nil, err
	}

	// NA NB NOut
	line, err = readLine(r)
	if err != nil {
		return nil, err
	}
	if len(line) != 3 {
		return nil, errors.New("circuit: invalid 2nd line")
	}
	na, err := strconv.Atoi(line[0])
	if err != nil {
		return nil, err
	}
	nb, err := strconv.Atoi(line[1])
	if err != nil {
		return nil, err
	}
	nout, err := strconv.Atoi(line[2])
	if err != nil {
		return nil, err
	}

	var gates []Gate
	for {
		line, err = readLine(r)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if len(line) < 4 {
			return nil, fmt.Errorf("circuit: invalid gate: %v", line)
		}
		nin, err := strconv.Atoi(line[0])
		if err != nil {
			return nil, err
		}
		nw, err := strconv.Atoi(line[1])
		if err != nil {
			return nil, err
		}
		if nw != 1 || 2+nin+nw+1 != len(line) {
			return nil, fmt.Errorf("circuit: invalid gate: %v", line)
		}

		var wires []Wire
		for i := 0; i < nin+nw; i++ {
			v, err := strconv.Atoi(line[2+i])
			if err != nil {
				return nil, err
			}
			if v < 0 || v >= numWires {
				return nil, fmt.Errorf("circuit: wire %d out of range", v)
			}
			wires = append(wires, Wire(v))
		}

		var op Operation
		switch line[len(line)-1] {
		case "XOR":
			op = XOR
		case "XNOR":
			op = XNOR
		case "AND":
			op = AND
		case "OR":
			op = OR
		case "INV", "NOT":
			op = INV
		default:
			return nil, fmt.Errorf("circuit: invalid operation %s",
				line[len(line)-1])
		}

		gate := Gate{
			Op:     op,
			Output: wires[nin],
		}
		switch op {
		case INV:
			if nin != 1 {
				return nil, fmt.Errorf("circuit: invalid INV gate: %v", line)
			}
			gate.Input0 = wires[0]
		default:
			if nin != 2 {
				return nil, fmt.Errorf("circuit: invalid %s gate: %v",
					op, line)
			}
			gate.Input0 = wires[0]
			gate.Input1 = wires[1]
		}
		gates = append(gates, gate)
	}

	circ := &Circuit{
		NumGates:   numGates,
		NumWires:   numWires,
		NumInputsA: na,
		NumInputsB: nb,
		NumOutputs: nout,
		Gates:      gates,
	}
	circ.AssignStats()

	if err := circ.Validate(); err != nil {
		return nil, err
	}
	return circ, nil
}

func readLine(r *bufio.Reader) ([]string, error) {
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		parts := strings.Fields(line)
		if len(parts) > 0 {
			return parts, nil
		}
	}
}
