//
// parser_test.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package circuit

import (
	"bytes"
	"strings"
	"testing"
)

var data = `3 7
2 2 1

2 1 0 2 4 XOR
2 1 1 3 5 XOR
2 1 4 5 6 AND
`

func TestParse(t *testing.T) {
	circ, err := Parse(bytes.NewReader([]byte(data)))
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	if circ.NumGates != 3 || circ.NumWires != 7 {
		t.Errorf("unexpected counts: %s", circ)
	}
	if circ.NumInputs() != 4 || circ.NumOutputs != 1 {
		t.Errorf("unexpected input/output counts: %s", circ)
	}
	if circ.Stats[XOR] != 2 || circ.Stats[AND] != 1 {
		t.Errorf("unexpected stats: %s", circ)
	}
	if circ.Cost() != 4 {
		t.Errorf("unexpected cost: %d", circ.Cost())
	}
}

func TestParseInv(t *testing.T) {
	circ, err := Parse(strings.NewReader(`1 3
2 0 1

1 1 1 2 INV
`))
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	if circ.Gates[0].Op != INV {
		t.Errorf("unexpected op: %s", circ.Gates[0].Op)
	}
	if len(circ.Gates[0].Inputs()) != 1 {
		t.Errorf("unexpected inputs: %v", circ.Gates[0].Inputs())
	}
}

var parseErrorTests = []string{
	// Bad header.
	`1
2 1 1
`,
	// Wire out of range.
	`1 3
2 1 1

2 1 0 5 2 AND
`,
	// Unknown operation.
	`1 3
2 1 1

2 1 0 1 2 NAND
`,
	// INV with two inputs.
	`1 4
2 1 1

2 1 0 1 3 INV
`,
	// Gate count does not match.
	`2 3
2 1 1

2 1 0 1 2 AND
`,
	// Gate reads its own output.
	`1 3
2 1 0

2 1 0 2 2 AND
`,
}

func TestParseErrors(t *testing.T) {
	for idx, input := range parseErrorTests {
		_, err := Parse(strings.NewReader(input))
		if err == nil {
			t.Errorf("test %d: Parse succeeded on invalid input", idx)
		}
	}
}

func TestMarshal(t *testing.T) {
	circ, err := Parse(bytes.NewReader([]byte(data)))
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}

	var buf bytes.Buffer
	if err := circ.Marshal(&buf); err != nil {
		t.Fatalf("Marshal failed: %s", err)
	}
	parsed, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse of marshaled circuit failed: %s", err)
	}
	if parsed.NumGates != circ.NumGates || parsed.NumWires != circ.NumWires {
		t.Errorf("marshal round trip changed counts: %s vs %s", circ, parsed)
	}
	if len(parsed.Gates) != len(circ.Gates) {
		t.Fatalf("marshal round trip changed gates")
	}
	for i, g := range circ.Gates {
		if parsed.Gates[i] != g {
			t.Errorf("gate %d: %s vs %s", i, g, parsed.Gates[i])
		}
	}
}

func TestValidate(t *testing.T) {
	circ := &Circuit{
		NumGates:   1,
		NumWires:   3,
		NumInputsA: 2,
		NumOutputs: 1,
		Gates: []Gate{
			{Input0: 0, Input1: 1, Output: 2, Op: AND},
		},
	}
	circ.AssignStats()
	if err := circ.Validate(); err != nil {
		t.Fatalf("Validate failed: %s", err)
	}

	circ.NumOutputs = 4
	if err := circ.Validate(); err == nil {
		t.Errorf("Validate accepted too many outputs")
	}
}
