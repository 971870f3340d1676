//
// marshal.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"
)

// Marshal marshals the circuit in the Bristol circuit format.
func (c *Circuit) Marshal(out io.Writer) error {
	if _, err := fmt.Fprintf(out, "%d %d\n", c.NumGates, c.NumWires); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "%d %d %d\n\n",
		c.NumInputsA, c.NumInputsB, c.NumOutputs); err != nil {
		return err
	}

	for _, g := range c.Gates {
		var err error
		switch g.Op {
		case INV:
			_, err = fmt.Fprintf(out, "1 1 %d %d %s\n",
				g.Input0, g.Output, g.Op)
		default:
			_, err = fmt.Fprintf(out, "2 1 %d %d %d %s\n",
				g.Input0, g.Input1, g.Output, g.Op)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
