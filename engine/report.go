//
// report.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package engine

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"

	"github.com/sharelab/mpc/share"
)

// Stats returns the gate counts accumulated by the backend's
// register.
func (b *Backend) Stats() share.Stats {
	return b.reg.Stats()
}

// Report renders a gate-count report of the constructed circuit.
func (b *Backend) Report(w io.Writer) {
	stats := b.reg.Stats()
	total := stats.Total()

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Gate").SetAlign(tabulate.ML)
	tab.Header("Count").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)

	for _, kind := range share.GateKinds() {
		count := stats.Count(kind)
		if count == 0 {
			continue
		}
		row := tab.Row()
		row.Column(kind.String())
		row.Column(fmt.Sprintf("%d", count))
		row.Column(fmt.Sprintf("%.2f%%", float64(count)/float64(total)*100))
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", total)).SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d wires", b.reg.NumWires())).
		SetFormat(tabulate.FmtBold)

	tab.Print(w)
}
