//
// chart.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package main

import (
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/sharelab/mpc/share"
)

// writeChart renders the per-kind gate counts as an HTML bar chart.
func writeChart(path string, stats share.Stats) error {
	var labels []string
	var items []opts.BarData

	for _, kind := range share.GateKinds() {
		count := stats.Count(kind)
		if count == 0 {
			continue
		}
		labels = append(labels, kind.String())
		items = append(items, opts.BarData{Value: count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Gate distribution"}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Gate distribution",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("gates", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(true),
		}))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	page := components.NewPage()
	page.AddCharts(bar)
	return page.Render(f)
}
