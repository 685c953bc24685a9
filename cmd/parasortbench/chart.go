package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// plotTopByteHistogram renders the 256-bucket top-byte distribution of a
// generated array as an HTML bar chart, the supplement SPEC_FULL.md §2
// names for visualizing a benchmark run's bucket balance.
func plotTopByteHistogram(a []int32, filename string) error {
	var counts [256]int
	for _, v := range a {
		counts[uint32(v)>>24]++
	}

	xAxis := make([]string, 256)
	data := make([]opts.BarData, 256)
	for i := 0; i < 256; i++ {
		xAxis[i] = fmt.Sprintf("%d", i)
		data[i] = opts.BarData{Value: counts[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       "parasort top-byte histogram",
			Width:           "160vh",
			Height:          "60vh",
			Theme:           types.ThemeVintage,
			BackgroundColor: "transparent",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Top-byte bucket distribution",
			Left:  "center",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "bucket",
			Type: "category",
		}),
	)
	bar.SetXAxis(xAxis).AddSeries("count", data)

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(bar)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create histogram file %s: %w", filename, err)
	}
	defer f.Close()

	return page.Render(f)
}
