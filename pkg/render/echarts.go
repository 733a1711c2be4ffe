package render

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/0x0FACED/voronoi-regions/pkg/regions"
	"github.com/0x0FACED/voronoi-regions/pkg/voronoi"
)

func prepareScatter(scatter *charts.Scatter, view Viewport) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Ячейки Вороного",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "X",
			Min:  view.MinX,
			Max:  view.MaxX,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Y",
			Min:  view.MinY,
			Max:  view.MaxY,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Chart draws the sites as a scatter and every cell as a closed line in its
// palette colour. Axes are fixed to view, far points are cut off by the chart.
func Chart(sites []voronoi.Vertex, res *regions.Result, view Viewport, palette []string) (*charts.Scatter, error) {
	colours, err := Palette(len(res.Cells), palette)
	if err != nil {
		return nil, err
	}

	scatter := charts.NewScatter()
	prepareScatter(scatter, view)

	points := make([]opts.ScatterData, 0, len(sites))
	for _, s := range sites {
		points = append(points, opts.ScatterData{
			Value: []float64{s.X, s.Y},
		})
	}

	scatter.AddSeries("Станции", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for i, cell := range res.Cells {
		data := make([]opts.LineData, 0, len(cell.Polygon)+1)
		for _, p := range cell.Polygon {
			data = append(data, opts.LineData{Value: []float64{p.X, p.Y}})
		}
		// замыкаем контур
		if len(cell.Polygon) > 0 {
			p := cell.Polygon[0]
			data = append(data, opts.LineData{Value: []float64{p.X, p.Y}})
		}

		line := charts.NewLine()
		line.AddSeries(fmt.Sprintf("Ячейка %d", cell.Site), data).
			SetSeriesOptions(
				charts.WithLineStyleOpts(opts.LineStyle{
					Color: colours[i],
					Width: 2,
				}),
				charts.WithItemStyleOpts(opts.ItemStyle{
					Color: colours[i],
				}),
			)

		scatter.Overlap(line)
	}

	return scatter, nil
}
