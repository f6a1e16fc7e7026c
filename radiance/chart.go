package radiance

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// HTML chart report for one finished run: the ambient profile, the optical
// depth build-up, and the per-layer radiance contributions, keyed by the
// top-of-atmosphere-first layer index used everywhere else in the report.

// RenderReportHTML writes a self-contained HTML page of charts for a report.
func RenderReportHTML(report *Report, w io.Writer) error {
	page := components.NewPage()
	page.AddCharts(
		profileChart(report),
		opticalDepthChart(report),
		radianceChart(report),
	)
	return page.Render(w)
}

func layerAxis(report *Report) []string {
	axis := make([]string, len(report.Layers))
	for i, l := range report.Layers {
		axis[i] = fmt.Sprintf("%.0f m", l.StartAltitude)
	}
	return axis
}

func profileChart(report *Report) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "CO₂ 15 µm band transfer report"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Ambient profile",
			Subtitle: fmt.Sprintf("%d layers, top of atmosphere first", len(report.Layers)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "T (K)"}),
	)

	temps := make([]opts.LineData, len(report.Layers))
	kappas := make([]opts.LineData, len(report.Layers))
	for i := range report.Layers {
		temps[i] = opts.LineData{Value: report.Layers[i].Temperature}
		kappas[i] = opts.LineData{Value: report.States[i].Kappa}
	}
	line.SetXAxis(layerAxis(report)).
		AddSeries("temperature", temps).
		AddSeries("kappa", kappas)
	return line
}

func opticalDepthChart(report *Report) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Optical depth"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "τ"}),
	)

	deltas := make([]opts.LineData, len(report.Trace))
	totals := make([]opts.LineData, len(report.Trace))
	for i, row := range report.Trace {
		deltas[i] = opts.LineData{Value: row.DeltaTau}
		totals[i] = opts.LineData{Value: row.OpticalDepth}
	}
	line.SetXAxis(layerAxis(report)).
		AddSeries("delta tau", deltas).
		AddSeries("cumulative tau", totals)
	return line
}

func radianceChart(report *Report) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Radiance",
			Subtitle: fmt.Sprintf("emergent %.3e W·sr⁻¹·m⁻²·Hz⁻¹, %.3e photons/s",
				report.Radiance, report.PhotonFlux),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "I"}),
	)

	deltas := make([]opts.LineData, len(report.Trace))
	totals := make([]opts.LineData, len(report.Trace))
	for i, row := range report.Trace {
		deltas[i] = opts.LineData{Value: row.DeltaRadiance}
		totals[i] = opts.LineData{Value: row.Radiance}
	}
	line.SetXAxis(layerAxis(report)).
		AddSeries("delta radiance", deltas).
		AddSeries("accumulated radiance", totals)
	return line
}
