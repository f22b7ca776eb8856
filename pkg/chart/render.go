package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const seriesName = "词频"

// Render writes the chart for a series as embeddable HTML. Rendering
// happens entirely in memory; any on-disk caching is the caller's choice.
func Render(w io.Writer, series *Series, title string) error {
	switch series.Kind {
	case KindBar, KindBarH:
		return renderBar(w, series, title)
	case KindPie:
		return renderPie(w, series, title)
	case KindLine:
		return renderLine(w, series, title, false)
	case KindArea:
		return renderLine(w, series, title, true)
	case KindScatter:
		return renderScatter(w, series, title)
	case KindRadar:
		return renderRadar(w, series, title)
	case KindCloud:
		return renderCloud(w, series, title)
	default:
		return &UnsupportedKindError{Kind: series.Kind}
	}
}

func renderBar(w io.Writer, series *Series, title string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	data := make([]opts.BarData, len(series.Values))
	for i, value := range series.Values {
		data[i] = opts.BarData{Value: value}
	}

	bar.SetXAxis(series.Labels).AddSeries(seriesName, data)
	if series.SwapAxes {
		bar.XYReversal()
	}
	return bar.Render(w)
}

func renderPie(w io.Writer, series *Series, title string) error {
	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	data := make([]opts.PieData, len(series.Values))
	for i, value := range series.Values {
		data[i] = opts.PieData{Name: series.Labels[i], Value: value}
	}

	pie.AddSeries(seriesName, data,
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"30%", "60%"}}))
	return pie.Render(w)
}

func renderLine(w io.Writer, series *Series, title string, area bool) error {
	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	data := make([]opts.LineData, len(series.Values))
	for i, value := range series.Values {
		data[i] = opts.LineData{Value: value}
	}

	line.SetXAxis(series.Labels)
	if area {
		line.AddSeries(seriesName, data,
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.5}))
	} else {
		line.AddSeries(seriesName, data)
	}
	return line.Render(w)
}

func renderScatter(w io.Writer, series *Series, title string) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	data := make([]opts.ScatterData, len(series.Values))
	for i, value := range series.Values {
		data[i] = opts.ScatterData{Value: value}
	}

	scatter.SetXAxis(series.Labels).AddSeries(seriesName, data)
	return scatter.Render(w)
}

func renderRadar(w io.Writer, series *Series, title string) error {
	radar := charts.NewRadar()

	indicators := make([]*opts.Indicator, len(series.Indicators))
	for i, indicator := range series.Indicators {
		indicators[i] = &opts.Indicator{
			Name: indicator.Name,
			Max:  float32(indicator.Max),
		}
	}

	radar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithRadarComponentOpts(opts.RadarComponent{Indicator: indicators}),
	)

	values := make([]float32, len(series.Values))
	for i, value := range series.Values {
		values[i] = float32(value)
	}

	radar.AddSeries(seriesName, []opts.RadarData{{Value: values}})
	return radar.Render(w)
}

func renderCloud(w io.Writer, series *Series, title string) error {
	cloud := charts.NewWordCloud()
	cloud.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	data := make([]opts.WordCloudData, len(series.Values))
	for i, value := range series.Values {
		data[i] = opts.WordCloudData{Name: series.Labels[i], Value: value}
	}

	cloud.AddSeries(seriesName, data,
		charts.WithWorldCloudChartOpts(opts.WordCloudChart{
			SizeRange: []float32{20, 100},
			Shape:     "diamond",
		}))
	return cloud.Render(w)
}
