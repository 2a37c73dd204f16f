package charts

import (
	"fmt"
	"io"
	"os"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteHTML renders every chart into a single HTML page.
func WriteHTML(w io.Writer, cs []Chart) error {
	page := components.NewPage()
	page.PageTitle = "Job Insights"

	for _, c := range cs {
		switch c.Kind {
		case KindWordCloud:
			page.AddCharts(wordCloud(c))
		default:
			page.AddCharts(bar(c))
		}
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// WriteHTMLFile renders the charts to path, replacing any existing file.
func WriteHTMLFile(path string, cs []Chart) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteHTML(f, cs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func bar(c Chart) *echarts.Bar {
	labels := make([]string, len(c.Points))
	data := make([]opts.BarData, len(c.Points))
	for i, p := range c.Points {
		labels[i] = p.Label
		data[i] = opts.BarData{Name: p.Label, Value: p.Value}
	}

	b := echarts.NewBar()
	b.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: c.Title}),
		echarts.WithXAxisOpts(opts.XAxis{
			Name:      c.XLabel,
			AxisLabel: &opts.AxisLabel{Rotate: 45, Interval: "0"},
		}),
		echarts.WithYAxisOpts(opts.YAxis{Name: c.YLabel}),
	)
	b.SetXAxis(labels).AddSeries(c.YLabel, data)
	return b
}

func wordCloud(c Chart) *echarts.WordCloud {
	data := make([]opts.WordCloudData, len(c.Points))
	for i, p := range c.Points {
		data[i] = opts.WordCloudData{Name: p.Label, Value: p.Value}
	}

	wc := echarts.NewWordCloud()
	wc.SetGlobalOptions(echarts.WithTitleOpts(opts.Title{Title: c.Title}))
	wc.AddSeries("words", data)
	return wc
}
