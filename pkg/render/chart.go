package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/de-tools/heightweight/pkg/models/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

var (
	ErrNoData        = errors.New("no observations to plot")
	ErrUnknownFormat = errors.New("unknown chart format")
)

const (
	SeriesPoints     = "Individual Data Points"
	SeriesRegression = "Regression Line"
)

// Palette of the explorer UI.
var (
	ColorPrimary    = drawing.ColorFromHex("0066cc")
	ColorSecondary  = drawing.ColorFromHex("5ac8fa")
	ColorBackground = drawing.ColorFromHex("f5f5f5")
	ColorText       = drawing.ColorFromHex("1c3f60")
	ColorGrid       = drawing.ColorFromHex("e0e0e0")
)

type Options struct {
	Width  int
	Height int
}

func DefaultOptions() Options {
	return Options{Width: 960, Height: 500}
}

func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

func axisStyle() chart.Style {
	return chart.Style{
		StrokeColor: ColorText,
		FontColor:   ColorText,
	}
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor:     ColorGrid,
		StrokeWidth:     1,
		StrokeDashArray: []float64{3, 3},
	}
}

// NewChart builds the scatter plot of the snapshot sample with the regression
// segment drawn across the full X domain.
func NewChart(snap domain.Snapshot, opts Options) (*chart.Chart, error) {
	if len(snap.Sample) == 0 {
		return nil, ErrNoData
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    SeriesPoints,
			Style:   pointStyle(ColorSecondary),
			XValues: snap.Sample.Heights(),
			YValues: snap.Sample.Weights(),
		},
	}

	if snap.Fitted {
		x1, y1, x2, y2 := snap.RegressionSegment()
		series = append(series, chart.ContinuousSeries{
			Name: SeriesRegression,
			Style: chart.Style{
				StrokeColor: ColorPrimary,
				StrokeWidth: 3,
			},
			XValues: []float64{x1, x2},
			YValues: []float64{y1, y2},
		})
	}

	ch := &chart.Chart{
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			FillColor: ColorBackground,
			Padding:   chart.Box{Top: 48, Left: 60, Right: 20, Bottom: 60},
		},
		Canvas: chart.Style{FillColor: drawing.ColorWhite},
		XAxis: chart.XAxis{
			Name:           "Height",
			NameStyle:      axisStyle(),
			Style:          axisStyle(),
			Range:          displayRange(snap.DomainX),
			ValueFormatter: unitFormatter("cm"),
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           "Weight",
			NameStyle:      axisStyle(),
			Style:          axisStyle(),
			Range:          displayRange(snap.DomainY),
			ValueFormatter: unitFormatter("kg"),
			GridMajorStyle: gridStyle(),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.LegendThin(ch)}

	return ch, nil
}

func Render(w io.Writer, snap domain.Snapshot, format Format, opts Options) error {
	ch, err := NewChart(snap, opts)
	if err != nil {
		return err
	}
	return Write(w, ch, format)
}

func Write(w io.Writer, ch *chart.Chart, format Format) error {
	var provider chart.RendererProvider
	switch format {
	case FormatSVG:
		provider = chart.SVG
	case FormatPNG:
		provider = chart.PNG
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// displayRange widens a zero-width domain by one unit on each side; go-chart
// cannot draw an axis without extent.
func displayRange(d domain.AxisDomain) *chart.ContinuousRange {
	if d.Max-d.Min == 0 {
		return &chart.ContinuousRange{Min: d.Min - 1, Max: d.Max + 1}
	}
	return &chart.ContinuousRange{Min: d.Min, Max: d.Max}
}

func unitFormatter(unit string) chart.ValueFormatter {
	return func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return fmt.Sprintf("%.0f%s", f, unit)
		}
		return ""
	}
}
