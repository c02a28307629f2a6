package render

import (
	"bytes"
	"testing"

	"github.com/de-tools/heightweight/pkg/models/domain"
	"github.com/de-tools/heightweight/pkg/services/regression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fittedSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Sample: domain.Sample{
			domain.NewObservation(160, 60),
			domain.NewObservation(170, 72),
			domain.NewObservation(180, 81),
		},
		Regression: domain.Regression{Slope: 1.05, Intercept: -107.5},
		Fitted:     true,
		DomainX:    domain.AxisDomain{Min: 158, Max: 182},
		DomainY:    domain.AxisDomain{Min: 57.9, Max: 83.1},
	}
}

func TestNewChart_Series(t *testing.T) {
	tests := []struct {
		name       string
		fitted     bool
		wantSeries []string
	}{
		{name: "with regression", fitted: true, wantSeries: []string{SeriesPoints, SeriesRegression}},
		{name: "before first fit", fitted: false, wantSeries: []string{SeriesPoints}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := fittedSnapshot()
			snap.Fitted = tt.fitted

			ch, err := NewChart(snap, DefaultOptions())
			require.NoError(t, err)

			var names []string
			for _, s := range ch.Series {
				names = append(names, s.GetName())
			}
			assert.Equal(t, tt.wantSeries, names)
			assert.Equal(t, 960, ch.Width)
			assert.Equal(t, 500, ch.Height)
		})
	}
}

func TestNewChart_RegressionSpansDomain(t *testing.T) {
	ch, err := NewChart(fittedSnapshot(), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, ch.Series, 2)

	line, ok := ch.Series[1].(interface {
		GetValues(int) (float64, float64)
	})
	require.True(t, ok)

	x1, y1 := line.GetValues(0)
	x2, y2 := line.GetValues(1)
	assert.Equal(t, 158.0, x1)
	assert.InDelta(t, 1.05*158-107.5, y1, 1e-9)
	assert.Equal(t, 182.0, x2)
	assert.InDelta(t, 1.05*182-107.5, y2, 1e-9)
}

func TestRender(t *testing.T) {
	t.Run("svg", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, fittedSnapshot(), FormatSVG, DefaultOptions()))

		out := buf.String()
		assert.Contains(t, out, "<svg")
		assert.Contains(t, out, SeriesPoints)
		assert.Contains(t, out, SeriesRegression)
	})

	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, fittedSnapshot(), FormatPNG, Options{Width: 320, Height: 200}))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
	})

	t.Run("unknown format", func(t *testing.T) {
		err := Render(&bytes.Buffer{}, fittedSnapshot(), Format("gif"), DefaultOptions())
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("empty sample", func(t *testing.T) {
		err := Render(&bytes.Buffer{}, domain.Snapshot{}, FormatSVG, DefaultOptions())
		assert.ErrorIs(t, err, ErrNoData)
	})
}

func TestRender_ZeroWidthDomains(t *testing.T) {
	tests := []struct {
		name   string
		sample domain.Sample
	}{
		{name: "identical heights", sample: domain.Sample{domain.NewObservation(170, 60), domain.NewObservation(170, 80)}},
		{name: "single observation", sample: domain.Sample{domain.NewObservation(170, 70)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domainX, err := regression.DomainFor(tt.sample.Heights())
			require.NoError(t, err)
			domainY, err := regression.DomainFor(tt.sample.Weights())
			require.NoError(t, err)
			require.Equal(t, domainX.Min, domainX.Max)

			snap := domain.Snapshot{Sample: tt.sample, DomainX: domainX, DomainY: domainY}

			ch, err := NewChart(snap, DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, 169.0, ch.XAxis.Range.GetMin())
			assert.Equal(t, 171.0, ch.XAxis.Range.GetMax())

			var buf bytes.Buffer
			require.NoError(t, Render(&buf, snap, FormatSVG, DefaultOptions()))
			assert.Contains(t, buf.String(), "<svg")
		})
	}
}
