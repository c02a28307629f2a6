package explorer

import (
	"context"
	"math"
	"testing"

	"github.com/de-tools/heightweight/pkg/models/domain"
	"github.com/de-tools/heightweight/pkg/services/regression"
	"github.com/de-tools/heightweight/pkg/services/sampling"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(count int) domain.Sample {
	args := m.Called(count)
	return args.Get(0).(domain.Sample)
}

type scriptedSource struct {
	draws []float64
	next  int
}

func (s *scriptedSource) Float64() float64 {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v
}

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestExplorer_InitialSnapshotIsZero(t *testing.T) {
	exp := NewExplorer(new(mockGenerator), DefaultSampleSize)

	snap := exp.Snapshot(testContext(t))

	assert.Equal(t, domain.Regression{}, snap.Regression)
	assert.False(t, snap.Fitted)
	assert.Equal(t, domain.AxisDomain{}, snap.DomainX)
	assert.Equal(t, domain.AxisDomain{}, snap.DomainY)
}

func TestExplorer_RefreshUsesConfiguredSize(t *testing.T) {
	gen := new(mockGenerator)
	gen.On("Generate", 3).Return(domain.Sample{
		domain.NewObservation(150, 50),
		domain.NewObservation(175, 75),
		domain.NewObservation(200, 100),
	})
	exp := NewExplorer(gen, 3)

	snap := exp.Refresh(testContext(t))

	gen.AssertExpectations(t)
	assert.True(t, snap.Fitted)
	assert.NotEmpty(t, snap.RunID)
	assert.InDelta(t, 1.0, snap.Regression.Slope, 1e-9)
	assert.InDelta(t, 0.0, snap.Regression.Intercept, 1e-9)
	assert.InDelta(t, 145.0, snap.DomainX.Min, 1e-9)
	assert.InDelta(t, 205.0, snap.DomainX.Max, 1e-9)
	assert.InDelta(t, 45.0, snap.DomainY.Min, 1e-9)
	assert.InDelta(t, 105.0, snap.DomainY.Max, 1e-9)
	assert.Equal(t, snap, exp.Snapshot(testContext(t)))
}

func TestExplorer_InsufficientDataKeepsDefault(t *testing.T) {
	tests := []struct {
		name   string
		sample domain.Sample
	}{
		{name: "empty", sample: domain.Sample{}},
		{name: "single", sample: domain.Sample{domain.NewObservation(170, 70)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := NewExplorer(new(mockGenerator), DefaultSampleSize)

			snap := exp.Load(testContext(t), tt.sample)

			assert.False(t, snap.Fitted)
			assert.Empty(t, snap.FitError)
			assert.Equal(t, domain.Regression{}, snap.Regression)
			assert.Len(t, snap.Sample, len(tt.sample))
		})
	}
}

func TestExplorer_InsufficientDataKeepsPreviousFit(t *testing.T) {
	exp := NewExplorer(new(mockGenerator), DefaultSampleSize)
	ctx := testContext(t)

	first := exp.Load(ctx, domain.Sample{
		domain.NewObservation(170, 70),
		domain.NewObservation(180, 90),
	})
	second := exp.Load(ctx, domain.Sample{domain.NewObservation(160.5, 55)})

	require.True(t, first.Fitted)
	assert.Equal(t, first.Regression, second.Regression)
	assert.True(t, second.Fitted)
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.InDelta(t, 159.9, second.DomainX.Min, 1e-9)
	assert.InDelta(t, 161.1, second.DomainX.Max, 1e-9)
}

func TestExplorer_DegenerateInputIsReported(t *testing.T) {
	exp := NewExplorer(new(mockGenerator), DefaultSampleSize)

	snap := exp.Load(testContext(t), domain.Sample{
		domain.NewObservation(170, 60),
		domain.NewObservation(170, 80),
	})

	assert.False(t, snap.Fitted)
	assert.Equal(t, regression.ErrDegenerateInput.Error(), snap.FitError)
	assert.False(t, math.IsNaN(snap.Regression.Slope) || math.IsInf(snap.Regression.Slope, 0))
}

func TestExplorer_TwoPointScenario(t *testing.T) {
	// Each observation: selector draw, then (u, v) for height and (u, v) for
	// weight. v=0.25 puts the deviate on the population mean.
	src := &scriptedSource{draws: []float64{
		0.9, 0.3, 0.25, 0.3, 0.25,
		0.1, 0.3, 0.25, 0.3, 0.25,
	}}
	populations := [2]domain.Population{
		{Name: "a", Height: domain.Distribution{Mean: 170, StdDev: 1}, Weight: domain.Distribution{Mean: 70, StdDev: 1}},
		{Name: "b", Height: domain.Distribution{Mean: 180, StdDev: 1}, Weight: domain.Distribution{Mean: 90, StdDev: 1}},
	}
	exp := NewExplorer(sampling.NewGenerator(src, populations), 2)

	snap := exp.Refresh(testContext(t))

	require.Len(t, snap.Sample, 2)
	assert.InDelta(t, 170.0, snap.Sample[0].Height, 1e-9)
	assert.InDelta(t, 90.0, snap.Sample[1].Weight, 1e-9)
	assert.True(t, snap.Fitted)
	assert.InDelta(t, 2.0, snap.Regression.Slope, 1e-6)
	assert.InDelta(t, -270.0, snap.Regression.Intercept, 1e-6)

	x1, y1, x2, y2 := snap.RegressionSegment()
	assert.Equal(t, snap.DomainX.Min, x1)
	assert.Equal(t, snap.DomainX.Max, x2)
	assert.InDelta(t, 2.0*x1-270, y1, 1e-6)
	assert.InDelta(t, 2.0*x2-270, y2, 1e-6)
}
