package explorer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/de-tools/heightweight/pkg/models/domain"
	"github.com/de-tools/heightweight/pkg/services/regression"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const DefaultSampleSize = 100

type Explorer interface {
	Snapshot(ctx context.Context) domain.Snapshot
	Refresh(ctx context.Context) domain.Snapshot
	Load(ctx context.Context, sample domain.Sample) domain.Snapshot
}

type Generator interface {
	Generate(count int) domain.Sample
}

// DefaultExplorer owns the current sample and recomputes the regression and
// axis domains whenever the sample is replaced.
type DefaultExplorer struct {
	generator  Generator
	sampleSize int
	now        func() time.Time

	mu       sync.RWMutex
	snapshot domain.Snapshot
}

func NewExplorer(generator Generator, sampleSize int) *DefaultExplorer {
	return &DefaultExplorer{
		generator:  generator,
		sampleSize: sampleSize,
		now:        time.Now,
	}
}

func (e *DefaultExplorer) Snapshot(_ context.Context) domain.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshot
}

// Refresh draws a new sample of the configured size and recomputes everything
// derived from it.
func (e *DefaultExplorer) Refresh(ctx context.Context) domain.Snapshot {
	return e.Load(ctx, e.generator.Generate(e.sampleSize))
}

// Load replaces the current sample. With fewer than two observations the fit
// is skipped and the previous regression is kept.
func (e *DefaultExplorer) Load(ctx context.Context, sample domain.Sample) domain.Snapshot {
	logger := zerolog.Ctx(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	next := domain.Snapshot{
		RunID:       uuid.NewString(),
		GeneratedAt: e.now(),
		Sample:      sample,
		Regression:  e.snapshot.Regression,
		Fitted:      e.snapshot.Fitted,
		DomainX:     e.snapshot.DomainX,
		DomainY:     e.snapshot.DomainY,
	}

	if len(sample) > 0 {
		// Both series have the same length, so neither can be empty here.
		next.DomainX, _ = regression.DomainFor(sample.Heights())
		next.DomainY, _ = regression.DomainFor(sample.Weights())
	}

	if len(sample) >= regression.MinObservations {
		result, err := regression.Fit(sample)
		switch {
		case errors.Is(err, regression.ErrDegenerateInput):
			logger.Warn().
				Str("run_id", next.RunID).
				Int("observations", len(sample)).
				Msg("regression skipped: heights do not vary")
			next.FitError = err.Error()
		case err != nil:
			logger.Error().Err(err).Str("run_id", next.RunID).Msg("regression failed")
			next.FitError = err.Error()
		default:
			next.Regression = result
			next.Fitted = true
		}
	} else {
		logger.Debug().
			Str("run_id", next.RunID).
			Int("observations", len(sample)).
			Msg("not enough observations to fit")
	}

	logger.Info().
		Str("run_id", next.RunID).
		Int("observations", len(sample)).
		Float64("slope", next.Regression.Slope).
		Float64("intercept", next.Regression.Intercept).
		Msg("sample loaded")

	e.snapshot = next
	return next
}
