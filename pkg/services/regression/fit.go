package regression

import (
	"errors"
	"math"

	"github.com/de-tools/heightweight/pkg/models/domain"
)

const MinObservations = 2

var (
	ErrInsufficientData = errors.New("at least two observations are required")
	ErrDegenerateInput  = errors.New("all heights are identical")
	ErrEmptySeries      = errors.New("series is empty")
)

// Fit computes the ordinary least-squares line of weight on height.
func Fit(sample domain.Sample) (domain.Regression, error) {
	if len(sample) < MinObservations {
		return domain.Regression{}, ErrInsufficientData
	}

	var sumX, sumY, sumXY, sumXX float64
	varied := false
	for _, o := range sample {
		if o.Height != sample[0].Height {
			varied = true
		}
		sumX += o.Height
		sumY += o.Weight
		sumXY += o.Height * o.Weight
		sumXX += o.Height * o.Height
	}

	n := float64(len(sample))
	denominator := n*sumXX - sumX*sumX
	// Identical heights can leave a rounding residue instead of an exact zero.
	if !varied || denominator == 0 {
		return domain.Regression{}, ErrDegenerateInput
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n
	return domain.Regression{Slope: slope, Intercept: intercept}, nil
}

// DomainFor returns the floor/ceil extent of values widened by 10% of its
// range on each side.
func DomainFor(values []float64) (domain.AxisDomain, error) {
	if len(values) == 0 {
		return domain.AxisDomain{}, ErrEmptySeries
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	rawMin := math.Floor(lo)
	rawMax := math.Ceil(hi)
	pad := (rawMax - rawMin) * 0.1
	return domain.AxisDomain{Min: rawMin - pad, Max: rawMax + pad}, nil
}
