package domain

import "time"

// Snapshot is the state handed to the presentation layer: the current sample
// together with everything derived from it.
type Snapshot struct {
	RunID       string
	GeneratedAt time.Time
	Sample      Sample
	Regression  Regression
	// Fitted is false until the first successful fit.
	Fitted   bool
	FitError string
	DomainX  AxisDomain
	DomainY  AxisDomain
}

// RegressionSegment returns the end points of the regression line across the
// X domain.
func (s Snapshot) RegressionSegment() (x1, y1, x2, y2 float64) {
	x1, x2 = s.DomainX.Min, s.DomainX.Max
	return x1, s.Regression.Predict(x1), x2, s.Regression.Predict(x2)
}
