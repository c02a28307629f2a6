package adapters

import (
	"fmt"

	"github.com/de-tools/heightweight/pkg/models/api"
	"github.com/de-tools/heightweight/pkg/models/domain"
)

func FormatHeight(v float64) string { return fmt.Sprintf("%.2f cm", v) }
func FormatWeight(v float64) string { return fmt.Sprintf("%.2f kg", v) }
func FormatBMI(v float64) string    { return fmt.Sprintf("%.2f", v) }
func FormatCoef(v float64) string   { return fmt.Sprintf("%.4f", v) }

func MapDomainObservationToApi(o domain.Observation) api.Observation {
	return api.Observation{
		Height:          o.Height,
		Weight:          o.Weight,
		BMI:             o.BMI,
		HeightFormatted: FormatHeight(o.Height),
		WeightFormatted: FormatWeight(o.Weight),
		BMIFormatted:    FormatBMI(o.BMI),
	}
}

func MapDomainSnapshotToApi(snap domain.Snapshot) api.Snapshot {
	observations := make([]api.Observation, 0, len(snap.Sample))
	for _, o := range snap.Sample {
		observations = append(observations, MapDomainObservationToApi(o))
	}

	var line []api.Point
	if snap.Fitted {
		x1, y1, x2, y2 := snap.RegressionSegment()
		line = []api.Point{{X: x1, Y: y1}, {X: x2, Y: y2}}
	}

	return api.Snapshot{
		RunID:        snap.RunID,
		GeneratedAt:  snap.GeneratedAt,
		Observations: observations,
		Regression: api.Regression{
			Slope:              snap.Regression.Slope,
			Intercept:          snap.Regression.Intercept,
			SlopeFormatted:     FormatCoef(snap.Regression.Slope),
			InterceptFormatted: FormatCoef(snap.Regression.Intercept),
			Equation:           snap.Regression.Equation(),
			Fitted:             snap.Fitted,
			Error:              snap.FitError,
		},
		DomainX:        api.AxisDomain{Min: snap.DomainX.Min, Max: snap.DomainX.Max},
		DomainY:        api.AxisDomain{Min: snap.DomainY.Min, Max: snap.DomainY.Max},
		RegressionLine: line,
	}
}
