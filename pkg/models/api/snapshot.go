package api

import "time"

type Observation struct {
	Height          float64 `json:"height"`
	Weight          float64 `json:"weight"`
	BMI             float64 `json:"bmi"`
	HeightFormatted string  `json:"height_formatted"`
	WeightFormatted string  `json:"weight_formatted"`
	BMIFormatted    string  `json:"bmi_formatted"`
}

type Regression struct {
	Slope              float64 `json:"slope"`
	Intercept          float64 `json:"intercept"`
	SlopeFormatted     string  `json:"slope_formatted"`
	InterceptFormatted string  `json:"intercept_formatted"`
	Equation           string  `json:"equation"`
	Fitted             bool    `json:"fitted"`
	Error              string  `json:"error,omitempty"`
}

type AxisDomain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Snapshot struct {
	RunID        string        `json:"run_id"`
	GeneratedAt  time.Time     `json:"generated_at"`
	Observations []Observation `json:"observations"`
	Regression   Regression    `json:"regression"`
	DomainX      AxisDomain    `json:"domain_x"`
	DomainY      AxisDomain    `json:"domain_y"`
	// RegressionLine holds the two end points of the fitted line.
	RegressionLine []Point `json:"regression_line"`
}
