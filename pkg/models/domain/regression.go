package domain

import "fmt"

// Regression is the least-squares line weight = Slope*height + Intercept.
type Regression struct {
	Slope     float64
	Intercept float64
}

func (r Regression) Predict(height float64) float64 {
	return r.Slope*height + r.Intercept
}

func (r Regression) Equation() string {
	return fmt.Sprintf("Weight = %.4f * Height + %.4f", r.Slope, r.Intercept)
}

// AxisDomain is a display range for one chart axis.
type AxisDomain struct {
	Min float64
	Max float64
}
