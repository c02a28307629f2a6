package domain

import "math"

// Observation is a single synthetic measurement. BMI is derived from height
// and weight when the observation is created and never recomputed.
type Observation struct {
	Height float64 // cm
	Weight float64 // kg
	BMI    float64 // kg/m^2
}

func NewObservation(height, weight float64) Observation {
	return Observation{
		Height: height,
		Weight: weight,
		BMI:    CalculateBMI(height, weight),
	}
}

// CalculateBMI returns weight / (height/100)^2 with height in centimeters.
func CalculateBMI(height, weight float64) float64 {
	return weight / math.Pow(height/100, 2)
}

// Sample is an ordered collection of observations. Order is insertion order only.
type Sample []Observation

func (s Sample) Heights() []float64 {
	values := make([]float64, len(s))
	for i, o := range s {
		values[i] = o.Height
	}
	return values
}

func (s Sample) Weights() []float64 {
	values := make([]float64, len(s))
	for i, o := range s {
		values[i] = o.Weight
	}
	return values
}
