package domain

type Distribution struct {
	Mean   float64
	StdDev float64 `validate:"gt=0"`
}

// Population describes one sub-population of the synthetic mixture.
type Population struct {
	Name   string `validate:"required"`
	Height Distribution
	Weight Distribution
}

const (
	PopulationMale   = "male"
	PopulationFemale = "female"
)

// DefaultPopulations returns the two sub-populations used when no profiles
// are configured: adult men first, adult women second.
func DefaultPopulations() [2]Population {
	return [2]Population{
		{
			Name:   PopulationMale,
			Height: Distribution{Mean: 175, StdDev: 7},
			Weight: Distribution{Mean: 84, StdDev: 13},
		},
		{
			Name:   PopulationFemale,
			Height: Distribution{Mean: 162, StdDev: 6},
			Weight: Distribution{Mean: 70, StdDev: 12},
		},
	}
}
