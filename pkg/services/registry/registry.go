package registry

import (
	"fmt"

	"github.com/de-tools/heightweight/pkg/models/domain"
	"github.com/go-playground/validator/v10"
)

type PopulationRegistry interface {
	GetProfiles() ([]string, error)
	GetPopulation(profile string) (domain.Population, error)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type builtinRegistry struct {
	populations []domain.Population
}

// NewBuiltinRegistry serves the default male and female populations.
func NewBuiltinRegistry() PopulationRegistry {
	defaults := domain.DefaultPopulations()
	return &builtinRegistry{populations: defaults[:]}
}

func (br *builtinRegistry) GetProfiles() ([]string, error) {
	profiles := make([]string, 0, len(br.populations))
	for _, p := range br.populations {
		profiles = append(profiles, p.Name)
	}
	return profiles, nil
}

func (br *builtinRegistry) GetPopulation(profile string) (domain.Population, error) {
	for _, p := range br.populations {
		if p.Name == profile {
			return p, nil
		}
	}
	return domain.Population{}, fmt.Errorf("profile %s not found", profile)
}

// ResolvePair looks up the two populations that make up the mixture. The first
// name is the one selected when the uniform draw exceeds one half.
func ResolvePair(reg PopulationRegistry, names []string) ([2]domain.Population, error) {
	var pair [2]domain.Population
	if len(names) != 2 {
		return pair, fmt.Errorf("exactly two populations are required, got %d", len(names))
	}

	for i, name := range names {
		pop, err := reg.GetPopulation(name)
		if err != nil {
			return pair, err
		}
		if err := validate.Struct(pop); err != nil {
			return pair, fmt.Errorf("invalid population %s: %w", name, err)
		}
		pair[i] = pop
	}
	return pair, nil
}
