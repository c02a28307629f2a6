package registry

import (
	"fmt"

	"github.com/de-tools/heightweight/pkg/models/domain"
	"gopkg.in/ini.v1"
)

type iniRegistry struct {
	cfg *ini.File
}

// NewINIRegistry loads population profiles from an ini file. Every section
// with keys is a profile:
//
//	[male]
//	height_mean   = 175
//	height_stddev = 7
//	weight_mean   = 84
//	weight_stddev = 13
func NewINIRegistry(path string) (PopulationRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (ir *iniRegistry) GetProfiles() ([]string, error) {
	var profiles []string
	for _, section := range ir.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (ir *iniRegistry) GetPopulation(profile string) (domain.Population, error) {
	section, err := ir.cfg.GetSection(profile)
	if err != nil {
		return domain.Population{}, fmt.Errorf("profile %s not found", profile)
	}

	values := make(map[string]float64, 4)
	for _, key := range []string{"height_mean", "height_stddev", "weight_mean", "weight_stddev"} {
		v, err := section.Key(key).Float64()
		if err != nil {
			return domain.Population{}, fmt.Errorf("profile %s: invalid %s: %w", profile, key, err)
		}
		values[key] = v
	}

	return domain.Population{
		Name:   profile,
		Height: domain.Distribution{Mean: values["height_mean"], StdDev: values["height_stddev"]},
		Weight: domain.Distribution{Mean: values["weight_mean"], StdDev: values["weight_stddev"]},
	}, nil
}
