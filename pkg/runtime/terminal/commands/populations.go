package commands

import (
	"fmt"

	"github.com/de-tools/heightweight/pkg/models/domain"
	"github.com/de-tools/heightweight/pkg/runtime/terminal/export"
	"github.com/de-tools/heightweight/pkg/services/registry"
	"github.com/spf13/cobra"
)

// RegistryProvider returns the population profiles named by the root command's flags.
type RegistryProvider func() (registry.PopulationRegistry, error)

type PopulationsCmd struct {
	registries RegistryProvider
	reporter   *export.Reporter
}

func NewPopulationsCmd(registries RegistryProvider, reporter *export.Reporter) *cobra.Command {
	pc := &PopulationsCmd{registries: registries, reporter: reporter}
	return &cobra.Command{
		Use:   "populations",
		Short: "List the configured population profiles",
		RunE:  pc.run,
	}
}

func (pc *PopulationsCmd) run(cmd *cobra.Command, _ []string) error {
	reg, err := pc.registries()
	if err != nil {
		return err
	}

	profiles, err := reg.GetProfiles()
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No population profiles found")
		return nil
	}

	populations := make([]domain.Population, 0, len(profiles))
	for _, profile := range profiles {
		pop, err := reg.GetPopulation(profile)
		if err != nil {
			return err
		}
		populations = append(populations, pop)
	}

	return pc.reporter.HandlePopulations(populations)
}
