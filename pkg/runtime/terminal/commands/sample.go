package commands

import (
	"github.com/de-tools/heightweight/pkg/adapters"
	"github.com/de-tools/heightweight/pkg/runtime/app"
	"github.com/de-tools/heightweight/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// AppProvider returns the application wired from the root command's flags.
type AppProvider func() (*app.App, error)

type SampleCmd struct {
	withTable bool
	apps      AppProvider
	reporter  *export.Reporter
}

func NewGenerateCmd(apps AppProvider, reporter *export.Reporter) *cobra.Command {
	sc := &SampleCmd{apps: apps, reporter: reporter, withTable: true}
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic height/weight sample",
		RunE:  sc.run,
	}
}

func NewFitCmd(apps AppProvider, reporter *export.Reporter) *cobra.Command {
	sc := &SampleCmd{apps: apps, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Generate a sample and fit weight against height",
		RunE:  sc.run,
	}

	cmd.Flags().BoolVar(&sc.withTable, "table", false, "Also print every observation")

	return cmd
}

func (sc *SampleCmd) run(cmd *cobra.Command, _ []string) error {
	a, err := sc.apps()
	if err != nil {
		return err
	}

	snap := adapters.MapDomainSnapshotToApi(a.Explorer.Refresh(cmd.Context()))

	if sc.withTable {
		if err := sc.reporter.HandleSample(snap); err != nil {
			return err
		}
	}
	return sc.reporter.HandleRegression(snap)
}
