package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/de-tools/heightweight/pkg/render"
	"github.com/spf13/cobra"
)

type ChartCmd struct {
	output string
	apps   AppProvider
}

func NewChartCmd(apps AppProvider) *cobra.Command {
	cc := &ChartCmd{apps: apps}
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the scatter plot and regression line to a file",
		RunE:  cc.run,
	}

	cmd.Flags().StringVarP(&cc.output, "output", "o", "", "Output file (.svg or .png)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (cc *ChartCmd) run(cmd *cobra.Command, _ []string) error {
	format := render.Format(strings.TrimPrefix(strings.ToLower(filepath.Ext(cc.output)), "."))
	if format != render.FormatSVG && format != render.FormatPNG {
		return fmt.Errorf("unsupported chart extension %q, use .svg or .png", filepath.Ext(cc.output))
	}

	a, err := cc.apps()
	if err != nil {
		return err
	}

	snap := a.Explorer.Refresh(cmd.Context())

	var buf bytes.Buffer
	if err := render.Render(&buf, snap, format, a.ChartOptions()); err != nil {
		return err
	}

	if err := os.WriteFile(cc.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cc.output, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Chart for run %s written to %s\n", snap.RunID, cc.output)
	return nil
}
