package terminal

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cli := NewCLI(Options{Output: &out, ErrOutput: &errOut})
	cli.rootCmd.SetArgs(args)
	err := cli.Execute()
	return out.String(), err
}

func TestCLI_Fit(t *testing.T) {
	out, err := run(t, "fit", "--seed", "5", "-n", "50")

	require.NoError(t, err)
	assert.Contains(t, out, "Linear Regression Results (50 observations)")
	assert.Contains(t, out, "Equation:      Weight = ")
	assert.NotContains(t, out, "not fitted")
	assert.NotContains(t, out, "Sample ")
}

func TestCLI_FitIsDeterministicForSeed(t *testing.T) {
	first, err := run(t, "fit", "--seed", "9")
	require.NoError(t, err)
	second, err := run(t, "fit", "--seed", "9")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCLI_GenerateSingleObservation(t *testing.T) {
	out, err := run(t, "generate", "--seed", "3", "--count", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "(1 observations)")
	assert.Contains(t, out, "|     1 |")
	assert.Contains(t, out, "Status:        not fitted")
	assert.Contains(t, out, "Weight = 0.0000 * Height + 0.0000")
}

func TestCLI_Chart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.svg")

	out, err := run(t, "chart", "--seed", "1", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "<svg"))

	_, err = run(t, "chart", "-o", filepath.Join(dir, "chart.gif"))
	assert.ErrorContains(t, err, "unsupported chart extension")
}

func TestCLI_Populations(t *testing.T) {
	out, err := run(t, "populations")
	require.NoError(t, err)
	assert.Contains(t, out, "male: height N(175.00, 7.00) cm")
	assert.Contains(t, out, "female: height N(162.00, 6.00) cm")

	path := filepath.Join(t.TempDir(), "populations.ini")
	require.NoError(t, os.WriteFile(path, []byte(`[giants]
height_mean   = 220
height_stddev = 9
weight_mean   = 130
weight_stddev = 15
`), 0o644))

	out, err = run(t, "populations", "--populations", path)
	require.NoError(t, err)
	assert.Contains(t, out, "giants: height N(220.00, 9.00) cm")
	assert.NotContains(t, out, "male")

	// The mixture still needs male/female, so sampling commands reject the file.
	_, err = run(t, "fit", "--populations", path)
	assert.ErrorContains(t, err, "failed to resolve populations")
}

func TestCLI_ChartSmallSamples(t *testing.T) {
	tests := []struct {
		name     string
		count    string
		wantErr  string
		wantFile bool
	}{
		{name: "single observation", count: "1", wantFile: true},
		{name: "empty sample", count: "0", wantErr: "no observations to plot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "chart.svg")

			_, err := run(t, "chart", "--seed", "2", "--count", tt.count, "-o", path)

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				_, statErr := os.Stat(path)
				assert.True(t, os.IsNotExist(statErr), "no file is left behind")
				return
			}
			require.NoError(t, err)
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), "<svg")
		})
	}
}

func TestCLI_InvalidConfig(t *testing.T) {
	_, err := run(t, "fit", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = run(t, "fit", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")

	_, err = run(t, "generate", "--count=-4")
	assert.ErrorContains(t, err, "invalid config")
}
