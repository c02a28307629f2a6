package app

import (
	"context"
	"fmt"
	"io"

	"github.com/de-tools/heightweight/pkg/render"
	"github.com/de-tools/heightweight/pkg/services/config"
	"github.com/de-tools/heightweight/pkg/services/explorer"
	"github.com/de-tools/heightweight/pkg/services/registry"
	"github.com/de-tools/heightweight/pkg/services/sampling"
	"github.com/rs/zerolog"
)

// App wires the sampling pipeline from configuration. It is shared by the CLI
// and the web server.
type App struct {
	Config   *config.Config
	Registry registry.PopulationRegistry
	Explorer *explorer.DefaultExplorer
}

func New(cfg *config.Config) (*App, error) {
	reg, err := NewRegistry(cfg.Sampling.PopulationsFile)
	if err != nil {
		return nil, err
	}

	populations, err := registry.ResolvePair(reg, cfg.Sampling.Populations)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve populations: %w", err)
	}

	gen := sampling.NewGenerator(sampling.NewSeededSource(cfg.Sampling.Seed), populations)

	return &App{
		Config:   cfg,
		Registry: reg,
		Explorer: explorer.NewExplorer(gen, cfg.Sampling.Count),
	}, nil
}

// NewRegistry loads population profiles from path, or the built-in profiles
// when path is empty.
func NewRegistry(path string) (registry.PopulationRegistry, error) {
	if path == "" {
		return registry.NewBuiltinRegistry(), nil
	}

	reg, err := registry.NewINIRegistry(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load populations from %s: %w", path, err)
	}
	return reg, nil
}

func (a *App) ChartOptions() render.Options {
	return render.Options{
		Width:  a.Config.Chart.Width,
		Height: a.Config.Chart.Height,
	}
}

// LogProfiles reports the available profiles and the configured mixture. A
// listing failure is only logged.
func (a *App) LogProfiles(ctx context.Context) {
	logger := zerolog.Ctx(ctx)
	profiles, err := a.Registry.GetProfiles()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to list population profiles")
	}
	logger.Info().Strs("profiles", profiles).Strs("mixture", a.Config.Sampling.Populations).Msg("population profiles loaded")
}

func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
