package main

import (
	"fmt"
	"os"

	"github.com/de-tools/heightweight/pkg/runtime/app"
	"github.com/de-tools/heightweight/pkg/server"
	"github.com/de-tools/heightweight/pkg/services/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the height/weight regression explorer",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a YAML config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// SERVER_HOST and SERVER_PORT from .env win over the config file.
	if err := cfg.ApplyServerEnv(); err != nil {
		return err
	}

	logger, err := app.NewLogger(os.Stdout, cfg.LogLevel)
	if err != nil {
		return err
	}
	ctx := logger.WithContext(cmd.Context())

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize explorer: %w", err)
	}

	if cfgPath != "" {
		logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	}
	a.LogProfiles(ctx)

	a.Explorer.Refresh(ctx)

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Chart:           a.ChartOptions(),
		Dependencies: server.Dependencies{
			Explorer: a.Explorer,
			Logger:   logger,
		},
	})

	return api.Start()
}
