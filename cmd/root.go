// Package cmd holds the portfolio command line: the combined server, the
// site-only server, seeding and static export.
package cmd

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logger"
)

var cfgFile string

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Personal portfolio site and its content API",
		Long: `portfolio serves a single-page personal portfolio.

Commands:
  serve   REST API, site and admin dashboard on one port
  web     the site alone, reading content from BACKEND_URL
  seed    create the schema and load sample content
  export  render the fully loaded page to static files

Configuration comes from the environment (a .env file is read when
present) and optionally from a YAML file passed with --config.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newWebCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newExportCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration and builds the logger every command shares.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Debug())
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Server.Mode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	return cfg, log, nil
}
