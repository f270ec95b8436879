package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YoRyan/operdate-getbus/app"
	"github.com/YoRyan/operdate-getbus/config"
	"github.com/YoRyan/operdate-getbus/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "operdate",
	Short:        "Resolve and publish GET Bus operator schedules",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "operdate.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func newService() (*app.Service, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.Configure(cfg.Logging.Level, cfg.Logging.File, cfg.Logging.Console); err != nil {
		return nil, err
	}
	return app.New(cfg)
}

func closeService(svc *app.Service) {
	if err := svc.Close(); err != nil {
		logger.New("main").Errorf("service close: %v", err)
	}
}
