package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbap/config"
)

// app is the state shared by every subcommand once the root has run.
type app struct {
	cfgPath   string
	logLevel  string
	logFormat string

	cfg config.Config
	log *logrus.Logger
	reg *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lvbap",
		Short:         "Subtour cut separation and branch-and-price replay",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "TOML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "override log.format (text|json)")

	root.AddCommand(newSeparateCmd(a))
	root.AddCommand(newReplayCmd(a))

	return root
}

// setup loads the configuration, applies persistent flag overrides and
// builds the logger and metrics registry.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.cfgPath != "" {
		var err error
		if cfg, err = config.Load(a.cfgPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := cfg.Logger()
	if err != nil {
		return err
	}
	log.SetOutput(cmd.ErrOrStderr())

	a.cfg, a.log = cfg, log
	a.reg = prometheus.NewRegistry()
	a.log.WithFields(logrus.Fields{
		"config":    a.cfgPath,
		"workers":   cfg.Workers,
		"algorithm": cfg.Separation.Algorithm,
	}).Debug("lvbap configured")

	return nil
}

// flush writes the registry to the configured textfile, if any.
func (a *app) flush() error {
	path := a.cfg.Metrics.Textfile
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, a.reg); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	a.log.WithField("path", path).Debug("metrics written")

	return nil
}
