package main

import (
	"github.com/ownerofglory/cpaas-ice-profiles/config"
	"github.com/spf13/cobra"
	"log/slog"
)

// flag names shared by the subcommands
const (
	flagEnvironment = "environment"
	flagProfile     = "profile"
	flagLogLevel    = "log-level"
	flagAddr        = "addr"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "ice-profiles",
		Short:        "Serve and inspect CPaaS ICE server profiles",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String(flagEnvironment, "", "profile environment: production, kandy or genband (overrides ICE_ENVIRONMENT)")
	rootCmd.PersistentFlags().String(flagLogLevel, "", "log output level (overrides LOG_LEVEL)")

	rootCmd.AddCommand(newServeCmd(), newListCmd(), newValidateCmd())
	return rootCmd
}

// loadConfig reads the environment config and applies command line overrides.
func loadConfig(cmd *cobra.Command) (*config.ICEProfilesAppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	overrides := map[string]*string{
		flagEnvironment: &cfg.Environment,
		flagProfile:     &cfg.Profile,
		flagLogLevel:    &cfg.LogLevel,
		flagAddr:        &cfg.ServerAddr,
	}
	for name, dst := range overrides {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}

	slog.SetLogLoggerLevel(cfg.SlogLevel())
	return cfg, nil
}
