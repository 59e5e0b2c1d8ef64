package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"vrfilter/internal/config"
	"vrfilter/internal/deathrecord"
	"vrfilter/internal/filter"
	"vrfilter/internal/mapping"
)

// cli holds state shared by all commands.
type cli struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	cfg, envErr := config.FromEnv()
	c.cfg = cfg

	root := &cobra.Command{
		Use:   "vrfilter",
		Short: "Redact death record messages to a jurisdiction allow-list",
		Long: `vrfilter removes every field of a death record that a jurisdiction is not
allowed to receive.

The allow-list names legacy field codes; the mapping table maps each code to
the record properties it covers. Both are JSON or YAML files.

Examples:
  # Filter one envelope
  vrfilter filter --allow-list allow.json --mapping mapping.json --in msg.json

  # Show what an allow-list resolves to
  vrfilter inspect --allow-list allow.json --mapping mapping.json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if envErr != nil {
				return envErr
			}

			logger, err := newLogger(cmd.ErrOrStderr(), c.cfg.LogFormat, c.cfg.Level())
			if err != nil {
				return err
			}

			c.logger = logger
			slog.SetDefault(logger)

			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.cfg.AllowList, "allow-list", "a", cfg.AllowList, "Allow-list file (JSON or YAML) [VRFILTER_ALLOW_LIST]")
	flags.StringVarP(&c.cfg.Mapping, "mapping", "m", cfg.Mapping, "Mapping table file (JSON or YAML) [VRFILTER_MAPPING]")
	flags.StringVar(&c.cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error [VRFILTER_LOG_LEVEL]")
	flags.StringVar(&c.cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text|json [VRFILTER_LOG_FORMAT]")

	root.AddCommand(
		newFilterCmd(c),
		newInspectCmd(c),
		newServeCmd(c),
		newSampleCmd(),
	)

	return root
}

// service builds the filter service from the configured files.
func (c *cli) service(opts ...filter.Option) (*filter.Service[deathrecord.DeathRecord], error) {
	if err := c.cfg.RequireFilterFiles(); err != nil {
		return nil, err
	}

	opts = append([]filter.Option{filter.WithLogger(c.logger)}, opts...)

	svc, err := filter.New(deathrecord.Schema, mapping.File(c.cfg.AllowList), mapping.File(c.cfg.Mapping), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build filter: %w", err)
	}

	return svc, nil
}
