// Package main implements the xbrl-ingest CLI: parse, validate, and
// discover XBRL instance documents.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dayofkishore/ind-fin-xbrl/config"
)

const version = "0.1.0"

type app struct {
	cfg config.Config
	log zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	var configPath string
	var logLevel string

	root := &cobra.Command{
		Use:           "xbrl-ingest",
		Short:         "Parse and validate XBRL instance documents",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if logLevel != "" {
				a.cfg.LogLevel = logLevel
			}
			a.log = newLogger(a.cfg.LogLevel)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "xbrl-ingest.toml", "config file (TOML)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newParseCmd(a))
	root.AddCommand(newValidateCmd(a))
	root.AddCommand(newDiscoverCmd(a))

	return root
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
