// Package cli implements the numwords command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/az-ai-labs/numwords/internal/cache"
	"github.com/az-ai-labs/numwords/internal/config"
	"github.com/az-ai-labs/numwords/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is overridden at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// app holds the state shared by one invocation of the command tree.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     logger.Logger
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logger.Nop()}

	root := &cobra.Command{
		Use:   "numwords",
		Short: "Numwords - spell integers as English words",
		Long: `Numwords converts integers into English words, optionally as ordinals.

  numwords words 1234          one thousand, two hundred thirty-four
  numwords words --ordinal 21  twenty-first
  numwords ordinal 22          22nd

Only integers up to 2^53 - 1 in magnitude are accepted. Fractions are
truncated toward zero.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	// Global flags
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.numwords/config.yaml)")
	root.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error, off)")
	root.PersistentFlags().String("log-format", "", "log format (console, json)")

	// Bind flags to viper
	_ = a.v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", root.PersistentFlags().Lookup("log-format"))

	root.AddCommand(
		a.wordsCmd(),
		a.ordinalCmd(),
		a.batchCmd(),
		a.serveCmd(),
		a.configCmd(),
		versionCmd(),
	)
	return root
}

// Execute runs the command tree until it finishes or the process receives
// SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// setup reads configuration and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	opt := logger.FromConfig(cfg.Log)
	opt.Writer = cmd.ErrOrStderr()
	a.log = logger.New(opt)

	if f := a.v.ConfigFileUsed(); f != "" {
		a.log.Debug().Str("file", f).Msg("config loaded")
	}
	return nil
}

// store returns the conversion memo selected by the cache section.
func (a *app) store() cache.Store {
	if !a.cfg.Cache.Enabled {
		return cache.Nop{}
	}
	return cache.NewMemory(a.cfg.Cache.TTL, a.cfg.Cache.CleanupInterval)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "numwords %s\n", Version)
		},
	}
}
