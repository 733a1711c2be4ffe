package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/0x0FACED/voronoi-regions/pkg/config"
	"github.com/0x0FACED/voronoi-regions/pkg/logger"
)

// app - общее состояние всех команд
type app struct {
	cfgPath  string
	logLevel string

	cfg config.Config
	log *logger.ZapLogger
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "app",
		Short:        "Closed Voronoi cells for a set of sites",
		Long:         `Builds one closed polygon per site, unbounded hull cells included, and shows them as an interactive page, a PNG or JSON.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = a.logLevel
			}
			level, err := logger.ParseLevel(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("log level %q: %w", cfg.Log.Level, err)
			}
			a.cfg = cfg
			a.log = logger.NewWriter(cmd.ErrOrStderr(), level)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "TOML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(a.serveCommand())
	root.AddCommand(a.cellsCommand())
	root.AddCommand(a.linksCommand())

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	if err := a.rootCommand().ExecuteContext(ctx); err != nil {
		if ctx.Err() != nil {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
