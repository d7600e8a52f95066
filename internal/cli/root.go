// Package cli implements the storenav command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/storenav/floorplan"
	"github.com/katalvlaran/storenav/internal/config"
	"github.com/katalvlaran/storenav/internal/logging"
	"github.com/katalvlaran/storenav/internal/store"
	"github.com/katalvlaran/storenav/navigator"
)

// app carries state shared by every command of one invocation.
type app struct {
	cfgPath string

	// flag overrides, applied when set
	layout      string
	database    string
	logLevel    string
	localSearch bool

	cfg    *config.Config
	log    *slog.Logger
	closer io.Closer
}

// RootCmd builds the storenav command tree.
func RootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "storenav",
		Short: "Turn-by-turn routing through a store for a shopping list",
		Long: `storenav plans a walk from the store entrance past every item on a
shopping list to the checkout and narrates it as turn-by-turn instructions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "YAML config file")
	pf.StringVar(&a.layout, "layout", "", "YAML layout file (default: built-in reference layout)")
	pf.StringVar(&a.database, "db", "", "SQLite database for shopping lists")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	pf.BoolVar(&a.localSearch, "local-search", false, "refine the visiting order with 2-opt")

	root.AddCommand(routeCmd(a))
	root.AddCommand(layoutCmd(a))
	root.AddCommand(listCmd(a))
	root.AddCommand(serveCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("layout") {
		cfg.Layout = a.layout
	}
	if flags.Changed("db") {
		cfg.Database = a.database
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("local-search") {
		cfg.LocalSearch = a.localSearch
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := logging.Setup(cfg.Log.Level, cfg.Log.Dir)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	a.cfg, a.log, a.closer = cfg, logger, closer
	return nil
}

// grid loads the configured layout.
func (a *app) grid() (*floorplan.Grid, error) {
	if a.cfg.Layout == "" {
		return floorplan.Reference(), nil
	}
	g, err := floorplan.LoadFile(a.cfg.Layout)
	if err != nil {
		return nil, fmt.Errorf("failed to load layout: %w", err)
	}
	return g, nil
}

func (a *app) planner() (*navigator.Planner, error) {
	g, err := a.grid()
	if err != nil {
		return nil, err
	}
	return navigator.NewPlanner(g,
		navigator.WithLocalSearch(a.cfg.LocalSearch),
		navigator.WithDistanceScale(a.cfg.DistanceScale, a.cfg.DistanceUnit),
	)
}

func (a *app) store() (*store.Store, error) {
	st, err := store.Open(a.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open list database: %w", err)
	}
	return st, nil
}
