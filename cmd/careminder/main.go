package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/careminder/internal/cli"
	"github.com/alexanderramin/careminder/internal/config"
	"github.com/alexanderramin/careminder/internal/contract"
	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/alexanderramin/careminder/internal/recurrence"
	"github.com/alexanderramin/careminder/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine config path: env var or default ~/.careminder/config.yaml
	defaultPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfgPath := domain.CoalesceStr(os.Getenv("CAREMINDER_CONFIG"), defaultPath)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// Catalog: inline actions first, then the JSON export if one is configured.
	actions := cfg.DomainActions()
	if cfg.ActionsFile != "" {
		fromFile, err := contract.LoadActions(cfg.ActionsFile)
		if err != nil {
			return err
		}
		actions = append(actions, fromFile...)
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	rule := recurrence.NewRule(
		recurrence.WithEndDateFunc(cfg.Caps().MaxEndDate),
		recurrence.WithSlotMinutes(cfg.SlotMinutes),
	)

	app := &cli.App{
		Editor:   service.NewRecurrenceEditor(rule, observer),
		Catalog:  service.NewActionCatalog(actions...),
		Rule:     rule,
		Location: loc,
	}

	// Detect interactive terminal for the form-based editor.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
