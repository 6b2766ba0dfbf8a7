package main

import (
	"fmt"

	"github.com/coder/quartz"

	"github.com/lox/handclass/internal/config"
	"github.com/lox/handclass/internal/randutil"
	"github.com/lox/handclass/internal/tally"
)

// TallyCmd deals hands across workers and reports category frequencies
type TallyCmd struct {
	Hands   int    `short:"n" help:"Number of hands to deal, overrides config"`
	Workers int    `short:"w" help:"Number of concurrent workers, overrides config"`
	Seed    int64  `short:"s" help:"Random seed for reproducible counts, overrides config (0 picks a time-based seed, which is logged)"`
	Out     string `short:"o" type:"path" help:"Write the report as JSON to this file, overrides config"`

	clock quartz.Clock
}

func (c *TallyCmd) Run(g *Globals) error {
	e, err := g.setup(func(cfg *config.Config) {
		if c.Hands != 0 {
			cfg.Tally.Hands = c.Hands
		}
		if c.Workers != 0 {
			cfg.Tally.Workers = c.Workers
		}
		if c.Seed != 0 {
			cfg.Tally.Seed = c.Seed
		}
		if c.Out != "" {
			cfg.Tally.Report = c.Out
		}
	})
	if err != nil {
		return err
	}

	clock := c.clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	ctx, cancel := signalContext(e.logger)
	defer cancel()

	opts := tally.Options{
		Hands:   e.cfg.Tally.Hands,
		Workers: e.cfg.Tally.Workers,
		Seed:    randutil.Seed(e.cfg.Tally.Seed),
	}
	report, err := tally.Run(ctx, opts, e.logger, clock)
	if err != nil {
		return fmt.Errorf("tally: %w", err)
	}

	e.printer.Report(report)

	if path := e.cfg.Tally.Report; path != "" {
		if err := report.WriteJSON(path); err != nil {
			return err
		}
		e.logger.Info("Wrote report", "path", path)
	}
	return nil
}
