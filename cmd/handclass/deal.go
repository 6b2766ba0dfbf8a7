package main

import (
	"fmt"

	"github.com/lox/handclass/internal/config"
	"github.com/lox/handclass/internal/randutil"
	"github.com/lox/handclass/poker"
)

// DealCmd deals hands from a freshly shuffled deck
type DealCmd struct {
	Hands int   `short:"n" help:"Number of hands to deal (1-10), overrides config"`
	Seed  int64 `short:"s" help:"Random seed for a reproducible shuffle, overrides config (0 picks a time-based seed, which is logged)"`
}

func (c *DealCmd) Run(g *Globals) error {
	e, err := g.setup(func(cfg *config.Config) {
		if c.Hands != 0 {
			cfg.Deal.Hands = c.Hands
		}
		if c.Seed != 0 {
			cfg.Deal.Seed = c.Seed
		}
	})
	if err != nil {
		return err
	}

	return deal(e, e.cfg.Deal)
}

func deal(e *env, cfg *config.DealConfig) error {
	seed := randutil.Seed(cfg.Seed)
	e.logger.Info("Shuffling deck", "seed", seed, "hands", cfg.Hands)

	deck := poker.NewDeck(randutil.New(seed))
	for i := 0; i < cfg.Hands; i++ {
		hand, err := deck.DealHand()
		if err != nil {
			return fmt.Errorf("dealing hand %d: %w", i+1, err)
		}
		result, err := poker.Classify(hand)
		if err != nil {
			return fmt.Errorf("classifying hand %d: %w", i+1, err)
		}
		e.printer.Result(hand.Sorted(), result)
	}

	e.logger.Debug("Deal complete", "cardsRemaining", deck.CardsRemaining())
	return nil
}
