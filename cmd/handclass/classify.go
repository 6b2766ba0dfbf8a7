package main

import (
	"fmt"

	"github.com/lox/handclass/poker"
)

// ClassifyCmd classifies hands given on the command line
type ClassifyCmd struct {
	Hands []string `arg:"" name:"hand" help:"Five cards per argument, e.g. 'AsKsQsJsTs' or '9s 9c 9h 2d 2s'"`
}

func (c *ClassifyCmd) Run(g *Globals) error {
	e, err := g.setup(nil)
	if err != nil {
		return err
	}

	failed := 0
	for _, input := range c.Hands {
		result, hand, err := classifyInput(input)
		if err != nil {
			e.logger.Debug("Rejected hand", "input", input, "error", err)
			e.printer.Error(input, err)
			failed++
			continue
		}
		e.logger.Debug("Classified hand", "hand", hand, "category", result.Category)
		e.printer.Result(hand, result)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d hands could not be classified", failed, len(c.Hands))
	}
	return nil
}

func classifyInput(input string) (poker.Result, poker.Hand, error) {
	hand, err := poker.ParseCards(input)
	if err != nil {
		return poker.Result{}, nil, err
	}
	result, err := poker.Classify(hand)
	if err != nil {
		return poker.Result{}, nil, err
	}
	return result, hand, nil
}
