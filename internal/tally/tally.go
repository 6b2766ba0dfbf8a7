// Package tally deals large numbers of five-card hands and counts how often each
// category comes up.
package tally

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handclass/internal/fileutil"
	"github.com/lox/handclass/internal/randutil"
	"github.com/lox/handclass/poker"
)

// cancelCheckInterval is how many hands a worker deals between context checks
const cancelCheckInterval = 1024

// Options configures a survey run
type Options struct {
	Hands   int
	Workers int
	Seed    int64
}

// Report holds the category counts of a completed run
type Report struct {
	Seed    int64
	Hands   int
	Workers int
	Counts  [poker.NumCategories]int
	Elapsed time.Duration
}

// Row is one category line of a report
type Row struct {
	Category  poker.Category `json:"-"`
	Name      string         `json:"category"`
	Count     int            `json:"count"`
	Frequency float64        `json:"frequency"`
	StdError  float64        `json:"std_error"`
}

type workerResult struct {
	counts [poker.NumCategories]int
}

// Run deals opts.Hands hands split across opts.Workers goroutines. Each worker owns a
// deck seeded from opts.Seed, so a given seed and worker count always produce the same
// counts.
func Run(ctx context.Context, opts Options, logger *log.Logger, clock quartz.Clock) (*Report, error) {
	if opts.Hands < 1 {
		return nil, fmt.Errorf("hands must be positive, got %d", opts.Hands)
	}
	if opts.Workers < 1 {
		return nil, fmt.Errorf("workers must be positive, got %d", opts.Workers)
	}
	workers := min(opts.Workers, opts.Hands)

	logger.Debug("Starting tally", "hands", opts.Hands, "workers", workers, "seed", opts.Seed)
	start := clock.Now()

	perWorker := opts.Hands / workers
	remainder := opts.Hands % workers
	master := randutil.New(opts.Seed)

	g, ctx := errgroup.WithContext(ctx)
	results := make([]workerResult, workers)

	for w := 0; w < workers; w++ {
		hands := perWorker
		if w < remainder {
			hands++ // Distribute remainder hands
		}
		workerSeed := int64(master.Uint64())

		g.Go(func() error {
			return runWorker(ctx, poker.NewDeck(randutil.New(workerSeed)), hands, &results[w])
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Seed:    opts.Seed,
		Hands:   opts.Hands,
		Workers: workers,
		Elapsed: clock.Since(start),
	}
	for _, r := range results {
		for i, c := range r.counts {
			report.Counts[i] += c
		}
	}

	logger.Info("Tally complete",
		"hands", report.Hands,
		"workers", report.Workers,
		"elapsed", report.Elapsed,
		"handsPerSec", int(report.Rate()))

	return report, nil
}

func runWorker(ctx context.Context, deck *poker.Deck, hands int, out *workerResult) error {
	for i := 0; i < hands; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		hand, err := deck.DealHand()
		if errors.Is(err, poker.ErrDeckExhausted) {
			deck.Shuffle()
			hand, err = deck.DealHand()
		}
		if err != nil {
			return err
		}

		result, err := poker.Classify(hand)
		if err != nil {
			return fmt.Errorf("classify %s: %w", hand, err)
		}
		out.counts[result.Category]++
	}
	return nil
}

// Count returns the number of hands in category c
func (r *Report) Count(c poker.Category) int {
	if !c.Valid() {
		return 0
	}
	return r.Counts[c]
}

// Frequency returns the share of hands in category c
func (r *Report) Frequency(c poker.Category) float64 {
	if r.Hands == 0 {
		return 0
	}
	return float64(r.Count(c)) / float64(r.Hands)
}

// Rate returns hands classified per second, or 0 when no time was measured
func (r *Report) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Hands) / r.Elapsed.Seconds()
}

// Rows returns one row per category, strongest first
func (r *Report) Rows() []Row {
	cats := poker.Categories()
	rows := make([]Row, 0, len(cats))
	for i := len(cats) - 1; i >= 0; i-- {
		c := cats[i]
		rows = append(rows, Row{
			Category:  c,
			Name:      c.String(),
			Count:     r.Count(c),
			Frequency: r.Frequency(c),
			StdError:  r.StdError(c),
		})
	}
	return rows
}

// WriteJSON writes the report to path
func (r *Report) WriteJSON(path string) error {
	return fileutil.WriteJSONAtomic(path, struct {
		Seed      int64 `json:"seed"`
		Hands     int   `json:"hands"`
		Workers   int   `json:"workers"`
		ElapsedMS int64 `json:"elapsed_ms"`
		Rows      []Row `json:"categories"`
	}{
		Seed:      r.Seed,
		Hands:     r.Hands,
		Workers:   r.Workers,
		ElapsedMS: r.Elapsed.Milliseconds(),
		Rows:      r.Rows(),
	})
}
