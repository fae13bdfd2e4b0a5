// Package odds computes roll statistics for a number of dice in play: how
// often a roll busts, how often every die scores, and the mean points a roll
// offers. Exact figures come from enumerating every ordered roll; estimates
// come from a parallel Monte Carlo run.
package odds

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/farkle/farkle"
	"github.com/lox/farkle/internal/randutil"
)

// Stats aggregates roll outcomes for one dice count.
type Stats struct {
	Dice       int
	Samples    int
	Busts      int
	HotDice    int
	TotalScore int
	Exact      bool
	Elapsed    time.Duration
}

// BustChance is the fraction of rolls without any scoring die.
func (s Stats) BustChance() float64 { return s.ratio(s.Busts) }

// HotDiceChance is the fraction of rolls where every die scores.
func (s Stats) HotDiceChance() float64 { return s.ratio(s.HotDice) }

// MeanScore is the average points available from a roll, busts included.
func (s Stats) MeanScore() float64 {
	if s.Samples == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Samples)
}

func (s Stats) ratio(n int) float64 {
	if s.Samples == 0 {
		return 0
	}
	return float64(n) / float64(s.Samples)
}

func (s *Stats) add(roll []farkle.Face) {
	score, leftover := farkle.Evaluate(roll)
	s.Samples++
	s.TotalScore += score
	switch {
	case len(leftover) == len(roll):
		s.Busts++
	case len(leftover) == 0:
		s.HotDice++
	}
}

func (s *Stats) merge(o Stats) {
	s.Samples += o.Samples
	s.Busts += o.Busts
	s.HotDice += o.HotDice
	s.TotalScore += o.TotalScore
}

// Calculator runs the computations.
type Calculator struct {
	clock   quartz.Clock
	logger  *log.Logger
	workers int
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithClock sets the clock used to time runs.
func WithClock(clock quartz.Clock) Option {
	return func(c *Calculator) { c.clock = clock }
}

// WithWorkers caps the number of Monte Carlo workers.
func WithWorkers(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.workers = n
		}
	}
}

// New creates a Calculator. Workers default to the CPU count, capped at 8.
func New(logger *log.Logger, opts ...Option) *Calculator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Calculator{
		clock:   quartz.NewReal(),
		logger:  logger.WithPrefix("odds"),
		workers: min(runtime.NumCPU(), 8),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func validDice(n int) error {
	if n < 1 || n > farkle.DicePerPlayer {
		return fmt.Errorf("dice count must be between 1 and %d, got %d", farkle.DicePerPlayer, n)
	}
	return nil
}

// Exact enumerates all 6^n ordered rolls of n dice.
func (c *Calculator) Exact(n int) (Stats, error) {
	if err := validDice(n); err != nil {
		return Stats{}, err
	}

	start := c.clock.Now()
	stats := Stats{Dice: n, Exact: true}
	roll := make([]farkle.Face, n)
	for i := range roll {
		roll[i] = 1
	}

	for {
		stats.add(roll)
		if !nextRoll(roll) {
			break
		}
	}

	stats.Elapsed = c.clock.Since(start)
	c.logger.Debug("Exact enumeration done", "dice", n, "rolls", stats.Samples, "elapsed", stats.Elapsed)
	return stats, nil
}

// nextRoll advances roll like an odometer over 1..6 and reports false after
// the last combination.
func nextRoll(roll []farkle.Face) bool {
	for i := len(roll) - 1; i >= 0; i-- {
		if roll[i] < farkle.Sides {
			roll[i]++
			return true
		}
		roll[i] = 1
	}
	return false
}

// MonteCarlo estimates the statistics from samples random rolls of n dice.
// Results depend only on seed and samples, not on the worker count.
func (c *Calculator) MonteCarlo(ctx context.Context, n, samples int, seed int64) (Stats, error) {
	if err := validDice(n); err != nil {
		return Stats{}, err
	}
	if samples <= 0 {
		return Stats{}, fmt.Errorf("samples must be positive, got %d", samples)
	}

	start := c.clock.Now()

	// Work is split into fixed chunks with their own seeds so the outcome
	// does not depend on scheduling.
	const chunkSize = 10000
	chunks := (samples + chunkSize - 1) / chunkSize
	results := make([]Stats, chunks)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i := 0; i < chunks; i++ {
		count := min(chunkSize, samples-i*chunkSize)
		chunkSeed := seed + int64(i)

		g.Go(func() error {
			dice := farkle.NewStandardDice(randutil.New(chunkSeed))[:n]
			var s Stats
			for j := 0; j < count; j++ {
				if j%1000 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				roll := make([]farkle.Face, n)
				for k, d := range dice {
					roll[k] = d.Roll()
				}
				s.add(roll)
			}
			results[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Stats{}, fmt.Errorf("monte carlo run: %w", err)
	}

	stats := Stats{Dice: n}
	for _, r := range results {
		stats.merge(r)
	}
	stats.Elapsed = c.clock.Since(start)

	c.logger.Debug("Monte Carlo run done",
		"dice", n,
		"samples", stats.Samples,
		"workers", c.workers,
		"elapsed", stats.Elapsed)
	return stats, nil
}

// Table returns exact statistics for every dice count from 1 to 6.
func (c *Calculator) Table() ([]Stats, error) {
	table := make([]Stats, 0, farkle.DicePerPlayer)
	for n := 1; n <= farkle.DicePerPlayer; n++ {
		s, err := c.Exact(n)
		if err != nil {
			return nil, err
		}
		table = append(table, s)
	}
	return table, nil
}
