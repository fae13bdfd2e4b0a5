package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/farkle/internal/odds"
	"github.com/lox/farkle/internal/randutil"
)

// OddsCmd prints roll statistics per number of dice
type OddsCmd struct {
	Dice    int    `short:"n" help:"Number of dice (1-6), 0 for all" default:"0"`
	Samples int    `short:"i" help:"Monte Carlo samples per dice count, 0 for exact enumeration" default:"0"`
	Seed    *int64 `help:"Random seed for reproducible Monte Carlo results"`
	Workers int    `help:"Monte Carlo workers, 0 for one per CPU" default:"0"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func (c *OddsCmd) Run(cli *CLI) error {
	logger := setupLogger(cli.Debug)
	calc := odds.New(logger, odds.WithWorkers(c.Workers))

	counts := []int{1, 2, 3, 4, 5, 6}
	if c.Dice != 0 {
		counts = []int{c.Dice}
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	var seed int64
	if c.Samples > 0 {
		var err error
		if seed, err = randutil.Resolve(c.Seed); err != nil {
			return err
		}
		logger.Debug("Using seed", "seed", seed)
	}

	results := make([]odds.Stats, 0, len(counts))
	for _, n := range counts {
		var (
			s   odds.Stats
			err error
		)
		if c.Samples > 0 {
			s, err = calc.MonteCarlo(ctx, n, c.Samples, seed)
		} else {
			s, err = calc.Exact(n)
		}
		if err != nil {
			return err
		}
		results = append(results, s)
	}

	writeOdds(os.Stdout, results)
	return nil
}

func writeOdds(w io.Writer, results []odds.Stats) {
	mode := "exact"
	if len(results) > 0 && !results[0].Exact {
		mode = fmt.Sprintf("monte carlo, %d samples", results[0].Samples)
	}
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Farkle roll odds (%s)", mode)))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Dice\tBust\tHot dice\tMean points\tElapsed")
	for _, s := range results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\t%s\n",
			s.Dice,
			percentStyle.Render(fmt.Sprintf("%.2f%%", s.BustChance()*100)),
			fmt.Sprintf("%.2f%%", s.HotDiceChance()*100),
			s.MeanScore(),
			s.Elapsed.Round(time.Microsecond),
		)
	}
	tw.Flush()
}
