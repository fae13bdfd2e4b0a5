package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/farkle/farkle"
)

// ScoreCmd explains the score of a selection of dice
type ScoreCmd struct {
	Dice []string `arg:"" help:"Dice faces, e.g. '1 1 1 5' or 1115"`
}

var (
	comboStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	unusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func (c *ScoreCmd) Run() error {
	faces, err := farkle.ParseFaces(strings.Join(c.Dice, " "))
	if err != nil {
		return err
	}
	return writeScore(os.Stdout, faces)
}

// writeScore prints each combination and the total, or the unused dice
// when the selection does not fully score.
func writeScore(w io.Writer, faces []farkle.Face) error {
	combos, leftover := farkle.Breakdown(faces)
	for _, combo := range combos {
		fmt.Fprintln(w, comboStyle.Render("  "+combo.String()))
	}

	score, err := farkle.Score(faces)
	if err != nil {
		if len(leftover) > 0 {
			fmt.Fprintln(w, unusedStyle.Render(fmt.Sprintf("  unused: %v", leftover)))
		}
		return err
	}

	fmt.Fprintln(w, totalStyle.Render(fmt.Sprintf("Total: %d", score)))
	return nil
}
