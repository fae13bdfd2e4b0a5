package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/farkle/farkle"
	"github.com/lox/farkle/internal/config"
	"github.com/lox/farkle/internal/randutil"
	"github.com/lox/farkle/internal/tui"
)

// PlayCmd runs a hot-seat game in the terminal
type PlayCmd struct {
	Config  string   `kong:"default='farkle.hcl',type='path',help='HCL configuration file (optional)'"`
	Players []string `kong:"short='p',help='Player names in turn order (overrides config)'"`
	Seed    *int64   `kong:"help='Deterministic dice seed (optional)'"`
	LogFile string   `kong:"help='Log file (overrides config)'"`
	NoTimer bool     `kong:"help='Hide the turn timer'"`
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)
)

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if len(c.Players) > 0 {
		cfg.SetPlayers(c.Players)
	}
	if c.Seed != nil {
		cfg.Game.Seed = c.Seed
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.NoTimer {
		cfg.UI.TurnTimer = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := cfg.LogLevel()
	if cli.Debug {
		level = log.DebugLevel
	}
	logger, closer, err := setupFileLogger(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	if cfg.UI.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	seed, err := randutil.Resolve(cfg.Game.Seed)
	if err != nil {
		return err
	}
	logger.Info("Starting game", "players", cfg.PlayerNames(), "seed", seed)

	g, err := newGame(cfg.PlayerNames(), seed, logger)
	if err != nil {
		return err
	}

	colors := make([]string, len(cfg.Players))
	for i, p := range cfg.Players {
		colors[i] = p.Color
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	if err := tui.Run(ctx, g, tui.Config{
		Logger:       logger,
		TurnTimer:    cfg.UI.TurnTimer,
		PlayerColors: colors,
	}); err != nil {
		return err
	}

	fmt.Println(renderStandings(g))
	return nil
}

// newGame seats the players with six seeded dice each.
func newGame(names []string, seed int64, logger *log.Logger) (*farkle.Game, error) {
	rng := randutil.New(seed)
	players := make([]*farkle.Player, 0, len(names))
	for _, name := range names {
		p, err := farkle.NewPlayer(name, farkle.NewStandardDice(rng))
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return farkle.NewGame(players, farkle.WithLogger(logger))
}

// renderStandings lists players by score, highest first.
func renderStandings(g *farkle.Game) string {
	players := g.Players()
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Score() > players[j].Score()
	})

	var b strings.Builder
	b.WriteString(titleStyle.Render("Final scores"))
	b.WriteString("\n")
	for i, p := range players {
		line := fmt.Sprintf("%d. %-16s %6d", i+1, p.ID(), p.Score())
		if i == 0 && p.Score() > 0 {
			line = winnerStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
