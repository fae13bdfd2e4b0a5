package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/farkle/farkle"
)

// Config holds the optional collaborators of the TUI model
type Config struct {
	Logger       *log.Logger
	Clock        quartz.Clock
	TurnTimer    bool
	PlayerColors []string // lipgloss colors by seat, empty for default
}

// Model is the Bubble Tea model that drives a local hot-seat game. It owns
// the game exclusively; every state change goes through the farkle API.
type Model struct {
	game   *farkle.Game
	logger *log.Logger
	clock  quartz.Clock

	keys        keyMap
	help        help.Model
	logViewport viewport.Model

	gameLog  []string
	selected []int
	message  string
	isError  bool

	turnStarted time.Time
	turnTimer   bool
	colors      []string

	width    int
	height   int
	quitting bool
}

// tickMsg refreshes the turn timer
type tickMsg time.Time

// New creates a TUI model for g.
func New(g *farkle.Game, cfg Config) *Model {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	vp := viewport.New(40, 10)
	vp.SetContent("")

	m := &Model{
		game:        g,
		logger:      logger.WithPrefix("tui"),
		clock:       clock,
		keys:        defaultKeyMap(),
		help:        help.New(),
		logViewport: vp,
		turnTimer:   cfg.TurnTimer,
		colors:      cfg.PlayerColors,
	}
	m.startTurn()
	return m
}

// Run starts the TUI on the terminal and blocks until the player quits or
// ctx is cancelled.
func Run(ctx context.Context, g *farkle.Game, cfg Config) error {
	m := New(g, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	if m.turnTimer {
		return tick()
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case m.game.IsWaitingForRoll() && key.Matches(msg, m.keys.Roll):
			m.roll()
		case !m.game.IsWaitingForRoll() && key.Matches(msg, m.keys.Toggle):
			m.toggle(int(msg.String()[0] - '1'))
		case !m.game.IsWaitingForRoll() && key.Matches(msg, m.keys.Use):
			m.useSelection()
		case key.Matches(msg, m.keys.Clear):
			m.selected = nil
		case m.game.IsWaitingForRoll() && key.Matches(msg, m.keys.Stop):
			m.stop()
		default:
			// remaining keys scroll the log
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

func (m *Model) roll() {
	player := m.game.CurrentPlayer()
	roll, err := m.game.Roll()
	if err != nil {
		m.setError(err)
		return
	}
	m.selected = nil
	m.setMessage("")
	m.addLogEntry(fmt.Sprintf("%s rolled %s", player.ID(), formatFaces(roll)))

	if m.game.HasAnyCombination() {
		return
	}

	summary, err := m.game.Bust()
	if err != nil {
		m.setError(err)
		return
	}
	m.endTurn(summary)
}

func (m *Model) toggle(index int) {
	roll, ok := m.game.LastRollResult()
	if !ok || index < 0 || index >= len(roll) {
		return
	}
	if i := slices.Index(m.selected, index); i >= 0 {
		m.selected = slices.Delete(m.selected, i, i+1)
	} else {
		m.selected = append(m.selected, index)
	}
	m.setMessage("")
}

func (m *Model) useSelection() {
	if _, err := m.game.TryUseDice(m.selected); err != nil {
		m.setError(err)
		return
	}

	roll, _ := m.game.LastRollResult()
	used := make([]farkle.Face, 0, len(m.selected))
	for _, i := range m.selected {
		used = append(used, roll[i])
	}

	player := m.game.CurrentPlayer()
	before := len(m.game.History())
	points, err := m.game.UseDice(m.selected)
	if err != nil {
		m.setError(err)
		return
	}
	m.selected = nil

	combos, _ := farkle.Breakdown(used)
	m.addLogEntry(fmt.Sprintf("%s scored %d with %s", player.ID(), points, formatCombinations(combos)))
	m.setMessage("")

	if history := m.game.History(); len(history) > before {
		m.endTurn(history[len(history)-1])
	}
}

func (m *Model) stop() {
	m.selected = nil
	m.endTurn(m.game.NextTurn())
}

func (m *Model) endTurn(s farkle.TurnSummary) {
	var line string
	switch s.Reason {
	case farkle.Busted:
		line = fmt.Sprintf("%s busted and forfeits %d points", s.PlayerID, sum(s.Ledger))
		m.setMessage(WarningStyle.Render("Farkle! No scoring dice."))
	case farkle.Forfeited:
		line = fmt.Sprintf("%s stopped on an unused roll and forfeits %d points", s.PlayerID, sum(s.Ledger))
		m.setMessage(WarningStyle.Render("Turn forfeited."))
	case farkle.Finished:
		line = fmt.Sprintf("%s scored with every die and banks %d (total %d)", s.PlayerID, s.Points, s.Total)
		m.setMessage(SuccessStyle.Render("Hot dice!"))
	default:
		line = fmt.Sprintf("%s banks %d (total %d)", s.PlayerID, s.Points, s.Total)
		m.setMessage("")
	}
	m.addLogEntry(line)
	m.logger.Info("Turn over", "player", s.PlayerID, "reason", s.Reason, "points", s.Points)
	m.startTurn()
}

func (m *Model) startTurn() {
	m.turnStarted = m.clock.Now()
	m.addLogEntry(fmt.Sprintf("--- Turn %d: %s ---", m.game.TurnNumber(), m.game.CurrentPlayer().ID()))
}

func (m *Model) setMessage(s string) {
	m.message = s
	m.isError = false
}

func (m *Model) setError(err error) {
	m.logger.Debug("Rejected action", "error", err)
	m.message = describeError(err)
	m.isError = true
}

func describeError(err error) string {
	if unused, ok := farkle.UnusedDice(err); ok {
		return fmt.Sprintf("Invalid combination, unused dice: %s", formatFaces(unused))
	}
	switch {
	case errors.Is(err, farkle.ErrNoDice):
		return "Select at least one die"
	case errors.Is(err, farkle.ErrWrongIndexes):
		return "Selected die is not part of the roll"
	default:
		return err.Error()
	}
}

func (m *Model) addLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

// GameLog returns the entries written to the log pane.
func (m *Model) GameLog() []string {
	return slices.Clone(m.gameLog)
}

// Selected returns the selected roll positions, in selection order.
func (m *Model) Selected() []int {
	return slices.Clone(m.selected)
}

// Message returns the status line shown under the dice.
func (m *Model) Message() string { return m.message }

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	sidebar := PaneStyle.Width(24).Render(m.renderScoreboard())

	mainWidth := max(m.width-lipgloss.Width(sidebar)-2, 20)
	board := PaneStyle.Width(mainWidth).Render(m.renderBoard())

	top := lipgloss.JoinHorizontal(lipgloss.Top, board, sidebar)

	logHeight := max(m.height-lipgloss.Height(top)-4, 3)
	m.logViewport.Width = max(m.width-2, 10)
	m.logViewport.Height = logHeight
	logPane := PaneStyle.Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		HeaderStyle.Render("Farkle"),
		top,
		logPane,
		m.help.View(m.keys),
	)
}

func (m *Model) renderScoreboard() string {
	var b strings.Builder
	b.WriteString(InfoStyle.Render("Scores"))
	b.WriteString("\n")

	current := m.game.CurrentPlayer()
	for i, p := range m.game.Players() {
		name := m.playerStyle(i).Render(p.ID())
		line := fmt.Sprintf("  %s: %d", name, p.Score())
		if p == current {
			line = CurrentPlayerStyle.Render("▶ ") + fmt.Sprintf("%s: %d", name, p.Score())
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) playerStyle(seat int) lipgloss.Style {
	if seat < len(m.colors) && m.colors[seat] != "" {
		return PlayerInfoStyle.Foreground(lipgloss.Color(m.colors[seat]))
	}
	return PlayerInfoStyle
}

func (m *Model) renderBoard() string {
	var b strings.Builder
	turn := m.game.Turn()

	fmt.Fprintf(&b, "Current turn: %s", CurrentPlayerStyle.Render(m.game.CurrentPlayer().ID()))
	if m.turnTimer {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("  %s", formatElapsed(m.clock.Since(m.turnStarted)))))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Turn points: %s  Dice left: %d\n", formatLedger(turn.Ledger()), turn.RemainingDice())

	roll, ok := m.game.LastRollResult()
	if !ok {
		b.WriteString("\nPress SPACE to roll")
		if len(turn.Ledger()) > 0 {
			b.WriteString(", S to bank and pass")
		}
		b.WriteString("\n")
	} else {
		b.WriteString("\nPress number to select dice\n")
		b.WriteString(m.renderDice(roll))
		b.WriteString("\n")
		if len(m.selected) > 0 {
			if points, err := m.game.TryUseDice(m.selected); err == nil {
				b.WriteString(SuccessStyle.Render(fmt.Sprintf("Selection worth %d, press SPACE to use", points)))
				b.WriteString("\n")
			}
		}
	}

	if m.message != "" {
		if m.isError {
			b.WriteString(ErrorStyle.Render(m.message))
		} else {
			b.WriteString(m.message)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderDice(roll []farkle.Face) string {
	dice := make([]string, len(roll))
	for i, f := range roll {
		style := DieStyle
		if slices.Contains(m.selected, i) {
			style = SelectedDieStyle
		}
		dice[i] = lipgloss.JoinVertical(lipgloss.Center,
			style.Render(f.String()),
			InfoStyle.Render(fmt.Sprintf("%d", i+1)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, dice...)
}

func formatFaces(faces []farkle.Face) string {
	parts := make([]string, len(faces))
	for i, f := range faces {
		parts[i] = f.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatCombinations(combos []farkle.Combination) string {
	parts := make([]string, len(combos))
	for i, c := range combos {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

func formatLedger(ledger []int) string {
	if len(ledger) == 0 {
		return "0"
	}
	parts := make([]string, len(ledger))
	for i, p := range ledger {
		parts[i] = fmt.Sprintf("%d", p)
	}
	if len(ledger) == 1 {
		return parts[0]
	}
	return fmt.Sprintf("%s = %d", strings.Join(parts, " + "), sum(ledger))
}

func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
