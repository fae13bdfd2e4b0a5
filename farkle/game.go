package farkle

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// TurnEnd describes why a turn ended.
type TurnEnd int

const (
	// Finished means every die was scored (hot dice).
	Finished TurnEnd = iota
	// Stopped means the player ended the turn and banked the ledger.
	Stopped
	// Busted means the roll had no combination and the ledger was forfeited.
	Busted
	// Forfeited means the player stopped on a roll without using it and the
	// ledger was lost.
	Forfeited
)

func (e TurnEnd) String() string {
	switch e {
	case Finished:
		return "finished"
	case Stopped:
		return "stopped"
	case Busted:
		return "bust"
	case Forfeited:
		return "forfeit"
	default:
		return fmt.Sprintf("TurnEnd(%d)", int(e))
	}
}

// TurnSummary records the outcome of a completed turn.
type TurnSummary struct {
	Number      int
	PlayerIndex int
	PlayerID    string
	Ledger      []int
	Points      int // points credited to the player
	Total       int // player's score after the turn
	Reason      TurnEnd
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for turn transitions.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger.WithPrefix("game")
		}
	}
}

// Game rotates a fixed list of players and owns the live turn.
type Game struct {
	players []*Player
	turn    *Turn
	number  int
	history []TurnSummary
	logger  *log.Logger
}

// NewGame starts a game with the first player to act. At least two players
// are required.
func NewGame(players []*Player, opts ...Option) (*Game, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("%w: only %d provided", ErrNotEnoughPlayers, len(players))
	}
	for i, p := range players {
		if p == nil {
			return nil, fmt.Errorf("player %d is nil", i)
		}
	}

	g := &Game{
		players: append([]*Player(nil), players...),
		number:  1,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.turn = NewTurn(0, g.players[0].dice)
	g.logger.Debug("Game started", "players", len(g.players), "first", g.players[0].ID())
	return g, nil
}

// Players returns the players in turn order.
func (g *Game) Players() []*Player {
	return append([]*Player(nil), g.players...)
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	return g.players[g.turn.PlayerIndex()]
}

// NextPlayer returns the player who acts after the current one.
func (g *Game) NextPlayer() *Player {
	return g.players[g.nextPlayerIndex()]
}

func (g *Game) nextPlayerIndex() int {
	return (g.turn.PlayerIndex() + 1) % len(g.players)
}

// Turn returns a copy of the live turn.
func (g *Game) Turn() *Turn { return g.turn.Clone() }

// TurnNumber returns the 1-based number of the live turn.
func (g *Game) TurnNumber() int { return g.number }

// History returns the summaries of completed turns, oldest first.
func (g *Game) History() []TurnSummary {
	return append([]TurnSummary(nil), g.history...)
}

// LastRollResult returns the pending roll, if any.
func (g *Game) LastRollResult() ([]Face, bool) { return g.turn.LastRoll() }

// IsWaitingForRoll reports whether the current player has to roll next.
func (g *Game) IsWaitingForRoll() bool { return g.turn.IsWaitingForRoll() }

// HasAnyCombination reports whether the pending roll has a scoring die.
func (g *Game) HasAnyCombination() bool { return g.turn.HasAnyCombination() }

// Roll rolls the current player's remaining dice.
func (g *Game) Roll() ([]Face, error) {
	roll, err := g.turn.Roll()
	if err != nil {
		return nil, err
	}
	g.logger.Debug("Rolled", "player", g.CurrentPlayer().ID(), "roll", roll)
	return roll, nil
}

// UseDice scores the selected dice of the pending roll. When the last die is
// scored the turn total is credited and the next player's turn starts.
func (g *Game) UseDice(indexes []int) (int, error) {
	points, err := g.turn.UseDice(indexes)
	if err != nil {
		return 0, err
	}

	g.logger.Debug("Used dice",
		"player", g.CurrentPlayer().ID(),
		"indexes", indexes,
		"points", points,
		"remaining", g.turn.RemainingDice())

	if g.turn.IsFinished() {
		g.endTurn(Finished, g.turn.TotalScore())
	}
	return points, nil
}

// TryUseDice reports what UseDice would return without changing the game.
func (g *Game) TryUseDice(indexes []int) (int, error) {
	return g.turn.Clone().UseDice(indexes)
}

// NextTurn ends the current turn voluntarily. The turn's ledger is credited
// only while waiting for a roll; stopping on a pending roll forfeits it.
func (g *Game) NextTurn() TurnSummary {
	if !g.turn.IsWaitingForRoll() {
		return g.endTurn(Forfeited, 0)
	}
	return g.endTurn(Stopped, g.turn.TotalScore())
}

// Bust ends a turn whose pending roll has no scoring die. Everything scored
// during the turn is forfeited.
func (g *Game) Bust() (TurnSummary, error) {
	if g.turn.IsWaitingForRoll() {
		return TurnSummary{}, ErrNoRoll
	}
	if g.turn.HasAnyCombination() {
		return TurnSummary{}, ErrNotBust
	}
	return g.endTurn(Busted, 0), nil
}

func (g *Game) endTurn(reason TurnEnd, points int) TurnSummary {
	player := g.CurrentPlayer()
	player.credit(points)

	summary := TurnSummary{
		Number:      g.number,
		PlayerIndex: g.turn.PlayerIndex(),
		PlayerID:    player.ID(),
		Ledger:      g.turn.Ledger(),
		Points:      points,
		Total:       player.Score(),
		Reason:      reason,
	}
	g.history = append(g.history, summary)

	g.logger.Info("Turn ended",
		"player", player.ID(),
		"reason", reason,
		"points", points,
		"total", player.Score())

	next := g.nextPlayerIndex()
	g.turn = NewTurn(next, g.players[next].dice)
	g.number++
	return summary
}
