package farkle

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, scripts ...[]int) *Game {
	t.Helper()

	players := make([]*Player, len(scripts))
	for i, script := range scripts {
		p, err := NewPlayer(string(rune('A'+i)), scriptedDice(t, script...))
		require.NoError(t, err)
		players[i] = p
	}

	g, err := NewGame(players)
	require.NoError(t, err)
	return g
}

func TestNewPlayerRequiresSixDice(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 5, 7} {
		dice := make([]Die, n)
		for i := range dice {
			dice[i] = NewRandomDie(nil)
		}
		_, err := NewPlayer("p", dice)
		assert.ErrorIs(t, err, ErrInvalidDiceCount, "%d dice", n)
	}

	p, err := NewPlayer("p", NewStandardDice(nil))
	require.NoError(t, err)
	assert.Equal(t, "p", p.ID())
	assert.Zero(t, p.Score())
	assert.Len(t, p.Dice(), 6)
	assert.Len(t, p.Roll(), 6)
}

func TestNewGameRequiresTwoPlayers(t *testing.T) {
	t.Parallel()

	_, err := NewGame(nil)
	assert.ErrorIs(t, err, ErrNotEnoughPlayers)

	p, err := NewPlayer("solo", scriptedDice(t))
	require.NoError(t, err)
	_, err = NewGame([]*Player{p})
	assert.ErrorIs(t, err, ErrNotEnoughPlayers)
	assert.Contains(t, err.Error(), "only 1 provided")
}

func TestGameInitialState(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, nil, nil, nil)
	assert.Equal(t, "A", g.CurrentPlayer().ID())
	assert.Equal(t, "B", g.NextPlayer().ID())
	assert.True(t, g.IsWaitingForRoll())
	assert.Equal(t, 1, g.TurnNumber())
	assert.Len(t, g.Players(), 3)
	assert.Empty(t, g.History())

	_, ok := g.LastRollResult()
	assert.False(t, ok)
}

func TestGameHotDicePassesTurn(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, []int{1, 1, 1, 5, 5, 5}, nil)

	roll, err := g.Roll()
	require.NoError(t, err)
	assert.Equal(t, mustFaces(t, 1, 1, 1, 5, 5, 5), roll)

	points, err := g.UseDice([]int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 1500, points)

	players := g.Players()
	assert.Equal(t, 1500, players[0].Score())
	assert.Equal(t, "B", g.CurrentPlayer().ID())
	assert.True(t, g.IsWaitingForRoll())

	history := g.History()
	require.Len(t, history, 1)
	assert.Equal(t, TurnSummary{
		Number:      1,
		PlayerIndex: 0,
		PlayerID:    "A",
		Ledger:      []int{1500},
		Points:      1500,
		Total:       1500,
		Reason:      Finished,
	}, history[0])
}

func TestGameInvalidThenValidSelection(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, []int{2, 3, 4, 4, 4, 6}, nil)
	_, err := g.Roll()
	require.NoError(t, err)

	_, err = g.UseDice([]int{0, 1})
	unused, ok := UnusedDice(err)
	require.True(t, ok)
	assert.Equal(t, mustFaces(t, 2, 3), unused)

	points, err := g.UseDice([]int{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 400, points)
	assert.Equal(t, 3, g.Turn().RemainingDice())
	assert.Equal(t, "A", g.CurrentPlayer().ID())
	assert.Zero(t, g.CurrentPlayer().Score(), "score only changes when the turn ends")
}

func TestGameNextTurnBanksLedger(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, []int{1, 2, 3, 4, 6, 6}, nil)
	_, err := g.Roll()
	require.NoError(t, err)
	_, err = g.UseDice([]int{0})
	require.NoError(t, err)

	summary := g.NextTurn()
	assert.Equal(t, Stopped, summary.Reason)
	assert.Equal(t, 100, summary.Points)
	assert.Equal(t, 100, g.Players()[0].Score())
	assert.Equal(t, "B", g.CurrentPlayer().ID())
	assert.Equal(t, 2, g.TurnNumber())
}

func TestGameNextTurnForfeitsPendingRoll(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, []int{1, 2, 3, 4, 6, 6, 1, 1, 1, 2, 3}, nil)
	_, err := g.Roll()
	require.NoError(t, err)
	_, err = g.UseDice([]int{0})
	require.NoError(t, err)

	_, err = g.Roll()
	require.NoError(t, err)

	summary := g.NextTurn()
	assert.Equal(t, Forfeited, summary.Reason)
	assert.Zero(t, summary.Points)
	assert.Equal(t, []int{100}, summary.Ledger)
	assert.Zero(t, g.Players()[0].Score())
	assert.Equal(t, "B", g.CurrentPlayer().ID())
	assert.True(t, g.IsWaitingForRoll())
}

func TestGameNextTurnOnBustRollBanksNothing(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, []int{1, 2, 3, 4, 6, 6, 2, 3, 4, 6, 6}, nil)
	_, err := g.Roll()
	require.NoError(t, err)
	_, err = g.UseDice([]int{0})
	require.NoError(t, err)

	roll, err := g.Roll()
	require.NoError(t, err)
	assert.Equal(t, mustFaces(t, 2, 3, 4, 6, 6), roll)

	summary := g.NextTurn()
	assert.Equal(t, Forfeited, summary.Reason)
	assert.Zero(t, g.Players()[0].Score())
}

func TestGameRoundRobinWraps(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, nil, nil, nil)
	order := []string{g.CurrentPlayer().ID()}
	for i := 0; i < 4; i++ {
		g.NextTurn()
		order = append(order, g.CurrentPlayer().ID())
	}
	assert.Equal(t, []string{"A", "B", "C", "A", "B"}, order)
	for _, p := range g.Players() {
		assert.Zero(t, p.Score())
	}
}

func TestGameBust(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, []int{1, 2, 3, 4, 6, 6, 2, 3, 4, 6, 6}, nil)

	_, err := g.Bust()
	assert.ErrorIs(t, err, ErrNoRoll)

	_, err = g.Roll()
	require.NoError(t, err)
	_, err = g.Bust()
	assert.ErrorIs(t, err, ErrNotBust)

	_, err = g.UseDice([]int{0})
	require.NoError(t, err)

	_, err = g.Roll()
	require.NoError(t, err)
	assert.False(t, g.HasAnyCombination())

	summary, err := g.Bust()
	require.NoError(t, err)
	assert.Equal(t, Busted, summary.Reason)
	assert.Zero(t, summary.Points)
	assert.Equal(t, []int{100}, summary.Ledger)
	assert.Zero(t, g.Players()[0].Score())
	assert.Equal(t, "B", g.CurrentPlayer().ID())
}

func TestGameTryUseDiceDoesNotMutate(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, []int{1, 1, 1, 5, 5, 5}, nil)
	_, err := g.Roll()
	require.NoError(t, err)

	points, err := g.TryUseDice([]int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 1500, points)

	_, err = g.TryUseDice([]int{9})
	assert.ErrorIs(t, err, ErrWrongIndexes)

	assert.False(t, g.IsWaitingForRoll())
	assert.Equal(t, "A", g.CurrentPlayer().ID())
	assert.Zero(t, g.Players()[0].Score())
	assert.Empty(t, g.History())
}

func TestGameErrorsPropagate(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, []int{2, 2, 3, 3, 4, 6}, nil)
	_, err := g.UseDice([]int{0})
	assert.ErrorIs(t, err, ErrNoRoll)

	_, err = g.Roll()
	require.NoError(t, err)
	_, err = g.Roll()
	assert.ErrorIs(t, err, ErrRollPending)
}

func TestGameScoreChangesOnlyAtTurnEnd(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, []int{5, 2, 3, 4, 6, 6, 1, 2, 3, 4, 6}, nil)
	a := g.CurrentPlayer()

	_, err := g.Roll()
	require.NoError(t, err)
	_, err = g.UseDice([]int{0})
	require.NoError(t, err)
	assert.Zero(t, a.Score())

	_, err = g.Roll()
	require.NoError(t, err)
	_, err = g.UseDice([]int{0})
	require.NoError(t, err)
	assert.Zero(t, a.Score())

	turn := g.Turn()
	g.NextTurn()
	assert.Equal(t, turn.TotalScore(), a.Score())
	assert.Equal(t, 150, a.Score())
}

func TestGameLogsTurnEnd(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	p1, err := NewPlayer("Alice", scriptedDice(t))
	require.NoError(t, err)
	p2, err := NewPlayer("Bob", scriptedDice(t))
	require.NoError(t, err)

	g, err := NewGame([]*Player{p1, p2}, WithLogger(logger))
	require.NoError(t, err)
	g.NextTurn()

	assert.Contains(t, buf.String(), "Turn ended")
	assert.Contains(t, buf.String(), "Alice")
}

func TestTurnEndString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "finished", Finished.String())
	assert.Equal(t, "stopped", Stopped.String())
	assert.Equal(t, "bust", Busted.String())
	assert.Equal(t, "forfeit", Forfeited.String())
	assert.Equal(t, "TurnEnd(9)", TurnEnd(9).String())
}
