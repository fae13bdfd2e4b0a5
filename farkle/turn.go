package farkle

import "slices"

// turnState is either awaitingRoll or rollResult.
type turnState interface {
	isTurnState()
}

type awaitingRoll struct{}

type rollResult struct {
	roll []Face
}

func (awaitingRoll) isTurnState() {}
func (rollResult) isTurnState()   {}

// Turn tracks one player's turn: the dice still in play, the points scored
// by each use of dice and whether a roll result is pending.
type Turn struct {
	playerIndex int
	dice        []Die
	ledger      []int
	state       turnState
}

// NewTurn starts a turn for the player at playerIndex with all of dice in
// play.
func NewTurn(playerIndex int, dice []Die) *Turn {
	own := make([]Die, len(dice))
	copy(own, dice)
	return &Turn{
		playerIndex: playerIndex,
		dice:        own,
		state:       awaitingRoll{},
	}
}

// PlayerIndex returns the index of the player the turn belongs to.
func (t *Turn) PlayerIndex() int { return t.playerIndex }

// RemainingDice returns how many dice have not been scored yet.
func (t *Turn) RemainingDice() int { return len(t.dice) }

// Ledger returns the points of each successful use of dice, in order.
func (t *Turn) Ledger() []int { return slices.Clone(t.ledger) }

// TotalScore returns the sum of the ledger.
func (t *Turn) TotalScore() int {
	total := 0
	for _, points := range t.ledger {
		total += points
	}
	return total
}

// IsWaitingForRoll reports whether the next action must be a roll.
func (t *Turn) IsWaitingForRoll() bool {
	_, ok := t.state.(awaitingRoll)
	return ok
}

// LastRoll returns the pending roll result, if any.
func (t *Turn) LastRoll() ([]Face, bool) {
	rr, ok := t.state.(rollResult)
	if !ok {
		return nil, false
	}
	return slices.Clone(rr.roll), true
}

// IsFinished reports whether every die has been scored.
func (t *Turn) IsFinished() bool { return len(t.dice) == 0 }

// Roll rolls every remaining die and stores the result.
func (t *Turn) Roll() ([]Face, error) {
	if !t.IsWaitingForRoll() {
		return nil, ErrRollPending
	}

	roll := rollAll(t.dice)
	t.state = rollResult{roll: roll}
	return slices.Clone(roll), nil
}

// HasAnyCombination reports whether the pending roll contains at least one
// scoring die. It is false when no roll is pending.
func (t *Turn) HasAnyCombination() bool {
	rr, ok := t.state.(rollResult)
	if !ok {
		return false
	}
	_, leftover := Evaluate(rr.roll)
	return len(leftover) < len(rr.roll)
}

// UseDice scores the dice at indexes of the pending roll and removes them
// from play. Indexes refer to positions in the roll result.
func (t *Turn) UseDice(indexes []int) (int, error) {
	rr, ok := t.state.(rollResult)
	if !ok {
		return 0, ErrNoRoll
	}

	selected := make(map[int]bool, len(indexes))
	used := make([]Face, 0, len(indexes))
	for _, i := range indexes {
		if i < 0 || i >= len(rr.roll) {
			return 0, ErrWrongIndexes
		}
		if selected[i] {
			return 0, ErrDuplicateIndexes
		}
		selected[i] = true
		used = append(used, rr.roll[i])
	}

	score, err := Score(used)
	if err != nil {
		return 0, err
	}

	t.dice = removeIndexed(t.dice, selected)
	t.state = awaitingRoll{}
	t.ledger = append(t.ledger, score)
	return score, nil
}

// Clone returns an independent copy of the turn. The dice themselves are
// shared; only which of them remain in play is copied.
func (t *Turn) Clone() *Turn {
	c := &Turn{
		playerIndex: t.playerIndex,
		dice:        slices.Clone(t.dice),
		ledger:      slices.Clone(t.ledger),
		state:       awaitingRoll{},
	}
	if rr, ok := t.state.(rollResult); ok {
		c.state = rollResult{roll: slices.Clone(rr.roll)}
	}
	return c
}

// removeIndexed drops the items whose position is in drop, keeping the
// relative order of the rest.
func removeIndexed[T any](items []T, drop map[int]bool) []T {
	out := items[:0:0]
	pos := 0
	for _, item := range items {
		if !drop[pos] {
			out = append(out, item)
		}
		pos++
	}
	return out
}
