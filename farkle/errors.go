package farkle

import (
	"errors"
	"fmt"
)

var (
	// Setup errors
	ErrNotEnoughPlayers = errors.New("there must be at least 2 players")
	ErrInvalidDiceCount = errors.New("a player needs exactly 6 dice")
	ErrInvalidFace      = errors.New("face value must be between 1 and 6")

	// Roll errors
	ErrRollPending = errors.New("the turn is in an invalid state to roll: a roll result is pending")

	// Use-dice errors
	ErrNoRoll           = errors.New("the turn is in an invalid state to use dice: no roll result")
	ErrWrongIndexes     = errors.New("wrong dice indexes")
	ErrDuplicateIndexes = errors.New("dice indexes must not repeat")
	ErrNoDice           = errors.New("no dice selected")
	ErrNotBust          = errors.New("the roll still has a scoring combination")
)

// CombinationError reports dice that are not part of any scoring combination.
type CombinationError struct {
	Unused []Face
}

func (e *CombinationError) Error() string {
	return fmt.Sprintf("invalid dice combination, unused dice: %v", e.Unused)
}

// UnusedDice returns the leftover faces carried by err, if it is a
// CombinationError.
func UnusedDice(err error) ([]Face, bool) {
	var ce *CombinationError
	if errors.As(err, &ce) {
		return ce.Unused, true
	}
	return nil, false
}
