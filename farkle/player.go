package farkle

import "fmt"

// Player is a participant holding six dice and a running total.
type Player struct {
	id    string
	score int
	dice  []Die
}

// NewPlayer creates a player with the given dice. It fails unless exactly
// DicePerPlayer dice are supplied.
func NewPlayer(id string, dice []Die) (*Player, error) {
	if len(dice) != DicePerPlayer {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDiceCount, len(dice))
	}

	own := make([]Die, len(dice))
	copy(own, dice)
	return &Player{id: id, dice: own}, nil
}

// ID returns the player's name.
func (p *Player) ID() string { return p.id }

// Score returns the points banked so far.
func (p *Player) Score() int { return p.score }

// Dice returns a copy of the player's dice.
func (p *Player) Dice() []Die {
	dice := make([]Die, len(p.dice))
	copy(dice, p.dice)
	return dice
}

// Roll rolls all of the player's dice.
func (p *Player) Roll() []Face {
	return rollAll(p.dice)
}

func (p *Player) credit(points int) {
	if points > 0 {
		p.score += points
	}
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%d)", p.id, p.score)
}
