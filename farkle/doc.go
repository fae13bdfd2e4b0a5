// Package farkle implements the rules engine for the dice game Farkle.
//
// The main type is Game, which rotates a fixed list of players and owns the
// single live Turn. A Turn moves between two states: waiting for a roll, and
// holding a roll result that the player picks scoring dice from.
//
// # Basic Usage
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	alice, _ := farkle.NewPlayer("Alice", farkle.NewStandardDice(rng))
//	bob, _ := farkle.NewPlayer("Bob", farkle.NewStandardDice(rng))
//	g, _ := farkle.NewGame([]*farkle.Player{alice, bob})
//
//	roll, _ := g.Roll()
//	if !g.HasAnyCombination() {
//	    g.Bust()
//	}
//	points, err := g.UseDice([]int{0, 2})
//	g.NextTurn() // bank and pass the dice
//
// # Scoring
//
// Score decomposes a selection into triplets (1000 for ones, face*100
// otherwise) and single ones (100) and fives (50). Every die of the selection
// must be part of a combination; the dice that are not are reported through
// CombinationError.
//
// # Deterministic Testing
//
// Dice are an interface, so rolls can be scripted:
//
//	dice, _ := farkle.ScriptedDice(1, 1, 1, 5, 5, 5)
//	p, _ := farkle.NewPlayer("Alice", dice)
//
// Game and Turn are not safe for concurrent use.
package farkle
