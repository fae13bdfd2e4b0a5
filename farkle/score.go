package farkle

import "fmt"

// CombinationKind identifies a scoring pattern.
type CombinationKind int

const (
	Triplet CombinationKind = iota
	Single
)

func (k CombinationKind) String() string {
	switch k {
	case Triplet:
		return "triplet"
	case Single:
		return "single"
	default:
		return fmt.Sprintf("CombinationKind(%d)", int(k))
	}
}

// Combination is one scored group of dice.
type Combination struct {
	Kind   CombinationKind
	Face   Face
	Points int
}

// Size returns how many dice the combination consumes.
func (c Combination) Size() int {
	if c.Kind == Triplet {
		return 3
	}
	return 1
}

func (c Combination) String() string {
	if c.Kind == Triplet {
		return fmt.Sprintf("three %ss (%d)", c.Face, c.Points)
	}
	return fmt.Sprintf("single %s (%d)", c.Face, c.Points)
}

// Score returns the points for faces when every die belongs to a
// combination. An empty selection fails with ErrNoDice; otherwise the dice
// left over are reported as a *CombinationError.
func Score(faces []Face) (int, error) {
	if len(faces) == 0 {
		return 0, ErrNoDice
	}

	score, leftover := Evaluate(faces)
	if len(leftover) > 0 {
		return 0, &CombinationError{Unused: leftover}
	}
	return score, nil
}

// Evaluate extracts every combination it can from faces and returns their
// total together with the dice that could not be used, in their original
// order. The input is not modified.
func Evaluate(faces []Face) (int, []Face) {
	combos, leftover := Breakdown(faces)
	total := 0
	for _, c := range combos {
		total += c.Points
	}
	return total, leftover
}

// Breakdown returns the combinations found in faces, in extraction order,
// and the dice that are not part of any of them.
//
// Triplets are taken first, lowest face first, restarting from face 1 after
// each one until no face has three occurrences left. Single ones and fives
// are taken afterwards.
func Breakdown(faces []Face) ([]Combination, []Face) {
	rest := make([]Face, len(faces))
	copy(rest, faces)

	var combos []Combination

	for found := true; found; {
		found = false
		for face := Face(1); face <= Sides; face++ {
			if next, ok := take(rest, face, 3); ok {
				rest = next
				combos = append(combos, Combination{Kind: Triplet, Face: face, Points: tripletPoints(face)})
				found = true
				break
			}
		}
	}

	for prev := -1; prev != len(rest); {
		prev = len(rest)
		if next, ok := take(rest, 1, 1); ok {
			rest = next
			combos = append(combos, Combination{Kind: Single, Face: 1, Points: 100})
		}
		if next, ok := take(rest, 5, 1); ok {
			rest = next
			combos = append(combos, Combination{Kind: Single, Face: 5, Points: 50})
		}
	}

	return combos, rest
}

func tripletPoints(face Face) int {
	if face == 1 {
		return 1000
	}
	return int(face) * 100
}

// take removes the first n occurrences of face from faces, keeping the order
// of the others. It reports false and leaves faces alone when there are
// fewer than n.
func take(faces []Face, face Face, n int) ([]Face, bool) {
	count := 0
	for _, f := range faces {
		if f == face {
			count++
		}
	}
	if count < n {
		return faces, false
	}

	out := make([]Face, 0, len(faces)-n)
	removed := 0
	for _, f := range faces {
		if f == face && removed < n {
			removed++
			continue
		}
		out = append(out, f)
	}
	return out, true
}
