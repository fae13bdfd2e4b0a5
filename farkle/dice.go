package farkle

import (
	"fmt"
	rand "math/rand/v2"
	"strconv"
	"strings"
)

// Sides is the number of faces of a Farkle die.
const Sides = 6

// DicePerPlayer is the number of dice every player holds.
const DicePerPlayer = 6

// Face is the value shown by a rolled die, always in 1..6.
type Face uint8

// NewFace validates v and returns it as a Face.
func NewFace(v int) (Face, error) {
	if v < 1 || v > Sides {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFace, v)
	}
	return Face(v), nil
}

// Faces builds a slice of faces, failing on the first value outside 1..6.
func Faces(values ...int) ([]Face, error) {
	faces := make([]Face, 0, len(values))
	for _, v := range values {
		f, err := NewFace(v)
		if err != nil {
			return nil, err
		}
		faces = append(faces, f)
	}
	return faces, nil
}

// ParseFaces parses dice written as "1 1 5", "1,1,5" or "115".
func ParseFaces(s string) ([]Face, error) {
	s = strings.NewReplacer(",", " ", "[", " ", "]", " ").Replace(s)
	fields := strings.Fields(s)
	if len(fields) == 1 && len(fields[0]) > 1 {
		fields = strings.Split(fields[0], "")
	}

	values := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFace, field)
		}
		values = append(values, v)
	}
	return Faces(values...)
}

func (f Face) String() string {
	return strconv.Itoa(int(f))
}

// Die produces a face each time it is rolled.
type Die interface {
	Roll() Face
}

// RandomDie rolls uniformly over 1..6.
type RandomDie struct {
	rng *rand.Rand
}

// NewRandomDie returns a die backed by rng. A nil rng uses the global source.
func NewRandomDie(rng *rand.Rand) *RandomDie {
	return &RandomDie{rng: rng}
}

// Roll returns a uniformly distributed face.
func (d *RandomDie) Roll() Face {
	if d.rng == nil {
		return Face(rand.IntN(Sides) + 1)
	}
	return Face(d.rng.IntN(Sides) + 1)
}

// NewStandardDice returns a full set of random dice sharing rng.
func NewStandardDice(rng *rand.Rand) []Die {
	dice := make([]Die, DicePerPlayer)
	for i := range dice {
		dice[i] = NewRandomDie(rng)
	}
	return dice
}

// DieFunc adapts a function to the Die interface.
type DieFunc func() Face

// Roll calls f.
func (f DieFunc) Roll() Face { return f() }

// ScriptedDice returns a full set of dice that draw from one shared queue of
// faces, in order. Rolling n remaining dice consumes the next n faces, so the
// queue reads exactly like the sequence of roll results. Once the queue is
// drained every die shows 1. Values outside 1..6 fail with ErrInvalidFace.
func ScriptedDice(faces ...int) ([]Die, error) {
	script, err := Faces(faces...)
	if err != nil {
		return nil, fmt.Errorf("scripted dice: %w", err)
	}

	queue := &faceQueue{faces: script}
	dice := make([]Die, DicePerPlayer)
	for i := range dice {
		dice[i] = DieFunc(queue.next)
	}
	return dice, nil
}

type faceQueue struct {
	faces []Face
	pos   int
}

func (q *faceQueue) next() Face {
	if q.pos >= len(q.faces) {
		return 1
	}
	f := q.faces[q.pos]
	q.pos++
	return f
}

func rollAll(dice []Die) []Face {
	roll := make([]Face, len(dice))
	for i, d := range dice {
		roll[i] = d.Roll()
	}
	return roll
}
