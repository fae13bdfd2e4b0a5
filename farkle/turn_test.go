package farkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnStartsWaitingForRoll(t *testing.T) {
	t.Parallel()

	turn := NewTurn(1, scriptedDice(t))
	assert.True(t, turn.IsWaitingForRoll())
	assert.Equal(t, 1, turn.PlayerIndex())
	assert.Equal(t, 6, turn.RemainingDice())
	assert.False(t, turn.IsFinished())
	assert.False(t, turn.HasAnyCombination())
	assert.Zero(t, turn.TotalScore())

	_, ok := turn.LastRoll()
	assert.False(t, ok)
}

func TestTurnRollTransitions(t *testing.T) {
	t.Parallel()

	turn := NewTurn(0, scriptedDice(t, 2, 3, 4, 4, 4, 6))

	roll, err := turn.Roll()
	require.NoError(t, err)
	assert.Equal(t, mustFaces(t, 2, 3, 4, 4, 4, 6), roll)
	assert.False(t, turn.IsWaitingForRoll())

	last, ok := turn.LastRoll()
	require.True(t, ok)
	assert.Equal(t, roll, last)

	_, err = turn.Roll()
	assert.ErrorIs(t, err, ErrRollPending)
}

func TestTurnUseDiceRequiresRoll(t *testing.T) {
	t.Parallel()

	turn := NewTurn(0, scriptedDice(t))
	_, err := turn.UseDice([]int{0})
	assert.ErrorIs(t, err, ErrNoRoll)
}

func TestTurnUseDiceInvalidSelections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		indexes []int
		wantErr error
		unused  []int
	}{
		{name: "out of range", indexes: []int{6}, wantErr: ErrWrongIndexes},
		{name: "negative", indexes: []int{-1}, wantErr: ErrWrongIndexes},
		{name: "duplicate", indexes: []int{2, 2, 3}, wantErr: ErrDuplicateIndexes},
		{name: "empty", indexes: nil, wantErr: ErrNoDice},
		{name: "non scoring", indexes: []int{0, 1}, unused: []int{2, 3}},
		{name: "partly scoring", indexes: []int{2, 3, 4, 5}, unused: []int{6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			turn := NewTurn(0, scriptedDice(t, 2, 3, 4, 4, 4, 6))
			_, err := turn.Roll()
			require.NoError(t, err)

			_, err = turn.UseDice(tt.indexes)
			if tt.unused != nil {
				unused, ok := UnusedDice(err)
				require.True(t, ok, "expected combination error, got %v", err)
				assert.Equal(t, mustFaces(t, tt.unused...), unused)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			// a failed selection leaves the turn untouched
			assert.False(t, turn.IsWaitingForRoll())
			assert.Equal(t, 6, turn.RemainingDice())
			assert.Empty(t, turn.Ledger())
		})
	}
}

func TestTurnUseDiceRemovesSelectedDice(t *testing.T) {
	t.Parallel()

	turn := NewTurn(0, scriptedDice(t, 2, 3, 4, 4, 4, 6, 1, 2, 5))
	_, err := turn.Roll()
	require.NoError(t, err)

	_, err = turn.UseDice([]int{0, 1})
	require.Error(t, err)

	points, err := turn.UseDice([]int{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 400, points)
	assert.Equal(t, 3, turn.RemainingDice())
	assert.True(t, turn.IsWaitingForRoll())

	roll, err := turn.Roll()
	require.NoError(t, err)
	assert.Equal(t, mustFaces(t, 1, 2, 5), roll)
	assert.True(t, turn.HasAnyCombination())

	points, err = turn.UseDice([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, 150, points)
	assert.Equal(t, 1, turn.RemainingDice())
	assert.Equal(t, []int{400, 150}, turn.Ledger())
	assert.Equal(t, 550, turn.TotalScore())
	assert.False(t, turn.IsFinished())
}

func TestTurnRemainingDiceNeverIncreases(t *testing.T) {
	t.Parallel()

	turn := NewTurn(0, scriptedDice(t, 1, 5, 1, 5, 1, 5, 1, 5, 1, 5, 1, 5))
	remaining := turn.RemainingDice()
	for !turn.IsFinished() {
		roll, err := turn.Roll()
		require.NoError(t, err)

		_, err = turn.UseDice([]int{0})
		require.NoError(t, err, "roll %v", roll)
		assert.Equal(t, remaining-1, turn.RemainingDice())
		remaining = turn.RemainingDice()
	}
	assert.Len(t, turn.Ledger(), 6)
}

func TestTurnHotDice(t *testing.T) {
	t.Parallel()

	turn := NewTurn(0, scriptedDice(t, 1, 1, 1, 5, 5, 5))
	_, err := turn.Roll()
	require.NoError(t, err)

	points, err := turn.UseDice([]int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 1500, points)
	assert.True(t, turn.IsFinished())
}

func TestTurnHasAnyCombination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		roll []int
		want bool
	}{
		{name: "bust", roll: []int{2, 3, 4, 6, 6, 2}, want: false},
		{name: "single five", roll: []int{2, 3, 4, 6, 6, 5}, want: true},
		{name: "triplet only", roll: []int{2, 2, 2, 3, 4, 6}, want: true},
		{name: "full decomposition", roll: []int{1, 1, 1, 5, 5, 5}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			turn := NewTurn(0, scriptedDice(t, tt.roll...))
			_, err := turn.Roll()
			require.NoError(t, err)

			assert.Equal(t, tt.want, turn.HasAnyCombination())
			assert.False(t, turn.IsWaitingForRoll(), "query must not change state")
		})
	}
}

func TestTurnCloneIsIndependent(t *testing.T) {
	t.Parallel()

	turn := NewTurn(0, scriptedDice(t, 1, 2, 3, 4, 6, 6))
	_, err := turn.Roll()
	require.NoError(t, err)

	clone := turn.Clone()
	points, err := clone.UseDice([]int{0})
	require.NoError(t, err)
	assert.Equal(t, 100, points)

	assert.False(t, turn.IsWaitingForRoll())
	assert.Equal(t, 6, turn.RemainingDice())
	assert.Empty(t, turn.Ledger())
	assert.Equal(t, 5, clone.RemainingDice())
}

func TestRemoveIndexed(t *testing.T) {
	t.Parallel()

	v := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	got := removeIndexed(v, map[int]bool{1: true, 3: true, 5: true, 7: true, 9: true})
	assert.Equal(t, []int{1, 3, 5, 7, 9}, got)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, v)
}
