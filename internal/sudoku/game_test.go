package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameFullSolution(t *testing.T) {
	game, err := NewGame(0, testRand())
	require.NoError(t, err)
	assert.True(t, game.Solved)
	assert.Equal(t, cellCount, game.Grid().SetCount())
}

func TestSetCell(t *testing.T) {
	game, err := NewGame(70, testRand())
	require.NoError(t, err)

	var fixed, empty Coordinates
	foundFixed, foundEmpty := false, false
	for row := range gridSize {
		for column := range gridSize {
			if game.Puzzle[index(row, column)] != 0 {
				fixed, foundFixed = Coordinates{row, column}, true
			} else {
				empty, foundEmpty = Coordinates{row, column}, true
			}
		}
	}
	require.True(t, foundFixed)
	require.True(t, foundEmpty)

	err = game.SetCell(fixed.Row, fixed.Column, 1)
	assert.Equal(t, FixedCellError{fixed.Row, fixed.Column}, err)

	require.NoError(t, game.SetCell(empty.Row, empty.Column, 5))
	assert.Equal(t, uint8(5), game.Squares[index(empty.Row, empty.Column)])

	// erase the play again
	require.NoError(t, game.SetCell(empty.Row, empty.Column, 0))
	assert.Equal(t, uint8(0), game.Squares[index(empty.Row, empty.Column)])

	assert.Equal(t, BadCoordinatesError{9, 0}, game.SetCell(9, 0, 1))
	assert.Equal(t, BadValueError{11}, game.SetCell(empty.Row, empty.Column, 11))
}

func TestReset(t *testing.T) {
	game, err := NewGame(70, testRand())
	require.NoError(t, err)

	for row := range gridSize {
		for column := range gridSize {
			if game.Puzzle[index(row, column)] == 0 {
				require.NoError(t, game.SetCell(row, column, 1))
			}
		}
	}
	assert.NotEqual(t, game.Puzzle, game.Squares)

	game.Reset()
	assert.Equal(t, game.Puzzle, game.Squares)
}

func TestGameSolve(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	rnd := testRand()
	game, err := NewGame(60, rnd)
	require.NoError(t, err)
	require.False(t, game.Solved)

	require.NoError(t, game.Solve(rnd))
	assert.True(t, game.Solved)
	assert.True(t, game.UsedSolve)
	assert.True(t, game.Grid().Valid())
	for i, given := range game.Puzzle {
		if given != 0 {
			assert.Equal(t, given, game.Squares[i])
		}
	}
}

func TestGameStateRoundtrip(t *testing.T) {
	game, err := NewGame(70, testRand())
	require.NoError(t, err)

	b, err := game.Bytes()
	require.NoError(t, err)

	decoded, err := ParseGameStateFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, game, decoded)
}
