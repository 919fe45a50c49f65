package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testGrid holds 1..81 in row-major order so every projection has a unique,
// predictable literal.
func testGrid() *Grid {
	var state [cellCount]uint8
	for i := range state {
		state[i] = uint8(i + 1)
	}
	return GridFromState(state)
}

func TestRow(t *testing.T) {
	g := testGrid()

	tests := []struct {
		row  int
		want [gridSize]uint8
	}{
		{0, [gridSize]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{1, [gridSize]uint8{10, 11, 12, 13, 14, 15, 16, 17, 18}},
		{4, [gridSize]uint8{37, 38, 39, 40, 41, 42, 43, 44, 45}},
		{8, [gridSize]uint8{73, 74, 75, 76, 77, 78, 79, 80, 81}},
	}
	for _, test := range tests {
		row, err := g.Row(test.row)
		require.NoError(t, err)
		assert.Equal(t, test.want, row)
	}
}

func TestColumn(t *testing.T) {
	g := testGrid()

	tests := []struct {
		column int
		want   [gridSize]uint8
	}{
		{0, [gridSize]uint8{1, 10, 19, 28, 37, 46, 55, 64, 73}},
		{1, [gridSize]uint8{2, 11, 20, 29, 38, 47, 56, 65, 74}},
		{8, [gridSize]uint8{9, 18, 27, 36, 45, 54, 63, 72, 81}},
	}
	for _, test := range tests {
		column, err := g.Column(test.column)
		require.NoError(t, err)
		assert.Equal(t, test.want, column)
	}
}

func TestBlock(t *testing.T) {
	g := testGrid()

	tests := []struct {
		blockRow, blockColumn int
		want                  [gridSize]uint8
	}{
		{0, 0, [gridSize]uint8{1, 2, 3, 10, 11, 12, 19, 20, 21}},
		{1, 0, [gridSize]uint8{28, 29, 30, 37, 38, 39, 46, 47, 48}},
		{2, 0, [gridSize]uint8{55, 56, 57, 64, 65, 66, 73, 74, 75}},
		{0, 1, [gridSize]uint8{4, 5, 6, 13, 14, 15, 22, 23, 24}},
		{1, 1, [gridSize]uint8{31, 32, 33, 40, 41, 42, 49, 50, 51}},
		{2, 2, [gridSize]uint8{61, 62, 63, 70, 71, 72, 79, 80, 81}},
	}
	for _, test := range tests {
		block, err := g.Block(test.blockRow, test.blockColumn)
		require.NoError(t, err)
		assert.Equal(t, test.want, block)
	}
}

func TestBadIndices(t *testing.T) {
	g := testGrid()

	_, err := g.Row(10)
	assert.Equal(t, BadRowError{10}, err)

	_, err = g.Column(9)
	assert.Equal(t, BadColumnError{9}, err)

	_, err = g.Block(3, 0)
	assert.Equal(t, BadCoordinatesError{3, 0}, err)

	_, err = g.IsSet(0, 9)
	assert.Equal(t, BadCoordinatesError{0, 9}, err)

	assert.Equal(t, BadCoordinatesError{9, 9}, g.Set(9, 9, 1))
	assert.Equal(t, BadValueError{10}, g.Set(0, 0, 10))
}

func TestSetCount(t *testing.T) {
	g := NewGrid()

	require.NoError(t, g.Set(2, 2, 5))
	set, err := g.IsSet(2, 2)
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, 1, g.SetCount())

	// nonzero to different nonzero leaves the count alone
	require.NoError(t, g.Set(2, 2, 7))
	assert.Equal(t, 1, g.SetCount())

	require.NoError(t, g.Set(2, 2, 0))
	set, err = g.IsSet(2, 2)
	require.NoError(t, err)
	assert.False(t, set)
	assert.Equal(t, 0, g.SetCount())

	// clearing an already empty cell must not go negative
	require.NoError(t, g.Set(2, 3, 0))
	assert.Equal(t, 0, g.SetCount())
}

func TestGridFromStateCounts(t *testing.T) {
	var state [cellCount]uint8
	state[0] = 3
	state[40] = 7
	state[80] = 9
	g := GridFromState(state)
	assert.Equal(t, 3, g.SetCount())
	assert.Equal(t, state, g.State())
}

func TestString(t *testing.T) {
	var state [cellCount]uint8
	for i := range state {
		state[i] = uint8(i%gridSize) + 1
	}
	g := GridFromState(state)

	line := "1 2 3 | 4 5 6 | 7 8 9 "
	divider := "\n----------------------\n"
	want := line + "\n" + line + "\n" + line +
		divider + line + "\n" + line + "\n" + line +
		divider + line + "\n" + line + "\n" + line
	assert.Equal(t, want, g.String())
}

func TestStringEmptyCells(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.Set(0, 0, 5))
	require.NoError(t, g.Set(0, 1, 3))
	require.NoError(t, g.Set(0, 4, 7))

	got := g.String()
	first := "5 3   |   7   |       "
	assert.Equal(t, first, got[:len(first)])

	empty := "      |       |       "
	assert.Equal(t, "\n"+empty, got[len(first):len(first)+1+len(empty)])
}

func TestValid(t *testing.T) {
	g := NewGrid()
	assert.True(t, g.Valid())

	require.NoError(t, g.Set(0, 0, 5))
	require.NoError(t, g.Set(0, 8, 5))
	assert.False(t, g.Valid())

	require.NoError(t, g.Set(0, 8, 4))
	assert.True(t, g.Valid())

	// same block, different row and column
	require.NoError(t, g.Set(1, 1, 5))
	assert.False(t, g.Valid())
}
