package sudoku

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestGetPossible(t *testing.T) {
	solver := NewSolver(NewGrid(), testRand())

	possible, err := solver.GetPossible(1, 1)
	require.NoError(t, err)
	assert.Equal(t, AllValues, possible)

	require.NoError(t, solver.Grid().Set(0, 1, 1))
	possible, err = solver.GetPossible(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint8{2, 3, 4, 5, 6, 7, 8, 9}, possible.Values())
}

func TestGetPossibleExcludesOccupancy(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.Set(4, 0, 1)) // row
	require.NoError(t, g.Set(0, 4, 2)) // column
	require.NoError(t, g.Set(3, 3, 3)) // block
	solver := NewSolver(g, testRand())

	possible, err := solver.GetPossible(4, 4)
	require.NoError(t, err)
	assert.Equal(t, []uint8{4, 5, 6, 7, 8, 9}, possible.Values())
	assert.LessOrEqual(t, possible.Count(), 9)
}

func TestGetPossibleIdempotent(t *testing.T) {
	solver := NewSolver(testGrid(), testRand())
	first, err := solver.GetPossible(0, 0)
	require.NoError(t, err)
	second, err := solver.GetPossible(0, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetPossibleBadCoordinates(t *testing.T) {
	solver := NewSolver(NewGrid(), testRand())
	_, err := solver.GetPossible(10, 0)
	assert.Equal(t, BadCoordinatesError{10, 0}, err)
}

func TestSolveEmptyGrid(t *testing.T) {
	solver := NewSolver(NewGrid(), testRand())
	require.NoError(t, solver.Solve())
	assert.Equal(t, cellCount, solver.Grid().SetCount())
	assert.True(t, solver.Grid().Valid())
}

func TestSolvePreservesGivens(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	rnd := testRand()
	puzzle, err := Generate(50, rnd)
	require.NoError(t, err)
	givens := puzzle.State()

	solver := NewSolver(puzzle, rnd)
	require.NoError(t, solver.Solve())

	solution := solver.Grid().State()
	assert.True(t, solver.Grid().Valid())
	for i, given := range givens {
		if given != 0 {
			assert.Equal(t, given, solution[i], "given at index %d", i)
		}
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name       string
		difficulty int
		wantCount  int
	}{
		{"full solution", 0, cellCount},
		{"empty puzzle", 100, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g, err := Generate(test.difficulty, testRand())
			require.NoError(t, err)
			assert.Equal(t, test.wantCount, g.SetCount())
			assert.True(t, g.Valid())
		})
	}
}

func TestGenerateHalf(t *testing.T) {
	g, err := Generate(50, testRand())
	require.NoError(t, err)
	assert.True(t, g.Valid())
	assert.LessOrEqual(t, g.SetCount(), cellCount)
	for _, v := range g.State() {
		assert.LessOrEqual(t, v, uint8(9))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := Generate(70, testRand())
	require.NoError(t, err)
	second, err := Generate(70, testRand())
	require.NoError(t, err)
	assert.Equal(t, first.State(), second.State())
}

// The secure snapshot is captured once at construction and, with the
// current certain-flag bookkeeping, never replaced: any unset cell flips
// certain to false before the scan ends. Pinned deliberately; revisit only
// with a correctness review.
func TestSecureSnapshotNeverRetaken(t *testing.T) {
	solver := NewSolver(NewGrid(), testRand())
	require.NoError(t, solver.Solve())

	assert.False(t, solver.secureStateSet)
	assert.Equal(t, [cellCount]uint8{}, solver.secureState)
}

// A stuck cell whose 20 neighbors are all protected by the secure snapshot
// leaves repair with nothing to clear. The algorithm draws a random index
// from an empty slice, which panics. Known sharp edge, kept unguarded.
func TestRepairExhaustionPanics(t *testing.T) {
	g := NewGrid()
	// Row 0 holds 1..8, column 0 holds 9s: cell 0:0 has no candidates.
	for column := 1; column < gridSize; column++ {
		require.NoError(t, g.Set(0, column, uint8(column)))
	}
	for row := 1; row < gridSize; row++ {
		require.NoError(t, g.Set(row, 0, 9))
	}
	// Fill the remaining block neighbors of 0:0.
	require.NoError(t, g.Set(1, 1, 1))
	require.NoError(t, g.Set(1, 2, 2))
	require.NoError(t, g.Set(2, 1, 3))
	require.NoError(t, g.Set(2, 2, 4))

	solver := NewSolver(g, testRand())
	possible, err := solver.GetPossible(0, 0)
	require.NoError(t, err)
	require.True(t, possible.Empty())

	assert.Panics(t, func() {
		_ = solver.Solve()
	})
}
