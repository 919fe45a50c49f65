package sudoku

import (
	"bytes"
	"encoding/gob"
	"math/rand/v2"
)

// GameState is one played puzzle: the immutable givens, the player's
// current cell values and the difficulty the puzzle was generated at.
// Fields are exported for gob.
type GameState struct {
	Puzzle     [cellCount]uint8 // givens; nonzero cells cannot be overwritten
	Squares    [cellCount]uint8 // current state, givens included
	Difficulty int
	Solved     bool
	UsedSolve  bool
}

// NewGame generates a fresh puzzle at the given difficulty.
func NewGame(difficulty int, rnd *rand.Rand) (*GameState, error) {
	puzzle, err := Generate(difficulty, rnd)
	if err != nil {
		return nil, err
	}
	game := &GameState{
		Puzzle:     puzzle.squares,
		Squares:    puzzle.squares,
		Difficulty: difficulty,
	}
	game.Solved = game.checkSolved()
	return game, nil
}

func ParseGameStateFromBytes(buf []byte) (*GameState, error) {
	var game GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (gs GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(gs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Grid returns the current state as a Grid.
func (gs *GameState) Grid() *Grid {
	return GridFromState(gs.Squares)
}

// ValidateCell reports whether row, column address a cell on the board.
func (gs *GameState) ValidateCell(row, column int) bool {
	return 0 <= row && row < gridSize && 0 <= column && column < gridSize
}

// SetCell plays value at row, column. Value 0 erases a previous play.
// Cells fixed by the puzzle cannot be changed.
func (gs *GameState) SetCell(row, column int, value uint8) error {
	if !gs.ValidateCell(row, column) {
		return BadCoordinatesError{row, column}
	}
	if value > 9 {
		return BadValueError{value}
	}
	if gs.Puzzle[index(row, column)] != 0 {
		return FixedCellError{row, column}
	}
	gs.Squares[index(row, column)] = value
	gs.Solved = gs.checkSolved()
	return nil
}

// Reset erases every play, returning the grid to the bare puzzle.
func (gs *GameState) Reset() {
	gs.Squares = gs.Puzzle
	gs.Solved = gs.checkSolved()
}

// Solve runs the solver over the current state, filling every remaining
// cell, and marks the session as solver-assisted. The solver treats plays
// like givens, so a contradictory play makes the position unsolvable.
func (gs *GameState) Solve(rnd *rand.Rand) error {
	solver := NewSolver(GridFromState(gs.Squares), rnd)
	if err := solver.Solve(); err != nil {
		return err
	}
	gs.Squares = solver.grid.squares
	gs.UsedSolve = true
	gs.Solved = gs.checkSolved()
	return nil
}

func (gs *GameState) checkSolved() bool {
	g := GridFromState(gs.Squares)
	return g.SetCount() == cellCount && g.Valid()
}
