package sudoku

import (
	"errors"
	"fmt"
)

// ErrNoPossibilities signals an internal invariant violation: a candidate
// set that reported one element yielded none.
var ErrNoPossibilities = errors.New("no possible values left")

type BadRowError struct {
	Row int
}

func (e BadRowError) Error() string {
	return fmt.Sprintf("bad row index %d", e.Row)
}

type BadColumnError struct {
	Column int
}

func (e BadColumnError) Error() string {
	return fmt.Sprintf("bad column index %d", e.Column)
}

type BadCoordinatesError struct {
	Row, Column int
}

func (e BadCoordinatesError) Error() string {
	return fmt.Sprintf("bad coordinates %d:%d", e.Row, e.Column)
}

type BadValueError struct {
	Value uint8
}

func (e BadValueError) Error() string {
	return fmt.Sprintf("bad cell value %d", e.Value)
}

// FixedCellError is returned when a move targets a cell that is part of the
// puzzle's givens.
type FixedCellError struct {
	Row, Column int
}

func (e FixedCellError) Error() string {
	return fmt.Sprintf("cell %d:%d is fixed by the puzzle", e.Row, e.Column)
}
