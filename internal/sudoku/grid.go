package sudoku

import (
	"fmt"
	"strings"
)

const (
	gridSize  = 9
	blockSize = 3
	cellCount = gridSize * gridSize
)

// Grid is the 9x9 board. Each cell holds 0 for empty or a digit 1-9.
// setCount tracks the number of nonzero cells and is maintained
// incrementally by Set, never recomputed.
type Grid struct {
	squares  [cellCount]uint8
	setCount int
}

// index converts a row, column pair into the row-major array index.
func index(row, column int) int {
	return row*gridSize + column
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// GridFromState copies all 81 values and counts the nonzero ones. Values
// are not range-checked here; only Set is strict about new writes.
func GridFromState(state [cellCount]uint8) *Grid {
	g := &Grid{squares: state}
	for _, value := range state {
		if value != 0 {
			g.setCount++
		}
	}
	return g
}

// SetCount returns the number of nonzero cells.
func (g *Grid) SetCount() int {
	return g.setCount
}

// State returns a copy of the raw cell values in row-major order.
func (g *Grid) State() [cellCount]uint8 {
	return g.squares
}

// Row returns the nine values of the given row.
func (g *Grid) Row(row int) ([gridSize]uint8, error) {
	var retval [gridSize]uint8
	if row < 0 || row >= gridSize {
		return retval, BadRowError{row}
	}
	copy(retval[:], g.squares[row*gridSize:row*gridSize+gridSize])
	return retval, nil
}

// Column returns the nine values of the given column.
func (g *Grid) Column(column int) ([gridSize]uint8, error) {
	var retval [gridSize]uint8
	if column < 0 || column >= gridSize {
		return retval, BadColumnError{column}
	}
	for i := range gridSize {
		retval[i] = g.squares[index(i, column)]
	}
	return retval, nil
}

// Block returns the nine values of the 3x3 block at block coordinates
// blockRow, blockColumn in [0,3), row-major within the block.
func (g *Grid) Block(blockRow, blockColumn int) ([gridSize]uint8, error) {
	var retval [gridSize]uint8
	if blockRow < 0 || blockRow >= blockSize ||
		blockColumn < 0 || blockColumn >= blockSize {
		return retval, BadCoordinatesError{blockRow, blockColumn}
	}
	for i := range gridSize {
		retval[i] = g.squares[index(
			blockRow*blockSize+i/blockSize,
			blockColumn*blockSize+i%blockSize,
		)]
	}
	return retval, nil
}

// Set writes value into the cell at row, column. The set count is adjusted
// on empty<->nonempty transitions only.
func (g *Grid) Set(row, column int, value uint8) error {
	if row < 0 || row >= gridSize || column < 0 || column >= gridSize {
		return BadCoordinatesError{row, column}
	}
	if value > 9 {
		return BadValueError{value}
	}

	i := index(row, column)
	if g.squares[i] == 0 {
		if value != 0 {
			g.setCount++
		}
	} else if value == 0 {
		g.setCount--
	}
	g.squares[i] = value

	return nil
}

// IsSet reports whether the cell at row, column holds a nonzero value.
func (g *Grid) IsSet(row, column int) (bool, error) {
	if row < 0 || row >= gridSize || column < 0 || column >= gridSize {
		return false, BadCoordinatesError{row, column}
	}
	return g.squares[index(row, column)] != 0, nil
}

// Valid reports whether every row, column and block is free of duplicate
// nonzero values. Empty cells never count as duplicates.
func (g *Grid) Valid() bool {
	for i := range gridSize {
		row, _ := g.Row(i)
		column, _ := g.Column(i)
		block, _ := g.Block(i/blockSize, i%blockSize)
		if hasDuplicates(row) || hasDuplicates(column) || hasDuplicates(block) {
			return false
		}
	}
	return true
}

func hasDuplicates(values [gridSize]uint8) bool {
	var seen ValueSet
	for _, v := range values {
		if v == 0 {
			continue
		}
		if seen.Has(v) {
			return true
		}
		seen.Add(v)
	}
	return false
}

// String renders the grid as fixed-width text, 3x3 sub-grids separated by
// "| " and a divider line every three rows. The format is stable; clients
// parse it.
func (g Grid) String() string {
	var b strings.Builder
	for i, value := range g.squares {
		if i != 0 {
			if i%(gridSize*blockSize) == 0 {
				b.WriteString("\n----------------------\n")
			} else if i%gridSize == 0 {
				b.WriteString("\n")
			} else if i%blockSize == 0 {
				b.WriteString("| ")
			}
		}
		if value != 0 {
			fmt.Fprintf(&b, "%d ", value)
		} else {
			b.WriteString("  ")
		}
	}
	return b.String()
}
