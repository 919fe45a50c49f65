package sudoku

// Coordinates is a row, column pair, each in [0,9). Plain value type with
// structural equality, usable as a map key.
type Coordinates struct {
	Row, Column int
}

// neighborCount is fixed: 8 cells share the row, 8 the column, and of the 8
// sharing the block, 4 were already counted.
const neighborCount = 20

// Neighbors returns the cells whose values constrain the cell at c: every
// cell sharing its row, column or 3x3 block, excluding c itself. The result
// is in row-major order and allocation-free.
func Neighbors(c Coordinates) [neighborCount]Coordinates {
	var retval [neighborCount]Coordinates
	n := 0
	for row := range gridSize {
		for column := range gridSize {
			if row == c.Row && column == c.Column {
				continue
			}
			sameRow := row == c.Row
			sameColumn := column == c.Column
			sameBlock := row/blockSize == c.Row/blockSize &&
				column/blockSize == c.Column/blockSize
			if sameRow || sameColumn || sameBlock {
				retval[n] = Coordinates{Row: row, Column: column}
				n++
			}
		}
	}
	return retval
}
