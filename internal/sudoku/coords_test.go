package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighbors(t *testing.T) {
	c := Coordinates{Row: 1, Column: 2}
	neighbors := Neighbors(c)

	seen := make(map[Coordinates]bool, neighborCount)
	for _, n := range neighbors {
		assert.NotEqual(t, c, n)
		assert.False(t, seen[n], "duplicate neighbor %v", n)
		seen[n] = true

		sameRow := n.Row == c.Row
		sameColumn := n.Column == c.Column
		sameBlock := n.Row/blockSize == c.Row/blockSize &&
			n.Column/blockSize == c.Column/blockSize
		assert.True(t, sameRow || sameColumn || sameBlock,
			"%v shares nothing with %v", n, c)
	}
	assert.Len(t, seen, neighborCount)
}

func TestNeighborsCorners(t *testing.T) {
	for _, c := range []Coordinates{
		{0, 0}, {0, 8}, {8, 0}, {8, 8}, {4, 4},
	} {
		seen := make(map[Coordinates]bool, neighborCount)
		for _, n := range Neighbors(c) {
			seen[n] = true
		}
		assert.Len(t, seen, neighborCount, "cell %v", c)
		assert.False(t, seen[c])
	}
}
