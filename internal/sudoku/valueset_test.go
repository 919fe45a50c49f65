package sudoku

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func naiveBitCount(i int) (count int) {
	s := strconv.FormatInt(int64(i), 2)
	for _, char := range s {
		if char == '1' {
			count += 1
		}
	}
	return
}

func TestValueSetCount(t *testing.T) {
	for i := range 0x3FF {
		assert.Equal(t, naiveBitCount(i), ValueSet(i).Count())
	}
}

func TestValueSetMembership(t *testing.T) {
	var s ValueSet
	assert.True(t, s.Empty())

	s.Add(3)
	s.Add(7)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(4))
	assert.Equal(t, []uint8{3, 7}, s.Values())

	s.Remove(3)
	assert.Equal(t, []uint8{7}, s.Values())

	// removing a raw empty-cell value is a no-op
	s.Remove(0)
	assert.Equal(t, 1, s.Count())
}

func TestValueSetSingle(t *testing.T) {
	_, ok := AllValues.Single()
	assert.False(t, ok)

	var s ValueSet
	_, ok = s.Single()
	assert.False(t, ok)

	s.Add(9)
	v, ok := s.Single()
	assert.True(t, ok)
	assert.Equal(t, uint8(9), v)

	assert.Equal(t, 9, AllValues.Count())
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}, AllValues.Values())
}
