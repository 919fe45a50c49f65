package sudoku

// ValueSet is a bitmask over the candidate digits 1-9; bit v is set when
// digit v is a member. Bit 0 is unused, which lets callers feed raw cell
// values (where 0 means empty) straight into Remove.
type ValueSet uint16

// AllValues has every digit 1-9 present.
const AllValues ValueSet = 0b11_1111_1110

func (s ValueSet) Has(value uint8) bool {
	return s&(1<<value) != 0
}

func (s *ValueSet) Add(value uint8) {
	*s |= 1 << value
}

func (s *ValueSet) Remove(value uint8) {
	*s &^= 1 << value
}

func (s ValueSet) Empty() bool {
	return s == 0
}

func (s ValueSet) Count() int {
	w := uint16(s)
	w = ((w & 0xAAAA) >> 1) + (w & 0x5555)
	w = ((w & 0xCCCC) >> 2) + (w & 0x3333)
	w = ((w & 0xF0F0) >> 4) + (w & 0x0F0F)
	w = ((w & 0xFF00) >> 8) + (w & 0x00FF)
	return int(w)
}

// Values lists the members in ascending order.
func (s ValueSet) Values() []uint8 {
	values := make([]uint8, 0, gridSize)
	for v := uint8(1); v <= gridSize; v++ {
		if s.Has(v) {
			values = append(values, v)
		}
	}
	return values
}

// Single returns the sole member, if the set has exactly one.
func (s ValueSet) Single() (uint8, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return s.Values()[0], true
}
