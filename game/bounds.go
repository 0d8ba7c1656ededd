package game

// Bounds holds the inclusive maximum count for each heap. The bounds
// are configuration passed into state-space construction, not part of
// the State type itself.
type Bounds [NumHeaps]uint8

// DefaultBounds returns the heap maxima the game is defined over.
func DefaultBounds() Bounds {
	return Bounds{1, 3, 5, 7}
}

// NumStates is the size of the Cartesian product of the heap ranges.
func (b Bounds) NumStates() int {
	n := 1
	for _, max := range b {
		n *= int(max) + 1
	}
	return n
}

// Contains reports whether s lies within the bounds.
func (b Bounds) Contains(s State) bool {
	for i := 0; i < NumHeaps; i++ {
		if s[i] > b[i] {
			return false
		}
	}
	return true
}

// Enumerate generates every state in the Cartesian product of the heap
// ranges, in lexicographic order. The counts advance odometer-style so
// the bounds stay configuration rather than nested loop literals.
func Enumerate(b Bounds) []State {
	states := make([]State, 0, b.NumStates())
	var cur State
	for {
		states = append(states, cur)
		i := NumHeaps - 1
		for i >= 0 && cur[i] == b[i] {
			cur[i] = 0
			i--
		}
		if i < 0 {
			return states
		}
		cur[i]++
	}
}
