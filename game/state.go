// Package game defines the value types for a four-heap subtraction
// game: positions, their classification, and the heap bounds that
// delimit the reachable state space.
package game

import "fmt"

// NumHeaps is fixed. The game is always played with four heaps; only
// the per-heap maxima are configurable.
const NumHeaps = 4

// Conclusion classifies a position for the player who leaves the board
// in that state.
type Conclusion uint8

const (
	Unknown Conclusion = iota
	Winning
	Losing
)

func (c Conclusion) String() string {
	switch c {
	case Winning:
		return "Winning"
	case Losing:
		return "Losing"
	}
	return "Unknown"
}

// State is a single game position: the number of objects remaining in
// each heap. It is a comparable value type and is used directly as a
// map key.
type State [NumHeaps]uint8

func NewState(h0, h1, h2, h3 uint8) State {
	return State{h0, h1, h2, h3}
}

// IsChildOf returns true if this state is reachable from parent by one
// legal move. A move removes one or more objects from exactly one heap,
// so exactly one component must be strictly smaller and the rest equal.
func (s State) IsChildOf(parent State) bool {
	reduced := -1
	for i := 0; i < NumHeaps; i++ {
		switch {
		case s[i] > parent[i]:
			return false
		case s[i] < parent[i]:
			if reduced != -1 {
				return false
			}
			reduced = i
		}
	}
	return reduced != -1
}

// Compare orders states lexicographically on their heap counts. It
// returns -1, 0, or 1.
func (s State) Compare(o State) int {
	for i := 0; i < NumHeaps; i++ {
		if s[i] != o[i] {
			if s[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Parity is a diagnostic for cross-referencing the solved table against
// nim-sum theory. Each of the three bit planes of the heap counts is
// reduced to a one-bit parity, and the three parities are summed. The
// sum is not reduced again, so the result ranges over 0-3; it is zero
// exactly when the nim-sum of the heaps is zero.
func (s State) Parity() uint8 {
	var parity uint8
	for shift := uint8(0); shift < 3; shift++ {
		var ones uint8
		for i := 0; i < NumHeaps; i++ {
			ones += (s[i] >> shift) & 1
		}
		parity += ones % 2
	}
	return parity
}

func (s State) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", s[0], s[1], s[2], s[3])
}
