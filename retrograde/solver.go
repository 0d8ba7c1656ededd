package retrograde

import (
	"io"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/heapsolver/game"
)

// Solver drives the classification to a fixed point. Each round applies
// two monotone rules; both only ever promote Unknown entries, and the
// move graph is finite and acyclic (every move strictly shrinks a
// heap), so the loop terminates in at most as many rounds as the
// longest descending chain.
type Solver struct {
	space *Space

	// TraceWriter, if set, receives a full table dump after every
	// round so the evolution of the classification can be watched.
	TraceWriter io.Writer
}

func NewSolver(space *Space) *Solver {
	return &Solver{space: space}
}

// Solve runs rounds of the two inference rules until no state remains
// Unknown, and returns the number of rounds taken.
func (s *Solver) Solve() int {
	rounds := 0
	for !s.space.IsSolved() {
		rounds++

		// A state whose moves all lead to losing states is winning:
		// leaving the board in it forces the opponent into a loss.
		newlyWinning := 0
		for _, st := range s.space.Unsolved() {
			if lo.EveryBy(s.space.ChildrenOf(st), s.space.IsLosing) {
				s.space.Mark(st, game.Winning)
				newlyWinning++
			}
		}

		// A state with a move to any winning state is losing: the
		// opponent may make that move and win.
		newlyLosing := 0
		for _, win := range s.space.Winning() {
			for _, parent := range s.space.ParentsOf(win) {
				if !s.space.IsLosing(parent) {
					newlyLosing++
				}
				s.space.Mark(parent, game.Losing)
			}
		}

		log.Debug().
			Int("round", rounds).
			Int("newlyWinning", newlyWinning).
			Int("newlyLosing", newlyLosing).
			Int("unsolved", len(s.space.Unsolved())).
			Msg("solver round complete")

		if s.TraceWriter != nil {
			if err := s.space.Dump(s.TraceWriter); err != nil {
				log.Err(err).Msg("writing evolution trace")
			}
		}
	}
	return rounds
}
