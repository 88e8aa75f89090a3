// Package search implements iterative-deepening alpha-beta search over a
// principal-variation tree that is reused across depths, ported from the
// Window/Line design in the original engine's search documentation rather
// than search.rs's simpler unbounded minimax -- the PV-tree reuse and
// fail-soft cutoff are this package's own contribution on top of that
// skeleton.
package search

import (
	"sort"

	chess "github.com/ondrachi/hyperchess"
	"github.com/ondrachi/hyperchess/eval"
)

// window holds the current alpha-beta bounds: White maximizes alpha, Black
// minimizes beta.
type window struct {
	alpha eval.Score
	beta  eval.Score
}

// Line is a node in the principal-variation tree. The root Line has a nil
// Move. Children represent successor positions reached by the associated
// move, and persist across iterative-deepening passes so that only the
// leaf generation grows as depth increases.
type Line struct {
	Move     *chess.Move
	Score    eval.Score
	Children []*Line
}

// Searcher runs alpha-beta search against an Evaluator, retaining a PV tree
// between calls so repeated searches from related positions reorder
// children using the previous iteration's scores.
type Searcher struct {
	eval eval.Evaluator
	root *Line

	// OnDepth, if set, is called after each completed iterative-deepening
	// pass with the depth just finished and the best score found so far.
	// The uci package wires this to enginelog at DEBUG level; it is never
	// called from inside alphabeta itself, only between iterations.
	OnDepth func(depth int, score eval.Score)
}

// New returns a Searcher driven by e. Passing a stub Evaluator is useful in
// tests, mirroring eval.rs's own Evaluator trait being exercised generically.
func New(e eval.Evaluator) *Searcher {
	return &Searcher{eval: e, root: &Line{}}
}

// Reset discards the retained PV tree, forcing the next search to expand
// from scratch. Callers should call this whenever the position diverges
// from the one the tree was built against (e.g. a new game, or a move the
// tree has no child for).
func (s *Searcher) Reset() {
	s.root = &Line{}
}

// Search runs iterative deepening from depth 0 up to and including
// maxDepth, returning the best move found at the final depth (or nil if
// pos has no legal moves). The PV tree is retained across the whole call
// and across subsequent calls to Search until Reset, per spec.md's
// iterative-deepening algorithm: "between iterations, the Line tree is
// retained; only the leaf children vectors grow as required by the new
// depth."
func (s *Searcher) Search(pos *chess.Position, maxDepth int) *chess.Move {
	for d := 0; d <= maxDepth; d++ {
		score := s.alphabeta(pos, s.root, window{alpha: -eval.Infinity, beta: eval.Infinity}, d)
		if s.OnDepth != nil {
			s.OnDepth(d, score)
		}
	}
	return s.BestMove()
}

// BestMove returns the move judged best by the most recent search, or nil
// if the root has no children (no legal moves, or no search has run yet).
// Children are left sorted best-first after alphabeta, so the answer is
// always root.Children[0].Move.
func (s *Searcher) BestMove() *chess.Move {
	if len(s.root.Children) == 0 {
		return nil
	}
	return s.root.Children[0].Move
}

// alphabeta implements the per-node semantics: expand the line's children
// on first visit, reorder them by their previous score, then recurse,
// tightening the window and breaking on a fail-soft cutoff.
func (s *Searcher) alphabeta(pos *chess.Position, line *Line, w window, depth int) eval.Score {
	white := pos.Turn() == chess.White

	if len(line.Children) == 0 {
		expand(pos, line, white)
	} else {
		reorder(line, white)
	}

	if len(line.Children) == 0 {
		if pos.InCheck() {
			if white {
				return -eval.Infinity
			}
			return eval.Infinity
		}
		return 0
	}

	for _, child := range line.Children {
		newPos := pos.Copy()
		newPos.ApplyMove(child.Move)

		if depth == 0 {
			child.Score = s.eval.Eval(newPos)
		} else {
			child.Score = s.alphabeta(newPos, child, w, depth-1)
		}

		if white {
			if child.Score > w.alpha {
				w.alpha = child.Score
			}
		} else {
			if child.Score < w.beta {
				w.beta = child.Score
			}
		}
		if w.beta <= w.alpha {
			break
		}
	}

	reorder(line, white)
	if white {
		return w.alpha
	}
	return w.beta
}

// expand populates line.Children with one Line per legal move at pos, each
// scored at the worst possible value for the side to move so that an
// untried child never looks better than a searched one before its turn
// comes.
func expand(pos *chess.Position, line *Line, white bool) {
	worst := eval.Infinity
	if white {
		worst = -eval.Infinity
	}
	for _, m := range pos.ValidMoves() {
		line.Children = append(line.Children, &Line{Move: m, Score: worst})
	}
}

// reorder sorts line's children by their previous score: descending for
// White to move, ascending for Black. This is the sole move-ordering
// mechanism, and is what makes iterative deepening cheaper than searching
// straight to the final depth.
func reorder(line *Line, white bool) {
	sort.SliceStable(line.Children, func(i, j int) bool {
		if white {
			return line.Children[i].Score > line.Children[j].Score
		}
		return line.Children[i].Score < line.Children[j].Score
	})
}
