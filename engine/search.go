package engine

import (
	. "github.com/svenoorjosan/scholar/common"
)

const (
	valueInfinity = 1000000000
	valueMate     = 100000
)

// alphaBeta is a plain recursive negamax with alpha-beta pruning. It
// mutates and restores p around every probe and consults the result cache
// before anything else; a hit skips generation and recursion entirely.
//
// Terminal nodes with no legal moves score -valueMate+depth when in check,
// so a mate reached with more remaining depth (fewer plies from the root)
// negates to a larger win for the side delivering it, and 0 for stalemate.
// On a beta cutoff the cached value is beta, a bound rather than the true
// score.
func (e *Engine) alphaBeta(p *Position, depth, alpha, beta int) int {
	var key = makeCacheKey(p, depth)
	if score, ok := e.cache.Read(key, depth); ok {
		return score
	}

	if depth == 0 {
		return Evaluate(p)
	}

	var ml = p.GenerateLegalMoves()
	if len(ml) == 0 {
		var score = 0
		if p.IsInCheck(p.WhiteMove) {
			score = -valueMate + depth
		}
		e.cache.Update(key, depth, score)
		return score
	}

	orderMoves(ml)

	var bestScore = -valueInfinity
	for _, move := range ml {
		p.MakeMove(move)
		var score = -e.alphaBeta(p, depth-1, -beta, -alpha)
		p.UnmakeMove(move)

		if score >= beta {
			e.cache.Update(key, depth, beta)
			return beta
		}
		if score > bestScore {
			bestScore = score
		}
		if score > alpha {
			alpha = score
		}
	}

	e.cache.Update(key, depth, bestScore)
	return bestScore
}

// Search runs a full-window search to the given depth and returns the
// score from the side to move's perspective.
func (e *Engine) Search(p *Position, depth int) int {
	return e.alphaBeta(p, depth, -valueInfinity, valueInfinity)
}
