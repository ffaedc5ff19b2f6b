package engine

import (
	"math/rand"
	"time"

	. "github.com/svenoorjosan/scholar/common"
)

const (
	LevelEasy = iota + 1
	LevelMedium
	LevelHard
)

// decidedMargin is roughly a queen plus rook of material. Beyond it the
// root search gets two extra plies: the game is effectively decided and
// deeper search converts faster.
const decidedMargin = 1500

// Engine picks moves with a depth-limited negamax search. Each Engine
// owns its result cache and random source; the engine is synchronous and
// single-threaded, and concurrent use of one Engine or of its Position is
// not allowed. Independent Engine/Position pairs may run in parallel.
type Engine struct {
	depth       int
	blunderProb float64
	cache       *Cache
	rng         *rand.Rand
}

// NewEngine maps a difficulty level onto a (search depth, blunder
// probability) pair. Easy plays shallow and throws games on purpose about
// a third of the time.
func NewEngine(level int) *Engine {
	var e = &Engine{
		cache: NewCache(),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	e.SetLevel(level)
	return e
}

// SetLevel reconfigures the difficulty and drops every cached result:
// entries computed for another depth profile would otherwise outlive it.
func (e *Engine) SetLevel(level int) {
	switch level {
	case LevelEasy:
		e.depth = 2
		e.blunderProb = 0.35
	case LevelMedium:
		e.depth = 4
		e.blunderProb = 0.0
	default:
		e.depth = 6
		e.blunderProb = 0.0
	}
	e.cache.Clear()
}

func (e *Engine) Depth() int {
	return e.depth
}

// BestMove searches the root moves in MVV-LVA order and returns the one
// with the highest negated score. With a positive blunder probability each
// root move may be returned outright before being searched.
//
// The position must have at least one legal move: callers check for
// checkmate and stalemate first.
func (e *Engine) BestMove(p *Position) Move {
	var ml = p.GenerateLegalMoves()
	orderMoves(ml)

	var depth = e.depth
	if abs(Evaluate(p)) > decidedMargin {
		depth += 2
	}

	var best = ml[0]
	var bestScore = -valueInfinity
	for _, move := range ml {
		if e.blunderProb > 0 && e.rng.Float64() < e.blunderProb {
			return move
		}
		p.MakeMove(move)
		var score = -e.alphaBeta(p, depth-1, -valueInfinity, valueInfinity)
		p.UnmakeMove(move)
		if score > bestScore {
			bestScore = score
			best = move
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
