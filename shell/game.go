package shell

import (
	"fmt"

	"github.com/svenoorjosan/scholar/common"
	"github.com/svenoorjosan/scholar/engine"
)

// Game is the session object a host drives: it owns the position, the
// engine with its cache, and the display-only bookkeeping (captured
// pieces, last move text). A Game is not safe for concurrent use;
// independent Games are.
type Game struct {
	pos       common.Position
	eng       *engine.Engine
	whiteCaps []int
	blackCaps []int
	lastMove  string
}

func NewGame(level int) *Game {
	return &Game{
		pos: common.InitialPosition(),
		eng: engine.NewEngine(level),
	}
}

// NewGameFromFEN starts a session from an arbitrary position.
func NewGameFromFEN(level int, fen string) (*Game, error) {
	var pos, err = common.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{
		pos: pos,
		eng: engine.NewEngine(level),
	}, nil
}

// SetLevel switches difficulty mid-game and clears the engine's cache.
func (g *Game) SetLevel(level int) {
	g.eng.SetLevel(level)
}

// LegalMoves returns every legal move as a 4-character "e2e4" string.
func (g *Game) LegalMoves() []string {
	var ml = g.pos.GenerateLegalMoves()
	var out = make([]string, len(ml))
	for i, m := range ml {
		out[i] = m.String()
	}
	return out
}

// PlayerMove applies s when it is exactly four characters and names a
// currently legal move. Otherwise it returns false and the position is
// unchanged.
func (g *Game) PlayerMove(s string) bool {
	if len(s) != 4 {
		return false
	}
	var from = common.ParseSquare(s[0:2])
	var to = common.ParseSquare(s[2:4])
	if from == common.SquareNone || to == common.SquareNone {
		return false
	}
	for _, m := range g.pos.GenerateLegalMoves() {
		if m.From() == from && m.To() == to {
			g.pos.MakeMove(m)
			if m.IsCapture() {
				g.whiteCaps = append(g.whiteCaps, m.CapturedPiece())
			}
			g.lastMove = fmt.Sprintf("You: %s-%s", s[0:2], s[2:4])
			return true
		}
	}
	return false
}

// AiMove picks and applies the engine's move and returns it as a
// 4-character string. The game must not be over: callers check
// IsCheckmate/IsStalemate first.
func (g *Game) AiMove() string {
	var m = g.eng.BestMove(&g.pos)
	g.pos.MakeMove(m)
	if m.IsCapture() {
		g.blackCaps = append(g.blackCaps, m.CapturedPiece())
	}
	var s = m.String()
	g.lastMove = "AI: " + s
	return s
}

// Board returns the 64-cell snapshot, square a8 first.
func (g *Game) Board() common.Board {
	return g.pos.Board
}

func (g *Game) Fen() string {
	return g.pos.String()
}

func (g *Game) InCheck() bool {
	return g.pos.IsInCheck(g.pos.WhiteMove)
}

func (g *Game) IsCheckmate() bool {
	if !g.InCheck() {
		return false
	}
	return len(g.pos.GenerateLegalMoves()) == 0
}

func (g *Game) IsStalemate() bool {
	if g.InCheck() {
		return false
	}
	return len(g.pos.GenerateLegalMoves()) == 0
}

// CapturedByWhite lists the pieces the player has taken, oldest first.
func (g *Game) CapturedByWhite() []int {
	return append([]int(nil), g.whiteCaps...)
}

// CapturedByBlack lists the pieces the engine has taken, oldest first.
func (g *Game) CapturedByBlack() []int {
	return append([]int(nil), g.blackCaps...)
}

// LastMove describes the most recent move for display ("You: e2-e4",
// "AI: e7e5").
func (g *Game) LastMove() string {
	return g.lastMove
}
