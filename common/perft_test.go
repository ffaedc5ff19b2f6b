package common

import (
	"testing"
)

// Standard perft counts apply up to depth 4 from the initial position:
// castling, en passant and promotions cannot occur that early, so the
// modeled rule subset generates exactly the standard move sets.
func TestPerft(t *testing.T) {
	var tests = []struct {
		fen   string
		depth int
		nodes int
	}{
		{
			fen:   InitialPositionFen,
			depth: 1,
			nodes: 20,
		},
		{
			fen:   InitialPositionFen,
			depth: 2,
			nodes: 400,
		},
		{
			fen:   InitialPositionFen,
			depth: 3,
			nodes: 8902,
		},
		{
			fen:   InitialPositionFen,
			depth: 4,
			nodes: 197281,
		},
	}
	for i, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		var nodes = Perft(&p, test.depth)
		if nodes != test.nodes {
			t.Error(i, test, nodes)
		}
	}
}

func Perft(p *Position, depth int) int {
	if depth == 0 {
		return 1
	}
	var result = 0
	for _, move := range p.GenerateLegalMoves() {
		p.MakeMove(move)
		result += Perft(p, depth-1)
		p.UnmakeMove(move)
	}
	return result
}
