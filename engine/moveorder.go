package engine

import (
	"golang.org/x/exp/slices"

	. "github.com/svenoorjosan/scholar/common"
)

// captureScore is the MVV-LVA key: victim value minus attacker value for
// captures, neutral zero for quiet moves.
func captureScore(m Move) int {
	if !m.IsCapture() {
		return 0
	}
	return pieceValue(m.CapturedPiece()) - pieceValue(m.MovingPiece())
}

// orderMoves sorts captures first by descending MVV-LVA key. The sort is
// stable, so moves with equal keys keep their generation order.
func orderMoves(ml []Move) {
	slices.SortStableFunc(ml, func(m1, m2 Move) bool {
		return captureScore(m1) > captureScore(m2)
	})
}
