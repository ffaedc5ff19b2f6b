package engine

import (
	. "github.com/svenoorjosan/scholar/common"
)

const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 20000
)

var pieceValues = [King + 1]int{
	Pawn:   PawnValue,
	Knight: KnightValue,
	Bishop: BishopValue,
	Rook:   RookValue,
	Queen:  QueenValue,
	King:   KingValue,
}

func pieceValue(piece int) int {
	if piece == Empty {
		return 0
	}
	return pieceValues[PieceType(piece)]
}

// Evaluate returns the material balance from the perspective of the side
// to move (negamax convention). Board contents only, no positional terms.
func Evaluate(p *Position) int {
	var sum = 0
	for sq := 0; sq < 64; sq++ {
		var piece = p.PieceOn(sq)
		if piece == Empty {
			continue
		}
		if PieceSide(piece) {
			sum += pieceValues[PieceType(piece)]
		} else {
			sum -= pieceValues[PieceType(piece)]
		}
	}
	if !p.WhiteMove {
		sum = -sum
	}
	return sum
}
