package common

var (
	knightOffsets    = [8]int{-17, -15, -10, -6, 6, 10, 15, 17}
	kingOffsets      = [8]int{-9, -8, -7, -1, 1, 7, 8, 9}
	bishopDirections = [4]int{-9, -7, 7, 9}
	rookDirections   = [4]int{-8, -1, 1, 8}
)

// IsAttacked reports whether any piece of bySide attacks the target
// square. Sliding rays stop at the first occupied square whichever side it
// belongs to. Offset probes compare file deltas to reject wraparound
// across the board edge.
func (p *Position) IsAttacked(target int, bySide bool) bool {
	// Pawns sit one rank behind the square they attack, a file away.
	var dir = 8
	if !bySide {
		dir = -8
	}
	for _, dx := range [2]int{-1, 1} {
		var sq = target + dir + dx
		if IsOnBoard(sq) && FileDistance(sq, target) == 1 &&
			p.PieceOn(sq) == MakePiece(Pawn, bySide) {
			return true
		}
	}

	for _, d := range knightOffsets {
		var sq = target + d
		if !IsOnBoard(sq) || FileDistance(target, sq) > 2 {
			continue
		}
		if p.PieceOn(sq) == MakePiece(Knight, bySide) {
			return true
		}
	}

	for _, d := range bishopDirections {
		for sq := target + d; IsOnBoard(sq) && FileDistance(sq-d, sq) == 1; sq += d {
			var piece = p.PieceOn(sq)
			if piece == Empty {
				continue
			}
			if piece == MakePiece(Bishop, bySide) || piece == MakePiece(Queen, bySide) {
				return true
			}
			break
		}
	}

	for _, d := range rookDirections {
		for sq := target + d; IsOnBoard(sq) && !((d == -1 || d == 1) && Rank(sq-d) != Rank(sq)); sq += d {
			var piece = p.PieceOn(sq)
			if piece == Empty {
				continue
			}
			if piece == MakePiece(Rook, bySide) || piece == MakePiece(Queen, bySide) {
				return true
			}
			break
		}
	}

	for _, d := range kingOffsets {
		var sq = target + d
		if IsOnBoard(sq) && FileDistance(target, sq) <= 1 &&
			p.PieceOn(sq) == MakePiece(King, bySide) {
			return true
		}
	}

	return false
}

// KingSquare returns SquareNone when the king is absent. Positions without
// a king per side are outside the data-model invariant and check queries
// against them answer false instead of failing.
func (p *Position) KingSquare(side bool) int {
	var king = int8(MakePiece(King, side))
	for sq := 0; sq < 64; sq++ {
		if p.Board[sq] == king {
			return sq
		}
	}
	return SquareNone
}

func (p *Position) IsInCheck(side bool) bool {
	var kingSq = p.KingSquare(side)
	if kingSq == SquareNone {
		return false
	}
	return p.IsAttacked(kingSq, !side)
}
