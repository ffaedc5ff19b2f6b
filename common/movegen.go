package common

// addMove records from→to, reading the captured piece off the board.
// Moves onto the enemy king are dropped at construction: legality
// filtering must never see a position with a king already gone.
func addMove(ml []Move, count int, p *Position, from, to int) int {
	var captured = p.PieceOn(to)
	if captured != Empty && PieceType(captured) == King {
		return count
	}
	ml[count] = makeMove(from, to, p.PieceOn(from), captured)
	return count + 1
}

func addPawnMove(ml []Move, count int, p *Position, from, to int) int {
	var captured = p.PieceOn(to)
	if captured != Empty && PieceType(captured) == King {
		return count
	}
	var promotion = Empty
	if Rank(to) == 0 || Rank(to) == 7 {
		promotion = Queen
	}
	ml[count] = makePawnMove(from, to, p.PieceOn(from), captured, promotion)
	return count + 1
}

// GenerateMoves fills ml with the pseudo-legal moves for the side to move,
// in square-scan order, and returns the filled prefix.
func GenerateMoves(ml []Move, p *Position) []Move {
	var count = 0

	for from := 0; from < 64; from++ {
		var piece = p.PieceOn(from)
		if piece == Empty || PieceSide(piece) != p.WhiteMove {
			continue
		}

		switch PieceType(piece) {
		case Pawn:
			var dir = 8
			if p.WhiteMove {
				dir = -8
			}
			var to = from + dir
			if IsOnBoard(to) && p.PieceOn(to) == Empty {
				count = addPawnMove(ml, count, p, from, to)
				var dbl = from + 2*dir
				if ((p.WhiteMove && Rank(from) == 6) || (!p.WhiteMove && Rank(from) == 1)) &&
					IsOnBoard(dbl) && p.PieceOn(dbl) == Empty {
					count = addMove(ml, count, p, from, dbl)
				}
			}
			for _, dx := range [2]int{-1, 1} {
				var capSq = from + dir + dx
				if IsOnBoard(capSq) && FileDistance(capSq, from) == 1 {
					var target = p.PieceOn(capSq)
					if target != Empty && PieceSide(target) != p.WhiteMove {
						count = addPawnMove(ml, count, p, from, capSq)
					}
				}
			}

		case Knight:
			for _, d := range knightOffsets {
				var to = from + d
				if !IsOnBoard(to) || FileDistance(from, to) > 2 {
					continue
				}
				var target = p.PieceOn(to)
				if target == Empty || PieceSide(target) != p.WhiteMove {
					count = addMove(ml, count, p, from, to)
				}
			}

		case King:
			for _, d := range kingOffsets {
				var to = from + d
				if !IsOnBoard(to) || FileDistance(from, to) > 1 {
					continue
				}
				var target = p.PieceOn(to)
				if target == Empty || PieceSide(target) != p.WhiteMove {
					count = addMove(ml, count, p, from, to)
				}
			}

		case Bishop, Rook, Queen:
			if PieceType(piece) != Rook {
				count = generateSliding(ml, count, p, from, bishopDirections)
			}
			if PieceType(piece) != Bishop {
				count = generateSliding(ml, count, p, from, rookDirections)
			}
		}
	}

	return ml[:count]
}

// generateSliding walks each ray until the board edge, an own piece (stop)
// or an enemy piece (capture, then stop).
func generateSliding(ml []Move, count int, p *Position, from int, directions [4]int) int {
	for _, d := range directions {
		var to = from
		for {
			var prev = to
			to += d
			if !IsOnBoard(to) || !adjacentOnRay(prev, to, d) {
				break
			}
			var target = p.PieceOn(to)
			if target == Empty {
				count = addMove(ml, count, p, from, to)
				continue
			}
			if PieceSide(target) != p.WhiteMove {
				count = addMove(ml, count, p, from, to)
			}
			break
		}
	}
	return count
}

func adjacentOnRay(prev, next, d int) bool {
	if d == -1 || d == 1 {
		return Rank(prev) == Rank(next)
	}
	if d == -8 || d == 8 {
		return true
	}
	return FileDistance(prev, next) == 1
}

// GenerateLegalMoves keeps the pseudo-legal moves that do not leave the
// mover's own king attacked. It probes each move on p itself and restores
// it exactly, so it needs exclusive access to the position.
func (p *Position) GenerateLegalMoves() []Move {
	var buffer [MaxMoves]Move
	var ml = GenerateMoves(buffer[:], p)
	var legal = make([]Move, 0, len(ml))
	var us = p.WhiteMove
	for _, m := range ml {
		p.MakeMove(m)
		if !p.IsInCheck(us) {
			legal = append(legal, m)
		}
		p.UnmakeMove(m)
	}
	return legal
}
