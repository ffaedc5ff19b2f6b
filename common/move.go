package common

// Move packs from, to, the moving piece, the piece captured at the
// destination at generation time and an optional promotion piece type.
// The captured field is all UnmakeMove needs to restore material.
type Move int32

const MoveEmpty = Move(0)

func makeMove(from, to, movingPiece, capturedPiece int) Move {
	return Move(from ^ (to << 6) ^ (movingPiece << 12) ^ (capturedPiece << 16))
}

func makePawnMove(from, to, movingPiece, capturedPiece, promotion int) Move {
	return Move(from ^ (to << 6) ^ (movingPiece << 12) ^ (capturedPiece << 16) ^ (promotion << 20))
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) MovingPiece() int {
	return int((m >> 12) & 15)
}

func (m Move) CapturedPiece() int {
	return int((m >> 16) & 15)
}

func (m Move) Promotion() int {
	return int((m >> 20) & 7)
}

func (m Move) IsCapture() bool {
	return m.CapturedPiece() != Empty
}

// String returns the 4-character long algebraic form ("e2e4"). Promotions
// carry no suffix: the generator only ever promotes to a queen.
func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	return SquareName(m.From()) + SquareName(m.To())
}
