package common

import (
	"bytes"
	"fmt"
	s "strings"
	"unicode"
)

const pieceNames = "pnbrqk"

func parsePiece(ch rune) int {
	var side = unicode.IsUpper(ch)
	var i = s.IndexRune(pieceNames, unicode.ToLower(ch))
	if i < 0 {
		return Empty
	}
	return MakePiece(i+Pawn, side)
}

func pieceToChar(pieceType int, side bool) string {
	var result = string(pieceNames[pieceType-Pawn])
	if side {
		result = s.ToUpper(result)
	}
	return result
}

func InitialPosition() Position {
	var p, err = NewPositionFromFEN(InitialPositionFen)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPositionFromFEN reads the board and side-to-move fields. Castling,
// en passant and move counters are accepted but ignored: they are outside
// the modeled rule set.
func NewPositionFromFEN(fen string) (Position, error) {
	var tokens = s.Split(fen, " ")
	if len(tokens) < 2 {
		return Position{}, fmt.Errorf("parse fen failed %v", fen)
	}

	var p Position
	var i = 0
	for _, ch := range tokens[0] {
		if unicode.IsDigit(ch) {
			i += int(ch - '0')
		} else if unicode.IsLetter(ch) {
			if i >= 64 {
				return Position{}, fmt.Errorf("parse fen failed %v", fen)
			}
			p.Board[i] = int8(parsePiece(ch))
			i++
		}
	}
	if i != 64 {
		return Position{}, fmt.Errorf("parse fen failed %v", fen)
	}

	p.WhiteMove = tokens[1] == "w"
	return p, nil
}

func (p *Position) String() string {
	var sb bytes.Buffer

	var emptyCount = 0
	for sq := 0; sq < 64; sq++ {
		var piece = p.PieceOn(sq)
		if piece == Empty {
			emptyCount++
		} else {
			if emptyCount != 0 {
				fmt.Fprintf(&sb, "%d", emptyCount)
				emptyCount = 0
			}
			var pieceType, side = GetPieceTypeAndSide(piece)
			sb.WriteString(pieceToChar(pieceType, side))
		}
		if File(sq) == FileH {
			if emptyCount != 0 {
				fmt.Fprintf(&sb, "%d", emptyCount)
				emptyCount = 0
			}
			if sq != SquareH1 {
				sb.WriteString("/")
			}
		}
	}

	if p.WhiteMove {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}

func (p *Position) PieceOn(sq int) int {
	return int(p.Board[sq])
}

func (p *Position) GetPieceTypeAndSide(sq int) (pieceType int, side bool) {
	var piece = p.PieceOn(sq)
	if piece == Empty {
		return Empty, false
	}
	return GetPieceTypeAndSide(piece)
}

// MakeMove applies the move in place: moves the piece, applies the
// promotion with the mover's color, clears the source square and flips the
// side to move. The move itself is the undo record for UnmakeMove.
func (p *Position) MakeMove(m Move) {
	var piece = m.MovingPiece()
	if m.Promotion() != Empty {
		piece = MakePiece(m.Promotion(), PieceSide(piece))
	}
	p.Board[m.To()] = int8(piece)
	p.Board[m.From()] = int8(Empty)
	p.WhiteMove = !p.WhiteMove
}

// UnmakeMove exactly reverses a MakeMove of the same move: a promoted pawn
// reappears as a pawn and the captured piece returns to the destination.
func (p *Position) UnmakeMove(m Move) {
	p.WhiteMove = !p.WhiteMove
	p.Board[m.From()] = int8(m.MovingPiece())
	p.Board[m.To()] = int8(m.CapturedPiece())
}
