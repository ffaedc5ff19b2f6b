package shell

import (
	"fmt"
	"strconv"

	"github.com/svenoorjosan/scholar/common"
)

const (
	whiteKing   = "♔"
	whiteQueen  = "♕"
	whiteRook   = "♖"
	whiteBishop = "♗"
	whiteKnight = "♘"
	whitePawn   = "♙"
	blackKing   = "♚"
	blackQueen  = "♛"
	blackRook   = "♜"
	blackBishop = "♝"
	blackKnight = "♞"
	blackPawn   = "♟"
)

const (
	fgBlack = iota + 30
)

// Background text colors
const (
	bgBlack = iota + 40
	bgRed
	bgGreen
	bgYellow
	bgBlue
	bgMagenta
	bgCyan
	bgWhite
)

// Background Hi-Intensity text colors
const (
	bgHiBlack = iota + 100
	bgHiRed
	bgHiGreen
	bgHiYellow
	bgHiBlue
	bgHiMagenta
	bgHiCyan
	bgHiWhite
)

var chessSymbols = [2][7]string{
	{" ", whitePawn, whiteKnight, whiteBishop, whiteRook, whiteQueen, whiteKing},
	{" ", blackPawn, blackKnight, blackBishop, blackRook, blackQueen, blackKing},
}

// PrintBoard writes the position rank 8 first, white pieces on top of
// light/dark ANSI backgrounds.
func PrintBoard(board common.Board) {
	for sq := 0; sq < 64; sq++ {
		var pieceType, side = common.GetPieceTypeAndSide(int(board[sq]))
		fmt.Print(squareString(pieceType, side, isDarkSquare(sq)))
		if common.File(sq) == common.FileH {
			fmt.Printf(" %d\n", 8-common.Rank(sq))
		}
	}
	fmt.Println("a b c d e f g h")
}

func isDarkSquare(sq int) bool {
	return (common.File(sq)+common.Rank(sq))%2 == 1
}

func pieceSymbol(piece int) string {
	var pieceType, side = common.GetPieceTypeAndSide(piece)
	if side {
		return chessSymbols[0][pieceType]
	}
	return chessSymbols[1][pieceType]
}

func squareString(pieceType int, side, darkSquare bool) string {
	var s string
	if side {
		s = chessSymbols[0][pieceType]
	} else {
		s = chessSymbols[1][pieceType]
	}
	s += " "
	const fgColor = fgBlack
	var bgColor int
	if darkSquare {
		bgColor = bgWhite
	} else {
		bgColor = bgHiWhite
	}
	const escape = "\x1b"
	const reset = 0
	return fmt.Sprintf("%s[%s;%sm%s%s[%dm",
		escape, strconv.Itoa(fgColor), strconv.Itoa(bgColor), s, escape, reset)
}
