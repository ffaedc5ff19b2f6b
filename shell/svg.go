package shell

import (
	"io"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"

	"github.com/svenoorjosan/scholar/common"
)

const (
	tileSize  = 80
	lightWood = "#f0d9b5"
	darkWood  = "#b58863"
)

// WriteBoardSVG renders the snapshot as an 8x8 wooden board with unicode
// piece glyphs, rank 8 at the top. Display only.
func WriteBoardSVG(w io.Writer, board common.Board) {
	var canvas = svg.New(w)
	canvas.Start(8*tileSize, 8*tileSize)
	for sq := 0; sq < 64; sq++ {
		var x = common.File(sq) * tileSize
		var y = common.Rank(sq) * tileSize
		var fill = lightWood
		if isDarkSquare(sq) {
			fill = darkWood
		}
		canvas.Rect(x, y, tileSize, tileSize, "fill:"+fill)
		if board[sq] != 0 {
			canvas.Text(x+tileSize/2, y+tileSize-16, pieceSymbol(int(board[sq])),
				"font-size:56px;text-anchor:middle")
		}
	}
	canvas.End()
}

func SaveBoardSVG(path string, board common.Board) error {
	var f, err = os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save board svg")
	}
	defer f.Close()
	WriteBoardSVG(f, board)
	return nil
}
