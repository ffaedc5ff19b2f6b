package shell

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Console is a minimal interactive front end: the human plays white from
// stdin, the engine answers as black.
type Console struct {
	game  *Game
	level int
}

func NewConsole(level int) *Console {
	return &Console{game: NewGame(level), level: level}
}

func (c *Console) Run() {
	fmt.Println("scholar chess. Moves as e2e4; 'help' lists commands.")
	PrintBoard(c.game.Board())
	var scanner = bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "quit" {
			return
		}
		if err := c.handle(line); err != nil {
			fmt.Println("error:", err)
		}
		if c.gameOver() {
			return
		}
	}
}

func (c *Console) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	switch commandName {
	case "help":
		fmt.Println("new [1|2|3]  start a new game at the given level")
		fmt.Println("level 1|2|3  change difficulty")
		fmt.Println("position FEN set up a position")
		fmt.Println("moves        list legal moves")
		fmt.Println("fen          print the position")
		fmt.Println("svg FILE     save the board as an SVG image")
		fmt.Println("quit         leave")
		return nil
	case "new":
		if len(fields) > 0 {
			var lvl, err = strconv.Atoi(fields[0])
			if err != nil {
				return errors.Wrap(err, "new")
			}
			c.level = lvl
		}
		c.game = NewGame(c.level)
		PrintBoard(c.game.Board())
		return nil
	case "level":
		if len(fields) == 0 {
			return errors.New("level needs an argument")
		}
		var lvl, err = strconv.Atoi(fields[0])
		if err != nil {
			return errors.Wrap(err, "level")
		}
		c.level = lvl
		c.game.SetLevel(lvl)
		return nil
	case "position":
		if len(fields) == 0 {
			return errors.New("position needs a fen")
		}
		var game, err = NewGameFromFEN(c.level, strings.Join(fields, " "))
		if err != nil {
			return errors.Wrap(err, "position")
		}
		c.game = game
		PrintBoard(c.game.Board())
		return nil
	case "moves":
		fmt.Println(strings.Join(c.game.LegalMoves(), " "))
		return nil
	case "fen":
		fmt.Println(c.game.Fen())
		return nil
	case "svg":
		if len(fields) == 0 {
			return errors.New("svg needs a file name")
		}
		return SaveBoardSVG(fields[0], c.game.Board())
	}

	return c.playMove(commandName)
}

func (c *Console) playMove(s string) error {
	if !c.game.PlayerMove(s) {
		return errors.Errorf("illegal move %q", s)
	}
	if c.isOver() {
		PrintBoard(c.game.Board())
		return nil
	}
	c.game.AiMove()
	PrintBoard(c.game.Board())
	fmt.Println(c.game.LastMove())
	if !c.isOver() && c.game.InCheck() {
		fmt.Println("check")
	}
	return nil
}

func (c *Console) isOver() bool {
	return c.game.IsCheckmate() || c.game.IsStalemate()
}

func (c *Console) gameOver() bool {
	if c.game.IsCheckmate() {
		fmt.Println("checkmate")
		return true
	}
	if c.game.IsStalemate() {
		fmt.Println("stalemate")
		return true
	}
	return false
}
