package main

import (
	"context"
	"flag"
	"log"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/svenoorjosan/scholar/common"
	"github.com/svenoorjosan/scholar/engine"
)

// Two engines at fixed difficulty levels play a batch of games against
// each other. Games run concurrently; every game owns its position and
// both of its engines, so no state is shared between goroutines.

type gameResult struct {
	winner string
	plies  int
}

func main() {
	var whiteLevel = flag.Int("white", engine.LevelMedium, "difficulty of the white engine (1-3)")
	var blackLevel = flag.Int("black", engine.LevelEasy, "difficulty of the black engine (1-3)")
	var games = flag.Int("games", 10, "number of games to play")
	var concurrency = flag.Int("concurrency", runtime.NumCPU(), "games played in parallel")
	flag.Parse()

	if err := run(context.Background(), *whiteLevel, *blackLevel, *games, *concurrency); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, whiteLevel, blackLevel, games, concurrency int) error {
	log.Println("arena started")
	defer log.Println("arena finished")
	log.Println("white level", whiteLevel, "black level", blackLevel,
		"games", games, "concurrency", concurrency)

	var g, groupCtx = errgroup.WithContext(ctx)
	var gameIndexes = make(chan int)
	var gameResults = make(chan gameResult)

	g.Go(func() error {
		defer close(gameIndexes)
		for i := 0; i < games; i++ {
			select {
			case gameIndexes <- i:
			case <-groupCtx.Done():
				return groupCtx.Err()
			}
		}
		return nil
	})

	g.Go(func() error {
		return showResults(groupCtx, gameResults)
	})

	var wg = &sync.WaitGroup{}
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for index := range gameIndexes {
				var result = playGame(whiteLevel, blackLevel)
				log.Println("game", index, "winner", result.winner, "plies", result.plies)
				select {
				case gameResults <- result:
				case <-groupCtx.Done():
					return groupCtx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(gameResults)
	}()

	return g.Wait()
}

func showResults(ctx context.Context, gameResults <-chan gameResult) error {
	var white, black, draws int
	for {
		select {
		case result, ok := <-gameResults:
			if !ok {
				log.Println("score: white", white, "black", black, "draws", draws)
				return nil
			}
			switch result.winner {
			case "white":
				white++
			case "black":
				black++
			default:
				draws++
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// playGame runs one game to mate, stalemate or the ply cap. The modeled
// rule set has no repetition or fifty-move draws, so the cap is what keeps
// shuffling endgames finite.
func playGame(whiteLevel, blackLevel int) gameResult {
	const maxPlies = 200

	var pos = common.InitialPosition()
	var white = engine.NewEngine(whiteLevel)
	var black = engine.NewEngine(blackLevel)

	for ply := 0; ply < maxPlies; ply++ {
		if len(pos.GenerateLegalMoves()) == 0 {
			if pos.IsInCheck(pos.WhiteMove) {
				if pos.WhiteMove {
					return gameResult{winner: "black", plies: ply}
				}
				return gameResult{winner: "white", plies: ply}
			}
			return gameResult{winner: "draw", plies: ply}
		}
		var eng = white
		if !pos.WhiteMove {
			eng = black
		}
		pos.MakeMove(eng.BestMove(&pos))
	}
	return gameResult{winner: "draw", plies: maxPlies}
}
