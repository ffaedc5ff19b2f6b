package engine

import (
	"math/rand"
	"testing"

	. "github.com/svenoorjosan/scholar/common"
)

// White mates with Qh7; the mated node scores -valueMate+remaining depth.
// At depth 2 the mate lands on the last ply and negates to valueMate-1.
// At depth 4 the encoding favors delivering the mate as late as possible
// (a mated node with less remaining depth scores higher once negated), so
// the search defers it and still returns valueMate-1.
func TestMateScore(t *testing.T) {
	var p, err = NewPositionFromFEN("7k/8/6K1/8/8/8/8/7Q w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	var e = NewEngine(LevelMedium)
	if got := e.Search(&p, 2); got != valueMate-1 {
		t.Error("depth 2 mate score", got)
	}

	var e2 = NewEngine(LevelMedium)
	var deep = e2.Search(&p, 4)
	if deep != valueMate-1 {
		t.Error("depth 4 mate score", deep)
	}

	// Any mate outranks any material-only score.
	const maxMaterial = 8*QueenValue + 2*RookValue + 2*BishopValue + 2*KnightValue
	if deep <= maxMaterial {
		t.Error("mate score does not dominate material:", deep)
	}
}

// A mate found with less remaining depth outranks one found with more,
// once negated up the tree.
func TestMateDistanceOrdering(t *testing.T) {
	var mateAtDepth1 = -valueMate + 1
	var mateAtDepth3 = -valueMate + 3
	if !(-mateAtDepth1 > -mateAtDepth3) {
		t.Error("shallower mate does not outrank deeper mate")
	}
}

// White wins a queen with Rxa8; every reply leaves white a rook up.
// Hand negamax: leaf eval after Rxa8 Kg7/Kh7 is +500 for white, all
// alternatives let black keep (or win) material.
func TestForcedCaptureDepth2(t *testing.T) {
	var p, err = NewPositionFromFEN("q6k/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var e = NewEngine(LevelMedium)
	if got := e.Search(&p, 2); got != RookValue {
		t.Error("depth 2 score", got, "want", RookValue)
	}
}

func TestStalemateScoresZero(t *testing.T) {
	var p, err = NewPositionFromFEN("k7/8/1QK5/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var e = NewEngine(LevelMedium)
	for _, depth := range []int{1, 3} {
		if got := e.Search(&p, depth); got != 0 {
			t.Error("stalemate scored", got, "at depth", depth)
		}
	}
}

func TestSearchRestoresPosition(t *testing.T) {
	var p = InitialPosition()
	var before = p
	var e = NewEngine(LevelMedium)
	e.Search(&p, 3)
	if p != before {
		t.Error("search corrupted the position")
	}
}

func TestMoveOrdering(t *testing.T) {
	// Pawn takes queen must sort before rook takes pawn, quiets last.
	var p, err = NewPositionFromFEN("4k3/8/8/3q4/4P3/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var ml = p.GenerateLegalMoves()
	orderMoves(ml)
	if ml[0].String() != "e4d5" {
		t.Error("first ordered move", ml[0].String())
	}
	if ml[0].CapturedPiece() == Empty {
		t.Error("capture not ordered first")
	}
	for i := 1; i < len(ml); i++ {
		if captureScore(ml[i]) > captureScore(ml[i-1]) {
			t.Error("ordering not descending at", i)
		}
	}

	// Stable sort: equal-key quiet moves keep their generation order.
	var generated = p.GenerateLegalMoves()
	var wantQuiets []Move
	for _, m := range generated {
		if !m.IsCapture() {
			wantQuiets = append(wantQuiets, m)
		}
	}
	var gotQuiets []Move
	for _, m := range ml {
		if !m.IsCapture() {
			gotQuiets = append(gotQuiets, m)
		}
	}
	if len(gotQuiets) != len(wantQuiets) {
		t.Fatal("quiet move count changed", len(gotQuiets), len(wantQuiets))
	}
	for i := range wantQuiets {
		if gotQuiets[i] != wantQuiets[i] {
			t.Error("quiet order disturbed at", i, gotQuiets[i].String(), wantQuiets[i].String())
		}
	}
}

// With blunder probability 1 the selector returns the first move in
// MVV-LVA order and never reaches the searcher.
func TestBlunderAlwaysReturnsFirstMove(t *testing.T) {
	var e = &Engine{
		depth:       2,
		blunderProb: 1.0,
		cache:       NewCache(),
		rng:         rand.New(rand.NewSource(1)),
	}
	var p = InitialPosition()
	var ml = p.GenerateLegalMoves()
	orderMoves(ml)

	for i := 0; i < 10; i++ {
		if got := e.BestMove(&p); got != ml[0] {
			t.Fatal("blunder move", got.String(), "want", ml[0].String())
		}
	}
	if e.cache.Len() != 0 {
		t.Error("searcher ran despite certain blunder")
	}
}

func TestBestMoveFindsMate(t *testing.T) {
	// Back-rank mate: Ra8 is the only mating move, the black pawns box
	// their own king in. At depth 2 only the mate in one reaches the
	// mate score; deeper searches may defer the mate per the depth
	// encoding.
	var p, err = NewPositionFromFEN("7k/6pp/8/8/8/8/8/R6K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var e = NewEngine(LevelEasy)
	e.blunderProb = 0
	var m = e.BestMove(&p)
	if m.String() != "a1a8" {
		t.Error("best move", m.String())
	}
}

func TestDecidedPositionSearchesDeeper(t *testing.T) {
	// More than a queen and rook up trips the root depth extension.
	var p, err = NewPositionFromFEN("7k/8/6K1/8/8/8/8/5RRQ w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if abs(Evaluate(&p)) <= decidedMargin {
		t.Fatal("test position not decided enough")
	}
	var e = NewEngine(LevelEasy)
	e.blunderProb = 0
	e.BestMove(&p)
	// depth 2 + 2 extension: the deepest cached entries sit at depth 3.
	var found = false
	for key := range e.cache.items {
		if key.depth == 3 {
			found = true
			break
		}
	}
	if !found {
		t.Error("root extension did not deepen the search")
	}
}
