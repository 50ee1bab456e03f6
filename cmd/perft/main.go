// Command perft runs the move-generator correctness harness from the
// command line: a FEN and a depth in, a leaf-node count out. Grounded on
// internal/board/perft_test.go's perft function and
// hailam-chessplay/cmd/chessplay-uci's plain flag.Parse()-then-run
// structure.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/mpetrov/chesscore/internal/board"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN of the position to search from")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "print a per-root-move node count breakdown")
	flag.Parse()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN %q: %v", *fen, err)
	}

	start := time.Now()

	if *divide {
		total := int64(0)
		moves := pos.GenerateLegalMoves()
		for i := 0; i < moves.Len(); i++ {
			m := moves.Get(i)
			undo := pos.MakeMove(m)
			n := perft(pos, *depth-1)
			pos.UndoMove(m, undo)
			fmt.Printf("%s: %d\n", board.MoveToUCI(m), n)
			total += n
		}
		fmt.Printf("total: %d\n", total)
	} else {
		n := perft(pos, *depth)
		fmt.Printf("%d\n", n)
	}

	elapsed := time.Since(start)
	if elapsed > 0 {
		fmt.Printf("# %s\n", elapsed)
	}
}

func perft(p *board.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}
	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := p.MakeMove(m)
		nodes += perft(p, depth-1)
		p.UndoMove(m, undo)
	}
	return nodes
}
