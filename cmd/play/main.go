// Command play searches one position and prints the chosen move, rather
// than running a UCI protocol loop (spec.md §1 excludes a UCI server; only
// the move codec is in scope). Grounded on hailam-chessplay/cmd/
// chessplay-uci's engine-construction sequence, with the stdin/stdout UCI
// loop itself removed in favor of a single flag-driven search.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/mpetrov/chesscore/internal/board"
	"github.com/mpetrov/chesscore/internal/book"
	"github.com/mpetrov/chesscore/internal/engine"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN of the position to search")
	depth := flag.Int("min-depth", 1, "iterative-deepening starting depth")
	budget := flag.Duration("time", 2*time.Second, "search time budget")
	ttSizeMB := flag.Int("hash", 64, "transposition table size in MB")
	bookPath := flag.String("book", "", "optional opening book file (one line per game, space-separated SAN moves)")
	flag.Parse()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN %q: %v", *fen, err)
	}

	eng := engine.NewEngine(*ttSizeMB)
	eng.SetMinDepth(*depth)

	if *bookPath != "" {
		opener, err := book.Load(*bookPath)
		if err != nil {
			log.Fatalf("loading book %q: %v", *bookPath, err)
		}
		eng.SetBook(opener)
	}

	start := time.Now()
	move, ok := eng.Search(pos, *budget)
	elapsed := time.Since(start)

	if !ok {
		if pos.IsCheckmate() {
			fmt.Println("checkmate")
		} else if pos.IsStalemate() {
			fmt.Println("stalemate")
		} else {
			fmt.Println("no move found")
		}
		return
	}

	fmt.Printf("bestmove %s\n", board.MoveToUCI(move))
	fmt.Printf("# nodes=%d time=%s\n", eng.Nodes(), elapsed)
}
