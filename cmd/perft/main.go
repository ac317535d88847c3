package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/dylhunn/dragontoothmg"

	"chesscore/chess"
)

func main() {
	fen := flag.String("fen", chess.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	sp960 := flag.Int("chess960", -1, "Run from the numbered Chess960 starting position instead of -fen")
	verify := flag.Bool("verify", false, "Cross-check the node count against dragontoothmg")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))

	if *depth <= 0 {
		log.Fatal("-depth must be > 0")
	}

	var board *chess.Board
	var err error
	if *sp960 >= 0 {
		board, err = chess.Chess960Start(*sp960)
	} else {
		board, err = chess.ParseFEN(*fen)
	}
	if err != nil {
		log.WithError(err).Fatal("bad position")
	}

	if *divide {
		entries, total := board.PerftDivide(*depth)
		for _, e := range entries {
			fmt.Printf("%s: %d\n", e.Move, e.Nodes)
		}
		fmt.Printf("Total: %d\n", total)
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.WithError(err).Fatal("creating cpuprofile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.WithError(err).Fatal("start cpu profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += board.Perft(*depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *verify {
		if board.IsChess960() {
			log.Warn("skipping verification, reference generator has no Chess960 support")
		} else {
			ref := dragontoothmg.ParseFen(board.FENWithCounters())
			want := uint64(dragontoothmg.Perft(&ref, *depth)) * uint64(*repeat)
			if totalNodes != want {
				log.WithFields(log.Fields{
					"got":  totalNodes,
					"want": want,
				}).Fatal("node count differs from dragontoothmg")
			}
			log.WithField("nodes", totalNodes).Info("verified against dragontoothmg")
		}
	}

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			log.WithError(err).Fatal("creating memprofile")
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.WithError(err).Fatal("write heap profile")
		}
		_ = f.Close()
	}
}
