package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

var log = logrus.New()

var (
	difficulty int
	seed       uint64
	count      int
)

func init() {
	const (
		defaultDifficulty = 70
		usage             = "percentage chance for each cell of a solved grid to be blanked"
	)
	flag.IntVar(&difficulty, "difficulty", defaultDifficulty, usage)
	flag.IntVar(&difficulty, "d", defaultDifficulty, usage+" (shorthand)")
	flag.Uint64Var(&seed, "seed", 0, "rng seed, 0 picks a random one")
	flag.IntVar(&count, "n", 0, "number of puzzles to generate, 0 loops forever")
}

func createRand() *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	flag.Parse()

	if difficulty < 0 || difficulty > 100 {
		log.Fatalf("difficulty must be in [0,100], got %d", difficulty)
	}

	rnd := createRand()

	for generated := 0; count == 0 || generated < count; generated++ {
		puzzle, err := sudoku.Generate(difficulty, rnd)
		if err != nil {
			fmt.Printf("Error generating sudoku: %v\n", err)
			return
		}
		fmt.Printf("New sudoku:\n%s\n", puzzle)

		solver := sudoku.NewSolver(puzzle, rnd)
		if err := solver.Solve(); err != nil {
			fmt.Printf("Error solving sudoku: %v\n", err)
			break
		}
		fmt.Printf("Solution:\n%s\n", solver.Grid())
	}
}
