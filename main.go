package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"rps/engine"
	"rps/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	rounds  = flag.Int("rounds", 0, "Hard limit on rounds played (0 = unlimited)")
	seed    = flag.Uint64("seed", 0, "RNG seed for a reproducible session (0 = time-based)")
	bluff   = flag.Float64("bluff", engine.DefaultBluffRate, "Chance of playing a random move instead of the counter")
	verbose = flag.Bool("verbose", false, "Log per-session diagnostics")
)

func main() {
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	e := engine.New(
		engine.WithMaxRounds(*rounds),
		engine.WithSeed(*seed),
		engine.WithBluffRate(*bluff),
	)

	fmt.Println("Rock, Paper, Scissors! Use R, P, or S. Use E to end the game.")
	score := e.Run(newConsoleOpponent(os.Stdin, os.Stdout))
	fmt.Printf("Played %d rounds. AI won %.1f%%.\n", score.Rounds, score.Ratio()*100)
}

// consoleOpponent reads one move per round interactively. A single scanner
// lives for the whole session, so input buffered ahead of the current round
// (piped or pasted multi-line sessions) survives to the next one.
type consoleOpponent struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newConsoleOpponent(in io.Reader, out io.Writer) *consoleOpponent {
	return &consoleOpponent{scanner: bufio.NewScanner(in), out: out}
}

// NextMove prompts until it gets a valid move. Invalid input (including
// empty input) re-prompts; E or end of input ends the session.
func (c *consoleOpponent) NextMove() (game.Move, bool) {
	for {
		fmt.Fprint(c.out, "Your move: ")
		if !c.scanner.Scan() {
			return 0, false
		}

		choice := strings.TrimSpace(c.scanner.Text())
		if strings.EqualFold(choice, "e") {
			return 0, false
		}

		move, err := game.ParseMove(choice)
		if err != nil {
			fmt.Fprintln(c.out, "Please use R, P, or S. Use E to end the game.")
			continue
		}
		return move, true
	}
}
