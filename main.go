package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"amazons/agent"
	"amazons/engine"
	"amazons/game"
	"amazons/render"
	"amazons/searcher"
	"amazons/searcher/metrics"
)

func main() {
	budget := flag.Int("budget", 200, "Exploration passes per move decision")
	maxDepth := flag.Int("depth", 4, "Maximum selection depth per pass")
	games := flag.Int("games", 1, "Number of games to play")
	seed := flag.Uint64("seed", 1, "Seed for the random opponent")
	random := flag.Bool("random", true, "Play the search agent against the random agent instead of a second search agent")
	show := flag.Bool("show", true, "Render the board after every move")
	csvDir := flag.String("csv", "", "Directory for CSV records of the run (empty disables)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	for i := 1; i <= *games; i++ {
		black := agent.NewSearch(
			searcher.WithBudget(*budget),
			searcher.WithMaxDepth(*maxDepth),
			searcher.WithMetrics(),
		)
		var white agent.Agent
		if *random {
			white = agent.NewRandom(*seed + uint64(i))
		} else {
			white = agent.NewSearch(
				searcher.WithBudget(*budget),
				searcher.WithMaxDepth(*maxDepth),
				searcher.WithMetrics(),
			)
		}

		options := []engine.Option{}
		if *show {
			options = append(options, engine.WithObserver(func(turn int, color game.Color, move game.Move, board game.Board) {
				fmt.Printf("turn %d: %s plays %v\n%s\n", turn, color, move, render.Board(board))
			}))
		}

		e := engine.NewLocal(black, white, options...)
		winner, records, err := e.Run()
		if err != nil {
			log.Fatal().Err(err).Int("game", i).Msg("game aborted")
		}
		log.Info().Int("game", i).Stringer("winner", winner).Int("turns", len(records)).Msg("game finished")

		gameRecord := metrics.GameRecord{
			ID:     i,
			Winner: winner.String(),
			Turns:  len(records),
		}
		for _, record := range records {
			record.Game = i
			gameRecord.Duration += record.Duration
			moveRecords = append(moveRecords, record)
		}
		gameRecords = append(gameRecords, gameRecord)
	}

	if *csvDir != "" {
		writer, err := metrics.NewWriter(*csvDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create record writer")
		}
		if err := writer.WriteGameRecords(gameRecords); err != nil {
			log.Fatal().Err(err).Msg("failed to write game records")
		}
		if err := writer.WriteMoveRecords(moveRecords); err != nil {
			log.Fatal().Err(err).Msg("failed to write move records")
		}
	}
}
