package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/heapsolver/config"
	"github.com/domino14/heapsolver/retrograde"
)

var debug = flag.Bool("debug", false, "log solver progress per round")
var evolution = flag.Bool("evolution", false, "print the table after every round")

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.DefaultConfig()
	if err := cfg.Load(); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if *debug {
		cfg.Debug = true
	}
	if *evolution {
		cfg.Evolution = true
	}

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	bounds, err := cfg.GameBounds()
	if err != nil {
		log.Fatal().Err(err).Msg("bad heap bounds")
	}

	space := retrograde.NewSpace(bounds)
	solver := retrograde.NewSolver(space)
	if cfg.Evolution {
		solver.TraceWriter = os.Stdout
	}

	start := time.Now()
	rounds := solver.Solve()
	log.Debug().
		Int("rounds", rounds).
		Int("states", space.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("solved")

	if err := space.Dump(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("writing table")
	}
}
