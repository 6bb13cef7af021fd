package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"timefighter/internal/config"
	"timefighter/internal/game"
	"timefighter/internal/store"
)

const WindowTitle = "Time Fighter"

type flags struct {
	configPath string
	stateFile  string
	verbose    bool
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("timefighter", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "Path to YAML config")
	fs.StringVar(&f.stateFile, "state", "", "State file to resume from and save to on exit")
	fs.BoolVar(&f.verbose, "v", false, "Debug logging")
	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	return f, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("could not load .env file")
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	f, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if f.stateFile != "" {
		cfg.StateFile = f.stateFile
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	if f.verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var st store.Store = store.NewMemory()
	if cfg.StateFile != "" {
		st = store.NewFile(cfg.StateFile)
	}

	log.Info().
		Dur("countdown", cfg.InitialCountdown).
		Dur("interval", cfg.CountdownInterval).
		Str("state_file", cfg.StateFile).
		Msg("starting time fighter")

	// 1. Window Setup
	ebiten.SetWindowSize(game.ScreenWidth*2, game.ScreenHeight*2)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	// 2. Initialize Game
	g := game.New(cfg, st)

	// 3. Run Loop
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
	g.Close()
	log.Info().Msg("bye")
}
