package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-cli/internal/solution"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/tui"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

const usage = `usage: wordle [command] [flags]

commands:
  play   play today's puzzle in the terminal (default)
  serve  run the daily solution service
  help   show this message

Run "wordle <command> -h" for the flags of a command.
`

func main() {
	_ = godotenv.Load()

	cmd, args := "play", os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "play":
		err = play(args)
	case "serve":
		err = serve(args)
	case "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		if cmd == "play" {
			// Play logs to a file at most; make sure the player sees why.
			fmt.Fprintf(os.Stderr, "wordle: %v\n", err)
		}
		log.Fatal().Err(err).Str("cmd", cmd).Msg("wordle exited")
	}
}

// setupLogging sets the global level and output.
func setupLogging(level string, out io.Writer) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

func play(args []string) error {
	cfg, err := config.Parse("play", args)
	if err != nil {
		return err
	}

	// The terminal belongs to the board; logs only go to a file.
	out := io.Discard
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	setupLogging(cfg.Logging.Level, out)
	log.Logger = log.With().Str("session", uuid.NewString()).Logger()

	v, err := words.Load(cfg.Words.File)
	if err != nil {
		return err
	}
	log.Info().Int("words", v.Len()).Msg("loaded word list")

	p, err := provider(cfg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	sol, err := p.Today(ctx)
	if err != nil {
		return fmt.Errorf("get today's solution: %w", err)
	}
	if !v.Valid(sol) {
		log.Warn().Msg("solution is not in the accepted guess list")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctrl := game.New(sol, v)
	log.Info().Msg("session started")
	err = tui.New(screen, ctrl).Run()
	log.Info().Str("state", string(ctrl.Outcome().State)).Int("guesses", ctrl.Guesses()).Msg("session ended")
	return err
}

// provider picks the solution source: fixed word, remote service, or the
// embedded answer list.
func provider(cfg *config.Config) (solution.Provider, error) {
	switch {
	case cfg.Solution.Word != "":
		return solution.Static(cfg.Solution.Word), nil
	case cfg.Solution.URL != "":
		return solution.NewHTTP(cfg.Solution.URL), nil
	}
	answers, err := words.Answers()
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	return solution.Local{Answers: answers, Salt: cfg.Solution.Salt}, nil
}

func serve(args []string) error {
	cfg, err := config.Parse("serve", args)
	if err != nil {
		return err
	}
	setupLogging(cfg.Logging.Level, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	answers, err := words.Answers()
	if err != nil {
		return fmt.Errorf("load answers: %w", err)
	}

	archive := store.NewMemory()
	if cfg.Server.DBPath != "" {
		db, err := store.Open(cfg.Server.DBPath)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer db.Close()
		if err := store.Migrate(db, assets.Migrations()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		archive = store.NewSQLite(db)
	}

	srv := httpserver.New(archive, answers, cfg.Solution.Salt)
	log.Info().Str("addr", cfg.Addr()).Int("answers", len(answers)).Str("db", cfg.Server.DBPath).Msg("starting solution service")
	return srv.Start(cfg.Addr())
}
