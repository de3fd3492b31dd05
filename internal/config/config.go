package config

import (
	"github.com/namsral/flag"
)

// Config holds all application configuration
type Config struct {
	Words    WordsConfig
	Solution SolutionConfig
	Server   ServerConfig
	Logging  LoggingConfig
}

// WordsConfig selects the accepted guess list
type WordsConfig struct {
	File string // empty selects the embedded list
}

// SolutionConfig selects where the day's word comes from
type SolutionConfig struct {
	Word string // fixed solution, overrides everything else
	URL  string // dated JSON endpoint; empty means pick locally
	Salt string // shared with the solution service
}

// ServerConfig holds solution-service configuration
type ServerConfig struct {
	Port   string
	DBPath string // empty keeps the archive in memory
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level string
	File  string // play mode only; the terminal belongs to the board
}

// Parse reads flags for the named subcommand from args. Every flag can also
// be set through the environment variable of the same name in upper case
// (words_file -> WORDS_FILE).
func Parse(cmd string, args []string) (*Config, error) {
	c := &Config{}
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)

	fs.StringVar(&c.Words.File, "words_file", "", "A newline-separated, sorted list of accepted 5-letter guesses.")
	fs.StringVar(&c.Solution.Salt, "daily_salt", "local_dev_salt", "Salt used to pick the word of the day.")
	fs.StringVar(&c.Logging.Level, "log_level", "info", "Log level (debug, info, warn, error).")

	switch cmd {
	case "serve":
		fs.StringVar(&c.Server.Port, "port", "5175", "Port for the solution service.")
		fs.StringVar(&c.Server.DBPath, "db_path", "./data/wordle.db", "SQLite archive of published solutions; empty keeps it in memory.")
	default:
		fs.StringVar(&c.Solution.Word, "solution", "", "Play against a fixed solution.")
		fs.StringVar(&c.Solution.URL, "solution_url", "", "Base URL of a dated solution service, e.g. "+"https://www.nytimes.com/svc/wordle/v2.")
		fs.StringVar(&c.Logging.File, "log_file", "", "Write logs to this file while playing.")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

// Addr returns the listen address for the solution service
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}
