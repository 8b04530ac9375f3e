// Command fadv is the financial advisor CLI.
package main

import (
	"context"
	"flag"
	"os"
	"path"
	"time"

	"github.com/etnz/advisor/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A local .env can carry GEMINI_API_KEY and LOG_LEVEL so that
	// 'fadv assist' works without exporting anything.
	_ = godotenv.Load()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(logLevel())

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	completion := &complete.Command{Sub: map[string]*complete.Command{}}
	for _, c := range cmd.Commands() {
		commander.Register(c, "")
		completion.Sub[c.Name()] = &complete.Command{}
	}
	// Handles the shell completion protocol and exits when invoked by
	// the shell; a normal run falls through.
	completion.Complete("fadv")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func logLevel() zerolog.Level {
	if level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && level != zerolog.NoLevel {
		return level
	}
	return zerolog.WarnLevel
}
