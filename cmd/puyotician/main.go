package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/puyotician/cmd/internal/analyze"
	"github.com/nelhage/puyotician/cmd/internal/play"
	"github.com/nelhage/puyotician/cmd/internal/reach"
	"github.com/nelhage/puyotician/cmd/internal/serve"
	"github.com/nelhage/puyotician/cmd/internal/simulate"
	"github.com/nelhage/puyotician/cmd/internal/verify"
)

var (
	logLevel = flag.String("log-level", "info", "debug, info, warn, error or disabled")
	jsonLogs = flag.Bool("json-logs", false, "log JSON instead of console output")
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&simulate.Command{}, "")
	subcommands.Register(&reach.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&verify.Command{}, "")
	subcommands.Register(&serve.Command{}, "")

	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -log-level")
	}
	zerolog.SetGlobalLevel(level)
	if !*jsonLogs {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	status := subcommands.Execute(ctx)
	cancel()
	os.Exit(int(status))
}
