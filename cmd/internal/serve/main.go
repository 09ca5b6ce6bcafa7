package serve

import (
	"context"
	"flag"
	"fmt"
	"net"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/nelhage/puyotician/cache"
	"github.com/nelhage/puyotician/cmd/internal/opt"
	"github.com/nelhage/puyotician/rpc"
)

type Command struct {
	port  int
	cache string

	frames opt.Frames
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve Puyotician RPCs via GRPC" }
func (*Command) Usage() string {
	return `serve [flags]

The frame flags set the constants used by requests that carry no config.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.port, "port", 55431, "bind port")
	flags.StringVar(&c.cache, "cache", "", "directory of a placement cache for Reach")
	c.frames.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.frames.BuildConfig()
	if err != nil {
		log.Error().Err(err).Msg("config")
		return subcommands.ExitUsageError
	}
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", c.port))
	if err != nil {
		log.Error().Err(err).Int("port", c.port).Msg("failed to listen")
		return subcommands.ExitFailure
	}
	log.Info().Int("port", c.port).Msg("listening")

	srv := rpc.NewServer(cfg)
	if c.cache != "" {
		pc, err := cache.Open(c.cache)
		if err != nil {
			log.Error().Err(err).Msg("cache")
			return subcommands.ExitFailure
		}
		defer pc.Close()
		srv.Cache = pc
	}

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(rpc.LogRequests))
	rpc.RegisterPuyoticianServer(grpcServer, srv)

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()
	if err := grpcServer.Serve(lis); err != nil {
		log.Error().Err(err).Msg("serve")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
