package reach

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/puyotician/cache"
	"github.com/nelhage/puyotician/cmd/internal/opt"
	"github.com/nelhage/puyotician/kumipuyo"
	"github.com/nelhage/puyotician/notation"
)

type Command struct {
	field     string
	fieldFile string
	start     string
	cache     string

	frames opt.Frames
}

func (*Command) Name() string     { return "reach" }
func (*Command) Synopsis() string { return "List every position a pair can lock at" }
func (*Command) Usage() string {
	return `reach [flags]

Search all frame-by-frame inputs from the starting position and print each
reachable locked position with the shortest key sequence that reaches it.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.field, "field", "", "field, top row first, 6 glyphs per row")
	flags.StringVar(&c.fieldFile, "field-file", "", "read the field from a file")
	flags.StringVar(&c.start, "start", kumipuyo.InitialPos.String(), "starting position x,y,r")
	flags.StringVar(&c.cache, "cache", "", "directory of a placement cache")
	c.frames.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.frames.BuildConfig()
	if err != nil {
		log.Error().Err(err).Msg("config")
		return subcommands.ExitUsageError
	}
	f, err := opt.LoadField(c.field, c.fieldFile)
	if err != nil {
		log.Error().Err(err).Msg("field")
		return subcommands.ExitUsageError
	}
	start, err := kumipuyo.ParsePos(c.start)
	if err != nil {
		log.Error().Err(err).Msg("start")
		return subcommands.ExitUsageError
	}

	t := time.Now()
	var ps []kumipuyo.Placement
	if c.cache != "" {
		pc, err := cache.Open(c.cache)
		if err != nil {
			log.Error().Err(err).Msg("cache")
			return subcommands.ExitFailure
		}
		defer pc.Close()
		var hit bool
		ps, hit, err = pc.Reachable(f, &cfg, start)
		if err != nil {
			log.Error().Err(err).Msg("cache")
			return subcommands.ExitFailure
		}
		log.Debug().Bool("hit", hit).Msg("cache")
	} else {
		ps = kumipuyo.Reachable(f, kumipuyo.New(&cfg, start))
	}
	log.Debug().Int("placements", len(ps)).Dur("elapsed", time.Since(t)).Msg("search done")

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 1, ' ', 0)
	fmt.Fprintf(w, "pos\tframes\tkeys\n")
	for _, p := range ps {
		fmt.Fprintf(w, "%s\t%d\t%s\n", p.Pos, len(p.Keys), notation.FormatKeys(p.Keys))
	}
	w.Flush()
	return subcommands.ExitSuccess
}
