package play

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/puyotician/cli"
	"github.com/nelhage/puyotician/cmd/internal/opt"
	"github.com/nelhage/puyotician/kumipuyo"
	"github.com/nelhage/puyotician/notation"
	"github.com/nelhage/puyotician/puyo"
)

type Command struct {
	field     string
	fieldFile string
	start     string
	input     string
	out       string

	unicode bool

	frames opt.Frames
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Step a pair interactively from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Drop one pair into a field, rendering it after every line of input.
Each line is a key sequence such as ">,>,A"; an empty line plays one
frame with no keys.

-input selects where keys come from: "human" reads stdin, and
"reach:X,Y,R" plays the shortest key sequence that locks at X,Y,R.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.field, "field", "", "field, top row first, 6 glyphs per row")
	flags.StringVar(&c.fieldFile, "field-file", "", "read the field from a file")
	flags.StringVar(&c.start, "start", kumipuyo.InitialPos.String(), "starting position x,y,r")
	flags.StringVar(&c.input, "input", "human", "key source")
	flags.StringVar(&c.out, "out", "", "write the played keys to file")

	flags.BoolVar(&c.unicode, "unicode", false, "render field with utf8 glyphs")
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
	in, err := c.parseInput(f, kumipuyo.New(&cfg, start))
	if err != nil {
		log.Error().Err(err).Msg("input")
		return subcommands.ExitUsageError
	}

	st := &cli.CLI{
		Field:  f,
		Config: &cfg,
		Start:  start,
		Out:    os.Stdout,
		Input:  in,
		Glyphs: glyphs(c.unicode),
	}
	if _, err := st.Play(); err != nil && err != io.EOF {
		log.Error().Err(err).Msg("play")
		return subcommands.ExitFailure
	}
	if c.out != "" {
		text := notation.FormatKeys(st.Frames()) + "\n"
		if err := os.WriteFile(c.out, []byte(text), 0644); err != nil {
			log.Error().Err(err).Str("out", c.out).Msg("write keys")
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

// script hands out a fixed key sequence once.
type script struct {
	keys []puyo.KeySet
}

func (s *script) GetKeys(*kumipuyo.MovingState) ([]puyo.KeySet, error) {
	if s.keys == nil {
		return nil, io.EOF
	}
	ks := s.keys
	s.keys = nil
	return ks, nil
}

func (c *Command) parseInput(f puyo.Field, st kumipuyo.MovingState) (cli.KeySource, error) {
	if c.input == "human" {
		return cli.NewLineReader(os.Stdout, bufio.NewReader(os.Stdin)), nil
	}
	if strings.HasPrefix(c.input, "reach:") {
		target, err := kumipuyo.ParsePos(c.input[len("reach:"):])
		if err != nil {
			return nil, err
		}
		for _, p := range kumipuyo.Reachable(f, st) {
			if p.Pos == target {
				return &script{p.Keys}, nil
			}
		}
		return nil, fmt.Errorf("%s is not reachable", target)
	}
	return nil, fmt.Errorf("unparseable input: %q", c.input)
}
