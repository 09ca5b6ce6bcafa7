package simulate

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/puyotician/analysis"
	"github.com/nelhage/puyotician/cmd/internal/opt"
	"github.com/nelhage/puyotician/kumipuyo"
	"github.com/nelhage/puyotician/logs"
	"github.com/nelhage/puyotician/notation"
	"github.com/nelhage/puyotician/puyo"
)

type Command struct {
	field     string
	fieldFile string
	start     string
	keys      string
	idle      int
	db        string
	quiet     bool

	frames opt.Frames
}

func (*Command) Name() string     { return "simulate" }
func (*Command) Synopsis() string { return "Move a pair frame by frame with a key sequence" }
func (*Command) Usage() string {
	return `simulate [flags] KEYS

Play KEYS, one comma-separated key set per frame, against a field and
print the pair's state after every frame. Keys are ^ > v < A B S.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.field, "field", "", "field, top row first, 6 glyphs per row")
	flags.StringVar(&c.fieldFile, "field-file", "", "read the field from a file")
	flags.StringVar(&c.start, "start", kumipuyo.InitialPos.String(), "starting position x,y,r")
	flags.IntVar(&c.idle, "idle", 0, "play up to this many input-free frames after KEYS")
	flags.StringVar(&c.db, "db", "", "store the trace in this sqlite database")
	flags.BoolVar(&c.quiet, "quiet", false, "only print the final state")
	c.frames.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() > 1 {
		log.Error().Msg("too many arguments")
		return subcommands.ExitUsageError
	}
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
	keys, err := notation.ParseKeys(flag.Arg(0))
	if err != nil {
		log.Error().Err(err).Msg("keys")
		return subcommands.ExitUsageError
	}

	st := kumipuyo.New(&cfg, start)
	steps := analysis.Simulate(f, st, keys, c.idle)
	final := st
	if len(steps) > 0 {
		final = steps[len(steps)-1].State
	}

	if !c.quiet {
		printSteps(steps)
	}
	fmt.Printf("final: %s\n", final)

	if c.db != "" {
		if err := c.store(f, start, steps, &final); err != nil {
			log.Error().Err(err).Str("db", c.db).Msg("store trace")
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func printSteps(steps []analysis.Step) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 1, ' ', 0)
	fmt.Fprintf(w, "frame\tkeys\tpos\tturn\tarrow\tquick\tfall\tgrounded\tdown\n")
	for _, s := range steps {
		st := s.State
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%d/%v/%v\t%v\n",
			s.Frame, s.Keys, st.Pos,
			st.RestFramesTurnProhibited, st.RestFramesArrowProhibited,
			st.RestFramesToAcceptQuickTurn, st.RestFramesForFreefall,
			st.NumGrounded, st.Grounding, st.Grounded,
			s.DownAccepted)
	}
	w.Flush()
}

func (c *Command) store(f puyo.Field, start kumipuyo.Pos, steps []analysis.Step, final *kumipuyo.MovingState) error {
	repo, err := logs.Open(c.db)
	if err != nil {
		return err
	}
	defer repo.Close()

	played := make([]puyo.KeySet, len(steps))
	frames := make([]logs.Frame, len(steps))
	for i, s := range steps {
		played[i] = s.Keys
		frames[i] = logs.MakeFrame(s.Frame, s.Keys, &s.State, s.DownAccepted)
	}
	tr := logs.MakeTrace(f, start, played, final)
	id, err := repo.InsertTrace(&tr, frames)
	if err != nil {
		return err
	}
	log.Info().Int64("trace", id).Int("frames", len(frames)).Msg("stored trace")
	return nil
}
