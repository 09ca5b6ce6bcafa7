package analyze

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/puyotician/analysis"
	"github.com/nelhage/puyotician/cmd/internal/opt"
	"github.com/nelhage/puyotician/notation"
	"github.com/nelhage/puyotician/puyo"
)

type Command struct {
	file  string
	quiet bool
	all   bool
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Report the connected groups of a field" }
func (*Command) Usage() string {
	return `analyze [options] FIELD

Print every connected group of each color in FIELD, marking the groups
that are large enough to vanish.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.file, "file", "", "read the field from a file")
	flags.BoolVar(&c.quiet, "quiet", false, "don't print the field")
	flags.BoolVar(&c.all, "all", false, "list single puyos too")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	f, err := opt.LoadField(strings.Join(flag.Args(), ""), c.file)
	if err != nil {
		log.Error().Err(err).Msg("field")
		return subcommands.ExitUsageError
	}
	if !c.quiet {
		fmt.Println(notation.FormatField(f))
		fmt.Println()
	}
	for _, cg := range analysis.Groups(f) {
		if cg.Count == 0 {
			continue
		}
		fmt.Printf("%s: %d puyos, %d groups\n", cg.Color, cg.Count, len(cg.Groups))
		for _, g := range cg.Groups {
			if g.Size == 1 && !c.all {
				continue
			}
			mark := ""
			if g.Vanishable {
				mark = " vanish"
			}
			fmt.Printf("  %2d%s %s\n", g.Size, mark, formatCells(g.Cells))
		}
	}
	v := analysis.Vanishable(f)
	fmt.Printf("vanishable: %d\n", v.Popcount())
	return subcommands.ExitSuccess
}

func formatCells(ps []puyo.Position) string {
	bits := make([]string, len(ps))
	for i, p := range ps {
		bits[i] = p.String()
	}
	return strings.Join(bits, " ")
}
