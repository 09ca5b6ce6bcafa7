package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/nelhage/puyotician/kumipuyo"
	"github.com/nelhage/puyotician/notation"
	"github.com/nelhage/puyotician/puyo"
)

// NewLineReader reads one key sequence per line. An empty line plays
// a single frame with no input.
func NewLineReader(out io.Writer, in *bufio.Reader) KeySource {
	return &lineReader{out, in}
}

type lineReader struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *lineReader) GetKeys(s *kumipuyo.MovingState) ([]puyo.KeySet, error) {
	for {
		fmt.Fprintf(c.out, "%s> ", s.Pos)
		line, err := c.in.ReadString('\n')
		if line == "" && err != nil {
			return nil, err
		}
		ks, perr := notation.ParseKeys(line)
		if perr != nil {
			fmt.Fprintf(c.out, "parse error: %v\n", perr)
			if err != nil {
				return nil, err
			}
			continue
		}
		if len(ks) == 0 {
			ks = []puyo.KeySet{0}
		}
		return ks, nil
	}
}

