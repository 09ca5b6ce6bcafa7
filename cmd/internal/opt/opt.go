package opt

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/nelhage/puyotician/kumipuyo"
	"github.com/nelhage/puyotician/notation"
	"github.com/nelhage/puyotician/puyo"
)

// Frames is the flag group for kumipuyo.Config. Values come from, in
// increasing priority: defaults, the -config file, PUYOTICIAN_*
// environment variables, and flags given on the command line.
type Frames struct {
	ConfigFile string

	FreeFall        int
	TurnProhibited  int
	ArrowProhibited int
	QuickTurn       int
	GroundingLimit  int
	MaxAxisY        int

	flags *flag.FlagSet
}

const EnvPrefix = "PUYOTICIAN"

func (o *Frames) AddFlags(flags *flag.FlagSet) {
	d := kumipuyo.DefaultConfig
	o.flags = flags
	flags.StringVar(&o.ConfigFile, "config", "", "YAML file of frame constants")
	flags.IntVar(&o.FreeFall, "free-fall", d.FramesFreeFall, "frames per row of free fall")
	flags.IntVar(&o.TurnProhibited, "turn-prohibited", d.FramesContinuousTurnProhibited, "frames a turn key is ignored after a turn")
	flags.IntVar(&o.ArrowProhibited, "arrow-prohibited", d.FramesContinuousArrowProhibited, "frames left/right are ignored after a move")
	flags.IntVar(&o.QuickTurn, "quick-turn", d.FramesQuickTurn, "frames a blocked turn allows a quick turn")
	flags.IntVar(&o.GroundingLimit, "grounding-limit", d.GroundingLimit, "landings before a pair locks unconditionally")
	flags.IntVar(&o.MaxAxisY, "max-axis-y", d.MaxAxisY, "floor kicks may raise the axis only below this row")
}

func (o *Frames) BuildConfig() (kumipuyo.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := kumipuyo.DefaultConfig
	v.SetDefault("free-fall", d.FramesFreeFall)
	v.SetDefault("turn-prohibited", d.FramesContinuousTurnProhibited)
	v.SetDefault("arrow-prohibited", d.FramesContinuousArrowProhibited)
	v.SetDefault("quick-turn", d.FramesQuickTurn)
	v.SetDefault("grounding-limit", d.GroundingLimit)
	v.SetDefault("max-axis-y", d.MaxAxisY)

	if o.ConfigFile != "" {
		v.SetConfigFile(o.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return kumipuyo.Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	if o.flags != nil {
		o.flags.Visit(func(f *flag.Flag) {
			if f.Name != "config" {
				v.Set(f.Name, f.Value.String())
			}
		})
	}

	cfg := kumipuyo.Config{
		FramesFreeFall:                  v.GetInt("free-fall"),
		FramesContinuousTurnProhibited:  v.GetInt("turn-prohibited"),
		FramesContinuousArrowProhibited: v.GetInt("arrow-prohibited"),
		FramesQuickTurn:                 v.GetInt("quick-turn"),
		GroundingLimit:                  v.GetInt("grounding-limit"),
		MaxAxisY:                        v.GetInt("max-axis-y"),
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LoadField parses the field in path if it is set, and text otherwise.
func LoadField(text, path string) (*puyo.PlainField, error) {
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		text = string(b)
	}
	f, err := notation.ParseField(text)
	if err != nil {
		return nil, fmt.Errorf("parse field: %w", err)
	}
	return f, nil
}
