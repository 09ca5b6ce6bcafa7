package rpc

import (
	"github.com/nelhage/puyotician/analysis"
	"github.com/nelhage/puyotician/kumipuyo"
	"github.com/nelhage/puyotician/puyo"
)

type SimulateRequest struct {
	Field string `json:"field"`
	// Start is "x,y,r"; empty means kumipuyo.InitialPos.
	Start     string           `json:"start,omitempty"`
	Keys      string           `json:"keys"`
	IdleLimit int              `json:"idle_limit,omitempty"`
	Config    *kumipuyo.Config `json:"config,omitempty"`
}

type SimulateResponse struct {
	Steps []analysis.Step      `json:"steps"`
	Final kumipuyo.MovingState `json:"final"`
}

type AnalyzeRequest struct {
	Field string `json:"field"`
}

type AnalyzeResponse struct {
	Colors     []analysis.ColorGroups `json:"colors"`
	Vanishable []puyo.Position        `json:"vanishable"`
}

type ReachRequest struct {
	Field  string           `json:"field"`
	Start  string           `json:"start,omitempty"`
	Config *kumipuyo.Config `json:"config,omitempty"`
}

type Placement struct {
	Pos  kumipuyo.Pos `json:"pos"`
	Keys string       `json:"keys"`
}

type ReachResponse struct {
	Placements []Placement `json:"placements"`
}
