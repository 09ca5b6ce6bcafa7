package rpc

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nelhage/puyotician/analysis"
	"github.com/nelhage/puyotician/cache"
	"github.com/nelhage/puyotician/kumipuyo"
	"github.com/nelhage/puyotician/notation"
	"github.com/nelhage/puyotician/puyo"
)

// DefaultIdleLimit bounds the input-free frames played after a
// simulation's keys run out.
const DefaultIdleLimit = 1000

// MaxIdleLimit is the largest IdleLimit a request may ask for.
const MaxIdleLimit = 4096

type Server struct {
	// Config is used by requests that do not carry their own.
	Config kumipuyo.Config
	// Cache, if set, serves repeated Reach requests.
	Cache *cache.Placements
}

func NewServer(cfg kumipuyo.Config) *Server {
	return &Server{Config: cfg}
}

func (s *Server) config(override *kumipuyo.Config) (*kumipuyo.Config, error) {
	cfg := s.Config
	if override != nil {
		cfg = *override
	}
	if err := cfg.Validate(); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "config: %v", err)
	}
	return &cfg, nil
}

func parseStart(start string) (kumipuyo.Pos, error) {
	if start == "" {
		return kumipuyo.InitialPos, nil
	}
	p, err := kumipuyo.ParsePos(start)
	if err != nil {
		return p, status.Errorf(codes.InvalidArgument, "start: %v", err)
	}
	return p, nil
}

func parseField(s string) (*puyo.PlainField, error) {
	f, err := notation.ParseField(s)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "field: %v", err)
	}
	return f, nil
}

func (s *Server) Simulate(ctx context.Context, req *SimulateRequest) (*SimulateResponse, error) {
	f, err := parseField(req.Field)
	if err != nil {
		return nil, err
	}
	start, err := parseStart(req.Start)
	if err != nil {
		return nil, err
	}
	keys, err := notation.ParseKeys(req.Keys)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "keys: %v", err)
	}
	cfg, err := s.config(req.Config)
	if err != nil {
		return nil, err
	}
	limit := req.IdleLimit
	if limit > MaxIdleLimit {
		return nil, status.Errorf(codes.InvalidArgument, "idle_limit %d above %d", limit, MaxIdleLimit)
	}
	if limit <= 0 {
		limit = DefaultIdleLimit
	}

	st := kumipuyo.New(cfg, start)
	steps := analysis.Simulate(f, st, keys, limit)
	out := &SimulateResponse{Steps: steps, Final: st}
	if len(steps) > 0 {
		out.Final = steps[len(steps)-1].State
	}
	return out, nil
}

func (s *Server) Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error) {
	f, err := parseField(req.Field)
	if err != nil {
		return nil, err
	}
	return &AnalyzeResponse{
		Colors:     analysis.Groups(f),
		Vanishable: analysis.Vanishable(f).Positions(nil),
	}, nil
}

func (s *Server) Reach(ctx context.Context, req *ReachRequest) (*ReachResponse, error) {
	f, err := parseField(req.Field)
	if err != nil {
		return nil, err
	}
	start, err := parseStart(req.Start)
	if err != nil {
		return nil, err
	}
	cfg, err := s.config(req.Config)
	if err != nil {
		return nil, err
	}
	var ps []kumipuyo.Placement
	if s.Cache != nil {
		var hit bool
		ps, hit, err = s.Cache.Reachable(f, cfg, start)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "cache: %v", err)
		}
		log.Debug().Bool("hit", hit).Msg("reach cache")
	} else {
		ps = kumipuyo.Reachable(f, kumipuyo.New(cfg, start))
	}
	var out ReachResponse
	for _, p := range ps {
		out.Placements = append(out.Placements, Placement{
			Pos:  p.Pos,
			Keys: notation.FormatKeys(p.Keys),
		})
	}
	return &out, nil
}

// LogRequests is a unary interceptor logging every call.
func LogRequests(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	ev := log.Info()
	if err != nil {
		ev = log.Warn().Err(err)
	}
	ev.Str("method", info.FullMethod).Dur("elapsed", time.Since(start)).Msg("rpc")
	return resp, err
}
