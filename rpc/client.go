package rpc

import (
	"golang.org/x/net/context"
	"google.golang.org/grpc"
)

type Client struct {
	cc *grpc.ClientConn
}

func NewClient(cc *grpc.ClientConn) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in, out interface{}) error {
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, grpc.CallContentSubtype(CodecName))
}

func (c *Client) Simulate(ctx context.Context, in *SimulateRequest) (*SimulateResponse, error) {
	out := new(SimulateResponse)
	if err := c.invoke(ctx, "Simulate", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Analyze(ctx context.Context, in *AnalyzeRequest) (*AnalyzeResponse, error) {
	out := new(AnalyzeResponse)
	if err := c.invoke(ctx, "Analyze", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Reach(ctx context.Context, in *ReachRequest) (*ReachResponse, error) {
	out := new(ReachResponse)
	if err := c.invoke(ctx, "Reach", in, out); err != nil {
		return nil, err
	}
	return out, nil
}
