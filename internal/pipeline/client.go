package pipeline

import (
	"context"
	"fmt"

	pb "github.com/sliaskonis/finn-rl/gen/pipelinepb"
	"github.com/sliaskonis/finn-rl/internal/catalog"
	"github.com/sliaskonis/finn-rl/internal/reward"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region client-struct
// Client wraps the gRPC connection to the Python quantization pipeline.
// One working model copy lives behind each service instance, so callers
// must keep calls strictly sequential per client.
type Client struct {
	conn   *grpc.ClientConn
	client pb.PipelineServiceClient
}

// #endregion client-struct

// #region constructor
// NewClient connects to the Python pipeline gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewPipelineServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.PipelineServiceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// #endregion close

// #region describe
// Describe lists the model's quantizable decision points in graph order.
func (c *Client) Describe(ctx context.Context) ([]catalog.NodeDesc, error) {
	resp, err := c.client.DescribeModel(ctx, &pb.DescribeModelRequest{})
	if err != nil {
		return nil, fmt.Errorf("describe model rpc: %w", err)
	}

	nodes := make([]catalog.NodeDesc, len(resp.Nodes))
	for i, n := range resp.Nodes {
		nodes[i] = catalog.NodeDesc{
			Position:     n.Position,
			IsActivation: n.IsActivation,
			Kind:         n.Kind,
			Workload:     n.Workload,
			Params:       n.Params,
		}
	}
	return nodes, nil
}

// #endregion describe

// #region restore
// Restore resets the working model to its original weights and the
// quantizer to its configured bit-width defaults.
func (c *Client) Restore(ctx context.Context) error {
	if _, err := c.client.RestoreModel(ctx, &pb.RestoreModelRequest{}); err != nil {
		return fmt.Errorf("restore model rpc: %w", err)
	}
	return nil
}

// #endregion restore

// #region quantize
// Quantize applies the bit-width assignment to the working model: the
// first splitIndex entries as activation quantizers, the rest as
// compute-layer quantizers, in catalog order.
func (c *Client) Quantize(ctx context.Context, strategy []int, positions []int64, splitIndex int) error {
	_, err := c.client.Quantize(ctx, &pb.QuantizeRequest{
		Strategy:   toInt32(strategy),
		Positions:  positions,
		SplitIndex: int32(splitIndex),
	})
	if err != nil {
		return fmt.Errorf("quantize rpc: %w", err)
	}
	return nil
}

// #endregion quantize

// #region finetuning
// Calibrate runs post-quantization calibration on the working model.
func (c *Client) Calibrate(ctx context.Context) error {
	if _, err := c.client.Calibrate(ctx, &pb.CalibrateRequest{}); err != nil {
		return fmt.Errorf("calibrate rpc: %w", err)
	}
	return nil
}

// Finetune fine-tunes the working model for the configured epochs.
func (c *Client) Finetune(ctx context.Context) error {
	if _, err := c.client.Finetune(ctx, &pb.FinetuneRequest{}); err != nil {
		return fmt.Errorf("finetune rpc: %w", err)
	}
	return nil
}

// Validate measures the working model's task accuracy, in percent.
func (c *Client) Validate(ctx context.Context) (float64, error) {
	resp, err := c.client.Validate(ctx, &pb.ValidateRequest{})
	if err != nil {
		return 0, fmt.Errorf("validate rpc: %w", err)
	}
	return resp.Accuracy, nil
}

// #endregion finetuning

// #region cost-evaluate
// CostEvaluate runs the hardware-description pipeline on a scratch copy
// quantized with the given strategy. Deterministic given identical inputs;
// a non-positive cycle count signals a compiler-pipeline failure and is
// surfaced as data for the caller to classify.
func (c *Client) CostEvaluate(ctx context.Context, strategy []int, positions []int64, splitIndex int, spec EvalSpec) (CostReport, error) {
	resp, err := c.client.CostEvaluate(ctx, &pb.CostEvaluateRequest{
		Strategy:   toInt32(strategy),
		Positions:  positions,
		SplitIndex: int32(splitIndex),
		FpgaPart:   spec.Part,
		Board:      spec.Board,
		ClockMhz:   spec.ClockMHz,
		OutputDir:  spec.OutputDir,
	})
	if err != nil {
		return CostReport{}, fmt.Errorf("cost evaluate rpc: %w", err)
	}

	return CostReport{
		Cycles:     resp.Cycles,
		AvgUtil:    resp.AvgUtil,
		MaxUtil:    resp.MaxUtil,
		Bottleneck: resp.Bottleneck,
		Used:       toSnapshot(resp.Used),
		Totals:     toSnapshot(resp.Totals),
	}, nil
}

// #endregion cost-evaluate

// #region helpers
func toInt32(s []int) []int32 {
	out := make([]int32, len(s))
	for i, v := range s {
		out[i] = int32(v)
	}
	return out
}

func toSnapshot(rc *pb.ResourceCounts) reward.Snapshot {
	if rc == nil {
		return reward.Snapshot{}
	}
	return reward.Snapshot{
		BRAM: int(rc.Bram),
		LUT:  int(rc.Lut),
		DSP:  int(rc.Dsp),
	}
}

// #endregion helpers
