package tools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Tok/SuperColliderMCP/internal/pattern"
	"github.com/Tok/SuperColliderMCP/internal/sc"
)

// ExampleInput are the parameters of the play_example_osc tool.
type ExampleInput struct {
	Seed int64 `json:"seed,omitempty" jsonschema:"random seed for the frequency walk (default clock-derived)"`
}

// PlayExampleOSC demonstrates basic server communication: one sine synth
// whose frequency jumps to a random value every half second for five
// seconds, then is freed.
func (d *Dispatcher) PlayExampleOSC(ctx context.Context, req *mcp.CallToolRequest, in ExampleInput) (*mcp.CallToolResult, any, error) {
	c := d.begin(ctx, "play_example_osc")
	rng := d.rng(in.Seed)

	points := make([]pattern.ControlPoint, 0, 10)
	for i := 0; i < 10; i++ {
		points = append(points, pattern.ControlPoint{
			Offset: time.Second + time.Duration(i)*500*time.Millisecond,
			Value:  300 + rng.Float64()*700,
		})
	}
	curve := pattern.ControlCurve{
		Param:  "freq",
		Base:   440,
		Points: points,
		Total:  6 * time.Second,
	}

	if err := d.player.Modulate(ctx, sc.DefaultSynth, curve); err != nil {
		return c.finish("", err)
	}
	return c.finish("Successfully sent OSC messages using standard SuperCollider commands", nil)
}
