// Package tools exposes the bridge's capabilities as MCP tools. Every
// handler validates its parameters fully before generating events or
// touching the network, so an invalid call never produces partial output.
package tools

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Tok/SuperColliderMCP/internal/logger"
	"github.com/Tok/SuperColliderMCP/internal/metrics"
	"github.com/Tok/SuperColliderMCP/internal/music"
	"github.com/Tok/SuperColliderMCP/internal/pattern"
	"github.com/Tok/SuperColliderMCP/internal/sc"
)

// player is the playback surface the dispatcher drives. *sc.Player
// implements it; tests install a recorder that captures calls without
// sleeping through patterns.
type player interface {
	Play(ctx context.Context, pat pattern.Pattern, synth sc.Synth) error
	PlayNote(ctx context.Context, synth sc.Synth, freq, amp float64, dur time.Duration) error
	Modulate(ctx context.Context, synth sc.Synth, curve pattern.ControlCurve) error
}

// Dispatcher owns no musical state: every invocation generates, plays and
// forgets. The playback surface is the only shared resource.
type Dispatcher struct {
	player  player
	metrics *metrics.SentryMetrics
}

func NewDispatcher(p player) *Dispatcher {
	return &Dispatcher{player: p, metrics: metrics.NewSentryMetrics()}
}

// rng returns the pseudo-random source for one invocation: seeded from the
// request when the caller wants reproducible output, from the clock
// otherwise.
func (d *Dispatcher) rng(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// call tracks one tool invocation for logging and metrics.
type call struct {
	d         *Dispatcher
	ctx       context.Context
	tool      string
	requestID string
	started   time.Time
}

func (d *Dispatcher) begin(ctx context.Context, tool string) *call {
	return &call{
		d:         d,
		ctx:       ctx,
		tool:      tool,
		requestID: uuid.New().String(),
		started:   time.Now(),
	}
}

// finish converts a handler outcome into an MCP result. Validation failures
// become IsError tool results so the calling agent can correct its
// parameters; transport and internal failures propagate as protocol errors.
func (c *call) finish(msg string, err error) (*mcp.CallToolResult, any, error) {
	duration := time.Since(c.started)

	if err != nil {
		var verr *music.ValidationError
		if errors.As(err, &verr) {
			logger.Warn("tool call rejected", logger.Fields{
				"request_id": c.requestID,
				"tool":       c.tool,
				"param":      verr.Param,
				"detail":     verr.Detail,
			})
			c.d.metrics.RecordToolCall(c.ctx, c.tool, duration, "rejected")
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
			}, nil, nil
		}

		logger.Error("tool call failed", err, logger.Fields{
			"request_id": c.requestID,
			"tool":       c.tool,
		})
		c.d.metrics.RecordToolCall(c.ctx, c.tool, duration, "failed")
		return nil, nil, err
	}

	logger.Info("tool call completed", logger.Fields{
		"request_id":  c.requestID,
		"tool":        c.tool,
		"duration_ms": duration.Milliseconds(),
	})
	c.d.metrics.RecordToolCall(c.ctx, c.tool, duration, "ok")
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}, nil, nil
}
