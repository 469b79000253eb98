package sc

import (
	"context"
	"sort"
	"time"

	"github.com/chabad360/go-osc/osc"

	"github.com/Tok/SuperColliderMCP/internal/logger"
	"github.com/Tok/SuperColliderMCP/internal/metrics"
	"github.com/Tok/SuperColliderMCP/internal/music"
	"github.com/Tok/SuperColliderMCP/internal/pattern"
)

// Sender is the transport the player writes to. *Client satisfies it; tests
// substitute a recorder.
type Sender interface {
	Send(msg *osc.Message) error
}

// Player schedules pattern playback against the wall clock. Each event
// becomes an /s_new at its start offset and an /n_free at its end. There is
// no atomicity across a pattern: a failed send surfaces immediately and
// already-sent messages stand.
type Player struct {
	sender  Sender
	ids     *nodeAllocator
	metrics *metrics.SentryMetrics
}

func NewPlayer(sender Sender) *Player {
	return &Player{sender: sender, ids: newNodeAllocator(), metrics: metrics.NewSentryMetrics()}
}

// action is one timed send in a playback timeline.
type action struct {
	at   time.Duration
	msg  *osc.Message
	free bool // node release, used for cleanup bookkeeping
	node int32
}

// Play performs a pattern on the given synth, blocking until the pattern
// completes, a send fails, or ctx is canceled. On cancellation every node
// that was started but not yet released is freed best-effort before
// returning; since each OSC message is independently complete, abandonment
// mid-pattern leaves no garbled server state.
func (p *Player) Play(ctx context.Context, pat pattern.Pattern, synth Synth) error {
	timeline := make([]action, 0, 2*len(pat.Events))
	for _, ev := range pat.Events {
		node := p.ids.Next()
		msg, err := NewSynthMessage(synth, node, ev)
		if err != nil {
			return err
		}
		timeline = append(timeline, action{at: ev.Start, msg: msg, node: node})
		timeline = append(timeline, action{at: ev.End(), msg: FreeNodeMessage(node), free: true, node: node})
	}
	return p.run(ctx, timeline, pat.Total)
}

// PlayNote triggers a single note for its duration. Used by the note CLI
// command and the play_synth tool.
func (p *Player) PlayNote(ctx context.Context, synth Synth, freq, amp float64, dur time.Duration) error {
	pat := pattern.Pattern{
		Events: []music.Event{{Freq: freq, Velocity: amp, Duration: dur}},
		Total:  dur,
	}
	return p.Play(ctx, pat, synth)
}

// Modulate starts one node and drives a control curve over it with timed
// /n_set messages, freeing the node when the curve ends.
func (p *Player) Modulate(ctx context.Context, synth Synth, curve pattern.ControlCurve) error {
	node := p.ids.Next()
	msg, err := NewSynthMessage(synth, node, music.Event{Freq: 440, Velocity: 0.3})
	if err != nil {
		return err
	}
	if curve.Param != "freq" {
		// Non-frequency targets start from the curve's base value.
		msg.Arguments = append(msg.Arguments, curve.Param, float32(curve.Base))
	}

	timeline := make([]action, 0, len(curve.Points)+2)
	timeline = append(timeline, action{at: 0, msg: msg, node: node})
	for _, pt := range curve.Points {
		timeline = append(timeline, action{
			at:   pt.Offset,
			msg:  SetParamMessage(node, curve.Param, pt.Value),
			node: node,
		})
	}
	timeline = append(timeline, action{at: curve.Total, msg: FreeNodeMessage(node), free: true, node: node})
	return p.run(ctx, timeline, curve.Total)
}

func (p *Player) run(ctx context.Context, timeline []action, total time.Duration) error {
	sort.SliceStable(timeline, func(i, j int) bool { return timeline[i].at < timeline[j].at })

	active := make(map[int32]bool)
	begin := time.Now()

	for _, act := range timeline {
		if wait := act.at - time.Since(begin); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				p.freeAll(active)
				return ctx.Err()
			case <-timer.C:
			}
		}

		if err := p.sender.Send(act.msg); err != nil {
			logger.Error("osc send failed mid-pattern", err, logger.Fields{
				"address": act.msg.Address,
				"node":    act.node,
			})
			p.freeAll(active)
			return err
		}

		if act.free {
			delete(active, act.node)
		} else if act.msg.Address == addrSynthNew {
			active[act.node] = true
		}
	}

	// Let the tail of the last event ring out.
	if wait := total - time.Since(begin); wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	p.metrics.RecordOSCSend(len(timeline), total)
	return nil
}

// freeAll releases every still-active node, ignoring send errors: this is
// cleanup on an already-failing path.
func (p *Player) freeAll(active map[int32]bool) {
	for node := range active {
		_ = p.sender.Send(FreeNodeMessage(node))
	}
}
