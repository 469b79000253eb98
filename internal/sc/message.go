package sc

import (
	"github.com/chabad360/go-osc/osc"

	"github.com/Tok/SuperColliderMCP/internal/music"
)

// SuperCollider server command addresses.
const (
	addrSynthNew = "/s_new"
	addrNodeSet  = "/n_set"
	addrNodeFree = "/n_free"
)

// NewSynthMessage builds the /s_new message that triggers one event on a
// synth definition. Argument order is fixed: definition name, node ID, add
// action (0 = head), target group (0 = default), then control name/value
// pairs: freq, amp, pan, the synth type's extras, and any nonzero effect
// sends in reverb/delay/distortion/filter order.
func NewSynthMessage(synth Synth, nodeID int32, ev music.Event) (*osc.Message, error) {
	def, ok := synthDefs[synth.Type]
	if !ok {
		return nil, music.Invalidf("synth_type", "unknown synth type %q, supported: %v", synth.Type, SynthNames())
	}

	msg := osc.NewMessage(addrSynthNew, def.defName, nodeID, int32(0), int32(0),
		"freq", float32(ev.Freq),
		"amp", float32(ev.Velocity),
	)
	if ev.Pan != 0 {
		msg.Arguments = append(msg.Arguments, "pan", float32(ev.Pan))
	}
	for _, extra := range def.extras {
		msg.Arguments = append(msg.Arguments, extra.key, extra.value)
	}
	for _, send := range []kv{
		{"reverb", float32(synth.Effects.Reverb)},
		{"delay", float32(synth.Effects.Delay)},
		{"distortion", float32(synth.Effects.Distortion)},
		{"filter", float32(synth.Effects.Filter)},
	} {
		if send.value > 0 {
			msg.Arguments = append(msg.Arguments, send.key, send.value)
		}
	}
	return msg, nil
}

// SetParamMessage builds the /n_set message that changes one control on a
// running node.
func SetParamMessage(nodeID int32, param string, value float64) *osc.Message {
	return osc.NewMessage(addrNodeSet, nodeID, param, float32(value))
}

// FreeNodeMessage builds the /n_free message that releases a node.
func FreeNodeMessage(nodeID int32) *osc.Message {
	return osc.NewMessage(addrNodeFree, nodeID)
}
