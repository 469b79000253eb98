package pattern

import (
	"math/rand"
	"sort"
	"time"

	"github.com/Tok/SuperColliderMCP/internal/music"
)

// DrumConfig describes a drum pattern. Beats may exceed the 16-step grid, in
// which case the grid loops.
type DrumConfig struct {
	Pattern string
	Beats   int
	Tempo   float64
}

// drumVoice is a percussion voice rendered on the default synth: the kick is
// a low sine hit, the snare a mid hit, the hihat a high one.
type drumVoice struct {
	name     string
	freq     float64
	velocity float64
}

var drumVoices = []drumVoice{
	{name: "kick", freq: 60, velocity: 0.5},
	{name: "snare", freq: 300, velocity: 0.3},
	{name: "hihat", freq: 1200, velocity: 0.2},
}

// drumGrids holds the 16-step hit grids per style, indexed voice-by-voice in
// drumVoices order. 1 = hit, 0 = rest.
var drumGrids = map[string][3][16]int{
	"four_on_floor": {
		{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	},
	"breakbeat": {
		{1, 0, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0},
		{0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 1},
		{1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0, 1, 0},
	},
	"shuffle": {
		{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0},
		{1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
	},
}

// DrumPatternNames returns the supported pattern names, sorted, including
// the generated "random" style.
func DrumPatternNames() []string {
	names := make([]string, 0, len(drumGrids)+1)
	for name := range drumGrids {
		names = append(names, name)
	}
	names = append(names, "random")
	sort.Strings(names)
	return names
}

// Drums renders a named drum style over the requested beat count. The
// "random" style draws fresh grids from rng, guaranteeing at least one kick
// and one snare so the result is never silent.
func Drums(cfg DrumConfig, rng *rand.Rand) (Pattern, error) {
	if err := validateTempo(cfg.Tempo); err != nil {
		return Pattern{}, err
	}
	if cfg.Beats < 0 {
		return Pattern{}, music.Invalidf("beats", "must not be negative, got %d", cfg.Beats)
	}

	var grids [3][16]int
	switch cfg.Pattern {
	case "random":
		grids = randomGrids(rng)
	default:
		var ok bool
		grids, ok = drumGrids[cfg.Pattern]
		if !ok {
			return Pattern{}, music.Invalidf("pattern", "unknown drum pattern %q, supported: %v", cfg.Pattern, DrumPatternNames())
		}
	}

	beat := BeatDuration(cfg.Tempo)
	total := time.Duration(cfg.Beats) * beat

	var events []music.Event
	for b := 0; b < cfg.Beats; b++ {
		step := b % 16
		for v, voice := range drumVoices {
			if grids[v][step] == 0 {
				continue
			}
			events = append(events, music.Event{
				Freq:     voice.freq,
				Velocity: voice.velocity,
				Start:    time.Duration(b) * beat,
				Duration: beat * 9 / 10,
			})
		}
	}

	return Pattern{Events: events, Total: total}, nil
}

func randomGrids(rng *rand.Rand) [3][16]int {
	var grids [3][16]int
	for v := range grids {
		for s := range grids[v] {
			grids[v][s] = rng.Intn(2)
		}
	}
	// Never an entirely silent kick or snare line.
	if rowSum(grids[0]) == 0 {
		grids[0][0] = 1
	}
	if rowSum(grids[1]) == 0 {
		grids[1][4] = 1
	}
	return grids
}

func rowSum(row [16]int) int {
	sum := 0
	for _, v := range row {
		sum += v
	}
	return sum
}
