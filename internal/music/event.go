package music

import (
	"fmt"
	"time"
)

// Event is a single playable note. Frequencies are in Hz, Velocity is an
// amplitude in [0,1], Pan is a stereo position in [-1,1]. Start is the offset
// from the beginning of the pattern. Events are immutable once generated.
type Event struct {
	Freq     float64
	Velocity float64
	Pan      float64
	Start    time.Duration
	Duration time.Duration
}

// End returns the offset at which the event stops sounding.
func (e Event) End() time.Duration {
	return e.Start + e.Duration
}

// ValidationError reports a rejected tool or generator parameter. It is
// always raised before any network I/O happens.
type ValidationError struct {
	Param  string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Detail)
}

// Invalidf builds a ValidationError with a formatted detail message.
func Invalidf(param, format string, args ...any) *ValidationError {
	return &ValidationError{Param: param, Detail: fmt.Sprintf(format, args...)}
}
