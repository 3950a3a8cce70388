package style

import (
	"fmt"

	"github.com/opencode-ai/themer/color"
)

// Gradient stop count limits, inclusive.
const (
	MinGradientStops = 2
	MaxGradientStops = 8
)

// Gradient describes a linear gradient: an angle in degrees and an ordered
// list of color stops. Stops keep their declaration order; the engine never
// sorts them by offset.
type Gradient struct {
	Angle float64
	Stops []GradientStop
}

// GradientStop is one offset/color pair. Offset is a fraction in [0,1].
type GradientStop struct {
	Offset float64
	Color  color.Color
}

// StopCountError reports a gradient outside the 2..8 stop range.
type StopCountError struct {
	Count int
}

func (e *StopCountError) Error() string {
	return fmt.Sprintf("gradient must have between %d and %d stops, got %d",
		MinGradientStops, MaxGradientStops, e.Count)
}

// OffsetError reports a gradient stop offset outside [0,1].
type OffsetError struct {
	Offset float64
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("gradient stop offset must be within [0.0, 1.0], got %v", e.Offset)
}

// Validate checks the structural constraints on the gradient: stop count in
// [2,8] and every offset in [0,1]. Declaration order is not checked.
func (g Gradient) Validate() error {
	if len(g.Stops) < MinGradientStops || len(g.Stops) > MaxGradientStops {
		return &StopCountError{Count: len(g.Stops)}
	}
	for _, stop := range g.Stops {
		if stop.Offset < 0.0 || stop.Offset > 1.0 {
			return &OffsetError{Offset: stop.Offset}
		}
	}
	return nil
}
