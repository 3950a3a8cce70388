package style

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/themer/color"
)

func stops(offsets ...float64) []GradientStop {
	out := make([]GradientStop, len(offsets))
	for i, off := range offsets {
		out[i] = GradientStop{Offset: off, Color: color.Black}
	}
	return out
}

func TestGradientValidateStopCount(t *testing.T) {
	var count *StopCountError

	err := Gradient{Stops: stops(0.5)}.Validate()
	require.ErrorAs(t, err, &count)
	require.Equal(t, 1, count.Count)

	err = Gradient{Stops: stops(0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8)}.Validate()
	require.ErrorAs(t, err, &count)
	require.Equal(t, 9, count.Count)

	require.NoError(t, Gradient{Stops: stops(0, 1)}.Validate())
	require.NoError(t, Gradient{Stops: stops(0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 1)}.Validate())
}

func TestGradientValidateOffsets(t *testing.T) {
	var offset *OffsetError

	err := Gradient{Stops: stops(-0.01, 1)}.Validate()
	require.ErrorAs(t, err, &offset)
	require.Equal(t, -0.01, offset.Offset)

	err = Gradient{Stops: stops(0, 1.01)}.Validate()
	require.ErrorAs(t, err, &offset)

	require.NoError(t, Gradient{Stops: stops(0, 0)}.Validate())
	require.NoError(t, Gradient{Stops: stops(1, 1)}.Validate())
}

func TestGradientValidateDoesNotRequireSortedStops(t *testing.T) {
	require.NoError(t, Gradient{Stops: stops(0.9, 0.1, 0.5)}.Validate())
}
