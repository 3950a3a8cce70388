package style

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/themer/color"
)

func ptr[T any](v T) *T {
	return &v
}

func TestButtonPatchMerge(t *testing.T) {
	base := ButtonPatch{
		Background:   ptr(color.Color{R: 0x66, G: 0xC0, B: 0xF4, A: 0xFF}),
		TextColor:    ptr(color.White),
		BorderWidth:  ptr(1.0),
		BorderRadius: ptr(UniformRadius(4)),
	}
	over := ButtonPatch{
		Background: ptr(color.Color{R: 0x77, G: 0xD0, B: 0xFF, A: 0xFF}),
	}

	merged := base.Merge(over)
	require.Equal(t, *over.Background, *merged.Background)
	require.Equal(t, color.White, *merged.TextColor)
	require.Equal(t, 1.0, *merged.BorderWidth)
	require.Equal(t, UniformRadius(4), *merged.BorderRadius)
}

func TestResolveFillsDefaults(t *testing.T) {
	btn := ButtonPatch{}.Resolve()
	require.Nil(t, btn.Background)
	require.Equal(t, color.Black, btn.TextColor)
	require.Equal(t, color.Transparent, btn.Border.Color)
	require.Equal(t, Radius{}, btn.Border.Radius)
	require.Equal(t, color.Transparent, btn.Shadow.Color)

	ti := TextInputPatch{}.Resolve()
	require.Equal(t, color.Transparent, ti.Background)
	require.Equal(t, defaultPlaceholder, ti.PlaceholderColor)
	require.Equal(t, defaultSelection, ti.SelectionColor)
}

func TestCascadeChain(t *testing.T) {
	require.Equal(t, []Status{StatusHovered}, CascadeChain(StatusHovered))
	require.Equal(t,
		[]Status{StatusChecked, StatusHovered, StatusHoveredChecked},
		CascadeChain(StatusHoveredChecked))
	require.Equal(t,
		[]Status{StatusToggled, StatusDisabled, StatusDisabledToggled},
		CascadeChain(StatusDisabledToggled))
}

func TestResolveStatusesMaterializesDeclaredOnly(t *testing.T) {
	base := CheckboxPatch{Background: ptr(color.Color{R: 0x20, G: 0x20, B: 0x20, A: 0xFF})}
	patches := map[Status]CheckboxPatch{
		StatusChecked: {IconColor: ptr(color.White)},
		StatusHoveredChecked: {
			BorderWidth: ptr(2.0),
		},
	}

	out := ResolveStatuses(base, patches, CheckboxPatch.Resolve)
	require.Len(t, out, 2)
	require.NotContains(t, out, StatusHovered)

	// The combined record cascades through the declared checked patch.
	hc := out[StatusHoveredChecked]
	require.Equal(t, color.White, hc.IconColor)
	require.Equal(t, 2.0, hc.Border.Width)
	require.Equal(t, *base.Background, hc.Background)
}

func TestResolveStatusesEmpty(t *testing.T) {
	require.Nil(t, ResolveStatuses(ButtonPatch{}, nil, ButtonPatch.Resolve))
}

func TestKindStatusSets(t *testing.T) {
	require.True(t, KindButton.HasStatus(StatusPressed))
	require.False(t, KindButton.HasStatus(StatusDragged))
	require.Empty(t, KindContainer.Statuses())
	require.Empty(t, KindProgressBar.Statuses())
	require.Len(t, KindToggler.Statuses(), 5)
}
