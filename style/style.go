// Package style defines the resolved widget style records produced by theme
// construction, the status patch types they are merged from, and gradient
// validation. Everything here holds concrete colors only; variable references
// are gone by the time these types are built.
package style

import "github.com/opencode-ai/themer/color"

// Kind identifies a supported widget section. Sections outside this closed
// set are rejected when the theme is built.
type Kind string

const (
	KindButton      Kind = "button"
	KindCheckbox    Kind = "checkbox"
	KindContainer   Kind = "container"
	KindProgressBar Kind = "progress-bar"
	KindRadio       Kind = "radio"
	KindSlider      Kind = "slider"
	KindTextInput   Kind = "text-input"
	KindToggler     Kind = "toggler"
)

// Kinds lists every supported widget section, in section order.
func Kinds() []Kind {
	return []Kind{
		KindButton, KindCheckbox, KindContainer, KindProgressBar,
		KindRadio, KindSlider, KindTextInput, KindToggler,
	}
}

// Status names an interaction-state sub-table within a widget section.
type Status string

const (
	StatusHovered         Status = "hovered"
	StatusPressed         Status = "pressed"
	StatusDisabled        Status = "disabled"
	StatusChecked         Status = "checked"
	StatusHoveredChecked  Status = "hovered-checked"
	StatusDisabledChecked Status = "disabled-checked"
	StatusSelected        Status = "selected"
	StatusHoveredSelected Status = "hovered-selected"
	StatusDragged         Status = "dragged"
	StatusFocused         Status = "focused"
	StatusToggled         Status = "toggled"
	StatusHoveredToggled  Status = "hovered-toggled"
	StatusDisabledToggled Status = "disabled-toggled"
)

// Statuses returns the closed set of status sub-tables the widget kind
// accepts. Container and progress-bar have none.
func (k Kind) Statuses() []Status {
	switch k {
	case KindButton:
		return []Status{StatusHovered, StatusPressed, StatusDisabled}
	case KindCheckbox:
		return []Status{StatusChecked, StatusHovered, StatusHoveredChecked, StatusDisabled, StatusDisabledChecked}
	case KindRadio:
		return []Status{StatusSelected, StatusHovered, StatusHoveredSelected}
	case KindSlider:
		return []Status{StatusHovered, StatusDragged}
	case KindTextInput:
		return []Status{StatusFocused, StatusDisabled}
	case KindToggler:
		return []Status{StatusToggled, StatusHovered, StatusHoveredToggled, StatusDisabled, StatusDisabledToggled}
	}
	return nil
}

// HasStatus reports whether name is a valid status sub-table for the kind.
func (k Kind) HasStatus(name Status) bool {
	for _, s := range k.Statuses() {
		if s == name {
			return true
		}
	}
	return false
}

// Radius describes per-corner border rounding. Theme sources may write a
// single number (uniform) or a 4-element array ordered top-left, top-right,
// bottom-right, bottom-left.
type Radius struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// UniformRadius rounds all four corners equally.
func UniformRadius(v float64) Radius {
	return Radius{TopLeft: v, TopRight: v, BottomRight: v, BottomLeft: v}
}

// Border groups the border fields shared by most widget records.
type Border struct {
	Width  float64
	Color  color.Color
	Radius Radius
}

// Shadow groups the drop-shadow fields shared by button and container.
type Shadow struct {
	Color   color.Color
	OffsetX float64
	OffsetY float64
	Blur    float64
}

// Background is either a flat color or a linear gradient. Gradient is nil
// for the flat case.
type Background struct {
	Color    color.Color
	Gradient *Gradient
}

// IsGradient reports whether the background carries a gradient.
func (b Background) IsGradient() bool {
	return b.Gradient != nil
}

func mergeColor(base, over *color.Color) *color.Color {
	if over != nil {
		return over
	}
	return base
}

func mergeNumber(base, over *float64) *float64 {
	if over != nil {
		return over
	}
	return base
}

func mergeRadius(base, over *Radius) *Radius {
	if over != nil {
		return over
	}
	return base
}

func mergeBackground(base, over *Background) *Background {
	if over != nil {
		return over
	}
	return base
}

func colorOr(c *color.Color, fallback color.Color) color.Color {
	if c != nil {
		return *c
	}
	return fallback
}

func numberOr(n *float64, fallback float64) float64 {
	if n != nil {
		return *n
	}
	return fallback
}

func radiusOr(r *Radius) Radius {
	if r != nil {
		return *r
	}
	return Radius{}
}

func borderOf(width *float64, col *color.Color, radius *Radius) Border {
	return Border{
		Width:  numberOr(width, 0),
		Color:  colorOr(col, color.Transparent),
		Radius: radiusOr(radius),
	}
}

func shadowOf(col *color.Color, offsetX, offsetY, blur *float64) Shadow {
	return Shadow{
		Color:   colorOr(col, color.Transparent),
		OffsetX: numberOr(offsetX, 0),
		OffsetY: numberOr(offsetY, 0),
		Blur:    numberOr(blur, 0),
	}
}
