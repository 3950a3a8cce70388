package style

import "github.com/opencode-ai/themer/color"

// Engine defaults for text input foreground colors, matching the host
// framework's stock appearance.
var (
	defaultPlaceholder = color.Color{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	defaultSelection   = color.Color{R: 0x33, G: 0x99, B: 0xFF, A: 0x4D}
)

// TextInputPatch is the optional field set of a `[text-input]` table or one
// of its status sub-tables.
type TextInputPatch struct {
	Background       *color.Color
	BorderWidth      *float64
	BorderColor      *color.Color
	BorderRadius     *Radius
	IconColor        *color.Color
	PlaceholderColor *color.Color
	ValueColor       *color.Color
	SelectionColor   *color.Color
}

// Merge overlays over on top of p: fields present in over win.
func (p TextInputPatch) Merge(over TextInputPatch) TextInputPatch {
	return TextInputPatch{
		Background:       mergeColor(p.Background, over.Background),
		BorderWidth:      mergeNumber(p.BorderWidth, over.BorderWidth),
		BorderColor:      mergeColor(p.BorderColor, over.BorderColor),
		BorderRadius:     mergeRadius(p.BorderRadius, over.BorderRadius),
		IconColor:        mergeColor(p.IconColor, over.IconColor),
		PlaceholderColor: mergeColor(p.PlaceholderColor, over.PlaceholderColor),
		ValueColor:       mergeColor(p.ValueColor, over.ValueColor),
		SelectionColor:   mergeColor(p.SelectionColor, over.SelectionColor),
	}
}

// Resolve materializes the patch into a concrete record.
func (p TextInputPatch) Resolve() TextInput {
	return TextInput{
		Background:       colorOr(p.Background, color.Transparent),
		Border:           borderOf(p.BorderWidth, p.BorderColor, p.BorderRadius),
		IconColor:        colorOr(p.IconColor, color.Black),
		PlaceholderColor: colorOr(p.PlaceholderColor, defaultPlaceholder),
		ValueColor:       colorOr(p.ValueColor, color.Black),
		SelectionColor:   colorOr(p.SelectionColor, defaultSelection),
	}
}

// TextInput is a fully-resolved text input appearance.
type TextInput struct {
	Background       color.Color
	Border           Border
	IconColor        color.Color
	PlaceholderColor color.Color
	ValueColor       color.Color
	SelectionColor   color.Color
}

// TextInputStyle holds the base text input record plus one record per
// declared status sub-table.
type TextInputStyle struct {
	Base     TextInput
	Statuses map[Status]TextInput
}

// ForStatus returns the record for the given status, falling back to the
// base when the theme declared no sub-table for it.
func (s *TextInputStyle) ForStatus(st Status) TextInput {
	if rec, ok := s.Statuses[st]; ok {
		return rec
	}
	return s.Base
}
