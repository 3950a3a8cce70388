package style

import "github.com/opencode-ai/themer/color"

// ButtonPatch is the optional field set of a `[button]` table or one of its
// status sub-tables. Nil fields are inherited during the merge.
type ButtonPatch struct {
	Background    *color.Color
	TextColor     *color.Color
	BorderWidth   *float64
	BorderColor   *color.Color
	BorderRadius  *Radius
	ShadowColor   *color.Color
	ShadowOffsetX *float64
	ShadowOffsetY *float64
	ShadowBlur    *float64
}

// Merge overlays over on top of p: fields present in over win.
func (p ButtonPatch) Merge(over ButtonPatch) ButtonPatch {
	return ButtonPatch{
		Background:    mergeColor(p.Background, over.Background),
		TextColor:     mergeColor(p.TextColor, over.TextColor),
		BorderWidth:   mergeNumber(p.BorderWidth, over.BorderWidth),
		BorderColor:   mergeColor(p.BorderColor, over.BorderColor),
		BorderRadius:  mergeRadius(p.BorderRadius, over.BorderRadius),
		ShadowColor:   mergeColor(p.ShadowColor, over.ShadowColor),
		ShadowOffsetX: mergeNumber(p.ShadowOffsetX, over.ShadowOffsetX),
		ShadowOffsetY: mergeNumber(p.ShadowOffsetY, over.ShadowOffsetY),
		ShadowBlur:    mergeNumber(p.ShadowBlur, over.ShadowBlur),
	}
}

// Resolve materializes the patch into a concrete record, filling absent
// fields with the engine defaults.
func (p ButtonPatch) Resolve() Button {
	return Button{
		Background: p.Background,
		TextColor:  colorOr(p.TextColor, color.Black),
		Border:     borderOf(p.BorderWidth, p.BorderColor, p.BorderRadius),
		Shadow:     shadowOf(p.ShadowColor, p.ShadowOffsetX, p.ShadowOffsetY, p.ShadowBlur),
	}
}

// Button is a fully-resolved button appearance. A nil Background means the
// host framework's default shows through.
type Button struct {
	Background *color.Color
	TextColor  color.Color
	Border     Border
	Shadow     Shadow
}

// ButtonStyle holds the base button record plus one record per status
// sub-table declared in the theme source.
type ButtonStyle struct {
	Base     Button
	Statuses map[Status]Button
}

// ForStatus returns the record for the given status, falling back to the
// base when the theme declared no sub-table for it.
func (s *ButtonStyle) ForStatus(st Status) Button {
	if rec, ok := s.Statuses[st]; ok {
		return rec
	}
	return s.Base
}
