package style

import "github.com/opencode-ai/themer/color"

// RadioPatch is the optional field set of a `[radio]` table or one of its
// status sub-tables. Radios are circular, so there is no radius field.
type RadioPatch struct {
	Background  *color.Color
	DotColor    *color.Color
	BorderWidth *float64
	BorderColor *color.Color
	TextColor   *color.Color
}

// Merge overlays over on top of p: fields present in over win.
func (p RadioPatch) Merge(over RadioPatch) RadioPatch {
	return RadioPatch{
		Background:  mergeColor(p.Background, over.Background),
		DotColor:    mergeColor(p.DotColor, over.DotColor),
		BorderWidth: mergeNumber(p.BorderWidth, over.BorderWidth),
		BorderColor: mergeColor(p.BorderColor, over.BorderColor),
		TextColor:   mergeColor(p.TextColor, over.TextColor),
	}
}

// Resolve materializes the patch into a concrete record.
func (p RadioPatch) Resolve() Radio {
	return Radio{
		Background:  colorOr(p.Background, color.Transparent),
		DotColor:    colorOr(p.DotColor, color.Black),
		BorderWidth: numberOr(p.BorderWidth, 0),
		BorderColor: colorOr(p.BorderColor, color.Transparent),
		TextColor:   p.TextColor,
	}
}

// Radio is a fully-resolved radio button appearance. A nil TextColor means
// the label inherits the palette text color.
type Radio struct {
	Background  color.Color
	DotColor    color.Color
	BorderWidth float64
	BorderColor color.Color
	TextColor   *color.Color
}

// RadioStyle holds the base radio record plus one record per declared
// status sub-table.
type RadioStyle struct {
	Base     Radio
	Statuses map[Status]Radio
}

// ForStatus returns the record for the given status, falling back to the
// base when the theme declared no sub-table for it.
func (s *RadioStyle) ForStatus(st Status) Radio {
	if rec, ok := s.Statuses[st]; ok {
		return rec
	}
	return s.Base
}
