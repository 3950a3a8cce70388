package style

import "github.com/opencode-ai/themer/color"

// TogglerPatch is the optional field set of a `[toggler]` table or one of
// its status sub-tables.
type TogglerPatch struct {
	Background            *color.Color
	Foreground            *color.Color
	BackgroundBorderWidth *float64
	BackgroundBorderColor *color.Color
	ForegroundBorderWidth *float64
	ForegroundBorderColor *color.Color
	BorderRadius          *float64
	TextColor             *color.Color
}

// Merge overlays over on top of p: fields present in over win.
func (p TogglerPatch) Merge(over TogglerPatch) TogglerPatch {
	return TogglerPatch{
		Background:            mergeColor(p.Background, over.Background),
		Foreground:            mergeColor(p.Foreground, over.Foreground),
		BackgroundBorderWidth: mergeNumber(p.BackgroundBorderWidth, over.BackgroundBorderWidth),
		BackgroundBorderColor: mergeColor(p.BackgroundBorderColor, over.BackgroundBorderColor),
		ForegroundBorderWidth: mergeNumber(p.ForegroundBorderWidth, over.ForegroundBorderWidth),
		ForegroundBorderColor: mergeColor(p.ForegroundBorderColor, over.ForegroundBorderColor),
		BorderRadius:          mergeNumber(p.BorderRadius, over.BorderRadius),
		TextColor:             mergeColor(p.TextColor, over.TextColor),
	}
}

// Resolve materializes the patch into a concrete record. Nil BorderRadius
// and TextColor mean the host framework's defaults show through.
func (p TogglerPatch) Resolve() Toggler {
	return Toggler{
		Background:            colorOr(p.Background, color.Transparent),
		Foreground:            colorOr(p.Foreground, color.Black),
		BackgroundBorderWidth: numberOr(p.BackgroundBorderWidth, 0),
		BackgroundBorderColor: colorOr(p.BackgroundBorderColor, color.Transparent),
		ForegroundBorderWidth: numberOr(p.ForegroundBorderWidth, 0),
		ForegroundBorderColor: colorOr(p.ForegroundBorderColor, color.Transparent),
		BorderRadius:          p.BorderRadius,
		TextColor:             p.TextColor,
	}
}

// Toggler is a fully-resolved toggler appearance.
type Toggler struct {
	Background            color.Color
	Foreground            color.Color
	BackgroundBorderWidth float64
	BackgroundBorderColor color.Color
	ForegroundBorderWidth float64
	ForegroundBorderColor color.Color
	BorderRadius          *float64
	TextColor             *color.Color
}

// TogglerStyle holds the base toggler record plus one record per declared
// status sub-table.
type TogglerStyle struct {
	Base     Toggler
	Statuses map[Status]Toggler
}

// ForStatus returns the record for the given status, falling back to the
// base when the theme declared no sub-table for it.
func (s *TogglerStyle) ForStatus(st Status) Toggler {
	if rec, ok := s.Statuses[st]; ok {
		return rec
	}
	return s.Base
}
