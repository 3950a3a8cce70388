package style

import "github.com/opencode-ai/themer/color"

// CheckboxPatch is the optional field set of a `[checkbox]` table or one of
// its status sub-tables.
type CheckboxPatch struct {
	Background   *color.Color
	IconColor    *color.Color
	BorderWidth  *float64
	BorderColor  *color.Color
	BorderRadius *Radius
	TextColor    *color.Color
}

// Merge overlays over on top of p: fields present in over win.
func (p CheckboxPatch) Merge(over CheckboxPatch) CheckboxPatch {
	return CheckboxPatch{
		Background:   mergeColor(p.Background, over.Background),
		IconColor:    mergeColor(p.IconColor, over.IconColor),
		BorderWidth:  mergeNumber(p.BorderWidth, over.BorderWidth),
		BorderColor:  mergeColor(p.BorderColor, over.BorderColor),
		BorderRadius: mergeRadius(p.BorderRadius, over.BorderRadius),
		TextColor:    mergeColor(p.TextColor, over.TextColor),
	}
}

// Resolve materializes the patch into a concrete record.
func (p CheckboxPatch) Resolve() Checkbox {
	return Checkbox{
		Background: colorOr(p.Background, color.Transparent),
		IconColor:  colorOr(p.IconColor, color.Black),
		Border:     borderOf(p.BorderWidth, p.BorderColor, p.BorderRadius),
		TextColor:  p.TextColor,
	}
}

// Checkbox is a fully-resolved checkbox appearance. A nil TextColor means
// the label inherits the palette text color.
type Checkbox struct {
	Background color.Color
	IconColor  color.Color
	Border     Border
	TextColor  *color.Color
}

// CheckboxStyle holds the base checkbox record plus one record per declared
// status sub-table. Combined statuses like hovered-checked cascade through
// the single-axis patches before the combined patch is applied.
type CheckboxStyle struct {
	Base     Checkbox
	Statuses map[Status]Checkbox
}

// ForStatus returns the record for the given status, falling back to the
// base when the theme declared no sub-table for it.
func (s *CheckboxStyle) ForStatus(st Status) Checkbox {
	if rec, ok := s.Statuses[st]; ok {
		return rec
	}
	return s.Base
}
