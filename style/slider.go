package style

import "github.com/opencode-ai/themer/color"

// HandleShape selects the slider handle geometry.
type HandleShape string

const (
	HandleCircle    HandleShape = "circle"
	HandleRectangle HandleShape = "rectangle"
)

// SliderPatch is the optional field set of a `[slider]` table or one of its
// status sub-tables.
type SliderPatch struct {
	RailColor1         *color.Color
	RailColor2         *color.Color
	RailWidth          *float64
	RailBorderRadius   *Radius
	HandleShape        *HandleShape
	HandleRadius       *float64
	HandleWidth        *float64
	HandleBorderRadius *Radius
	HandleBackground   *Background
	HandleBorderWidth  *float64
	HandleBorderColor  *color.Color
}

// Merge overlays over on top of p: fields present in over win.
func (p SliderPatch) Merge(over SliderPatch) SliderPatch {
	merged := SliderPatch{
		RailColor1:         mergeColor(p.RailColor1, over.RailColor1),
		RailColor2:         mergeColor(p.RailColor2, over.RailColor2),
		RailWidth:          mergeNumber(p.RailWidth, over.RailWidth),
		RailBorderRadius:   mergeRadius(p.RailBorderRadius, over.RailBorderRadius),
		HandleRadius:       mergeNumber(p.HandleRadius, over.HandleRadius),
		HandleWidth:        mergeNumber(p.HandleWidth, over.HandleWidth),
		HandleBorderRadius: mergeRadius(p.HandleBorderRadius, over.HandleBorderRadius),
		HandleBackground:   mergeBackground(p.HandleBackground, over.HandleBackground),
		HandleBorderWidth:  mergeNumber(p.HandleBorderWidth, over.HandleBorderWidth),
		HandleBorderColor:  mergeColor(p.HandleBorderColor, over.HandleBorderColor),
	}
	merged.HandleShape = p.HandleShape
	if over.HandleShape != nil {
		merged.HandleShape = over.HandleShape
	}
	return merged
}

// Resolve materializes the patch into a concrete record. The handle shape
// defaults to a circle of radius 7; rectangle handles default to width 8
// with a radius of 2.
func (p SliderPatch) Resolve() Slider {
	shape := HandleCircle
	if p.HandleShape != nil {
		shape = *p.HandleShape
	}

	handle := SliderHandle{
		Shape:       shape,
		Background:  Background{Color: color.Black},
		BorderWidth: numberOr(p.HandleBorderWidth, 0),
		BorderColor: colorOr(p.HandleBorderColor, color.Transparent),
	}
	if p.HandleBackground != nil {
		handle.Background = *p.HandleBackground
	}
	switch shape {
	case HandleRectangle:
		handle.Width = numberOr(p.HandleWidth, 8)
		handle.BorderRadius = UniformRadius(2)
		if p.HandleBorderRadius != nil {
			handle.BorderRadius = *p.HandleBorderRadius
		}
	default:
		handle.Radius = numberOr(p.HandleRadius, 7)
	}

	return Slider{
		Rail: SliderRail{
			Color1:       colorOr(p.RailColor1, color.Black),
			Color2:       colorOr(p.RailColor2, color.Transparent),
			Width:        numberOr(p.RailWidth, 4),
			BorderRadius: radiusOr(p.RailBorderRadius),
		},
		Handle: handle,
	}
}

// SliderRail is the track the handle slides along. Color1 fills the played
// side, Color2 the remaining side.
type SliderRail struct {
	Color1       color.Color
	Color2       color.Color
	Width        float64
	BorderRadius Radius
}

// SliderHandle is the draggable grip. Radius applies to circle handles;
// Width and BorderRadius to rectangle handles.
type SliderHandle struct {
	Shape        HandleShape
	Radius       float64
	Width        float64
	BorderRadius Radius
	Background   Background
	BorderWidth  float64
	BorderColor  color.Color
}

// Slider is a fully-resolved slider appearance.
type Slider struct {
	Rail   SliderRail
	Handle SliderHandle
}

// SliderStyle holds the base slider record plus one record per declared
// status sub-table.
type SliderStyle struct {
	Base     Slider
	Statuses map[Status]Slider
}

// ForStatus returns the record for the given status, falling back to the
// base when the theme declared no sub-table for it.
func (s *SliderStyle) ForStatus(st Status) Slider {
	if rec, ok := s.Statuses[st]; ok {
		return rec
	}
	return s.Base
}
