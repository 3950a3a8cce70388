package style

import "github.com/opencode-ai/themer/color"

// ContainerPatch is the optional field set of a `[container]` table.
// Containers have no status sub-tables.
type ContainerPatch struct {
	Background    *Background
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
func (p ContainerPatch) Merge(over ContainerPatch) ContainerPatch {
	return ContainerPatch{
		Background:    mergeBackground(p.Background, over.Background),
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

// Resolve materializes the patch into a concrete record.
func (p ContainerPatch) Resolve() Container {
	return Container{
		Background: p.Background,
		TextColor:  p.TextColor,
		Border:     borderOf(p.BorderWidth, p.BorderColor, p.BorderRadius),
		Shadow:     shadowOf(p.ShadowColor, p.ShadowOffsetX, p.ShadowOffsetY, p.ShadowBlur),
	}
}

// Container is a fully-resolved container appearance. Nil Background and
// TextColor mean the host framework's defaults show through. Background may
// carry a gradient.
type Container struct {
	Background *Background
	TextColor  *color.Color
	Border     Border
	Shadow     Shadow
}

// ContainerStyle wraps the single container record; containers have no
// interaction statuses.
type ContainerStyle struct {
	Base Container
}
