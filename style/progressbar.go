package style

import "github.com/opencode-ai/themer/color"

// ProgressBarPatch is the optional field set of a `[progress-bar]` table.
// Progress bars have no status sub-tables; the bar field may be a nested
// gradient table.
type ProgressBarPatch struct {
	Background   *color.Color
	Bar          *Background
	BorderWidth  *float64
	BorderColor  *color.Color
	BorderRadius *Radius
}

// Merge overlays over on top of p: fields present in over win.
func (p ProgressBarPatch) Merge(over ProgressBarPatch) ProgressBarPatch {
	return ProgressBarPatch{
		Background:   mergeColor(p.Background, over.Background),
		Bar:          mergeBackground(p.Bar, over.Bar),
		BorderWidth:  mergeNumber(p.BorderWidth, over.BorderWidth),
		BorderColor:  mergeColor(p.BorderColor, over.BorderColor),
		BorderRadius: mergeRadius(p.BorderRadius, over.BorderRadius),
	}
}

// Resolve materializes the patch into a concrete record.
func (p ProgressBarPatch) Resolve() ProgressBar {
	bar := Background{Color: color.Black}
	if p.Bar != nil {
		bar = *p.Bar
	}
	return ProgressBar{
		Background: colorOr(p.Background, color.Transparent),
		Bar:        bar,
		Border:     borderOf(p.BorderWidth, p.BorderColor, p.BorderRadius),
	}
}

// ProgressBar is a fully-resolved progress bar appearance.
type ProgressBar struct {
	Background color.Color
	Bar        Background
	Border     Border
}

// ProgressBarStyle wraps the single progress bar record; progress bars have
// no interaction statuses.
type ProgressBarStyle struct {
	Base ProgressBar
}
