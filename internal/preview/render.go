// Package preview renders resolved themes in the terminal, either as a
// one-shot dump or as an interactive browser.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/themer"
	colorpkg "github.com/opencode-ai/themer/color"
	"github.com/opencode-ai/themer/style"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// Render produces a full plain-scrolling dump of the theme: palette,
// variables, and every widget with its declared statuses.
func Render(theme *themer.Theme) string {
	var b strings.Builder

	fmt.Fprintln(&b, titleStyle.Render(fmt.Sprintf("Theme: %s", theme.Name())))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, sectionStyle.Render("palette"))
	b.WriteString(renderPalette(theme.Palette()))

	if font := theme.Font(); font != nil {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, sectionStyle.Render("font"))
		b.WriteString(renderFont(font))
	}

	for _, kind := range style.Kinds() {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, sectionStyle.Render(string(kind)))
		b.WriteString(renderKind(theme, kind))
	}

	return b.String()
}

// RenderKind renders a single widget section, used by the interactive
// browser one tab at a time.
func RenderKind(theme *themer.Theme, kind style.Kind) string {
	return renderKind(theme, kind)
}

func renderPalette(p themer.Palette) string {
	var b strings.Builder
	for _, role := range []struct {
		name string
		c    colorpkg.Color
	}{
		{"background", p.Background},
		{"text", p.Text},
		{"primary", p.Primary},
		{"success", p.Success},
		{"warning", p.Warning},
		{"danger", p.Danger},
	} {
		fmt.Fprintf(&b, "  %-12s %s\n", role.name, swatch(role.c))
	}
	return b.String()
}

func renderFont(f *themer.Font) string {
	var b strings.Builder
	if f.Family != "" {
		fmt.Fprintf(&b, "  family   %s\n", f.Family)
	}
	fmt.Fprintf(&b, "  weight   %s\n", f.Weight)
	fmt.Fprintf(&b, "  style    %s\n", f.Style)
	fmt.Fprintf(&b, "  stretch  %s\n", f.Stretch)
	return b.String()
}

func renderKind(theme *themer.Theme, kind style.Kind) string {
	notDeclared := fmt.Sprintf("  %s\n", mutedStyle.Render("(not declared, host defaults apply)"))
	switch kind {
	case style.KindButton:
		if s := theme.Button(); s != nil {
			return renderStatuses(s.Base, s.Statuses, kind, renderButton)
		}
	case style.KindCheckbox:
		if s := theme.Checkbox(); s != nil {
			return renderStatuses(s.Base, s.Statuses, kind, renderCheckbox)
		}
	case style.KindContainer:
		if s := theme.Container(); s != nil {
			return renderRecord("base", renderContainer(s.Base))
		}
	case style.KindProgressBar:
		if s := theme.ProgressBar(); s != nil {
			return renderRecord("base", renderProgressBar(s.Base))
		}
	case style.KindRadio:
		if s := theme.Radio(); s != nil {
			return renderStatuses(s.Base, s.Statuses, kind, renderRadio)
		}
	case style.KindSlider:
		if s := theme.Slider(); s != nil {
			return renderStatuses(s.Base, s.Statuses, kind, renderSlider)
		}
	case style.KindTextInput:
		if s := theme.TextInput(); s != nil {
			return renderStatuses(s.Base, s.Statuses, kind, renderTextInput)
		}
	case style.KindToggler:
		if s := theme.Toggler(); s != nil {
			return renderStatuses(s.Base, s.Statuses, kind, renderToggler)
		}
	}
	return notDeclared
}

func renderStatuses[R any](base R, statuses map[style.Status]R, kind style.Kind, render func(R) []string) string {
	var b strings.Builder
	b.WriteString(renderRecord("base", render(base)))
	for _, st := range kind.Statuses() {
		rec, ok := statuses[st]
		if !ok {
			continue
		}
		b.WriteString(renderRecord(string(st), render(rec)))
	}
	return b.String()
}

func renderRecord(label string, lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s\n", mutedStyle.Render(label))
	for _, line := range lines {
		fmt.Fprintf(&b, "    %s\n", line)
	}
	return b.String()
}

func renderButton(r style.Button) []string {
	lines := []string{
		field("background", optSwatch(r.Background)),
		field("text-color", swatch(r.TextColor)),
	}
	lines = append(lines, borderLines(r.Border)...)
	lines = append(lines, shadowLines(r.Shadow)...)
	return lines
}

func renderCheckbox(r style.Checkbox) []string {
	lines := []string{
		field("background", swatch(r.Background)),
		field("icon-color", swatch(r.IconColor)),
	}
	lines = append(lines, borderLines(r.Border)...)
	if r.TextColor != nil {
		lines = append(lines, field("text-color", swatch(*r.TextColor)))
	}
	return lines
}

func renderContainer(r style.Container) []string {
	var lines []string
	if r.Background != nil {
		lines = append(lines, field("background", background(*r.Background)))
	}
	if r.TextColor != nil {
		lines = append(lines, field("text-color", swatch(*r.TextColor)))
	}
	lines = append(lines, borderLines(r.Border)...)
	lines = append(lines, shadowLines(r.Shadow)...)
	if len(lines) == 0 {
		lines = []string{mutedStyle.Render("(defaults)")}
	}
	return lines
}

func renderProgressBar(r style.ProgressBar) []string {
	lines := []string{
		field("background", swatch(r.Background)),
		field("bar", background(r.Bar)),
	}
	return append(lines, borderLines(r.Border)...)
}

func renderRadio(r style.Radio) []string {
	lines := []string{
		field("background", swatch(r.Background)),
		field("dot-color", swatch(r.DotColor)),
		field("border", fmt.Sprintf("%s width %.1f", swatch(r.BorderColor), r.BorderWidth)),
	}
	if r.TextColor != nil {
		lines = append(lines, field("text-color", swatch(*r.TextColor)))
	}
	return lines
}

func renderSlider(r style.Slider) []string {
	lines := []string{
		field("rail", fmt.Sprintf("%s / %s width %.1f", swatch(r.Rail.Color1), swatch(r.Rail.Color2), r.Rail.Width)),
		field("handle", string(r.Handle.Shape)),
		field("handle-background", background(r.Handle.Background)),
	}
	if r.Handle.Shape == style.HandleCircle {
		lines = append(lines, field("handle-radius", fmt.Sprintf("%.1f", r.Handle.Radius)))
	} else {
		lines = append(lines, field("handle-width", fmt.Sprintf("%.1f", r.Handle.Width)))
	}
	if r.Handle.BorderWidth > 0 {
		lines = append(lines, field("handle-border", fmt.Sprintf("%s width %.1f", swatch(r.Handle.BorderColor), r.Handle.BorderWidth)))
	}
	return lines
}

func renderTextInput(r style.TextInput) []string {
	lines := []string{
		field("background", swatch(r.Background)),
		field("icon-color", swatch(r.IconColor)),
		field("placeholder-color", swatch(r.PlaceholderColor)),
		field("value-color", swatch(r.ValueColor)),
		field("selection-color", swatch(r.SelectionColor)),
	}
	return append(lines, borderLines(r.Border)...)
}

func renderToggler(r style.Toggler) []string {
	lines := []string{
		field("background", swatch(r.Background)),
		field("foreground", swatch(r.Foreground)),
	}
	if r.BackgroundBorderWidth > 0 {
		lines = append(lines, field("background-border", fmt.Sprintf("%s width %.1f", swatch(r.BackgroundBorderColor), r.BackgroundBorderWidth)))
	}
	if r.ForegroundBorderWidth > 0 {
		lines = append(lines, field("foreground-border", fmt.Sprintf("%s width %.1f", swatch(r.ForegroundBorderColor), r.ForegroundBorderWidth)))
	}
	if r.TextColor != nil {
		lines = append(lines, field("text-color", swatch(*r.TextColor)))
	}
	return lines
}

func field(name, value string) string {
	return fmt.Sprintf("%-18s %s", name, value)
}

func borderLines(b style.Border) []string {
	if b.Width == 0 {
		return nil
	}
	return []string{field("border", fmt.Sprintf("%s width %.1f", swatch(b.Color), b.Width))}
}

func shadowLines(s style.Shadow) []string {
	if s.Blur == 0 && s.OffsetX == 0 && s.OffsetY == 0 {
		return nil
	}
	return []string{field("shadow", fmt.Sprintf("%s offset (%.1f, %.1f) blur %.1f", swatch(s.Color), s.OffsetX, s.OffsetY, s.Blur))}
}

func swatch(c colorpkg.Color) string {
	rgb := fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	block := lipgloss.NewStyle().Background(lipgloss.Color(rgb)).Render("  ")
	return fmt.Sprintf("%s %s", block, c.Hex())
}

func optSwatch(c *colorpkg.Color) string {
	if c == nil {
		return mutedStyle.Render("(none)")
	}
	return swatch(*c)
}

func background(bg style.Background) string {
	if !bg.IsGradient() {
		return swatch(bg.Color)
	}
	var blocks strings.Builder
	for _, stop := range bg.Gradient.Stops {
		rgb := fmt.Sprintf("#%02X%02X%02X", stop.Color.R, stop.Color.G, stop.Color.B)
		blocks.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(rgb)).Render("  "))
	}
	return fmt.Sprintf("%s gradient %.0fdeg, %d stops", blocks.String(), bg.Gradient.Angle, len(bg.Gradient.Stops))
}
