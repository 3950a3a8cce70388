package themer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/themer/color"
	"github.com/opencode-ai/themer/internal/tabular"
	"github.com/opencode-ai/themer/style"
)

// builder walks the decoded document tree and assembles the theme. It owns
// every intermediate structure; the first error anywhere aborts the build.
type builder struct {
	vars map[string]color.Color
	log  zerolog.Logger
}

func build(data []byte, log zerolog.Logger) (*Theme, error) {
	doc, err := tabular.Decode(data)
	if err != nil {
		return nil, &MalformedSourceError{Err: err}
	}
	root, _ := doc.AsTable()

	if err := checkSections(root); err != nil {
		return nil, err
	}

	b := &builder{log: log}

	rawVars, err := extractVariables(root)
	if err != nil {
		return nil, err
	}
	b.vars, err = resolveVariables(rawVars)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("variables", len(b.vars)).Msg("variables resolved")

	theme := &Theme{name: "Custom", vars: b.vars}
	if v, ok := root["name"]; ok {
		s, ok := v.AsString()
		if !ok {
			return nil, &StructureError{Site: "name", Reason: "expected a string, got " + v.Kind().String()}
		}
		theme.name = s
	}

	theme.palette, err = b.palette(root)
	if err != nil {
		return nil, err
	}
	theme.font, err = b.font(root)
	if err != nil {
		return nil, err
	}

	for _, kind := range style.Kinds() {
		v, ok := root[string(kind)]
		if !ok {
			continue
		}
		if err := b.widget(theme, kind, v); err != nil {
			return nil, err
		}
		log.Debug().Str("widget", string(kind)).Msg("widget section resolved")
	}

	return theme, nil
}

func checkSections(root map[string]tabular.Value) error {
	known := map[string]bool{"name": true, "variables": true, "palette": true, "font": true}
	for _, kind := range style.Kinds() {
		known[string(kind)] = true
	}
	for _, key := range sortedKeys(root) {
		if !known[key] {
			return &StructureError{Site: key, Reason: "unknown section"}
		}
	}
	return nil
}

func extractVariables(root map[string]tabular.Value) (map[string]string, error) {
	v, ok := root["variables"]
	if !ok {
		return nil, nil
	}
	tbl, ok := v.AsTable()
	if !ok {
		return nil, &StructureError{Site: "variables", Reason: "expected a table, got " + v.Kind().String()}
	}
	raw := make(map[string]string, len(tbl))
	for key, val := range tbl {
		s, ok := val.AsString()
		if !ok {
			return nil, &StructureError{
				Site:   "variables." + key,
				Reason: "expected a string value, got " + val.Kind().String(),
			}
		}
		raw[key] = s
	}
	return raw, nil
}

// resolveColorString substitutes a scalar color field: a #hex (or named)
// literal or a bare $name reference. Function calls are only allowed inside
// [variables].
func (b *builder) resolveColorString(s, site string) (color.Color, error) {
	if name, ok := strings.CutPrefix(s, "$"); ok {
		c, ok := b.vars[name]
		if !ok {
			return color.Color{}, &UndefinedVariableError{Name: name, Site: site}
		}
		return c, nil
	}
	if looksLikeCall(s) {
		return color.Color{}, &InvalidColorError{
			Text: s, Site: site,
			Reason: "function calls are only allowed in [variables]",
		}
	}
	c, err := color.Parse(s)
	if err != nil {
		return color.Color{}, &InvalidColorError{Text: s, Site: site, Reason: err.Error()}
	}
	return c, nil
}

// -- Palette and font --

func (b *builder) palette(root map[string]tabular.Value) (Palette, error) {
	v, ok := root["palette"]
	if !ok {
		return Palette{}, &StructureError{Site: "palette", Reason: "section is required"}
	}
	tbl, ok := v.AsTable()
	if !ok {
		return Palette{}, &StructureError{Site: "palette", Reason: "expected a table, got " + v.Kind().String()}
	}

	var p Palette
	roles := []struct {
		key  string
		dest *color.Color
	}{
		{"background", &p.Background},
		{"text", &p.Text},
		{"primary", &p.Primary},
		{"success", &p.Success},
		{"warning", &p.Warning},
		{"danger", &p.Danger},
	}

	seen := make(map[string]bool, len(roles))
	for _, role := range roles {
		seen[role.key] = true
		site := "palette." + role.key
		val, ok := tbl[role.key]
		if !ok {
			return Palette{}, &StructureError{Site: site, Reason: "color is required"}
		}
		s, ok := val.AsString()
		if !ok {
			return Palette{}, &StructureError{Site: site, Reason: "expected a color string, got " + val.Kind().String()}
		}
		c, err := b.resolveColorString(s, site)
		if err != nil {
			return Palette{}, err
		}
		*role.dest = c
	}

	for _, key := range sortedKeys(tbl) {
		if !seen[key] {
			return Palette{}, &StructureError{Site: "palette." + key, Reason: "unknown palette role"}
		}
	}
	return p, nil
}

func (b *builder) font(root map[string]tabular.Value) (*Font, error) {
	v, ok := root["font"]
	if !ok {
		return nil, nil
	}
	tbl, ok := v.AsTable()
	if !ok {
		return nil, &StructureError{Site: "font", Reason: "expected a table, got " + v.Kind().String()}
	}

	font := &Font{
		Family:  "sans-serif",
		Weight:  WeightNormal,
		Style:   StyleNormal,
		Stretch: StretchNormal,
	}
	for _, key := range sortedKeys(tbl) {
		s, ok := tbl[key].AsString()
		if !ok {
			return nil, &StructureError{Site: "font." + key, Reason: "expected a string, got " + tbl[key].Kind().String()}
		}
		switch key {
		case "family":
			font.Family = s
		case "weight":
			w := FontWeight(s)
			if !w.valid() {
				return nil, &StructureError{Site: "font.weight", Reason: fmt.Sprintf("unknown font weight %q", s)}
			}
			font.Weight = w
		case "style":
			fs := FontStyle(s)
			if !fs.valid() {
				return nil, &StructureError{Site: "font.style", Reason: fmt.Sprintf("unknown font style %q", s)}
			}
			font.Style = fs
		case "stretch":
			st := FontStretch(s)
			if !st.valid() {
				return nil, &StructureError{Site: "font.stretch", Reason: fmt.Sprintf("unknown font stretch %q", s)}
			}
			font.Stretch = st
		default:
			return nil, &StructureError{Site: "font." + key, Reason: "unknown font field"}
		}
	}
	return font, nil
}

// -- Widget sections --

func (b *builder) widget(theme *Theme, kind style.Kind, v tabular.Value) error {
	site := string(kind)
	tbl, ok := v.AsTable()
	if !ok {
		return &StructureError{Site: site, Reason: "expected a table, got " + v.Kind().String()}
	}

	// Split status sub-tables from base fields. Only names in the kind's
	// closed status set are accepted as sub-tables.
	fields := make(map[string]tabular.Value, len(tbl))
	statuses := make(map[style.Status]map[string]tabular.Value)
	for _, key := range sortedKeys(tbl) {
		st := style.Status(key)
		if kind.HasStatus(st) {
			sub, ok := tbl[key].AsTable()
			if !ok {
				return &StructureError{Site: site + "." + key, Reason: "expected a status table, got " + tbl[key].Kind().String()}
			}
			statuses[st] = sub
			continue
		}
		fields[key] = tbl[key]
	}

	switch kind {
	case style.KindButton:
		return b.buttonSection(theme, fields, statuses, site)
	case style.KindCheckbox:
		return b.checkboxSection(theme, fields, statuses, site)
	case style.KindContainer:
		return b.containerSection(theme, fields, site)
	case style.KindProgressBar:
		return b.progressBarSection(theme, fields, site)
	case style.KindRadio:
		return b.radioSection(theme, fields, statuses, site)
	case style.KindSlider:
		return b.sliderSection(theme, fields, statuses, site)
	case style.KindTextInput:
		return b.textInputSection(theme, fields, statuses, site)
	case style.KindToggler:
		return b.togglerSection(theme, fields, statuses, site)
	}
	return &StructureError{Site: site, Reason: "unknown widget kind"}
}

func (b *builder) buttonSection(theme *Theme, fields map[string]tabular.Value, statuses map[style.Status]map[string]tabular.Value, site string) error {
	base, err := b.buttonPatch(fields, site)
	if err != nil {
		return err
	}
	patches, err := eachStatus(statuses, site, b.buttonPatch)
	if err != nil {
		return err
	}
	theme.button = &style.ButtonStyle{
		Base:     base.Resolve(),
		Statuses: style.ResolveStatuses(base, patches, style.ButtonPatch.Resolve),
	}
	return nil
}

func (b *builder) buttonPatch(tbl map[string]tabular.Value, site string) (style.ButtonPatch, error) {
	var p style.ButtonPatch
	fr := b.fields(tbl, site)
	p.Background = fr.color("background")
	p.TextColor = fr.color("text-color")
	p.BorderWidth = fr.number("border-width")
	p.BorderColor = fr.color("border-color")
	p.BorderRadius = fr.radius("border-radius")
	p.ShadowColor = fr.color("shadow-color")
	p.ShadowOffsetX = fr.number("shadow-offset-x")
	p.ShadowOffsetY = fr.number("shadow-offset-y")
	p.ShadowBlur = fr.number("shadow-blur-radius")
	return p, fr.finish()
}

func (b *builder) checkboxSection(theme *Theme, fields map[string]tabular.Value, statuses map[style.Status]map[string]tabular.Value, site string) error {
	base, err := b.checkboxPatch(fields, site)
	if err != nil {
		return err
	}
	patches, err := eachStatus(statuses, site, b.checkboxPatch)
	if err != nil {
		return err
	}
	theme.checkbox = &style.CheckboxStyle{
		Base:     base.Resolve(),
		Statuses: style.ResolveStatuses(base, patches, style.CheckboxPatch.Resolve),
	}
	return nil
}

func (b *builder) checkboxPatch(tbl map[string]tabular.Value, site string) (style.CheckboxPatch, error) {
	var p style.CheckboxPatch
	fr := b.fields(tbl, site)
	p.Background = fr.color("background")
	p.IconColor = fr.color("icon-color")
	p.BorderWidth = fr.number("border-width")
	p.BorderColor = fr.color("border-color")
	p.BorderRadius = fr.radius("border-radius")
	p.TextColor = fr.color("text-color")
	return p, fr.finish()
}

func (b *builder) containerSection(theme *Theme, fields map[string]tabular.Value, site string) error {
	var p style.ContainerPatch
	fr := b.fields(fields, site)
	p.Background = fr.background("background")
	p.TextColor = fr.color("text-color")
	p.BorderWidth = fr.number("border-width")
	p.BorderColor = fr.color("border-color")
	p.BorderRadius = fr.radius("border-radius")
	p.ShadowColor = fr.color("shadow-color")
	p.ShadowOffsetX = fr.number("shadow-offset-x")
	p.ShadowOffsetY = fr.number("shadow-offset-y")
	p.ShadowBlur = fr.number("shadow-blur-radius")
	if err := fr.finish(); err != nil {
		return err
	}
	theme.container = &style.ContainerStyle{Base: p.Resolve()}
	return nil
}

func (b *builder) progressBarSection(theme *Theme, fields map[string]tabular.Value, site string) error {
	var p style.ProgressBarPatch
	fr := b.fields(fields, site)
	p.Background = fr.color("background")
	p.Bar = fr.background("bar")
	p.BorderWidth = fr.number("border-width")
	p.BorderColor = fr.color("border-color")
	p.BorderRadius = fr.radius("border-radius")
	if err := fr.finish(); err != nil {
		return err
	}
	theme.progressBar = &style.ProgressBarStyle{Base: p.Resolve()}
	return nil
}

func (b *builder) radioSection(theme *Theme, fields map[string]tabular.Value, statuses map[style.Status]map[string]tabular.Value, site string) error {
	base, err := b.radioPatch(fields, site)
	if err != nil {
		return err
	}
	patches, err := eachStatus(statuses, site, b.radioPatch)
	if err != nil {
		return err
	}
	theme.radio = &style.RadioStyle{
		Base:     base.Resolve(),
		Statuses: style.ResolveStatuses(base, patches, style.RadioPatch.Resolve),
	}
	return nil
}

func (b *builder) radioPatch(tbl map[string]tabular.Value, site string) (style.RadioPatch, error) {
	var p style.RadioPatch
	fr := b.fields(tbl, site)
	p.Background = fr.color("background")
	p.DotColor = fr.color("dot-color")
	p.BorderWidth = fr.number("border-width")
	p.BorderColor = fr.color("border-color")
	p.TextColor = fr.color("text-color")
	return p, fr.finish()
}

func (b *builder) sliderSection(theme *Theme, fields map[string]tabular.Value, statuses map[style.Status]map[string]tabular.Value, site string) error {
	base, err := b.sliderPatch(fields, site)
	if err != nil {
		return err
	}
	patches, err := eachStatus(statuses, site, b.sliderPatch)
	if err != nil {
		return err
	}
	theme.slider = &style.SliderStyle{
		Base:     base.Resolve(),
		Statuses: style.ResolveStatuses(base, patches, style.SliderPatch.Resolve),
	}
	return nil
}

func (b *builder) sliderPatch(tbl map[string]tabular.Value, site string) (style.SliderPatch, error) {
	var p style.SliderPatch
	fr := b.fields(tbl, site)
	p.RailColor1 = fr.color("rail-color-1")
	p.RailColor2 = fr.color("rail-color-2")
	p.RailWidth = fr.number("rail-width")
	p.RailBorderRadius = fr.radius("rail-border-radius")
	p.HandleShape = fr.handleShape("handle-shape")
	p.HandleRadius = fr.number("handle-radius")
	p.HandleWidth = fr.number("handle-width")
	p.HandleBorderRadius = fr.radius("handle-border-radius")
	p.HandleBackground = fr.background("handle-background")
	p.HandleBorderWidth = fr.number("handle-border-width")
	p.HandleBorderColor = fr.color("handle-border-color")
	return p, fr.finish()
}

func (b *builder) textInputSection(theme *Theme, fields map[string]tabular.Value, statuses map[style.Status]map[string]tabular.Value, site string) error {
	base, err := b.textInputPatch(fields, site)
	if err != nil {
		return err
	}
	patches, err := eachStatus(statuses, site, b.textInputPatch)
	if err != nil {
		return err
	}
	theme.textInput = &style.TextInputStyle{
		Base:     base.Resolve(),
		Statuses: style.ResolveStatuses(base, patches, style.TextInputPatch.Resolve),
	}
	return nil
}

func (b *builder) textInputPatch(tbl map[string]tabular.Value, site string) (style.TextInputPatch, error) {
	var p style.TextInputPatch
	fr := b.fields(tbl, site)
	p.Background = fr.color("background")
	p.BorderWidth = fr.number("border-width")
	p.BorderColor = fr.color("border-color")
	p.BorderRadius = fr.radius("border-radius")
	p.IconColor = fr.color("icon-color")
	p.PlaceholderColor = fr.color("placeholder-color")
	p.ValueColor = fr.color("value-color")
	p.SelectionColor = fr.color("selection-color")
	return p, fr.finish()
}

func (b *builder) togglerSection(theme *Theme, fields map[string]tabular.Value, statuses map[style.Status]map[string]tabular.Value, site string) error {
	base, err := b.togglerPatch(fields, site)
	if err != nil {
		return err
	}
	patches, err := eachStatus(statuses, site, b.togglerPatch)
	if err != nil {
		return err
	}
	theme.toggler = &style.TogglerStyle{
		Base:     base.Resolve(),
		Statuses: style.ResolveStatuses(base, patches, style.TogglerPatch.Resolve),
	}
	return nil
}

func (b *builder) togglerPatch(tbl map[string]tabular.Value, site string) (style.TogglerPatch, error) {
	var p style.TogglerPatch
	fr := b.fields(tbl, site)
	p.Background = fr.color("background")
	p.Foreground = fr.color("foreground")
	p.BackgroundBorderWidth = fr.number("background-border-width")
	p.BackgroundBorderColor = fr.color("background-border-color")
	p.ForegroundBorderWidth = fr.number("foreground-border-width")
	p.ForegroundBorderColor = fr.color("foreground-border-color")
	p.BorderRadius = fr.number("border-radius")
	p.TextColor = fr.color("text-color")
	return p, fr.finish()
}

// eachStatus parses every declared status sub-table with the widget's patch
// parser. Iteration order is irrelevant: the result is keyed by status.
func eachStatus[P any](statuses map[style.Status]map[string]tabular.Value, site string, parse func(map[string]tabular.Value, string) (P, error)) (map[style.Status]P, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	out := make(map[style.Status]P, len(statuses))
	for st, tbl := range statuses {
		p, err := parse(tbl, site+"."+string(st))
		if err != nil {
			return nil, err
		}
		out[st] = p
	}
	return out, nil
}

// -- Field reading --

// fieldReader reads typed fields out of one widget (sub-)table, records
// which keys it consumed, and holds the first error. finish rejects any
// leftover keys.
type fieldReader struct {
	b    *builder
	tbl  map[string]tabular.Value
	site string
	seen map[string]bool
	err  error
}

func (b *builder) fields(tbl map[string]tabular.Value, site string) *fieldReader {
	return &fieldReader{b: b, tbl: tbl, site: site, seen: make(map[string]bool, len(tbl))}
}

func (fr *fieldReader) take(key string) (tabular.Value, bool) {
	fr.seen[key] = true
	v, ok := fr.tbl[key]
	return v, ok && fr.err == nil
}

func (fr *fieldReader) color(key string) *color.Color {
	v, ok := fr.take(key)
	if !ok {
		return nil
	}
	site := fr.site + "." + key
	s, ok := v.AsString()
	if !ok {
		fr.err = &StructureError{Site: site, Reason: "expected a color string, got " + v.Kind().String()}
		return nil
	}
	c, err := fr.b.resolveColorString(s, site)
	if err != nil {
		fr.err = err
		return nil
	}
	return &c
}

func (fr *fieldReader) number(key string) *float64 {
	v, ok := fr.take(key)
	if !ok {
		return nil
	}
	n, ok := v.AsNumber()
	if !ok {
		fr.err = &StructureError{Site: fr.site + "." + key, Reason: "expected a number, got " + v.Kind().String()}
		return nil
	}
	return &n
}

// radius accepts a single number (uniform) or a 4-element array ordered
// top-left, top-right, bottom-right, bottom-left.
func (fr *fieldReader) radius(key string) *style.Radius {
	v, ok := fr.take(key)
	if !ok {
		return nil
	}
	site := fr.site + "." + key
	if n, ok := v.AsNumber(); ok {
		r := style.UniformRadius(n)
		return &r
	}
	arr, ok := v.AsArray()
	if !ok || len(arr) != 4 {
		fr.err = &StructureError{Site: site, Reason: "expected a number or a 4-element array"}
		return nil
	}
	var corners [4]float64
	for i, item := range arr {
		n, ok := item.AsNumber()
		if !ok {
			fr.err = &StructureError{Site: site, Reason: "expected numeric corner radii"}
			return nil
		}
		corners[i] = n
	}
	return &style.Radius{
		TopLeft:     corners[0],
		TopRight:    corners[1],
		BottomRight: corners[2],
		BottomLeft:  corners[3],
	}
}

// background accepts a color string or a nested gradient table. Gradients
// are validated at the point they are encountered.
func (fr *fieldReader) background(key string) *style.Background {
	v, ok := fr.take(key)
	if !ok {
		return nil
	}
	site := fr.site + "." + key

	if s, ok := v.AsString(); ok {
		c, err := fr.b.resolveColorString(s, site)
		if err != nil {
			fr.err = err
			return nil
		}
		return &style.Background{Color: c}
	}

	tbl, ok := v.AsTable()
	if !ok {
		fr.err = &StructureError{Site: site, Reason: "expected a color string or a gradient table, got " + v.Kind().String()}
		return nil
	}
	g, err := fr.b.gradient(tbl, site)
	if err != nil {
		fr.err = err
		return nil
	}
	return &style.Background{Gradient: g}
}

func (fr *fieldReader) handleShape(key string) *style.HandleShape {
	v, ok := fr.take(key)
	if !ok {
		return nil
	}
	site := fr.site + "." + key
	s, ok := v.AsString()
	if !ok {
		fr.err = &StructureError{Site: site, Reason: "expected a string, got " + v.Kind().String()}
		return nil
	}
	shape := style.HandleShape(s)
	if shape != style.HandleCircle && shape != style.HandleRectangle {
		fr.err = &StructureError{Site: site, Reason: fmt.Sprintf("unknown handle shape %q", s)}
		return nil
	}
	return &shape
}

func (fr *fieldReader) finish() error {
	if fr.err != nil {
		return fr.err
	}
	for _, key := range sortedKeys(fr.tbl) {
		if !fr.seen[key] {
			return &StructureError{Site: fr.site + "." + key, Reason: "unknown field"}
		}
	}
	return nil
}

// -- Gradients --

func (b *builder) gradient(tbl map[string]tabular.Value, site string) (*style.Gradient, error) {
	g := &style.Gradient{}
	for _, key := range sortedKeys(tbl) {
		switch key {
		case "angle":
			n, ok := tbl[key].AsNumber()
			if !ok {
				return nil, &StructureError{Site: site + ".angle", Reason: "expected a number, got " + tbl[key].Kind().String()}
			}
			g.Angle = n
		case "stops":
			arr, ok := tbl[key].AsArray()
			if !ok {
				return nil, &StructureError{Site: site + ".stops", Reason: "expected an array, got " + tbl[key].Kind().String()}
			}
			for i, item := range arr {
				stop, err := b.gradientStop(item, fmt.Sprintf("%s.stops[%d]", site, i))
				if err != nil {
					return nil, err
				}
				g.Stops = append(g.Stops, stop)
			}
		default:
			return nil, &StructureError{Site: site + "." + key, Reason: "unknown gradient field"}
		}
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", site, err)
	}
	return g, nil
}

func (b *builder) gradientStop(v tabular.Value, site string) (style.GradientStop, error) {
	tbl, ok := v.AsTable()
	if !ok {
		return style.GradientStop{}, &StructureError{Site: site, Reason: "expected a stop table, got " + v.Kind().String()}
	}

	var stop style.GradientStop
	sawOffset, sawColor := false, false
	for _, key := range sortedKeys(tbl) {
		switch key {
		case "offset":
			n, ok := tbl[key].AsNumber()
			if !ok {
				return style.GradientStop{}, &StructureError{Site: site + ".offset", Reason: "expected a number"}
			}
			stop.Offset = n
			sawOffset = true
		case "color":
			s, ok := tbl[key].AsString()
			if !ok {
				return style.GradientStop{}, &StructureError{Site: site + ".color", Reason: "expected a color string"}
			}
			c, err := b.resolveColorString(s, site+".color")
			if err != nil {
				return style.GradientStop{}, err
			}
			stop.Color = c
			sawColor = true
		default:
			return style.GradientStop{}, &StructureError{Site: site + "." + key, Reason: "unknown stop field"}
		}
	}
	if !sawOffset || !sawColor {
		return style.GradientStop{}, &StructureError{Site: site, Reason: "stop requires both offset and color"}
	}
	return stop, nil
}

func sortedKeys(m map[string]tabular.Value) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
