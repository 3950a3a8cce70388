// Package themer turns declarative TOML theme files into fully-resolved,
// typed style models. A theme file declares a palette, an optional font,
// reusable color variables with a small transformation expression language
// (darken, lighten, mix, ...), and optional per-widget style sections whose
// status sub-tables inherit from the widget's base style.
//
// Construction is strict and one-shot: the first error anywhere aborts the
// build, and a successfully built Theme is immutable, so it can be shared
// across concurrent readers without synchronization.
package themer

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/themer/color"
	"github.com/opencode-ai/themer/style"
)

// Palette holds the six semantic color roles every theme must define.
type Palette struct {
	Background color.Color
	Text       color.Color
	Primary    color.Color
	Success    color.Color
	Warning    color.Color
	Danger     color.Color
}

// FontWeight is a closed set of CSS-like font weight names.
type FontWeight string

const (
	WeightThin       FontWeight = "thin"
	WeightExtraLight FontWeight = "extra-light"
	WeightLight      FontWeight = "light"
	WeightNormal     FontWeight = "normal"
	WeightMedium     FontWeight = "medium"
	WeightSemibold   FontWeight = "semibold"
	WeightBold       FontWeight = "bold"
	WeightExtraBold  FontWeight = "extra-bold"
	WeightBlack      FontWeight = "black"
)

func (w FontWeight) valid() bool {
	switch w {
	case WeightThin, WeightExtraLight, WeightLight, WeightNormal, WeightMedium,
		WeightSemibold, WeightBold, WeightExtraBold, WeightBlack:
		return true
	}
	return false
}

// FontStyle is a closed set of slant styles.
type FontStyle string

const (
	StyleNormal  FontStyle = "normal"
	StyleItalic  FontStyle = "italic"
	StyleOblique FontStyle = "oblique"
)

func (s FontStyle) valid() bool {
	switch s {
	case StyleNormal, StyleItalic, StyleOblique:
		return true
	}
	return false
}

// FontStretch is a closed set of width stretch names.
type FontStretch string

const (
	StretchUltraCondensed FontStretch = "ultra-condensed"
	StretchExtraCondensed FontStretch = "extra-condensed"
	StretchCondensed      FontStretch = "condensed"
	StretchSemiCondensed  FontStretch = "semi-condensed"
	StretchNormal         FontStretch = "normal"
	StretchSemiExpanded   FontStretch = "semi-expanded"
	StretchExpanded       FontStretch = "expanded"
	StretchExtraExpanded  FontStretch = "extra-expanded"
	StretchUltraExpanded  FontStretch = "ultra-expanded"
)

func (s FontStretch) valid() bool {
	switch s {
	case StretchUltraCondensed, StretchExtraCondensed, StretchCondensed,
		StretchSemiCondensed, StretchNormal, StretchSemiExpanded,
		StretchExpanded, StretchExtraExpanded, StretchUltraExpanded:
		return true
	}
	return false
}

// Font is the optional [font] section with defaults filled in.
type Font struct {
	Family  string
	Weight  FontWeight
	Style   FontStyle
	Stretch FontStretch
}

// Theme is a fully-resolved theme. It is built once and never mutated;
// share the pointer freely across goroutines. Widget accessors return nil
// when the source had no section for that widget, which callers treat as
// "use host defaults".
type Theme struct {
	name    string
	palette Palette
	font    *Font
	vars    map[string]color.Color

	button      *style.ButtonStyle
	checkbox    *style.CheckboxStyle
	container   *style.ContainerStyle
	progressBar *style.ProgressBarStyle
	radio       *style.RadioStyle
	slider      *style.SliderStyle
	textInput   *style.TextInputStyle
	toggler     *style.TogglerStyle
}

// Option adjusts theme construction.
type Option func(*buildOptions)

type buildOptions struct {
	log zerolog.Logger
}

// WithLogger traces resolution steps at debug level. The default is a nop
// logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *buildOptions) { o.log = log }
}

// FromString parses and resolves a theme from TOML source text.
func FromString(source string, opts ...Option) (*Theme, error) {
	o := buildOptions{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return build([]byte(source), o.log)
}

// FromFile reads path and resolves the theme it contains.
func FromFile(path string, opts ...Option) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}
	theme, err := FromString(string(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return theme, nil
}

// Name returns the theme name, "Custom" when the source omits it.
func (t *Theme) Name() string { return t.name }

// Palette returns the six semantic colors.
func (t *Theme) Palette() Palette { return t.palette }

// Font returns the configured font, or nil when the source had no [font]
// section.
func (t *Theme) Font() *Font { return t.font }

// Variables returns a copy of the resolved [variables] map. Every value is
// a concrete color; references and expressions are long gone.
func (t *Theme) Variables() map[string]color.Color {
	out := make(map[string]color.Color, len(t.vars))
	for name, c := range t.vars {
		out[name] = c
	}
	return out
}

// Widget accessors return nil when the theme never declared the section;
// the host's own defaults apply in that case.

func (t *Theme) Button() *style.ButtonStyle           { return t.button }
func (t *Theme) Checkbox() *style.CheckboxStyle       { return t.checkbox }
func (t *Theme) Container() *style.ContainerStyle     { return t.container }
func (t *Theme) ProgressBar() *style.ProgressBarStyle { return t.progressBar }
func (t *Theme) Radio() *style.RadioStyle             { return t.radio }
func (t *Theme) Slider() *style.SliderStyle           { return t.slider }
func (t *Theme) TextInput() *style.TextInputStyle     { return t.textInput }
func (t *Theme) Toggler() *style.TogglerStyle         { return t.toggler }
