package themer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/themer/color"
)

func TestResolveVariablesLiteralsAndRefs(t *testing.T) {
	vars, err := resolveVariables(map[string]string{
		"primary": "#66C0F4",
		"accent":  "$primary",
		"muted":   "$accent",
	})
	require.NoError(t, err)

	primary := color.Color{R: 0x66, G: 0xC0, B: 0xF4, A: 0xFF}
	require.Equal(t, primary, vars["primary"])
	require.Equal(t, primary, vars["accent"])
	require.Equal(t, primary, vars["muted"])
}

func TestResolveVariablesExpressions(t *testing.T) {
	vars, err := resolveVariables(map[string]string{
		"base":    "#808080",
		"darker":  "darken($base, 20%)",
		"greyer":  "greyscale(#66C0F4)",
		"blended": "mix($base, #000000, 50%)",
		"nested":  "lighten(darken($base, 10%), 10%)",
	})
	require.NoError(t, err)

	require.Equal(t, color.Color{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}, vars["blended"])

	_, _, baseL := vars["base"].HSL()
	_, _, darkerL := vars["darker"].HSL()
	require.InDelta(t, baseL-0.2, darkerL, 0.01)

	g := vars["greyer"]
	require.Equal(t, g.R, g.G)
	require.Equal(t, g.G, g.B)

	_, _, nestedL := vars["nested"].HSL()
	require.InDelta(t, baseL, nestedL, 0.01)
}

func TestResolveVariablesGrayscaleAlias(t *testing.T) {
	vars, err := resolveVariables(map[string]string{
		"a": "greyscale(#66C0F4)",
		"b": "grayscale(#66C0F4)",
	})
	require.NoError(t, err)
	require.Equal(t, vars["a"], vars["b"])
}

func TestResolveVariablesSpin(t *testing.T) {
	vars, err := resolveVariables(map[string]string{
		"base":    "#66C0F4",
		"full":    "spin($base, 360deg)",
		"reverse": "spin($base, -360deg)",
	})
	require.NoError(t, err)
	require.Equal(t, vars["base"], vars["full"])
	require.Equal(t, vars["base"], vars["reverse"])
}

func TestResolveVariablesCycle(t *testing.T) {
	_, err := resolveVariables(map[string]string{
		"a": "darken($b, 10%)",
		"b": "lighten($a, 10%)",
	})
	var cyc *CyclicReferenceError
	require.ErrorAs(t, err, &cyc)
	require.Contains(t, cyc.Path, "a")
	require.Contains(t, cyc.Path, "b")
	require.Equal(t, cyc.Path[0], cyc.Path[len(cyc.Path)-1])
}

func TestResolveVariablesSelfCycle(t *testing.T) {
	_, err := resolveVariables(map[string]string{"a": "$a"})
	var cyc *CyclicReferenceError
	require.ErrorAs(t, err, &cyc)
	require.Equal(t, []string{"a", "a"}, cyc.Path)
}

func TestResolveVariablesUndefined(t *testing.T) {
	_, err := resolveVariables(map[string]string{"primary": "$missing"})
	var undef *UndefinedVariableError
	require.ErrorAs(t, err, &undef)
	require.Equal(t, "missing", undef.Name)
	require.Equal(t, "variables.primary", undef.Site)
}

func TestResolveVariablesBadExpressions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{"unknown function", "bake(#FFFFFF, 10%)", &InvalidArgumentError{}},
		{"wrong arity", "darken(#FFFFFF)", &InvalidArgumentError{}},
		{"percent over 100", "darken(#FFFFFF, 150%)", &InvalidArgumentError{}},
		{"negative percent", "darken(#FFFFFF, -5%)", &InvalidArgumentError{}},
		{"missing paren", "darken(#FFFFFF, 10%", &InvalidColorError{}},
		{"not a color", "Arial", &InvalidColorError{}},
		{"percent as color", "darken(10%, 10%)", &InvalidArgumentError{}},
		{"spin without deg", "spin(#FFFFFF, 90%)", &InvalidArgumentError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveVariables(map[string]string{"v": tt.raw})
			require.Error(t, err)
			switch want := tt.want.(type) {
			case *InvalidArgumentError:
				require.ErrorAs(t, err, &want)
			case *InvalidColorError:
				require.ErrorAs(t, err, &want)
			}
		})
	}
}

func TestResolveVariablesPercentBounds(t *testing.T) {
	// 0% and 100% are valid; spin angles are unrestricted.
	_, err := resolveVariables(map[string]string{
		"a": "darken(#808080, 0%)",
		"b": "lighten(#808080, 100%)",
		"c": "spin(#808080, 720deg)",
		"d": "spin(#808080, -90deg)",
	})
	require.NoError(t, err)
}

func TestResolveVariablesSharedSubexpression(t *testing.T) {
	// Diamond-shaped fan-in resolves once per variable and stays consistent.
	vars, err := resolveVariables(map[string]string{
		"root":  "#336699",
		"left":  "darken($root, 10%)",
		"right": "darken($root, 10%)",
		"join":  "mix($left, $right, 50%)",
	})
	require.NoError(t, err)
	require.Equal(t, vars["left"], vars["right"])
	require.Equal(t, vars["left"], vars["join"])
}

func TestResolverStackUnwoundOnError(t *testing.T) {
	// A failure deep in the reference chain must leave the in-progress
	// bookkeeping empty, not holding the frames it was visiting.
	vs := &variableSet{
		raw: map[string]string{
			"a": "$b",
			"b": "lighten(#112233, 10",
		},
		resolved: make(map[string]color.Color),
		active:   make(map[string]bool),
	}

	_, err := vs.value("a")
	require.Error(t, err)
	require.Empty(t, vs.visiting)
	require.Empty(t, vs.active)
}

func TestParseExpressionClassification(t *testing.T) {
	lit, err := parseExpression("#FF0000", "variables.x")
	require.NoError(t, err)
	require.Equal(t, exprLiteral, lit.kind)

	named, err := parseExpression("white", "variables.x")
	require.NoError(t, err)
	require.Equal(t, exprLiteral, named.kind)
	require.Equal(t, color.White, named.lit)

	ref, err := parseExpression("$primary", "variables.x")
	require.NoError(t, err)
	require.Equal(t, exprRef, ref.kind)
	require.Equal(t, "primary", ref.name)

	call, err := parseExpression("mix($a, $b, 25%)", "variables.x")
	require.NoError(t, err)
	require.Equal(t, exprCall, call.kind)
	require.Equal(t, "mix", call.name)
	require.Len(t, call.args, 3)

	_, err = parseExpression("$", "variables.x")
	require.Error(t, err)
	require.True(t, errors.As(err, new(*InvalidColorError)))
}
