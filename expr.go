package themer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opencode-ai/themer/color"
)

// The [variables] expression language: a value is a color literal, a $name
// reference, or a call like darken($primary, 20%). Call arguments may nest
// further calls. Percentages are written NN% and spin angles NNdeg.

type exprKind int

const (
	exprLiteral exprKind = iota
	exprRef
	exprCall
	exprPercent
	exprAngle
)

type exprNode struct {
	kind exprKind
	lit  color.Color // exprLiteral
	name string      // exprRef variable name, exprCall function name
	args []exprNode  // exprCall
	num  float64     // exprPercent, exprAngle
}

// parseExpression classifies and parses a raw variable value. site is the
// source location used in error context, e.g. "variables.accent".
func parseExpression(raw, site string) (exprNode, error) {
	s := strings.TrimSpace(raw)

	if name, ok := strings.CutPrefix(s, "$"); ok {
		if name == "" {
			return exprNode{}, &InvalidColorError{Text: s, Site: site, Reason: "empty variable reference"}
		}
		return exprNode{kind: exprRef, name: name}, nil
	}

	if looksLikeCall(s) {
		return parseCall(s, site)
	}

	c, err := color.Parse(s)
	if err != nil {
		return exprNode{}, &InvalidColorError{Text: s, Site: site, Reason: err.Error()}
	}
	return exprNode{kind: exprLiteral, lit: c}, nil
}

// looksLikeCall reports whether s has the shape of a function call. Named
// color literals contain no parenthesis, so this test is unambiguous.
func looksLikeCall(s string) bool {
	open := strings.IndexByte(s, '(')
	if open <= 0 {
		return false
	}
	name := s[:open]
	for _, r := range name {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

func parseCall(s, site string) (exprNode, error) {
	open := strings.IndexByte(s, '(')
	name := strings.TrimSpace(s[:open])

	body, ok := strings.CutSuffix(s[open+1:], ")")
	if !ok {
		return exprNode{}, &InvalidColorError{Text: s, Site: site, Reason: "missing closing parenthesis"}
	}

	parts, err := splitArgs(body)
	if err != nil {
		return exprNode{}, &InvalidColorError{Text: s, Site: site, Reason: err.Error()}
	}

	args := make([]exprNode, 0, len(parts))
	for _, part := range parts {
		arg, err := parseArg(part, site)
		if err != nil {
			return exprNode{}, err
		}
		args = append(args, arg)
	}

	return exprNode{kind: exprCall, name: name, args: args}, nil
}

// splitArgs splits a call body on top-level commas, so nested calls keep
// their own argument lists intact.
func splitArgs(body string) ([]string, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}

	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses")
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(body[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses")
	}
	parts = append(parts, strings.TrimSpace(body[start:]))
	return parts, nil
}

func parseArg(s, site string) (exprNode, error) {
	if digits, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(digits), 64)
		if err != nil {
			return exprNode{}, &InvalidColorError{Text: s, Site: site, Reason: "invalid percentage"}
		}
		return exprNode{kind: exprPercent, num: v}, nil
	}
	if digits, ok := strings.CutSuffix(s, "deg"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(digits), 64)
		if err != nil {
			return exprNode{}, &InvalidColorError{Text: s, Site: site, Reason: "invalid angle"}
		}
		return exprNode{kind: exprAngle, num: v}, nil
	}
	return parseExpression(s, site)
}

// lookupFunc resolves a $name reference encountered while evaluating an
// expression.
type lookupFunc func(name string) (color.Color, error)

func evalExpr(n exprNode, lookup lookupFunc) (color.Color, error) {
	switch n.kind {
	case exprLiteral:
		return n.lit, nil
	case exprRef:
		return lookup(n.name)
	case exprCall:
		return evalCall(n, lookup)
	default:
		// Percent and angle nodes are consumed by evalCall; reaching one
		// here means a number appeared where a color was expected.
		return color.Color{}, &InvalidArgumentError{
			Function: "expression",
			Reason:   "expected a color, got a numeric argument",
		}
	}
}

func evalCall(n exprNode, lookup lookupFunc) (color.Color, error) {
	fn := n.name
	switch fn {
	case "darken", "lighten", "saturate", "desaturate", "tint", "shade":
		if err := expectArgs(fn, n.args, 2); err != nil {
			return color.Color{}, err
		}
		c, err := argColor(fn, n.args[0], lookup)
		if err != nil {
			return color.Color{}, err
		}
		p, err := argPercent(fn, n.args[1])
		if err != nil {
			return color.Color{}, err
		}
		switch fn {
		case "darken":
			return color.Darken(c, p), nil
		case "lighten":
			return color.Lighten(c, p), nil
		case "saturate":
			return color.Saturate(c, p), nil
		case "desaturate":
			return color.Desaturate(c, p), nil
		case "tint":
			return color.Tint(c, p), nil
		default:
			return color.Shade(c, p), nil
		}

	case "greyscale", "grayscale":
		if err := expectArgs(fn, n.args, 1); err != nil {
			return color.Color{}, err
		}
		c, err := argColor(fn, n.args[0], lookup)
		if err != nil {
			return color.Color{}, err
		}
		return color.Greyscale(c), nil

	case "spin":
		if err := expectArgs(fn, n.args, 2); err != nil {
			return color.Color{}, err
		}
		c, err := argColor(fn, n.args[0], lookup)
		if err != nil {
			return color.Color{}, err
		}
		if n.args[1].kind != exprAngle {
			return color.Color{}, &InvalidArgumentError{Function: fn, Reason: "expected an angle like 180deg"}
		}
		return color.Spin(c, n.args[1].num), nil

	case "mix":
		if err := expectArgs(fn, n.args, 3); err != nil {
			return color.Color{}, err
		}
		c1, err := argColor(fn, n.args[0], lookup)
		if err != nil {
			return color.Color{}, err
		}
		c2, err := argColor(fn, n.args[1], lookup)
		if err != nil {
			return color.Color{}, err
		}
		p, err := argPercent(fn, n.args[2])
		if err != nil {
			return color.Color{}, err
		}
		return color.Mix(c1, c2, p), nil

	default:
		return color.Color{}, &InvalidArgumentError{Function: fn, Reason: "unknown color function"}
	}
}

func expectArgs(fn string, args []exprNode, n int) error {
	if len(args) != n {
		return &InvalidArgumentError{
			Function: fn,
			Reason:   fmt.Sprintf("expects %d argument(s), got %d", n, len(args)),
		}
	}
	return nil
}

func argColor(fn string, n exprNode, lookup lookupFunc) (color.Color, error) {
	if n.kind == exprPercent || n.kind == exprAngle {
		return color.Color{}, &InvalidArgumentError{Function: fn, Reason: "expected a color argument, got a number"}
	}
	return evalExpr(n, lookup)
}

func argPercent(fn string, n exprNode) (float64, error) {
	if n.kind != exprPercent {
		return 0, &InvalidArgumentError{Function: fn, Reason: "expected a percentage like 20%"}
	}
	if n.num < 0 || n.num > 100 {
		return 0, &InvalidArgumentError{
			Function: fn,
			Reason:   fmt.Sprintf("percentage must be within 0-100, got %v", n.num),
		}
	}
	return n.num, nil
}
