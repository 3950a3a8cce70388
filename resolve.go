package themer

import (
	"sort"

	"github.com/opencode-ai/themer/color"
)

// variableSet evaluates the [variables] dependency graph. Each variable is
// resolved on demand with memoization; an explicit in-progress stack replaces
// call-stack recursion tricks and yields the exact cycle path on failure.
type variableSet struct {
	raw      map[string]string
	resolved map[string]color.Color
	active   map[string]bool
	visiting []string
}

// resolveVariables evaluates every declared variable to a concrete color.
// The returned map is order-independent: shared sub-expressions are computed
// once regardless of evaluation order or fan-in.
func resolveVariables(raw map[string]string) (map[string]color.Color, error) {
	vs := &variableSet{
		raw:      raw,
		resolved: make(map[string]color.Color, len(raw)),
		active:   make(map[string]bool),
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := vs.value(name); err != nil {
			return nil, err
		}
	}
	return vs.resolved, nil
}

func (vs *variableSet) value(name string) (color.Color, error) {
	if c, ok := vs.resolved[name]; ok {
		return c, nil
	}
	if vs.active[name] {
		return color.Color{}, &CyclicReferenceError{Path: vs.cyclePath(name)}
	}

	raw, ok := vs.raw[name]
	if !ok {
		return color.Color{}, &UndefinedVariableError{Name: name, Site: vs.referenceSite()}
	}

	node, err := parseExpression(raw, "variables."+name)
	if err != nil {
		return color.Color{}, err
	}

	vs.active[name] = true
	vs.visiting = append(vs.visiting, name)

	c, err := evalExpr(node, vs.value)

	vs.visiting = vs.visiting[:len(vs.visiting)-1]
	delete(vs.active, name)

	if err != nil {
		return color.Color{}, err
	}
	vs.resolved[name] = c
	return c, nil
}

// cyclePath returns the chain of names from the cycle's first occurrence
// back to the revisited name.
func (vs *variableSet) cyclePath(name string) []string {
	for i, n := range vs.visiting {
		if n == name {
			path := make([]string, 0, len(vs.visiting)-i+1)
			path = append(path, vs.visiting[i:]...)
			return append(path, name)
		}
	}
	return []string{name, name}
}

// referenceSite names the variable whose expression contained the failing
// reference.
func (vs *variableSet) referenceSite() string {
	if len(vs.visiting) == 0 {
		return "variables"
	}
	return "variables." + vs.visiting[len(vs.visiting)-1]
}
