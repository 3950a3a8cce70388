package themer

import (
	"fmt"
	"strings"
)

// Construction errors are all fatal: any of them aborts the whole theme
// build and no partial theme is ever returned. Each type carries enough
// source context (variable name, widget/status path, function name) to
// locate the offending line. Gradient errors live in the style package.

// MalformedSourceError wraps a syntax error from the underlying TOML parser.
type MalformedSourceError struct {
	Err error
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("malformed theme source: %v", e.Err)
}

func (e *MalformedSourceError) Unwrap() error {
	return e.Err
}

// StructureError reports a well-formed document with the wrong shape at a
// given site: a non-table section, a non-string variable value, or an
// unknown section, field, or status name.
type StructureError struct {
	Site   string
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s: %s", e.Site, e.Reason)
}

// UndefinedVariableError reports a $name reference with no matching entry in
// [variables]. Site distinguishes a reference inside another variable's
// expression from one inside a field substitution.
type UndefinedVariableError struct {
	Name string
	Site string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("%s: undefined variable $%s", e.Site, e.Name)
}

// CyclicReferenceError reports a variable whose expression graph revisits
// itself. Path is the chain of names from the cycle's start back to itself.
type CyclicReferenceError struct {
	Path []string
}

func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf("cyclic variable reference: $%s", strings.Join(e.Path, " -> $"))
}

// InvalidColorError reports a literal that fails color parsing, or a color
// expression appearing where only literals and $references are allowed.
type InvalidColorError struct {
	Text   string
	Site   string
	Reason string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("%s: invalid color %q: %s", e.Site, e.Text, e.Reason)
}

// InvalidArgumentError reports a transformation function call with the
// wrong arity, an out-of-range percentage, or an unknown function name.
type InvalidArgumentError struct {
	Function string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Function, e.Reason)
}
