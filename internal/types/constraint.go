package types

import "strings"

// Atom is a single parsed constraint: an operator applied to a version.
// Core holds the 1-3 numeric components of the version; Suffix is the
// opaque pre-release or build-metadata tail including its leading "-" or
// "+", empty when absent.
type Atom struct {
	Op     ConstraintOp
	Core   []string
	Suffix string
}

// Version reassembles the version portion of the atom, suffix included.
func (a Atom) Version() string {
	return strings.Join(a.Core, ".") + a.Suffix
}
