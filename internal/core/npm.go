package core

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rangeconv/internal/types"
)

// npmAtomRe matches a single atom of an npm range. Wildcards ("*", "x"),
// partial wildcards ("1.x.x"), and hyphen-range tokens all fall outside
// this pattern, so they surface as parse failures rather than silent
// mis-conversions. An "||" combinator never survives the space split as
// a valid atom either.
var npmAtomRe = regexp.MustCompile(`^(>=|<=|>|<|~|\^)?\s*v?(\d+(?:\.\d+){0,2})([-+][\w.]+)?$`)

// parseNpm splits a space-separated npm range into its atoms.
func parseNpm(ctx context.Context, input string) ([]types.Atom, error) {
	segments := strings.Split(input, " ")
	atoms := make([]types.Atom, 0, len(segments))
	for _, segment := range segments {
		match := npmAtomRe.FindStringSubmatch(segment)
		if match == nil {
			log.Ctx(ctx).Warn().
				Str("constraint", input).
				Str("segment", segment).
				Msg("segment does not match the npm atom grammar")
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid npm range %q: bad segment %q", input, segment))
		}
		atoms = append(atoms, types.Atom{
			Op:     types.ConstraintOp(match[1]),
			Core:   strings.Split(match[2], "."),
			Suffix: match[3],
		})
	}
	return atoms, nil
}

// NpmToHashicorp rewrites an npm range as a HashiCorp constraint, joining
// atoms with ", ". Caret and tilde ranges both land on the pessimistic
// operator, padded to the component count "~>" needs to carry the same
// intent.
func NpmToHashicorp(ctx context.Context, input string) (string, error) {
	if input == "" {
		return input, nil
	}
	atoms, err := parseNpm(ctx, input)
	if err != nil {
		return "", err
	}
	out := make([]string, 0, len(atoms))
	for _, atom := range atoms {
		switch atom.Op {
		case types.ConstraintOpCaret:
			out = append(out, caretToPessimistic(atom))
		case types.ConstraintOpTilde:
			if atom.Suffix == "" && len(atom.Core) < 3 {
				out = append(out, "~> "+atom.Version()+".0")
			} else {
				out = append(out, "~> "+atom.Version())
			}
		case types.ConstraintOpNone:
			out = append(out, atom.Version())
		default:
			out = append(out, string(atom.Op)+" "+atom.Version())
		}
	}
	return strings.Join(out, ", "), nil
}

// caretToPessimistic maps a caret atom onto "~>". A suffix-free core of
// one or two components pads with ".0" so the pessimistic operator has a
// component to float. A full three-component core collapses to
// major.minor: caret guarantees compatibility below the next major, and
// "~> X.Y" says the same. Build metadata survives the collapse; a
// pre-release tail does not.
func caretToPessimistic(atom types.Atom) string {
	if atom.Suffix == "" && len(atom.Core) < 3 {
		return "~> " + atom.Version() + ".0"
	}
	if len(atom.Core) == 3 {
		bound := atom.Core[0] + "." + atom.Core[1]
		if strings.HasPrefix(atom.Suffix, "+") {
			bound += atom.Suffix
		}
		return "~> " + bound
	}
	return "~> " + atom.Version()
}
