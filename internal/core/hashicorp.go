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

// hashicorpAtomRe matches a single atom of a HashiCorp constraint list:
// an optional operator, an optional "v" prefix, a core of 1-3
// dot-separated integer components, and an optional pre-release or
// build-metadata tail. Longer operator tokens are listed first.
var hashicorpAtomRe = regexp.MustCompile(`^(~>|>=|<=|!=|=|>|<)?\s*v?(\d+(?:\.\d+){0,2})([-+][\w.]+)?$`)

// parseHashicorp splits a comma-separated HashiCorp constraint into its
// atoms. The first segment that fails the atom grammar aborts the parse.
func parseHashicorp(ctx context.Context, input string) ([]types.Atom, error) {
	segments := strings.Split(input, ",")
	atoms := make([]types.Atom, 0, len(segments))
	for _, segment := range segments {
		match := hashicorpAtomRe.FindStringSubmatch(strings.TrimSpace(segment))
		if match == nil {
			log.Ctx(ctx).Warn().
				Str("constraint", input).
				Str("segment", segment).
				Msg("segment does not match the hashicorp atom grammar")
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid hashicorp constraint %q: bad segment %q", input, segment))
		}
		atoms = append(atoms, types.Atom{
			Op:     types.ConstraintOp(match[1]),
			Core:   strings.Split(match[2], "."),
			Suffix: match[3],
		})
	}
	return atoms, nil
}

// HashicorpToNpm rewrites a HashiCorp constraint as an npm range. The
// conversion is purely syntactic: each atom maps to its npm spelling and
// the results join with npm's implicit-AND space. A "~>" atom widens to
// ">=" when only a major component is given, since npm has no operator
// for "this major or any later one"; that widening loses the upper bound.
func HashicorpToNpm(ctx context.Context, input string) (string, error) {
	if input == "" {
		return input, nil
	}
	atoms, err := parseHashicorp(ctx, input)
	if err != nil {
		return "", err
	}
	out := make([]string, 0, len(atoms))
	for _, atom := range atoms {
		switch atom.Op {
		case types.ConstraintOpNone, types.ConstraintOpEq:
			out = append(out, atom.Version())
		case types.ConstraintOpNe:
			log.Ctx(ctx).Warn().
				Str("constraint", input).
				Str("segment", "!="+atom.Version()).
				Msg("npm ranges cannot express exclusion")
			return "", errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("unsupported constraint %q: npm has no equivalent for !=%s", input, atom.Version()))
		case types.ConstraintOpPessimistic:
			switch len(atom.Core) {
			case 1:
				out = append(out, ">="+atom.Version())
			case 2:
				out = append(out, "^"+atom.Version())
			default:
				out = append(out, "~"+atom.Version())
			}
		default:
			out = append(out, string(atom.Op)+atom.Version())
		}
	}
	return strings.Join(out, " "), nil
}
