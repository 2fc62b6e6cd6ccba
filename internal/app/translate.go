package app

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rangeconv/internal/core"
	"rangeconv/internal/types"
)

// Translate converts a single constraint in the requested direction.
// With Verify set, the output is additionally checked against the target
// ecosystem's own constraint parser.
func (s Service) Translate(ctx context.Context, req TranslateRequest) (TranslateResult, error) {
	switch req.Direction {
	case types.DirectionHashicorpToNpm:
		output, err := core.HashicorpToNpm(ctx, req.Constraint)
		if err != nil {
			return TranslateResult{}, err
		}
		if req.Verify {
			if err := core.VerifyNpm(output); err != nil {
				return TranslateResult{}, err
			}
		}
		return TranslateResult{Output: output}, nil
	case types.DirectionNpmToHashicorp:
		output, err := core.NpmToHashicorp(ctx, req.Constraint)
		if err != nil {
			return TranslateResult{}, err
		}
		if req.Verify {
			if err := core.VerifyHashicorp(output); err != nil {
				return TranslateResult{}, err
			}
		}
		return TranslateResult{Output: output}, nil
	default:
		return TranslateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown direction %q", req.Direction))
	}
}
