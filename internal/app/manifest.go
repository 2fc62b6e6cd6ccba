package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rangeconv/internal/types"
)

// TranslateManifest loads a manifest, translates every constraint into
// the other grammar, and optionally writes the result. The first
// constraint that fails to convert aborts the whole manifest; nothing
// partial is written.
func (s Service) TranslateManifest(ctx context.Context, req TranslateManifestRequest) (TranslateManifestResult, error) {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return TranslateManifestResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	manifest, err := s.Manifest.Load(path)
	if err != nil {
		return TranslateManifestResult{}, err
	}
	assert.NotEmpty(ctx, string(manifest.Source), "manifest source grammar must be set")

	var direction types.Direction
	var target types.Grammar
	switch manifest.Source {
	case types.GrammarHashicorp:
		direction = types.DirectionHashicorpToNpm
		target = types.GrammarNpm
	case types.GrammarNpm:
		direction = types.DirectionNpmToHashicorp
		target = types.GrammarHashicorp
	default:
		return TranslateManifestResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown source grammar %q", manifest.Source))
	}

	names := make([]string, 0, len(manifest.Dependencies))
	for name := range manifest.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	translated := make(map[string]string, len(names))
	for _, name := range names {
		result, err := s.Translate(ctx, TranslateRequest{
			Direction:  direction,
			Constraint: manifest.Dependencies[name],
			Verify:     req.Verify,
		})
		if err != nil {
			log.Ctx(ctx).Warn().Str("dependency", name).Msg("constraint failed to translate")
			return TranslateManifestResult{}, err
		}
		translated[name] = result.Output
	}
	log.Ctx(ctx).Debug().Int("deps", len(translated)).Msg("manifest translated")

	result := TranslateManifestResult{
		Source:       manifest.Source,
		Target:       target,
		Dependencies: translated,
	}
	if req.OutputPath != "" {
		out := types.Manifest{Source: target, Dependencies: translated}
		if err := s.Manifest.Write(req.OutputPath, out); err != nil {
			return TranslateManifestResult{}, err
		}
		result.Written = true
	}
	return result, nil
}
