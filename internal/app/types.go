package app

import "rangeconv/internal/types"

type TranslateRequest struct {
	Direction  types.Direction
	Constraint string
	Verify     bool
}

type TranslateResult struct {
	Output string
}

type TranslateManifestRequest struct {
	Path       string
	OutputPath string
	Verify     bool
}

type TranslateManifestResult struct {
	Source       types.Grammar
	Target       types.Grammar
	Dependencies map[string]string
	Written      bool
}
