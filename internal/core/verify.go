package core

import (
	"fmt"

	semver "github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"
	goversion "github.com/hashicorp/go-version"
)

// VerifyNpm checks that expr parses under the npm range grammar. A
// failure means the translator emitted something the target ecosystem
// would reject, which is a translator bug rather than a caller error.
func VerifyNpm(expr string) error {
	if expr == "" {
		return nil
	}
	if _, err := semver.NewConstraint(expr); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("produced npm range %q rejected by target grammar", expr)).
			WithCause(err)
	}
	return nil
}

// VerifyHashicorp checks that expr parses under the HashiCorp constraint
// grammar.
func VerifyHashicorp(expr string) error {
	if expr == "" {
		return nil
	}
	if _, err := goversion.NewConstraint(expr); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("produced hashicorp constraint %q rejected by target grammar", expr)).
			WithCause(err)
	}
	return nil
}
