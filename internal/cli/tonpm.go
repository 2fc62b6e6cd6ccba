package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"rangeconv/internal/app"
	"rangeconv/internal/types"
)

type translateOptions struct {
	Verify bool
}

func newToNpmCommand() *cobra.Command {
	opts := translateOptions{}
	cmd := &cobra.Command{
		Use:   "to-npm <constraint>",
		Short: "Translate a HashiCorp constraint into an npm range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args[0], types.DirectionHashicorpToNpm, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "Check the output against the target grammar parser")
	return cmd
}

func runTranslate(cmd *cobra.Command, constraint string, direction types.Direction, opts translateOptions) error {
	service := newAppService()
	result, err := service.Translate(commandContext(cmd), app.TranslateRequest{
		Direction:  direction,
		Constraint: constraint,
		Verify:     opts.Verify,
	})
	if err != nil {
		return err
	}
	fmt.Println(result.Output)
	return nil
}
