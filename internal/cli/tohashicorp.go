package cli

import (
	"github.com/spf13/cobra"

	"rangeconv/internal/types"
)

func newToHashicorpCommand() *cobra.Command {
	opts := translateOptions{}
	cmd := &cobra.Command{
		Use:   "to-hashicorp <range>",
		Short: "Translate an npm range into a HashiCorp constraint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args[0], types.DirectionNpmToHashicorp, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "Check the output against the target grammar parser")
	return cmd
}
