package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rangeconv/internal/app"
)

type manifestOptions struct {
	File   string
	Output string
	Verify bool
}

func newManifestCommand() *cobra.Command {
	opts := manifestOptions{}
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Translate every constraint in a manifest file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runManifest(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.File, "file", "", "Manifest file path")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the translated manifest to this path")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "Check each output against the target grammar parser")
	_ = viper.BindPFlag("file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runManifest(cmd *cobra.Command, opts manifestOptions) error {
	service := newAppService()
	result, err := service.TranslateManifest(commandContext(cmd), app.TranslateManifestRequest{
		Path:       resolveString(cmd, opts.File, "file", "file"),
		OutputPath: resolveString(cmd, opts.Output, "output", "output"),
		Verify:     opts.Verify,
	})
	if err != nil {
		return err
	}
	if result.Written {
		fmt.Printf("translated manifest written: %d dependencies, %s -> %s\n",
			len(result.Dependencies), result.Source, result.Target)
		return nil
	}
	names := make([]string, 0, len(result.Dependencies))
	for name := range result.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s: %s\n", name, result.Dependencies[name])
	}
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
