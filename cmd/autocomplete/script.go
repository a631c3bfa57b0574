package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsuarezmule/plugin-autocomplete/catalog"
	"github.com/rsuarezmule/plugin-autocomplete/completion"
)

func newScriptCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "script <bash|zsh>",
		Short: "Print one shell's completion script to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			generator := completion.GetGenerator(shell)
			if generator == nil {
				return fmt.Errorf("unsupported shell %q, want bash or zsh", shell)
			}

			manifest, err := loadManifest(manifestPath)
			if err != nil {
				return err
			}
			if shell == "zsh" && !manifest.structural() {
				return fmt.Errorf("the zsh dialect needs a structural topic separator, manifest declares %q", manifest.TopicSeparator)
			}

			cat := catalog.Build(manifest.Plugins, nil)
			snap := completion.NewSnapshot(cat)
			cmd.Print(generator.Generate(manifest.Program, snap))
			return nil
		},
	}

	addManifestFlag(cmd.Flags(), &manifestPath)
	return cmd
}
