package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/rsuarezmule/plugin-autocomplete/catalog"
	"github.com/rsuarezmule/plugin-autocomplete/completion"
)

func newGenerateCmd() *cobra.Command {
	var (
		manifestPath string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and install completion scripts for every supported shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := zap.NewNop()
			if verbose {
				var err error
				logger, err = zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("failed to build logger: %w", err)
				}
				defer logger.Sync()
			}

			manifest, err := loadManifest(manifestPath)
			if err != nil {
				return err
			}

			cat := catalog.Build(manifest.Plugins, logger)
			snap := completion.NewSnapshot(cat)

			manager, err := completion.NewManager(manifest.Program, logger)
			if err != nil {
				return err
			}
			if !manifest.structural() {
				manager.Shells = []string{"bash"}
			}

			if err := manager.Write(snap); err != nil {
				return err
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				printNextSteps(cmd, manager, snap)
			}
			return nil
		},
	}

	addManifestFlag(cmd.Flags(), &manifestPath)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log generation progress")
	return cmd
}

func printNextSteps(cmd *cobra.Command, manager *completion.Manager, snap completion.Snapshot) {
	cmd.Printf("Wrote completion scripts for %s:\n", manager.ProgramName)
	for _, artifact := range manager.Artifacts(snap) {
		cmd.Printf("  %s\t%s\n", artifact.Shell, artifact.Path)
	}
	cmd.Println("\nOpen a new shell, or source the setup script for your shell, to enable completions.")
}
