package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newLibrariesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "libraries <version.json>",
		Short: "List the libraries a platform needs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ver, err := loadVersion(args[0])
			if err != nil {
				return err
			}
			ctx, err := buildContext()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, lib := range ver.ActiveLibraries(ctx) {
				if lib.Downloads == nil || lib.Downloads.Artifact == nil {
					slog.Warn("library has no artifact to fetch", "name", lib.Name)
				} else {
					fmt.Fprintf(out, "%s\n  %s (%d bytes)\n", lib.Name, lib.Downloads.Artifact.Path, lib.Downloads.Artifact.Size)
				}
				if native, ok := lib.NativeArtifact(ctx); ok {
					fmt.Fprintf(out, "  natives: %s (%d bytes)\n", native.Path, native.Size)
				}
			}
			return nil
		},
	}
}
