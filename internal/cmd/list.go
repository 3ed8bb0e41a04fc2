package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/InsaneWaifu/mc-launchermeta/pkg/launchermeta"
)

func newListCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list <version_manifest.json>",
		Short: "List the versions in a version-list manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			manifest, err := launchermeta.ParseManifest(data)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "latest release:  %s\n", manifest.Latest.Release)
			fmt.Fprintf(out, "latest snapshot: %s\n", manifest.Latest.Snapshot)
			for _, v := range manifest.Versions {
				if kind != "" && string(v.Kind) != kind {
					continue
				}
				fmt.Fprintf(out, "%-20s %-10s %s\n", v.ID, v.Kind, v.ReleaseTime)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "type", "", "Only show versions of this type (release, snapshot, old_beta, old_alpha)")

	return cmd
}
