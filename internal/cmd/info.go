package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <version.json>",
		Short: "Show version metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ver, err := loadVersion(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id:              %s\n", ver.ID)
			fmt.Fprintf(out, "type:            %s\n", ver.Kind)
			fmt.Fprintf(out, "released:        %s\n", ver.ReleaseTime)
			fmt.Fprintf(out, "main class:      %s\n", ver.MainClass)
			fmt.Fprintf(out, "min launcher:    %d\n", ver.MinimumLauncherVersion)
			if ver.JavaVersion != nil {
				fmt.Fprintf(out, "java:            %s (major %d)\n", ver.JavaVersion.Component, ver.JavaVersion.MajorVersion)
			}
			fmt.Fprintf(out, "assets:          %s (%d bytes total)\n", ver.Assets, ver.AssetIndex.TotalSize)
			fmt.Fprintf(out, "libraries:       %d\n", len(ver.Libraries))
			if ver.Arguments != nil {
				fmt.Fprintf(out, "arguments:       %d game, %d jvm\n", len(ver.Arguments.Game), len(ver.Arguments.JVM))
			}
			if ver.MinecraftArguments != nil {
				fmt.Fprintf(out, "legacy args:     %s\n", *ver.MinecraftArguments)
			}
			if ver.Logging != nil && ver.Logging.Client != nil {
				fmt.Fprintf(out, "logging:         %s (%s)\n", ver.Logging.Client.File.ID, ver.Logging.Client.Kind)
			}
			return nil
		},
	}
}
