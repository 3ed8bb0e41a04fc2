package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newArgsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "args <version.json>",
		Short: "Resolve JVM and game arguments for a platform",
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
			if ver.MinecraftArguments != nil {
				fmt.Fprintf(out, "legacy arguments:\n  %s\n", *ver.MinecraftArguments)
				return nil
			}

			fmt.Fprintln(out, "jvm:")
			for _, arg := range ver.JVMArgs(ctx) {
				fmt.Fprintf(out, "  %s\n", arg)
			}
			fmt.Fprintln(out, "game:")
			for _, arg := range ver.GameArgs(ctx) {
				fmt.Fprintf(out, "  %s\n", arg)
			}
			return nil
		},
	}
}
