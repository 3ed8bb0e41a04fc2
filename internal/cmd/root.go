package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/InsaneWaifu/mc-launchermeta/pkg/launchermeta"
)

type contextOptions struct {
	OSName       string
	OSArch       string
	OSVersion    string
	Features     []string
	FeaturesFile string
	Debug        bool
}

var rootOpts contextOptions

func NewRootCmd() *cobra.Command {
	current := launchermeta.CurrentContext()

	cmd := &cobra.Command{
		Use:           "mc-launchermeta",
		Short:         "Inspect Minecraft version manifests",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if rootOpts.Debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&rootOpts.OSName, "os", current.OSName, "Target OS family (linux, osx, windows)")
	cmd.PersistentFlags().StringVar(&rootOpts.OSArch, "arch", current.OSArch, "Target architecture (x86, x86_64, arm64)")
	cmd.PersistentFlags().StringVar(&rootOpts.OSVersion, "os-version", "", "Target OS version string")
	cmd.PersistentFlags().StringArrayVar(&rootOpts.Features, "feature", nil, "Enable a feature flag (repeatable)")
	cmd.PersistentFlags().StringVar(&rootOpts.FeaturesFile, "features", "", "YAML file mapping feature names to booleans")
	cmd.PersistentFlags().BoolVar(&rootOpts.Debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newInfoCmd())
	cmd.AddCommand(newArgsCmd())
	cmd.AddCommand(newLibrariesCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}

func buildContext() (launchermeta.Context, error) {
	features := map[string]bool{}
	if rootOpts.FeaturesFile != "" {
		data, err := os.ReadFile(rootOpts.FeaturesFile)
		if err != nil {
			return launchermeta.Context{}, fmt.Errorf("read features file: %w", err)
		}
		if err := yaml.Unmarshal(data, &features); err != nil {
			return launchermeta.Context{}, fmt.Errorf("parse features file: %w", err)
		}
	}
	for _, name := range rootOpts.Features {
		features[name] = true
	}
	return launchermeta.Context{
		OSName:    rootOpts.OSName,
		OSArch:    rootOpts.OSArch,
		OSVersion: rootOpts.OSVersion,
		Features:  features,
	}, nil
}

func loadVersion(path string) (*launchermeta.Version, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ver, err := launchermeta.ParseVersion(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	slog.Debug("decoded version", "id", ver.ID, "type", ver.Kind, "libraries", len(ver.Libraries))
	return ver, nil
}
