package cmd

import (
	"github.com/oneconcern/scenebundle/pkg/bundle"
	"github.com/oneconcern/scenebundle/pkg/dlogger"
	"github.com/spf13/cobra"
)

type flagsT struct {
	bundle struct {
		Output      string
		Placeholder string
		Manifest    bool
	}
	root struct {
		logLevel string
	}
}

var params = flagsT{}

func addOutputFlag(cmd *cobra.Command) string {
	output := "output"
	cmd.Flags().StringVar(&params.bundle.Output, output, bundle.DefaultRoot,
		"The bundle directory, relative to the working directory")
	return output
}

func addPlaceholderFlag(cmd *cobra.Command) string {
	placeholder := "placeholder"
	cmd.Flags().StringVar(&params.bundle.Placeholder, placeholder, bundle.DefaultPlaceholder,
		"The token standing for the bundle root in rewritten references")
	return placeholder
}

func addManifestFlag(cmd *cobra.Command) string {
	manifest := "manifest"
	cmd.Flags().BoolVar(&params.bundle.Manifest, manifest, false,
		"Also write a manifest of the relocated assets (manifest.yaml)")
	return manifest
}

func addLogLevelFlag(cmd *cobra.Command) string {
	logLevel := "log-level"
	cmd.Flags().StringVar(&params.root.logLevel, logLevel, dlogger.LogLevelInfo,
		`The logging level: "debug", "info", "warn", "error" or "none"`)
	return logLevel
}
