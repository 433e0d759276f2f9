// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/oneconcern/scenebundle/pkg/bundle"
	"github.com/oneconcern/scenebundle/pkg/dlogger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "SCENEBUNDLE"

// rootCmd converts the scene document given as its only argument
var rootCmd = &cobra.Command{
	Use:   "scenebundle <scene.json>",
	Short: "Scenebundle relocates a scene document and its assets into a bundle",
	Long: `Scenebundle relocates a scene document and the files it refers to into a self-contained bundle.

Every string in the settings of sources and transitions that names a file or a directory
on disk is copied into the bundle and rewritten as "<REPLACE|ME>/data/<name>".

The bundle is written in the "output" directory:
  output/data.json   the rewritten scene document
  output/data/       the copied files and directories
`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			wrapFatalWithCodef(usageExitCode, "Missing file argument.")
			return
		}
		if config == nil {
			return
		}

		logger, err := dlogger.GetLogger(config.LogLevel)
		if err != nil {
			wrapFatalln("invalid log level", err)
			return
		}
		defer func() {
			_ = logger.Sync()
		}()

		_, err = bundle.Convert(args[0],
			bundle.Root(config.Output),
			bundle.Placeholder(config.Placeholder),
			bundle.WithManifest(config.Manifest),
			bundle.Logger(logger),
		)
		if err != nil {
			wrapFatalln(fmt.Sprintf("convert scene %q", args[0]), err)
			return
		}
	},
	SilenceErrors: true,
}

var (
	config *CLIConfig

	// flags overriding configuration keys of the same name
	configFlags []string
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)

	configFlags = []string{
		addOutputFlag(rootCmd),
		addPlaceholderFlag(rootCmd),
		addManifestFlag(rootCmd),
		addLogLevelFlag(rootCmd),
	}

	cobra.OnInitialize(initConfig)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	for _, flag := range configFlags {
		if err := viper.BindPFlag(flag, rootCmd.Flags().Lookup(flag)); err != nil {
			wrapFatalln("bind flag", err)
		}
	}
	viper.SetDefault("output", bundle.DefaultRoot)
	viper.SetDefault("placeholder", bundle.DefaultPlaceholder)
	viper.SetDefault("log-level", dlogger.LogLevelInfo)

	if cfg := os.Getenv(envPrefix + "_CONFIG"); cfg != "" {
		// Use config file from the environment.
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.scenebundle")
		viper.AddConfigPath("/etc/scenebundle")
		viper.SetConfigName("scenebundle")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		wrapFatalln("read configuration", err)
		return
	}
}
