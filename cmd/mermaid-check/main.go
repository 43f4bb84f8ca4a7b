// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mermaid-check CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/pdiddy/mermaid-check/internal/renderer"
	"github.com/pdiddy/mermaid-check/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd checks the files named on the command line.
var rootCmd = &cobra.Command{
	Use:   "mermaid-check [flags] <file1> [file2 ...]",
	Short: "Check Mermaid diagrams embedded in text files",
	Long: `mermaid-check extracts fenced Mermaid blocks from text files and runs
fast heuristic syntax checks on each one: balanced quotes and braces,
required keywords, and recognised connection tokens. No renderer is needed
for the verdict.

The exit status is 0 when every file exists and every diagram passes, and 1
otherwise.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := configFromViper()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	r := runner{
		cfg:        cfg,
		detect:     renderer.Detect,
		stdout:     cmd.OutOrStdout(),
		stderr:     cmd.ErrOrStderr(),
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
	}
	_, err := r.run(args)
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mermaid-check.yaml or ~/.config/mermaid-check/mermaid-check.yaml)")

	f := rootCmd.PersistentFlags()
	f.String("open-fence", types.DefaultOpenFence, "line that opens a diagram block")
	f.String("close-fence", types.DefaultCloseFence, "line that closes a diagram block")
	f.String("renderer", string(types.RendererOff), "renderer probe at startup: off, warn, or require")
	f.String("renderer-binary", "mmdc", "native mermaid-cli executable")
	f.String("renderer-image", "minlag/mermaid-cli", "mermaid-cli container image used when the binary is missing")
	f.Bool("render", false, "render each valid diagram and report renderer failures as warnings")
	f.String("format", string(types.OutputText), "output format: text, json, or yaml")
	f.String("color", string(types.ColorAuto), "colorize text output: auto, on, or off")
	f.Bool("summary", false, "print a one-line total across all files to stderr")

	bindFlag("fence.open", "open-fence")
	bindFlag("fence.close", "close-fence")
	bindFlag("renderer.mode", "renderer")
	bindFlag("renderer.binary", "renderer-binary")
	bindFlag("renderer.image", "renderer-image")
	bindFlag("renderer.render", "render")
	bindFlag("output.format", "format")
	bindFlag("output.color", "color")
	bindFlag("output.summary", "summary")
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mermaid-check")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mermaid-check"))
		}
	}

	viper.SetEnvPrefix("MERMAID_CHECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// configFromViper assembles the effective configuration from flags, the
// environment, and the config file, in viper's precedence order.
func configFromViper() types.CheckConfig {
	return types.CheckConfig{
		Fence: types.FenceConfig{
			Open:  viper.GetString("fence.open"),
			Close: viper.GetString("fence.close"),
		},
		Renderer: types.RendererConfig{
			Mode:   types.RendererMode(viper.GetString("renderer.mode")),
			Binary: viper.GetString("renderer.binary"),
			Image:  viper.GetString("renderer.image"),
			Render: viper.GetBool("renderer.render"),
		},
		Output: types.OutputConfig{
			Format:  types.OutputFormat(viper.GetString("output.format")),
			Color:   types.ColorMode(viper.GetString("output.color")),
			Summary: viper.GetBool("output.summary"),
		},
	}
}

// reported tells whether err was already described on stderr.
func reported(err error) bool {
	return errors.Is(err, errChecksFailed) ||
		errors.Is(err, errUsage) ||
		errors.Is(err, renderer.ErrUnavailable)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !reported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
