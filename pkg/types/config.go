// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Default fence markers for Mermaid blocks embedded in Markdown.
const (
	DefaultOpenFence  = "```mermaid"
	DefaultCloseFence = "```"
)

// FenceConfig holds the markers that delimit a diagram block. A line whose
// trimmed value equals Open starts a block; Close ends it.
type FenceConfig struct {
	Open  string `json:"open" yaml:"open"`
	Close string `json:"close" yaml:"close"`
}

// WithDefaults returns a copy of f with empty markers replaced by the
// Markdown defaults.
func (f FenceConfig) WithDefaults() FenceConfig {
	if f.Open == "" {
		f.Open = DefaultOpenFence
	}
	if f.Close == "" {
		f.Close = DefaultCloseFence
	}
	return f
}

// RendererMode selects how the startup renderer probe behaves.
type RendererMode string

const (
	// RendererOff skips the probe entirely.
	RendererOff RendererMode = "off"
	// RendererWarn probes once and prints a warning when nothing is found.
	RendererWarn RendererMode = "warn"
	// RendererRequire probes once and aborts the run when nothing is found.
	RendererRequire RendererMode = "require"
)

// RendererConfig holds settings for the optional external Mermaid renderer.
// The renderer never decides a verdict; heuristic validation does.
type RendererConfig struct {
	// Mode is off, warn, or require.
	Mode RendererMode `json:"mode" yaml:"mode"`

	// Binary is the native renderer executable (default "mmdc").
	Binary string `json:"binary" yaml:"binary"`

	// Image is the container image used when Binary is not on PATH
	// (default "minlag/mermaid-cli").
	Image string `json:"image" yaml:"image"`

	// Render asks the renderer to render every heuristically valid block
	// and report failures as warnings.
	Render bool `json:"render" yaml:"render"`
}

// OutputFormat selects how run results are printed.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// ColorMode controls ANSI colouring of text output.
type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

// OutputConfig holds reporting settings.
type OutputConfig struct {
	Format OutputFormat `json:"format" yaml:"format"`
	Color  ColorMode    `json:"color" yaml:"color"`

	// Summary prints a one-line total across all files to stderr.
	Summary bool `json:"summary" yaml:"summary"`
}

// CheckConfig groups all settings for a check run.
type CheckConfig struct {
	Fence    FenceConfig    `json:"fence" yaml:"fence"`
	Renderer RendererConfig `json:"renderer" yaml:"renderer"`
	Output   OutputConfig   `json:"output" yaml:"output"`
}

// Validate rejects unknown enum values.
func (c CheckConfig) Validate() error {
	switch c.Renderer.Mode {
	case RendererOff, RendererWarn, RendererRequire:
	default:
		return fmt.Errorf("invalid renderer mode %q: use off, warn, or require", c.Renderer.Mode)
	}
	switch c.Output.Format {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unsupported format %q: use text, json, or yaml", c.Output.Format)
	}
	switch c.Output.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return fmt.Errorf("invalid color mode %q: use auto, on, or off", c.Output.Color)
	}
	return nil
}
