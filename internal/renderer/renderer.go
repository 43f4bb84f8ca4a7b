// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package renderer wraps the external Mermaid renderer (mermaid-cli). The
// renderer is optional and never authoritative: heuristic validation decides
// the verdict, and a render failure is only a warning.
//
// Detection prefers the native mmdc binary and falls back to running the
// mermaid-cli image under docker or podman.
package renderer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdiddy/mermaid-check/pkg/types"
)

const (
	binDocker = "docker"
	binPodman = "podman"

	defaultBinary = "mmdc"
	defaultImage  = "minlag/mermaid-cli"

	// containerWorkdir is where the mermaid-cli image expects its input.
	containerWorkdir = "/data"

	inputName  = "diagram.mmd"
	outputName = "diagram.svg"
)

// ErrUnavailable is returned by Startup when the renderer is required but
// cannot be found.
var ErrUnavailable = errors.New("mermaid renderer unavailable")

// Renderer renders one diagram's source.
type Renderer interface {
	// Name describes the backend (e.g. "mmdc" or "docker:minlag/mermaid-cli").
	Name() string

	// Available reports whether the backend can be invoked.
	Available() bool

	// Render renders diagram and returns an error carrying the renderer's
	// diagnostic output when it rejects the source.
	Render(diagram string) error
}

// Detector finds a usable renderer for cfg.
type Detector func(cfg types.RendererConfig) (Renderer, error)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	// RunCaptured runs the command and returns its stderr.
	RunCaptured(name string, args ...string) (string, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunCaptured(name string, args ...string) (string, error) {
	var stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.String(), err
}

// native runs the mmdc binary directly.
type native struct {
	bin  string
	exec executor
}

func (n *native) Name() string { return n.bin }

func (n *native) Available() bool {
	if _, err := n.exec.LookPath(n.bin); err != nil {
		return false
	}
	return n.exec.RunSilent(n.bin, "--version") == nil
}

func (n *native) Render(diagram string) error {
	return withScratch(diagram, func(dir string) (string, error) {
		return n.exec.RunCaptured(n.bin,
			"-i", filepath.Join(dir, inputName),
			"-o", filepath.Join(dir, outputName),
		)
	})
}

// container runs the mermaid-cli image under docker or podman. Both share
// the same logic; they differ only in binary name and the subcommand used
// to check image existence.
type container struct {
	bin           string
	imageCheckCmd []string // e.g. ["image", "inspect"] for docker
	image         string
	exec          executor
}

func (c *container) Name() string { return c.bin + ":" + c.image }

func (c *container) Available() bool {
	if _, err := c.exec.LookPath(c.bin); err != nil {
		return false
	}
	if c.exec.RunSilent(c.bin, "info") != nil {
		return false
	}
	args := make([]string, 0, len(c.imageCheckCmd)+1)
	args = append(args, c.imageCheckCmd...)
	args = append(args, c.image)
	return c.exec.RunSilent(c.bin, args...) == nil
}

func (c *container) Render(diagram string) error {
	return withScratch(diagram, func(dir string) (string, error) {
		return c.exec.RunCaptured(c.bin,
			"run", "--rm",
			"-v", dir+":"+containerWorkdir,
			c.image,
			"-i", containerWorkdir+"/"+inputName,
			"-o", containerWorkdir+"/"+outputName,
		)
	})
}

// withScratch writes diagram into a fresh temp directory, hands the
// directory to run, and removes it afterwards. Cleanup errors are ignored.
func withScratch(diagram string, run func(dir string) (string, error)) error {
	dir, err := os.MkdirTemp("", "mermaid-")
	if err != nil {
		return fmt.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(dir)

	if err := os.WriteFile(filepath.Join(dir, inputName), []byte(diagram), 0o644); err != nil {
		return fmt.Errorf("writing scratch diagram: %w", err)
	}

	stderr, err := run(dir)
	if err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return errors.New(firstLine(msg))
		}
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

var defaultExec = &osExecutor{}

// Detect tries the native binary first, then docker, then podman. Returns
// an error if none is usable.
func Detect(cfg types.RendererConfig) (Renderer, error) {
	return detect(defaultExec, cfg)
}

func detect(exec executor, cfg types.RendererConfig) (Renderer, error) {
	bin := cfg.Binary
	if bin == "" {
		bin = defaultBinary
	}
	image := cfg.Image
	if image == "" {
		image = defaultImage
	}

	candidates := []Renderer{
		&native{bin: bin, exec: exec},
		&container{bin: binDocker, imageCheckCmd: []string{"image", "inspect"}, image: image, exec: exec},
		&container{bin: binPodman, imageCheckCmd: []string{"image", "exists"}, image: image, exec: exec},
	}
	for _, r := range candidates {
		if r.Available() {
			return r, nil
		}
	}

	return nil, fmt.Errorf(
		"neither %s nor %s/%s with image %s found or operational",
		bin, binDocker, binPodman, image,
	)
}

// Startup runs the one-time renderer probe selected by cfg.Mode and writes
// any diagnostics to w. Rendering implies at least a warn-level probe.
//
// It returns the detected renderer, or nil when the probe was skipped or
// failed in warn mode. In require mode a failed probe returns an error
// wrapping ErrUnavailable.
func Startup(cfg types.RendererConfig, find Detector, w io.Writer) (Renderer, error) {
	mode := cfg.Mode
	if mode == "" || mode == types.RendererOff {
		if !cfg.Render {
			return nil, nil
		}
		mode = types.RendererWarn
	}

	r, err := find(cfg)
	if err == nil {
		return r, nil
	}

	if mode == types.RendererRequire {
		fmt.Fprintln(w, "Error: @mermaid-js/mermaid-cli is not installed.")
		fmt.Fprintln(w, "Please install it using: npm install -g @mermaid-js/mermaid-cli")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	fmt.Fprintf(w, "warning: %v: %v\n", ErrUnavailable, err)
	return nil, nil
}
