package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkoenig/framesmith/pkg/scene"
	"github.com/mkoenig/framesmith/pkg/treeviz"
)

// inspectCommand creates the inspect command for visualizing a scene
// tree as a diagram before compiling it.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [scene.json]",
		Short: "Render a scene tree as a diagram",
		Long: `Render a scene tree as a diagram.

The inspect command draws the document's node hierarchy with Graphviz:
nodes are labeled with name and type, colored by their widget
classification, and invisible (pruned) subtrees are dashed. Useful for
understanding what the compiler will emit before running compile.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateInspectFormat(format); err != nil {
				return err
			}
			return c.runInspect(cmd.Context(), args[0], output, format, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with the format extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include geometry and text snippets in labels")

	return cmd
}

// validateInspectFormat checks the requested diagram format.
func validateInspectFormat(format string) error {
	switch format {
	case "svg", "png", "dot":
		return nil
	}
	return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'dot')", format)
}

// runInspect loads the document, builds the DOT graph, and renders it.
func (c *CLI) runInspect(ctx context.Context, input, output, format string, detailed bool) error {
	doc, err := scene.ImportFile(input)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	dot := treeviz.ToDOT(doc, treeviz.Options{Detailed: detailed})

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = treeviz.RenderSVG(dot)
	case "png":
		data, err = treeviz.RenderPNG(dot)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	path := output
	if path == "" {
		path = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	}

	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d nodes", doc.Count()))
	if path != "" {
		printFile(path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty or "-", it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
