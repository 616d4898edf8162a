package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkoenig/framesmith/pkg/fonts"
	"github.com/mkoenig/framesmith/pkg/scene"
)

// fontsCommand creates the fonts command for resolving font CSS
// outside a compilation, mainly for debugging provider issues.
func (c *CLI) fontsCommand() *cobra.Command {
	var (
		fromScene bool
		output    string
	)

	cmd := &cobra.Command{
		Use:   "fonts [families|scene.json]",
		Short: "Resolve stylesheet CSS for font families",
		Long: `Resolve stylesheet CSS for font families.

Takes a comma-separated list of families (or, with --scene, a scene
document whose text families are collected) and prints the CSS the
compile command would attach to the unit. System families are filtered
out; provider failures degrade to an @import fallback.

Examples:
  framesmith fonts "Inter,Work Sans"
  framesmith fonts --scene landing.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFonts(cmd.Context(), args[0], fromScene, output)
		},
	}

	cmd.Flags().BoolVar(&fromScene, "scene", false, "treat the argument as a scene document and collect its families")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func (c *CLI) runFonts(ctx context.Context, arg string, fromScene bool, output string) error {
	logger := loggerFromContext(ctx)

	var families []string
	if fromScene {
		doc, err := scene.ImportFile(arg)
		if err != nil {
			return err
		}
		families = doc.FontFamilies()
	} else {
		for _, f := range strings.Split(arg, ",") {
			if f = strings.TrimSpace(f); f != "" {
				families = append(families, f)
			}
		}
	}

	remote := fonts.Filter(families)
	if len(remote) == 0 {
		printInfo("No non-system families to resolve")
		return nil
	}
	logger.Debug("resolving families", "requested", len(families), "remote", len(remote))

	resolver := c.newFontResolver()
	if resolver == nil {
		return fmt.Errorf("font resolution is disabled in config")
	}

	css, err := resolver.Resolve(ctx, remote)
	if err != nil {
		return fmt.Errorf("resolve fonts: %w", err)
	}

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := fmt.Fprint(out, css); err != nil {
		return err
	}
	if output != "" {
		printSuccess("Resolved %d families", len(remote))
		printFile(output)
	}
	return nil
}
