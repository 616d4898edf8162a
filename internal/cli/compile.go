package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkoenig/framesmith/pkg/pipeline"
	"github.com/mkoenig/framesmith/pkg/project"
	"github.com/mkoenig/framesmith/pkg/scene"
)

// compileOpts holds the command-line flags for the compile command.
type compileOpts struct {
	output  string // target project directory
	name    string // component name override
	target  string // output target
	noFonts bool   // skip remote font resolution
	noCache bool   // disable the unit cache
	refresh bool   // recompile even on a cache hit
	stdout  bool   // print the unit instead of writing files
	pick    bool   // interactively pick one root frame
}

// compileCommand creates the compile command, the main entry point:
// scene JSON in, React component plus stylesheet out.
func (c *CLI) compileCommand() *cobra.Command {
	opts := compileOpts{}

	cmd := &cobra.Command{
		Use:   "compile [scene.json]",
		Short: "Compile a scene document into a React component",
		Long: `Compile a scene document into a React component.

The input is the JSON export of a design-tool scene tree. The output is
a <Name>.jsx component and a <Name>.css stylesheet written into the
target project's src/components directory; the project scaffold is
created on first use.

Examples:
  framesmith compile landing.json                 # Write into ./src/components
  framesmith compile landing.json -o ./web        # Target project directory
  framesmith compile landing.json -n HeroCard     # Override the component name
  framesmith compile landing.json --stdout        # Print instead of writing
  framesmith compile landing.json --pick          # Choose one root frame`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				opts.output = c.Config.Output.Dir
			}
			if opts.output == "" {
				opts.output = "."
			}
			if opts.target == "" {
				opts.target = c.Config.Output.Target
			}
			return c.runCompile(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "target project directory (default: config [output] dir, else .)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "component name (overrides the first root's layer name)")
	cmd.Flags().StringVar(&opts.target, "target", "", "output target: react (default)")
	cmd.Flags().BoolVar(&opts.noFonts, "no-fonts", false, "skip remote font resolution")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompile even when the unit is cached")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "print the component and stylesheet instead of writing files")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "interactively pick one root frame to compile")

	return cmd
}

// runCompile loads the document, runs the pipeline, and writes the unit
// into the provisioned project (or stdout).
func (c *CLI) runCompile(ctx context.Context, input string, opts *compileOpts) error {
	logger := loggerFromContext(ctx)

	doc, err := scene.ImportFile(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded document", "roots", len(doc.Nodes), "nodes", doc.Count())

	if opts.pick && len(doc.Nodes) > 1 {
		root, err := pickRoot(doc.Nodes)
		if err != nil {
			return err
		}
		if root == nil {
			printInfo("No frame selected")
			return nil
		}
		doc = &scene.Document{Name: doc.Name, Nodes: []*scene.Node{root}}
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Target:  opts.target,
		Name:    opts.name,
		Fonts:   !opts.noFonts && !c.Config.Fonts.Disable,
		Refresh: opts.refresh,
		Logger:  logger,
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Compiling %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, doc, pipeOpts)
	if err != nil {
		spinner.StopWithError("Compilation failed")
		return err
	}
	spinner.Stop()

	if opts.stdout {
		fmt.Fprintln(os.Stdout, result.Unit.Markup)
		fmt.Fprintln(os.Stdout, result.Unit.Stylesheet)
		return nil
	}

	prov := &project.Provisioner{Log: c.Logger}
	if err := prov.Provision(opts.output, result.Unit.Name); err != nil {
		return err
	}
	written, err := prov.WriteUnit(opts.output, result.Unit)
	if err != nil {
		return err
	}

	printSuccess("Compiled %s", StyleHighlight.Render(result.Unit.Name))
	for _, path := range written {
		printFile(path)
	}
	printStats(result.Stats.Emitted, result.Stats.Pruned, result.CacheInfo.UnitHit)
	if len(result.Stats.Families) > 0 {
		printDetail("fonts: %v", result.Stats.Families)
	}
	printNextStep("Preview", fmt.Sprintf("cd %s && npm install && npm run dev", opts.output))
	return nil
}
