package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shapesmith/shapesmith/pkg/canvas"
	"github.com/shapesmith/shapesmith/pkg/errors"
	"github.com/shapesmith/shapesmith/pkg/render"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	output   string // SVG output path
	dotOnly  bool   // print DOT source instead of rendering
	detailed bool   // include node types and bounds in labels
	maxDepth int    // limit rendered tree depth
	noCache  bool   // bypass the document cache
}

// inspectCommand creates the inspect command, which visualizes a
// document's node tree as a node-link diagram.
func (c *CLI) inspectCommand() *cobra.Command {
	opts := inspectOpts{}

	cmd := &cobra.Command{
		Use:   "inspect <link-key-or-file>",
		Short: "Visualize a document tree as a node-link diagram",
		Long: `Visualize a document's node hierarchy as a Graphviz node-link diagram.

The argument may be a shared link, a bare document key, or the path of a
document JSON file produced by 'shapesmith fetch'.

Examples:
  shapesmith inspect aBcD1234eFgH5678 -o tree.svg
  shapesmith inspect page.json --detailed -o tree.svg
  shapesmith inspect page.json --dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.loadTree(cmd, args[0], opts.noCache)
			if err != nil {
				return err
			}

			dot := render.TreeToDOT(root, render.TreeOptions{
				Detailed: opts.detailed,
				MaxDepth: opts.maxDepth,
			})

			if opts.dotOnly {
				fmt.Println(dot)
				return nil
			}

			svg, err := render.RenderDOT(dot)
			if err != nil {
				return fmt.Errorf("render diagram: %w", err)
			}

			path := opts.output
			if path == "" {
				path = "tree.svg"
			}
			if err := errors.ValidateOutputPath(path); err != nil {
				return err
			}
			if err := os.WriteFile(path, svg, 0o644); err != nil {
				return fmt.Errorf("write svg: %w", err)
			}

			printSuccess("Diagram written")
			printFile(path)
			printStats(root.Count(), false)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "SVG output file (default tree.svg)")
	cmd.Flags().BoolVar(&opts.dotOnly, "dot", false, "print DOT source instead of rendering")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include node types and bounds in labels")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "limit rendered tree depth (0 = unlimited)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the document cache")

	return cmd
}

// loadTree resolves the inspect argument into a document root, either
// from a local JSON file or by fetching from the API.
func (c *CLI) loadTree(cmd *cobra.Command, arg string, noCache bool) (*canvas.Node, error) {
	if _, err := os.Stat(arg); err == nil {
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		var file canvas.File
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse document file")
		}
		if file.Document == nil {
			// Allow a bare node tree too.
			var node canvas.Node
			if err := json.Unmarshal(data, &node); err != nil || node.ID == "" {
				return nil, errors.New(errors.ErrCodeInvalidInput, "no document tree in %s", arg)
			}
			return &node, nil
		}
		return file.Document, nil
	}

	link, err := canvas.ParseLink(arg)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Token == "" {
		return nil, errors.New(errors.ErrCodeUnauthorized, "no API token configured (set SHAPESMITH_TOKEN or add token to config.toml)")
	}

	store, err := newCache(noCache)
	if err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}
	defer store.Close()

	fileOpts := canvas.FileOptions{}
	if link.NodeID != "" {
		fileOpts.IDs = []string{link.NodeID}
	}

	file, err := cfg.canvasClient(store).File(cmd.Context(), link.Key, fileOpts)
	if err != nil {
		return nil, err
	}
	return file.Document, nil
}
