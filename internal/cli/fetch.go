package cli

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/shapesmith/shapesmith/pkg/canvas"
	"github.com/shapesmith/shapesmith/pkg/errors"
)

// fetchOpts holds the command-line flags for the fetch command.
type fetchOpts struct {
	output   string // output file path (stdout if empty)
	nodeID   string // restrict to one node subtree
	version  string // pin a document version
	depth    int    // traversal depth limit
	geometry bool   // include vector geometry
	noCache  bool   // bypass the document cache
	noPick   bool   // skip the interactive page picker
}

// fetchCommand creates the fetch command.
func (c *CLI) fetchCommand() *cobra.Command {
	opts := fetchOpts{}

	cmd := &cobra.Command{
		Use:   "fetch <link-or-key>",
		Short: "Fetch a canvas document tree",
		Long: `Fetch a document tree from the canvas API.

Accepts a shared file/design link or a bare document key. Requires an API
token, configured in ~/.config/shapesmith/config.toml or via SHAPESMITH_TOKEN.

When the document has multiple pages and no node is given, an interactive
picker narrows the fetch to one page.

Examples:
  shapesmith fetch https://shapesmith.app/file/aBcD1234eFgH5678/Landing-Page
  shapesmith fetch aBcD1234eFgH5678 --node 1:2 -o page.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			link, err := canvas.ParseLink(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cfg.Token == "" {
				return errors.New(errors.ErrCodeUnauthorized, "no API token configured (set SHAPESMITH_TOKEN or add token to config.toml)")
			}

			store, err := newCache(opts.noCache)
			if err != nil {
				return fmt.Errorf("init cache: %w", err)
			}
			defer store.Close()
			client := cfg.canvasClient(store)

			nodeID := opts.nodeID
			if nodeID == "" {
				nodeID = link.NodeID
			}

			fileOpts := canvas.FileOptions{
				Version: opts.version,
				Depth:   opts.depth,
			}
			if nodeID != "" {
				fileOpts.IDs = []string{nodeID}
			}
			if opts.geometry {
				fileOpts.Geometry = "paths"
			}

			spin := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %s...", link.Key))
			spin.Start()
			file, err := client.File(ctx, link.Key, fileOpts)
			if err != nil {
				spin.StopWithError(fmt.Sprintf("Fetch failed: %s", errors.UserMessage(err)))
				return err
			}
			spin.Stop()

			// Multi-page documents narrow to one page interactively.
			if nodeID == "" && len(file.Pages()) > 1 && !opts.noPick && isatty.IsTerminal(os.Stdout.Fd()) {
				page, err := pickPage(file.Pages())
				if err != nil {
					return err
				}
				if page != nil {
					fileOpts.IDs = []string{page.ID}
					file, err = client.File(ctx, link.Key, fileOpts)
					if err != nil {
						return err
					}
				}
			}

			printSuccess("Fetched %q", file.Name)
			printKeyValue("version", file.Version)
			if file.Document == nil {
				printWarning("Document is empty")
			} else {
				printStats(file.Document.Count(), false)
			}

			if err := writeDocument(file, opts.output); err != nil {
				return err
			}
			if opts.output != "" {
				printNextStep("Visualize the tree", fmt.Sprintf("%s inspect %s -o tree.svg", appName, opts.output))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.nodeID, "node", "", "restrict to one node subtree")
	cmd.Flags().StringVar(&opts.version, "version", "", "pin a specific document version")
	cmd.Flags().IntVar(&opts.depth, "depth", 0, "limit tree traversal depth (0 = unlimited)")
	cmd.Flags().BoolVar(&opts.geometry, "geometry", false, "include vector geometry")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the document cache")
	cmd.Flags().BoolVar(&opts.noPick, "no-pick", false, "skip the interactive page picker")

	return cmd
}

// pickPage runs the interactive page picker and returns the selection,
// or nil when the user quits without choosing.
func pickPage(pages []*canvas.Node) (*canvas.Node, error) {
	model := NewPageListModel(pages)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, fmt.Errorf("page picker: %w", err)
	}
	if m, ok := final.(PageListModel); ok && m.Selected != nil {
		return m.Selected, nil
	}
	return nil, nil
}

// writeDocument exports the fetched document as indented JSON.
func writeDocument(file *canvas.File, path string) error {
	if path == "" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(file)
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	printFile(path)
	return nil
}
