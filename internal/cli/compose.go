package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shapesmith/shapesmith/pkg/errors"
	"github.com/shapesmith/shapesmith/pkg/render"
	"github.com/shapesmith/shapesmith/pkg/scene"
)

// composeOpts holds the command-line flags for the compose command.
type composeOpts struct {
	output string // scene JSON output path (stdout if empty)
	svg    string // optional SVG preview path
	png    string // optional PNG preview path
	grid   int    // shortcut: compose a grid of n rectangles
}

// composeCommand creates the compose command.
func (c *CLI) composeCommand() *cobra.Command {
	opts := composeOpts{}

	cmd := &cobra.Command{
		Use:   "compose [input.json]",
		Short: "Compose declarative shape configs into an ordered scene",
		Long: `Compose declarative shape configs into a fully resolved scene.

The input file may contain a message envelope, a single shape config, or an
array of shape configs:

  {"type": "create-shapes", "config": {"shapes": [...]}}
  {"type": "rectangle", "width": 100, "fill": "blue"}
  [{"type": "star", "zIndex": 2}, {"type": "ellipse", "zIndex": 1}]

Examples:
  shapesmith compose shapes.json -o scene.json
  shapesmith compose shapes.json --svg preview.svg
  shapesmith compose --grid 5 -o grid.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			msg, err := readComposeInput(args, opts.grid)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			handler := scene.NewHandler(nil)
			result, err := handler.Handle(cmd.Context(), *msg)
			if err != nil {
				return fmt.Errorf("compose: %w", err)
			}
			prog.done(fmt.Sprintf("Composed %d nodes", len(result.Nodes)))

			if err := writeScene(result, opts.output); err != nil {
				return err
			}
			if opts.output != "" {
				printSuccess("Scene written")
				printFile(opts.output)
				printStats(len(result.Nodes), false)
			}

			if opts.svg != "" {
				if err := errors.ValidateOutputPath(opts.svg); err != nil {
					return err
				}
				if err := os.WriteFile(opts.svg, render.RenderSVG(result), 0o644); err != nil {
					return fmt.Errorf("write svg: %w", err)
				}
				printFile(opts.svg)
			}
			if opts.png != "" {
				if err := errors.ValidateOutputPath(opts.png); err != nil {
					return err
				}
				data, err := render.RenderPNG(result)
				if err != nil {
					return fmt.Errorf("render png: %w", err)
				}
				if err := os.WriteFile(opts.png, data, 0o644); err != nil {
					return fmt.Errorf("write png: %w", err)
				}
				printFile(opts.png)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "scene output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "write an SVG preview to this path")
	cmd.Flags().StringVar(&opts.png, "png", "", "write a PNG preview to this path")
	cmd.Flags().IntVar(&opts.grid, "grid", 0, "compose a grid of n rectangles instead of reading input")

	return cmd
}

// readComposeInput turns the command arguments into a message envelope.
// Bare configs and config arrays are wrapped in the matching message
// type so the handler sees one input shape.
func readComposeInput(args []string, grid int) (*scene.Message, error) {
	if grid > 0 {
		return &scene.Message{Type: scene.MessageCreateGrid, Count: grid}, nil
	}
	if len(args) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "an input file or --grid is required")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return parseComposeInput(data)
}

func parseComposeInput(data []byte) (*scene.Message, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "input is empty")
	}

	// A top-level array is a batch of configs.
	if strings.HasPrefix(trimmed, "[") {
		wrapped, err := json.Marshal(map[string]json.RawMessage{"shapes": json.RawMessage(trimmed)})
		if err != nil {
			return nil, err
		}
		return &scene.Message{Type: scene.MessageCreateShapes, Config: wrapped}, nil
	}

	// A message envelope carries a recognized message type; anything
	// else is treated as a single shape config.
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse input")
	}
	switch probe.Type {
	case scene.MessageCreateShape, scene.MessageCreateShapes, scene.MessageCreateGrid:
		var msg scene.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse message")
		}
		return &msg, nil
	}
	return &scene.Message{Type: scene.MessageCreateShape, Config: json.RawMessage(data)}, nil
}

// writeScene exports the scene to path, or stdout when path is empty.
func writeScene(s *scene.Scene, path string) error {
	if path == "" {
		return scene.WriteJSON(s, os.Stdout)
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	return scene.ExportJSON(s, path)
}
