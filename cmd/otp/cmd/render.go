package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/renderer"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/renderer/pngsurface"
)

var (
	renderOutput string
	renderWidth  int
	renderHeight int
	renderTheme  string
	renderSketch bool
	renderSide   string
	renderLayers []string
	renderPreset string
)

var renderCmd = &cobra.Command{
	Use:   "render <board_file>",
	Short: "Render the board to a PNG image",
	Long: `Rasterises the board outline, pads and footprint texts to a PNG file,
using the display settings of the config file unless overridden.

Examples:
  otp render board.kicad_pcb -o board.png
  otp render board.kicad_pcb -o back.png --side back --sketch
  otp render board.kicad_pcb -o silk.png --layers F.SilkS,Edge.Cuts
  otp render board.kicad_pcb -o fab.png --preset fab`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "board.png", "output PNG file")
	renderCmd.Flags().IntVar(&renderWidth, "width", 1600, "image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 1200, "image height in pixels")
	renderCmd.Flags().StringVar(&renderTheme, "theme", "", "color theme (default from config)")
	renderCmd.Flags().BoolVar(&renderSketch, "sketch", false, "draw text outlines only")
	renderCmd.Flags().StringVar(&renderSide, "side", "", "show only one side: front or back")
	renderCmd.Flags().StringSliceVar(&renderLayers, "layers", nil, "show only these layers")
	renderCmd.Flags().StringVar(&renderPreset, "preset", "", "layer preset: "+strings.Join(renderer.PresetNames(), ", "))
}

func runRender(cmd *cobra.Command, args []string) error {
	board, err := loadBoard(cmd, args[0])
	if err != nil {
		return err
	}
	if err := renderToFile(board, renderOutput); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d)\n", renderOutput, renderWidth, renderHeight)
	return nil
}

// renderToFile renders with the render flags applied over the config.
func renderToFile(board *pcb.Board, path string) error {
	view := cfg.ViewSettings()
	opts := cfg.DisplayOptions()

	if renderTheme != "" {
		theme, err := renderer.ParseTheme(renderTheme)
		if err != nil {
			return err
		}
		view.Theme = theme
	}
	if renderSketch {
		opts.TextFill = renderer.FillSketch
	}

	if renderPreset != "" {
		if err := view.Layers.ApplyPreset(renderPreset); err != nil {
			return err
		}
	}
	switch renderSide {
	case "":
	case "front":
		view.Layers.HideSide(board.Layers, true)
	case "back":
		view.Layers.HideSide(board.Layers, false)
	default:
		return fmt.Errorf("invalid side '%s' (want front or back)", renderSide)
	}
	if len(renderLayers) > 0 {
		view.Layers.ShowOnly(renderLayers...)
	}

	s, err := pngsurface.Render(board, renderWidth, renderHeight, view, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.SavePNG(path)
}
