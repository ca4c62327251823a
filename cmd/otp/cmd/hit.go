package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
)

var (
	hitAccuracy float64
	hitHidden   bool
	hitContains bool
)

var hitCmd = &cobra.Command{
	Use:   "hit <board_file> <x> <y> [<x2> <y2>]",
	Short: "Find the texts under a point or inside a rectangle",
	Long: `Prints the footprint texts a click at (x, y) would select, in board
millimetres. With a second corner the texts selected by a rubber band
rectangle are printed instead: by default any text touching the rectangle,
with --contains only texts fully inside it.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 3 && len(args) != 5 {
			return fmt.Errorf("accepts 3 or 5 arg(s), received %d", len(args))
		}
		return nil
	},
	RunE: runHit,
}

func init() {
	rootCmd.AddCommand(hitCmd)
	hitCmd.Flags().Float64Var(&hitAccuracy, "accuracy", -1, "pick tolerance in mm (default from config)")
	hitCmd.Flags().BoolVar(&hitHidden, "hidden", false, "include hidden texts in point queries")
	hitCmd.Flags().BoolVar(&hitContains, "contains", false, "rectangle must fully contain the text")
}

func runHit(cmd *cobra.Command, args []string) error {
	coords, err := parseCoords(args[1:])
	if err != nil {
		return err
	}

	board, err := loadBoard(cmd, args[0])
	if err != nil {
		return err
	}

	accuracy := hitAccuracy
	if accuracy < 0 {
		accuracy = cfg.HitAccuracy
	}

	var hits []*pcb.FootprintText
	a := pcb.Position{X: coords[0], Y: coords[1]}
	if len(coords) == 2 {
		hits = board.TextsAt(a, accuracy, hitHidden)
	} else {
		r := pcb.NewBoundingBox()
		r.Expand(a)
		r.Expand(pcb.Position{X: coords[2], Y: coords[3]})
		hits = board.TextsInRect(r, hitContains, accuracy)
	}

	out := cmd.OutOrStdout()
	if len(hits) == 0 {
		fmt.Fprintln(out, "No texts hit")
		return nil
	}
	for _, t := range hits {
		fmt.Fprintln(out, t.SelectMenuText())
		if verbose {
			printDescription(out, t)
		}
	}
	return nil
}

func parseCoords(args []string) ([]float64, error) {
	coords := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate '%s': %w", s, err)
		}
		coords[i] = v
	}
	return coords, nil
}
