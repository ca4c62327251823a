package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/renderer"
)

var (
	textsRef      string
	textsDescribe bool
	textsDraw     bool
)

var textsCmd = &cobra.Command{
	Use:   "texts <board_file>",
	Short: "List footprint texts",
	Long: `Lists the reference, value and user texts of every footprint.

With --describe each text is printed as in the item information panel.
With --draw the draw calls the viewer would issue for each text are
printed instead, using the display settings of the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: runTexts,
}

func init() {
	rootCmd.AddCommand(textsCmd)
	textsCmd.Flags().StringVar(&textsRef, "ref", "", "only texts of this footprint reference")
	textsCmd.Flags().BoolVar(&textsDescribe, "describe", false, "print every property of each text")
	textsCmd.Flags().BoolVar(&textsDraw, "draw", false, "print the draw calls for each text")
}

func runTexts(cmd *cobra.Command, args []string) error {
	board, err := loadBoard(cmd, args[0])
	if err != nil {
		return err
	}

	texts, err := selectBoardTexts(board, textsRef)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case textsDraw:
		printDrawCalls(out, texts)
	case textsDescribe:
		for i, t := range texts {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printDescription(out, t)
		}
	default:
		printTextTable(out, texts)
	}
	return nil
}

// selectBoardTexts returns all texts, or those of one footprint.
func selectBoardTexts(board *pcb.Board, ref string) ([]*pcb.FootprintText, error) {
	if ref == "" {
		return board.AllTexts(), nil
	}
	fp := board.FindFootprint(ref)
	if fp == nil {
		return nil, fmt.Errorf("footprint '%s' not found", ref)
	}
	return fp.AllTexts(), nil
}

func printTextTable(out io.Writer, texts []*pcb.FootprintText) {
	fmt.Fprintf(out, "%-40s %-10s %18s %7s %s\n", "Text", "Layer", "Position", "Angle", "Shown")
	fmt.Fprintln(out, "──────────────────────────────────────────────────────────────────────────────────────")
	for _, t := range texts {
		pos := t.Position()
		shown := "yes"
		if !t.IsVisible() {
			shown = "no"
		}
		fmt.Fprintf(out, "%-40s %-10s (%7.2f, %7.2f) %7.1f %s\n",
			t.SelectMenuText(), t.Layer(), pos.X, pos.Y, t.DrawRotation().Degrees(), shown)
	}
}

func printDescription(out io.Writer, t *pcb.FootprintText) {
	for _, item := range t.Describe() {
		fmt.Fprintf(out, "  %-10s %s\n", item.Label+":", item.Value)
	}
}

func printDrawCalls(out io.Writer, texts []*pcb.FootprintText) {
	view := cfg.ViewSettings()
	opts := cfg.DisplayOptions()

	var rec renderer.RecordingSurface
	for _, t := range texts {
		rec.Reset()
		drawn := renderer.DrawFootprintText(&rec, view, opts, t, pcb.Position{})
		fmt.Fprintf(out, "%s:", t.SelectMenuText())
		if !drawn {
			fmt.Fprintln(out, " not drawn")
			continue
		}
		fmt.Fprintln(out)
		for _, op := range rec.Ops {
			fmt.Fprintf(out, "  %s\n", op)
		}
	}
}
