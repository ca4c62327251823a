package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/editscript"
)

var editRender string

var editCmd = &cobra.Command{
	Use:   "edit <board_file> <script_file>",
	Short: "Apply an edit script to the footprint texts",
	Long: `Runs an edit script against the board and prints the resulting texts.
The board file itself is not rewritten.

Script example:
  R1.value move 0.5 0
  R1.reference rotate 90
  U3.user[0] set "%R / %V"
  U3 rotate 180 at 100 50
  C4.* hide`,
	Args: cobra.ExactArgs(2),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editRender, "render", "", "also render the edited board to this PNG file")
}

func runEdit(cmd *cobra.Command, args []string) error {
	board, err := loadBoard(cmd, args[0])
	if err != nil {
		return err
	}

	parser, err := editscript.NewParser()
	if err != nil {
		return err
	}
	script, err := parser.ParseFile(args[1])
	if err != nil {
		return err
	}
	if err := script.Apply(board); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Applied %d commands\n\n", len(script.Commands))
	printTextTable(out, board.AllTexts())

	if editRender != "" {
		return renderToFile(board, editRender)
	}
	return nil
}
