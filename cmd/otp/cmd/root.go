package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePCB/internal/config"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/renderer/glyphs"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	cfg *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "otp",
	Short: "OpenTracePCB - KiCad footprint text tools",
	Long: `OpenTracePCB (otp) inspects and edits the reference, value and user
texts of the footprints on a KiCad board (.kicad_pcb).

Examples:
  otp texts board.kicad_pcb --ref R1        # List the texts of R1
  otp hit board.kicad_pcb 101.5 42          # Which texts are under a point
  otp edit board.kicad_pcb fix.edit         # Apply an edit script
  otp render board.kicad_pcb -o board.png   # Rasterise the board
  otp view board.kicad_pcb                  # Interactive viewer`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		pcb.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		path := configPath
		if path == "" {
			var err error
			if path, err = config.DefaultPath(); err != nil {
				return err
			}
		}
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
		pcb.Logger().Debug("loaded config", "path", path, "theme", cfg.Theme)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: platform config dir)")
}

// loadBoard parses a board file and logs a one line summary. Texts are
// measured with the Go Regular metrics every surface draws them with, so
// hit tests agree with what the viewer and the PNG renderer show.
func loadBoard(cmd *cobra.Command, filename string) (*pcb.Board, error) {
	board, err := pcb.ParseFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error parsing board: %w", err)
	}
	metrics, err := glyphs.Default()
	if err != nil {
		return nil, err
	}
	board.SetTextMetrics(metrics)
	pcb.Logger().Info("loaded board", "file", filename, "footprints", len(board.Footprints))
	return board, nil
}
