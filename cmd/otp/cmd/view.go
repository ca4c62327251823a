package cmd

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/renderer"
)

var viewCmd = &cobra.Command{
	Use:   "view <board_file>",
	Short: "View the board in an interactive viewer",
	Long: `Opens the board in a Gio-based viewer with pan, zoom and rotation
controls. Clicking a footprint text selects it, prints its properties and
draws the line to its footprint anchor.

Controls:
  Left Click        - Select text
  Right Click / F   - Flip view
  R / Left Arrow    - Rotate view 90°
  Up / Down Arrow   - Pan
  Scroll Wheel      - Zoom in/out
  T                 - Rotate selected text 90°
  S                 - Toggle sketch text
  H                 - Toggle high contrast
  I                 - Toggle invisible texts
  Space             - Fit board to window
  Q / Escape        - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	filename := args[0]

	fmt.Printf("Loading board: %s\n", filename)
	board, err := loadBoard(cmd, filename)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Loaded board successfully\n")
	fmt.Printf("  Version: %d\n", board.Version)
	fmt.Printf("  Generator: %s\n", board.Generator)
	fmt.Printf("  Footprints: %d\n", len(board.Footprints))
	fmt.Printf("  Texts: %d\n", len(board.AllTexts()))

	bbox := board.GetBoundingBox()
	if !bbox.IsEmpty() {
		fmt.Printf("  Board size: %.2f x %.2f mm\n", bbox.Width(), bbox.Height())
	}

	font, err := renderer.NewGioFont()
	if err != nil {
		return err
	}
	v := &viewer{
		board:  board,
		bbox:   bbox,
		camera: renderer.NewCamera(1000, 800),
		font:   font,
		view:   cfg.ViewSettings(),
		opts:   cfg.DisplayOptions(),
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("OpenTracePCB - " + filename))
		w.Option(app.Size(unit.Dp(1000), unit.Dp(800)))

		if err := v.run(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

// panStep is the arrow key pan distance in pixels.
const panStep = 50

// viewer holds the state of one viewer window.
type viewer struct {
	board  *pcb.Board
	bbox   pcb.BoundingBox
	camera *renderer.Camera
	font   *renderer.GioFont
	view   *renderer.ViewSettings
	opts   renderer.DisplayOptions

	selected *pcb.FootprintText
}

func (v *viewer) run(w *app.Window) error {
	if !v.bbox.IsEmpty() {
		v.camera.Fit(v.bbox)
	}

	var ops op.Ops

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			ops.Reset()

			gtx := layout.Context{
				Ops:         &ops,
				Constraints: layout.Exact(e.Size),
				Metric:      e.Metric,
				Now:         e.Now,
				Source:      e.Source,
			}

			v.camera.UpdateScreenSize(e.Size.X, e.Size.Y)

			for {
				ev, ok := gtx.Event(key.Filter{})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					if v.handleKeyPress(ke.Name) {
						return nil
					}
					w.Invalidate()
				}
			}

			for {
				ev, ok := gtx.Event(pointer.Filter{
					Kinds: pointer.Press | pointer.Scroll,
				})
				if !ok {
					break
				}
				if pe, ok := ev.(pointer.Event); ok {
					v.handlePointer(pe)
					w.Invalidate()
				}
			}

			renderer.RenderBoard(gtx, v.camera, v.font, v.board, v.view, v.opts)
			if v.selected != nil {
				renderer.DrawUmbilical(renderer.NewGioSurface(gtx, v.camera, v.font), v.selected, pcb.Position{})
			}

			e.Frame(&ops)
		}
	}
}

func (v *viewer) handlePointer(pe pointer.Event) {
	switch pe.Kind {
	case pointer.Press:
		if pe.Buttons == pointer.ButtonPrimary {
			at := v.camera.ScreenToWorld(float64(pe.Position.X), float64(pe.Position.Y))
			v.selectAt(at)
		} else if pe.Buttons == pointer.ButtonSecondary {
			v.camera.Flip()
		}
	case pointer.Scroll:
		zoomFactor := 1.0 + float64(pe.Scroll.Y)*0.1
		v.camera.ZoomAt(float64(pe.Position.X), float64(pe.Position.Y), zoomFactor)
	}
}

// selectAt picks the first text under at, cycling through stacked texts on
// repeated clicks.
func (v *viewer) selectAt(at pcb.Position) {
	hits := v.board.TextsAt(at, cfg.HitAccuracy, v.view.IsElementVisible(pcb.ElementModTextInvisible))
	if len(hits) == 0 {
		v.selected = nil
		return
	}

	next := hits[0]
	for i, t := range hits {
		if t == v.selected {
			next = hits[(i+1)%len(hits)]
			break
		}
	}
	v.selected = next

	fmt.Println(next.SelectMenuText())
	printDescription(os.Stdout, next)
}

func (v *viewer) handleKeyPress(k key.Name) bool {
	switch k {
	case key.NameEscape, "Q":
		return true
	case "F":
		v.camera.Flip()
	case "R":
		v.camera.Rotate(900)
	case key.NameLeftArrow:
		v.camera.Rotate(-900)
	case key.NameUpArrow:
		v.camera.Pan(0, panStep)
	case key.NameDownArrow:
		v.camera.Pan(0, -panStep)
	case "T":
		if v.selected != nil {
			v.selected.Rotate(v.selected.Position(), 900)
		}
	case "S":
		if v.opts.TextFill == renderer.FillSketch {
			v.opts.TextFill = renderer.FillFilled
		} else {
			v.opts.TextFill = renderer.FillSketch
		}
	case "H":
		v.opts.ContrastMode = !v.opts.ContrastMode
	case "I":
		v.view.SetElementVisible(pcb.ElementModTextInvisible, !v.view.IsElementVisible(pcb.ElementModTextInvisible))
	case key.NameSpace:
		if !v.bbox.IsEmpty() {
			v.camera.Fit(v.bbox)
		}
	}
	return false
}
