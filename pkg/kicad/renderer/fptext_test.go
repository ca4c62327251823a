package renderer

import (
	"image/color"
	"testing"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
)

func newTestText(t *testing.T) (*pcb.Footprint, *pcb.FootprintText) {
	t.Helper()

	fp := pcb.NewFootprint("R_0603")
	fp.SetReference("R1")
	fp.SetValue("10k")
	fp.SetPosition(pcb.Position{X: 10, Y: 10})

	txt := pcb.NewFootprintText(fp, pcb.TextUser)
	txt.SetText("%R")
	txt.SetLocalPosition(pcb.Position{X: 1, Y: 2})
	fp.AddText(txt)
	return fp, txt
}

func TestDrawFootprintTextPolicy(t *testing.T) {
	silk := ThemeClassic.LayerColor(pcb.LayerFrontSilk)
	invisible := elementColors[pcb.ElementModTextInvisible]

	tests := []struct {
		name      string
		setup     func(v *ViewSettings, o *DisplayOptions, txt *pcb.FootprintText)
		wantDrawn bool
		wantColor color.NRGBA
		wantWidth float64
	}{
		{
			name:      "defaults",
			setup:     func(*ViewSettings, *DisplayOptions, *pcb.FootprintText) {},
			wantDrawn: true,
			wantColor: silk,
			wantWidth: 0.15,
		},
		{
			name: "layer hidden",
			setup: func(v *ViewSettings, _ *DisplayOptions, _ *pcb.FootprintText) {
				v.Layers.SetVisible(pcb.LayerFrontSilk, false)
			},
		},
		{
			name: "front texts off",
			setup: func(v *ViewSettings, _ *DisplayOptions, _ *pcb.FootprintText) {
				v.SetElementVisible(pcb.ElementModTextFront, false)
			},
		},
		{
			name: "back texts off does not affect front text",
			setup: func(v *ViewSettings, _ *DisplayOptions, _ *pcb.FootprintText) {
				v.SetElementVisible(pcb.ElementModTextBack, false)
			},
			wantDrawn: true,
			wantColor: silk,
			wantWidth: 0.15,
		},
		{
			name: "back text with back texts off",
			setup: func(v *ViewSettings, _ *DisplayOptions, txt *pcb.FootprintText) {
				txt.SetLayer(pcb.LayerBackSilk)
				v.SetElementVisible(pcb.ElementModTextBack, false)
			},
		},
		{
			name: "invisible text hidden by default",
			setup: func(_ *ViewSettings, _ *DisplayOptions, txt *pcb.FootprintText) {
				txt.SetVisible(false)
			},
		},
		{
			name: "invisible text shown in its own colour",
			setup: func(v *ViewSettings, _ *DisplayOptions, txt *pcb.FootprintText) {
				txt.SetVisible(false)
				v.SetElementVisible(pcb.ElementModTextInvisible, true)
			},
			wantDrawn: true,
			wantColor: invisible,
			wantWidth: 0.15,
		},
		{
			name: "high contrast dims other layers",
			setup: func(_ *ViewSettings, o *DisplayOptions, _ *pcb.FootprintText) {
				o.ContrastMode = true
				o.ActiveLayer = pcb.LayerFrontCu
			},
			wantDrawn: true,
			wantColor: ColorDimmed,
			wantWidth: 0.15,
		},
		{
			name: "high contrast keeps the active layer",
			setup: func(_ *ViewSettings, o *DisplayOptions, _ *pcb.FootprintText) {
				o.ContrastMode = true
				o.ActiveLayer = pcb.LayerFrontSilk
			},
			wantDrawn: true,
			wantColor: silk,
			wantWidth: 0.15,
		},
		{
			name: "high contrast not allowed",
			setup: func(_ *ViewSettings, o *DisplayOptions, _ *pcb.FootprintText) {
				o.ContrastMode = true
				o.ActiveLayer = pcb.LayerFrontCu
				o.AllowHighContrast = false
			},
			wantDrawn: true,
			wantColor: silk,
			wantWidth: 0.15,
		},
		{
			name: "high contrast applies to invisible colour",
			setup: func(v *ViewSettings, o *DisplayOptions, txt *pcb.FootprintText) {
				txt.SetVisible(false)
				v.SetElementVisible(pcb.ElementModTextInvisible, true)
				o.ContrastMode = true
				o.ActiveLayer = pcb.LayerBackCu
			},
			wantDrawn: true,
			wantColor: ColorDimmed,
			wantWidth: 0.15,
		},
		{
			name: "sketch negates the width",
			setup: func(_ *ViewSettings, o *DisplayOptions, _ *pcb.FootprintText) {
				o.TextFill = FillSketch
			},
			wantDrawn: true,
			wantColor: silk,
			wantWidth: -0.15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, txt := newTestText(t)
			view := NewViewSettings(ThemeClassic)
			opts := DefaultDisplayOptions()
			tt.setup(view, &opts, txt)

			rec := &RecordingSurface{}
			drawn := DrawFootprintText(rec, view, opts, txt, pcb.Position{})

			if drawn != tt.wantDrawn {
				t.Fatalf("DrawFootprintText() = %v, want %v", drawn, tt.wantDrawn)
			}
			texts := rec.Texts()
			if !tt.wantDrawn {
				if len(rec.Ops) != 0 {
					t.Errorf("expected no draw calls, got %v", rec.Ops)
				}
				return
			}
			if len(texts) != 1 {
				t.Fatalf("expected 1 text draw, got %d", len(texts))
			}
			if texts[0].Color != tt.wantColor {
				t.Errorf("color = %v, want %v", texts[0].Color, tt.wantColor)
			}
			if texts[0].Width != tt.wantWidth {
				t.Errorf("width = %v, want %v", texts[0].Width, tt.wantWidth)
			}
		})
	}
}

func TestDrawFootprintTextParams(t *testing.T) {
	fp, txt := newTestText(t)
	fp.SetOrientation(1800)
	txt.SetMirrored(true)
	txt.SetItalic(true)
	txt.SetHJustify(pcb.JustifyLeft)
	txt.SetSize(pcb.Size{Width: 0.8, Height: 1.2})

	view := NewViewSettings(ThemeClassic)
	rec := &RecordingSurface{}
	offset := pcb.Position{X: 0.5, Y: 0.5}
	DrawFootprintText(rec, view, DefaultDisplayOptions(), txt, offset)

	if rec.Count("anchor") != 1 {
		t.Errorf("anchor draws = %d, want 1", rec.Count("anchor"))
	}

	p := rec.Texts()[0]
	if p.Text != "R1" {
		t.Errorf("text = %q, want the resolved %q", p.Text, "R1")
	}
	// Local (1, 2) under a half turn lands at (9, 8); then the offset.
	want := pcb.Position{X: 8.5, Y: 7.5}
	if d := p.Position.Dist(want); d > 1e-9 {
		t.Errorf("position = %v, want %v", p.Position, want)
	}
	if p.Angle != 0 {
		t.Errorf("angle = %d, a half turn should read as 0", p.Angle)
	}
	if p.Size.Width != -0.8 || p.Size.Height != 1.2 || !p.Mirrored() {
		t.Errorf("size = %+v, want width negated", p.Size)
	}
	if !p.Italic || p.Bold || p.HJustify != pcb.JustifyLeft || p.VJustify != pcb.JustifyMiddle {
		t.Errorf("unexpected attributes %+v", p)
	}

	view.SetElementVisible(pcb.ElementAnchor, false)
	rec.Reset()
	DrawFootprintText(rec, view, DefaultDisplayOptions(), txt, pcb.Position{})
	if rec.Count("anchor") != 0 {
		t.Error("anchor drawn with the anchor element off")
	}
}

func TestDrawUmbilical(t *testing.T) {
	fp, txt := newTestText(t)

	rec := &RecordingSurface{}
	DrawUmbilical(rec, txt, pcb.Position{X: 1})
	if len(rec.Ops) != 1 || rec.Ops[0].Kind != "line" {
		t.Fatalf("expected one line, got %v", rec.Ops)
	}
	op := rec.Ops[0]
	if op.Points[0] != fp.Position() {
		t.Errorf("line starts at %v, want footprint %v", op.Points[0], fp.Position())
	}
	if want := txt.Position().Add(pcb.Position{X: 1}); op.Points[1] != want {
		t.Errorf("line ends at %v, want %v", op.Points[1], want)
	}
	if op.Mode != ModeXOR || op.Color != ColorUmbilical {
		t.Errorf("mode = %v color = %v", op.Mode, op.Color)
	}

	fp.RemoveText(txt)
	rec.Reset()
	DrawUmbilical(rec, txt, pcb.Position{})
	if len(rec.Ops) != 0 {
		t.Error("detached text must not draw an umbilical")
	}
}
