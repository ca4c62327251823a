package editscript

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/sexp"
)

// Apply runs every command against the board in order. It stops at the
// first failing command; earlier commands stay applied.
func (s *Script) Apply(b *pcb.Board) error {
	for _, cmd := range s.Commands {
		if err := cmd.Apply(b); err != nil {
			return err
		}
	}
	return nil
}

// Apply runs a single command.
func (c *Command) Apply(b *pcb.Board) error {
	fp := b.FindFootprint(c.Target.Footprint)
	if fp == nil {
		return c.errorf("no footprint with reference %q", c.Target.Footprint)
	}

	if c.Target.Field == nil {
		return c.applyFootprint(fp)
	}

	texts, err := c.selectTexts(fp)
	if err != nil {
		return err
	}
	for _, t := range texts {
		if err := c.applyText(fp, t); err != nil {
			return err
		}
	}

	pcb.Logger().Debug("applied edit",
		"line", c.Pos.Line,
		"footprint", fp.Reference(),
		"op", c.Op.Name(),
		"texts", len(texts))
	return nil
}

func (c *Command) applyFootprint(fp *pcb.Footprint) error {
	op := c.Op
	switch {
	case op.Move != nil:
		fp.Move(op.Move.position())
	case op.Rotate != nil:
		fp.Rotate(op.Rotate.At.or(fp.Position()), sexp.FromDegrees(op.Rotate.Degrees))
	case op.Flip != nil:
		fp.Flip(op.Flip.At.or(fp.Position()))
	default:
		return c.errorf("%s needs a text field, e.g. %s.value %s", op.Name(), fp.Reference(), op.Name())
	}

	pcb.Logger().Debug("applied edit", "line", c.Pos.Line, "footprint", fp.Reference(), "op", op.Name())
	return nil
}

func (c *Command) applyText(fp *pcb.Footprint, t *pcb.FootprintText) error {
	op := c.Op
	switch {
	case op.Move != nil:
		t.Move(op.Move.position())
	case op.Rotate != nil:
		t.Rotate(op.Rotate.At.or(t.Position()), sexp.FromDegrees(op.Rotate.Degrees))
	case op.Set != nil:
		t.SetText(*op.Set)
	case op.Mirror != nil:
		t.Mirror(op.Mirror.At.or(fp.Position()), op.Mirror.Axis == "x")
	case op.Flip != nil:
		t.Flip(op.Flip.At.or(fp.Position()))
	case op.Angle != nil:
		t.SetAngle(sexp.FromDegrees(*op.Angle))
	case op.Place != nil:
		t.SetPosition(op.Place.position())
	case op.Hide:
		t.SetVisible(false)
	case op.Show:
		t.SetVisible(true)
	default:
		return c.errorf("empty operation")
	}
	return nil
}

func (c *Command) selectTexts(fp *pcb.Footprint) ([]*pcb.FootprintText, error) {
	f := c.Target.Field
	if f.All {
		if f.Index != nil {
			return nil, c.errorf("* cannot be indexed")
		}
		return fp.AllTexts(), nil
	}

	switch f.Name {
	case "reference", "value":
		if f.Index != nil {
			return nil, c.errorf("%s cannot be indexed", f.Name)
		}
		if f.Name == "reference" {
			return []*pcb.FootprintText{fp.ReferenceText}, nil
		}
		return []*pcb.FootprintText{fp.ValueText}, nil
	case "user":
		if f.Index == nil {
			return fp.Texts, nil
		}
		i := *f.Index
		if i < 0 || i >= len(fp.Texts) {
			return nil, c.errorf("%s has %d user texts, no index %d", fp.Reference(), len(fp.Texts), i)
		}
		return []*pcb.FootprintText{fp.Texts[i]}, nil
	}
	return nil, &Error{Pos: f.Pos, Msg: fmt.Sprintf("unknown text field %q (want reference, value, user or *)", f.Name)}
}

func (c *Command) errorf(format string, args ...any) error {
	return &Error{Pos: c.Pos, Msg: fmt.Sprintf(format, args...)}
}

func (v *Vec) position() pcb.Position {
	return pcb.Position{X: v.X, Y: v.Y}
}

// or returns the point, or def when no "at" clause was given.
func (v *Vec) or(def pcb.Position) pcb.Position {
	if v == nil {
		return def
	}
	return v.position()
}
