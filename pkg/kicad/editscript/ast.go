package editscript

import "github.com/alecthomas/participle/v2/lexer"

// Script is a parsed edit script: one command per line.
type Script struct {
	Commands []*Command `@@*`
}

// Command applies one operation to a footprint or to some of its texts.
// Example: R1.value rotate 90 at 10 20
type Command struct {
	Pos lexer.Position

	Target *Target `@@`
	Op     *Op     `@@`
}

// Target selects a footprint by reference and, optionally, its texts.
// Without a field the command acts on the footprint itself.
type Target struct {
	Footprint string `@Ident`
	Field     *Field `( "." @@ )?`
}

// Field names the texts of a footprint: reference, value, user, user[N]
// or * for all of them.
type Field struct {
	Pos lexer.Position

	All   bool   `( @"*"`
	Name  string `| @Ident )`
	Index *int   `( "[" @Number "]" )?`
}

// Op is the operation of a command.
type Op struct {
	Move   *Vec      `  "move" @@`
	Rotate *RotateOp `| "rotate" @@`
	Set    *string   `| "set" @String`
	Mirror *MirrorOp `| "mirror" @@`
	Flip   *FlipOp   `| @@`
	Angle  *float64  `| "angle" @Number`
	Place  *Vec      `| "place" @@`
	Hide   bool      `| @"hide"`
	Show   bool      `| @"show"`
}

// Vec is an X Y pair in millimetres.
type Vec struct {
	X float64 `@Number`
	Y float64 `@Number`
}

// RotateOp turns by Degrees, about At when given.
type RotateOp struct {
	Degrees float64 `@Number`
	At      *Vec    `( "at" @@ )?`
}

// MirrorOp reflects the position: "x" around the X axis, "y" around the
// Y axis.
type MirrorOp struct {
	Axis string `@( "x" | "y" )`
	At   *Vec   `( "at" @@ )?`
}

// FlipOp moves to the other side of the board.
type FlipOp struct {
	Keyword string `@"flip"`
	At      *Vec   `( "at" @@ )?`
}

// Name returns the operation keyword, for messages.
func (o *Op) Name() string {
	switch {
	case o.Move != nil:
		return "move"
	case o.Rotate != nil:
		return "rotate"
	case o.Set != nil:
		return "set"
	case o.Mirror != nil:
		return "mirror"
	case o.Flip != nil:
		return "flip"
	case o.Angle != nil:
		return "angle"
	case o.Place != nil:
		return "place"
	case o.Hide:
		return "hide"
	case o.Show:
		return "show"
	}
	return "?"
}
