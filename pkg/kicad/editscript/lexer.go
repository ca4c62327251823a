package editscript

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ScriptLexer tokenizes edit scripts.
var ScriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Number", Pattern: `[-+]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)`},

	// References may contain dashes and underscores, e.g. J_PWR1 or SW-3.
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_\-]*`},

	{Name: "Punct", Pattern: `[.\[\]*]`},
})
