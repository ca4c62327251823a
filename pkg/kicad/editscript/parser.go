// Package editscript reads small line oriented scripts that edit the
// footprint texts of a board:
//
//	R1.value move 1.0 -0.5
//	R1.reference rotate 90 at 10 20
//	U3.user[0] set "%R / %V"
//	R1.* flip
//	R1 rotate 90
package editscript

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Error is a parse or execution error tied to a script position.
type Error struct {
	Pos lexer.Position
	Msg string
}

func (e *Error) Error() string {
	if e.Pos.Filename != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename, e.Pos.Line, e.Pos.Column, e.Msg)
	}
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// Parser parses edit scripts.
type Parser struct {
	parser *participle.Parser[Script]
}

// NewParser creates a new edit script parser.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Script](
		participle.Lexer(ScriptLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a script from a reader. name is used in error positions.
func (p *Parser) Parse(name string, r io.Reader) (*Script, error) {
	script, err := p.parser.Parse(name, r)
	if err != nil {
		return nil, wrapParseError(err)
	}
	return script, nil
}

// ParseString parses a script held in memory.
func (p *Parser) ParseString(name, src string) (*Script, error) {
	script, err := p.parser.ParseString(name, src)
	if err != nil {
		return nil, wrapParseError(err)
	}
	return script, nil
}

// ParseFile parses a script file.
func (p *Parser) ParseFile(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(filename, file)
}

func wrapParseError(err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &Error{Pos: perr.Position(), Msg: perr.Message()}
	}
	return fmt.Errorf("parse error: %w", err)
}
