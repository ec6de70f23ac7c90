// Package script drives an engine from a small text language.
//
// A script replays the operator's editing session: toggling markers, moving
// the agent and requesting routes.
//
//	# wall with a gap
//	tile 3,0; tile 3,1; tile 3,2
//	enemy 5 4
//	agent 1,1
//	set 2,2 empty
//	goto 6,4
//	show
package script

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Script is a parsed sequence of statements.
type Script struct {
	Statements []*Statement `parser:"(@@ ';'?)*"`
}

// Statement is one editing or planning step.
type Statement struct {
	Pos lexer.Position

	Tile  *Point `parser:"  'tile' @@"`
	Enemy *Point `parser:"| 'enemy' @@"`
	Agent *Point `parser:"| 'agent' @@"`
	Set   *Set   `parser:"| 'set' @@"`
	Goto  *Point `parser:"| 'goto' @@"`
	Show  bool   `parser:"| @'show'"`
}

// Point is a coordinate written as "x,y" or "x y".
type Point struct {
	X int `parser:"@Int ','?"`
	Y int `parser:"@Int"`
}

// Set writes an explicit state into a cell.
type Set struct {
	At    *Point `parser:"@@"`
	State string `parser:"@('empty' | 'tile' | 'enemy' | 'agent')"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z_]+`},
	{Name: "Punct", Pattern: `[,;]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Script](
	participle.Lexer(scriptLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.CaseInsensitive("Ident"),
)

// Parse parses script source. name is used in error positions.
func Parse(name, src string) (*Script, error) {
	return parser.ParseString(name, src)
}
