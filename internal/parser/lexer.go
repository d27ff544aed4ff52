package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var lumenLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `//[^\n]*`, Action: nil},

		// Keywords and identifiers (keywords are matched by value in the grammar)
		{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`, Action: nil},

		// Number literals
		{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`, Action: nil},

		// String literals
		{Name: "String", Pattern: `"[^"]*"`, Action: nil},

		// Arrow must come before the bare operators
		{Name: "Arrow", Pattern: `=>`, Action: nil},

		// Operators
		{Name: "Operator", Pattern: `(\|\||&&|==|!=|<=|>=|[-+*/%<>=!])`, Action: nil},

		// Punctuation
		{Name: "Punct", Pattern: `[{}(),;]`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})
