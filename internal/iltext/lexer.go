package iltext

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ILLexer tokenizes the textual IR surface. Adapted from the teacher's
// stateful KansoLexer (kanso/grammar/lexer.go); the rule set is smaller
// because the IR text has no comments or doc-comments to preserve.
var ILLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"String", `"(\\.|[^"])*"`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Int", `-?[0-9]+`, nil},
		{"Arrow", `->`, nil},
		{"Operator", `[@%]`, nil},
		{"Punctuation", `[{}()\[\]<>:,.*]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
