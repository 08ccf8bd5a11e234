package iltext

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var parser = participle.MustBuild[Program](
	participle.Lexer(ILLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
	participle.Unquote("String"),
)

// ParseString parses the textual IR surface held in src, identified by
// name for diagnostics.
func ParseString(name, src string) (*Program, error) {
	prog, err := parser.ParseString(name, src)
	if err != nil {
		reportParseError(src, err)
		return nil, err
	}
	return prog, nil
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}

// reportParseError prints a friendly caret-style parse error message,
// following the teacher's reportParseError (kanso/main.go,
// kanso/grammar/parser.go).
func reportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("Unexpected error: %s", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("Syntax error at unknown location: %s", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column-1) + "^"

	color.Red("Syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("-> %s\n", pe.Message())
}
