// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"sila/internal/ir"
	"sila/internal/iltext"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sila <file.sil>")
		os.Exit(1)
	}

	path := os.Args[1]
	prog, err := iltext.ParseFile(path)
	if err != nil {
		// iltext.ParseFile has already printed a caret-style diagnostic
		// for a syntax error; a file that cannot be read is not reported.
		os.Exit(1)
	}
	module, err := iltext.Build(prog)
	if err != nil {
		color.Red("Failed to build %s: %s", path, err)
		os.Exit(1)
	}

	for _, fn := range module.Functions {
		fmt.Print(ir.PrintFunction(fn))
	}

	color.Green("✅ parsed %s (%d function(s))", path, len(module.Functions))
}
