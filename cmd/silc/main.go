// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"sila/internal/ir"
	"sila/internal/iltext"
	"sila/internal/inline"
)

// silc inline --func=caller --block=bb0 [--mandatory] <file.sil>
//
// Inlines the first call instruction (Apply or TryApply) found in the
// named function's named block, and prints the resulting function.
// This exercises the core end-to-end the same way the optimizer pass
// that owns call-site selection would: pick a site, check
// canInline, inline it.
func main() {
	if len(os.Args) < 2 || os.Args[1] != "inline" {
		fmt.Println("Usage: silc inline --func=<caller> --block=<label> [--mandatory] <file.sil>")
		os.Exit(1)
	}

	fs := flag.NewFlagSet("inline", flag.ExitOnError)
	funcName := fs.String("func", "", "caller function name")
	blockLabel := fs.String("block", "", "block label containing the call site")
	mandatory := fs.Bool("mandatory", false, "use mandatory inlining instead of performance inlining")
	fs.Parse(os.Args[2:])

	if fs.NArg() < 1 || *funcName == "" || *blockLabel == "" {
		color.Red("inline requires a file path, --func and --block")
		os.Exit(1)
	}
	path := fs.Arg(0)

	prog, err := iltext.ParseFile(path)
	if err != nil {
		os.Exit(1)
	}
	module, err := iltext.Build(prog)
	if err != nil {
		color.Red("Failed to build %s: %s", path, err)
		os.Exit(1)
	}

	caller := findFunction(module, *funcName)
	if caller == nil {
		color.Red("no such function %q", *funcName)
		os.Exit(1)
	}
	block := findBlock(caller, *blockLabel)
	if block == nil {
		color.Red("no such block %q in %q", *blockLabel, *funcName)
		os.Exit(1)
	}
	site, ok := findCallSite(block)
	if !ok {
		color.Red("no call instruction in block %q", *blockLabel)
		os.Exit(1)
	}

	callee := site.Call.CalleeFunction()
	if callee == nil {
		color.Red("call site's callee is not statically known")
		os.Exit(1)
	}

	flavor := inline.Performance
	if *mandatory {
		flavor = inline.Mandatory
	}

	inliner := inline.NewInliner(caller, callee, flavor, caller.Scope)
	if !inliner.CanInline(site) {
		color.Red("cannot inline %s into itself", callee.Name)
		os.Exit(1)
	}
	inliner.Inline(site, site.Call.CallArgs())

	fmt.Print(ir.PrintFunction(caller))
	color.Green("✅ inlined %s into %s (%s)", callee.Name, caller.Name, flavor)
}

func findFunction(m *ir.Module, name string) *ir.Function {
	for _, fn := range m.Functions {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

func findBlock(fn *ir.Function, label string) *ir.BasicBlock {
	for _, bb := range fn.Blocks {
		if bb.Label == label || bb.String() == label {
			return bb
		}
	}
	return nil
}

// findCallSite returns the block's Apply instruction if it has one, else
// its TryApply terminator if that is the block's terminator.
func findCallSite(bb *ir.BasicBlock) (inline.CallSite, bool) {
	for _, inst := range bb.Instructions {
		if apply, ok := inst.(*ir.ApplyInst); ok {
			return inline.CallSite{Block: bb, Call: apply}, true
		}
	}
	if tryApply, ok := bb.Terminator.(*ir.TryApplyInst); ok {
		return inline.CallSite{Block: bb, Call: tryApply}, true
	}
	return inline.CallSite{}, false
}
