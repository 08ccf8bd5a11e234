package inline

import (
	"testing"

	"sila/internal/ir"
)

func i64Type() *ir.IntType { return &ir.IntType{Bits: 64} }

// buildReturnArg0 builds a one-block callee `func name(p0) -> Int64 { return p0 }`.
func buildReturnArg0(m *ir.Module, name string) *ir.Function {
	fn := ir.NewFunction(m, name, i64Type(), ir.RepresentationNative, nil)
	m.AddFunction(fn)
	entry := ir.NewBasicBlock(fn.NextBlockID(), "")
	fn.AppendBlock(entry)
	p0 := fn.AddParam("p0", i64Type(), ir.OwnershipTrivial)
	entry.SetTerminator(ir.NewReturn(fn, ir.Location{}, nil, p0))
	return fn
}

func buildCallerWithApply(m *ir.Module, callee *ir.Function) (*ir.Function, *ir.BasicBlock, *ir.ApplyInst, *ir.Value) {
	caller := ir.NewFunction(m, "caller", i64Type(), ir.RepresentationNative, nil)
	m.AddFunction(caller)
	entry := ir.NewBasicBlock(caller.NextBlockID(), "")
	caller.AppendBlock(entry)

	argLit := ir.NewIntegerLiteral(caller, ir.Location{}, nil, i64Type(), 7)
	entry.Append(argLit)

	fref := ir.NewFunctionRef(caller, ir.Location{}, nil, i64Type(), callee)
	entry.Append(fref)

	calleeEntry := callee.Entry()
	apply := ir.NewApply(caller, ir.Location{}, nil, callee.ResultType, fref.Result(), callee, []*ir.Value{argLit.Result()})
	_ = calleeEntry
	entry.Append(apply)
	entry.SetTerminator(ir.NewReturn(caller, ir.Location{}, nil, apply.Result()))

	return caller, entry, apply, argLit.Result()
}

func TestCanInlineRejectsSelf(t *testing.T) {
	m := ir.NewModule()
	fn := buildReturnArg0(m, "f")
	site := CallSite{Block: fn.Entry(), Call: nil}
	in := NewInliner(fn, fn, Performance, nil)
	if in.CanInline(site) {
		t.Fatal("a function must never be inlinable into itself")
	}
}

func TestInlineFastPathReturnFusion(t *testing.T) {
	m := ir.NewModule()
	callee := buildReturnArg0(m, "id")
	caller, entry, apply, argVal := buildCallerWithApply(m, callee)

	in := NewInliner(caller, callee, Performance, nil)
	site := CallSite{Block: entry, Call: apply}
	if !in.CanInline(site) {
		t.Fatal("expected CanInline to accept a distinct callee")
	}
	in.Inline(site, apply.CallArgs())

	if len(caller.Blocks) != 1 {
		t.Fatalf("fast-path inlining must not split any block, got %d caller blocks", len(caller.Blocks))
	}
	found := false
	for _, inst := range entry.Instructions {
		if inst == apply {
			found = true
		}
	}
	if !found {
		t.Fatal("the original call instruction must still be present after inlining; deleting it is the caller's responsibility")
	}
	ret, ok := entry.Terminator.(*ir.ReturnTerminator)
	if !ok {
		t.Fatalf("expected caller entry to still terminate in Return, got %T", entry.Terminator)
	}
	if ret.Value != argVal {
		t.Fatalf("expected the call's uses to be replaced by the remapped return operand (the caller's own argument)")
	}
	if !callee.Inlined {
		t.Fatal("expected the callee to be marked Inlined")
	}
}

func TestInlineMandatoryDropsDebugValue(t *testing.T) {
	m := ir.NewModule()
	callee := ir.NewFunction(m, "withdbg", i64Type(), ir.RepresentationNative, nil)
	m.AddFunction(callee)
	entry := ir.NewBasicBlock(callee.NextBlockID(), "")
	callee.AppendBlock(entry)
	p0 := callee.AddParam("p0", i64Type(), ir.OwnershipTrivial)
	entry.Append(ir.NewDebugValue(callee, ir.Location{}, nil, p0, "p0"))
	entry.SetTerminator(ir.NewReturn(callee, ir.Location{}, nil, p0))

	caller, entryB, apply, _ := buildCallerWithApply(m, callee)
	in := NewInliner(caller, callee, Mandatory, nil)
	in.Inline(CallSite{Block: entryB, Call: apply}, apply.CallArgs())

	for _, inst := range entryB.Instructions {
		if _, ok := inst.(*ir.DebugValueInst); ok {
			t.Fatal("mandatory inlining must drop debug-value instructions")
		}
	}
}

func TestInlinePerformanceKeepsDebugValue(t *testing.T) {
	m := ir.NewModule()
	callee := ir.NewFunction(m, "withdbg", i64Type(), ir.RepresentationNative, nil)
	m.AddFunction(callee)
	entry := ir.NewBasicBlock(callee.NextBlockID(), "")
	callee.AppendBlock(entry)
	p0 := callee.AddParam("p0", i64Type(), ir.OwnershipTrivial)
	entry.Append(ir.NewDebugValue(callee, ir.Location{}, nil, p0, "p0"))
	entry.SetTerminator(ir.NewReturn(callee, ir.Location{}, nil, p0))

	caller, entryB, apply, _ := buildCallerWithApply(m, callee)
	in := NewInliner(caller, callee, Performance, nil)
	in.Inline(CallSite{Block: entryB, Call: apply}, apply.CallArgs())

	found := false
	for _, inst := range entryB.Instructions {
		if _, ok := inst.(*ir.DebugValueInst); ok {
			found = true
		}
	}
	if !found {
		t.Fatal("performance inlining must preserve debug-value instructions")
	}
}

// buildThrowingCallee builds `func name(p0) -> Int64 { throw p0 }`.
func buildThrowingCallee(m *ir.Module, name string) *ir.Function {
	fn := ir.NewFunction(m, name, i64Type(), ir.RepresentationNative, nil)
	m.AddFunction(fn)
	entry := ir.NewBasicBlock(fn.NextBlockID(), "")
	fn.AppendBlock(entry)
	p0 := fn.AddParam("p0", i64Type(), ir.OwnershipTrivial)
	entry.SetTerminator(ir.NewThrow(fn, ir.Location{}, nil, p0))
	return fn
}

func TestInlineSingleBlockThrowUnderTryApply(t *testing.T) {
	m := ir.NewModule()
	callee := buildThrowingCallee(m, "fails")

	caller := ir.NewFunction(m, "caller", i64Type(), ir.RepresentationNative, nil)
	m.AddFunction(caller)
	entry := ir.NewBasicBlock(caller.NextBlockID(), "")
	caller.AppendBlock(entry)
	normal := ir.NewBasicBlock(caller.NextBlockID(), "normal")
	errBB := ir.NewBasicBlock(caller.NextBlockID(), "err")
	caller.AppendBlock(normal)
	caller.AppendBlock(errBB)
	normal.AddParam(caller.NextValueID(), "v", i64Type(), ir.OwnershipOwned)
	errBB.AddParam(caller.NextValueID(), "e", i64Type(), ir.OwnershipOwned)
	normal.SetTerminator(ir.NewReturn(caller, ir.Location{}, nil, nil))
	errBB.SetTerminator(ir.NewUnreachable(caller, ir.Location{}, nil))

	argLit := ir.NewIntegerLiteral(caller, ir.Location{}, nil, i64Type(), 9)
	entry.Append(argLit)
	fref := ir.NewFunctionRef(caller, ir.Location{}, nil, i64Type(), callee)
	entry.Append(fref)
	tryApply := ir.NewTryApply(caller, ir.Location{}, nil, fref.Result(), callee, []*ir.Value{argLit.Result()}, normal, errBB)
	entry.SetTerminator(tryApply)

	in := NewInliner(caller, callee, Performance, nil)
	in.Inline(CallSite{Block: entry, Call: tryApply}, tryApply.CallArgs())

	branch, ok := entry.Terminator.(*ir.BranchTerminator)
	if !ok {
		t.Fatalf("expected the throwing single-block callee to rewrite the call site into a Branch, got %T", entry.Terminator)
	}
	if branch.Target != errBB {
		t.Fatal("expected the synthesized branch to target the try_apply's error-successor")
	}
	if len(branch.Args) != 1 || branch.Args[0] != argLit.Result() {
		t.Fatal("expected the branch to carry the remapped thrown value as its argument")
	}
}

// buildMixedReturnThrowCallee builds a two-path callee: `func name(p0)
// -> Int64 { cond_br p0, b1, b2 }` where b1 returns p0 and b2 throws p0.
func buildMixedReturnThrowCallee(m *ir.Module, name string) (*ir.Function, *ir.BasicBlock, *ir.BasicBlock) {
	fn := ir.NewFunction(m, name, i64Type(), ir.RepresentationNative, nil)
	m.AddFunction(fn)
	entry := ir.NewBasicBlock(fn.NextBlockID(), "")
	fn.AppendBlock(entry)
	p0 := fn.AddParam("p0", i64Type(), ir.OwnershipTrivial)
	b1 := ir.NewBasicBlock(fn.NextBlockID(), "")
	b2 := ir.NewBasicBlock(fn.NextBlockID(), "")
	fn.AppendBlock(b1)
	fn.AppendBlock(b2)
	entry.SetTerminator(ir.NewCondBranch(fn, ir.Location{}, nil, p0, b1, nil, b2, nil))
	b1.SetTerminator(ir.NewReturn(fn, ir.Location{}, nil, p0))
	b2.SetTerminator(ir.NewThrow(fn, ir.Location{}, nil, p0))
	return fn, b1, b2
}

func TestInlineReturnAndThrowBothReachedUnderTryApply(t *testing.T) {
	m := ir.NewModule()
	callee, calleeB1, calleeB2 := buildMixedReturnThrowCallee(m, "mixed")

	caller := ir.NewFunction(m, "caller", i64Type(), ir.RepresentationNative, nil)
	m.AddFunction(caller)
	entry := ir.NewBasicBlock(caller.NextBlockID(), "")
	caller.AppendBlock(entry)
	normal := ir.NewBasicBlock(caller.NextBlockID(), "normal")
	errBB := ir.NewBasicBlock(caller.NextBlockID(), "err")
	caller.AppendBlock(normal)
	caller.AppendBlock(errBB)
	normalParam := normal.AddParam(caller.NextValueID(), "v", i64Type(), ir.OwnershipOwned)
	errBB.AddParam(caller.NextValueID(), "e", i64Type(), ir.OwnershipOwned)
	normal.SetTerminator(ir.NewReturn(caller, ir.Location{}, nil, normalParam))
	errBB.SetTerminator(ir.NewUnreachable(caller, ir.Location{}, nil))

	argLit := ir.NewIntegerLiteral(caller, ir.Location{}, nil, i64Type(), 4)
	entry.Append(argLit)
	fref := ir.NewFunctionRef(caller, ir.Location{}, nil, i64Type(), callee)
	entry.Append(fref)
	tryApply := ir.NewTryApply(caller, ir.Location{}, nil, fref.Result(), callee, []*ir.Value{argLit.Result()}, normal, errBB)
	entry.SetTerminator(tryApply)

	in := NewInliner(caller, callee, Performance, nil)
	in.Inline(CallSite{Block: entry, Call: tryApply}, tryApply.CallArgs())

	b1Image := in.blockMap[calleeB1]
	b2Image := in.blockMap[calleeB2]
	if b1Image == nil || b2Image == nil {
		t.Fatal("expected both callee blocks to have been cloned into the caller")
	}

	retBranch, ok := b1Image.Terminator.(*ir.BranchTerminator)
	if !ok {
		t.Fatalf("expected the cloned Return block to become a Branch, got %T", b1Image.Terminator)
	}
	if retBranch.Target != normal {
		t.Fatal("expected the cloned Return block to branch into the try_apply's existing normal-successor")
	}
	if len(retBranch.Args) != 1 || retBranch.Args[0] != argLit.Result() {
		t.Fatal("expected the branch into the normal-successor to carry the remapped returned value, since it already has a parameter for it")
	}

	throwBranch, ok := b2Image.Terminator.(*ir.BranchTerminator)
	if !ok {
		t.Fatalf("expected the cloned Throw block to become a Branch, got %T", b2Image.Terminator)
	}
	if throwBranch.Target != errBB {
		t.Fatal("expected the cloned Throw block to branch into the try_apply's error-successor")
	}
	if len(throwBranch.Args) != 1 || throwBranch.Args[0] != argLit.Result() {
		t.Fatal("expected the branch into the error-successor to carry the remapped thrown value")
	}

	ret, ok := normal.Terminator.(*ir.ReturnTerminator)
	if !ok || ret.Value != normalParam {
		t.Fatal("expected the caller's own post-call terminator on the normal-successor to be untouched")
	}
}

func TestInlineMultiReturnCalleeFansIntoReturnToBlock(t *testing.T) {
	m := ir.NewModule()
	callee := ir.NewFunction(m, "branchy", i64Type(), ir.RepresentationNative, nil)
	m.AddFunction(callee)
	entry := ir.NewBasicBlock(callee.NextBlockID(), "")
	callee.AppendBlock(entry)
	p0 := callee.AddParam("p0", i64Type(), ir.OwnershipTrivial)
	b1 := ir.NewBasicBlock(callee.NextBlockID(), "")
	b2 := ir.NewBasicBlock(callee.NextBlockID(), "")
	callee.AppendBlock(b1)
	callee.AppendBlock(b2)
	entry.SetTerminator(ir.NewCondBranch(callee, ir.Location{}, nil, p0, b1, nil, b2, nil))
	b1.SetTerminator(ir.NewReturn(callee, ir.Location{}, nil, p0))
	b2.SetTerminator(ir.NewReturn(callee, ir.Location{}, nil, p0))

	caller := ir.NewFunction(m, "caller", i64Type(), ir.RepresentationNative, nil)
	m.AddFunction(caller)
	entryB := ir.NewBasicBlock(caller.NextBlockID(), "")
	caller.AppendBlock(entryB)
	argLit := ir.NewIntegerLiteral(caller, ir.Location{}, nil, i64Type(), 3)
	entryB.Append(argLit)
	fref := ir.NewFunctionRef(caller, ir.Location{}, nil, i64Type(), callee)
	entryB.Append(fref)
	apply := ir.NewApply(caller, ir.Location{}, nil, callee.ResultType, fref.Result(), callee, []*ir.Value{argLit.Result()})
	entryB.Append(apply)
	entryB.SetTerminator(ir.NewReturn(caller, ir.Location{}, nil, apply.Result()))

	in := NewInliner(caller, callee, Performance, nil)
	in.Inline(CallSite{Block: entryB, Call: apply}, apply.CallArgs())

	if len(caller.Blocks) != 4 {
		t.Fatalf("expected entry + 2 cloned blocks + return-to block, got %d blocks", len(caller.Blocks))
	}
	returnTo := caller.Blocks[len(caller.Blocks)-1]
	if len(returnTo.Params) != 1 {
		t.Fatalf("expected the return-to block to gain exactly one parameter, got %d", len(returnTo.Params))
	}

	branchesIntoReturnTo := 0
	for _, bb := range caller.Blocks {
		if bb == entryB || bb == returnTo {
			continue
		}
		br, ok := bb.Terminator.(*ir.BranchTerminator)
		if !ok || br.Target != returnTo {
			t.Fatalf("expected each cloned Return block to branch into the return-to block, got %T targeting %v", bb.Terminator, br)
		}
		if len(br.Args) != 1 {
			t.Fatalf("expected one branch argument carrying the remapped return value, got %d", len(br.Args))
		}
		branchesIntoReturnTo++
	}
	if branchesIntoReturnTo != 2 {
		t.Fatalf("expected both cloned blocks to branch into the return-to block, got %d", branchesIntoReturnTo)
	}

	ret, ok := returnTo.Terminator.(*ir.ReturnTerminator)
	if !ok {
		t.Fatalf("expected the return-to block to keep the caller's own post-call terminator, got %T", returnTo.Terminator)
	}
	if ret.Value != returnTo.Params[0] {
		t.Fatal("expected the caller's post-call return to use the return-to block's new parameter")
	}
}
