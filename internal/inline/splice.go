package inline

import "sila/internal/ir"

// SplitBlock is C4's split primitive: it produces a new successor
// block containing bb.Instructions[at:] and bb's terminator, leaving bb
// with everything before index at and no terminator of its own. No
// branch is inserted by the split — the caller (C5) either flows
// cloned instructions into the vacated predecessor or installs its own
// terminator there, per spec.md §4.2.
//
// The new block is left off fn's block list; the caller places it with
// exactly one Function.InsertBlockBefore/AppendBlock call, the same
// build-then-place split the teacher uses for its own blocks
// (kanso/internal/ir/builder.go's block-placement helpers).
func SplitBlock(fn *ir.Function, bb *ir.BasicBlock, at int) *ir.BasicBlock {
	tail := ir.NewBasicBlock(fn.NextBlockID(), "")

	for _, inst := range bb.Instructions[at:] {
		tail.Append(inst)
	}
	bb.Instructions = bb.Instructions[:at]

	if bb.Terminator != nil {
		bb.Terminator.SetBlock(tail)
		tail.Terminator = bb.Terminator
		bb.Terminator = nil
	}
	return tail
}

// splitAfterCall splits bb immediately after callInst, so callInst
// itself stays in bb and everything following it (plus bb's
// terminator) moves to the returned tail block. This is the shape the
// inliner driver needs at step 8: the call stays put while its
// successors become the return-to block.
func splitAfterCall(fn *ir.Function, bb *ir.BasicBlock, callInst ir.Instruction) *ir.BasicBlock {
	idx := -1
	for i, inst := range bb.Instructions {
		if inst == callInst {
			idx = i
			break
		}
	}
	if idx < 0 {
		fatal(ErrArgumentCount, "call instruction not found in its own parent block")
	}
	return SplitBlock(fn, bb, idx+1)
}

// replaceUses rewrites every operand reference to old with new across
// fn's instructions, block-parameter argument lists, and terminators.
// Used for return-value threading (spec.md §4.1 steps 7 and 8): once
// the call's result is replaced by a fused return value or a
// return-to-block parameter, no instruction may still reference the
// call's original result.
func replaceUses(fn *ir.Function, old, new_ *ir.Value) {
	if old == nil || old == new_ {
		return
	}
	replace := func(v *ir.Value) *ir.Value {
		if v == old {
			return new_
		}
		return v
	}
	replaceAll := func(vs []*ir.Value) {
		for i, v := range vs {
			vs[i] = replace(v)
		}
	}
	for _, bb := range fn.Blocks {
		for _, inst := range bb.Instructions {
			replaceOperandsInPlace(inst, replace, replaceAll)
		}
		if bb.Terminator != nil {
			replaceOperandsInPlace(bb.Terminator, replace, replaceAll)
		}
	}
}

// replaceOperandsInPlace mutates inst's operand fields directly. A
// generic Operands()-based rewrite is not possible since Operands()
// returns a freshly built slice for multi-field instructions (see
// ir.MethodDispatchInst, ir.ApplyInst); each kind's mutable fields are
// addressed individually, mirroring ir.Cloner.Clone's exhaustive
// per-kind switch.
func replaceOperandsInPlace(inst ir.Instruction, replace func(*ir.Value) *ir.Value, replaceAll func([]*ir.Value)) {
	switch v := inst.(type) {
	case *ir.LifetimeMarkerInst:
		v.Operand = replace(v.Operand)
	case *ir.AddressProjectionInst:
		v.Base = replace(v.Base)
	case *ir.AggregateInst:
		replaceAll(v.Elements)
	case *ir.UncheckedConversionInst:
		v.Operand = replace(v.Operand)
	case *ir.MetatypeToObjectInst:
		v.Metatype = replace(v.Metatype)
	case *ir.MemoryAccessMarkerInst:
		v.Address = replace(v.Address)
	case *ir.BuiltinCallInst:
		replaceAll(v.Args)
	case *ir.PartialApplyInst:
		v.Callee = replace(v.Callee)
		replaceAll(v.Captures)
	case *ir.DeallocInst:
		v.Target = replace(v.Target)
	case *ir.RefCountInst:
		v.Target = replace(v.Target)
	case *ir.LoadInst:
		v.Address = replace(v.Address)
	case *ir.StoreInst:
		v.Address = replace(v.Address)
		v.Value = replace(v.Value)
	case *ir.EnumConstructInst:
		v.Payload = replace(v.Payload)
	case *ir.EnumProjectInst:
		v.Operand = replace(v.Operand)
	case *ir.DynamicCastInst:
		v.Operand = replace(v.Operand)
	case *ir.MethodDispatchInst:
		v.Self = replace(v.Self)
		replaceAll(v.Args)
	case *ir.KeyPathInst:
		v.Root = replace(v.Root)
	case *ir.ExistentialOpenInst:
		v.Existential = replace(v.Existential)
	case *ir.ExistentialInitInst:
		v.Concrete = replace(v.Concrete)
	case *ir.BridgeObjectNarrowInst:
		v.Operand = replace(v.Operand)
	case *ir.MetatypeConversionInst:
		v.Operand = replace(v.Operand)
	case *ir.DebugValueInst:
		v.Operand = replace(v.Operand)
	case *ir.ApplyInst:
		v.Fn = replace(v.Fn)
		replaceAll(v.Args)
	case *ir.TryApplyInst:
		v.Fn = replace(v.Fn)
		replaceAll(v.Args)
	case *ir.BranchTerminator:
		replaceAll(v.Args)
	case *ir.CondBranchTerminator:
		v.Condition = replace(v.Condition)
		replaceAll(v.TrueArgs)
		replaceAll(v.FalseArgs)
	case *ir.ReturnTerminator:
		v.Value = replace(v.Value)
	case *ir.ThrowTerminator:
		v.Value = replace(v.Value)
	case *ir.SwitchEnumTerminator:
		v.Operand = replace(v.Operand)
	}
}
