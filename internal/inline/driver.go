package inline

import "sila/internal/ir"

// CallSite identifies one call instruction to be inlined: Call is
// either an *ir.ApplyInst (non-terminator, living in Block's
// instruction list) or an *ir.TryApplyInst (Block's terminator).
type CallSite struct {
	Block *ir.BasicBlock
	Call  ir.ApplySite
}

func (s CallSite) function() *ir.Function { return s.Block.Function }

// Inliner is C5: the driver that splices one callee body into one
// caller function at one call site, per spec.md §4.1. An instance can
// be reused across many call sites targeting the same callee; its value
// and block maps are cleared, keeping their storage, at the start of
// every Inline.
type Inliner struct {
	Caller *ir.Function
	Callee *ir.Function
	Flavor Flavor
	// CallerScope is the fallback debug scope substituted when a call
	// site's own instruction carries none (spec.md §7's "absent debug
	// scope on call site" recovered case).
	CallerScope *ir.DebugScope

	valueMap ValueMap
	blockMap BlockMap
}

// NewInliner returns an Inliner ready to splice Callee's body into
// Caller, using the given flavor and fallback debug scope.
func NewInliner(caller, callee *ir.Function, flavor Flavor, callerScope *ir.DebugScope) *Inliner {
	return &Inliner{Caller: caller, Callee: callee, Flavor: flavor, CallerScope: callerScope}
}

// CanInline is the one core-level admissibility check: a function
// cannot be inlined into itself. Every other admissibility concern
// (visibility, recursion, body availability) belongs to the calling
// optimizer pass, not the core (spec.md §4.1).
func (in *Inliner) CanInline(site CallSite) bool {
	return site.function() != in.Callee
}

// Inline performs the splice described by spec.md §4.1's nine steps.
// It panics with a FatalError on any precondition violation; there is
// no partial-success state to roll back to.
func (in *Inliner) Inline(site CallSite, args []*ir.Value) {
	if !in.CanInline(site) {
		fatal(ErrSelfInline, "cannot inline %s into itself", in.Callee.Name)
	}
	entry := in.Callee.Entry()
	if entry == nil {
		fatal(ErrArgumentCount, "callee %s has no entry block", in.Callee.Name)
	}
	if len(args) != len(in.Callee.Params) {
		fatal(ErrArgumentCount, "call supplies %d argument(s), callee expects %d", len(args), len(in.Callee.Params))
	}
	if in.Flavor == Mandatory && in.Callee.Representation != ir.RepresentationNative {
		fatal(ErrMandatoryForeignCallee, "mandatory inlining forbids foreign callee %s", in.Callee.Name)
	}

	// 1. Location selection.
	siteLoc := site.Call.Loc()
	var loc ir.Location
	if in.Flavor == Performance {
		loc = ir.InlinedLocation(siteLoc)
	} else {
		loc = ir.MandatoryInlinedLocation(siteLoc)
	}

	// 2. Call-site scope setup.
	aiScope := site.Call.Scope()
	if aiScope == nil {
		aiScope = in.CallerScope
	}
	var callSiteScope *ir.DebugScope
	if in.Flavor == Mandatory {
		callSiteScope = aiScope
	} else {
		var inlinedCallSite *ir.DebugScope
		if aiScope != nil {
			inlinedCallSite = aiScope.InlinedCallSite
		}
		callSiteScope = in.Caller.Module().NewScope(siteLoc, nil, aiScope, inlinedCallSite)
	}

	// 3. Book-keeping.
	in.Callee.Inlined = true

	// 4. Placement anchor.
	insertBeforeBB := in.Caller.BlockAfter(site.Block)

	// 5. Argument binding. The maps are cleared rather than reallocated,
	// so a reused Inliner keeps their storage.
	if in.valueMap == nil {
		in.valueMap = ValueMap{}
		in.blockMap = BlockMap{}
	}
	clear(in.valueMap)
	clear(in.blockMap)
	for i, param := range in.Callee.Params {
		in.valueMap[param] = args[i]
	}
	in.blockMap[entry] = site.Block

	rebuilder := NewRebuilder(in.Caller.Module(), callSiteScope)
	cloner := &ir.Cloner{
		Fn:              in.Caller,
		Values:          in.valueMap,
		Blocks:          in.blockMap,
		DropDebugValues: in.Flavor == Mandatory,
		Scope:           rebuilder.Resolve,
	}

	// Insertion point inside the caller's own block (entry's image):
	// the callee's entry-block instructions land here, before the call.
	entryInsertIdx := blockIndexOf(site.Block, site.Call)

	// 6. Body cloning, depth-first preorder over the callee's blocks.
	order := calleePreorder(entry)
	for _, calleeBB := range order {
		var callerBB *ir.BasicBlock
		if calleeBB == entry {
			callerBB = site.Block
		} else {
			callerBB = ir.NewBasicBlock(in.Caller.NextBlockID(), "")
			in.Caller.InsertBlockBefore(callerBB, insertBeforeBB)
			for _, p := range calleeBB.Params {
				fresh := callerBB.AddParam(in.Caller.NextValueID(), p.Name, p.Type, p.Owner)
				in.valueMap[p] = fresh
			}
			in.blockMap[calleeBB] = callerBB
		}

		for _, inst := range calleeBB.Instructions {
			cloned, keep := cloner.Clone(inst)
			if !keep {
				continue
			}
			if calleeBB == entry {
				insertAt(callerBB, entryInsertIdx, cloned)
				entryInsertIdx++
			} else {
				callerBB.Append(cloned)
			}
		}
	}

	// 7. Fast-path return fusion.
	if apply, ok := site.Call.(*ir.ApplyInst); ok {
		if ret, ok := entry.Terminator.(*ir.ReturnTerminator); ok {
			result := apply.Result()
			if result != nil {
				replaceUses(in.Caller, result, in.remapValue(ret.Value))
			}
			return
		}
	}

	// 8. Return-to block.
	var returnTo *ir.BasicBlock
	var resultParam *ir.Value
	switch call := site.Call.(type) {
	case *ir.TryApplyInst:
		returnTo = call.Normal
		if len(returnTo.Params) > 0 {
			resultParam = returnTo.Params[0]
		}
	case *ir.ApplyInst:
		returnTo = splitAfterCall(in.Caller, site.Block, call)
		in.Caller.InsertBlockBefore(returnTo, insertBeforeBB)
		if result := call.Result(); result != nil {
			resultParam = returnTo.AddParam(in.Caller.NextValueID(), result.Name, result.Type, ir.OwnershipOwned)
			replaceUses(in.Caller, result, resultParam)
		}
	}

	// 9. Terminator patching.
	for calleeBB, callerBB := range in.blockMap {
		term := calleeBB.Terminator
		switch t := term.(type) {
		case *ir.ReturnTerminator:
			var retArgs []*ir.Value
			if resultParam != nil {
				retArgs = []*ir.Value{in.remapValue(t.Value)}
			}
			callerBB.SetTerminator(ir.NewBranch(in.Caller, loc, callSiteScope, returnTo, retArgs))
		case *ir.ThrowTerminator:
			if tryApply, ok := site.Call.(*ir.TryApplyInst); ok {
				callerBB.SetTerminator(ir.NewBranch(in.Caller, loc, callSiteScope, tryApply.Error, []*ir.Value{in.remapValue(t.Value)}))
			} else {
				callerBB.SetTerminator(ir.NewUnreachable(in.Caller, loc, callSiteScope))
			}
		default:
			callerBB.SetTerminator(in.cloneTerminator(cloner, term))
		}
	}
}

func (in *Inliner) remapValue(v *ir.Value) *ir.Value {
	if v == nil || v.Kind == ir.ValueUndef {
		return v
	}
	mapped, ok := in.valueMap[v]
	if !ok {
		fatal(ErrArgumentCount, "return operand %s has no caller mapping", v.String())
	}
	return mapped
}

// cloneTerminator handles the "any other terminator" branch of step 9:
// a general-purpose remap of operands and successor blocks through the
// value/block maps, for terminators with no special-case rewrite
// (Branch, CondBranch, SwitchEnum, Unreachable).
func (in *Inliner) cloneTerminator(cloner *ir.Cloner, term ir.Terminator) ir.Terminator {
	switch t := term.(type) {
	case *ir.BranchTerminator:
		return ir.NewBranch(in.Caller, t.Loc(), cloner.Scope(t.Scope()), in.blockMap[t.Target], remapSlice(in.valueMap, t.Args))
	case *ir.CondBranchTerminator:
		return ir.NewCondBranch(in.Caller, t.Loc(), cloner.Scope(t.Scope()),
			in.remapValue(t.Condition),
			in.blockMap[t.True], remapSlice(in.valueMap, t.TrueArgs),
			in.blockMap[t.False], remapSlice(in.valueMap, t.FalseArgs))
	case *ir.UnreachableTerminator:
		return ir.NewUnreachable(in.Caller, t.Loc(), cloner.Scope(t.Scope()))
	case *ir.SwitchEnumTerminator:
		cases := make(map[string]*ir.BasicBlock, len(t.Cases))
		for tag, bb := range t.Cases {
			cases[tag] = in.blockMap[bb]
		}
		var def *ir.BasicBlock
		if t.Default != nil {
			def = in.blockMap[t.Default]
		}
		return ir.NewSwitchEnum(in.Caller, t.Loc(), cloner.Scope(t.Scope()), in.remapValue(t.Operand), cases, def)
	default:
		fatal(ErrNonCanonicalCost, "unhandled terminator kind during splice")
		panic("unreachable")
	}
}

func remapSlice(vm ValueMap, vs []*ir.Value) []*ir.Value {
	if vs == nil {
		return nil
	}
	out := make([]*ir.Value, len(vs))
	for i, v := range vs {
		if v == nil || v.Kind == ir.ValueUndef {
			out[i] = v
			continue
		}
		mapped, ok := vm[v]
		if !ok {
			fatal(ErrArgumentCount, "branch argument %s has no caller mapping", v.String())
		}
		out[i] = mapped
	}
	return out
}

// calleePreorder walks the callee's blocks in depth-first preorder
// starting from entry, following terminator successors, visiting each
// block at most once. This is the clone order spec.md §4.1 step 6
// names explicitly.
func calleePreorder(entry *ir.BasicBlock) []*ir.BasicBlock {
	var order []*ir.BasicBlock
	seen := map[*ir.BasicBlock]bool{}
	var visit func(bb *ir.BasicBlock)
	visit = func(bb *ir.BasicBlock) {
		if bb == nil || seen[bb] {
			return
		}
		seen[bb] = true
		order = append(order, bb)
		for _, succ := range bb.Successors() {
			visit(succ)
		}
	}
	visit(entry)
	return order
}

func blockIndexOf(bb *ir.BasicBlock, inst ir.Instruction) int {
	for i, existing := range bb.Instructions {
		if existing == inst {
			return i
		}
	}
	return len(bb.Instructions)
}

func insertAt(bb *ir.BasicBlock, idx int, inst ir.Instruction) {
	inst.SetBlock(bb)
	bb.Instructions = append(bb.Instructions, nil)
	copy(bb.Instructions[idx+1:], bb.Instructions[idx:])
	bb.Instructions[idx] = inst
}

