package ir

// Cloner is the instruction-cloning primitive. The spec (spec.md §1,
// §4.4) treats this as an external collaborator and marks it "assumed":
// the inliner core only ever calls it, never defines its behavior.
// Nothing upstream of this module provides such a primitive, so it is
// implemented here, generalizing the per-instruction-kind construction
// the teacher's ir.Builder performs while lowering an AST
// (kanso/internal/ir/builder.go's buildExpression/buildBinaryOp/
// buildCall family) into a single exhaustive switch that instead
// lowers IR-to-IR.
//
// Clone never clones a Terminator — the inliner's walk only ever
// passes it a block's non-terminator instructions; terminators are
// rewritten separately (see inline/driver.go), matching spec.md §4.1
// step 9 and §4.4's second refinement.
type Cloner struct {
	Fn      *Function // the caller function new instructions are inserted into
	Values  map[*Value]*Value
	Blocks  map[*BasicBlock]*BasicBlock
	// DropDebugValues is true under mandatory inlining: debug-value
	// instructions are skipped rather than cloned (spec.md §4.4).
	DropDebugValues bool
	// Scope resolves a callee instruction's original scope to the
	// scope the clone should carry (see inline/scope.go's Rebuilder).
	Scope func(orig *DebugScope) *DebugScope
}

// remap substitutes v through the value map. Undef passes through
// unchanged since it carries no per-function identity. Anything else
// must already be present — every operand of a cloned instruction is
// produced either by an earlier clone in the same walk or by the
// argument-binding step, per spec.md §3's value-isolation invariant.
func (c *Cloner) remap(v *Value) *Value {
	if v == nil || v.Kind == ValueUndef {
		return v
	}
	mapped, ok := c.Values[v]
	if !ok {
		panic(&CloneError{Message: "operand " + v.String() + " has no caller mapping"})
	}
	return mapped
}

func (c *Cloner) remapAll(vs []*Value) []*Value {
	if vs == nil {
		return nil
	}
	out := make([]*Value, len(vs))
	for i, v := range vs {
		out[i] = c.remap(v)
	}
	return out
}

func (c *Cloner) remapBlock(bb *BasicBlock) *BasicBlock {
	if bb == nil {
		return nil
	}
	mapped, ok := c.Blocks[bb]
	if !ok {
		panic(&CloneError{Message: "block " + bb.String() + " has no caller mapping"})
	}
	return mapped
}

// bindResult allocates a fresh caller-side result value mirroring
// orig's type/ownership, records it as orig's image in the value map,
// and returns it. Call with orig == nil for instructions with no
// result.
func (c *Cloner) bindResult(orig *Value) *Value {
	if orig == nil {
		return nil
	}
	fresh := &Value{ID: c.Fn.NextValueID(), Name: orig.Name, Type: orig.Type, Kind: ValueInstructionResult, Owner: orig.Owner}
	c.Values[orig] = fresh
	return fresh
}

// Clone clones a single non-terminator instruction, remapping its
// operands and, if it produces a value, seeding the value map with the
// fresh result. It returns (nil, false) precisely when inst should be
// dropped entirely (a debug-value instruction under mandatory
// inlining). A kept clone's result, if it has one, gets the clone as
// its Def.
func (c *Cloner) Clone(inst Instruction) (cloned Instruction, keep bool) {
	defer func() {
		if keep {
			if r := cloned.Result(); r != nil {
				r.Def = cloned
			}
		}
	}()
	scope := c.Scope(inst.Scope())
	id := c.Fn.NextInstID()
	mk := func() base { return base{id: id, loc: inst.Loc(), scope: scope} }

	switch v := inst.(type) {
	case *IntegerLiteralInst:
		return &IntegerLiteralInst{base: mk(), result: c.bindResult(v.result), Value: v.Value}, true
	case *FloatLiteralInst:
		return &FloatLiteralInst{base: mk(), result: c.bindResult(v.result), Value: v.Value}, true
	case *StringLiteralInst:
		return &StringLiteralInst{base: mk(), result: c.bindResult(v.result), Value: v.Value, Untyped: v.Untyped}, true
	case *LifetimeMarkerInst:
		return &LifetimeMarkerInst{base: mk(), Op: v.Op, Operand: c.remap(v.Operand), result: c.bindResult(v.result)}, true
	case *FunctionRefInst:
		return &FunctionRefInst{base: mk(), result: c.bindResult(v.result), Function: v.Function}, true
	case *GlobalAddrInst:
		return &GlobalAddrInst{base: mk(), result: c.bindResult(v.result), Global: v.Global}, true
	case *GlobalAllocInst:
		return &GlobalAllocInst{base: mk(), result: c.bindResult(v.result), Global: v.Global}, true
	case *AddressProjectionInst:
		return &AddressProjectionInst{base: mk(), result: c.bindResult(v.result), Op: v.Op, Base: c.remap(v.Base), Index: v.Index}, true
	case *AggregateInst:
		return &AggregateInst{base: mk(), result: c.bindResult(v.result), Op: v.Op, Elements: c.remapAll(v.Elements)}, true
	case *UncheckedConversionInst:
		return &UncheckedConversionInst{base: mk(), result: c.bindResult(v.result), Op: v.Op, Operand: c.remap(v.Operand)}, true
	case *ForeignProtocolDescriptorInst:
		return &ForeignProtocolDescriptorInst{base: mk(), result: c.bindResult(v.result), Protocol: v.Protocol}, true
	case *MetatypeToObjectInst:
		return &MetatypeToObjectInst{base: mk(), result: c.bindResult(v.result), Metatype: c.remap(v.Metatype), Existential: v.Existential}, true
	case *MetatypeInst:
		return &MetatypeInst{base: mk(), result: c.bindResult(v.result), Type: v.Type}, true
	case *MemoryAccessMarkerInst:
		return &MemoryAccessMarkerInst{base: mk(), Op: v.Op, Address: c.remap(v.Address), Enforcement: v.Enforcement}, true
	case *BuiltinCallInst:
		return &BuiltinCallInst{base: mk(), result: c.bindResult(v.result), Identifier: v.Identifier, Args: c.remapAll(v.Args)}, true
	case *PartialApplyInst:
		return &PartialApplyInst{base: mk(), result: c.bindResult(v.result), Callee: c.remap(v.Callee), Captures: c.remapAll(v.Captures)}, true
	case *AllocInst:
		return &AllocInst{base: mk(), result: c.bindResult(v.result), Domain: v.Domain}, true
	case *DeallocInst:
		return &DeallocInst{base: mk(), Domain: v.Domain, Target: c.remap(v.Target)}, true
	case *RefCountInst:
		return &RefCountInst{base: mk(), Op: v.Op, Target: c.remap(v.Target)}, true
	case *LoadInst:
		return &LoadInst{base: mk(), result: c.bindResult(v.result), Address: c.remap(v.Address)}, true
	case *StoreInst:
		return &StoreInst{base: mk(), Address: c.remap(v.Address), Value: c.remap(v.Value)}, true
	case *EnumConstructInst:
		return &EnumConstructInst{base: mk(), result: c.bindResult(v.result), Case: v.Case, Payload: c.remap(v.Payload)}, true
	case *EnumProjectInst:
		return &EnumProjectInst{base: mk(), result: c.bindResult(v.result), Case: v.Case, Operand: c.remap(v.Operand)}, true
	case *DynamicCastInst:
		return &DynamicCastInst{base: mk(), result: c.bindResult(v.result), Checked: v.Checked, TargetTy: v.TargetTy, Operand: c.remap(v.Operand)}, true
	case *MethodDispatchInst:
		return &MethodDispatchInst{base: mk(), result: c.bindResult(v.result), Kind_: v.Kind_, Self: c.remap(v.Self), Method: v.Method, Args: c.remapAll(v.Args)}, true
	case *KeyPathInst:
		return &KeyPathInst{base: mk(), result: c.bindResult(v.result), Components: v.Components, Root: c.remap(v.Root)}, true
	case *ExistentialOpenInst:
		return &ExistentialOpenInst{base: mk(), result: c.bindResult(v.result), Existential: c.remap(v.Existential)}, true
	case *ExistentialInitInst:
		return &ExistentialInitInst{base: mk(), result: c.bindResult(v.result), Concrete: c.remap(v.Concrete)}, true
	case *BridgeObjectNarrowInst:
		return &BridgeObjectNarrowInst{base: mk(), result: c.bindResult(v.result), Operand: c.remap(v.Operand)}, true
	case *MetatypeConversionInst:
		return &MetatypeConversionInst{base: mk(), result: c.bindResult(v.result), ToForeign: v.ToForeign, Operand: c.remap(v.Operand)}, true
	case *DebugValueInst:
		if c.DropDebugValues {
			return nil, false
		}
		return &DebugValueInst{base: mk(), Operand: c.remap(v.Operand), Binding: v.Binding}, true
	case *ApplyInst:
		return &ApplyInst{base: mk(), result: c.bindResult(v.result), Fn: c.remap(v.Fn), Callee_: v.Callee_, Args: c.remapAll(v.Args)}, true
	default:
		panic(&CloneError{Message: "clone: unhandled or terminator instruction kind"})
	}
}

// CloneError is raised when the cloner's invariants are violated by its
// caller (e.g. asking it to remap a value with no caller-side image).
// This is always a bug in the inliner driver, not a property of input
// IR, so it is represented the same way as the inliner's own fatal
// errors (see inline.FatalError).
type CloneError struct {
	Message string
}

func (e *CloneError) Error() string { return "ir: " + e.Message }
