package ir

// This file gathers constructors for the concrete instruction types.
// Each takes the function it will live in, which hands out the
// instruction and result ids; placing it in a block is left to
// Append/SetTerminator. This mirrors the
// teacher's Builder.createValue/addInstruction pair
// (kanso/internal/ir/builder.go) but split per instruction kind instead
// of funneled through one generic constructor.

func newBase(fn *Function, loc Location, scope *DebugScope) base {
	return base{id: fn.NextInstID(), loc: loc, scope: scope}
}

func newResult(fn *Function, typ Type, owner OwnershipKind) *Value {
	return &Value{ID: fn.NextValueID(), Type: typ, Kind: ValueInstructionResult, Owner: owner}
}

func NewIntegerLiteral(fn *Function, loc Location, scope *DebugScope, typ Type, val int64) *IntegerLiteralInst {
	inst := &IntegerLiteralInst{base: newBase(fn, loc, scope), Value: val}
	inst.result = newResult(fn, typ, OwnershipTrivial)
	inst.result.Def = inst
	return inst
}

func NewFunctionRef(fn *Function, loc Location, scope *DebugScope, typ Type, target *Function) *FunctionRefInst {
	inst := &FunctionRefInst{base: newBase(fn, loc, scope), Function: target}
	inst.result = newResult(fn, typ, OwnershipTrivial)
	inst.result.Def = inst
	return inst
}

func NewLoad(fn *Function, loc Location, scope *DebugScope, typ Type, addr *Value) *LoadInst {
	inst := &LoadInst{base: newBase(fn, loc, scope), Address: addr}
	inst.result = newResult(fn, typ, OwnershipOwned)
	inst.result.Def = inst
	return inst
}

func NewStore(fn *Function, loc Location, scope *DebugScope, addr, val *Value) *StoreInst {
	return &StoreInst{base: newBase(fn, loc, scope), Address: addr, Value: val}
}

func NewAlloc(fn *Function, loc Location, scope *DebugScope, typ Type, domain AllocationDomain) *AllocInst {
	inst := &AllocInst{base: newBase(fn, loc, scope), Domain: domain}
	inst.result = newResult(fn, typ, OwnershipOwned)
	inst.result.Def = inst
	return inst
}

func NewDealloc(fn *Function, loc Location, scope *DebugScope, domain AllocationDomain, target *Value) *DeallocInst {
	return &DeallocInst{base: newBase(fn, loc, scope), Domain: domain, Target: target}
}

func NewRefCount(fn *Function, loc Location, scope *DebugScope, op RefCountOp, target *Value) *RefCountInst {
	return &RefCountInst{base: newBase(fn, loc, scope), Op: op, Target: target}
}

func NewApply(fn *Function, loc Location, scope *DebugScope, resultType Type, calleeVal *Value, callee *Function, args []*Value) *ApplyInst {
	inst := &ApplyInst{base: newBase(fn, loc, scope), Fn: calleeVal, Callee_: callee, Args: args}
	if resultType != nil {
		inst.result = newResult(fn, resultType, OwnershipOwned)
		inst.result.Def = inst
	}
	return inst
}

func NewTryApply(fn *Function, loc Location, scope *DebugScope, calleeVal *Value, callee *Function, args []*Value, normal, errorBlock *BasicBlock) *TryApplyInst {
	return &TryApplyInst{base: newBase(fn, loc, scope), Fn: calleeVal, Callee_: callee, Args: args, Normal: normal, Error: errorBlock}
}

func NewReturn(fn *Function, loc Location, scope *DebugScope, val *Value) *ReturnTerminator {
	return &ReturnTerminator{base: newBase(fn, loc, scope), Value: val}
}

func NewThrow(fn *Function, loc Location, scope *DebugScope, val *Value) *ThrowTerminator {
	return &ThrowTerminator{base: newBase(fn, loc, scope), Value: val}
}

func NewUnreachable(fn *Function, loc Location, scope *DebugScope) *UnreachableTerminator {
	return &UnreachableTerminator{base: newBase(fn, loc, scope)}
}

func NewBranch(fn *Function, loc Location, scope *DebugScope, target *BasicBlock, args []*Value) *BranchTerminator {
	return &BranchTerminator{base: newBase(fn, loc, scope), Target: target, Args: args}
}

func NewCondBranch(fn *Function, loc Location, scope *DebugScope, cond *Value, trueBB *BasicBlock, trueArgs []*Value, falseBB *BasicBlock, falseArgs []*Value) *CondBranchTerminator {
	return &CondBranchTerminator{base: newBase(fn, loc, scope), Condition: cond, True: trueBB, TrueArgs: trueArgs, False: falseBB, FalseArgs: falseArgs}
}

func NewStringLiteral(fn *Function, loc Location, scope *DebugScope, typ Type, val string, untyped bool) *StringLiteralInst {
	inst := &StringLiteralInst{base: newBase(fn, loc, scope), Value: val, Untyped: untyped}
	inst.result = newResult(fn, typ, OwnershipTrivial)
	inst.result.Def = inst
	return inst
}

// NewLifetimeMarker builds a marker with no result, for every op. No
// constructor in this package wires a dependent result for
// mark_dependence or unchecked_ownership_conversion, so markers built
// here, including those two, have a nil Result.
func NewLifetimeMarker(fn *Function, loc Location, scope *DebugScope, op LifetimeMarkerOp, operand *Value) *LifetimeMarkerInst {
	return &LifetimeMarkerInst{base: newBase(fn, loc, scope), Op: op, Operand: operand}
}

func NewMemoryAccessMarker(fn *Function, loc Location, scope *DebugScope, op MemoryAccessOp, enforcement EnforcementMode, addr *Value) *MemoryAccessMarkerInst {
	return &MemoryAccessMarkerInst{base: newBase(fn, loc, scope), Op: op, Address: addr, Enforcement: enforcement}
}

func NewBuiltinCall(fn *Function, loc Location, scope *DebugScope, resultType Type, identifier string, args []*Value) *BuiltinCallInst {
	inst := &BuiltinCallInst{base: newBase(fn, loc, scope), Identifier: identifier, Args: args}
	if resultType != nil {
		inst.result = newResult(fn, resultType, OwnershipOwned)
		inst.result.Def = inst
	}
	return inst
}

func NewFloatLiteral(fn *Function, loc Location, scope *DebugScope, typ Type, val float64) *FloatLiteralInst {
	inst := &FloatLiteralInst{base: newBase(fn, loc, scope), Value: val}
	inst.result = newResult(fn, typ, OwnershipTrivial)
	inst.result.Def = inst
	return inst
}

func NewGlobalAddr(fn *Function, loc Location, scope *DebugScope, typ Type, global string) *GlobalAddrInst {
	inst := &GlobalAddrInst{base: newBase(fn, loc, scope), Global: global}
	inst.result = newResult(fn, typ, OwnershipTrivial)
	inst.result.Def = inst
	return inst
}

func NewGlobalAlloc(fn *Function, loc Location, scope *DebugScope, typ Type, global string) *GlobalAllocInst {
	inst := &GlobalAllocInst{base: newBase(fn, loc, scope), Global: global}
	inst.result = newResult(fn, typ, OwnershipTrivial)
	inst.result.Def = inst
	return inst
}

func NewAddressProjection(fn *Function, loc Location, scope *DebugScope, typ Type, op ProjectionOp, base_ *Value, index int) *AddressProjectionInst {
	inst := &AddressProjectionInst{base: newBase(fn, loc, scope), Op: op, Base: base_, Index: index}
	inst.result = newResult(fn, typ, OwnershipTrivial)
	inst.result.Def = inst
	return inst
}

func NewAggregate(fn *Function, loc Location, scope *DebugScope, typ Type, op AggregateOp, elements []*Value) *AggregateInst {
	inst := &AggregateInst{base: newBase(fn, loc, scope), Op: op, Elements: elements}
	inst.result = newResult(fn, typ, OwnershipOwned)
	inst.result.Def = inst
	return inst
}

func NewUncheckedConversion(fn *Function, loc Location, scope *DebugScope, typ Type, op ConversionOp, operand *Value) *UncheckedConversionInst {
	inst := &UncheckedConversionInst{base: newBase(fn, loc, scope), Op: op, Operand: operand}
	inst.result = newResult(fn, typ, OwnershipOwned)
	inst.result.Def = inst
	return inst
}

func NewForeignProtocolDescriptor(fn *Function, loc Location, scope *DebugScope, typ Type, protocol string) *ForeignProtocolDescriptorInst {
	inst := &ForeignProtocolDescriptorInst{base: newBase(fn, loc, scope), Protocol: protocol}
	inst.result = newResult(fn, typ, OwnershipTrivial)
	inst.result.Def = inst
	return inst
}

func NewMetatypeToObject(fn *Function, loc Location, scope *DebugScope, typ Type, metatype *Value, existential bool) *MetatypeToObjectInst {
	inst := &MetatypeToObjectInst{base: newBase(fn, loc, scope), Metatype: metatype, Existential: existential}
	inst.result = newResult(fn, typ, OwnershipOwned)
	inst.result.Def = inst
	return inst
}

// NewMetatype builds `T.Type`. Cost depends on mt.Representation (see
// inline/cost.go): Free iff Thin.
func NewMetatype(fn *Function, loc Location, scope *DebugScope, mt *MetatypeType) *MetatypeInst {
	inst := &MetatypeInst{base: newBase(fn, loc, scope), Type: mt}
	inst.result = newResult(fn, mt, OwnershipTrivial)
	inst.result.Def = inst
	return inst
}

func NewPartialApply(fn *Function, loc Location, scope *DebugScope, typ Type, callee *Value, captures []*Value) *PartialApplyInst {
	inst := &PartialApplyInst{base: newBase(fn, loc, scope), Callee: callee, Captures: captures}
	inst.result = newResult(fn, typ, OwnershipOwned)
	inst.result.Def = inst
	return inst
}

func NewEnumConstruct(fn *Function, loc Location, scope *DebugScope, typ Type, caseName string, payload *Value) *EnumConstructInst {
	inst := &EnumConstructInst{base: newBase(fn, loc, scope), Case: caseName, Payload: payload}
	inst.result = newResult(fn, typ, OwnershipOwned)
	inst.result.Def = inst
	return inst
}

func NewEnumProject(fn *Function, loc Location, scope *DebugScope, typ Type, caseName string, operand *Value) *EnumProjectInst {
	inst := &EnumProjectInst{base: newBase(fn, loc, scope), Case: caseName, Operand: operand}
	inst.result = newResult(fn, typ, OwnershipOwned)
	inst.result.Def = inst
	return inst
}

func NewDynamicCast(fn *Function, loc Location, scope *DebugScope, targetTy Type, checked bool, operand *Value) *DynamicCastInst {
	inst := &DynamicCastInst{base: newBase(fn, loc, scope), Checked: checked, TargetTy: targetTy, Operand: operand}
	inst.result = newResult(fn, targetTy, OwnershipOwned)
	inst.result.Def = inst
	return inst
}

func NewMethodDispatch(fn *Function, loc Location, scope *DebugScope, typ Type, kind DispatchKind, self *Value, method string, args []*Value) *MethodDispatchInst {
	inst := &MethodDispatchInst{base: newBase(fn, loc, scope), Kind_: kind, Self: self, Method: method, Args: args}
	inst.result = newResult(fn, typ, OwnershipOwned)
	inst.result.Def = inst
	return inst
}

func NewKeyPath(fn *Function, loc Location, scope *DebugScope, typ Type, components []string, root *Value) *KeyPathInst {
	inst := &KeyPathInst{base: newBase(fn, loc, scope), Components: components, Root: root}
	inst.result = newResult(fn, typ, OwnershipTrivial)
	inst.result.Def = inst
	return inst
}

func NewExistentialOpen(fn *Function, loc Location, scope *DebugScope, typ Type, existential *Value) *ExistentialOpenInst {
	inst := &ExistentialOpenInst{base: newBase(fn, loc, scope), Existential: existential}
	inst.result = newResult(fn, typ, OwnershipOwned)
	inst.result.Def = inst
	return inst
}

func NewExistentialInit(fn *Function, loc Location, scope *DebugScope, typ Type, concrete *Value) *ExistentialInitInst {
	inst := &ExistentialInitInst{base: newBase(fn, loc, scope), Concrete: concrete}
	inst.result = newResult(fn, typ, OwnershipOwned)
	inst.result.Def = inst
	return inst
}

func NewBridgeObjectNarrow(fn *Function, loc Location, scope *DebugScope, typ Type, operand *Value) *BridgeObjectNarrowInst {
	inst := &BridgeObjectNarrowInst{base: newBase(fn, loc, scope), Operand: operand}
	inst.result = newResult(fn, typ, OwnershipOwned)
	inst.result.Def = inst
	return inst
}

func NewMetatypeConversion(fn *Function, loc Location, scope *DebugScope, typ Type, toForeign bool, operand *Value) *MetatypeConversionInst {
	inst := &MetatypeConversionInst{base: newBase(fn, loc, scope), ToForeign: toForeign, Operand: operand}
	inst.result = newResult(fn, typ, OwnershipOwned)
	inst.result.Def = inst
	return inst
}

func NewDebugValue(fn *Function, loc Location, scope *DebugScope, operand *Value, binding string) *DebugValueInst {
	return &DebugValueInst{base: newBase(fn, loc, scope), Operand: operand, Binding: binding}
}

func NewNonCanonical(fn *Function, loc Location, scope *DebugScope) *NonCanonicalInst {
	return &NonCanonicalInst{base: newBase(fn, loc, scope)}
}

func NewSwitchEnum(fn *Function, loc Location, scope *DebugScope, operand *Value, cases map[string]*BasicBlock, def *BasicBlock) *SwitchEnumTerminator {
	return &SwitchEnumTerminator{base: newBase(fn, loc, scope), Operand: operand, Cases: cases, Default: def}
}
