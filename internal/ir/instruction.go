package ir

// Instruction is the tagged variant every IR instruction implements. It
// mirrors the teacher's Instruction interface (GetID/GetResult/
// GetOperands/GetBlock/IsTerminator) but adds the location and
// debug-scope accessors the inliner needs to rewrite, and a Kind for
// exhaustive switches instead of a generated visitor.
type Instruction interface {
	ID() int
	Kind() InstKind
	Result() *Value
	Operands() []*Value
	Block() *BasicBlock
	SetBlock(*BasicBlock)
	Loc() Location
	SetLoc(Location)
	Scope() *DebugScope
	SetScope(*DebugScope)
}

// Terminator is an Instruction that ends a basic block and names its
// successor blocks.
type Terminator interface {
	Instruction
	Successors() []*BasicBlock
}

// base is embedded by every concrete instruction to supply the common
// bookkeeping fields, matching the teacher's per-instruction ID/Block
// fields without repeating the accessor boilerplate by hand.
type base struct {
	id    int
	block *BasicBlock
	loc   Location
	scope *DebugScope
}

func (b *base) ID() int             { return b.id }
func (b *base) Block() *BasicBlock  { return b.block }
func (b *base) SetBlock(bb *BasicBlock) { b.block = bb }
func (b *base) Loc() Location       { return b.loc }
func (b *base) SetLoc(l Location)   { b.loc = l }
func (b *base) Scope() *DebugScope  { return b.scope }
func (b *base) SetScope(s *DebugScope) { b.scope = s }

// --- Free instructions ---

type IntegerLiteralInst struct {
	base
	result *Value
	Value  int64
}

func (i *IntegerLiteralInst) Kind() InstKind      { return InstIntegerLiteral }
func (i *IntegerLiteralInst) Result() *Value      { return i.result }
func (i *IntegerLiteralInst) Operands() []*Value  { return nil }

type FloatLiteralInst struct {
	base
	result *Value
	Value  float64
}

func (i *FloatLiteralInst) Kind() InstKind     { return InstFloatLiteral }
func (i *FloatLiteralInst) Result() *Value     { return i.result }
func (i *FloatLiteralInst) Operands() []*Value { return nil }

type StringLiteralInst struct {
	base
	result  *Value
	Value   string
	Untyped bool
}

func (i *StringLiteralInst) Kind() InstKind     { return InstStringLiteral }
func (i *StringLiteralInst) Result() *Value     { return i.result }
func (i *StringLiteralInst) Operands() []*Value { return nil }

type LifetimeMarkerInst struct {
	base
	Op      LifetimeMarkerOp
	Operand *Value
	// result is non-nil only for markers that produce a dependent value
	// (mark_dependence, unchecked_ownership_conversion); nil otherwise.
	result *Value
}

func (i *LifetimeMarkerInst) Kind() InstKind     { return InstLifetimeMarker }
func (i *LifetimeMarkerInst) Result() *Value     { return i.result }
func (i *LifetimeMarkerInst) Operands() []*Value { return []*Value{i.Operand} }

type FunctionRefInst struct {
	base
	result   *Value
	Function *Function
}

func (i *FunctionRefInst) Kind() InstKind     { return InstFunctionRef }
func (i *FunctionRefInst) Result() *Value     { return i.result }
func (i *FunctionRefInst) Operands() []*Value { return nil }

type GlobalAddrInst struct {
	base
	result *Value
	Global string
}

func (i *GlobalAddrInst) Kind() InstKind     { return InstGlobalAddr }
func (i *GlobalAddrInst) Result() *Value     { return i.result }
func (i *GlobalAddrInst) Operands() []*Value { return nil }

type GlobalAllocInst struct {
	base
	result *Value
	Global string
}

func (i *GlobalAllocInst) Kind() InstKind     { return InstGlobalAlloc }
func (i *GlobalAllocInst) Result() *Value     { return i.result }
func (i *GlobalAllocInst) Operands() []*Value { return nil }

type AddressProjectionInst struct {
	base
	result *Value
	Op     ProjectionOp
	Base   *Value
	Index  int // field/element index; unused for block-storage projection
}

func (i *AddressProjectionInst) Kind() InstKind     { return InstAddressProjection }
func (i *AddressProjectionInst) Result() *Value     { return i.result }
func (i *AddressProjectionInst) Operands() []*Value { return []*Value{i.Base} }

type AggregateInst struct {
	base
	result   *Value
	Op       AggregateOp
	Elements []*Value
}

func (i *AggregateInst) Kind() InstKind     { return InstAggregate }
func (i *AggregateInst) Result() *Value     { return i.result }
func (i *AggregateInst) Operands() []*Value { return i.Elements }

type UncheckedConversionInst struct {
	base
	result  *Value
	Op      ConversionOp
	Operand *Value
}

func (i *UncheckedConversionInst) Kind() InstKind     { return InstUncheckedConversion }
func (i *UncheckedConversionInst) Result() *Value     { return i.result }
func (i *UncheckedConversionInst) Operands() []*Value { return []*Value{i.Operand} }

type ForeignProtocolDescriptorInst struct {
	base
	result   *Value
	Protocol string
}

func (i *ForeignProtocolDescriptorInst) Kind() InstKind     { return InstForeignProtocolDescriptor }
func (i *ForeignProtocolDescriptorInst) Result() *Value     { return i.result }
func (i *ForeignProtocolDescriptorInst) Operands() []*Value { return nil }

type MetatypeToObjectInst struct {
	base
	result    *Value
	Metatype  *Value
	Existential bool
}

func (i *MetatypeToObjectInst) Kind() InstKind     { return InstMetatypeToObject }
func (i *MetatypeToObjectInst) Result() *Value     { return i.result }
func (i *MetatypeToObjectInst) Operands() []*Value { return []*Value{i.Metatype} }

// MetatypeInst materializes `T.Type`. Its cost depends on the
// metatype's representation (see cost.go): Free iff Thin.
type MetatypeInst struct {
	base
	result *Value
	Type   *MetatypeType
}

func (i *MetatypeInst) Kind() InstKind     { return InstMetatype }
func (i *MetatypeInst) Result() *Value     { return i.result }
func (i *MetatypeInst) Operands() []*Value { return nil }

// MemoryAccessMarkerInst is begin/end (un)paired access. Its cost
// depends on Enforcement (see cost.go).
type MemoryAccessMarkerInst struct {
	base
	Op          MemoryAccessOp
	Address     *Value
	Enforcement EnforcementMode
}

func (i *MemoryAccessMarkerInst) Kind() InstKind     { return InstMemoryAccessMarker }
func (i *MemoryAccessMarkerInst) Result() *Value     { return nil }
func (i *MemoryAccessMarkerInst) Operands() []*Value { return []*Value{i.Address} }

// BuiltinCallInst invokes a builtin by identifier. Cost depends on the
// identifier (see cost.go).
type BuiltinCallInst struct {
	base
	result     *Value
	Identifier string
	Args       []*Value
}

func (i *BuiltinCallInst) Kind() InstKind     { return InstBuiltinCall }
func (i *BuiltinCallInst) Result() *Value     { return i.result }
func (i *BuiltinCallInst) Operands() []*Value { return i.Args }

// --- Unconditionally Expensive instructions ---

type PartialApplyInst struct {
	base
	result   *Value
	Callee   *Value
	Captures []*Value
}

func (i *PartialApplyInst) Kind() InstKind     { return InstPartialApply }
func (i *PartialApplyInst) Result() *Value     { return i.result }
func (i *PartialApplyInst) Operands() []*Value { return append([]*Value{i.Callee}, i.Captures...) }

type AllocInst struct {
	base
	result *Value
	Domain AllocationDomain
}

func (i *AllocInst) Kind() InstKind     { return InstAlloc }
func (i *AllocInst) Result() *Value     { return i.result }
func (i *AllocInst) Operands() []*Value { return nil }

type DeallocInst struct {
	base
	Domain AllocationDomain
	Target *Value
}

func (i *DeallocInst) Kind() InstKind     { return InstDealloc }
func (i *DeallocInst) Result() *Value     { return nil }
func (i *DeallocInst) Operands() []*Value { return []*Value{i.Target} }

type RefCountInst struct {
	base
	Op     RefCountOp
	Target *Value
}

func (i *RefCountInst) Kind() InstKind     { return InstRefCount }
func (i *RefCountInst) Result() *Value     { return nil }
func (i *RefCountInst) Operands() []*Value { return []*Value{i.Target} }

type LoadInst struct {
	base
	result  *Value
	Address *Value
}

func (i *LoadInst) Kind() InstKind     { return InstLoad }
func (i *LoadInst) Result() *Value     { return i.result }
func (i *LoadInst) Operands() []*Value { return []*Value{i.Address} }

type StoreInst struct {
	base
	Address *Value
	Value   *Value
}

func (i *StoreInst) Kind() InstKind     { return InstStore }
func (i *StoreInst) Result() *Value     { return nil }
func (i *StoreInst) Operands() []*Value { return []*Value{i.Address, i.Value} }

type EnumConstructInst struct {
	base
	result  *Value
	Case    string
	Payload *Value // nil for a payload-less case
}

func (i *EnumConstructInst) Kind() InstKind { return InstEnumConstruct }
func (i *EnumConstructInst) Result() *Value { return i.result }
func (i *EnumConstructInst) Operands() []*Value {
	if i.Payload == nil {
		return nil
	}
	return []*Value{i.Payload}
}

type EnumProjectInst struct {
	base
	result  *Value
	Case    string
	Operand *Value
}

func (i *EnumProjectInst) Kind() InstKind     { return InstEnumProject }
func (i *EnumProjectInst) Result() *Value     { return i.result }
func (i *EnumProjectInst) Operands() []*Value { return []*Value{i.Operand} }

type DynamicCastInst struct {
	base
	result   *Value
	Checked  bool
	TargetTy Type
	Operand  *Value
}

func (i *DynamicCastInst) Kind() InstKind     { return InstDynamicCast }
func (i *DynamicCastInst) Result() *Value     { return i.result }
func (i *DynamicCastInst) Operands() []*Value { return []*Value{i.Operand} }

type MethodDispatchInst struct {
	base
	result *Value
	Kind_  DispatchKind
	Self   *Value
	Method string
	Args   []*Value
}

func (i *MethodDispatchInst) Kind() InstKind { return InstMethodDispatch }
func (i *MethodDispatchInst) Result() *Value { return i.result }
func (i *MethodDispatchInst) Operands() []*Value {
	return append([]*Value{i.Self}, i.Args...)
}

type KeyPathInst struct {
	base
	result     *Value
	Components []string
	Root       *Value
}

func (i *KeyPathInst) Kind() InstKind     { return InstKeyPath }
func (i *KeyPathInst) Result() *Value     { return i.result }
func (i *KeyPathInst) Operands() []*Value { return []*Value{i.Root} }

type ExistentialOpenInst struct {
	base
	result   *Value
	Existential *Value
}

func (i *ExistentialOpenInst) Kind() InstKind     { return InstExistentialOpen }
func (i *ExistentialOpenInst) Result() *Value     { return i.result }
func (i *ExistentialOpenInst) Operands() []*Value { return []*Value{i.Existential} }

type ExistentialInitInst struct {
	base
	result  *Value
	Concrete *Value
}

func (i *ExistentialInitInst) Kind() InstKind     { return InstExistentialInit }
func (i *ExistentialInitInst) Result() *Value     { return i.result }
func (i *ExistentialInitInst) Operands() []*Value { return []*Value{i.Concrete} }

type BridgeObjectNarrowInst struct {
	base
	result  *Value
	Operand *Value
}

func (i *BridgeObjectNarrowInst) Kind() InstKind     { return InstBridgeObjectNarrow }
func (i *BridgeObjectNarrowInst) Result() *Value     { return i.result }
func (i *BridgeObjectNarrowInst) Operands() []*Value { return []*Value{i.Operand} }

// MetatypeConversionInst converts between thick and foreign metatype
// representations.
type MetatypeConversionInst struct {
	base
	result   *Value
	ToForeign bool
	Operand  *Value
}

func (i *MetatypeConversionInst) Kind() InstKind     { return InstMetatypeConversion }
func (i *MetatypeConversionInst) Result() *Value     { return i.result }
func (i *MetatypeConversionInst) Operands() []*Value { return []*Value{i.Operand} }

// DebugValueInst is a pure debug annotation with no runtime effect. It
// is dropped by the cloner under mandatory inlining (see clone.go).
type DebugValueInst struct {
	base
	Operand *Value
	Binding string
}

func (i *DebugValueInst) Kind() InstKind     { return InstDebugValue }
func (i *DebugValueInst) Result() *Value     { return nil }
func (i *DebugValueInst) Operands() []*Value { return []*Value{i.Operand} }

// NonCanonicalInst represents an instruction shape only valid in a
// non-canonical (pre-SSA-construction) form of the IR, e.g. a raw phi
// placeholder prior to block-argument conversion. It is never produced
// by a well-formed builder and exists so the cost model's "programmer
// error" path has something concrete to reject (see spec.md §4.5, §8).
type NonCanonicalInst struct {
	base
}

func (i *NonCanonicalInst) Kind() InstKind     { return InstNonCanonical }
func (i *NonCanonicalInst) Result() *Value     { return nil }
func (i *NonCanonicalInst) Operands() []*Value { return nil }
