package ir

// BranchTerminator is an unconditional branch passing block-arguments
// to Target's parameters.
type BranchTerminator struct {
	base
	Target *BasicBlock
	Args   []*Value
}

func (i *BranchTerminator) Kind() InstKind           { return InstBranch }
func (i *BranchTerminator) Result() *Value           { return nil }
func (i *BranchTerminator) Operands() []*Value       { return i.Args }
func (i *BranchTerminator) Successors() []*BasicBlock { return []*BasicBlock{i.Target} }

// CondBranchTerminator branches to True or False depending on
// Condition, each with its own block-argument list.
type CondBranchTerminator struct {
	base
	Condition *Value
	True      *BasicBlock
	TrueArgs  []*Value
	False     *BasicBlock
	FalseArgs []*Value
}

func (i *CondBranchTerminator) Kind() InstKind { return InstCondBranch }
func (i *CondBranchTerminator) Result() *Value { return nil }
func (i *CondBranchTerminator) Operands() []*Value {
	ops := []*Value{i.Condition}
	ops = append(ops, i.TrueArgs...)
	ops = append(ops, i.FalseArgs...)
	return ops
}
func (i *CondBranchTerminator) Successors() []*BasicBlock {
	return []*BasicBlock{i.True, i.False}
}

// ReturnTerminator returns Value (nil for a void return) from the
// enclosing function. Free per the cost table (control-flow leaf).
type ReturnTerminator struct {
	base
	Value *Value
}

func (i *ReturnTerminator) Kind() InstKind { return InstReturn }
func (i *ReturnTerminator) Result() *Value { return nil }
func (i *ReturnTerminator) Operands() []*Value {
	if i.Value == nil {
		return nil
	}
	return []*Value{i.Value}
}
func (i *ReturnTerminator) Successors() []*BasicBlock { return nil }

// ThrowTerminator throws Value from the enclosing function. Free per
// the cost table (control-flow leaf).
type ThrowTerminator struct {
	base
	Value *Value
}

func (i *ThrowTerminator) Kind() InstKind          { return InstThrow }
func (i *ThrowTerminator) Result() *Value          { return nil }
func (i *ThrowTerminator) Operands() []*Value      { return []*Value{i.Value} }
func (i *ThrowTerminator) Successors() []*BasicBlock { return nil }

// UnreachableTerminator marks an unreachable point. Free per the cost
// table (control-flow leaf).
type UnreachableTerminator struct {
	base
}

func (i *UnreachableTerminator) Kind() InstKind          { return InstUnreachable }
func (i *UnreachableTerminator) Result() *Value          { return nil }
func (i *UnreachableTerminator) Operands() []*Value      { return nil }
func (i *UnreachableTerminator) Successors() []*BasicBlock { return nil }

// SwitchEnumTerminator dispatches on an enum's case tag.
type SwitchEnumTerminator struct {
	base
	Operand *Value
	Cases   map[string]*BasicBlock
	Default *BasicBlock // nil if the switch is exhaustive
}

func (i *SwitchEnumTerminator) Kind() InstKind     { return InstSwitchEnum }
func (i *SwitchEnumTerminator) Result() *Value     { return nil }
func (i *SwitchEnumTerminator) Operands() []*Value { return []*Value{i.Operand} }
func (i *SwitchEnumTerminator) Successors() []*BasicBlock {
	succs := make([]*BasicBlock, 0, len(i.Cases)+1)
	for _, bb := range i.Cases {
		succs = append(succs, bb)
	}
	if i.Default != nil {
		succs = append(succs, i.Default)
	}
	return succs
}

// ApplySite is implemented by both ApplyInst and TryApplyInst: a call
// instruction that invokes Callee with Args. ApplyInst has a single
// implicit successor (whatever follows it in its block); TryApplyInst
// is itself the terminator with explicit normal/error successors.
type ApplySite interface {
	Instruction
	Callee() *Value
	CallArgs() []*Value
	CalleeFunction() *Function
}

// ApplyInst is a non-throwing call. It is not a terminator: its single
// successor is implicit (the rest of its own block).
type ApplyInst struct {
	base
	result   *Value
	Fn       *Value
	Callee_  *Function
	Args     []*Value
}

func (i *ApplyInst) Kind() InstKind          { return InstApply }
func (i *ApplyInst) Result() *Value          { return i.result }
func (i *ApplyInst) Operands() []*Value      { return append([]*Value{i.Fn}, i.Args...) }
func (i *ApplyInst) Callee() *Value          { return i.Fn }
func (i *ApplyInst) CallArgs() []*Value      { return i.Args }
func (i *ApplyInst) CalleeFunction() *Function { return i.Callee_ }

// TryApplyInst is a throwing call: a terminator with an explicit
// normal-successor (accepting one block-parameter of the returned
// type) and error-successor (accepting one block-parameter of the
// thrown type).
type TryApplyInst struct {
	base
	Fn      *Value
	Callee_ *Function
	Args    []*Value
	Normal  *BasicBlock
	Error   *BasicBlock
}

func (i *TryApplyInst) Kind() InstKind     { return InstTryApply }
func (i *TryApplyInst) Result() *Value     { return nil }
func (i *TryApplyInst) Operands() []*Value { return append([]*Value{i.Fn}, i.Args...) }
func (i *TryApplyInst) Successors() []*BasicBlock {
	return []*BasicBlock{i.Normal, i.Error}
}
func (i *TryApplyInst) Callee() *Value          { return i.Fn }
func (i *TryApplyInst) CallArgs() []*Value      { return i.Args }
func (i *TryApplyInst) CalleeFunction() *Function { return i.Callee_ }
