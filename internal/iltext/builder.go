package iltext

import (
	"fmt"
	"strconv"
	"strings"

	"sila/internal/ir"
)

// Build converts a parsed Program into an *ir.Module. It is the
// counterpart to ir.Printer: PrintFunction output round-trips through
// Build for every form InstBody covers. Two passes per function mirror
// the teacher's own two-pass builder shape (kanso/internal/ir/builder.go
// resolves labels before wiring jumps): the first creates every block
// and its parameters so that a forward branch can resolve its target
// before the target block's instructions exist; the second fills in
// instructions and terminators.
//
// The surface is deliberately lossy about types: PrintFunction does not
// print the type of a literal, an allocation, or a function reference,
// so Build assigns a placeholder Int64 type to any value whose type the
// text does not carry. Round-tripping a function through Print then
// Build is therefore not type-preserving — it preserves control flow,
// instruction kinds, and cost-relevant fields (enforcement, metatype
// representation, builtin identifier), which is what the inliner and
// cost model inspect.
func Build(prog *Program) (*ir.Module, error) {
	m := ir.NewModule()
	b := &builder{module: m, funcsByName: map[string]*ir.Function{}}

	for _, pf := range prog.Functions {
		irfn, err := b.declareFunction(pf)
		if err != nil {
			return nil, err
		}
		b.funcsByName[pf.Name] = irfn
		m.AddFunction(irfn)
	}
	for _, pf := range prog.Functions {
		if err := b.buildBody(pf, b.funcsByName[pf.Name]); err != nil {
			return nil, fmt.Errorf("function %s: %w", pf.Name, err)
		}
	}
	return m, nil
}

type builder struct {
	module      *ir.Module
	funcsByName map[string]*ir.Function
}

func placeholderType() ir.Type { return &ir.IntType{Bits: 64} }

func (b *builder) declareFunction(pf *Function) (*ir.Function, error) {
	rep, err := parseRepresentation(pf.Rep)
	if err != nil {
		return nil, err
	}
	var resultType ir.Type
	if pf.Result != nil {
		resultType = resolveType(pf.Result)
	}
	irfn := ir.NewFunction(b.module, pf.Name, resultType, rep, nil)
	irfn.Scope = b.module.NewScope(ir.Location{}, irfn, nil, nil)
	for _, p := range pf.Params {
		irfn.AddParam(p.Name, resolveType(p.Type), ir.OwnershipOwned)
	}
	return irfn, nil
}

func parseRepresentation(tok string) (ir.Representation, error) {
	switch tok {
	case "native":
		return ir.RepresentationNative, nil
	case "foreign_method":
		return ir.RepresentationForeignMethod, nil
	case "foreign_c":
		return ir.RepresentationForeignC, nil
	default:
		return 0, fmt.Errorf("unknown function representation %q", tok)
	}
}

func resolveType(tr *TypeRef) ir.Type {
	var base ir.Type
	switch {
	case strings.HasPrefix(tr.Name, "Int"):
		bits := 64
		if n, err := strconv.Atoi(strings.TrimPrefix(tr.Name, "Int")); err == nil {
			bits = n
		}
		base = &ir.IntType{Bits: bits}
	case strings.HasPrefix(tr.Name, "Float"):
		bits := 64
		if n, err := strconv.Atoi(strings.TrimPrefix(tr.Name, "Float")); err == nil {
			bits = n
		}
		base = &ir.FloatType{Bits: bits}
	case tr.Name == "Bool":
		base = &ir.BoolType{}
	case tr.Name == "String":
		base = &ir.StringType{}
	default:
		base = &ir.StructType{Name: tr.Name}
	}
	if tr.Thin {
		return &ir.MetatypeType{Instance: base, Representation: ir.MetatypeThin}
	}
	if tr.Thick {
		return &ir.MetatypeType{Instance: base, Representation: ir.MetatypeThick}
	}
	for i := 0; i < tr.Star; i++ {
		base = &ir.PointerType{Element: base}
	}
	return base
}

// funcScope is a per-function build pass: block/value lookup tables,
// reset for every function the way the teacher's Builder resets its
// variableStack per function body (kanso/internal/ir/builder.go).
type funcScope struct {
	fn      *ir.Function
	blocks  map[string]*ir.BasicBlock
	values  map[string]*ir.Value
}

func (b *builder) buildBody(pf *Function, irfn *ir.Function) error {
	fs := &funcScope{fn: irfn, blocks: map[string]*ir.BasicBlock{}, values: map[string]*ir.Value{}}
	for _, p := range irfn.Params {
		fs.values[p.Name] = p
	}

	for _, blk := range pf.Blocks {
		bb := ir.NewBasicBlock(irfn.NextBlockID(), blk.Label)
		irfn.AppendBlock(bb)
		fs.blocks[blk.Label] = bb
		for _, p := range blk.Params {
			v := bb.AddParam(irfn.NextValueID(), p.Name, resolveType(p.Type), ir.OwnershipOwned)
			fs.values[p.Name] = v
		}
	}

	for _, blk := range pf.Blocks {
		bb := fs.blocks[blk.Label]
		for _, inst := range blk.Insts {
			if err := fs.build(bb, inst, b.funcsByName); err != nil {
				return err
			}
		}
	}
	return nil
}

func (fs *funcScope) value(name string) (*ir.Value, error) {
	v, ok := fs.values[name]
	if !ok {
		return nil, fmt.Errorf("reference to undefined value %%%s", name)
	}
	return v, nil
}

func (fs *funcScope) values2(names []string) ([]*ir.Value, error) {
	out := make([]*ir.Value, len(names))
	for i, n := range names {
		v, err := fs.value(n)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// calleeRef resolves an apply/try_apply's callee operand (captured by
// name) back to the *ir.Function it refers to, via the function_ref
// instruction that defined it.
func (fs *funcScope) calleeRef(name string) (*ir.Value, *ir.Function, error) {
	v, err := fs.value(name)
	if err != nil {
		return nil, nil, err
	}
	ref, ok := v.Def.(*ir.FunctionRefInst)
	if !ok {
		return nil, nil, fmt.Errorf("%%%s is not a function_ref value", name)
	}
	return v, ref.Function, nil
}

func (fs *funcScope) block(label string) (*ir.BasicBlock, error) {
	bb, ok := fs.blocks[label]
	if !ok {
		return nil, fmt.Errorf("branch to undefined block %s", label)
	}
	return bb, nil
}

func (fs *funcScope) bind(name string, v *ir.Value) {
	if name != "" {
		v.Name = name
		fs.values[name] = v
	}
}

func memoryEnforcement(tok string) ir.EnforcementMode {
	switch tok {
	case "static":
		return ir.EnforcementStatic
	case "dynamic":
		return ir.EnforcementDynamic
	case "unsafe":
		return ir.EnforcementUnsafe
	default:
		return ir.EnforcementUnknown
	}
}

func memoryAccessOp(tok string) ir.MemoryAccessOp {
	switch tok {
	case "begin_access":
		return ir.AccessBegin
	case "end_access":
		return ir.AccessEnd
	case "begin_unpaired_access":
		return ir.AccessBeginUnpaired
	default:
		return ir.AccessEndUnpaired
	}
}

func lifetimeOp(tok string) ir.LifetimeMarkerOp {
	switch tok {
	case "fix_lifetime":
		return ir.MarkerFixLifetime
	case "begin_borrow":
		return ir.MarkerBeginBorrow
	case "end_borrow":
		return ir.MarkerEndBorrow
	case "end_lifetime":
		return ir.MarkerEndLifetime
	case "mark_dependence":
		return ir.MarkerMarkDependence
	default:
		return ir.MarkerUncheckedOwnershipConversion
	}
}

func refCountOp(tok string) ir.RefCountOp {
	switch tok {
	case "retain":
		return ir.RefCountRetain
	case "release":
		return ir.RefCountRelease
	case "unowned_retain":
		return ir.RefCountUnownedRetain
	case "unowned_release":
		return ir.RefCountUnownedRelease
	case "weak_retain":
		return ir.RefCountWeakRetain
	default:
		return ir.RefCountWeakRelease
	}
}

func allocDomain(tok string) ir.AllocationDomain {
	switch tok {
	case "alloc_stack", "dealloc_stack":
		return ir.AllocStack
	case "alloc_box", "dealloc_box":
		return ir.AllocHeapBox
	case "alloc_ref", "dealloc_ref":
		return ir.AllocRef
	case "alloc_existential_box", "dealloc_existential_box":
		return ir.AllocExistentialBox
	default:
		return ir.AllocValueBuffer
	}
}

func (fs *funcScope) build(bb *ir.BasicBlock, inst *Inst, funcs map[string]*ir.Function) error {
	fn := fs.fn
	body := inst.Body
	resultName := ""
	if inst.Result != nil {
		resultName = *inst.Result
	}

	switch {
	case body.IntegerLiteral != nil:
		n, err := strconv.ParseInt(body.IntegerLiteral.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer literal %q: %w", body.IntegerLiteral.Value, err)
		}
		i := ir.NewIntegerLiteral(fn, ir.Location{}, fn.Scope, placeholderType(), n)
		fs.bind(resultName, i.Result())
		bb.Append(i)

	case body.StringLiteral != nil:
		s := ir.NewStringLiteral(fn, ir.Location{}, fn.Scope, &ir.StringType{}, body.StringLiteral.Value, false)
		fs.bind(resultName, s.Result())
		bb.Append(s)

	case body.FunctionRef != nil:
		target, ok := funcs[body.FunctionRef.Name]
		if !ok {
			return fmt.Errorf("function_ref to undeclared function @%s", body.FunctionRef.Name)
		}
		r := ir.NewFunctionRef(fn, ir.Location{}, fn.Scope, placeholderType(), target)
		fs.bind(resultName, r.Result())
		bb.Append(r)

	case body.Lifetime != nil:
		operand, err := fs.value(body.Lifetime.Operand)
		if err != nil {
			return err
		}
		bb.Append(ir.NewLifetimeMarker(fn, ir.Location{}, fn.Scope, lifetimeOp(body.Lifetime.Op), operand))

	case body.MemoryAccess != nil:
		addr, err := fs.value(body.MemoryAccess.Address)
		if err != nil {
			return err
		}
		bb.Append(ir.NewMemoryAccessMarker(fn, ir.Location{}, fn.Scope, memoryAccessOp(body.MemoryAccess.Op), memoryEnforcement(body.MemoryAccess.Enforcement), addr))

	case body.Builtin != nil:
		args, err := fs.values2(body.Builtin.Args)
		if err != nil {
			return err
		}
		var resultType ir.Type
		if resultName != "" {
			resultType = placeholderType()
		}
		c := ir.NewBuiltinCall(fn, ir.Location{}, fn.Scope, resultType, body.Builtin.Identifier, args)
		if c.Result() != nil {
			fs.bind(resultName, c.Result())
		}
		bb.Append(c)

	case body.Alloc != nil:
		a := ir.NewAlloc(fn, ir.Location{}, fn.Scope, placeholderType(), allocDomain(body.Alloc.Tok))
		fs.bind(resultName, a.Result())
		bb.Append(a)

	case body.Dealloc != nil:
		target, err := fs.value(body.Dealloc.Target)
		if err != nil {
			return err
		}
		bb.Append(ir.NewDealloc(fn, ir.Location{}, fn.Scope, allocDomain(body.Dealloc.Tok), target))

	case body.RefCount != nil:
		target, err := fs.value(body.RefCount.Target)
		if err != nil {
			return err
		}
		bb.Append(ir.NewRefCount(fn, ir.Location{}, fn.Scope, refCountOp(body.RefCount.Op), target))

	case body.Load != nil:
		addr, err := fs.value(body.Load.Address)
		if err != nil {
			return err
		}
		l := ir.NewLoad(fn, ir.Location{}, fn.Scope, placeholderType(), addr)
		fs.bind(resultName, l.Result())
		bb.Append(l)

	case body.Store != nil:
		val, err := fs.value(body.Store.Value)
		if err != nil {
			return err
		}
		addr, err := fs.value(body.Store.Address)
		if err != nil {
			return err
		}
		bb.Append(ir.NewStore(fn, ir.Location{}, fn.Scope, addr, val))

	case body.Apply != nil:
		calleeVal, callee, err := fs.calleeRef(body.Apply.Callee)
		if err != nil {
			return err
		}
		args, err := fs.values2(body.Apply.Args)
		if err != nil {
			return err
		}
		var resultType ir.Type
		if resultName != "" {
			resultType = placeholderType()
		}
		a := ir.NewApply(fn, ir.Location{}, fn.Scope, resultType, calleeVal, callee, args)
		if a.Result() != nil {
			fs.bind(resultName, a.Result())
		}
		bb.Append(a)

	case body.TryApply != nil:
		calleeVal, callee, err := fs.calleeRef(body.TryApply.Callee)
		if err != nil {
			return err
		}
		args, err := fs.values2(body.TryApply.Args)
		if err != nil {
			return err
		}
		normal, err := fs.block(body.TryApply.Normal)
		if err != nil {
			return err
		}
		errBlock, err := fs.block(body.TryApply.Error)
		if err != nil {
			return err
		}
		bb.SetTerminator(ir.NewTryApply(fn, ir.Location{}, fn.Scope, calleeVal, callee, args, normal, errBlock))

	case body.Branch != nil:
		target, err := fs.block(body.Branch.Target)
		if err != nil {
			return err
		}
		args, err := fs.values2(body.Branch.Args)
		if err != nil {
			return err
		}
		bb.SetTerminator(ir.NewBranch(fn, ir.Location{}, fn.Scope, target, args))

	case body.CondBranch != nil:
		cond, err := fs.value(body.CondBranch.Condition)
		if err != nil {
			return err
		}
		trueBB, err := fs.block(body.CondBranch.True)
		if err != nil {
			return err
		}
		falseBB, err := fs.block(body.CondBranch.False)
		if err != nil {
			return err
		}
		trueArgs, err := fs.values2(body.CondBranch.TrueArgs)
		if err != nil {
			return err
		}
		falseArgs, err := fs.values2(body.CondBranch.FalseArgs)
		if err != nil {
			return err
		}
		bb.SetTerminator(ir.NewCondBranch(fn, ir.Location{}, fn.Scope, cond, trueBB, trueArgs, falseBB, falseArgs))

	case body.Return != nil:
		var val *ir.Value
		if body.Return.Value != nil {
			v, err := fs.value(*body.Return.Value)
			if err != nil {
				return err
			}
			val = v
		}
		bb.SetTerminator(ir.NewReturn(fn, ir.Location{}, fn.Scope, val))

	case body.Throw != nil:
		val, err := fs.value(body.Throw.Value)
		if err != nil {
			return err
		}
		bb.SetTerminator(ir.NewThrow(fn, ir.Location{}, fn.Scope, val))

	case body.Unreachable != nil:
		bb.SetTerminator(ir.NewUnreachable(fn, ir.Location{}, fn.Scope))

	default:
		return fmt.Errorf("empty instruction body")
	}
	return nil
}
