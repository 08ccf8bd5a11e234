package iltext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sila/internal/ir"
	"sila/internal/iltext"
)

func buildFromString(t *testing.T, name, src string) *ir.Module {
	t.Helper()
	prog, err := iltext.ParseString(name, src)
	assert.NoError(t, err)
	m, err := iltext.Build(prog)
	assert.NoError(t, err)
	return m
}

func TestBuildSimpleFunction(t *testing.T) {
	src := `
func add_one(%x: Int64) -> Int64 [native] {
entry:
  %1 = integer_literal 1
  %2 = builtin "int.add"(%x, %1)
  return %2
}
`
	m := buildFromString(t, "add_one.sil", src)
	assert.Equal(t, 1, len(m.Functions))

	fn := m.Functions[0]
	assert.Equal(t, "add_one", fn.Name)
	assert.Equal(t, ir.RepresentationNative, fn.Representation)
	assert.Equal(t, 1, len(fn.Params))
	assert.Equal(t, 1, len(fn.Blocks))

	entry := fn.Blocks[0]
	assert.Equal(t, 2, len(entry.Instructions))

	lit, ok := entry.Instructions[0].(*ir.IntegerLiteralInst)
	assert.True(t, ok)
	assert.Equal(t, int64(1), lit.Value)

	call, ok := entry.Instructions[1].(*ir.BuiltinCallInst)
	assert.True(t, ok)
	assert.Equal(t, "int.add", call.Identifier)
	assert.Equal(t, 2, len(call.Args))
	assert.Equal(t, fn.Params[0], call.Args[0])
	assert.Equal(t, lit.Result(), call.Args[1])

	ret, ok := entry.Terminator.(*ir.ReturnTerminator)
	assert.True(t, ok)
	assert.Equal(t, call.Result(), ret.Value)
}

func TestBuildApplyResolvesCalleeThroughFunctionRef(t *testing.T) {
	src := `
func id(%x: Int64) -> Int64 [native] {
entry:
  return %x
}

func caller() -> Int64 [native] {
entry:
  %1 = integer_literal 7
  %2 = function_ref @id
  %3 = apply %2(%1)
  return %3
}
`
	m := buildFromString(t, "apply.sil", src)
	assert.Equal(t, 2, len(m.Functions))

	idFn := m.Functions[0]
	caller := m.Functions[1]
	assert.Equal(t, "id", idFn.Name)
	assert.Equal(t, "caller", caller.Name)

	entry := caller.Blocks[0]
	assert.Equal(t, 3, len(entry.Instructions))

	lit := entry.Instructions[0].(*ir.IntegerLiteralInst)
	fref := entry.Instructions[1].(*ir.FunctionRefInst)
	apply := entry.Instructions[2].(*ir.ApplyInst)

	assert.Equal(t, idFn, fref.Function)
	assert.Equal(t, idFn, apply.CalleeFunction())
	assert.Equal(t, fref.Result(), apply.Fn)
	assert.Equal(t, []*ir.Value{lit.Result()}, apply.CallArgs())

	ret := entry.Terminator.(*ir.ReturnTerminator)
	assert.Equal(t, apply.Result(), ret.Value)
}

func TestBuildTryApplyWiresNormalAndErrorSuccessors(t *testing.T) {
	src := `
func fails(%x: Int64) -> Int64 [native] {
entry:
  throw %x
}

func caller() -> Int64 [native] {
entry:
  %1 = integer_literal 9
  %2 = function_ref @fails
  try_apply %2(%1): normal ok, error err
ok(%v: Int64):
  return %v
err(%e: Int64):
  return %e
}
`
	m := buildFromString(t, "tryapply.sil", src)
	caller := m.Functions[1]
	assert.Equal(t, 3, len(caller.Blocks))

	entry := caller.Blocks[0]
	tryApply, ok := entry.Terminator.(*ir.TryApplyInst)
	assert.True(t, ok)

	assert.Equal(t, caller.Blocks[1], tryApply.Normal)
	assert.Equal(t, caller.Blocks[2], tryApply.Error)
	assert.Nil(t, tryApply.Result())

	fails := m.Functions[0]
	assert.Equal(t, fails, tryApply.CalleeFunction())

	normalBlock := caller.Blocks[1]
	assert.Equal(t, 1, len(normalBlock.Params))
	ret := normalBlock.Terminator.(*ir.ReturnTerminator)
	assert.Equal(t, normalBlock.Params[0], ret.Value)
}

func TestBuildCondBranchWiresBothSuccessors(t *testing.T) {
	src := `
func pick(%p: Int64) -> Int64 [native] {
entry:
  cond_br %p, t(), f()
t:
  return %p
f:
  return %p
}
`
	m := buildFromString(t, "pick.sil", src)
	fn := m.Functions[0]
	assert.Equal(t, 3, len(fn.Blocks))

	entry := fn.Blocks[0]
	condBr, ok := entry.Terminator.(*ir.CondBranchTerminator)
	assert.True(t, ok)
	assert.Equal(t, fn.Params[0], condBr.Condition)
	assert.Equal(t, fn.Blocks[1], condBr.True)
	assert.Equal(t, fn.Blocks[2], condBr.False)

	successors := entry.Successors()
	assert.Equal(t, 2, len(successors))
	assert.Equal(t, fn.Blocks[1], successors[0])
	assert.Equal(t, fn.Blocks[2], successors[1])
}

func TestBuildMemoryAndLifetimeMarkers(t *testing.T) {
	src := `
func memy(%p: Int64) -> Int64 [native] {
entry:
  %a = alloc_stack
  store %p to %a
  %l = load %a
  retain %p
  release %p
  begin_access [static] %a
  end_access [static] %a
  fix_lifetime %p
  dealloc_stack %a
  return %p
}
`
	m := buildFromString(t, "memy.sil", src)
	fn := m.Functions[0]
	entry := fn.Blocks[0]

	alloc, ok := entry.Instructions[0].(*ir.AllocInst)
	assert.True(t, ok)
	assert.Equal(t, ir.AllocStack, alloc.Domain)

	store, ok := entry.Instructions[1].(*ir.StoreInst)
	assert.True(t, ok)
	assert.Equal(t, fn.Params[0], store.Value)
	assert.Equal(t, alloc.Result(), store.Address)

	load, ok := entry.Instructions[2].(*ir.LoadInst)
	assert.True(t, ok)
	assert.Equal(t, alloc.Result(), load.Address)

	retain, ok := entry.Instructions[3].(*ir.RefCountInst)
	assert.True(t, ok)
	assert.Equal(t, ir.RefCountRetain, retain.Op)

	release, ok := entry.Instructions[4].(*ir.RefCountInst)
	assert.True(t, ok)
	assert.Equal(t, ir.RefCountRelease, release.Op)

	beginAccess, ok := entry.Instructions[5].(*ir.MemoryAccessMarkerInst)
	assert.True(t, ok)
	assert.Equal(t, ir.AccessBegin, beginAccess.Op)
	assert.Equal(t, ir.EnforcementStatic, beginAccess.Enforcement)

	endAccess, ok := entry.Instructions[6].(*ir.MemoryAccessMarkerInst)
	assert.True(t, ok)
	assert.Equal(t, ir.AccessEnd, endAccess.Op)

	fixLifetime, ok := entry.Instructions[7].(*ir.LifetimeMarkerInst)
	assert.True(t, ok)
	assert.Equal(t, ir.MarkerFixLifetime, fixLifetime.Op)

	dealloc, ok := entry.Instructions[8].(*ir.DeallocInst)
	assert.True(t, ok)
	assert.Equal(t, ir.AllocStack, dealloc.Domain)
	assert.Equal(t, alloc.Result(), dealloc.Target)
}

func TestBuildRejectsReferenceToUndefinedValue(t *testing.T) {
	prog, err := iltext.ParseString("bad.sil", `
func broken() -> Int64 [native] {
entry:
  return %missing
}
`)
	assert.NoError(t, err)

	_, err = iltext.Build(prog)
	assert.Error(t, err)
}

func TestBuildThinMetatypeParam(t *testing.T) {
	src := `
func typed(%m: @thin Int64.Type) [native] {
entry:
  return
}
`
	m := buildFromString(t, "typed.sil", src)
	fn := m.Functions[0]
	mt, ok := fn.Params[0].Type.(*ir.MetatypeType)
	assert.True(t, ok)
	assert.Equal(t, ir.MetatypeThin, mt.Representation)
	assert.Nil(t, fn.ResultType)
}
