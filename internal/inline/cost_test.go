package inline

import (
	"testing"

	"sila/internal/ir"
)

func TestInstructionInlineCostFreeTable(t *testing.T) {
	fn := ir.NewFunction(ir.NewModule(), "f", nil, ir.RepresentationNative, nil)
	i64 := &ir.IntType{Bits: 64}

	free := []ir.Instruction{
		ir.NewIntegerLiteral(fn, ir.Location{}, nil, i64, 1),
		ir.NewFunctionRef(fn, ir.Location{}, nil, i64, fn),
		ir.NewAddressProjection(fn, ir.Location{}, nil, i64, ir.ProjectionStructElementAddr, ir.NewUndef(i64), 0),
		ir.NewAggregate(fn, ir.Location{}, nil, i64, ir.AggregateTupleConstruct, nil),
		ir.NewReturn(fn, ir.Location{}, nil, nil),
		ir.NewThrow(fn, ir.Location{}, nil, ir.NewUndef(i64)),
		ir.NewUnreachable(fn, ir.Location{}, nil),
		ir.NewMemoryAccessMarker(fn, ir.Location{}, nil, ir.AccessBegin, ir.EnforcementStatic, ir.NewUndef(i64)),
		ir.NewMemoryAccessMarker(fn, ir.Location{}, nil, ir.AccessBegin, ir.EnforcementUnsafe, ir.NewUndef(i64)),
		ir.NewBuiltinCall(fn, ir.Location{}, nil, i64, ir.BuiltinIntExpect, nil),
		ir.NewMetatype(fn, ir.Location{}, nil, &ir.MetatypeType{Instance: i64, Representation: ir.MetatypeThin}),
	}
	for _, inst := range free {
		if got := InstructionInlineCost(inst); got != Free {
			t.Errorf("%T: expected Free, got %s", inst, got)
		}
	}
}

func TestInstructionInlineCostExpensiveTable(t *testing.T) {
	fn := ir.NewFunction(ir.NewModule(), "f", nil, ir.RepresentationNative, nil)
	i64 := &ir.IntType{Bits: 64}

	expensive := []ir.Instruction{
		ir.NewAlloc(fn, ir.Location{}, nil, i64, ir.AllocStack),
		ir.NewDealloc(fn, ir.Location{}, nil, ir.AllocStack, ir.NewUndef(i64)),
		ir.NewRefCount(fn, ir.Location{}, nil, ir.RefCountRetain, ir.NewUndef(i64)),
		ir.NewLoad(fn, ir.Location{}, nil, i64, ir.NewUndef(i64)),
		ir.NewStore(fn, ir.Location{}, nil, ir.NewUndef(i64), ir.NewUndef(i64)),
		ir.NewApply(fn, ir.Location{}, nil, i64, ir.NewUndef(i64), fn, nil),
		ir.NewMemoryAccessMarker(fn, ir.Location{}, nil, ir.AccessBegin, ir.EnforcementDynamic, ir.NewUndef(i64)),
		ir.NewBuiltinCall(fn, ir.Location{}, nil, i64, "some.other.builtin", nil),
		ir.NewMetatype(fn, ir.Location{}, nil, &ir.MetatypeType{Instance: i64, Representation: ir.MetatypeThick}),
		ir.NewDebugValue(fn, ir.Location{}, nil, ir.NewUndef(i64), "x"),
	}
	for _, inst := range expensive {
		if got := InstructionInlineCost(inst); got != Expensive {
			t.Errorf("%T: expected Expensive, got %s", inst, got)
		}
	}
}

func TestInstructionInlineCostPanicsOnNonCanonical(t *testing.T) {
	fn := ir.NewFunction(ir.NewModule(), "f", nil, ir.RepresentationNative, nil)
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a non-canonical instruction")
		}
	}()
	InstructionInlineCost(ir.NewNonCanonical(fn, ir.Location{}, nil))
}

func TestInstructionInlineCostPanicsOnUnknownEnforcement(t *testing.T) {
	fn := ir.NewFunction(ir.NewModule(), "f", nil, ir.RepresentationNative, nil)
	i64 := &ir.IntType{Bits: 64}
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for Unknown enforcement")
		}
	}()
	InstructionInlineCost(ir.NewMemoryAccessMarker(fn, ir.Location{}, nil, ir.AccessBegin, ir.EnforcementUnknown, ir.NewUndef(i64)))
}

func TestCostIsStable(t *testing.T) {
	fn := ir.NewFunction(ir.NewModule(), "f", nil, ir.RepresentationNative, nil)
	i64 := &ir.IntType{Bits: 64}
	inst := ir.NewLoad(fn, ir.Location{}, nil, i64, ir.NewUndef(i64))
	if InstructionInlineCost(inst) != InstructionInlineCost(inst) {
		t.Fatal("cost must be stable across repeated calls")
	}
}
