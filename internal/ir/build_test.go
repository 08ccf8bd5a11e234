package ir

import (
	"strings"
	"testing"
)

func buildAddOne(m *Module) *Function {
	fn := NewFunction(m, "add_one", &IntType{Bits: 64}, RepresentationNative, nil)
	m.AddFunction(fn)
	entry := NewBasicBlock(fn.NextBlockID(), "")
	fn.AppendBlock(entry)
	x := fn.AddParam("x", &IntType{Bits: 64}, OwnershipTrivial)

	one := NewIntegerLiteral(fn, Location{}, nil, &IntType{Bits: 64}, 1)
	entry.Append(one)
	// stand-in for an add instruction: reuse aggregate as a two-element
	// tuple construction so the test has a non-literal, non-trivial
	// instruction to exercise without inventing a binary-arith kind the
	// data model does not have.
	agg := NewAggregate(fn, Location{}, nil, &IntType{Bits: 64}, AggregateTupleConstruct, []*Value{x, one.result})
	entry.Append(agg)
	entry.SetTerminator(NewReturn(fn, Location{}, nil, agg.result))
	return fn
}

func TestBuildAndPrintFunction(t *testing.T) {
	m := NewModule()
	fn := buildAddOne(m)

	out := PrintFunction(fn)
	if !strings.Contains(out, "func add_one") {
		t.Fatalf("printed function missing header, got:\n%s", out)
	}
	if !strings.Contains(out, "integer_literal 1") {
		t.Fatalf("printed function missing integer literal, got:\n%s", out)
	}
	if !strings.Contains(out, "return") {
		t.Fatalf("printed function missing return terminator, got:\n%s", out)
	}
}

func TestFunctionIDAllocationIsMonotonic(t *testing.T) {
	m := NewModule()
	fn := NewFunction(m, "f", nil, RepresentationNative, nil)
	if id1, id2 := fn.NextValueID(), fn.NextValueID(); id2 <= id1 {
		t.Fatalf("expected monotonically increasing value ids, got %d then %d", id1, id2)
	}
	if id1, id2 := fn.NextBlockID(), fn.NextBlockID(); id2 <= id1 {
		t.Fatalf("expected monotonically increasing block ids, got %d then %d", id1, id2)
	}
}

func TestClonerRemapsOperandsAndBindsResult(t *testing.T) {
	m := NewModule()
	callee := buildAddOne(m)
	caller := NewFunction(m, "caller", callee.ResultType, RepresentationNative, nil)
	m.AddFunction(caller)
	callerEntry := NewBasicBlock(caller.NextBlockID(), "")
	caller.AppendBlock(callerEntry)

	calleeEntry := callee.Entry()
	argImage := caller.AddParam("x", &IntType{Bits: 64}, OwnershipTrivial)

	cloner := &Cloner{
		Fn:     caller,
		Values: map[*Value]*Value{callee.Params[0]: argImage},
		Blocks: map[*BasicBlock]*BasicBlock{calleeEntry: callerEntry},
		Scope:  func(s *DebugScope) *DebugScope { return s },
	}

	for _, inst := range calleeEntry.Instructions {
		cloned, keep := cloner.Clone(inst)
		if !keep {
			t.Fatalf("expected every instruction in this callee to be kept")
		}
		callerEntry.Append(cloned)
	}

	if len(callerEntry.Instructions) != len(calleeEntry.Instructions) {
		t.Fatalf("expected %d cloned instructions, got %d", len(calleeEntry.Instructions), len(callerEntry.Instructions))
	}
	lastClone := callerEntry.Instructions[len(callerEntry.Instructions)-1].(*AggregateInst)
	if lastClone.Elements[0] != argImage {
		t.Fatalf("cloned aggregate should reference the caller-side argument image, not the callee's own parameter")
	}
}

func TestClonerPanicsOnUnmappedOperand(t *testing.T) {
	m := NewModule()
	fn := NewFunction(m, "f", nil, RepresentationNative, nil)
	bb := NewBasicBlock(fn.NextBlockID(), "")
	fn.AppendBlock(bb)
	stray := &Value{ID: 999, Type: &IntType{Bits: 64}, Kind: ValueInstructionResult}
	load := NewLoad(fn, Location{}, nil, &IntType{Bits: 64}, stray)

	cloner := &Cloner{Fn: fn, Values: map[*Value]*Value{}, Blocks: map[*BasicBlock]*BasicBlock{}, Scope: func(s *DebugScope) *DebugScope { return s }}

	defer func() {
		if recover() == nil {
			t.Fatal("expected Clone to panic on an operand with no caller-side mapping")
		}
	}()
	cloner.Clone(load)
}
