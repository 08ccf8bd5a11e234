package inline

import "sila/internal/ir"

// Cost is the inlining cost class an instruction is assigned.
type Cost int

const (
	Free Cost = iota
	Expensive
)

func (c Cost) String() string {
	if c == Free {
		return "free"
	}
	return "expensive"
}

// InstructionInlineCost is C6: a pure, stateless classification of a
// single instruction as Free or Expensive, following the fixed table
// in spec.md §4.5. It is a type switch in the same style as
// ir.Cloner.Clone and ir.Printer.printInstruction — one case per
// concrete instruction type — rather than a method on Instruction,
// since the classification is a property of the inliner's policy, not
// of the IR data model itself.
//
// InstructionInlineCost panics with a FatalError on pseudo/non-canonical
// input: a *ir.NonCanonicalInst, or a memory-access marker whose
// enforcement is ir.EnforcementUnknown. Block parameters, function
// arguments, and the undefined sentinel are ir.Value, not
// ir.Instruction, so the type system already rejects them at the call
// site; there is nothing for this function to guard there.
func InstructionInlineCost(inst ir.Instruction) Cost {
	switch v := inst.(type) {
	// --- Free literals, markers, and reference-only instructions ---
	case *ir.IntegerLiteralInst, *ir.FloatLiteralInst, *ir.StringLiteralInst:
		return Free
	case *ir.LifetimeMarkerInst:
		return Free
	case *ir.FunctionRefInst, *ir.GlobalAddrInst, *ir.GlobalAllocInst:
		return Free
	case *ir.AddressProjectionInst:
		return Free
	case *ir.AggregateInst:
		return Free
	case *ir.UncheckedConversionInst:
		return Free
	case *ir.ForeignProtocolDescriptorInst:
		return Free
	case *ir.MetatypeToObjectInst:
		return Free

	// --- Operand-dependent refinements ---
	case *ir.MetatypeInst:
		if v.Type.Representation == ir.MetatypeThin {
			return Free
		}
		// Thick and Foreign are both Expensive: the source over-approximates
		// thick metatype instantiation as Expensive unconditionally, and
		// that over-approximation is preserved here rather than refined.
		return Expensive
	case *ir.MemoryAccessMarkerInst:
		switch v.Enforcement {
		case ir.EnforcementStatic, ir.EnforcementUnsafe:
			return Free
		case ir.EnforcementDynamic:
			return Expensive
		default:
			fatal(ErrUnknownEnforcement, "begin/end access marker has Unknown enforcement")
			panic("unreachable")
		}
	case *ir.BuiltinCallInst:
		if v.Identifier == ir.BuiltinIntExpect || v.Identifier == ir.BuiltinFastPathHint {
			return Free
		}
		return Expensive

	// --- Control-flow leaves ---
	case *ir.ReturnTerminator, *ir.ThrowTerminator, *ir.UnreachableTerminator:
		return Free

	// --- Pseudo instruction: programmer error ---
	case *ir.NonCanonicalInst:
		fatal(ErrNonCanonicalCost, "cost queried on a non-canonical instruction")
		panic("unreachable")

	// --- Unconditionally Expensive ---
	case *ir.PartialApplyInst, *ir.AllocInst, *ir.DeallocInst, *ir.RefCountInst:
		return Expensive
	case *ir.LoadInst, *ir.StoreInst:
		return Expensive
	case *ir.EnumConstructInst, *ir.EnumProjectInst:
		return Expensive
	case *ir.DynamicCastInst:
		return Expensive
	case *ir.MethodDispatchInst:
		return Expensive
	case *ir.KeyPathInst:
		return Expensive
	case *ir.ExistentialOpenInst, *ir.ExistentialInitInst:
		return Expensive
	case *ir.BridgeObjectNarrowInst:
		return Expensive
	case *ir.MetatypeConversionInst:
		return Expensive
	case *ir.DebugValueInst:
		// Debug annotations are not in the Free list; spec.md §4.5 names
		// only the literal/marker/projection/conversion forms above as
		// Free, so a debug-value instruction costs as Expensive like any
		// other instruction outside the enumerated set. Debug-value
		// instructions are dropped entirely under mandatory inlining
		// (see ir.Cloner), so this classification is only ever consulted
		// under performance inlining's cost budget.
		return Expensive
	case *ir.ApplyInst, *ir.TryApplyInst:
		return Expensive
	case *ir.BranchTerminator, *ir.CondBranchTerminator, *ir.SwitchEnumTerminator:
		// Not named among the control-flow leaves (return/throw/
		// unreachable); everything not on the Free list is Expensive.
		return Expensive

	default:
		fatal(ErrNonCanonicalCost, "cost queried on an unrecognized instruction kind")
		panic("unreachable")
	}
}
