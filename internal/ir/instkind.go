package ir

// InstKind tags every concrete Instruction variant; Instruction.Kind
// returns it. The cost model (inline/cost.go), the terminator rewriter
// (inline/driver.go), the cloner and the printer do not switch on this
// tag: each uses a type switch over the concrete instruction types.
type InstKind int

const (
	// --- Free by the fixed table (subject to the operand-dependent
	// refinements below) ---
	InstIntegerLiteral InstKind = iota
	InstFloatLiteral
	InstStringLiteral
	InstLifetimeMarker
	InstFunctionRef
	InstGlobalAddr
	InstGlobalAlloc
	InstAddressProjection
	InstAggregate
	InstUncheckedConversion
	InstForeignProtocolDescriptor
	InstMetatypeToObject
	InstMetatype          // Free iff Representation == MetatypeThin
	InstMemoryAccessMarker // Free iff Enforcement in {Static, Unsafe}; Expensive iff Dynamic; error iff Unknown
	InstBuiltinCall        // Free iff identifier is the branch-hint intrinsic or fast-path hint

	// --- Unconditionally Expensive ---
	InstPartialApply
	InstAlloc
	InstDealloc
	InstRefCount
	InstLoad
	InstStore
	InstEnumConstruct
	InstEnumProject
	InstDynamicCast
	InstMethodDispatch
	InstKeyPath
	InstExistentialOpen
	InstExistentialInit
	InstBridgeObjectNarrow
	InstMetatypeConversion // thick<->foreign metatype conversion

	// --- Debug annotation: pure, dropped under mandatory inlining ---
	InstDebugValue

	// --- Apply sites ---
	InstApply    // non-throwing call; not a terminator
	InstTryApply // throwing call; terminator with normal/error successors

	// --- Terminators (apart from TryApply above) ---
	InstBranch
	InstCondBranch
	InstReturn
	InstThrow
	InstUnreachable
	InstSwitchEnum

	// --- Pseudo / non-canonical: illegal to cost ---
	InstNonCanonical
)

// LifetimeMarkerOp enumerates the lifetime/borrow/ownership-conversion
// markers that are free per the cost table.
type LifetimeMarkerOp int

const (
	MarkerFixLifetime LifetimeMarkerOp = iota
	MarkerBeginBorrow
	MarkerEndBorrow
	MarkerEndBorrowArgument
	MarkerMarkDependence
	MarkerEndLifetime
	MarkerUncheckedOwnershipConversion
)

func (m LifetimeMarkerOp) String() string {
	switch m {
	case MarkerFixLifetime:
		return "fix_lifetime"
	case MarkerBeginBorrow:
		return "begin_borrow"
	case MarkerEndBorrow:
		return "end_borrow"
	case MarkerEndBorrowArgument:
		return "end_borrow_argument"
	case MarkerMarkDependence:
		return "mark_dependence"
	case MarkerEndLifetime:
		return "end_lifetime"
	case MarkerUncheckedOwnershipConversion:
		return "unchecked_ownership_conversion"
	default:
		return "unknown_marker"
	}
}

// ProjectionOp enumerates the typed address projections that are free.
type ProjectionOp int

const (
	ProjectionTupleElementAddr ProjectionOp = iota
	ProjectionStructElementAddr
	ProjectionBlockStorage
)

func (p ProjectionOp) String() string {
	switch p {
	case ProjectionTupleElementAddr:
		return "tuple_element_addr"
	case ProjectionStructElementAddr:
		return "struct_element_addr"
	case ProjectionBlockStorage:
		return "project_block_storage"
	default:
		return "unknown_projection"
	}
}

// AggregateOp enumerates aggregate construction/extraction, which
// lowers to a no-op after SSA destructuring and is free.
type AggregateOp int

const (
	AggregateTupleConstruct AggregateOp = iota
	AggregateStructConstruct
	AggregateTupleExtract
	AggregateStructExtract
)

func (a AggregateOp) String() string {
	switch a {
	case AggregateTupleConstruct:
		return "tuple"
	case AggregateStructConstruct:
		return "struct"
	case AggregateTupleExtract:
		return "tuple_extract"
	case AggregateStructExtract:
		return "struct_extract"
	default:
		return "unknown_aggregate"
	}
}

// ConversionOp enumerates the unchecked bit-pattern casts that are free.
type ConversionOp int

const (
	ConversionPointerToAddress ConversionOp = iota
	ConversionAddressToPointer
	ConversionRefToRawPointer
	ConversionRawPointerToRef
	ConversionUncheckedRefCast
	ConversionUpcast
	ConversionFunctionRepresentation
	ConversionBridgeObjectToWord
)

func (c ConversionOp) String() string {
	switch c {
	case ConversionPointerToAddress:
		return "pointer_to_address"
	case ConversionAddressToPointer:
		return "address_to_pointer"
	case ConversionRefToRawPointer:
		return "ref_to_raw_pointer"
	case ConversionRawPointerToRef:
		return "raw_pointer_to_ref"
	case ConversionUncheckedRefCast:
		return "unchecked_ref_cast"
	case ConversionUpcast:
		return "upcast"
	case ConversionFunctionRepresentation:
		return "convert_function"
	case ConversionBridgeObjectToWord:
		return "bridge_object_to_word"
	default:
		return "unknown_conversion"
	}
}

// MemoryAccessOp enumerates the begin/end access marker shapes.
type MemoryAccessOp int

const (
	AccessBegin MemoryAccessOp = iota
	AccessEnd
	AccessBeginUnpaired
	AccessEndUnpaired
)

func (a MemoryAccessOp) String() string {
	switch a {
	case AccessBegin:
		return "begin_access"
	case AccessEnd:
		return "end_access"
	case AccessBeginUnpaired:
		return "begin_unpaired_access"
	case AccessEndUnpaired:
		return "end_unpaired_access"
	default:
		return "unknown_access"
	}
}

// Known builtin/intrinsic identifiers that the cost model special-cases
// as Free. Any other builtin identifier is Expensive.
const (
	BuiltinIntExpect  = "int_expect_Int1" // branch-hint intrinsic
	BuiltinFastPathHint = "_fastPathHint"   // fast-path hint builtin
)
