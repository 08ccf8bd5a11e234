package ir

import "fmt"

// Type is the IR's type representation. It is intentionally small: the
// core only needs enough of a type system to name a call's result type,
// classify metatypes, and print diagnostics. A front end feeding this
// module constructs these directly; there is no type-checker here.
type Type interface {
	String() string
}

// IntType is a fixed-width integer type, e.g. Int32, Int64.
type IntType struct {
	Bits int
}

func (t *IntType) String() string { return fmt.Sprintf("Int%d", t.Bits) }

// FloatType is a floating point type.
type FloatType struct {
	Bits int
}

func (t *FloatType) String() string { return fmt.Sprintf("Float%d", t.Bits) }

// BoolType is the builtin boolean type.
type BoolType struct{}

func (t *BoolType) String() string { return "Bool" }

// StringType is the builtin (and untyped-string) string type.
type StringType struct {
	Untyped bool
}

func (t *StringType) String() string {
	if t.Untyped {
		return "Builtin.UntypedString"
	}
	return "String"
}

// TupleType is an unnamed product type.
type TupleType struct {
	Elements []Type
}

func (t *TupleType) String() string {
	s := "("
	for i, e := range t.Elements {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + ")"
}

// StructType names a nominal struct/record type.
type StructType struct {
	Name   string
	Fields []Type
}

func (t *StructType) String() string { return t.Name }

// EnumType names a nominal enum/union type.
type EnumType struct {
	Name  string
	Cases []string
}

func (t *EnumType) String() string { return t.Name }

// PointerType is a raw/unsafe pointer to an element type.
type PointerType struct {
	Element Type
}

func (t *PointerType) String() string { return "*" + t.Element.String() }

// AddressType is a typed address (lvalue) of an element type, as
// produced by projection instructions (tuple/struct element address).
type AddressType struct {
	Element Type
}

func (t *AddressType) String() string { return "*" + t.Element.String() + ".Address" }

// ReferenceType is a class/object reference to an element type.
type ReferenceType struct {
	Element Type
}

func (t *ReferenceType) String() string { return t.Element.String() + "&" }

// ExistentialType is a boxed existential container for a protocol set.
type ExistentialType struct {
	Protocols []string
}

func (t *ExistentialType) String() string { return "any(...)" }

// MetatypeRepresentation distinguishes compile-time-constant ("Thin")
// metatypes from ones that must carry a runtime witness ("Thick"), or a
// representation describing a value that crosses into/out of a foreign
// (e.g. Objective-C-style) metatype domain.
type MetatypeRepresentation int

const (
	MetatypeThin MetatypeRepresentation = iota
	MetatypeThick
	MetatypeForeign
)

func (r MetatypeRepresentation) String() string {
	switch r {
	case MetatypeThin:
		return "thin"
	case MetatypeThick:
		return "thick"
	case MetatypeForeign:
		return "foreign"
	default:
		return "unknown"
	}
}

// MetatypeType is the type of a type — `T.Type` — carrying the
// representation that the cost model inspects.
type MetatypeType struct {
	Instance       Type
	Representation MetatypeRepresentation
}

func (t *MetatypeType) String() string {
	return fmt.Sprintf("@%s %s.Type", t.Representation, t.Instance)
}

// OwnershipKind constrains which operations may legally consume a value
// and is preserved verbatim across cloning.
type OwnershipKind int

const (
	OwnershipUnowned OwnershipKind = iota
	OwnershipOwned
	OwnershipGuaranteed
	OwnershipTrivial
)

func (k OwnershipKind) String() string {
	switch k {
	case OwnershipUnowned:
		return "unowned"
	case OwnershipOwned:
		return "owned"
	case OwnershipGuaranteed:
		return "guaranteed"
	case OwnershipTrivial:
		return "trivial"
	default:
		return "unknown"
	}
}

// EnforcementMode is the policy attached to a memory-access marker
// region. Unknown is illegal to reach the cost model — querying the
// cost of a begin-access instruction with Unknown enforcement is a
// precondition violation at the caller, not a core responsibility, but
// the cost model itself still rejects it (see cost.go).
type EnforcementMode int

const (
	EnforcementStatic EnforcementMode = iota
	EnforcementDynamic
	EnforcementUnsafe
	EnforcementUnknown
)

func (m EnforcementMode) String() string {
	switch m {
	case EnforcementStatic:
		return "static"
	case EnforcementDynamic:
		return "dynamic"
	case EnforcementUnsafe:
		return "unsafe"
	default:
		return "unknown"
	}
}

// AllocationDomain names the memory domain an allocation/deallocation
// instruction targets.
type AllocationDomain int

const (
	AllocStack AllocationDomain = iota
	AllocHeapBox
	AllocRef
	AllocExistentialBox
	AllocValueBuffer
)

func (d AllocationDomain) String() string {
	switch d {
	case AllocStack:
		return "stack"
	case AllocHeapBox:
		return "box"
	case AllocRef:
		return "ref"
	case AllocExistentialBox:
		return "existential_box"
	case AllocValueBuffer:
		return "value_buffer"
	default:
		return "unknown"
	}
}

// RefCountOp names the flavor of a reference-counting instruction.
type RefCountOp int

const (
	RefCountRetain RefCountOp = iota
	RefCountRelease
	RefCountUnownedRetain
	RefCountUnownedRelease
	RefCountWeakRetain
	RefCountWeakRelease
)

func (op RefCountOp) String() string {
	switch op {
	case RefCountRetain:
		return "retain"
	case RefCountRelease:
		return "release"
	case RefCountUnownedRetain:
		return "unowned_retain"
	case RefCountUnownedRelease:
		return "unowned_release"
	case RefCountWeakRetain:
		return "weak_retain"
	case RefCountWeakRelease:
		return "weak_release"
	default:
		return "unknown"
	}
}

// DispatchKind names the flavor of a method-dispatch instruction.
type DispatchKind int

const (
	DispatchClass DispatchKind = iota
	DispatchSuper
	DispatchWitness
	DispatchDynamic
)

func (k DispatchKind) String() string {
	switch k {
	case DispatchClass:
		return "class_method"
	case DispatchSuper:
		return "super_method"
	case DispatchWitness:
		return "witness_method"
	case DispatchDynamic:
		return "dynamic_method"
	default:
		return "unknown"
	}
}

// Representation names a function's calling convention / origin, used
// by mandatory inlining's foreign-callee restriction.
type Representation int

const (
	RepresentationNative Representation = iota
	RepresentationForeignMethod
	RepresentationForeignC
)

func (r Representation) String() string {
	switch r {
	case RepresentationNative:
		return "native"
	case RepresentationForeignMethod:
		return "foreign_method"
	case RepresentationForeignC:
		return "foreign_c"
	default:
		return "unknown"
	}
}
