package ir

import "fmt"

// ValueKind discriminates the four ways a Value can arise, per the data
// model: an instruction result, a block parameter, a function argument,
// or the undefined sentinel.
type ValueKind int

const (
	ValueInstructionResult ValueKind = iota
	ValueBlockParameter
	ValueFunctionArgument
	ValueUndef
)

func (k ValueKind) String() string {
	switch k {
	case ValueInstructionResult:
		return "inst"
	case ValueBlockParameter:
		return "blockarg"
	case ValueFunctionArgument:
		return "arg"
	case ValueUndef:
		return "undef"
	default:
		return "unknown"
	}
}

// Value is an SSA value: exactly one of the four ValueKinds. Def and
// DefBlock are populated according to Kind; both are nil for ValueUndef.
type Value struct {
	ID       int
	Name     string
	Type     Type
	Kind     ValueKind
	Owner    OwnershipKind
	Def      Instruction // set when Kind == ValueInstructionResult
	DefBlock *BasicBlock // set when Kind == ValueBlockParameter
}

func (v *Value) String() string {
	if v.Name != "" {
		return "%" + v.Name
	}
	return fmt.Sprintf("%%%d", v.ID)
}

// NewUndef returns the undefined sentinel value of the given type. It
// has no definition site and participates in no use list.
func NewUndef(typ Type) *Value {
	return &Value{ID: -1, Name: "undef", Type: typ, Kind: ValueUndef, Owner: OwnershipTrivial}
}
