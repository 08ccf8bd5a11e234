package ir

import "strconv"

// BasicBlock is a straight-line instruction sequence ending in exactly
// one Terminator, carrying zero or more typed block-parameters (SSA phi
// inputs), matching the data model in spec.md §3.
type BasicBlock struct {
	ID           int
	Label        string
	Function     *Function
	Params       []*Value
	Instructions []Instruction
	Terminator   Terminator
}

// NewBasicBlock allocates an empty block with the given id/label. It is
// not yet attached to any function; callers append it to
// Function.Blocks (or use Function.AppendBlock / InsertBlockBefore).
func NewBasicBlock(id int, label string) *BasicBlock {
	return &BasicBlock{ID: id, Label: label}
}

// AddParam appends a fresh block-parameter of the given type/ownership
// and returns it.
func (b *BasicBlock) AddParam(valueID int, name string, typ Type, owner OwnershipKind) *Value {
	p := &Value{ID: valueID, Name: name, Type: typ, Kind: ValueBlockParameter, Owner: owner, DefBlock: b}
	b.Params = append(b.Params, p)
	return p
}

// Append adds a non-terminator instruction to the end of the block and
// binds its Block() back-pointer.
func (b *BasicBlock) Append(inst Instruction) {
	inst.SetBlock(b)
	b.Instructions = append(b.Instructions, inst)
}

// SetTerminator installs t as the block's terminator, replacing any
// previous one, and binds its Block() back-pointer.
func (b *BasicBlock) SetTerminator(t Terminator) {
	t.SetBlock(b)
	b.Terminator = t
}

// Successors returns the block's outgoing control-flow edges, i.e. its
// terminator's successors (empty if the terminator is nil or has none).
func (b *BasicBlock) Successors() []*BasicBlock {
	if b.Terminator == nil {
		return nil
	}
	return b.Terminator.Successors()
}

func (b *BasicBlock) String() string {
	if b.Label != "" {
		return b.Label
	}
	return "bb" + strconv.Itoa(b.ID)
}
