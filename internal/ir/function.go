package ir

// Function is an ordered list of basic blocks, a signature, a debug
// scope, a representation tag, and a mutable "has been inlined into"
// flag, per spec.md §3.
type Function struct {
	Name           string
	Params         []*Value // ValueFunctionArgument values, in signature order
	ResultType     Type
	Representation Representation
	Scope          *DebugScope
	Blocks         []*BasicBlock

	// Inlined records whether this function's body has ever been
	// spliced into a caller. Downstream passes consult this before
	// stripping debug metadata at emission time (see driver.go step 3).
	Inlined bool

	module       *Module
	nextValueID  int
	nextBlockID  int
	nextInstID   int
}

// NewFunction creates an empty function owned by m. It has no blocks;
// callers append the entry block themselves.
func NewFunction(m *Module, name string, resultType Type, rep Representation, scope *DebugScope) *Function {
	fn := &Function{
		Name:           name,
		ResultType:     resultType,
		Representation: rep,
		Scope:          scope,
		module:         m,
	}
	return fn
}

// Module returns the owning module.
func (f *Function) Module() *Module { return f.module }

// AddParam appends a fresh function-argument value to the signature.
func (f *Function) AddParam(name string, typ Type, owner OwnershipKind) *Value {
	p := &Value{ID: f.NextValueID(), Name: name, Type: typ, Kind: ValueFunctionArgument, Owner: owner}
	f.Params = append(f.Params, p)
	return p
}

// Entry returns the function's first block, or nil if it has none yet.
func (f *Function) Entry() *BasicBlock {
	if len(f.Blocks) == 0 {
		return nil
	}
	return f.Blocks[0]
}

// AppendBlock adds bb to the end of the function's block list.
func (f *Function) AppendBlock(bb *BasicBlock) {
	bb.Function = f
	f.Blocks = append(f.Blocks, bb)
}

// InsertBlockBefore inserts bb immediately before anchor in the
// function's block list. If anchor is nil, bb is appended at the end.
// This ordering is purely cosmetic (spec.md §4.2): correctness never
// depends on block-list order.
func (f *Function) InsertBlockBefore(bb *BasicBlock, anchor *BasicBlock) {
	bb.Function = f
	if anchor == nil {
		f.Blocks = append(f.Blocks, bb)
		return
	}
	idx := f.blockIndex(anchor)
	if idx < 0 {
		f.Blocks = append(f.Blocks, bb)
		return
	}
	f.Blocks = append(f.Blocks, nil)
	copy(f.Blocks[idx+1:], f.Blocks[idx:])
	f.Blocks[idx] = bb
}

func (f *Function) blockIndex(bb *BasicBlock) int {
	for idx, b := range f.Blocks {
		if b == bb {
			return idx
		}
	}
	return -1
}

// BlockAfter returns the block immediately following bb in the
// function's block list, or nil if bb is last (or absent).
func (f *Function) BlockAfter(bb *BasicBlock) *BasicBlock {
	idx := f.blockIndex(bb)
	if idx < 0 || idx+1 >= len(f.Blocks) {
		return nil
	}
	return f.Blocks[idx+1]
}

// NextValueID returns the next unused value id; NextBlockID and
// NextInstID are the block/instruction analogues. A reused Inliner
// instance calls these on the *caller* function, so ids stay unique
// across repeated inline operations into the same function.
func (f *Function) NextValueID() int {
	id := f.nextValueID
	f.nextValueID++
	return id
}

func (f *Function) NextBlockID() int {
	id := f.nextBlockID
	f.nextBlockID++
	return id
}

func (f *Function) NextInstID() int {
	id := f.nextInstID
	f.nextInstID++
	return id
}
