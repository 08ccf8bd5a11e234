package inline

import "sila/internal/ir"

// ValueMap and BlockMap are C1: the two mappings — callee-value to
// caller-value, and callee-block to caller-block — seeded by the
// caller and extended as blocks and instructions are cloned. They are
// plain maps rather than a dedicated type because every operation on
// them (lookup, insert, reset) is a one-liner; wrapping them would add
// indirection without adding behavior, the same judgment the teacher's
// ir.Builder makes for its own variableStack/incompletePhis maps
// (kanso/internal/ir/builder.go).
type ValueMap = map[*ir.Value]*ir.Value
type BlockMap = map[*ir.BasicBlock]*ir.BasicBlock
