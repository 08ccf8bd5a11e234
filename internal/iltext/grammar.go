package iltext

// Grammar for the textual form internal/ir.Printer emits and cmd/silc
// reads back in. Adapted from the teacher's participle struct-tag
// grammar (kanso/grammar/grammar.go): a Program here is a sequence of
// Functions instead of a sequence of modules, and instructions replace
// statements, but the "one struct per production, @@ for recursion"
// shape is unchanged.
//
// Coverage is intentionally a practical subset of the full instruction
// set in internal/ir/instruction.go: the forms exercised by the cost
// model's Free/Expensive classification and by the inliner's end-to-end
// scenarios (integer and string literals, function_ref, alloc/dealloc,
// load/store, refcount, lifetime markers, memory-access markers,
// builtin calls, apply/try_apply, and every terminator except
// switch_enum). float_literal, switch_enum, keypath, existential ops,
// bridge casts and the other remaining kinds are not round-trippable
// through text; they are only reachable by constructing ir.Instruction
// values directly.
type Program struct {
	Functions []*Function `@@*`
}

type Function struct {
	Name   string   `"func" @Ident "("`
	Params []*Param `[ @@ { "," @@ } ] ")"`
	Result *TypeRef `[ "->" @@ ]`
	Rep    string   `"[" @Ident "]" "{"`
	Blocks []*Block `@@* "}"`
}

type Param struct {
	Name string   `"%" @(Ident|Int) ":"`
	Type *TypeRef `@@`
}

// TypeRef captures a type as written, deferring resolution to the
// builder: the textual surface only needs enough structure to round
// trip simple scalar, pointer, and named-nominal types.
type TypeRef struct {
	Star  int        `{ @"*" }`
	Thin  bool       `[ "@" @"thin" ]`
	Thick bool       `[ "@" @"thick" ]`
	Name  string     `@Ident`
	Args  []*TypeRef `[ "<" @@ { "," @@ } ">" ]`
	// DotType consumes the ".Type" suffix MetatypeType.String() appends
	// after the instance type name (e.g. "@thin Int64.Type").
	DotType bool `[ "." "Type" ]`
}

type Block struct {
	Label  string       `@Ident`
	Params []*Param     `[ "(" [ @@ { "," @@ } ] ")" ] ":"`
	Insts  []*Inst      `@@*`
}

type Inst struct {
	Result *string   `[ "%" @(Ident|Int) "=" ]`
	Body   *InstBody `@@`
}

// InstBody is the disjunction over every instruction/terminator shape
// the textual surface round-trips, following the teacher's Statement
// disjunction pattern (one pointer field per alternative, `|` between
// tags).
type InstBody struct {
	IntegerLiteral *IntegerLiteralForm `  @@`
	StringLiteral  *StringLiteralForm  `| @@`
	FunctionRef    *FunctionRefForm    `| @@`
	Lifetime       *LifetimeForm       `| @@`
	MemoryAccess   *MemoryAccessForm   `| @@`
	Builtin        *BuiltinForm        `| @@`
	Alloc          *AllocForm          `| @@`
	Dealloc        *DeallocForm        `| @@`
	RefCount       *RefCountForm       `| @@`
	Load           *LoadForm           `| @@`
	Store          *StoreForm          `| @@`
	Apply          *ApplyForm          `| @@`
	TryApply       *TryApplyForm       `| @@`
	Branch         *BranchForm         `| @@`
	CondBranch     *CondBranchForm     `| @@`
	Return         *ReturnForm         `| @@`
	Throw          *ThrowForm          `| @@`
	Unreachable    *UnreachableForm    `| @@`
}

type IntegerLiteralForm struct {
	Value string `"integer_literal" @Int`
}

type StringLiteralForm struct {
	Value string `"string_literal" @String`
}

type FunctionRefForm struct {
	Name string `"function_ref" "@" @Ident`
}

type LifetimeForm struct {
	Op      string `@("fix_lifetime"|"begin_borrow"|"end_borrow"|"end_lifetime"|"mark_dependence"|"unchecked_ownership_conversion")`
	Operand string `"%" @(Ident|Int)`
}

type MemoryAccessForm struct {
	Op          string `@("begin_access"|"end_access"|"begin_unpaired_access"|"end_unpaired_access")`
	Enforcement string `"[" @Ident "]"`
	Address     string `"%" @(Ident|Int)`
}

type BuiltinForm struct {
	Identifier string   `"builtin" @String "("`
	Args       []string `[ "%" @(Ident|Int) { "," "%" @(Ident|Int) } ] ")"`
}

// AllocForm/DeallocForm enumerate each alloc_<domain>/dealloc_<domain>
// keyword as its own literal (the lexer has no way to split
// "alloc_stack" into an "alloc_" token plus a domain token, and a bare
// @Ident capture here would swallow every other instruction's leading
// keyword before its own alternative got a chance to match).
type AllocForm struct {
	Tok string `@("alloc_stack"|"alloc_box"|"alloc_ref"|"alloc_existential_box"|"alloc_value_buffer")`
}

type DeallocForm struct {
	Tok    string `@("dealloc_stack"|"dealloc_box"|"dealloc_ref"|"dealloc_existential_box"|"dealloc_value_buffer")`
	Target string `"%" @(Ident|Int)`
}

type RefCountForm struct {
	Op     string `@("retain"|"release"|"unowned_retain"|"unowned_release"|"weak_retain"|"weak_release")`
	Target string `"%" @(Ident|Int)`
}

type LoadForm struct {
	Address string `"load" "%" @(Ident|Int)`
}

type StoreForm struct {
	Value   string `"store" "%" @(Ident|Int)`
	Address string `"to" "%" @(Ident|Int)`
}

// Callee here names the value holding the function_ref result (the
// printer emits v.Fn, a *Value, not the callee name directly) — the
// builder recovers the callee *ir.Function from that value's defining
// function_ref instruction.
type ApplyForm struct {
	Callee string   `"apply" "%" @(Ident|Int) "("`
	Args   []string `[ "%" @(Ident|Int) { "," "%" @(Ident|Int) } ] ")"`
}

type TryApplyForm struct {
	Callee string   `"try_apply" "%" @(Ident|Int) "("`
	Args   []string `[ "%" @(Ident|Int) { "," "%" @(Ident|Int) } ] ")" ":"`
	Normal string   `"normal" @Ident ","`
	Error  string   `"error" @Ident`
}

type BranchForm struct {
	Target string   `"br" @Ident "("`
	Args   []string `[ "%" @(Ident|Int) { "," "%" @(Ident|Int) } ] ")"`
}

type CondBranchForm struct {
	Condition string   `"cond_br" "%" @(Ident|Int) ","`
	True      string   `@Ident "("`
	TrueArgs  []string `[ "%" @(Ident|Int) { "," "%" @(Ident|Int) } ] ")" ","`
	False     string   `@Ident "("`
	FalseArgs []string `[ "%" @(Ident|Int) { "," "%" @(Ident|Int) } ] ")"`
}

type ReturnForm struct {
	Value *string `"return" [ "%" @(Ident|Int) ]`
}

type ThrowForm struct {
	Value string `"throw" "%" @(Ident|Int)`
}

type UnreachableForm struct {
	_ bool `"unreachable"`
}
