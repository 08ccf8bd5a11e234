package ir

import (
	"fmt"
	"sort"
	"strings"
)

// Printer renders a Function as text; PrintFunction is its entry point
// and the CLIs use it to print their result. Instruction forms covered
// by internal/iltext's grammar print in a shape that parses back in;
// the other forms (float_literal, switch_enum, keypath, ...) print in a
// shape iltext does not read. Adapted from the teacher's
// indent-and-writeLine Printer (kanso/internal/ir/printer.go), with the
// per-kind dispatch rewritten for this module's instruction set.
type Printer struct {
	indent int
	output strings.Builder
}

func NewPrinter() *Printer {
	return &Printer{}
}

// PrintFunction returns the textual form of fn.
func PrintFunction(fn *Function) string {
	p := NewPrinter()
	p.printFunction(fn)
	return p.output.String()
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.output.WriteString("  ")
	}
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.writeIndent()
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

func (p *Printer) printFunction(fn *Function) {
	params := make([]string, len(fn.Params))
	for i, param := range fn.Params {
		params[i] = fmt.Sprintf("%s: %s", param, param.Type)
	}
	ret := ""
	if fn.ResultType != nil {
		ret = " -> " + fn.ResultType.String()
	}
	p.writeLine("func %s(%s)%s [%s] {", fn.Name, strings.Join(params, ", "), ret, fn.Representation)
	p.indent++
	for _, bb := range fn.Blocks {
		p.printBlock(bb)
	}
	p.indent--
	p.writeLine("}")
}

func (p *Printer) printBlock(bb *BasicBlock) {
	params := make([]string, len(bb.Params))
	for i, param := range bb.Params {
		params[i] = fmt.Sprintf("%s: %s", param, param.Type)
	}
	if len(params) > 0 {
		p.writeLine("%s(%s):", bb, strings.Join(params, ", "))
	} else {
		p.writeLine("%s:", bb)
	}
	p.indent++
	for _, inst := range bb.Instructions {
		p.printInstruction(inst)
	}
	if bb.Terminator != nil {
		p.printInstruction(bb.Terminator)
	}
	p.indent--
}

func (p *Printer) result(inst Instruction) string {
	if r := inst.Result(); r != nil {
		return r.String() + " = "
	}
	return ""
}

func (p *Printer) args(vs []*Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

func (p *Printer) printInstruction(inst Instruction) {
	switch v := inst.(type) {
	case *IntegerLiteralInst:
		p.writeLine("%sinteger_literal %d", p.result(v), v.Value)
	case *FloatLiteralInst:
		p.writeLine("%sfloat_literal %f", p.result(v), v.Value)
	case *StringLiteralInst:
		p.writeLine("%sstring_literal %q", p.result(v), v.Value)
	case *LifetimeMarkerInst:
		p.writeLine("%s%s %s", p.result(v), v.Op, v.Operand)
	case *FunctionRefInst:
		p.writeLine("%sfunction_ref @%s", p.result(v), v.Function.Name)
	case *GlobalAddrInst:
		p.writeLine("%sglobal_addr @%s", p.result(v), v.Global)
	case *GlobalAllocInst:
		p.writeLine("%salloc_global @%s", p.result(v), v.Global)
	case *AddressProjectionInst:
		p.writeLine("%s%s %s, %d", p.result(v), v.Op, v.Base, v.Index)
	case *AggregateInst:
		p.writeLine("%s%s (%s)", p.result(v), v.Op, p.args(v.Elements))
	case *UncheckedConversionInst:
		p.writeLine("%s%s %s", p.result(v), v.Op, v.Operand)
	case *ForeignProtocolDescriptorInst:
		p.writeLine("%sforeign_protocol_descriptor #%s", p.result(v), v.Protocol)
	case *MetatypeToObjectInst:
		p.writeLine("%smetatype_to_object %s", p.result(v), v.Metatype)
	case *MetatypeInst:
		p.writeLine("%smetatype %s", p.result(v), v.Type)
	case *MemoryAccessMarkerInst:
		p.writeLine("%s [%s] %s", v.Op, v.Enforcement, v.Address)
	case *BuiltinCallInst:
		p.writeLine("%sbuiltin %q(%s)", p.result(v), v.Identifier, p.args(v.Args))
	case *PartialApplyInst:
		p.writeLine("%spartial_apply %s(%s)", p.result(v), v.Callee, p.args(v.Captures))
	case *AllocInst:
		p.writeLine("%salloc_%s", p.result(v), v.Domain)
	case *DeallocInst:
		p.writeLine("dealloc_%s %s", v.Domain, v.Target)
	case *RefCountInst:
		p.writeLine("%s %s", v.Op, v.Target)
	case *LoadInst:
		p.writeLine("%sload %s", p.result(v), v.Address)
	case *StoreInst:
		p.writeLine("store %s to %s", v.Value, v.Address)
	case *EnumConstructInst:
		p.writeLine("%senum #%s (%s)", p.result(v), v.Case, p.args(nonNil(v.Payload)))
	case *EnumProjectInst:
		p.writeLine("%sunchecked_enum_data %s, #%s", p.result(v), v.Operand, v.Case)
	case *DynamicCastInst:
		kind := "unconditional_checked_cast"
		if !v.Checked {
			kind = "unconditional_cast"
		}
		p.writeLine("%s%s %s to %s", p.result(v), kind, v.Operand, v.TargetTy)
	case *MethodDispatchInst:
		p.writeLine("%s%s %s, #%s(%s)", p.result(v), v.Kind_, v.Self, v.Method, p.args(v.Args))
	case *KeyPathInst:
		p.writeLine("%skeypath %s [%s]", p.result(v), v.Root, strings.Join(v.Components, "."))
	case *ExistentialOpenInst:
		p.writeLine("%sopen_existential_addr %s", p.result(v), v.Existential)
	case *ExistentialInitInst:
		p.writeLine("%sinit_existential_addr %s", p.result(v), v.Concrete)
	case *BridgeObjectNarrowInst:
		p.writeLine("%svalue_to_bridge_object %s", p.result(v), v.Operand)
	case *MetatypeConversionInst:
		p.writeLine("%sthick_to_objc_metatype %s (toForeign=%v)", p.result(v), v.Operand, v.ToForeign)
	case *DebugValueInst:
		p.writeLine("debug_value %s, name %q", v.Operand, v.Binding)
	case *ApplyInst:
		p.writeLine("%sapply %s(%s)", p.result(v), v.Fn, p.args(v.Args))
	case *TryApplyInst:
		p.writeLine("try_apply %s(%s): normal %s, error %s", v.Fn, p.args(v.Args), v.Normal, v.Error)
	case *BranchTerminator:
		p.writeLine("br %s(%s)", v.Target, p.args(v.Args))
	case *CondBranchTerminator:
		p.writeLine("cond_br %s, %s(%s), %s(%s)", v.Condition, v.True, p.args(v.TrueArgs), v.False, p.args(v.FalseArgs))
	case *ReturnTerminator:
		if v.Value == nil {
			p.writeLine("return")
		} else {
			p.writeLine("return %s", v.Value)
		}
	case *ThrowTerminator:
		p.writeLine("throw %s", v.Value)
	case *UnreachableTerminator:
		p.writeLine("unreachable")
	case *SwitchEnumTerminator:
		cases := make([]string, 0, len(v.Cases))
		for name := range v.Cases {
			cases = append(cases, name)
		}
		sort.Strings(cases)
		parts := make([]string, 0, len(cases))
		for _, name := range cases {
			parts = append(parts, fmt.Sprintf("#%s: %s", name, v.Cases[name]))
		}
		p.writeLine("switch_enum %s, %s", v.Operand, strings.Join(parts, ", "))
	case *NonCanonicalInst:
		p.writeLine("<non-canonical>")
	default:
		p.writeLine("<unknown instruction>")
	}
}

func nonNil(v *Value) []*Value {
	if v == nil {
		return nil
	}
	return []*Value{v}
}
