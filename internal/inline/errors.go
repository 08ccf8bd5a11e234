package inline

import "fmt"

// ErrorCode namespaces the inliner's fatal preconditions, following the
// range convention of kanso/internal/errors/codes.go (there: E-prefixed
// ranges per subsystem; here: a single I-prefixed range, since this
// package has exactly one subsystem).
type ErrorCode string

const (
	// ErrSelfInline: the call site's own function is the callee
	// (spec.md §4.1's canInline contract).
	ErrSelfInline ErrorCode = "I0001"
	// ErrArgumentCount: the argument sequence passed to Inline does not
	// match the callee's parameter count, or the callee has no entry
	// block. The driver and splicer also raise it when a return or branch
	// operand has no caller mapping and when the call instruction is
	// missing from its own block.
	ErrArgumentCount ErrorCode = "I0002"
	// ErrMandatoryForeignCallee: mandatory inlining was requested for a
	// foreign-method or foreign-C callee.
	ErrMandatoryForeignCallee ErrorCode = "I0003"
	// ErrNonCanonicalCost: InstructionInlineCost was invoked on a
	// pseudo/non-canonical or unrecognized instruction. The driver also
	// raises it for a callee terminator kind it has no rewrite for.
	ErrNonCanonicalCost ErrorCode = "I0004"
	// ErrUnknownEnforcement: a memory-access marker's enforcement mode
	// is Unknown, which is illegal to cost.
	ErrUnknownEnforcement ErrorCode = "I0005"
)

// FatalError reports a precondition violation. Per spec.md §7 these are
// programmer errors in the surrounding optimizer pass, not data the
// core can recover from — there is no partial-success state, so the
// core raises FatalError as a panic rather than returning an error
// value, matching kanso/internal/parser/parser.go's one precedent for
// treating a build-time invariant violation as a panic instead of a
// propagated error.
type FatalError struct {
	Code    ErrorCode
	Message string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("inline: %s: %s", e.Code, e.Message)
}

func fatal(code ErrorCode, format string, args ...interface{}) {
	panic(&FatalError{Code: code, Message: fmt.Sprintf(format, args...)})
}
