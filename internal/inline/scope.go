package inline

import "sila/internal/ir"

// Rebuilder is C2: it produces, on demand, a caller-side debug scope
// mirroring each callee scope encountered while cloning, memoized so
// that a scope shared by several callee instructions is copied at most
// once per inline operation (spec.md §4.3). It plays the same role for
// the inliner that a memoizing recursive-descent pass plays elsewhere
// in the teacher's codebase — here the recursion is over the callee's
// inlined-call-site chain rather than over an AST.
type Rebuilder struct {
	Module *ir.Module
	Cache  map[*ir.DebugScope]*ir.DebugScope
	// CallSiteScope is the scope installed when the callee scope being
	// resolved is nil, and the root from which every cloned
	// instruction's inlined-call-site chain ultimately descends.
	CallSiteScope *ir.DebugScope
}

// NewRebuilder returns a Rebuilder with a fresh, empty cache.
func NewRebuilder(m *ir.Module, callSiteScope *ir.DebugScope) *Rebuilder {
	return &Rebuilder{Module: m, Cache: map[*ir.DebugScope]*ir.DebugScope{}, CallSiteScope: callSiteScope}
}

// Resolve maps a callee-side scope to its caller-side image, per
// spec.md §4.3. It is the function C3 calls for every cloned
// instruction's scope.
func (r *Rebuilder) Resolve(calleeScope *ir.DebugScope) *ir.DebugScope {
	if calleeScope == nil {
		return r.CallSiteScope
	}
	if cached, ok := r.Cache[calleeScope]; ok {
		return cached
	}

	newInlinedAt := r.Resolve(calleeScope.InlinedCallSite)

	var parentFunction *ir.Function
	var parentScope *ir.DebugScope
	if calleeScope.ParentFunction != nil {
		parentFunction = calleeScope.ParentFunction
	} else {
		parentScope = calleeScope.ParentScope
	}

	fresh := r.Module.NewScope(calleeScope.Loc, parentFunction, parentScope, newInlinedAt)
	r.Cache[calleeScope] = fresh
	return fresh
}
