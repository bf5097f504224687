// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ATNConfig is one simulation state: a (state, alt, context) triple plus
// the guarding semantic context and the outer-context-reach counter.
// Lexer configurations add a [LexerActionExecutor] and the
// non-greedy-decision flag.
type ATNConfig struct {
	state                    ATNState
	alt                      int
	context                  PredictionContext
	semanticContext          SemanticContext
	reachesIntoOuterContext  int

	// Lexer-only fields.
	lexerActionExecutor           *LexerActionExecutor
	passedThroughNonGreedyDecision bool
}

// NewATNConfig builds a fresh parser configuration.
func NewATNConfig(state ATNState, alt int, context PredictionContext, semanticContext SemanticContext) *ATNConfig {
	if semanticContext == nil {
		semanticContext = SemanticContextNone
	}
	return &ATNConfig{state: state, alt: alt, context: context, semanticContext: semanticContext}
}

// NewATNConfigFrom copies c but targets state, the common shape every
// closure step over an epsilon transition produces.
func NewATNConfigFrom(c *ATNConfig, state ATNState) *ATNConfig {
	n := *c
	n.state = state
	return &n
}

// NewATNConfigFromWithContext copies c but targets state and context.
func NewATNConfigFromWithContext(c *ATNConfig, state ATNState, context PredictionContext) *ATNConfig {
	n := *c
	n.state = state
	n.context = context
	return &n
}

// NewATNConfigFull copies c but replaces state, context and semantic
// context together, used when a PREDICATE/PRECEDENCE transition ANDs a
// new predicate onto the configuration.
func NewATNConfigFull(c *ATNConfig, state ATNState, context PredictionContext, semanticContext SemanticContext) *ATNConfig {
	n := *c
	n.state = state
	n.context = context
	n.semanticContext = semanticContext
	return &n
}

func (a *ATNConfig) GetState() ATNState              { return a.state }
func (a *ATNConfig) GetAlt() int                     { return a.alt }
func (a *ATNConfig) GetContext() PredictionContext   { return a.context }
func (a *ATNConfig) SetContext(c PredictionContext)  { a.context = c }
func (a *ATNConfig) GetSemanticContext() SemanticContext { return a.semanticContext }
func (a *ATNConfig) GetReachesIntoOuterContext() int { return a.reachesIntoOuterContext }
func (a *ATNConfig) SetReachesIntoOuterContext(v int) { a.reachesIntoOuterContext = v }
func (a *ATNConfig) GetLexerActionExecutor() *LexerActionExecutor { return a.lexerActionExecutor }
func (a *ATNConfig) SetLexerActionExecutor(l *LexerActionExecutor) { a.lexerActionExecutor = l }
func (a *ATNConfig) GetPassedThroughNonGreedyDecision() bool { return a.passedThroughNonGreedyDecision }

// Hash/Equals below implement config-set membership equality, which
// ignores the outer-context counter but does compare the lexer-only
// passedThroughNonGreedyDecision flag and lexer action executor. The
// parser's closureBusy store uses this same equality.

func (a *ATNConfig) Hash() int {
	h := murmurInit(7)
	h = murmurUpdate(h, a.state.GetStateNumber())
	h = murmurUpdate(h, a.alt)
	if a.context != nil {
		h = murmurUpdate(h, a.context.Hash())
	}
	h = murmurUpdate(h, a.semanticContext.Hash())
	if a.lexerActionExecutor != nil {
		h = murmurUpdate(h, a.lexerActionExecutor.Hash())
	}
	if a.passedThroughNonGreedyDecision {
		h = murmurUpdate(h, 1)
	} else {
		h = murmurUpdate(h, 0)
	}
	return murmurFinish(h, 6)
}

// Equals implements config-set dedup equality: (state, alt, context,
// semanticContext, passedThroughNonGreedyDecision, lexerActionExecutor)
// must all match; reachesIntoOuterContext is deliberately excluded.
func (a *ATNConfig) Equals(other Collectable[*ATNConfig]) bool {
	o, ok := other.(*ATNConfig)
	if !ok {
		return false
	}
	if a == o {
		return true
	}
	if a.state.GetStateNumber() != o.state.GetStateNumber() || a.alt != o.alt {
		return false
	}
	if a.passedThroughNonGreedyDecision != o.passedThroughNonGreedyDecision {
		return false
	}
	switch {
	case a.context == nil && o.context == nil:
	case a.context == nil || o.context == nil:
		return false
	case !a.context.Equals(o.context):
		return false
	}
	if !a.semanticContext.Equals(o.semanticContext) {
		return false
	}
	if a.lexerActionExecutor == nil && o.lexerActionExecutor == nil {
		return true
	}
	if a.lexerActionExecutor == nil || o.lexerActionExecutor == nil {
		return false
	}
	return a.lexerActionExecutor.Equals(o.lexerActionExecutor)
}

func (a *ATNConfig) String() string {
	s := "(" + a.state.String() + "," + itoa(a.alt)
	if a.context != nil {
		s += ",[" + a.context.String() + "]"
	}
	if a.semanticContext != SemanticContextNone && a.semanticContext != nil {
		s += "," + a.semanticContext.String()
	}
	if a.reachesIntoOuterContext > 0 {
		s += ",up=" + itoa(a.reachesIntoOuterContext)
	}
	return s + ")"
}
