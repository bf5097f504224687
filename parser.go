// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// Parser is the contract a generated recognizer's rule methods drive: a
// TokenStream to pull from, a ParserATNSimulator to ask adaptivePredict
// of, an ErrorStrategy to delegate recovery to, and the live
// ParserRuleContext tree being built.
type Parser interface {
	Recognizer

	GetInputStream() IntStream
	SetInputStream(IntStream)
	GetTokenStream() TokenStream
	SetTokenStream(TokenStream)
	GetTokenFactory() TokenFactory

	GetCurrentToken() Token
	Consume() Token

	GetParserRuleContext() ParserRuleContext
	SetParserRuleContext(ParserRuleContext)

	GetInterpreter() *ParserATNSimulator
	GetErrorHandler() ErrorStrategy
	SetErrorHandler(ErrorStrategy)

	GetPrecedence() int
	GetExpectedTokens() *IntervalSet

	NotifyErrorListeners(msg string, offendingToken Token, e RecognitionException)
}

// BaseParser implements the rule-invocation bookkeeping every generated
// parser's rule methods call into: context push/pop, Match, recursion-rule
// handling for left-recursive rules, and adaptivePredict delegation.
type BaseParser struct {
	*BaseRecognizer

	Interpreter *ParserATNSimulator

	input TokenStream

	errHandler ErrorStrategy

	ctx ParserRuleContext

	BuildParseTrees bool

	precedenceStack []int

	Virt Parser // set by embedder so overridden Sempred/Precpred/Action are reached through the interface, not the base struct

	tokenFactory TokenFactory

	matchedEOF bool
}

func NewBaseParser(input TokenStream) *BaseParser {
	p := &BaseParser{
		BaseRecognizer:   NewBaseRecognizer(),
		errHandler:       NewDefaultErrorStrategy(),
		BuildParseTrees:  true,
		tokenFactory:     CommonTokenFactoryDEFAULT,
		precedenceStack:  []int{0},
	}
	p.SetInputStream(input)
	return p
}

func (p *BaseParser) virt() Parser {
	if p.Virt != nil {
		return p.Virt
	}
	return p
}

func (p *BaseParser) GetInputStream() IntStream    { return p.input }
func (p *BaseParser) GetTokenStream() TokenStream  { return p.input }
func (p *BaseParser) SetTokenStream(ts TokenStream) { p.SetInputStream(ts) }

func (p *BaseParser) SetInputStream(input IntStream) {
	p.ctx = nil
	p.matchedEOF = false
	ts, _ := input.(TokenStream)
	p.input = ts
	p.Reset()
}

func (p *BaseParser) Reset() {
	if p.input != nil {
		p.input.Seek(0)
	}
	p.errHandler.reset(p.virt())
	p.ctx = nil
	p.matchedEOF = false
	p.precedenceStack = []int{0}
	if p.Interpreter != nil {
		// no per-decision state to clear: the decision DFAs persist across
		// parses deliberately.
	}
}

func (p *BaseParser) GetTokenFactory() TokenFactory  { return p.tokenFactory }
func (p *BaseParser) SetTokenFactory(f TokenFactory) { p.tokenFactory = f }

func (p *BaseParser) GetATN() *ATN { return p.Interpreter.atn }

func (p *BaseParser) GetInterpreter() *ParserATNSimulator { return p.Interpreter }

func (p *BaseParser) GetErrorHandler() ErrorStrategy    { return p.errHandler }
func (p *BaseParser) SetErrorHandler(h ErrorStrategy)   { p.errHandler = h }

func (p *BaseParser) GetParserRuleContext() ParserRuleContext  { return p.ctx }
func (p *BaseParser) SetParserRuleContext(ctx ParserRuleContext) { p.ctx = ctx }

// GetCurrentToken returns LT(1), the token Match will next try to consume.
func (p *BaseParser) GetCurrentToken() Token { return p.input.LT(1) }

func (p *BaseParser) NotifyErrorListeners(msg string, offendingToken Token, e RecognitionException) {
	if offendingToken == nil {
		offendingToken = p.GetCurrentToken()
	}
	p.GetErrorListenerDispatch().SyntaxError(p.virt(), offendingToken, offendingToken.GetLine(), offendingToken.GetColumn(), msg, e)
}

// Consume matches LT(1) unconditionally (the caller has already verified
// it's the expected token, or doesn't care), attaches it as a child of the
// current context when tree-building is enabled, and advances the stream.
func (p *BaseParser) Consume() Token {
	o := p.GetCurrentToken()
	if o.GetTokenType() != TokenEOF {
		p.input.Consume()
	} else {
		p.matchedEOF = true
	}
	if p.BuildParseTrees && p.ctx != nil {
		if o.GetTokenType() == TokenInvalidType {
			p.ctx.AddErrorNode(o)
		} else {
			p.ctx.AddTokenNode(o)
		}
	}
	return o
}

// Match consumes the current token if it has the expected type, otherwise
// delegates to the ErrorStrategy for single-token recovery.
func (p *BaseParser) Match(ttype int) Token {
	t := p.GetCurrentToken()
	if t.GetTokenType() == ttype {
		p.errHandler.ReportMatch(p.virt())
		return p.Consume()
	}
	return p.errHandler.RecoverInline(p.virt())
}

// MatchWildcard consumes the current token regardless of type, via the
// same recovery path as Match when the stream is already exhausted.
func (p *BaseParser) MatchWildcard() Token {
	t := p.GetCurrentToken()
	if t.GetTokenType() > TokenEOF || t.GetTokenType() == TokenInvalidType {
		p.errHandler.ReportMatch(p.virt())
		return p.Consume()
	}
	return p.errHandler.RecoverInline(p.virt())
}

func (p *BaseParser) GetExpectedTokens() *IntervalSet {
	return p.GetATN().getExpectedTokens(p.GetState(), p.ctx)
}

func (p *BaseParser) GetPrecedence() int {
	if len(p.precedenceStack) == 0 {
		return -1
	}
	return p.precedenceStack[len(p.precedenceStack)-1]
}

// EnterRule pushes a fresh context below the current one, linking it into
// the tree, and sets the recognizer's state to the rule's start.
func (p *BaseParser) EnterRule(localctx ParserRuleContext, state, _ int) {
	p.SetState(state)
	p.ctx = localctx
	p.ctx.SetStart(p.input.LT(1))
	if p.BuildParseTrees {
		p.addContextToParseTree()
	}
}

// ExitRule pops the current context back to its parent, stamping the stop
// token the rule consumed up through.
func (p *BaseParser) ExitRule() {
	p.ctx.SetStop(p.getLT(-1))
	if parent, ok := p.ctx.GetParent().(ParserRuleContext); ok {
		p.ctx = parent
	} else {
		p.ctx = nil
	}
}

func (p *BaseParser) addContextToParseTree() {
	if parent, ok := p.ctx.GetParent().(ParserRuleContext); ok {
		parent.AddChild(p.ctx)
	}
}

func (p *BaseParser) getLT(k int) Token {
	return p.input.LT(k)
}

// EnterRecursionRule starts a left-recursive rule's synthetic loop: it
// pushes precedence, makes localctx the current context, and sets the
// recognizer's state and the context's start token.
func (p *BaseParser) EnterRecursionRule(localctx ParserRuleContext, state, _, precedence int) {
	p.SetState(state)
	p.precedenceStack = append(p.precedenceStack, precedence)
	p.ctx = localctx
	p.ctx.SetStart(p.input.LT(1))
}

// PushNewRecursionContext splices a new outer context below the
// in-progress left-recursive context: the new context takes over as the
// rule's primary context and the old one becomes its first child, giving
// left-associative parses the nesting shape their grammar called for
// without actual recursive descent.
func (p *BaseParser) PushNewRecursionContext(localctx ParserRuleContext, state, _ int) {
	previous := p.ctx
	previous.SetParent(localctx)
	if p.BuildParseTrees {
		localctx.AddChild(previous)
	}
	p.ctx = localctx
	p.ctx.SetStart(previous.GetStart())
}

// UnrollRecursionContexts closes out a left-recursive rule invocation,
// restoring the caller's context and precedence level, and (when tree
// building is enabled) re-parenting the finished context under whatever
// called the rule.
func (p *BaseParser) UnrollRecursionContexts(parentCtx ParserRuleContext) {
	p.precedenceStack = p.precedenceStack[:len(p.precedenceStack)-1]
	p.ctx.SetStop(p.getLT(-1))
	retCtx := p.ctx
	if parentCtx != nil {
		p.ctx = parentCtx
	} else {
		p.ctx = nil
	}
	if p.BuildParseTrees && parentCtx != nil {
		parentCtx.AddChild(retCtx)
	}
}

// Precpred reports whether the active precedence level permits continuing
// the left-recursive loop at precedence; a PRECEDENCE transition consults
// exactly this through Recognizer.Precpred.
func (p *BaseParser) Precpred(_ RuleContext, precedence int) bool {
	return precedence >= p.GetPrecedence()
}

// AdaptivePredict is the rule-generated entry point into
// ParserATNSimulator.AdaptivePredict, supplying the live input stream and
// context the interpreter needs.
func (p *BaseParser) AdaptivePredict(decision int) int {
	return p.Interpreter.AdaptivePredict(p.input, decision, p.ctx)
}

func (p *BaseParser) GetRuleInvocationStack() []string {
	var stack []string
	c := p.ctx
	for c != nil {
		ri := c.GetRuleIndex()
		name := "n/a"
		if ri >= 0 && ri < len(p.RuleNames) {
			name = p.RuleNames[ri]
		}
		stack = append(stack, name)
		parent, ok := c.GetParent().(ParserRuleContext)
		if !ok {
			break
		}
		c = parent
	}
	return stack
}
