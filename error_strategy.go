// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ErrorStrategy is the pluggable recovery policy every BaseParser.Match
// and rule invocation consults: it decides whether a mismatched token is
// recoverable in place, how to resynchronize after a failed rule, and
// when to give up and propagate the exception. The baseline every
// generated parser links against is DefaultErrorStrategy; BailErrorStrategy
// swaps in a first-error-wins policy for embedding scenarios that want to
// treat any syntax error as fatal.
type ErrorStrategy interface {
	reset(recognizer Parser)
	RecoverInline(recognizer Parser) Token
	Recover(recognizer Parser, e RecognitionException)
	Sync(recognizer Parser)
	InErrorRecoveryMode(recognizer Parser) bool
	ReportError(recognizer Parser, e RecognitionException)
	ReportMatch(recognizer Parser)
}

// DefaultErrorStrategy implements the three recovery heuristics ANTLR
// generated parsers rely on: single-token deletion, single-token
// insertion, and rule-exit resynchronization against the computed follow
// set. It reports each error exactly once per error spot, suppressing
// repeats until at least one token has been successfully matched.
type DefaultErrorStrategy struct {
	errorRecoveryMode bool
	lastErrorIndex    int
	lastErrorStates   *IntervalSet
	nextTokensContext ParserRuleContext
	nextTokensState   int
}

func NewDefaultErrorStrategy() *DefaultErrorStrategy {
	return &DefaultErrorStrategy{lastErrorIndex: -1, nextTokensState: ATNStateInvalidStateNumber}
}

func (d *DefaultErrorStrategy) reset(recognizer Parser) {
	d.endErrorCondition(recognizer)
}

func (d *DefaultErrorStrategy) beginErrorCondition(Parser) { d.errorRecoveryMode = true }

func (d *DefaultErrorStrategy) endErrorCondition(Parser) {
	d.errorRecoveryMode = false
	d.lastErrorStates = nil
	d.lastErrorIndex = -1
}

func (d *DefaultErrorStrategy) InErrorRecoveryMode(Parser) bool { return d.errorRecoveryMode }

func (d *DefaultErrorStrategy) ReportMatch(recognizer Parser) {
	d.endErrorCondition(recognizer)
}

// ReportError dispatches to the specific report* method for e's concrete
// type, then marks the parser as being in error recovery so nested rule
// invocations do not pile on duplicate diagnostics for the same failure.
func (d *DefaultErrorStrategy) ReportError(recognizer Parser, e RecognitionException) {
	if d.InErrorRecoveryMode(recognizer) {
		return
	}
	d.beginErrorCondition(recognizer)
	switch ex := e.(type) {
	case *NoViableAltException:
		d.reportNoViableAlternative(recognizer, ex)
	case *InputMismatchException:
		d.reportInputMismatch(recognizer, ex)
	case *FailedPredicateException:
		d.reportFailedPredicate(recognizer, ex)
	default:
		recognizer.NotifyErrorListeners(e.GetMessage(), e.GetOffendingToken(), e)
	}
}

// Recover consumes tokens up to the first one in the current context's
// follow set, discarding everything in between, so the caller's rule can
// return normally with a partial tree. It does not leave error recovery
// mode; that happens on the next ReportMatch.
func (d *DefaultErrorStrategy) Recover(recognizer Parser, e RecognitionException) {
	if d.lastErrorIndex == recognizer.GetInputStream().Index() &&
		d.lastErrorStates != nil && d.lastErrorStates.Contains(recognizer.GetState()) {
		// The parser didn't make progress since the last error at the same
		// state: the single-token strategies alone won't get it unstuck, so
		// consume one token unconditionally before resyncing.
		recognizer.Consume()
	}
	d.lastErrorIndex = recognizer.GetInputStream().Index()
	if d.lastErrorStates == nil {
		d.lastErrorStates = NewIntervalSet()
	}
	d.lastErrorStates.AddOne(recognizer.GetState())
	followSet := d.getErrorRecoverySet(recognizer)
	d.consumeUntil(recognizer, followSet)
}

// Sync skips tokens that cannot start nor follow from the current ATN
// state's decision, so a malformed optional/loop sub-rule doesn't
// silently swallow the rest of the input. This is the classic "panic
// mode" resynchronization every LL(*) parser needs at loop/block
// boundaries.
func (d *DefaultErrorStrategy) Sync(recognizer Parser) {
	if d.InErrorRecoveryMode(recognizer) {
		return
	}
	s := recognizer.GetInterpreter().atn.states[recognizer.GetState()]
	la := recognizer.GetTokenStream().LA(1)
	nextTokens := recognizer.GetATN().NextTokens(s, nil)
	if nextTokens.Contains(TokenEpsilon) || nextTokens.Contains(la) {
		return
	}
	switch s.(type) {
	case *BlockStartState, *PlusBlockStartState, *StarBlockStartState, *PlusLoopbackState, *StarLoopEntryState:
		if d.singleTokenDeletion(recognizer) != nil {
			return
		}
		panic(NewInputMismatchException(recognizer))
	default:
	}
}

func (d *DefaultErrorStrategy) reportNoViableAlternative(recognizer Parser, e *NoViableAltException) {
	input := "<unknown input>"
	if e.startToken != nil {
		if ts, ok := recognizer.GetInputStream().(TokenStream); ok {
			input = ts.GetTextRange(e.startToken.GetTokenIndex(), e.offendingToken.GetTokenIndex())
		}
	}
	msg := "no viable alternative at input " + escapeWSAndQuote(input)
	recognizer.NotifyErrorListeners(msg, e.offendingToken, e)
}

func (d *DefaultErrorStrategy) reportInputMismatch(recognizer Parser, e *InputMismatchException) {
	msg := "mismatched input " + GetTokenErrorDisplay(e.GetOffendingToken()) +
		" expecting " + e.GetExpectedTokens().StringVerbose(recognizer.GetLiteralNames(), recognizer.GetSymbolicNames(), false)
	recognizer.NotifyErrorListeners(msg, e.GetOffendingToken(), e)
}

func (d *DefaultErrorStrategy) reportFailedPredicate(recognizer Parser, e *FailedPredicateException) {
	recognizer.NotifyErrorListeners(e.message, e.GetOffendingToken(), e)
}

// reportUnwantedToken and reportMissingToken back the single-token
// deletion/insertion heuristics' diagnostics.
func (d *DefaultErrorStrategy) reportUnwantedToken(recognizer Parser) {
	if d.InErrorRecoveryMode(recognizer) {
		return
	}
	d.beginErrorCondition(recognizer)
	t := recognizer.GetCurrentToken()
	msg := "extraneous input " + GetTokenErrorDisplay(t) + " expecting " +
		d.getExpectedTokens(recognizer).StringVerbose(recognizer.GetLiteralNames(), recognizer.GetSymbolicNames(), false)
	recognizer.NotifyErrorListeners(msg, t, nil)
}

func (d *DefaultErrorStrategy) reportMissingToken(recognizer Parser) {
	if d.InErrorRecoveryMode(recognizer) {
		return
	}
	d.beginErrorCondition(recognizer)
	t := recognizer.GetCurrentToken()
	expecting := d.getExpectedTokens(recognizer)
	msg := "missing " + expecting.StringVerbose(recognizer.GetLiteralNames(), recognizer.GetSymbolicNames(), false) +
		" at " + GetTokenErrorDisplay(t)
	recognizer.NotifyErrorListeners(msg, t, nil)
}

// RecoverInline implements single-token deletion then single-token
// insertion, in that order, and only raises InputMismatchException when
// neither heuristic applies — the two together resolve the overwhelming
// majority of one-off typos without aborting the parse.
func (d *DefaultErrorStrategy) RecoverInline(recognizer Parser) Token {
	if matched := d.singleTokenDeletion(recognizer); matched != nil {
		recognizer.Consume()
		return matched
	}
	if d.singleTokenInsertion(recognizer) {
		return d.getMissingSymbol(recognizer)
	}
	panic(NewInputMismatchException(recognizer))
}

// singleTokenInsertion reports whether inserting one synthetic token of
// the expected type before the current token would let the parser
// continue: true iff the current lookahead token is in the set of tokens
// that can follow the target of the current state's first transition.
func (d *DefaultErrorStrategy) singleTokenInsertion(recognizer Parser) bool {
	currentSymbolType := recognizer.GetTokenStream().LA(1)
	atn := recognizer.GetInterpreter().atn
	currentState := atn.states[recognizer.GetState()]
	next := currentState.GetTransitions()[0].getTarget()
	expectingAtLL2 := atn.NextTokens(next, recognizer.GetParserRuleContext())
	return expectingAtLL2.Contains(currentSymbolType)
}

// singleTokenDeletion reports whether dropping the current token and
// matching against the one after it resolves the mismatch. If so it
// reports the current token as extraneous, consumes it, and returns the
// token after it (the one that matches); otherwise it returns nil.
func (d *DefaultErrorStrategy) singleTokenDeletion(recognizer Parser) Token {
	nextTokenType := recognizer.GetTokenStream().LA(2)
	expecting := d.getExpectedTokens(recognizer)
	if !expecting.Contains(nextTokenType) {
		return nil
	}
	d.reportUnwantedToken(recognizer)
	recognizer.Consume()
	matched := recognizer.GetCurrentToken()
	d.ReportMatch(recognizer)
	return matched
}

// getMissingSymbol synthesizes the token RecoverInline's insertion branch
// pretends was there, stamped at the current token's position so
// downstream diagnostics still point somewhere sensible.
func (d *DefaultErrorStrategy) getMissingSymbol(recognizer Parser) Token {
	current := recognizer.GetCurrentToken()
	expecting := d.getExpectedTokens(recognizer)
	expectedTokenType := TokenInvalidType
	if !expecting.isNil() {
		expectedTokenType = expecting.minElement()
	}
	var tokenText string
	if expectedTokenType == TokenEOF {
		tokenText = "<missing EOF>"
	} else {
		tokenText = "<missing " + itoa(expectedTokenType) + ">"
	}
	lookback := current
	factory := recognizer.GetTokenFactory()
	pair := TokenSourceCharStreamPair{TokenSource: recognizer.GetTokenStream().GetTokenSource()}
	return factory.Create(pair, expectedTokenType, tokenText, TokenDefaultChannel, -1, -1, lookback.GetLine(), lookback.GetColumn())
}

func (d *DefaultErrorStrategy) getExpectedTokens(recognizer Parser) *IntervalSet {
	return recognizer.GetExpectedTokens()
}

// getErrorRecoverySet computes the union of follow sets for every rule
// still active on the call stack, so Recover's consumeUntil knows every
// token that could legally resume some enclosing rule.
func (d *DefaultErrorStrategy) getErrorRecoverySet(recognizer Parser) *IntervalSet {
	atn := recognizer.GetInterpreter().atn
	ctx := recognizer.GetParserRuleContext()
	recoverSet := NewIntervalSet()
	for ctx != nil && ctx.GetInvokingState() >= 0 {
		invokingState := atn.states[ctx.GetInvokingState()]
		rt := invokingState.GetTransitions()[0].(*RuleTransition)
		follow := atn.NextTokens(rt.followState, nil)
		recoverSet.addSet(follow)
		parent := ctx.GetParent()
		pc, ok := parent.(ParserRuleContext)
		if !ok {
			break
		}
		ctx = pc
	}
	recoverSet.removeOne(TokenEpsilon)
	return recoverSet
}

func (d *DefaultErrorStrategy) consumeUntil(recognizer Parser, set *IntervalSet) {
	ttype := recognizer.GetTokenStream().LA(1)
	for ttype != TokenEOF && !set.Contains(ttype) {
		recognizer.Consume()
		ttype = recognizer.GetTokenStream().LA(1)
	}
}

func escapeWSAndQuote(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '\'')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		default:
			out = append(out, s[i])
		}
	}
	out = append(out, '\'')
	return string(out)
}

// BailErrorStrategy replaces recovery with immediate cancellation: the
// first syntax error anywhere in the parse panics with
// ParseCancellationException, which an embedding application can recover
// from at the top-level Parse call without paying for resynchronization
// it doesn't want (e.g. a speculative parse used only to check validity).
type BailErrorStrategy struct {
	DefaultErrorStrategy
}

func NewBailErrorStrategy() *BailErrorStrategy {
	return &BailErrorStrategy{DefaultErrorStrategy: *NewDefaultErrorStrategy()}
}

func (b *BailErrorStrategy) Recover(recognizer Parser, e RecognitionException) {
	ctx := recognizer.GetParserRuleContext()
	for ctx != nil {
		ctx.SetException(e)
		parent, ok := ctx.GetParent().(ParserRuleContext)
		if !ok {
			break
		}
		ctx = parent
	}
	panic(NewParseCancellationException(e))
}

func (b *BailErrorStrategy) RecoverInline(recognizer Parser) Token {
	b.Recover(recognizer, NewInputMismatchException(recognizer))
	return nil
}

func (b *BailErrorStrategy) Sync(Parser) {}
