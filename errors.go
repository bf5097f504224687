// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// RecognitionException is the root of every recoverable error the
// recognizer can raise during lexing or parsing: [NoViableAltException],
// [InputMismatchException], [FailedPredicateException], and
// [LexerNoViableAltException] all implement it.
type RecognitionException interface {
	error
	GetOffendingToken() Token
	GetMessage() string
	GetInputStream() IntStream
}

// BaseRecognitionException carries the fields common to every recoverable
// parse-time error: the recognizer that raised it, the stream it was
// reading from, and the parser context active at the time.
type BaseRecognitionException struct {
	message        string
	recognizer     Recognizer
	offendingToken Token
	offendingState int
	ctx            RuleContext
	input          IntStream
}

func NewBaseRecognitionException(message string, recognizer Recognizer, input IntStream, ctx RuleContext) *BaseRecognitionException {
	t := &BaseRecognitionException{
		message:        message,
		recognizer:     recognizer,
		input:          input,
		ctx:            ctx,
		offendingState: -1,
	}
	if recognizer != nil {
		t.offendingState = recognizer.GetState()
	}
	return t
}

func (b *BaseRecognitionException) GetMessage() string        { return b.message }
func (b *BaseRecognitionException) GetOffendingToken() Token  { return b.offendingToken }
func (b *BaseRecognitionException) GetInputStream() IntStream { return b.input }
func (b *BaseRecognitionException) Error() string             { return b.message }

// GetExpectedTokens computes the set of tokens that could validly follow
// the state at which the error occurred, using the recognizer's ATN and
// the live rule-context chain.
func (b *BaseRecognitionException) GetExpectedTokens() *IntervalSet {
	if b.recognizer != nil {
		return b.recognizer.GetATN().getExpectedTokens(b.offendingState, b.ctx)
	}
	return nil
}

// NoViableAltException is raised when no alternative's lookahead matches
// at a decision state.
type NoViableAltException struct {
	*BaseRecognitionException

	startToken      Token
	offendingToken  Token
	ctx             ParserRuleContext
	deadEndConfigs  *ATNConfigSet
}

func NewNoViableAltException(recognizer Parser, input TokenStream, startToken, offendingToken Token, deadEndConfigs *ATNConfigSet, ctx ParserRuleContext) *NoViableAltException {
	if ctx == nil {
		ctx = recognizer.GetParserRuleContext()
	}
	if offendingToken == nil {
		offendingToken = recognizer.GetCurrentToken()
	}
	if startToken == nil {
		startToken = recognizer.GetCurrentToken()
	}
	if input == nil {
		input = recognizer.GetInputStream().(TokenStream)
	}
	n := &NoViableAltException{
		BaseRecognitionException: NewBaseRecognitionException("", recognizer, input, ctx),
		deadEndConfigs:           deadEndConfigs,
		startToken:               startToken,
		offendingToken:           offendingToken,
	}
	n.offendingToken = offendingToken
	return n
}

func (n *NoViableAltException) Error() string {
	return fmt.Sprintf("no viable alternative at input %v", n.offendingToken)
}

// InputMismatchException is raised when the lookahead is not in the set
// of tokens expected at the current ATN state.
type InputMismatchException struct {
	*BaseRecognitionException
}

func NewInputMismatchException(recognizer Parser) *InputMismatchException {
	e := &InputMismatchException{
		BaseRecognitionException: NewBaseRecognitionException("", recognizer, recognizer.GetInputStream(), recognizer.GetParserRuleContext()),
	}
	e.offendingToken = recognizer.GetCurrentToken()
	e.offendingState = recognizer.GetState()
	return e
}

func (i *InputMismatchException) Error() string {
	return fmt.Sprintf("mismatched input %v expecting %v", i.offendingToken, i.GetExpectedTokens())
}

// FailedPredicateException is raised when a semantic or precedence
// predicate evaluates false at a decision that required it.
type FailedPredicateException struct {
	*BaseRecognitionException

	ruleIndex       int
	predicateIndex  int
	predicate       string
}

func NewFailedPredicateException(recognizer Parser, predicate string, message string) *FailedPredicateException {
	f := &FailedPredicateException{
		BaseRecognitionException: NewBaseRecognitionException(formatFailedPredicateMessage(recognizer, predicate, message), recognizer, recognizer.GetInputStream(), recognizer.GetParserRuleContext()),
		predicate:                predicate,
	}
	f.offendingToken = recognizer.GetCurrentToken()
	s := recognizer.GetInterpreter().atn.states[recognizer.GetState()]
	trans := s.GetTransitions()[0]
	if pt, ok := trans.(*PredicateTransition); ok {
		f.ruleIndex = pt.ruleIndex
		f.predicateIndex = pt.predIndex
	}
	return f
}

func formatFailedPredicateMessage(recognizer Parser, predicate, message string) string {
	if message != "" {
		return message
	}
	return fmt.Sprintf("failed predicate: {%s}?", predicate)
}

func (f *FailedPredicateException) Error() string { return f.message }

// LexerNoViableAltException is raised when no lexer rule matches a
// character at the current mode and position.
type LexerNoViableAltException struct {
	message        string
	startIndex     int
	deadEndConfigs *ATNConfigSet
	input          CharStream
}

func NewLexerNoViableAltException(lexer Lexer, input CharStream, startIndex int, deadEndConfigs *ATNConfigSet) *LexerNoViableAltException {
	return &LexerNoViableAltException{
		input:          input,
		startIndex:     startIndex,
		deadEndConfigs: deadEndConfigs,
	}
}

func (l *LexerNoViableAltException) Error() string {
	var text string
	if l.startIndex >= 0 && l.startIndex < l.input.Size() {
		text = l.input.GetTextFromInterval(NewInterval(l.startIndex, l.startIndex))
	}
	return fmt.Sprintf("no viable alternative at character %q", text)
}

func (l *LexerNoViableAltException) GetOffendingToken() Token  { return nil }
func (l *LexerNoViableAltException) GetMessage() string        { return l.Error() }
func (l *LexerNoViableAltException) GetInputStream() IntStream { return l.input }

// ParseCancellationException is the panic value used by [BailErrorStrategy]
// to unwind a parse immediately on the first error, bypassing the error
// strategy's normal recovery mechanism.
type ParseCancellationException struct {
	cause RecognitionException
}

func NewParseCancellationException(cause RecognitionException) *ParseCancellationException {
	return &ParseCancellationException{cause: cause}
}

func (p *ParseCancellationException) Error() string {
	return "parse cancelled: " + p.cause.Error()
}

// invariantViolation panics on an internal consistency failure that the
// error strategy cannot meaningfully recover from: popping an empty mode
// stack, releasing a marker that was never acquired, adding to a frozen
// config set, and similar. These bypass the error-listener
// path entirely.
func invariantViolation(msg string) {
	panic("antlr: invariant violation: " + msg)
}
