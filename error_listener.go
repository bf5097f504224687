// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"fmt"
	"os"
)

// ErrorListener receives every diagnostic event the recognizer emits.
type ErrorListener interface {
	SyntaxError(recognizer Recognizer, offendingSymbol interface{}, line, column int, msg string, e RecognitionException)
	ReportAmbiguity(recognizer Parser, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet)
	ReportAttemptingFullContext(recognizer Parser, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet)
	ReportContextSensitivity(recognizer Parser, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet)
}

// DefaultErrorListener implements every hook as a no-op; embed it to pick
// and choose which events matter to a custom listener.
type DefaultErrorListener struct{}

func NewDefaultErrorListener() *DefaultErrorListener { return &DefaultErrorListener{} }

func (d *DefaultErrorListener) SyntaxError(Recognizer, interface{}, int, int, string, RecognitionException) {
}
func (d *DefaultErrorListener) ReportAmbiguity(Parser, *DFA, int, int, bool, *BitSet, *ATNConfigSet) {
}
func (d *DefaultErrorListener) ReportAttemptingFullContext(Parser, *DFA, int, int, *BitSet, *ATNConfigSet) {
}
func (d *DefaultErrorListener) ReportContextSensitivity(Parser, *DFA, int, int, int, *ATNConfigSet) {
}

// ConsoleErrorListener is the listener every [BaseRecognizer] starts with:
// it writes `line L:C msg` to standard error and nothing else.
type ConsoleErrorListener struct{ DefaultErrorListener }

func NewConsoleErrorListener() *ConsoleErrorListener { return &ConsoleErrorListener{} }

func (c *ConsoleErrorListener) SyntaxError(_ Recognizer, _ interface{}, line, column int, msg string, _ RecognitionException) {
	fmt.Fprintf(os.Stderr, "line %d:%d %s\n", line, column, msg)
}

// ConsoleErrorListenerINSTANCE is the listener NewBaseRecognizer installs
// in every recognizer; it stays shared until RemoveErrorListeners.
var ConsoleErrorListenerINSTANCE = NewConsoleErrorListener()

// ProxyErrorListener fans a single event out to every listener in the
// registry, as [BaseRecognizer.GetErrorListenerDispatch] returns.
type ProxyErrorListener struct {
	DefaultErrorListener
	delegates []ErrorListener
}

func NewProxyErrorListener(delegates []ErrorListener) *ProxyErrorListener {
	return &ProxyErrorListener{delegates: delegates}
}

func (p *ProxyErrorListener) SyntaxError(recognizer Recognizer, offendingSymbol interface{}, line, column int, msg string, e RecognitionException) {
	for _, d := range p.delegates {
		d.SyntaxError(recognizer, offendingSymbol, line, column, msg, e)
	}
}

func (p *ProxyErrorListener) ReportAmbiguity(recognizer Parser, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
	for _, d := range p.delegates {
		d.ReportAmbiguity(recognizer, dfa, startIndex, stopIndex, exact, ambigAlts, configs)
	}
}

func (p *ProxyErrorListener) ReportAttemptingFullContext(recognizer Parser, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet) {
	for _, d := range p.delegates {
		d.ReportAttemptingFullContext(recognizer, dfa, startIndex, stopIndex, conflictingAlts, configs)
	}
}

func (p *ProxyErrorListener) ReportContextSensitivity(recognizer Parser, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet) {
	for _, d := range p.delegates {
		d.ReportContextSensitivity(recognizer, dfa, startIndex, stopIndex, prediction, configs)
	}
}

// DiagnosticErrorListener renders ambiguity / attempting-full-context /
// context-sensitivity events in human-readable form on top of a
// recognizer's normal error reporting; tools enable it to watch
// SLL→LL fallbacks and real ambiguities as they are detected.
type DiagnosticErrorListener struct {
	DefaultErrorListener
	exactOnly bool
}

func NewDiagnosticErrorListener(exactOnly bool) *DiagnosticErrorListener {
	return &DiagnosticErrorListener{exactOnly: exactOnly}
}

func (d *DiagnosticErrorListener) ReportAmbiguity(recognizer Parser, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
	if d.exactOnly && !exact {
		return
	}
	msg := fmt.Sprintf("reportAmbiguity d=%s: ambigAlts=%s, input='%s'",
		d.getDecisionDescription(recognizer, dfa), d.getConflictingAlts(ambigAlts, configs), d.getText(recognizer, startIndex, stopIndex))
	recognizer.NotifyErrorListeners(msg, nil, nil)
}

func (d *DiagnosticErrorListener) ReportAttemptingFullContext(recognizer Parser, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet) {
	msg := fmt.Sprintf("reportAttemptingFullContext d=%s, input='%s'",
		d.getDecisionDescription(recognizer, dfa), d.getText(recognizer, startIndex, stopIndex))
	recognizer.NotifyErrorListeners(msg, nil, nil)
}

func (d *DiagnosticErrorListener) ReportContextSensitivity(recognizer Parser, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet) {
	msg := fmt.Sprintf("reportContextSensitivity d=%s, input='%s'",
		d.getDecisionDescription(recognizer, dfa), d.getText(recognizer, startIndex, stopIndex))
	recognizer.NotifyErrorListeners(msg, nil, nil)
}

func (d *DiagnosticErrorListener) getDecisionDescription(recognizer Parser, dfa *DFA) string {
	decision := dfa.decision
	ruleIndex := dfa.atnStartState.GetRuleIndex()
	ruleNames := recognizer.GetRuleNames()
	if ruleIndex < 0 || ruleIndex >= len(ruleNames) {
		return itoa(decision)
	}
	return fmt.Sprintf("%d (%s)", decision, ruleNames[ruleIndex])
}

func (d *DiagnosticErrorListener) getConflictingAlts(reportedAlts *BitSet, configs *ATNConfigSet) string {
	if reportedAlts != nil {
		return reportedAlts.String()
	}
	result := NewBitSet()
	for _, c := range configs.configs {
		result.add(c.GetAlt())
	}
	return result.String()
}

func (d *DiagnosticErrorListener) getText(recognizer Parser, startIndex, stopIndex int) string {
	stream := recognizer.GetInputStream()
	if stream == nil {
		return ""
	}
	if ts, ok := stream.(TokenStream); ok {
		return ts.GetTextRange(startIndex, stopIndex)
	}
	return ""
}
