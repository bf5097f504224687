// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ATNSimulatorError is an error type for fatal simulator invariant
// violations. Nothing in this package raises it: invariantViolation
// panics with a plain string instead.
type ATNSimulatorError struct{ msg string }

func (e *ATNSimulatorError) Error() string { return e.msg }

// ATNSimulatorSharedContextCache is a process-wide PredictionContextCache
// a caller may pass to NewLexerATNSimulator or NewParserATNSimulator. A
// simulator given a nil cache does not fall back to it; getCachedContext
// then returns contexts uncached.
var ATNSimulatorSharedContextCache = NewPredictionContextCache()

// BaseATNSimulator is embedded by LexerATNSimulator and
// ParserATNSimulator: the parts common to both engines — the ATN they
// walk and the PredictionContext cache closures hash-cons through.
type BaseATNSimulator struct {
	atn          *ATN
	sharedContextCache *PredictionContextCache
}

func (b *BaseATNSimulator) getCachedContext(context PredictionContext) PredictionContext {
	if b.sharedContextCache == nil {
		return context
	}
	return b.sharedContextCache.getAsCached(context)
}
