// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// LexerActionExecutor bundles the ordered actions a lexer DFA accept
// state must fire. Executors compare structurally (Hash/Equals over the
// action sequence), so configs carrying identical action sequences are
// equal; executors are not interned, and each construction allocates a
// new instance.
type LexerActionExecutor struct {
	lexerActions []LexerAction
	cachedHash   int
}

func NewLexerActionExecutor(lexerActions []LexerAction) *LexerActionExecutor {
	if lexerActions == nil {
		lexerActions = make([]LexerAction, 0)
	}
	l := &LexerActionExecutor{lexerActions: lexerActions}
	h := murmurInit(1)
	for _, a := range lexerActions {
		h = murmurUpdate(h, a.Hash())
	}
	l.cachedHash = murmurFinish(h, len(lexerActions))
	return l
}

// LexerActionExecutorAppend returns a new executor equal to lexerActionExecutor
// with lexerAction appended — used when a lexer ATN transition adds one more
// action to whatever an already-matched prefix has accumulated.
func LexerActionExecutorAppend(lexerActionExecutor *LexerActionExecutor, lexerAction LexerAction) *LexerActionExecutor {
	if lexerActionExecutor == nil {
		return NewLexerActionExecutor([]LexerAction{lexerAction})
	}
	newActions := make([]LexerAction, len(lexerActionExecutor.lexerActions)+1)
	copy(newActions, lexerActionExecutor.lexerActions)
	newActions[len(lexerActionExecutor.lexerActions)] = lexerAction
	return NewLexerActionExecutor(newActions)
}

// fixOffsetBeforeMatch rewrites every position-dependent action in the
// executor into a LexerIndexedCustomAction recording offset, so that once
// the overall rule eventually matches, each such action can seek the
// input back to the exact char position it was encountered at before
// executing — lexer actions fire only after the longest match across the
// whole rule is known, but their side effects (sempred state, and in the
// generated-code case, embedded Go snippets) can depend on where in the
// input they occurred.
func (l *LexerActionExecutor) fixOffsetBeforeMatch(offset int) *LexerActionExecutor {
	var updated []LexerAction
	for i, a := range l.lexerActions {
		if a.getIsPositionDependent() {
			if _, already := a.(*LexerIndexedCustomAction); !already {
				if updated == nil {
					updated = make([]LexerAction, len(l.lexerActions))
					copy(updated, l.lexerActions)
				}
				updated[i] = NewLexerIndexedCustomAction(offset, a)
			}
		}
	}
	if updated == nil {
		return l
	}
	return NewLexerActionExecutor(updated)
}

// execute runs every action in order against lexer, seeking the input to
// startIndex plus the recorded offset before each indexed action (and to
// the match-end position before any other position-dependent action),
// then leaving the stream at its final match-end position once all
// actions have executed.
func (l *LexerActionExecutor) execute(lexer Lexer, input CharStream, startIndex int) {
	requiresSeek := false
	stopIndex := input.Index()
	defer func() {
		if requiresSeek {
			input.Seek(stopIndex)
		}
	}()
	for _, a := range l.lexerActions {
		if ica, ok := a.(*LexerIndexedCustomAction); ok {
			offset := ica.offset
			input.Seek(startIndex + offset)
			ica.action.execute(lexer)
			requiresSeek = startIndex+offset != stopIndex
		} else if a.getIsPositionDependent() {
			input.Seek(stopIndex)
			a.execute(lexer)
		} else {
			a.execute(lexer)
		}
	}
}

func (l *LexerActionExecutor) Hash() int { return l.cachedHash }

func (l *LexerActionExecutor) Equals(other Collectable[*LexerActionExecutor]) bool {
	o, ok := other.(*LexerActionExecutor)
	if !ok {
		return false
	}
	if l == o {
		return true
	}
	if len(l.lexerActions) != len(o.lexerActions) {
		return false
	}
	for i, a := range l.lexerActions {
		if !a.Equals(o.lexerActions[i]) {
			return false
		}
	}
	return true
}
