// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// Lexer action type tags, covering a dedup'd sequence of lexer actions:
// skip, more, channel, type, mode, pushMode, popMode, custom.
const (
	LexerActionTypeChannel  = 0
	LexerActionTypeCustom   = 1
	LexerActionTypeMode     = 2
	LexerActionTypeMore     = 3
	LexerActionTypePopMode  = 4
	LexerActionTypePushMode = 5
	LexerActionTypeSkip     = 6
	LexerActionTypeType     = 7
)

// LexerAction is a single, possibly-parameterized action bound to a
// lexer ATN's ActionTransition.
type LexerAction interface {
	getActionType() int
	getIsPositionDependent() bool
	execute(lexer Lexer)
	Hash() int
	Equals(other LexerAction) bool
}

type BaseLexerAction struct {
	actionType          int
	isPositionDependent bool
}

func (b *BaseLexerAction) getActionType() int         { return b.actionType }
func (b *BaseLexerAction) getIsPositionDependent() bool { return b.isPositionDependent }
func (b *BaseLexerAction) execute(Lexer)              {}
func (b *BaseLexerAction) Hash() int                  { return murmurFinish(murmurUpdate(murmurInit(1), b.actionType), 1) }

// LexerSkipAction discards the current token without emitting it, which
// restarts the lexer's outer loop without emitting.
type LexerSkipAction struct{ BaseLexerAction }

var LexerSkipActionINSTANCE = &LexerSkipAction{BaseLexerAction{actionType: LexerActionTypeSkip}}

func NewLexerSkipAction() *LexerSkipAction { return LexerSkipActionINSTANCE }

func (l *LexerSkipAction) execute(lexer Lexer) { lexer.Skip() }
func (l *LexerSkipAction) Equals(other LexerAction) bool {
	_, ok := other.(*LexerSkipAction)
	return ok
}
func (l *LexerSkipAction) String() string { return "skip" }

// LexerMoreAction continues accumulating into the current token without
// emitting it yet.
type LexerMoreAction struct{ BaseLexerAction }

var LexerMoreActionINSTANCE = &LexerMoreAction{BaseLexerAction{actionType: LexerActionTypeMore}}

func NewLexerMoreAction() *LexerMoreAction { return LexerMoreActionINSTANCE }

func (l *LexerMoreAction) execute(lexer Lexer) { lexer.More() }
func (l *LexerMoreAction) Equals(other LexerAction) bool {
	_, ok := other.(*LexerMoreAction)
	return ok
}
func (l *LexerMoreAction) String() string { return "more" }

// LexerTypeAction overrides the token type assigned to the pending token.
type LexerTypeAction struct {
	BaseLexerAction
	ttype int
}

func NewLexerTypeAction(ttype int) *LexerTypeAction {
	return &LexerTypeAction{BaseLexerAction{actionType: LexerActionTypeType}, ttype}
}

func (l *LexerTypeAction) execute(lexer Lexer) { lexer.SetType(l.ttype) }
func (l *LexerTypeAction) Hash() int {
	h := murmurInit(1)
	h = murmurUpdate(h, l.actionType)
	h = murmurUpdate(h, l.ttype)
	return murmurFinish(h, 2)
}
func (l *LexerTypeAction) Equals(other LexerAction) bool {
	o, ok := other.(*LexerTypeAction)
	return ok && l.ttype == o.ttype
}

// LexerChannelAction overrides the channel assigned to the pending token.
type LexerChannelAction struct {
	BaseLexerAction
	channel int
}

func NewLexerChannelAction(channel int) *LexerChannelAction {
	return &LexerChannelAction{BaseLexerAction{actionType: LexerActionTypeChannel}, channel}
}

func (l *LexerChannelAction) execute(lexer Lexer) { lexer.SetChannel(l.channel) }
func (l *LexerChannelAction) Hash() int {
	h := murmurInit(1)
	h = murmurUpdate(h, l.actionType)
	h = murmurUpdate(h, l.channel)
	return murmurFinish(h, 2)
}
func (l *LexerChannelAction) Equals(other LexerAction) bool {
	o, ok := other.(*LexerChannelAction)
	return ok && l.channel == o.channel
}

// LexerModeAction switches the active lexer mode outright (not push/pop).
type LexerModeAction struct {
	BaseLexerAction
	mode int
}

func NewLexerModeAction(mode int) *LexerModeAction {
	return &LexerModeAction{BaseLexerAction{actionType: LexerActionTypeMode}, mode}
}

func (l *LexerModeAction) execute(lexer Lexer) { lexer.SetMode(l.mode) }
func (l *LexerModeAction) Hash() int {
	h := murmurInit(1)
	h = murmurUpdate(h, l.actionType)
	h = murmurUpdate(h, l.mode)
	return murmurFinish(h, 2)
}
func (l *LexerModeAction) Equals(other LexerAction) bool {
	o, ok := other.(*LexerModeAction)
	return ok && l.mode == o.mode
}

// LexerPushModeAction pushes the current mode and switches to mode.
type LexerPushModeAction struct {
	BaseLexerAction
	mode int
}

func NewLexerPushModeAction(mode int) *LexerPushModeAction {
	return &LexerPushModeAction{BaseLexerAction{actionType: LexerActionTypePushMode}, mode}
}

func (l *LexerPushModeAction) execute(lexer Lexer) { lexer.PushMode(l.mode) }
func (l *LexerPushModeAction) Hash() int {
	h := murmurInit(1)
	h = murmurUpdate(h, l.actionType)
	h = murmurUpdate(h, l.mode)
	return murmurFinish(h, 2)
}
func (l *LexerPushModeAction) Equals(other LexerAction) bool {
	o, ok := other.(*LexerPushModeAction)
	return ok && l.mode == o.mode
}

// LexerPopModeAction pops the mode stack. Popping an empty stack is a
// fatal invariant violation.
type LexerPopModeAction struct{ BaseLexerAction }

var LexerPopModeActionINSTANCE = &LexerPopModeAction{BaseLexerAction{actionType: LexerActionTypePopMode}}

func NewLexerPopModeAction() *LexerPopModeAction { return LexerPopModeActionINSTANCE }

func (l *LexerPopModeAction) execute(lexer Lexer) { lexer.PopMode() }
func (l *LexerPopModeAction) Equals(other LexerAction) bool {
	_, ok := other.(*LexerPopModeAction)
	return ok
}

// LexerCustomAction invokes a generated lexer's embedded action code.
// Its effect may depend on the char offset at which it runs, so it is
// always position-dependent.
type LexerCustomAction struct {
	BaseLexerAction
	ruleIndex, actionIndex int
}

func NewLexerCustomAction(ruleIndex, actionIndex int) *LexerCustomAction {
	return &LexerCustomAction{BaseLexerAction{actionType: LexerActionTypeCustom, isPositionDependent: true}, ruleIndex, actionIndex}
}

func (l *LexerCustomAction) execute(lexer Lexer) { lexer.Action(nil, l.ruleIndex, l.actionIndex) }
func (l *LexerCustomAction) Hash() int {
	h := murmurInit(1)
	h = murmurUpdate(h, l.actionType)
	h = murmurUpdate(h, l.ruleIndex)
	h = murmurUpdate(h, l.actionIndex)
	return murmurFinish(h, 3)
}
func (l *LexerCustomAction) Equals(other LexerAction) bool {
	o, ok := other.(*LexerCustomAction)
	return ok && l.ruleIndex == o.ruleIndex && l.actionIndex == o.actionIndex
}

// LexerIndexedCustomAction wraps a position-dependent action together
// with its char offset from the token start. Its own execute only
// delegates to the wrapped action; LexerActionExecutor.execute does the
// seek to that offset first.
type LexerIndexedCustomAction struct {
	BaseLexerAction
	offset int
	action LexerAction
}

func NewLexerIndexedCustomAction(offset int, action LexerAction) *LexerIndexedCustomAction {
	return &LexerIndexedCustomAction{BaseLexerAction{actionType: action.getActionType(), isPositionDependent: true}, offset, action}
}

func (l *LexerIndexedCustomAction) execute(lexer Lexer) { l.action.execute(lexer) }
func (l *LexerIndexedCustomAction) Hash() int {
	h := murmurInit(1)
	h = murmurUpdate(h, l.offset)
	h = murmurUpdate(h, l.action.Hash())
	return murmurFinish(h, 2)
}
func (l *LexerIndexedCustomAction) Equals(other LexerAction) bool {
	o, ok := other.(*LexerIndexedCustomAction)
	return ok && l.offset == o.offset && l.action.Equals(o.action)
}
