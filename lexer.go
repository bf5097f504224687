// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// Lexer token-type sentinels a generated recognizer's actions return from
// the switch compiled from `skip`/`more`/`channel`/`type`/`mode` grammar
// commands, and the default lexer mode every mode stack starts in.
const (
	LexerDefaultMode  = 0
	LexerSkip         = -3
	LexerMore         = -2
	LexerDefaultTokenChannel = TokenDefaultChannel
	LexerHidden       = TokenHiddenChannel
	LexerMinCharValue = 0x0000
	LexerMaxCharValue = 0x10FFFF
)

// Lexer drives a LexerATNSimulator over a CharStream, emitting one Token
// per NextToken call.
type Lexer interface {
	Recognizer
	TokenSource

	Emit() Token
	SetChannel(int)
	SetType(int)
	SetMode(int)
	PushMode(int)
	PopMode() int
	Skip()
	More()
	GetInputStream() CharStream
	GetInterpreter() *LexerATNSimulator
	GetText() string
	NotifyListeners(e *LexerNoViableAltException)
}

// BaseLexer implements the nextToken state machine: read characters via
// the LexerATNSimulator until an accept state's longest match is found,
// then build and emit the token, handling SKIP/MORE sentinels by
// restarting the outer loop without/with the accumulated text
// respectively.
type BaseLexer struct {
	*BaseRecognizer

	Interpreter *LexerATNSimulator

	input CharStream

	factory       TokenFactory
	tokenFactorySourcePair TokenSourceCharStreamPair

	Virt Lexer // set by embedder so overridden NextToken/Emit/Sempred are reached through the interface, not the base struct

	token      Token
	tokenStartCharIndex int
	tokenStartLine      int
	tokenStartColumn    int
	text                string

	hitEOF bool
	channel int
	ttype   int

	modeStack []int
	mode      int
}

func NewBaseLexer(input CharStream) *BaseLexer {
	l := &BaseLexer{
		BaseRecognizer: NewBaseRecognizer(),
		input:          input,
		factory:        CommonTokenFactoryDEFAULT,
		ttype:          TokenInvalidType,
		channel:        TokenDefaultChannel,
		mode:           LexerDefaultMode,
		tokenStartCharIndex: -1,
	}
	l.tokenFactorySourcePair = TokenSourceCharStreamPair{TokenSource: l, CharStream: input}
	return l
}

func (b *BaseLexer) GetInputStream() CharStream           { return b.input }
func (b *BaseLexer) GetSourceName() string                { return b.input.GetSourceName() }
func (b *BaseLexer) GetInterpreter() *LexerATNSimulator   { return b.Interpreter }
func (b *BaseLexer) GetATN() *ATN                         { return b.Interpreter.atn }
func (b *BaseLexer) GetCharPositionInLine() int           { return b.Interpreter.GetCharPositionInLine() }
func (b *BaseLexer) GetLine() int                         { return b.Interpreter.GetLine() }
func (b *BaseLexer) GetTokenFactory() TokenFactory         { return b.factory }
func (b *BaseLexer) SetTokenFactory(f TokenFactory)        { b.factory = f }

func (b *BaseLexer) virt() Lexer {
	if b.Virt != nil {
		return b.Virt
	}
	return b
}

// NextToken is the state machine: IDLE -> MATCHING -> (ACCEPT |
// SKIP_RESTART | MORE_CONTINUE | NO_VIABLE), pinning a terminal
// "hit EOF" flag once observed so subsequent calls emit EOF with stable
// indices rather than re-running the simulator against an exhausted
// stream.
func (b *BaseLexer) NextToken() Token {
	if b.input == nil {
		panic("NextToken requires a non-nil input stream")
	}
	tokenStartMarker := b.input.Mark()
	defer b.input.Release(tokenStartMarker)

	for {
		if b.hitEOF {
			b.emitEOF()
			return b.token
		}
		b.token = nil
		b.channel = TokenDefaultChannel
		b.tokenStartCharIndex = b.input.Index()
		b.tokenStartColumn = b.Interpreter.GetCharPositionInLine()
		b.tokenStartLine = b.Interpreter.GetLine()
		b.text = ""

		continueOuter := false
		for {
			b.ttype = TokenInvalidType

			noViable := b.matchOneOrNoViable()
			if noViable != nil {
				b.virt().NotifyListeners(noViable)
				b.Skip()
			}

			if b.input.LA(1) == TokenEOF {
				b.hitEOF = true
			}
			if b.ttype == LexerSkip {
				continueOuter = true
				break
			}
			if b.ttype != LexerMore {
				break
			}
		}

		if continueOuter {
			continue
		}
		if b.ttype == TokenEOF && b.token == nil {
			b.emitEOF()
			return b.token
		}
		if b.token == nil {
			b.virt().Emit()
		}
		return b.token
	}
}

// matchOneOrNoViable runs one Interpreter.Match call, converting a panic
// carrying *LexerNoViableAltException into a returned value so the caller
// can notify listeners and skip the offending character without a
// recover() at every call site.
func (b *BaseLexer) matchOneOrNoViable() (noViable *LexerNoViableAltException) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*LexerNoViableAltException)
			if !ok {
				panic(r)
			}
			noViable = e
		}
	}()
	b.ttype = b.Interpreter.Match(b.input, b.Interpreter.mode)
	return nil
}

func (b *BaseLexer) Skip() { b.ttype = LexerSkip }
func (b *BaseLexer) More() { b.ttype = LexerMore }

func (b *BaseLexer) SetMode(m int) { b.mode = m; b.Interpreter.mode = m }
func (b *BaseLexer) PushMode(m int) {
	b.modeStack = append(b.modeStack, b.mode)
	b.SetMode(m)
}
func (b *BaseLexer) PopMode() int {
	if len(b.modeStack) == 0 {
		invariantViolation("cannot pop an empty lexer mode stack")
	}
	m := b.modeStack[len(b.modeStack)-1]
	b.modeStack = b.modeStack[:len(b.modeStack)-1]
	b.SetMode(m)
	return b.mode
}

func (b *BaseLexer) SetChannel(c int) { b.channel = c }
func (b *BaseLexer) SetType(t int)    { b.ttype = t }

func (b *BaseLexer) GetText() string {
	if b.text != "" {
		return b.text
	}
	return b.input.GetText(b.tokenStartCharIndex, b.input.Index()-1)
}

func (b *BaseLexer) SetText(s string) { b.text = s }

// Emit constructs a token covering [tokenStartCharIndex, input.Index()-1]
// with the type/channel NextToken's loop settled on.
func (b *BaseLexer) Emit() Token {
	t := b.factory.Create(b.tokenFactorySourcePair, b.ttype, b.text, b.channel, b.tokenStartCharIndex, b.input.Index()-1, b.tokenStartLine, b.tokenStartColumn)
	b.token = t
	return t
}

func (b *BaseLexer) emitEOF() Token {
	cpos := b.GetCharPositionInLine()
	t := b.factory.Create(b.tokenFactorySourcePair, TokenEOF, "", TokenDefaultChannel, b.input.Index(), b.input.Index()-1, b.GetLine(), cpos)
	b.token = t
	return t
}

func (b *BaseLexer) NotifyListeners(e *LexerNoViableAltException) {
	text := b.input.GetTextFromInterval(NewInterval(b.tokenStartCharIndex, b.input.Index()))
	msg := fmt.Sprintf("token recognition error at: '%s'", text)
	b.GetErrorListenerDispatch().SyntaxError(b.virt(), nil, b.tokenStartLine, b.tokenStartColumn, msg, e)
}

func (b *BaseLexer) Reset() {
	if b.input != nil {
		b.input.Seek(0)
	}
	b.token = nil
	b.ttype = TokenInvalidType
	b.channel = TokenDefaultChannel
	b.tokenStartCharIndex = -1
	b.tokenStartColumn = 0
	b.tokenStartLine = 0
	b.text = ""
	b.hitEOF = false
	b.mode = LexerDefaultMode
	b.modeStack = nil
	if b.Interpreter != nil {
		b.Interpreter.mode = LexerDefaultMode
	}
}
