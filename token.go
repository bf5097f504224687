// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// TokenDefaultChannel carries tokens that reach the parser; TokenHiddenChannel
// carries whitespace/comments that are skipped by the parser but remain
// available to the token stream.
const (
	TokenDefaultChannel = 0
	TokenHiddenChannel  = 1
)

// Token is the contract every stream element built by a [TokenFactory]
// satisfies: type, channel, start/stop char offsets, line, column,
// tokenIndex, and a (tokenSource, inputStream) provenance pair.
type Token interface {
	GetSource() TokenSourceCharStreamPair
	GetTokenType() int
	GetChannel() int
	GetStart() int
	GetStop() int
	GetLine() int
	GetColumn() int
	GetText() string
	SetText(s string)
	GetTokenIndex() int
	SetTokenIndex(v int)
	GetTokenSource() TokenSource
	GetInputStream() CharStream
	String() string
}

// TokenSourceCharStreamPair is the provenance pair recorded on every
// token.
type TokenSourceCharStreamPair struct {
	TokenSource TokenSource
	CharStream  CharStream
}

// BaseToken is the concrete [Token] implementation every lexer emits.
type BaseToken struct {
	source     TokenSourceCharStreamPair
	tokenType  int
	channel    int
	start      int
	stop       int
	tokenIndex int
	line       int
	column     int
	text       string
	readOnly   bool
}

// NewCommonToken constructs a token of the given type sourced from the
// given provenance pair with the given start/stop char offsets; line and
// column come from the token source when there is one.
func NewCommonToken(source TokenSourceCharStreamPair, tokenType, channel, start, stop int) *BaseToken {
	t := &BaseToken{
		source:     source,
		tokenType:  tokenType,
		channel:    channel,
		start:      start,
		stop:       stop,
		tokenIndex: -1,
	}
	if source.TokenSource != nil {
		t.line = source.TokenSource.GetLine()
		t.column = source.TokenSource.GetCharPositionInLine()
	} else {
		t.column = -1
	}
	return t
}

func (b *BaseToken) GetSource() TokenSourceCharStreamPair { return b.source }
func (b *BaseToken) GetTokenType() int                    { return b.tokenType }
func (b *BaseToken) GetChannel() int                      { return b.channel }
func (b *BaseToken) GetStart() int                        { return b.start }
func (b *BaseToken) GetStop() int                         { return b.stop }
func (b *BaseToken) GetLine() int                         { return b.line }
func (b *BaseToken) GetColumn() int                       { return b.column }
func (b *BaseToken) GetTokenIndex() int                   { return b.tokenIndex }
func (b *BaseToken) SetTokenIndex(v int)                  { b.tokenIndex = v }
func (b *BaseToken) GetTokenSource() TokenSource          { return b.source.TokenSource }
func (b *BaseToken) GetInputStream() CharStream           { return b.source.CharStream }

func (b *BaseToken) SetText(s string) { b.text = s }

// GetText lazily computes the token's text from its backing char stream
// when no text has been explicitly set (e.g. by a lexer SetText action).
func (b *BaseToken) GetText() string {
	if b.text != "" {
		return b.text
	}
	input := b.GetInputStream()
	if input == nil {
		return ""
	}
	n := input.Size()
	if b.start < n && b.stop < n {
		return input.GetText(b.start, b.stop)
	}
	return "<EOF>"
}

func (b *BaseToken) String() string {
	txt := b.GetText()
	return fmt.Sprintf("[@%d,%d:%d='%s',<%d>,%d:%d]", b.tokenIndex, b.start, b.stop, txt, b.tokenType, b.line, b.column)
}
