// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// TokenSource is implemented by [Lexer]: anything a [TokenStream] can pull
// tokens from one at a time.
type TokenSource interface {
	NextToken() Token
	GetLine() int
	GetCharPositionInLine() int
	GetInputStream() CharStream
	GetSourceName() string
	SetTokenFactory(factory TokenFactory)
	GetTokenFactory() TokenFactory
}

// TokenFactory mints [Token] values. Generated lexers may install a custom
// factory; [CommonTokenFactory] is the default every [BaseLexer] starts
// with.
type TokenFactory interface {
	Create(source TokenSourceCharStreamPair, ttype int, text string, channel, start, stop, line, column int) Token
}

// CommonTokenFactory is the default [TokenFactory]. When CopyText is
// false (the default), a token's text is computed lazily from its backing
// char stream rather than copied eagerly at creation time.
type CommonTokenFactory struct {
	copyText bool
}

// NewCommonTokenFactory returns a factory. copyText controls whether
// Create eagerly snapshots token text versus deferring to the input
// stream.
func NewCommonTokenFactory(copyText bool) *CommonTokenFactory {
	return &CommonTokenFactory{copyText: copyText}
}

// CommonTokenFactoryDEFAULT is shared by every lexer that does not
// install a custom factory.
var CommonTokenFactoryDEFAULT = NewCommonTokenFactory(false)

func (c *CommonTokenFactory) Create(source TokenSourceCharStreamPair, ttype int, text string, channel, start, stop, line, column int) Token {
	t := NewCommonToken(source, ttype, channel, start, stop)
	t.line = line
	t.column = column
	if text != "" {
		t.SetText(text)
	} else if c.copyText && source.CharStream != nil {
		t.SetText(t.GetText())
	}
	return t
}
