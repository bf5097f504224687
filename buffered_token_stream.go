// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "strings"

// BufferedTokenStream buffers every token the token source produces, so
// its size is always known. [CommonTokenStream] specializes it to filter
// hidden-channel tokens out of the stream the parser sees.
type BufferedTokenStream struct {
	tokenSource TokenSource
	tokens      []Token
	index       int
	fetchedEOF  bool
}

// NewBufferedTokenStream returns a stream pulling from source.
func NewBufferedTokenStream(source TokenSource) *BufferedTokenStream {
	return &BufferedTokenStream{tokenSource: source, index: -1}
}

func (b *BufferedTokenStream) GetTokenSource() TokenSource { return b.tokenSource }

func (b *BufferedTokenStream) Index() int { return b.index }

func (b *BufferedTokenStream) Mark() int { return 0 }

func (b *BufferedTokenStream) Release(marker int) {}

func (b *BufferedTokenStream) GetSourceName() string { return b.tokenSource.GetSourceName() }

func (b *BufferedTokenStream) fetch(n int) int {
	if b.fetchedEOF {
		return 0
	}
	fetched := 0
	for i := 0; i < n; i++ {
		t := b.tokenSource.NextToken()
		t.SetTokenIndex(len(b.tokens))
		b.tokens = append(b.tokens, t)
		fetched++
		if t.GetTokenType() == TokenEOF {
			b.fetchedEOF = true
			break
		}
	}
	return fetched
}

func (b *BufferedTokenStream) lazyInit() {
	if b.index == -1 {
		b.setup()
	}
}

func (b *BufferedTokenStream) setup() {
	b.sync(0)
	b.index = 0
}

// sync makes sure token i has been fetched.
func (b *BufferedTokenStream) sync(i int) bool {
	n := i - len(b.tokens) + 1
	if n > 0 {
		fetched := b.fetch(n)
		return fetched >= n
	}
	return true
}

func (b *BufferedTokenStream) Get(index int) Token {
	b.lazyInit()
	return b.tokens[index]
}

func (b *BufferedTokenStream) Consume() {
	var skipEOF bool
	if b.index >= 0 {
		skipEOF = b.tokens[b.index].GetTokenType() == TokenEOF
	}
	if !b.sync(b.index + 1) && skipEOF {
		invariantViolation("cannot consume past EOF")
	}
	if b.index+1 < len(b.tokens) {
		b.index++
	}
}

func (b *BufferedTokenStream) LA(k int) int {
	t := b.LT(k)
	if t == nil {
		return TokenEOF
	}
	return t.GetTokenType()
}

// LT returns the k'th token relative to the current position; LT(-1) is
// the last consumed token, LT(1) is the next unconsumed token.
func (b *BufferedTokenStream) LT(k int) Token {
	b.lazyInit()
	if k == 0 {
		return nil
	}
	if k < 0 {
		return b.LB(-k)
	}
	i := b.index + k - 1
	b.sync(i)
	if i >= len(b.tokens) {
		return b.tokens[len(b.tokens)-1]
	}
	return b.tokens[i]
}

func (b *BufferedTokenStream) LB(k int) Token {
	if b.index-k < 0 {
		return nil
	}
	return b.tokens[b.index-k]
}

func (b *BufferedTokenStream) Size() int {
	return len(b.tokens)
}

func (b *BufferedTokenStream) Seek(index int) {
	b.lazyInit()
	b.index = index
}

func (b *BufferedTokenStream) GetAllText() string {
	b.Fill()
	return b.GetTextRange(0, len(b.tokens)-1)
}

func (b *BufferedTokenStream) GetTextRange(start, stop int) string {
	b.lazyInit()
	if start < 0 || stop < 0 {
		return ""
	}
	b.sync(stop)
	if stop >= len(b.tokens) {
		stop = len(b.tokens) - 1
	}
	var sb strings.Builder
	for i := start; i <= stop; i++ {
		t := b.tokens[i]
		if t.GetTokenType() == TokenEOF {
			break
		}
		sb.WriteString(t.GetText())
	}
	return sb.String()
}

func (b *BufferedTokenStream) GetTextFromRuleContext(ctx RuleContext) string {
	i := ctx.GetSourceInterval()
	return b.GetTextRange(i.Start, i.Stop)
}

func (b *BufferedTokenStream) GetTextFromTokens(start, stop Token) string {
	if start == nil || stop == nil {
		return ""
	}
	return b.GetTextRange(start.GetTokenIndex(), stop.GetTokenIndex())
}

// Fill pulls every remaining token from the source, including EOF.
func (b *BufferedTokenStream) Fill() {
	b.lazyInit()
	for b.fetch(1000) == 1000 {
	}
}

// GetTokens returns the raw buffered tokens in [start, stop], optionally
// filtered to the given set of token types.
func (b *BufferedTokenStream) GetTokens(start, stop int, types *IntervalSet) []Token {
	if start < 0 || stop >= len(b.tokens) {
		return nil
	}
	var out []Token
	for i := start; i <= stop; i++ {
		t := b.tokens[i]
		if types == nil || types.Contains(t.GetTokenType()) {
			out = append(out, t)
		}
	}
	return out
}
