// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// CommonTokenStream is the token stream every generated parser uses by
// default: it buffers every token like [BufferedTokenStream] but skips
// over tokens not on Channel when advancing LT/Consume, so the parser
// never sees whitespace/comments routed to the hidden channel.
type CommonTokenStream struct {
	*BufferedTokenStream
	channel int
}

// NewCommonTokenStream returns a stream exposing only tokens on channel.
func NewCommonTokenStream(lexer TokenSource, channel int) *CommonTokenStream {
	return &CommonTokenStream{
		BufferedTokenStream: NewBufferedTokenStream(lexer),
		channel:             channel,
	}
}

func (c *CommonTokenStream) adjustSeekIndex(i int) int {
	return c.nextTokenOnChannel(i)
}

func (c *CommonTokenStream) nextTokenOnChannel(i int) int {
	c.sync(i)
	if i >= len(c.tokens) {
		return len(c.tokens) - 1
	}
	for c.tokens[i].GetChannel() != c.channel {
		if c.tokens[i].GetTokenType() == TokenEOF {
			return i
		}
		i++
		c.sync(i)
	}
	return i
}

func (c *CommonTokenStream) previousTokenOnChannel(i int) int {
	for i >= 0 && c.tokens[i].GetChannel() != c.channel {
		i--
	}
	return i
}

func (c *CommonTokenStream) LT(k int) Token {
	c.lazyInit()
	if k == 0 {
		return nil
	}
	if k < 0 {
		return c.LB(-k)
	}
	i := c.index
	n := 1
	for n < k {
		if c.sync(i + 1) {
			i = c.nextTokenOnChannel(i + 1)
		}
		n++
	}
	if i >= len(c.tokens) {
		return c.tokens[len(c.tokens)-1]
	}
	return c.tokens[i]
}

func (c *CommonTokenStream) LB(k int) Token {
	if k == 0 || c.index-k < 0 {
		return nil
	}
	i := c.index
	n := 1
	for n <= k && i > 0 {
		i = c.previousTokenOnChannel(i - 1)
		n++
	}
	if i < 0 {
		return nil
	}
	return c.tokens[i]
}

func (c *CommonTokenStream) Consume() {
	var skipEOF bool
	if c.index >= 0 {
		skipEOF = c.tokens[c.index].GetTokenType() == TokenEOF
	}
	if !c.sync(c.index+1) && skipEOF {
		invariantViolation("cannot consume past EOF")
	}
	i := c.nextTokenOnChannel(c.index + 1)
	if i < len(c.tokens) {
		c.index = i
	}
}

func (c *CommonTokenStream) setup() {
	c.index = c.nextTokenOnChannel(0)
}

// lazyInit shadows BufferedTokenStream.lazyInit: Go has no virtual
// dispatch through an embedded struct, so CommonTokenStream must re-route
// first-access initialization to its own channel-aware setup rather than
// the embedded type's.
func (c *CommonTokenStream) lazyInit() {
	if c.index == -1 {
		c.sync(0)
		c.setup()
	}
}
