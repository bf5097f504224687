// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// CharStream is a random-access, markable stream of characters (runes),
// consumed by [Lexer] and the [LexerATNSimulator]. It supports index,
// LA(k), mark/release (nested, LIFO), seek, consume, size and
// getText(a,b).
type CharStream interface {
	IntStream

	GetText(int, int) string
	GetTextFromInterval(*Interval) string
}
