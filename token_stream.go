// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// TokenStream is a markable, random-access stream of [Token] values
// consumed by [Parser]. It offers the same as [IntStream] plus get(i) by
// absolute index and LT(k) returning tokens (LT(-1) is the last consumed
// token).
type TokenStream interface {
	IntStream

	LT(k int) Token
	Get(index int) Token
	GetTokenSource() TokenSource
	GetTextRange(start, stop int) string
	GetAllText() string
	GetTextFromRuleContext(RuleContext) string
	GetTextFromTokens(Token, Token) string
}
