// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ATNType distinguishes a lexer ATN from a parser ATN; it is the first
// discriminator the deserializer reads off the serialized blob.
type ATNType int

const (
	ATNTypeLexer ATNType = iota
	ATNTypeParser
)
