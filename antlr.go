// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

// Package antlr implements the adaptive LL(*) prediction engine that
// generated lexers and parsers delegate to at run time: the ATN graph
// produced by the offline grammar compiler, the prediction-context graph,
// the ATN configuration closure, the lexer and parser ATN simulators, and
// the per-decision DFA cache that memoizes previously computed predictions.
//
// The package does not compile grammars. It consumes an already-serialized
// ATN (see [NewATNDeserializer]) and a character or token stream, and
// produces tokens ([Lexer]) or a parse tree ([Parser]).
package antlr

// RuntimeVersion is compared against the version a generated recognizer
// records at tool-compile time. See [CheckVersion].
const RuntimeVersion = "4.13.1"
