// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// DFASerializer renders a [DFA] as a line-per-state human-readable dump,
// the kind of introspection `-Dantlr4.debug`-style tooling relies on to
// inspect a decision's cache after a run.
type DFASerializer struct {
	dfa           *DFA
	literalNames  []string
	symbolicNames []string
}

func NewDFASerializer(dfa *DFA, literalNames, symbolicNames []string) *DFASerializer {
	return &DFASerializer{dfa: dfa, literalNames: literalNames, symbolicNames: symbolicNames}
}

func (d *DFASerializer) String() string {
	if d.dfa.s0 == nil {
		return ""
	}
	var sb strings.Builder
	for _, s := range d.dfa.sortedStates() {
		keys := maps.Keys(s.edges)
		sort.Ints(keys)
		for _, symbol := range keys {
			target := s.edges[symbol]
			if target == nil || target.stateNumber == 0x7FFFFFFF {
				continue
			}
			sb.WriteString(d.stateString(s))
			sb.WriteString("-")
			sb.WriteString(d.symbolLabel(symbol))
			sb.WriteString("->")
			sb.WriteString(d.stateString(target))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (d *DFASerializer) symbolLabel(symbol int) string {
	iset := NewIntervalSet()
	iset.AddOne(symbol - 1)
	return iset.StringVerbose(d.literalNames, d.symbolicNames, false)
}

func (d *DFASerializer) stateString(s *DFAState) string {
	label := "s" + itoa(s.stateNumber)
	if s.isAcceptState {
		label += "=>" + itoa(s.prediction)
	}
	return label
}
