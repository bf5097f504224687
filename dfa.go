// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "sync"

// DFA is the per-decision cache of previously computed predictions.
// States accumulate monotonically for the lifetime of the parser; a
// single mutex serializes writers since misses (the path that mutates
// the DFA) are already the slow path relative to a cache hit.
type DFA struct {
	mu sync.Mutex

	states    map[int]*DFAState
	byHash    map[int][]*DFAState
	numStates int

	s0     *DFAState
	s0full *DFAState

	decision      int
	atnStartState DecisionState

	precedenceDfa bool
}

// NewDFA returns an empty DFA for the decision atnStartState represents.
// atn is only consulted here, to classify the decision via
// ATN.IsPrecedenceDecision; the DFA itself never needs to reach back into
// the grammar graph again afterward.
func NewDFA(atn *ATN, atnStartState DecisionState, decision int) *DFA {
	return &DFA{
		states:        make(map[int]*DFAState),
		byHash:        make(map[int][]*DFAState),
		decision:      decision,
		atnStartState: atnStartState,
		precedenceDfa: atn.IsPrecedenceDecision(decision),
	}
}

// getPrecedenceStartState returns the s0 state guarding the given
// precedence level, or nil if none has been computed yet. Only valid on a
// precedence DFA.
func (d *DFA) getPrecedenceStartState(precedence int, fullCtx bool) *DFAState {
	d.mu.Lock()
	defer d.mu.Unlock()
	start := d.s0
	if fullCtx {
		start = d.s0full
	}
	if start == nil || start.edges == nil {
		return nil
	}
	return start.edges[precedence+1]
}

func (d *DFA) setPrecedenceStartState(precedence int, fullCtx bool, state *DFAState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	start := d.s0
	if fullCtx {
		start = d.s0full
	}
	if start == nil {
		start = NewDFAState(-1, NewATNConfigSet(false))
		if fullCtx {
			d.s0full = start
		} else {
			d.s0 = start
		}
	}
	start.setEdge(precedence+1, state)
}

func (d *DFA) getS0() *DFAState     { return d.s0 }
func (d *DFA) setS0(s *DFAState)    { d.s0 = s }
func (d *DFA) getS0full() *DFAState { return d.s0full }
func (d *DFA) setS0full(s *DFAState) { d.s0full = s }

// addState registers state under its structural config-set identity,
// returning the canonical (possibly pre-existing) state: look up by
// structural config-set equality, and if one is already present, return
// it instead of appending a duplicate.
func (d *DFA) addState(state *DFAState) *DFAState {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := state.Hash()
	for _, s := range d.byHash[h] {
		if s.Equals(state) {
			return s
		}
	}
	state.stateNumber = d.numStates
	d.numStates++
	d.states[state.stateNumber] = state
	d.byHash[h] = append(d.byHash[h], state)
	return state
}

func (d *DFA) getNumStates() int { return d.numStates }

func (d *DFA) sortedStates() []*DFAState {
	out := make([]*DFAState, 0, len(d.states))
	for _, s := range d.states {
		out = append(out, s)
	}
	// Stable by stateNumber, the assignment order, for deterministic
	// serialization.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].stateNumber > out[j].stateNumber; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func (d *DFA) String(literalNames, symbolicNames []string) string {
	if d.s0 == nil {
		return ""
	}
	return NewDFASerializer(d, literalNames, symbolicNames).String()
}
