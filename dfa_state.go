// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// PredPrediction pairs a guarding [SemanticContext] with the alt it
// accepts, used by a predicated accept [DFAState].
type PredPrediction struct {
	pred SemanticContext
	alt  int
}

func NewPredPrediction(pred SemanticContext, alt int) *PredPrediction {
	return &PredPrediction{pred: pred, alt: alt}
}

func (p *PredPrediction) String() string {
	return "(" + p.pred.String() + ", " + itoa(p.alt) + ")"
}

// DFAState is one node of a per-decision [DFA]. Edges are indexed by
// symbol shifted into >=0 space; index 0 is reserved for EOF.
type DFAState struct {
	stateNumber int
	configs     *ATNConfigSet

	edges map[int]*DFAState

	isAcceptState bool
	prediction    int

	lexerActionExecutor *LexerActionExecutor
	requiresFullContext bool
	predicates          []*PredPrediction

	cachedHash int
}

// NewDFAState returns a fresh, non-accepting state wrapping configs.
func NewDFAState(stateNumber int, configs *ATNConfigSet) *DFAState {
	if configs == nil {
		configs = NewATNConfigSet(false)
	}
	d := &DFAState{stateNumber: stateNumber, configs: configs, edges: make(map[int]*DFAState), prediction: ATNInvalidAltNumber}
	d.cachedHash = configs.Hash()
	return d
}

func (d *DFAState) GetAltSet() *BitSet {
	return d.configs.GetAlts()
}

// getEdge looks up an already-shifted edge index: the caller passes
// symbol+1, so EOF (-1) lands at index 0.
func (d *DFAState) getEdge(symbol int) *DFAState {
	return d.edges[symbol]
}

func (d *DFAState) setEdge(symbol int, target *DFAState) {
	d.edges[symbol] = target
}

func (d *DFAState) setPrediction(v int) { d.prediction = v }

func (d *DFAState) Hash() int { return d.cachedHash }

// Equals implements the structural config-set equality DFA state lookup
// relies on.
func (d *DFAState) Equals(other Collectable[*DFAState]) bool {
	o, ok := other.(*DFAState)
	if !ok {
		return false
	}
	if d == o {
		return true
	}
	return d.configs.Equals(o.configs)
}

func (d *DFAState) String() string {
	s := itoa(d.stateNumber) + ":" + d.configs.String()
	if d.isAcceptState {
		s += "=>"
		if len(d.predicates) > 0 {
			s += "predicates"
		} else {
			s += itoa(d.prediction)
		}
	}
	return s
}
