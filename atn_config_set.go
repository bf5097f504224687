// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// configKey is the dedup key: search for an existing config with the
// same (state, alt, semanticContext). Context is deliberately excluded
// from the key — on a key collision the two configs' contexts are
// merged rather than treated as distinct.
type configKey struct {
	state  int
	alt    int
	sem    int
}

// ATNConfigSet is the core simulation state: a dedup'd, insertion-ordered
// collection of [ATNConfig] plus the bookkeeping flags the
// adaptive-prediction loop consults every iteration.
type ATNConfigSet struct {
	configLookup map[configKey][]*ATNConfig
	configs      []*ATNConfig

	fullCtx              bool
	hasSemanticContext   bool
	dipsIntoOuterContext bool
	uniqueAlt            int
	conflictingAlts      *BitSet
	readonly             bool

	cachedHash int
}

// NewATNConfigSet returns an empty set; fullCtx selects whether this set
// belongs to an SLL or an LL simulation.
func NewATNConfigSet(fullCtx bool) *ATNConfigSet {
	return &ATNConfigSet{
		configLookup: make(map[configKey][]*ATNConfig),
		fullCtx:      fullCtx,
		uniqueAlt:    ATNInvalidAltNumber,
		cachedHash:   -1,
	}
}

func keyFor(c *ATNConfig) configKey {
	return configKey{state: c.state.GetStateNumber(), alt: c.alt, sem: c.semanticContext.Hash()}
}

// Add inserts config, merging its [PredictionContext] into an existing
// entry on a dedup collision and taking the max of reachesIntoOuterContext.
// mc is the caller's per-closure-call merge cache; it may be nil.
func (s *ATNConfigSet) Add(config *ATNConfig, mc *mergeCache) bool {
	if s.readonly {
		invariantViolation("attempt to mutate a frozen ATNConfigSet")
	}
	if config.semanticContext != SemanticContextNone {
		s.hasSemanticContext = true
	}
	if config.GetReachesIntoOuterContext() > 0 {
		s.dipsIntoOuterContext = true
	}

	k := keyFor(config)
	bucket := s.configLookup[k]
	for _, existing := range bucket {
		if existing.context != nil && config.context != nil && existing.context.Equals(config.context) {
			// Exact duplicate; still fold the outer-context counter.
			if config.GetReachesIntoOuterContext() > existing.GetReachesIntoOuterContext() {
				existing.SetReachesIntoOuterContext(config.GetReachesIntoOuterContext())
			}
			return false
		}
	}
	for _, existing := range bucket {
		// rootIsWildcard is always false here: this merge summarizes two
		// real call-stack suffixes sharing a (state, alt, semanticContext)
		// bucket, not an SLL-vs-full-context reduction.
		merged := merge(existing.context, config.context, false, mc)
		existing.SetContext(merged)
		if config.GetReachesIntoOuterContext() > existing.GetReachesIntoOuterContext() {
			existing.SetReachesIntoOuterContext(config.GetReachesIntoOuterContext())
		}
		return false
	}

	s.configLookup[k] = append(bucket, config)
	s.configs = append(s.configs, config)
	s.cachedHash = -1
	return true
}

// AddAll adds every config from other.
func (s *ATNConfigSet) AddAll(other *ATNConfigSet, mc *mergeCache) {
	for _, c := range other.configs {
		s.Add(c, mc)
	}
}

func (s *ATNConfigSet) GetItems() []*ATNConfig { return s.configs }

func (s *ATNConfigSet) Length() int { return len(s.configs) }

func (s *ATNConfigSet) IsEmpty() bool { return len(s.configs) == 0 }

// OptimizeConfigs drops reachesIntoOuterContext bookkeeping once it is no
// longer needed. Kept as a hook for callers that expect it; this
// implementation is a no-op since the field is cheap to retain.
func (s *ATNConfigSet) OptimizeConfigs() {}

// SetReadonly freezes the set; any subsequent Add fails with an
// invariant-violation error.
func (s *ATNConfigSet) SetReadonly(v bool) { s.readonly = v }
func (s *ATNConfigSet) ReadOnly() bool     { return s.readonly }

func (s *ATNConfigSet) GetStates() map[int]ATNState {
	out := make(map[int]ATNState, len(s.configs))
	for _, c := range s.configs {
		out[c.state.GetStateNumber()] = c.state
	}
	return out
}

// GetAlts returns a [BitSet] of every alt number present.
func (s *ATNConfigSet) GetAlts() *BitSet {
	b := NewBitSet()
	for _, c := range s.configs {
		b.add(c.alt)
	}
	return b
}

func (s *ATNConfigSet) GetPredicates() []SemanticContext {
	var out []SemanticContext
	for _, c := range s.configs {
		if c.semanticContext != SemanticContextNone {
			out = append(out, c.semanticContext)
		}
	}
	return out
}

func (s *ATNConfigSet) Hash() int {
	if s.cachedHash != -1 {
		return s.cachedHash
	}
	h := murmurInit(1)
	for _, c := range s.configs {
		h = murmurUpdate(h, c.Hash())
	}
	h = murmurFinish(h, len(s.configs))
	s.cachedHash = h
	return h
}

// Equals compares the two sets' config membership together with their
// fullCtx and uniqueAlt fields; DFAState's comparator relies on this to
// dedup states structurally.
func (s *ATNConfigSet) Equals(other *ATNConfigSet) bool {
	if other == nil || len(s.configs) != len(other.configs) {
		return false
	}
	if s.fullCtx != other.fullCtx || s.uniqueAlt != other.uniqueAlt {
		return false
	}
	seen := make([]bool, len(other.configs))
outer:
	for _, c := range s.configs {
		for j, o := range other.configs {
			if seen[j] {
				continue
			}
			if c.state.GetStateNumber() == o.state.GetStateNumber() && c.alt == o.alt &&
				c.semanticContext.Equals(o.semanticContext) &&
				((c.context == nil && o.context == nil) || (c.context != nil && o.context != nil && c.context.Equals(o.context))) {
				seen[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}

func (s *ATNConfigSet) String() string {
	str := "["
	for i, c := range s.configs {
		if i > 0 {
			str += ", "
		}
		str += c.String()
	}
	str += "]"
	return str
}
