// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"strconv"
	"strings"
)

// Interval is a closed integer range [Start, Stop]. An interval whose
// Stop is less than Start-1 is invalid and never produced by IntervalSet.
type Interval struct {
	Start, Stop int
}

// NewInterval returns the closed interval [start, stop].
func NewInterval(start, stop int) *Interval {
	return &Interval{Start: start, Stop: stop}
}

// Contains reports whether item lies within the closed interval.
func (i *Interval) Contains(item int) bool {
	return item >= i.Start && item <= i.Stop
}

// Length returns the number of integers in the interval.
func (i *Interval) Length() int {
	return i.Stop - i.Start + 1
}

func (i *Interval) String() string {
	if i.Start == i.Stop {
		return strconv.Itoa(i.Start)
	}
	return strconv.Itoa(i.Start) + ".." + strconv.Itoa(i.Stop)
}

// IntervalSet is a compact, ordered set of integer ranges used for
// token/char sets. Ranges are kept sorted, non-overlapping and
// non-adjacent; any mutation re-normalizes the set.
type IntervalSet struct {
	intervals []*Interval
	readOnly  bool
}

// NewIntervalSet returns an empty interval set.
func NewIntervalSet() *IntervalSet {
	return &IntervalSet{intervals: nil}
}

// NewIntervalSetFromIntervals wraps already-normalized, sorted intervals.
// Intended for deserialization, where the source data is already in
// canonical form.
func NewIntervalSetFromIntervals(intervals []*Interval) *IntervalSet {
	return &IntervalSet{intervals: intervals}
}

func (i *IntervalSet) Clone() *IntervalSet {
	n := NewIntervalSet()
	for _, iv := range i.intervals {
		n.intervals = append(n.intervals, NewInterval(iv.Start, iv.Stop))
	}
	return n
}

// AddOne adds a single value to the set.
func (i *IntervalSet) AddOne(v int) {
	i.addInterval(NewInterval(v, v))
}

func (i *IntervalSet) addOne(v int) { i.AddOne(v) }

// addRange adds the closed range [l, h].
func (i *IntervalSet) addRange(l, h int) {
	i.addInterval(NewInterval(l, h))
}

func (i *IntervalSet) addInterval(add *Interval) {
	if i.readOnly {
		invariantViolation("attempt to mutate a frozen IntervalSet")
	}
	if add.Stop < add.Start {
		return
	}
	if len(i.intervals) == 0 {
		i.intervals = append(i.intervals, add)
		return
	}
	merged := make([]*Interval, 0, len(i.intervals)+1)
	inserted := false
	for _, cur := range i.intervals {
		if inserted {
			merged = append(merged, cur)
			continue
		}
		switch {
		case add.Stop < cur.Start-1:
			// add lies entirely before cur, no overlap/adjacency.
			merged = append(merged, add, cur)
			inserted = true
		case add.Start > cur.Stop+1:
			// add lies entirely after cur; keep scanning.
			merged = append(merged, cur)
		default:
			// overlap or adjacency: merge into add and keep scanning
			// against later intervals, since the merged range may now
			// touch them too.
			if cur.Start < add.Start {
				add = NewInterval(cur.Start, add.Stop)
			}
			if cur.Stop > add.Stop {
				add = NewInterval(add.Start, cur.Stop)
			}
		}
	}
	if !inserted {
		merged = append(merged, add)
	}
	i.intervals = merged
}

// addSet adds every interval of other to the set (this is "or" in place).
func (i *IntervalSet) addSet(other *IntervalSet) *IntervalSet {
	if other != nil {
		for _, iv := range other.intervals {
			i.addInterval(NewInterval(iv.Start, iv.Stop))
		}
	}
	return i
}

// Contains reports whether item is a member of the set.
func (i *IntervalSet) Contains(item int) bool {
	lo, hi := 0, len(i.intervals)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		iv := i.intervals[mid]
		switch {
		case item < iv.Start:
			hi = mid - 1
		case item > iv.Stop:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

// length returns the total count of members in the set.
func (i *IntervalSet) length() int {
	n := 0
	for _, iv := range i.intervals {
		n += iv.Length()
	}
	return n
}

// Len is exported for callers outside the package that need set
// cardinality (e.g. NextTokens consumers sizing allocations).
func (i *IntervalSet) Len() int { return i.length() }

// removeOne removes a single value, splitting an interval if necessary.
func (i *IntervalSet) removeOne(v int) {
	if i.readOnly {
		invariantViolation("attempt to mutate a frozen IntervalSet")
	}
	for idx, iv := range i.intervals {
		if v < iv.Start || v > iv.Stop {
			continue
		}
		switch {
		case v == iv.Start && v == iv.Stop:
			i.intervals = append(i.intervals[:idx], i.intervals[idx+1:]...)
		case v == iv.Start:
			iv.Start++
		case v == iv.Stop:
			iv.Stop--
		default:
			right := NewInterval(v+1, iv.Stop)
			iv.Stop = v - 1
			tail := append([]*Interval{right}, i.intervals[idx+1:]...)
			i.intervals = append(i.intervals[:idx+1], tail...)
		}
		return
	}
}

// minElement returns the smallest value in the set, or -1 if empty.
func (i *IntervalSet) minElement() int {
	if len(i.intervals) == 0 {
		return -1
	}
	return i.intervals[0].Start
}

// and returns the intersection of i and other.
func (i *IntervalSet) and(other *IntervalSet) *IntervalSet {
	result := NewIntervalSet()
	if other == nil {
		return result
	}
	a, b := i.intervals, other.intervals
	ai, bi := 0, 0
	for ai < len(a) && bi < len(b) {
		lo := max(a[ai].Start, b[bi].Start)
		hi := min(a[ai].Stop, b[bi].Stop)
		if lo <= hi {
			result.addInterval(NewInterval(lo, hi))
		}
		if a[ai].Stop < b[bi].Stop {
			ai++
		} else {
			bi++
		}
	}
	return result
}

// or returns the union of i and other, leaving both inputs unmodified.
func (i *IntervalSet) or(other *IntervalSet) *IntervalSet {
	result := i.Clone()
	result.addSet(other)
	return result
}

// subtract returns i with every member of other removed.
func (i *IntervalSet) subtract(other *IntervalSet) *IntervalSet {
	if other == nil || len(other.intervals) == 0 {
		return i.Clone()
	}
	result := NewIntervalSet()
	oi := 0
	for _, iv := range i.intervals {
		start := iv.Start
		for oi < len(other.intervals) && other.intervals[oi].Stop < start {
			oi++
		}
		cursor := start
		j := oi
		for j < len(other.intervals) && other.intervals[j].Start <= iv.Stop {
			o := other.intervals[j]
			if o.Start > cursor {
				result.addInterval(NewInterval(cursor, o.Start-1))
			}
			if o.Stop+1 > cursor {
				cursor = o.Stop + 1
			}
			j++
		}
		if cursor <= iv.Stop {
			result.addInterval(NewInterval(cursor, iv.Stop))
		}
	}
	return result
}

// complement returns the complement of i within the closed universe
// [minVal, maxVal].
func (i *IntervalSet) complement(minVal, maxVal int) *IntervalSet {
	universe := NewIntervalSet()
	universe.addInterval(NewInterval(minVal, maxVal))
	return universe.subtract(i)
}

func (i *IntervalSet) isNil() bool { return len(i.intervals) == 0 }

// Equals reports structural equality: same ranges, in the same order.
func (i *IntervalSet) Equals(other *IntervalSet) bool {
	if other == nil || len(i.intervals) != len(other.intervals) {
		return false
	}
	for idx, iv := range i.intervals {
		o := other.intervals[idx]
		if iv.Start != o.Start || iv.Stop != o.Stop {
			return false
		}
	}
	return true
}

func (i *IntervalSet) GetIntervals() []*Interval { return i.intervals }

func (i *IntervalSet) String() string { return i.StringVerbose(nil, nil, false) }

// StringVerbose renders the set using literalNames/symbolicNames for
// single-element intervals when elemsAreChar is false, matching the
// diagnostics the default error listener and DiagnosticErrorListener emit.
func (i *IntervalSet) StringVerbose(literalNames, symbolicNames []string, elemsAreChar bool) string {
	if i.intervals == nil {
		return "{}"
	}
	var sb strings.Builder
	multi := len(i.intervals) > 1 || (len(i.intervals) == 1 && i.intervals[0].Length() > 1)
	if multi {
		sb.WriteString("{")
	}
	first := true
	for _, iv := range i.intervals {
		for v := iv.Start; v <= iv.Stop; v++ {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			sb.WriteString(i.elementName(literalNames, symbolicNames, v, elemsAreChar))
		}
	}
	if multi {
		sb.WriteString("}")
	}
	return sb.String()
}

func (i *IntervalSet) elementName(literalNames, symbolicNames []string, v int, elemsAreChar bool) string {
	if v == TokenEOF {
		return "<EOF>"
	}
	if v == TokenEpsilon {
		return "<EPSILON>"
	}
	if elemsAreChar {
		return "'" + string(rune(v)) + "'"
	}
	if literalNames != nil && v < len(literalNames) && literalNames[v] != "" {
		return literalNames[v]
	}
	if symbolicNames != nil && v < len(symbolicNames) {
		return symbolicNames[v]
	}
	return strconv.Itoa(v)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
