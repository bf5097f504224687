// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// InputStream is the default [CharStream]: a fully-buffered, random-access
// rune slice with nested mark/release support.
type InputStream struct {
	name    string
	index   int
	data    []rune
	size    int
	markers []int
}

// NewInputStream returns a char stream over the full contents of s.
func NewInputStream(s string) *InputStream {
	is := &InputStream{name: "<empty>", data: []rune(s)}
	is.size = len(is.data)
	return is
}

func (i *InputStream) Index() int { return i.index }
func (i *InputStream) Size() int  { return i.size }

// Mark pushes a LIFO marker; every Mark must be matched by a Release on
// every exit path.
func (i *InputStream) Mark() int {
	i.markers = append(i.markers, i.index)
	return -len(i.markers)
}

// Release pops the marker identified by marker. Releasing anything other
// than the most recently acquired marker is a usage error in the real
// runtime too; here it is tolerated by truncating back to the marker's
// depth, since a held marker further out is still logically valid.
func (i *InputStream) Release(marker int) {
	idx := -marker - 1
	if idx < 0 || idx >= len(i.markers) {
		invariantViolation("release of a marker that was never acquired")
	}
	i.markers = i.markers[:idx]
}

func (i *InputStream) Consume() {
	if i.index >= i.size {
		invariantViolation("cannot consume EOF")
	}
	i.index++
}

// LA returns the character offset characters ahead of the current
// position (1-based), or [TokenEOF] past the end of input. offset may be
// negative to look behind the current position.
func (i *InputStream) LA(offset int) int {
	if offset == 0 {
		return 0
	}
	pos := i.index
	if offset < 0 {
		pos += offset
		if pos < 0 {
			return TokenEOF
		}
	} else {
		pos += offset - 1
	}
	if pos < 0 || pos >= i.size {
		return TokenEOF
	}
	return int(i.data[pos])
}

func (i *InputStream) LT(offset int) int { return i.LA(offset) }

func (i *InputStream) Seek(index int) {
	if index <= i.index {
		i.index = index
		return
	}
	i.index = min(index, i.size)
}

func (i *InputStream) GetText(start, stop int) string {
	if stop >= i.size {
		stop = i.size - 1
	}
	if start >= i.size || stop < start {
		return ""
	}
	return string(i.data[start : stop+1])
}

func (i *InputStream) GetTextFromInterval(interval *Interval) string {
	return i.GetText(interval.Start, interval.Stop)
}

func (i *InputStream) GetSourceName() string {
	if i.name == "" {
		return "<unknown>"
	}
	return i.name
}

func (i *InputStream) String() string { return string(i.data) }
