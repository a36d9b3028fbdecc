// Package lexer implements a single-state rule-table scanner: an ordered
// list of anchored patterns applied left to right over one input buffer,
// emitting classified spans that cover the buffer exactly.
package lexer

import (
	"unicode/utf8"

	"github.com/usd-tools/usdlex/pkgs/token"
)

// Lexer scans one input buffer, producing spans on demand. A Lexer holds
// per-invocation cursor state and must not be shared between goroutines;
// the table it reads from may be.
type Lexer struct {
	table *RuleTable
	input string
	pos   int
	queue []token.Span // spans a grouped rule produced but Next has not returned yet
}

// New returns a lexer over input using the given rule table.
func New(table *RuleTable, input string) *Lexer {
	return &Lexer{table: table, input: input}
}

// Next returns the next span; the second result is false once the input is
// exhausted. Every call either drains a queued grouped span or advances the
// cursor by at least one byte, so lexing always terminates in O(len(input))
// rule applications.
func (l *Lexer) Next() (token.Span, bool) {
	if len(l.queue) > 0 {
		return l.dequeue(), true
	}
	if l.pos >= len(l.input) {
		return token.Span{}, false
	}

	rest := l.input[l.pos:]
	for _, r := range l.table.rules {
		if r.startOnly && l.pos != 0 {
			continue
		}
		// A leading \b needs the byte before the cursor, which the
		// sliced match can't see: enforce that edge here.
		if r.wordBound && l.pos > 0 && isWordByte(l.input[l.pos-1]) {
			continue
		}
		if r.groups == nil {
			loc := r.re.FindStringIndex(rest)
			if loc == nil || loc[1] == 0 {
				continue
			}
			s := l.span(l.pos, l.pos+loc[1], r.whole)
			l.pos += loc[1]
			return s, true
		}
		idx := r.re.FindStringSubmatchIndex(rest)
		if idx == nil || idx[1] == 0 {
			continue
		}
		l.enqueueGroups(r, idx)
		l.pos += idx[1]
		return l.dequeue(), true
	}

	// No rule matched: absorb one rune so the cursor always moves.
	// DecodeRuneInString reports size 1 even for invalid bytes.
	_, size := utf8.DecodeRuneInString(rest)
	s := l.span(l.pos, l.pos+size, token.Error)
	l.pos += size
	return s, true
}

// All eagerly drains the remaining spans.
func (l *Lexer) All() []token.Span {
	var spans []token.Span
	for s, ok := l.Next(); ok; s, ok = l.Next() {
		spans = append(spans, s)
	}
	return spans
}

// enqueueGroups slices a grouped match into per-group spans. Groups absent
// from the match (unsatisfied optionals) skip their slot; empty groups that
// did participate emit zero-length spans. Matched characters outside every
// capture group attach to the nearest preceding group's category (the first
// group's for a leading gap) so coverage stays total.
func (l *Lexer) enqueueGroups(r Rule, idx []int) {
	matchEnd := l.pos + idx[1]
	cur := l.pos
	gapCat := r.groups[0]
	for gi, cat := range r.groups {
		gs, ge := idx[2*(gi+1)], idx[2*(gi+1)+1]
		if gs < 0 {
			continue
		}
		gs += l.pos
		ge += l.pos
		if gs > cur {
			l.queue = append(l.queue, l.span(cur, gs, gapCat))
		}
		l.queue = append(l.queue, l.span(gs, ge, cat))
		cur = ge
		gapCat = cat
	}
	if cur < matchEnd {
		l.queue = append(l.queue, l.span(cur, matchEnd, gapCat))
	}
}

func (l *Lexer) dequeue() token.Span {
	s := l.queue[0]
	l.queue = l.queue[1:]
	return s
}

func (l *Lexer) span(start, end int, cat token.Category) token.Span {
	return token.Span{Start: start, End: end, Category: cat, Text: l.input[start:end]}
}

// isWordByte mirrors the ASCII \w class regexp uses for \b.
func isWordByte(b byte) bool {
	return b == '_' ||
		('0' <= b && b <= '9') ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z')
}
