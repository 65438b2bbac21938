// Package history keeps an in-memory record of the moves played in a session.
package history

import (
	"fmt"

	"termchess-local/types"
)

// Entry is a single recorded move. Placements have no origin.
type Entry struct {
	Side      types.Side
	Piece     types.Piece
	From      types.Cell
	To        types.Cell
	Placement bool
}

// Notation renders the entry as "Ra8-a5" for moves or "@e4" prefixed by the
// piece letter for placements.
func (e Entry) Notation() string {
	letter := e.Piece.Kind.Letter()
	if e.Placement {
		return fmt.Sprintf("%s@%s", letter, e.To)
	}
	return fmt.Sprintf("%s%s-%s", letter, e.From, e.To)
}

// Log is an append-only list of entries.
type Log struct {
	entries []Entry
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Add appends an entry and returns its 1-based number.
func (l *Log) Add(e Entry) int {
	l.entries = append(l.entries, e)
	return len(l.entries)
}

// Entries returns a copy of all entries in play order.
func (l *Log) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Last returns the most recent entry. ok is false for an empty log.
func (l *Log) Last() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Tail returns a copy of at most n of the latest entries and the index of
// the first one returned. n <= 0 yields no entries.
func (l *Log) Tail(n int) ([]Entry, int) {
	if n <= 0 {
		return nil, len(l.entries)
	}
	start := max(len(l.entries)-n, 0)
	return append([]Entry(nil), l.entries[start:]...), start
}
