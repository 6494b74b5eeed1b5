package poextract

import "sort"

// Entry is one deduplicated catalog message. File and Line point at the first
// occurrence and are only used in diagnostics.
type Entry struct {
	Key      string
	Comments []string
	Payload  Payload
	File     string
	Line     int
}

// Store aggregates messages by identity key for one run, keeping first-seen order.
// It is not safe for concurrent use.
type Store struct {
	entries []*Entry
	index   map[string]*Entry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{index: map[string]*Entry{}}
}

// Add merges msg into the store. The first occurrence of a key fixes the payload and
// keeps its comments as they are; later occurrences only contribute comments, and the
// merged list is sorted and then reversed. A later payload with a different shape
// (singular vs plural) for the same key is dropped like any other later payload.
func (s *Store) Add(msg Message) {
	key := msg.Payload.Key()
	if e, ok := s.index[key]; ok {
		merged := append(append([]string(nil), e.Comments...), msg.Comments...)
		sort.Sort(sort.Reverse(sort.StringSlice(merged)))
		e.Comments = merged
		return
	}
	e := &Entry{
		Key:      key,
		Comments: append([]string(nil), msg.Comments...),
		Payload:  msg.Payload,
		File:     msg.File,
		Line:     msg.Line,
	}
	s.entries = append(s.entries, e)
	s.index[key] = e
}

// Len returns the number of distinct keys.
func (s *Store) Len() int {
	return len(s.entries)
}

// Entries returns the entries in first-seen order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = *e
	}
	return out
}

// lookup returns the entry stored under key.
func (s *Store) lookup(key string) (Entry, bool) {
	e, ok := s.index[key]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}
