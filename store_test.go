package poextract

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func msg(file string, line int, p Payload, extra ...string) Message {
	return Message{
		File:     file,
		Line:     line,
		Comments: append([]string{Location(file, line)}, extra...),
		Payload:  p,
	}
}

func TestStoreKeepsFirstSeenOrder(t *testing.T) {
	s := NewStore()
	s.Add(msg("a.js", 1, SingularPayload("B")))
	s.Add(msg("a.js", 2, SingularPayload("A")))
	s.Add(msg("a.js", 3, PluralPayload("A", "As")))

	var keys []string
	for _, e := range s.Entries() {
		keys = append(keys, e.Key)
	}
	if diff := cmp.Diff([]string{"B", "A", "A|As"}, keys); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestStoreMergesCommentsSortedDescending(t *testing.T) {
	s := NewStore()
	s.Add(msg("a.js", 1, SingularPayload("Hello")))
	s.Add(msg("b.js", 2, SingularPayload("Hello")))

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	e, ok := s.lookup("Hello")
	if !ok {
		t.Fatal("entry not found")
	}
	if diff := cmp.Diff([]string{"#: b.js:2", "#: a.js:1"}, e.Comments); diff != "" {
		t.Errorf("comments (-want +got):\n%s", diff)
	}
	if e.File != "a.js" || e.Line != 1 {
		t.Errorf("first occurrence = %s:%d, want a.js:1", e.File, e.Line)
	}
}

func TestStoreSingleOccurrenceKeepsCommentOrder(t *testing.T) {
	s := NewStore()
	s.Add(msg("a.js", 1, SingularPayload("x"), "#. z last", "#. a first"))
	e, _ := s.lookup("x")
	if diff := cmp.Diff([]string{"#: a.js:1", "#. z last", "#. a first"}, e.Comments); diff != "" {
		t.Errorf("comments (-want +got):\n%s", diff)
	}
}

func TestStoreFirstPayloadWins(t *testing.T) {
	s := NewStore()
	s.Add(msg("a.js", 1, SingularPayload("x|y")))
	s.Add(msg("a.js", 2, PluralPayload("x", "y")))

	e, _ := s.lookup("x|y")
	if e.Payload.IsPlural {
		t.Errorf("later plural payload replaced the first singular one: %+v", e.Payload)
	}
	if len(e.Comments) != 2 {
		t.Errorf("comments of the later occurrence should be merged, got %v", e.Comments)
	}
}

func TestStoreInvalidKeysDoNotCollide(t *testing.T) {
	s := NewStore()
	s.Add(msg("a.js", 1, SingularPayload("name")))
	s.Add(msg("a.js", 2, InvalidPayload("name")))
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestStoreMergeLeavesReturnedEntriesAlone(t *testing.T) {
	s := NewStore()
	for i := 1; i <= 3; i++ {
		s.Add(msg("b.js", i, SingularPayload("x")))
	}
	before := s.Entries()[0].Comments
	snapshot := append([]string(nil), before...)

	s.Add(msg("z.js", 9, SingularPayload("x")))
	if diff := cmp.Diff(snapshot, before); diff != "" {
		t.Errorf("earlier Entries() result changed (-want +got):\n%s", diff)
	}
	e, _ := s.lookup("x")
	if e.Comments[0] != "#: z.js:9" || len(e.Comments) != 4 {
		t.Errorf("merged comments = %v", e.Comments)
	}
}
