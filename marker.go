package poextract

import (
	"fmt"
	"strings"

	"github.com/loopcontext/poextract/internal/syntax"
)

// DefaultMarker is used when no marker is configured.
const DefaultMarker = "__"

// Marker is a dotted identifier chain naming a translation function, split into
// segments. Only the first and last segments are compared; middle segments are free.
type Marker []string

// ParseMarker splits a dotted chain such as "i18n.t" into a Marker.
func ParseMarker(s string) (Marker, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("marker must not be empty")
	}
	segments := strings.Split(s, ".")
	for _, seg := range segments {
		if strings.TrimSpace(seg) == "" {
			return nil, fmt.Errorf("invalid marker %q: empty segment", s)
		}
	}
	return Marker(segments), nil
}

// ParseMarkers parses every entry of list, falling back to DefaultMarker when list is empty.
func ParseMarkers(list []string) ([]Marker, error) {
	if len(list) == 0 {
		list = []string{DefaultMarker}
	}
	out := make([]Marker, 0, len(list))
	for _, s := range list {
		m, err := ParseMarker(s)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (m Marker) String() string {
	return strings.Join(m, ".")
}

// Head is the first segment.
func (m Marker) Head() string {
	if len(m) == 0 {
		return ""
	}
	return m[0]
}

// Tail is the last segment.
func (m Marker) Tail() string {
	if len(m) == 0 {
		return ""
	}
	return m[len(m)-1]
}

// Matches reports whether a callee chain has the same head and tail as m and is at
// least as long, so "a.b.c" accepts a.x.c(...) but not a.c(...).
func (m Marker) Matches(chain []string) bool {
	if len(m) == 0 || len(chain) < len(m) {
		return false
	}
	return chain[0] == m.Head() && chain[len(chain)-1] == m.Tail()
}

// IsMarkerCall is the match predicate: a call whose callee shares head and tail with
// one of markers and which has at least one argument. __() is a bare reference, not
// a translation.
func IsMarkerCall(call *syntax.Call, markers []Marker) bool {
	if call == nil || len(call.Args) == 0 {
		return false
	}
	chain := syntax.Chain(call.Callee)
	for _, m := range markers {
		if m.Matches(chain) {
			return true
		}
	}
	return false
}
