package poextract

import (
	"github.com/loopcontext/poextract/internal/syntax"
)

// Extractor finds marker calls in syntax trees.
type Extractor struct {
	markers []Marker
}

// NewExtractor returns an Extractor for markers; an empty list means DefaultMarker.
func NewExtractor(markers []Marker) *Extractor {
	if len(markers) == 0 {
		markers = []Marker{{DefaultMarker}}
	}
	return &Extractor{markers: markers}
}

// Extract returns one Message per marker call in f, in pre-order visitation order.
func (e *Extractor) Extract(f *syntax.File) []Message {
	var out []Message
	syntax.Walk(f.Root, func(n syntax.Node) bool {
		call, ok := n.(*syntax.Call)
		if !ok || !IsMarkerCall(call, e.markers) {
			return true
		}
		out = append(out, e.message(f.Path, call))
		return true
	})
	return out
}

func (e *Extractor) message(path string, call *syntax.Call) Message {
	comments := make([]string, 0, len(call.Comments)+1)
	comments = append(comments, Location(path, call.Line()))
	for _, c := range call.Comments {
		comments = append(comments, "#. "+c)
	}
	return Message{
		File:     path,
		Line:     call.Line(),
		Comments: comments,
		Payload:  payloadOf(call.Args),
	}
}

func payloadOf(args []syntax.Node) Payload {
	first, ok := syntax.StringValue(args[0])
	if !ok {
		return InvalidPayload(args[0].Text())
	}
	if len(args) > 1 {
		if second, ok := syntax.StringValue(args[1]); ok {
			return PluralPayload(first, second)
		}
	}
	return SingularPayload(first)
}
