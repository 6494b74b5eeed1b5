package poextract

import "strconv"

// invalidKeyPrefix keeps keys of non-literal payloads apart from every real message.
const invalidKeyPrefix = "\x00"

// Payload is the text taken from a marker call: a singular string, a plural pair,
// or, when the first argument was not a string literal, the raw source of that
// argument. Invalid payloads are rejected when the catalog is written.
type Payload struct {
	Singular string
	Plural   string
	IsPlural bool
	// Raw is set instead of Singular when the argument was not a string literal.
	Raw     string
	Invalid bool
}

// SingularPayload returns a payload for one message.
func SingularPayload(s string) Payload {
	return Payload{Singular: s}
}

// PluralPayload returns a payload for a singular/plural pair.
func PluralPayload(one, other string) Payload {
	return Payload{Singular: one, Plural: other, IsPlural: true}
}

// InvalidPayload records an argument that was not a string literal.
func InvalidPayload(raw string) Payload {
	return Payload{Raw: raw, Invalid: true}
}

// Key is the identity used to merge duplicates: the singular string, or both
// strings of a plural joined by "|".
func (p Payload) Key() string {
	switch {
	case p.Invalid:
		return invalidKeyPrefix + p.Raw
	case p.IsPlural:
		return p.Singular + "|" + p.Plural
	}
	return p.Singular
}

// Message is one marker call found in a file. Comments starts with the "#: file:line"
// location line, followed by "#. " developer comments. Decode returns the same shape
// with placeholders canonicalized.
type Message struct {
	File     string
	Line     int
	Comments []string
	Payload  Payload
}

// Location returns the "#: file:line" reference comment.
func Location(file string, line int) string {
	return "#: " + file + ":" + strconv.Itoa(line)
}
