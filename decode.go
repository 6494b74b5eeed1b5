package poextract

import (
	"regexp"
	"strings"
)

// placeholderRegex matches {name} and {name#comment} spans.
var placeholderRegex = regexp.MustCompile(`\{([^}]+)\}`)

// DecodePlaceholders rewrites every {name#comment} span of s to {name} and returns a
// "#. name - comment" line for each span that carried a comment. Both parts are
// plain text; nothing inside the braces is evaluated.
func DecodePlaceholders(s string) (string, []string) {
	var comments []string
	out := placeholderRegex.ReplaceAllStringFunc(s, func(span string) string {
		inner := span[1 : len(span)-1]
		name, comment, _ := strings.Cut(inner, "#")
		name = strings.TrimSpace(name)
		comment = strings.TrimSpace(comment)
		if comment != "" {
			comments = append(comments, "#. "+name+" - "+comment)
		}
		return "{" + name + "}"
	})
	return out, comments
}

// Decode canonicalizes the payload strings of msg and appends the developer comments
// found in their placeholders. Invalid payloads are returned unchanged.
func Decode(msg Message) Message {
	if msg.Payload.Invalid {
		return msg
	}
	comments := append([]string(nil), msg.Comments...)

	singular, extra := DecodePlaceholders(msg.Payload.Singular)
	comments = append(comments, extra...)
	msg.Payload.Singular = singular
	if msg.Payload.IsPlural {
		plural, extra := DecodePlaceholders(msg.Payload.Plural)
		comments = append(comments, extra...)
		msg.Payload.Plural = plural
	}
	msg.Comments = comments
	return msg
}
