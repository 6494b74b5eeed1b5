package poextract

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/loopcontext/poextract/internal/plural"
)

const headerContentType = `"Content-Type: text/plain; charset=UTF-8\n"`

// POWriter renders catalog entries as a portable object (PO) document.
type POWriter struct {
	w    io.Writer
	lang string
	rule plural.Rule
}

// NewPOWriter returns a writer for w. With an empty lang the header carries only the
// content type and plural entries get two msgstr forms; otherwise Language and
// Plural-Forms headers are added and rule decides the number of forms.
func NewPOWriter(w io.Writer, lang string, rule plural.Rule) *POWriter {
	if rule.N() == 0 {
		rule = plural.Default()
	}
	return &POWriter{w: w, lang: lang, rule: rule}
}

// WriteHeader writes the header entry. It is written for every catalog, even an
// empty one.
func (pw *POWriter) WriteHeader() error {
	var b strings.Builder
	b.WriteString("msgid \"\"\nmsgstr \"\"\n")
	b.WriteString(headerContentType)
	b.WriteByte('\n')
	if pw.lang != "" {
		b.WriteString(Quote("Language: " + pw.lang + "\n"))
		b.WriteByte('\n')
		b.WriteString(Quote("Plural-Forms: " + pw.rule.Header() + "\n"))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(pw.w, b.String())
	return err
}

// WriteEntry writes the comment lines and message block of e. An entry whose payload
// is not a string literal yields a *PayloadError and nothing is written.
func (pw *POWriter) WriteEntry(e Entry) error {
	if e.Payload.Invalid {
		return newPayloadError(e)
	}
	var b strings.Builder
	b.WriteString(strings.Join(e.Comments, "\n"))
	b.WriteByte('\n')
	if e.Payload.IsPlural {
		b.WriteString("msgid " + Quote(e.Payload.Singular) + "\n")
		b.WriteString("msgid_plural " + Quote(e.Payload.Plural) + "\n")
		for i := 0; i < pw.rule.N(); i++ {
			b.WriteString("msgstr[" + strconv.Itoa(i) + "] \"\"\n")
		}
	} else {
		b.WriteString("msgid " + Quote(e.Payload.Singular) + "\n")
		b.WriteString("msgstr \"\"\n")
	}
	b.WriteByte('\n')
	_, err := io.WriteString(pw.w, b.String())
	return err
}

// Quote returns s as a double-quoted JSON string. HTML characters are left as they
// are, so the result is also a valid PO string for all printable text.
func Quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// strings always encode
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
