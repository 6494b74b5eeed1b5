package parsers

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Scripts keeps the bodies of JavaScript <script> elements and replaces everything
// else with the newlines it contained, so line numbers in the result match the
// original document.
func Scripts(text string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(text))
	var b strings.Builder
	inScript := false
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			return b.String(), nil
		}
		raw := string(z.Raw())
		switch tt {
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			inScript = string(name) == "script" && isJavaScript(z, hasAttr)
		case html.EndTagToken:
			if inScript {
				// keep separate blocks from running into each other
				b.WriteByte(';')
			}
			inScript = false
		case html.TextToken:
			if inScript {
				b.WriteString(raw)
				continue
			}
		}
		b.WriteString(strings.Repeat("\n", strings.Count(raw, "\n")))
	}
}

// isJavaScript inspects the remaining attributes of a <script> tag.
func isJavaScript(z *html.Tokenizer, more bool) bool {
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()
		v := strings.ToLower(strings.TrimSpace(string(val)))
		switch string(key) {
		case "type":
			if v != "" && v != "module" && !strings.Contains(v, "javascript") && !strings.Contains(v, "ecmascript") {
				return false
			}
		case "lang":
			if v != "" && v != "js" && v != "javascript" {
				return false
			}
		case "src":
			return false
		}
	}
	return true
}
