// Package jssyntax builds syntax trees from JavaScript and TypeScript source using
// tree-sitter grammars.
package jssyntax

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/loopcontext/poextract/internal/syntax"
)

// Node types the converter maps onto syntax variants.
const (
	nodeCall         = "call_expression"
	nodeArguments    = "arguments"
	nodeMember       = "member_expression"
	nodeIdentifier   = "identifier"
	nodeProperty     = "property_identifier"
	nodePrivateProp  = "private_property_identifier"
	nodeThis         = "this"
	nodeSuper        = "super"
	nodeString       = "string"
	nodeTemplate     = "template_string"
	nodeSubstitution = "template_substitution"
	nodeEscape       = "escape_sequence"
	nodeBinary       = "binary_expression"
	nodeParens       = "parenthesized_expression"
	nodeComment      = "comment"
	nodeNumber       = "number"
	nodeTrue         = "true"
	nodeFalse        = "false"
	nodeNull         = "null"
	nodeError        = "ERROR"
)

// ParseJavaScript parses text with the JavaScript grammar (JSX included).
func ParseJavaScript(path, text string) (*syntax.File, error) {
	return parse(javascript.GetLanguage(), path, text)
}

// ParseTypeScript parses text with the TypeScript grammar.
func ParseTypeScript(path, text string) (*syntax.File, error) {
	return parse(typescript.GetLanguage(), path, text)
}

// ParseTSX parses text with the TSX grammar.
func ParseTSX(path, text string) (*syntax.File, error) {
	return parse(tsx.GetLanguage(), path, text)
}

func parse(lang *sitter.Language, path, text string) (*syntax.File, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%s: invalid UTF-8 content", path)
	}
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)

	src := []byte(text)
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(path, root)
	}
	c := &converter{src: text}
	return &syntax.File{Path: path, Root: c.convert(root)}, nil
}

// syntaxError reports the first ERROR or MISSING node under root.
func syntaxError(path string, root *sitter.Node) error {
	bad := firstError(root)
	if bad == nil {
		return fmt.Errorf("%s: syntax error", path)
	}
	p := bad.StartPoint()
	what := "unexpected input"
	if bad.IsMissing() {
		what = fmt.Sprintf("missing %s", bad.Type())
	}
	return fmt.Errorf("%s:%d:%d: syntax error: %s", path, line(bad), p.Column+1, what)
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == nodeError || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}

func line(n *sitter.Node) int {
	row, err := safecast.Conv[int](n.StartPoint().Row)
	if err != nil {
		return 0
	}
	return row + 1
}

type converter struct {
	src string
}

func (c *converter) text(n *sitter.Node) string {
	return c.src[n.StartByte():n.EndByte()]
}

func (c *converter) span(n *sitter.Node) syntax.Span {
	return syntax.Span{StartLine: line(n), Raw: c.text(n)}
}

func (c *converter) convert(n *sitter.Node) syntax.Node {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case nodeComment:
		return nil
	case nodeCall:
		return c.convertCall(n)
	case nodeMember:
		prop := n.ChildByFieldName("property")
		if prop == nil {
			break
		}
		return &syntax.MemberAccess{
			Span:     c.span(n),
			Object:   c.convert(n.ChildByFieldName("object")),
			Property: c.text(prop),
		}
	case nodeIdentifier, nodeProperty, nodePrivateProp, nodeThis, nodeSuper:
		return &syntax.Identifier{Span: c.span(n), Name: c.text(n)}
	case nodeNumber, nodeTrue, nodeFalse, nodeNull:
		return &syntax.Literal{Span: c.span(n), Value: c.text(n)}
	case nodeString, nodeTemplate, nodeBinary, nodeParens:
		if s, ok := c.foldString(n); ok {
			return &syntax.Literal{Span: c.span(n), Value: s, String: true}
		}
	}
	other := &syntax.Other{Span: c.span(n), Kind: n.Type()}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := c.convert(n.NamedChild(i)); child != nil {
			other.Children = append(other.Children, child)
		}
	}
	return other
}

func (c *converter) convertCall(n *sitter.Node) syntax.Node {
	callee := c.convert(n.ChildByFieldName("function"))
	args := n.ChildByFieldName("arguments")
	// tag`text` puts the template where the argument list would be. A tagged
	// template is not a call, but substitutions inside it are still walked.
	if args != nil && args.Type() != nodeArguments {
		other := &syntax.Other{Span: c.span(n), Kind: "tagged_template"}
		for _, child := range []syntax.Node{callee, c.convert(args)} {
			if child != nil {
				other.Children = append(other.Children, child)
			}
		}
		return other
	}
	call := &syntax.Call{Span: c.span(n), Callee: callee}
	if args == nil {
		return call
	}
	for i := 0; i < int(args.NamedChildCount()); i++ {
		child := args.NamedChild(i)
		if child.Type() == nodeComment {
			if len(call.Args) == 0 {
				call.Comments = append(call.Comments, syntax.CommentText(c.text(child)))
			}
			continue
		}
		call.Args = append(call.Args, c.convert(child))
	}
	return call
}

// foldString returns the value of a string literal, a substitution-free template,
// or a "+" chain of those.
func (c *converter) foldString(n *sitter.Node) (string, bool) {
	switch n.Type() {
	case nodeString, nodeTemplate:
		// Quotes are one byte on each side; escapes are the only parts needing decoding.
		start, end := n.StartByte()+1, n.EndByte()-1
		if end < start {
			return "", false
		}
		var b escapeBuilder
		for i := 0; i < int(n.NamedChildCount()); i++ {
			part := n.NamedChild(i)
			switch part.Type() {
			case nodeSubstitution:
				return "", false
			case nodeEscape:
				b.text(c.src[start:part.StartByte()])
				b.escape(c.text(part))
				start = part.EndByte()
			}
		}
		b.text(c.src[start:end])
		return b.String(), true
	case nodeParens:
		if n.NamedChildCount() != 1 {
			return "", false
		}
		return c.foldString(n.NamedChild(0))
	case nodeBinary:
		op := n.ChildByFieldName("operator")
		if op == nil || op.Type() != "+" {
			return "", false
		}
		left, ok := c.foldString(n.ChildByFieldName("left"))
		if !ok {
			return "", false
		}
		right, ok := c.foldString(n.ChildByFieldName("right"))
		if !ok {
			return "", false
		}
		return left + right, true
	}
	return "", false
}

// unescape decodes one JavaScript escape sequence such as \n, \x41 or \u{1F600}.
func unescape(seq string) string {
	if len(seq) < 2 || seq[0] != '\\' {
		return seq
	}
	body := seq[1:]
	switch body[0] {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case 'b':
		return "\b"
	case 'f':
		return "\f"
	case 'v':
		return "\v"
	case '0':
		if len(body) == 1 {
			return "\x00"
		}
	case '\r', '\n':
		// line continuation
		return ""
	case 'x':
		if r, ok := hexRune(body[1:]); ok {
			return string(r)
		}
	case 'u':
		digits := strings.TrimSuffix(strings.TrimPrefix(body[1:], "{"), "}")
		if r, ok := hexRune(digits); ok {
			return string(r)
		}
	}
	if r, _ := utf8.DecodeRuneInString(body); r == '\u2028' || r == '\u2029' {
		return ""
	}
	return body
}

// escapeBuilder accumulates literal text and escapes, joining a \uD8xx\uDCxx
// surrogate pair into one rune. A lone surrogate becomes U+FFFD.
type escapeBuilder struct {
	b    strings.Builder
	high rune
}

func (e *escapeBuilder) text(s string) {
	if s == "" {
		return
	}
	e.flush()
	e.b.WriteString(s)
}

func (e *escapeBuilder) escape(seq string) {
	r, ok := surrogateEscape(seq)
	switch {
	case !ok:
		e.text(unescape(seq))
	case r < 0xDC00:
		e.flush()
		e.high = r
	case e.high != 0:
		e.b.WriteRune(utf16.DecodeRune(e.high, r))
		e.high = 0
	default:
		e.b.WriteRune(utf8.RuneError)
	}
}

func (e *escapeBuilder) flush() {
	if e.high != 0 {
		e.b.WriteRune(utf8.RuneError)
		e.high = 0
	}
}

func (e *escapeBuilder) String() string {
	e.flush()
	return e.b.String()
}

// surrogateEscape reports the code unit of a \u escape in the UTF-16 surrogate range.
func surrogateEscape(seq string) (rune, bool) {
	if !strings.HasPrefix(seq, `\u`) {
		return 0, false
	}
	digits := strings.TrimSuffix(strings.TrimPrefix(seq[2:], "{"), "}")
	r, ok := hexRune(digits)
	if !ok || !utf16.IsSurrogate(r) {
		return 0, false
	}
	return r, true
}

func hexRune(digits string) (rune, bool) {
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || n > utf8.MaxRune {
		return 0, false
	}
	return rune(n), true
}
