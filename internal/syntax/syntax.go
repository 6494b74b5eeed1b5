// Package syntax is the language-neutral tree the extractor walks.
// Backends (gosyntax, jssyntax) convert their native trees into these variants;
// everything the extractor cares about is a Call, Literal, Identifier or
// MemberAccess, and the rest is carried as Other so traversal still reaches it.
package syntax

import "strings"

// Node is implemented by the closed set of variants in this package.
type Node interface {
	// Line is the 1-based line where the node starts.
	Line() int
	// Text is the raw source text of the node.
	Text() string
	node()
}

// Span holds what every variant knows about its source position.
type Span struct {
	StartLine int
	Raw       string
}

func (s Span) Line() int    { return s.StartLine }
func (s Span) Text() string { return s.Raw }
func (Span) node()          {}

// Call is a call expression. Comments holds the text of comments that sit between
// the opening parenthesis and the first argument, in source order.
type Call struct {
	Span
	Callee   Node
	Args     []Node
	Comments []string
}

// Literal is a constant. String reports whether Value holds a decoded string literal.
type Literal struct {
	Span
	Value  string
	String bool
}

type Identifier struct {
	Span
	Name string
}

// MemberAccess is object.property.
type MemberAccess struct {
	Span
	Object   Node
	Property string
}

// Other is any node kind the extractor has no use for beyond descending into it.
type Other struct {
	Span
	Kind     string
	Children []Node
}

// File is one parsed source file.
type File struct {
	Path string
	Root Node
}

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	switch t := n.(type) {
	case *Call:
		out := make([]Node, 0, len(t.Args)+1)
		if t.Callee != nil {
			out = append(out, t.Callee)
		}
		return append(out, t.Args...)
	case *MemberAccess:
		if t.Object == nil {
			return nil
		}
		return []Node{t.Object}
	case *Other:
		return t.Children
	}
	return nil
}

// Walk visits n and its descendants in pre-order. Returning false from visit skips
// the children of that node.
func Walk(n Node, visit func(Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, visit)
	}
}

// Chain returns the identifier segments of a callee expression: a.b.c yields
// [a b c], f().g yields [f g]. Nodes without a name contribute their raw text.
func Chain(n Node) []string {
	switch t := n.(type) {
	case *Identifier:
		return []string{t.Name}
	case *MemberAccess:
		return append(Chain(t.Object), t.Property)
	case *Call:
		return Chain(t.Callee)
	case nil:
		return nil
	}
	return []string{n.Text()}
}

// StringValue returns the decoded value of n when n is a string literal.
func StringValue(n Node) (string, bool) {
	lit, ok := n.(*Literal)
	if !ok || !lit.String {
		return "", false
	}
	return lit.Value, true
}

// CommentText strips line or block comment delimiters and surrounding whitespace.
func CommentText(raw string) string {
	switch {
	case strings.HasPrefix(raw, "//"):
		raw = raw[2:]
	case strings.HasPrefix(raw, "/*"):
		raw = strings.TrimSuffix(raw[2:], "*/")
	}
	return strings.TrimSpace(raw)
}
