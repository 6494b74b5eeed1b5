// Package gosyntax builds syntax trees from Go source with go/parser.
package gosyntax

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"strconv"
	"strings"

	"github.com/loopcontext/poextract/internal/syntax"
)

// Parse parses text as a Go source file named path.
func Parse(path, text string) (*syntax.File, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, text, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	c := &converter{
		fset:     fset,
		file:     fset.File(f.Pos()),
		src:      text,
		comments: flattenComments(f.Comments),
	}
	return &syntax.File{Path: path, Root: c.convert(f)}, nil
}

type converter struct {
	fset     *token.FileSet
	file     *token.File
	src      string
	comments []*ast.Comment
}

func flattenComments(groups []*ast.CommentGroup) []*ast.Comment {
	var out []*ast.Comment
	for _, g := range groups {
		out = append(out, g.List...)
	}
	return out
}

func (c *converter) span(n ast.Node) syntax.Span {
	if !n.Pos().IsValid() || !n.End().IsValid() {
		return syntax.Span{}
	}
	start, end := c.file.Offset(n.Pos()), c.file.Offset(n.End())
	if start > end || end > len(c.src) {
		return syntax.Span{StartLine: c.fset.Position(n.Pos()).Line}
	}
	return syntax.Span{
		StartLine: c.fset.Position(n.Pos()).Line,
		Raw:       c.src[start:end],
	}
}

func (c *converter) convert(n ast.Node) syntax.Node {
	switch t := n.(type) {
	case nil, *ast.CommentGroup, *ast.Comment:
		return nil
	case *ast.CallExpr:
		call := &syntax.Call{Span: c.span(t), Callee: c.convert(t.Fun)}
		for _, arg := range t.Args {
			call.Args = append(call.Args, c.convert(arg))
		}
		if len(t.Args) > 0 {
			call.Comments = c.commentsBetween(t.Lparen, t.Args[0].Pos())
		}
		return call
	case *ast.BasicLit:
		lit := &syntax.Literal{Span: c.span(t), Value: t.Value}
		if t.Kind == token.STRING {
			if s, err := strconv.Unquote(t.Value); err == nil {
				lit.Value, lit.String = s, true
			}
		}
		return lit
	case *ast.Ident:
		return &syntax.Identifier{Span: c.span(t), Name: t.Name}
	case *ast.SelectorExpr:
		return &syntax.MemberAccess{Span: c.span(t), Object: c.convert(t.X), Property: t.Sel.Name}
	case *ast.BinaryExpr:
		if s, ok := foldString(t); ok {
			return &syntax.Literal{Span: c.span(t), Value: s, String: true}
		}
	}
	other := &syntax.Other{Span: c.span(n), Kind: strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")}
	for _, child := range children(n) {
		if cn := c.convert(child); cn != nil {
			other.Children = append(other.Children, cn)
		}
	}
	return other
}

// commentsBetween returns the cleaned text of every comment lying after from and
// ending before to.
func (c *converter) commentsBetween(from, to token.Pos) []string {
	i := sort.Search(len(c.comments), func(i int) bool { return c.comments[i].Slash > from })
	var out []string
	for ; i < len(c.comments) && c.comments[i].End() <= to; i++ {
		out = append(out, syntax.CommentText(c.comments[i].Text))
	}
	return out
}

// children lists the direct children of n in the order ast.Inspect reaches them.
func children(n ast.Node) []ast.Node {
	var out []ast.Node
	ast.Inspect(n, func(child ast.Node) bool {
		if child == nil {
			return false
		}
		if child == n {
			return true
		}
		out = append(out, child)
		return false
	})
	return out
}

// foldString evaluates "a" + "b" chains made only of string literals.
func foldString(expr ast.Expr) (string, bool) {
	switch t := expr.(type) {
	case *ast.BasicLit:
		if t.Kind != token.STRING {
			return "", false
		}
		s, err := strconv.Unquote(t.Value)
		return s, err == nil
	case *ast.ParenExpr:
		return foldString(t.X)
	case *ast.BinaryExpr:
		if t.Op != token.ADD {
			return "", false
		}
		x, ok := foldString(t.X)
		if !ok {
			return "", false
		}
		y, ok := foldString(t.Y)
		if !ok {
			return "", false
		}
		return x + y, true
	}
	return "", false
}
