// Package parsers maps file extensions to the transform and parser used to turn a
// source file into a syntax tree.
package parsers

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/loopcontext/poextract/internal/syntax"
	"github.com/loopcontext/poextract/internal/syntax/gosyntax"
	"github.com/loopcontext/poextract/internal/syntax/jssyntax"
)

// Transform rewrites raw file text into text the parser accepts.
type Transform func(text string) (string, error)

// ParseFunc builds a syntax tree from transformed text.
type ParseFunc func(path, text string) (*syntax.File, error)

// Adapter is the registered pair for one extension.
type Adapter struct {
	Transform Transform
	Parse     ParseFunc
}

// Registry holds adapters keyed by normalized extension.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: map[string]Adapter{}}
}

// Default returns a registry with Go, JavaScript, TypeScript and HTML adapters.
func Default() *Registry {
	r := NewRegistry()
	r.Register("go", Adapter{Transform: Identity, Parse: gosyntax.Parse})
	for _, ext := range []string{"js", "mjs", "cjs", "jsx"} {
		r.Register(ext, Adapter{Transform: Identity, Parse: jssyntax.ParseJavaScript})
	}
	r.Register("ts", Adapter{Transform: Identity, Parse: jssyntax.ParseTypeScript})
	r.Register("tsx", Adapter{Transform: Identity, Parse: jssyntax.ParseTSX})
	for _, ext := range []string{"html", "htm", "vue"} {
		r.Register(ext, Adapter{Transform: Scripts, Parse: jssyntax.ParseJavaScript})
	}
	return r
}

// Register adds or replaces the adapter for ext. A nil Transform means identity.
func (r *Registry) Register(ext string, a Adapter) {
	if a.Transform == nil {
		a.Transform = Identity
	}
	r.adapters[NormalizeExt(ext)] = a
}

// Lookup returns the adapter registered for the extension of path.
func (r *Registry) Lookup(path string) (Adapter, bool) {
	a, ok := r.adapters[ExtKey(path)]
	return a, ok
}

// Handles reports whether path has a registered extension.
func (r *Registry) Handles(path string) bool {
	_, ok := r.Lookup(path)
	return ok
}

// Extensions returns the registered keys, sorted.
func (r *Registry) Extensions() []string {
	out := make([]string, 0, len(r.adapters))
	for ext := range r.adapters {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// ExtKey returns the registry key for path: its extension without the dot, uppercased.
func ExtKey(path string) string {
	return NormalizeExt(filepath.Ext(path))
}

// NormalizeExt uppercases ext and drops a leading dot.
func NormalizeExt(ext string) string {
	return strings.ToUpper(strings.TrimPrefix(ext, "."))
}

// Identity returns text unchanged.
func Identity(text string) (string, error) {
	return text, nil
}
