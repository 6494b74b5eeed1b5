// Package poextract extracts translatable strings from source trees and writes them
// as a PO message catalog.
//
// A run walks a file or directory, parses every file whose extension has a
// registered parser, collects the arguments of marker calls such as __("Hello"),
// merges duplicates across the whole tree and writes the catalog:
//
//	summary, err := poextract.Run("./src", os.Stdout, poextract.Config{
//		Markers: []string{"__", "i18n.t"},
//	})
//
// Runs are not transactional. The header and any entries written before a failure
// stay in the output.
package poextract

import (
	"bufio"
	"io"
	"os"

	"github.com/loopcontext/poextract/internal/parsers"
)

// Summary counts what a run processed.
type Summary struct {
	Files    int
	Messages int
	Entries  int
}

// Run extracts messages from root and writes the catalog to w. Filesystem errors go
// to cfg.Reporter and do not stop the run. A file that fails to transform or parse
// stops it with a *ParseError; a marker argument that is not a string literal stops
// it with a *PayloadError once the catalog is being written.
func Run(root string, w io.Writer, cfg Config) (summary Summary, err error) {
	rc, err := cfg.resolve()
	if err != nil {
		return summary, err
	}

	bw := bufio.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}()

	po := NewPOWriter(bw, rc.lang, rc.rule)
	if err := po.WriteHeader(); err != nil {
		return summary, err
	}

	store := NewStore()
	extractor := NewExtractor(rc.markers)
	files := Walk(root, WalkOptions{
		Accept:   rc.registry.Handles,
		Exclude:  rc.exclude,
		Reporter: rc.reporter,
	})
	for path := range files {
		summary.Files++
		msgs, err := extractFile(path, rc.registry, extractor, rc.reporter)
		if err != nil {
			return summary, err
		}
		rc.logger.Debug("extracted", "path", path, "messages", len(msgs))
		for _, m := range msgs {
			store.Add(Decode(m))
		}
		summary.Messages += len(msgs)
	}

	summary.Entries = store.Len()
	for _, e := range store.Entries() {
		if err := po.WriteEntry(e); err != nil {
			return summary, err
		}
	}
	rc.logger.Info("catalog written", "files", summary.Files, "messages", summary.Messages, "entries", summary.Entries)
	return summary, nil
}

// extractFile reads, transforms, parses and extracts one file. Read failures are
// reported and yield no messages.
func extractFile(path string, registry *parsers.Registry, extractor *Extractor, reporter Reporter) ([]Message, error) {
	adapter, ok := registry.Lookup(path)
	if !ok {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		reporter.ReportError(path, err)
		return nil, nil
	}
	text, err := adapter.Transform(string(raw))
	if err != nil {
		return nil, newParseError(path, err)
	}
	f, err := adapter.Parse(path, text)
	if err != nil {
		return nil, newParseError(path, err)
	}
	return extractor.Extract(f), nil
}
