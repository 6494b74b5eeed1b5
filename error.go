package poextract

import "fmt"

// Error is implemented by the errors that abort a run. SourcePath names the file
// that caused it; SourceLine is 0 when unknown.
type Error interface {
	Error() string
	Unwrap() error
	SourcePath() string
	SourceLine() int
}

// ParseError means a file could not be transformed or parsed into a syntax tree.
type ParseError struct {
	path string
	err  error
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", pe.path, pe.err)
}

func (pe *ParseError) Unwrap() error {
	return pe.err
}

func (pe *ParseError) SourcePath() string {
	return pe.path
}

func (pe *ParseError) SourceLine() int {
	return 0
}

// PayloadError means a marker call's argument was not a string literal. It surfaces
// when the catalog entry is written.
type PayloadError struct {
	path string
	line int
	raw  string
}

func (pe *PayloadError) Error() string {
	return fmt.Sprintf("something went wrong in %s:%d: argument %s is not a string literal", pe.path, pe.line, pe.raw)
}

func (pe *PayloadError) Unwrap() error {
	return nil
}

func (pe *PayloadError) SourcePath() string {
	return pe.path
}

func (pe *PayloadError) SourceLine() int {
	return pe.line
}

func newParseError(path string, err error) error {
	return &ParseError{path: path, err: err}
}

func newPayloadError(e Entry) error {
	return &PayloadError{path: e.File, line: e.Line, raw: e.Payload.Raw}
}
