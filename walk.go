package poextract

import (
	"iter"
	"log/slog"
	"os"
	"path/filepath"
)

//go:generate mockgen -source=$GOFILE -package mock_poextract -destination=test/mock/$GOFILE

// Reporter receives filesystem errors. They never stop a run: the failing path
// contributes nothing and its siblings are still visited.
type Reporter interface {
	ReportError(path string, err error)
}

// LogReporter logs filesystem errors at warn level.
type LogReporter struct {
	Logger *slog.Logger
}

func (r LogReporter) ReportError(path string, err error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("skipping path", "path", path, "error", err)
}

// WalkOptions controls which files Walk yields.
type WalkOptions struct {
	// Accept reports whether a file takes part, usually by extension.
	Accept func(path string) bool
	// Exclude lists directory base names that are not descended into.
	Exclude  []string
	Reporter Reporter
}

// Walk yields the accepted files under root, which may itself be a file. Directory
// entries come in the order the filesystem reports them.
func Walk(root string, opts WalkOptions) iter.Seq[string] {
	if opts.Reporter == nil {
		opts.Reporter = LogReporter{}
	}
	exclude := make(map[string]struct{}, len(opts.Exclude))
	for _, d := range opts.Exclude {
		exclude[d] = struct{}{}
	}
	return func(yield func(string) bool) {
		walkPath(root, true, opts, exclude, yield)
	}
}

// walkPath returns false once yield asked to stop.
func walkPath(path string, isRoot bool, opts WalkOptions, exclude map[string]struct{}, yield func(string) bool) bool {
	info, err := os.Stat(path)
	if err != nil {
		opts.Reporter.ReportError(path, err)
		return true
	}
	if !info.IsDir() {
		if opts.Accept != nil && !opts.Accept(path) {
			return true
		}
		return yield(path)
	}
	if _, skip := exclude[info.Name()]; skip && !isRoot {
		return true
	}
	names, err := readDirNames(path)
	if err != nil {
		opts.Reporter.ReportError(path, err)
		return true
	}
	for _, name := range names {
		if !walkPath(filepath.Join(path, name), false, opts, exclude, yield) {
			return false
		}
	}
	return true
}

// readDirNames lists a directory without sorting, unlike os.ReadDir.
func readDirNames(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Readdirnames(-1)
}
