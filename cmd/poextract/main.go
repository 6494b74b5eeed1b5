package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loopcontext/poextract"
	"github.com/loopcontext/poextract/internal/parsers"
)

const (
	exitOK         = 0
	exitFailure    = 1
	exitParseError = 2
)

func main() {
	setupLogging(os.Getenv("POEXTRACT_LOG_LEVEL"))
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	opts := &options{color: string(colorAuto)}
	cmd := newRootCmd(opts, stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		printError(stderr, opts.color, err)
		return exitCode(err)
	}
	return exitOK
}

func newRootCmd(opts *options, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poextract <path>",
		Short: "Extract translatable strings into a PO catalog",
		Long: `poextract scans a file or directory for calls to translation markers such as
__("Hello") or i18n.t("Bye", "Byes") and writes a PO catalog to stdout.

Go, JavaScript, TypeScript, TSX, HTML and Vue files are parsed. Placeholders written
as {name#comment} become {name} in the msgid and "#. name - comment" in the catalog.

Handled extensions: ` + strings.ToLower(strings.Join(parsers.Default().Extensions(), ", ")) + ".",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := readColorMode(opts.color); err != nil {
				return err
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			cfg, err := opts.config(cmd.Flags())
			if err != nil {
				return err
			}
			cfg.Logger = slog.Default()
			_, err = poextract.Run(args[0], stdout, cfg)
			return err
		},
	}
	opts.register(cmd.Flags())
	return cmd
}

// exitCode maps run errors to process exit codes.
func exitCode(err error) int {
	var parseErr *poextract.ParseError
	if errors.As(err, &parseErr) {
		return exitParseError
	}
	return exitFailure
}

func printError(w io.Writer, colorValue string, err error) {
	mode, modeErr := readColorMode(colorValue)
	if modeErr != nil {
		mode = colorOff
	}
	fmt.Fprintf(w, "%s %v\n", errorColor(mode, w).Sprint("poextract:"), err)
}

// setupLogging installs the default slog logger on stderr. Unknown levels mean warn.
func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
