package test_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/loopcontext/poextract"
	"github.com/loopcontext/poextract/internal/parsers"
	"github.com/loopcontext/poextract/test"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const header = "msgid \"\"\nmsgstr \"\"\n\"Content-Type: text/plain; charset=UTF-8\\n\"\n\n"

var _ = Describe("Extraction run", func() {
	var (
		dir      string
		out      *bytes.Buffer
		reporter *test.RecordingReporter
		cfg      poextract.Config
	)

	write := func(tree test.Tree) {
		var err error
		dir, err = tree.Write()
		Expect(err).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		dir = ""
		out = &bytes.Buffer{}
		reporter = &test.RecordingReporter{}
		cfg = poextract.Config{
			Reporter: reporter,
			Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		}
	})

	AfterEach(func() {
		if dir != "" {
			Expect(os.RemoveAll(dir)).To(Succeed())
		}
	})

	It("should write only the header for an empty directory", func() {
		write(test.Tree{})
		summary, err := poextract.Run(dir, out, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(Equal(header))
		Expect(summary.Entries).To(Equal(0))
	})

	It("should extract from every registered language", func() {
		write(test.Tree{
			"main.go":       "package main\n\nfunc main() { __(\"from go\") }\n",
			"web/app.js":    "__('from js');\n",
			"web/app.mjs":   "__(`from mjs`);\n",
			"web/view.tsx":  "const v = <b>{__(\"from tsx\")}</b>;\n",
			"web/typed.ts":  "let s: string = __(\"from ts\");\n",
			"web/page.html": "<html>\n<script>__(\"from html\")</script>\n</html>\n",
			"web/comp.vue":  "<template><p>{{ x }}</p></template>\n<script>\nexport default { name: __(\"from vue\") }\n</script>\n",
			"notes.md":      "__(\"not source\")\n",
		})
		summary, err := poextract.Run(dir, out, cfg)
		Expect(err).NotTo(HaveOccurred())
		for _, s := range []string{"go", "js", "mjs", "tsx", "ts", "html", "vue"} {
			Expect(out.String()).To(ContainSubstring("msgid \"from " + s + "\""))
		}
		Expect(out.String()).NotTo(ContainSubstring("not source"))
		Expect(summary.Files).To(Equal(7))
		Expect(summary.Entries).To(Equal(7))
	})

	It("should keep line numbers of scripts embedded in HTML", func() {
		write(test.Tree{"index.html": "<!doctype html>\n<title>x</title>\n\n<script>\nvar a = 1;\n__(\"Line six\");\n</script>\n"})
		_, err := poextract.Run(dir, out, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("#: " + filepath.Join(dir, "index.html") + ":6\n"))
	})

	It("should merge duplicates and decode placeholders", func() {
		write(test.Tree{
			"a.js": "__(\"{n#number of files} file\", \"{n} files\");\n",
			"b.js": "\n__(\"{n#number of files} file\", \"{n} files\");\n",
		})
		_, err := poextract.Run(dir, out, cfg)
		Expect(err).NotTo(HaveOccurred())

		want := header +
			"#: " + filepath.Join(dir, "b.js") + ":2\n" +
			"#: " + filepath.Join(dir, "a.js") + ":1\n" +
			"#. n - number of files\n" +
			"#. n - number of files\n" +
			"msgid \"{n} file\"\nmsgid_plural \"{n} files\"\nmsgstr[0] \"\"\nmsgstr[1] \"\"\n\n"
		Expect(out.String()).To(Equal(want))
	})

	It("should capture comments written before the first argument", func() {
		write(test.Tree{"app.js": "__(\n  // shown on the login button\n  \"Sign in\"\n);\n"})
		_, err := poextract.Run(dir, out, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("#. shown on the login button\nmsgid \"Sign in\""))
	})

	It("should skip excluded directories", func() {
		write(test.Tree{
			"src/app.js":            "__(\"kept\");\n",
			"node_modules/dep/x.js": "__(\"dropped\");\n",
			"src/node_modules/y.js": "__(\"dropped too\");\n",
		})
		cfg.Exclude = []string{"node_modules"}
		_, err := poextract.Run(dir, out, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("kept"))
		Expect(out.String()).NotTo(ContainSubstring("dropped"))
	})

	It("should report unreadable paths and keep going", func() {
		write(test.Tree{"ok.js": "__(\"ok\");\n"})
		dangling := filepath.Join(dir, "dangling.js")
		if err := os.Symlink(filepath.Join(dir, "nowhere"), dangling); err != nil {
			Skip("symlinks not supported")
		}
		_, err := poextract.Run(dir, out, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(reporter.Errors).To(HaveKey(dangling))
		Expect(out.String()).To(ContainSubstring("msgid \"ok\""))
	})

	Context("with a custom registry", func() {
		It("should route extensions to the registered adapter", func() {
			write(test.Tree{"strings.tmpl": "__(\"from template\");\n"})
			registry := parsers.Default()
			js, ok := registry.Lookup("x.js")
			Expect(ok).To(BeTrue())
			registry.Register("tmpl", js)
			cfg.Registry = registry

			_, err := poextract.Run(dir, out, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(ContainSubstring("msgid \"from template\""))
		})
	})

	Context("with a language", func() {
		It("should add Language and Plural-Forms headers", func() {
			write(test.Tree{"app.js": "__(\"one\", \"many\");\n"})
			cfg.Language = "pl"
			_, err := poextract.Run(dir, out, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(HavePrefix(strings.TrimSuffix(header, "\n") + "\"Language: pl\\n\"\n\"Plural-Forms: nplurals=3;"))
			Expect(out.String()).To(ContainSubstring("msgstr[2] \"\"\n"))
			Expect(out.String()).NotTo(ContainSubstring("msgstr[3]"))
		})
	})

	Context("when a run fails", func() {
		It("should stop at a payload that is not a string literal", func() {
			write(test.Tree{"app.js": "__(\"fine\");\n__(variable);\n"})
			_, err := poextract.Run(dir, out, cfg)

			var payloadErr *poextract.PayloadError
			Expect(errors.As(err, &payloadErr)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(filepath.Join(dir, "app.js") + ":2"))
			Expect(out.String()).To(HavePrefix(header + "#: "))
			Expect(out.String()).To(HaveSuffix("msgid \"fine\"\nmsgstr \"\"\n\n"))
		})

		It("should stop at a file that does not parse", func() {
			write(test.Tree{"bad.ts": "let x: = ;\n"})
			_, err := poextract.Run(dir, out, cfg)

			var parseErr *poextract.ParseError
			Expect(errors.As(err, &parseErr)).To(BeTrue())
			Expect(parseErr.SourcePath()).To(Equal(filepath.Join(dir, "bad.ts")))
			Expect(out.String()).To(Equal(header))
		})
	})
})
