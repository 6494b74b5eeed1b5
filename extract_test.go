package poextract

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/loopcontext/poextract/internal/syntax/gosyntax"
	"github.com/loopcontext/poextract/internal/syntax/jssyntax"
)

const goSource = `package main

func main() {
	__("Hello")
	i18n.t("One file", "Many files")
	i18n.x.t(/* greeting */ "Hi")
	a.t("not a marker")
	__()
	__(name)
	__("Good" + "bye")
	__("outer", __("inner"))
}
`

const jsSource = `// app

function main() {
	__("Hello")
	i18n.t("One file", "Many files")
	i18n.x.t(/* greeting */ "Hi")
	a.t("not a marker")
	__()
	__(name)
	__("Good" + "bye")
	__("outer", __("inner"))
}
`

func wantMessages() []Message {
	return []Message{
		msg("app", 4, SingularPayload("Hello")),
		msg("app", 5, PluralPayload("One file", "Many files")),
		msg("app", 6, SingularPayload("Hi"), "#. greeting"),
		msg("app", 9, InvalidPayload("name")),
		msg("app", 10, SingularPayload("Goodbye")),
		msg("app", 11, SingularPayload("outer")),
		msg("app", 11, SingularPayload("inner")),
	}
}

func TestExtractGo(t *testing.T) {
	markers, err := ParseMarkers([]string{"__", "i18n.t"})
	if err != nil {
		t.Fatal(err)
	}
	f, err := gosyntax.Parse("app", goSource)
	if err != nil {
		t.Fatal(err)
	}
	got := NewExtractor(markers).Extract(f)
	if diff := cmp.Diff(wantMessages(), got); diff != "" {
		t.Errorf("Extract (-want +got):\n%s", diff)
	}
}

func TestExtractJavaScriptMatchesGo(t *testing.T) {
	markers, err := ParseMarkers([]string{"__", "i18n.t"})
	if err != nil {
		t.Fatal(err)
	}
	goFile, err := gosyntax.Parse("app", goSource)
	if err != nil {
		t.Fatal(err)
	}
	jsFile, err := jssyntax.ParseJavaScript("app", jsSource)
	if err != nil {
		t.Fatal(err)
	}
	ext := NewExtractor(markers)
	if diff := cmp.Diff(ext.Extract(goFile), ext.Extract(jsFile)); diff != "" {
		t.Errorf("Go and JavaScript extraction differ (-go +js):\n%s", diff)
	}
}

func TestExtractDefaultMarker(t *testing.T) {
	f, err := jssyntax.ParseJavaScript("x.js", "i18n.t(\"a\");\n__(\"b\");\n")
	if err != nil {
		t.Fatal(err)
	}
	got := NewExtractor(nil).Extract(f)
	if len(got) != 1 || got[0].Payload.Singular != "b" {
		t.Errorf("Extract() = %+v, want only \"b\"", got)
	}
}

func TestExtractNonStringSecondArgument(t *testing.T) {
	f, err := jssyntax.ParseJavaScript("x.js", "__(\"one\", count);\n")
	if err != nil {
		t.Fatal(err)
	}
	got := NewExtractor(nil).Extract(f)
	if diff := cmp.Diff([]Message{msg("x.js", 1, SingularPayload("one"))}, got); diff != "" {
		t.Errorf("Extract (-want +got):\n%s", diff)
	}
}
