// Package plural maps language tags to gettext Plural-Forms rules for catalog headers.
package plural

import (
	"fmt"
	"strings"
)

// Rule describes the plural forms of a language family. Forms lists the CLDR
// categories in msgstr index order and Expr is the equivalent C expression used in
// a Plural-Forms header.
type Rule struct {
	Forms []string
	Expr  string
}

var (
	ruleOneOther = Rule{
		Forms: []string{"one", "other"},
		Expr:  "(n != 1)",
	}
	ruleArabic = Rule{
		Forms: []string{"zero", "one", "two", "few", "many", "other"},
		Expr:  "(n==0 ? 0 : n==1 ? 1 : n==2 ? 2 : n>=3 && n<=10 ? 3 : n>=11 && n<=99 ? 4 : 5)",
	}
	ruleRussian = Rule{
		Forms: []string{"one", "few", "many"},
		Expr:  "(n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<12 || n%100>14) ? 1 : 2)",
	}
	rulePolish = Rule{
		Forms: []string{"one", "few", "many"},
		Expr:  "(n==1 ? 0 : n%10>=2 && n%10<=4 && (n%100<12 || n%100>14) ? 1 : 2)",
	}
	ruleWelsh = Rule{
		Forms: []string{"zero", "one", "two", "few", "many", "other"},
		Expr:  "(n==0 ? 0 : n==1 ? 1 : n==2 ? 2 : n==3 ? 3 : n==6 ? 4 : 5)",
	}
	ruleHebrew = Rule{
		Forms: []string{"one", "two", "few", "many", "other"},
		Expr:  "(n==1 ? 0 : n==2 ? 1 : n>=3 && n<=10 ? 2 : n>=11 && n<=99 ? 3 : 4)",
	}
)

// Default is the two-form rule used when no language is configured.
func Default() Rule {
	return ruleOneOther
}

// RuleFor returns the rule for the language tag. Unknown languages report false.
func RuleFor(lang string) (Rule, bool) {
	switch baseLang(lang) {
	case "ar":
		return ruleArabic, true
	case "ru", "uk", "be", "sr", "hr", "bs", "sh":
		return ruleRussian, true
	case "pl":
		return rulePolish, true
	case "cy", "br", "ga", "gd", "gv", "kw", "mt", "sm", "ak":
		return ruleWelsh, true
	case "he", "iw":
		return ruleHebrew, true
	case "en", "es", "fr", "de", "it", "pt", "nl", "no", "sv", "da", "fi", "tr", "el", "ja", "ko", "zh", "th", "vi", "id", "hi":
		return ruleOneOther, true
	}
	return Rule{}, false
}

// N is the number of msgstr forms.
func (r Rule) N() int {
	return len(r.Forms)
}

// Header renders the Plural-Forms header value.
func (r Rule) Header() string {
	return fmt.Sprintf("nplurals=%d; plural=%s;", r.N(), r.Expr)
}

func baseLang(lang string) string {
	base := strings.ToLower(strings.TrimSpace(lang))
	if idx := strings.Index(base, "-"); idx > 0 {
		base = base[:idx]
	}
	if idx := strings.Index(base, "_"); idx > 0 {
		base = base[:idx]
	}
	return base
}
