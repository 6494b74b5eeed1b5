package poextract

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/loopcontext/poextract/internal/parsers"
	"github.com/loopcontext/poextract/internal/plural"
)

// Config controls one extraction run. The zero value extracts __ calls from every
// file type the default registry knows.
type Config struct {
	// Markers are dotted call chains such as "__" or "i18n.t". Empty means "__".
	Markers []string
	// Language is a BCP 47 tag. When set, the header gains Language and Plural-Forms
	// lines and plural entries get as many msgstr forms as the language needs.
	Language string
	// Exclude lists directory names to skip, e.g. "node_modules".
	Exclude  []string
	Registry *parsers.Registry
	Reporter Reporter
	Logger   *slog.Logger
}

// FileConfig is the on-disk form of Config, read from YAML or TOML.
type FileConfig struct {
	Markers StringList `yaml:"markers" toml:"markers"`
	Lang    string     `yaml:"lang" toml:"lang"`
	Exclude StringList `yaml:"exclude" toml:"exclude"`
}

// LoadConfigFile reads a .yaml, .yml or .toml config file.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return FileConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return FileConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.UnmarshalStrict(data, &fc); err != nil {
			return FileConfig{}, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		return FileConfig{}, fmt.Errorf("%s: unsupported config format (want .yaml, .yml or .toml)", path)
	}
	return fc, nil
}

// Config converts the file values into a Config.
func (fc FileConfig) Config() Config {
	return Config{
		Markers:  []string(fc.Markers),
		Language: fc.Lang,
		Exclude:  []string(fc.Exclude),
	}
}

// resolvedConfig is Config with defaults applied and values parsed.
type resolvedConfig struct {
	markers  []Marker
	lang     string
	rule     plural.Rule
	exclude  []string
	registry *parsers.Registry
	reporter Reporter
	logger   *slog.Logger
}

func (cfg Config) resolve() (resolvedConfig, error) {
	rc := resolvedConfig{
		exclude:  cfg.Exclude,
		registry: cfg.Registry,
		reporter: cfg.Reporter,
		logger:   cfg.Logger,
	}
	if rc.logger == nil {
		rc.logger = slog.Default()
	}
	if rc.registry == nil {
		rc.registry = parsers.Default()
	}
	if rc.reporter == nil {
		rc.reporter = LogReporter{Logger: rc.logger}
	}
	markers, err := ParseMarkers(cfg.Markers)
	if err != nil {
		return resolvedConfig{}, err
	}
	rc.markers = markers

	rc.rule = plural.Default()
	if strings.TrimSpace(cfg.Language) != "" {
		tag, rule, ok, err := ResolveLanguage(cfg.Language)
		if err != nil {
			return resolvedConfig{}, err
		}
		if !ok {
			rc.logger.Warn("no plural rule for language, using two forms", "lang", tag)
		}
		rc.lang, rc.rule = tag, rule
	}
	return rc, nil
}

// ResolveLanguage canonicalizes a BCP 47 tag and returns its plural rule. ok is false
// when the language has no known rule; the two-form default is returned then.
func ResolveLanguage(lang string) (tag string, rule plural.Rule, ok bool, err error) {
	t, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return "", plural.Rule{}, false, fmt.Errorf("invalid language %q: %w", lang, err)
	}
	tag = t.String()
	base, _ := t.Base()
	rule, ok = plural.RuleFor(base.String())
	if !ok {
		rule = plural.Default()
	}
	return tag, rule, ok, nil
}
