package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/loopcontext/poextract"
)

// options holds the command line flags.
type options struct {
	markers    []string
	configFile string
	lang       string
	exclude    []string
	color      string
}

func (o *options) register(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&o.markers, "marker", "m", nil, `marker call chain such as "i18n.t", repeatable (default "__")`)
	fs.StringVar(&o.configFile, "config", "", "YAML or TOML file with markers, lang and exclude")
	fs.StringVar(&o.lang, "lang", "", "target language; adds Language and Plural-Forms headers")
	fs.StringArrayVar(&o.exclude, "exclude", nil, "directory name to skip, repeatable")
	fs.StringVar(&o.color, "color", string(colorAuto), "colorize diagnostics (auto|on|off)")
}

// config loads the config file, if any, and lets flags that were set override it.
func (o *options) config(fs *pflag.FlagSet) (poextract.Config, error) {
	var cfg poextract.Config
	if o.configFile != "" {
		fc, err := poextract.LoadConfigFile(o.configFile)
		if err != nil {
			return poextract.Config{}, err
		}
		cfg = fc.Config()
	}
	if fs.Changed("marker") {
		cfg.Markers = o.markers
	}
	if fs.Changed("lang") {
		cfg.Language = o.lang
	}
	if fs.Changed("exclude") {
		cfg.Exclude = o.exclude
	}
	return cfg, nil
}

type colorMode string

const (
	colorAuto colorMode = "auto"
	colorOn   colorMode = "on"
	colorOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorAuto, nil
	case "on":
		return colorOn, nil
	case "off":
		return colorOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

func errorColor(mode colorMode, w io.Writer) *color.Color {
	c := color.New(color.FgRed, color.Bold)
	if useColor(mode, w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func useColor(mode colorMode, w io.Writer) bool {
	switch mode {
	case colorOn:
		return true
	case colorOff:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
