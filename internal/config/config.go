// Package config loads the YAML configuration of the panes CLI.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/panes/format"
	"github.com/iw2rmb/panes/markdown"
)

type Config struct {
	Code     Code     `yaml:"code"`
	Markdown Markdown `yaml:"markdown"`
	Log      Log      `yaml:"log"`
}

type Code struct {
	// Grammar is used by the format command; the code panel always formats
	// JavaScript.
	Grammar string `yaml:"grammar"`
	UseTabs bool   `yaml:"use_tabs"`
}

type Markdown struct {
	Style    string `yaml:"style"`
	WordWrap int    `yaml:"word_wrap"`
}

type Log struct {
	File  string `yaml:"file"`
	Debug bool   `yaml:"debug"`
}

func Default() Config {
	return Config{
		Code:     Code{Grammar: string(format.JavaScript)},
		Markdown: Markdown{Style: markdown.DefaultStyle, WordWrap: markdown.DefaultWordWrap},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "config: read")
	}
	if err := Parse(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

// Parse decodes data into cfg, keeping the values data leaves unset, and
// validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(err, "decode")
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := format.ParseGrammar(c.Code.Grammar); err != nil {
		return errors.Wrap(err, "code.grammar")
	}
	if c.Markdown.Style == "" {
		return errors.New("markdown.style: must not be empty")
	}
	if c.Markdown.WordWrap < 0 {
		return errors.Errorf("markdown.word_wrap: must not be negative, got %d", c.Markdown.WordWrap)
	}
	return nil
}

// FormatOptions returns the formatter options for the format command.
func (c Code) FormatOptions() (format.Options, error) {
	g, err := format.ParseGrammar(c.Grammar)
	if err != nil {
		return format.Options{}, err
	}
	opts := format.DefaultOptions()
	opts.Grammar = g
	opts.UseTabs = c.UseTabs
	return opts, nil
}
