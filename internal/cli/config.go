package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/tabulate"
)

// fileConfig is the YAML config file. Unset fields keep the flag defaults.
type fileConfig struct {
	Format      string      `yaml:"format"`
	Header      *bool       `yaml:"header"`
	ANSI        *bool       `yaml:"ansi"`
	Align       alignConfig `yaml:"align"`
	BorderColor string      `yaml:"border_color"`
	Color       string      `yaml:"color"`
}

type alignConfig struct {
	Strings string `yaml:"strings"`
	Numbers string `yaml:"numbers"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// apply copies config values into opts for every flag the user did not set
// explicitly.
func (cfg fileConfig) apply(fs *pflag.FlagSet, opts *options) error {
	unset := func(name string) bool { return !fs.Changed(name) }

	if cfg.Format != "" && unset("fmt") {
		opts.format = cfg.Format
	}
	if cfg.Header != nil && unset("header") {
		opts.header = *cfg.Header
	}
	if cfg.ANSI != nil && unset("ansi") {
		opts.ansi = *cfg.ANSI
	}
	if cfg.Align.Strings != "" && unset("align-str") {
		a, err := tabulate.ParseAlign(cfg.Align.Strings)
		if err != nil {
			return fmt.Errorf("config align.strings: %w", err)
		}
		opts.strAlign = a
	}
	if cfg.Align.Numbers != "" && unset("align-num") {
		a, err := tabulate.ParseAlign(cfg.Align.Numbers)
		if err != nil {
			return fmt.Errorf("config align.numbers: %w", err)
		}
		opts.numAlign = a
	}
	if cfg.BorderColor != "" && unset("border-color") {
		opts.borderColor = cfg.BorderColor
	}
	if cfg.Color != "" && unset("color") {
		opts.color = cfg.Color
	}
	return nil
}
