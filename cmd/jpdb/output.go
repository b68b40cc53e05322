package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type OutputFormat string

func (f *OutputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", val)
}

func (f OutputFormat) String() string {
	return string(f)
}

func (f *OutputFormat) Type() string {
	return "OutputFormat"
}

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

var (
	_                pflag.Value = (*OutputFormat)(nil)
	allOutputFormats             = []OutputFormat{OutputText, OutputJSON, OutputYAML}
)

// printer renders command results in the selected format.
type printer struct {
	w      io.Writer
	format OutputFormat

	heading *color.Color
	success *color.Color
	faint   *color.Color
}

func newPrinter(w io.Writer, format OutputFormat) printer {
	return printer{
		w:       w,
		format:  format,
		heading: color.New(color.Bold),
		success: color.New(color.FgGreen),
		faint:   color.New(color.Faint),
	}
}

// print encodes v for json and yaml, and calls text otherwise.
func (p printer) print(v any, text func(w io.Writer) error) error {
	switch p.format {
	case OutputJSON:
		encoder := json.NewEncoder(p.w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encoder.Encode > %w", err)
		}
		return nil
	case OutputYAML:
		encoder := yaml.NewEncoder(p.w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encoder.Encode > %w", err)
		}
		return encoder.Close()
	default:
		return text(p.w)
	}
}

type doneResult struct {
	OK bool `json:"ok" yaml:"ok"`
}

// done reports a successful operation that returns nothing.
func (p printer) done(format string, args ...any) error {
	return p.print(doneResult{OK: true}, func(w io.Writer) error {
		_, err := p.success.Fprintf(w, format+"\n", args...)
		return err
	})
}
