// Package scanner drives a single generation run: read the description
// file, resolve descriptors, render the header and write it out.
package scanner

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"fcitx-scanner/internal/addon"
	"fcitx-scanner/internal/desktop"
	"fcitx-scanner/internal/diagnostic"
	"fcitx-scanner/internal/gen"
	"fcitx-scanner/internal/logger"
)

// Describe output formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Options controls a run.
type Options struct {
	// Atomic writes the header through a temporary file.
	Atomic bool
	// DumpPlan logs the full resolved plan at debug level.
	DumpPlan bool
	// Generator configures the emission engine.
	Generator gen.GeneratorConfig
}

// DefaultOptions returns the options used by the command line by default.
func DefaultOptions() Options {
	return Options{
		Atomic:    true,
		Generator: gen.DefaultGeneratorConfig(),
	}
}

// Resolve reads the description file at input and resolves its plan.
func Resolve(input string) (*addon.Plan, error) {
	doc, err := desktop.Load(input)
	if err != nil {
		return nil, err
	}

	logger.Logger.Debugw("Description loaded", "input", input, "groups", len(doc.Groups()))

	p, err := addon.Build(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid addon description %s", input)
	}

	return p, nil
}

// Render produces the header for input without touching any output file.
func Render(input string, opts Options) ([]byte, error) {
	p, err := Resolve(input)
	if err != nil {
		return nil, err
	}

	report(p, opts)

	out, err := gen.NewGenerator(opts.Generator).Generate(p)
	if err != nil {
		return nil, errors.Wrapf(err, "generating header for %s", input)
	}

	return out, nil
}

// Run generates the header for input and writes it to output. Nothing is
// written unless generation succeeds.
func Run(input, output string, opts Options) error {
	out, err := Render(input, opts)
	if err != nil {
		return err
	}

	if err := gen.WriteFile(output, out, opts.Atomic); err != nil {
		return err
	}

	logger.Logger.Infow("Header generated", "input", input, "output", output, "bytes", len(out))

	return nil
}

// Check reports whether output already matches what Run would write.
func Check(input, output string, opts Options) (bool, error) {
	out, err := Render(input, opts)
	if err != nil {
		return false, err
	}

	return gen.IsUpToDate(output, out)
}

// Describe writes the resolved plan for input to w in the given format.
func Describe(input, format string, w io.Writer) error {
	p, err := Resolve(input)
	if err != nil {
		return err
	}

	switch format {
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(p); err != nil {
			return errors.Wrap(err, "encoding plan as yaml")
		}

		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(p); err != nil {
			return errors.Wrap(err, "encoding plan as toml")
		}

		return nil
	default:
		return errors.WithHint(
			errors.Newf("unsupported format %q", format),
			"use yaml or toml")
	}
}

// report logs the plan's diagnostics. Skipped items show up at -v, policy
// downgrades always.
func report(p *addon.Plan, opts Options) {
	log := logger.Logger

	for _, d := range p.Diagnostics.All() {
		switch d.Severity {
		case diagnostic.DiagnosticWarning:
			log.Warnw(d.Message, "code", d.Code, "item", d.Item, "field", d.Field)
		default:
			log.Infow(d.Message, "code", d.Code, "item", d.Item)
		}
	}

	if opts.DumpPlan {
		log.Debugf("Resolved plan:\n%s", spew.Sdump(p))
	}
}
