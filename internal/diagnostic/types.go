package diagnostic

import (
	"fmt"
	"strings"

	"fcitx-scanner/internal/common"
)

// Codes emitted by the descriptor builder.
const (
	CodeCacheVoidReturn = "cache-void-return"
	CodeItemSkipped     = "item-skipped"
)

// Diagnostics holds all diagnostic information from resolution.
type Diagnostics struct {
	Warnings []Diagnostic `yaml:"warnings,omitempty" toml:"warnings,omitempty"`
	Infos    []Diagnostic `yaml:"infos,omitempty" toml:"infos,omitempty"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity `yaml:"severity" toml:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `yaml:"code" toml:"code"`
	// Message is the human-readable description.
	Message string `yaml:"message" toml:"message"`
	// Item names the macro or function group this relates to (if any).
	Item string `yaml:"item,omitempty" toml:"item,omitempty"`
	// Field names the entry key this relates to (if any).
	Field string `yaml:"field,omitempty" toml:"field,omitempty"`
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	default:
		return common.UnknownStr
	}
}

// MarshalText renders the severity by name in yaml and toml dumps.
func (s DiagnosticSeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, item, field string) {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, item, field))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, item, field string) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, item, field))
}

func newDiagnostic(sev DiagnosticSeverity, code, message, item, field string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Item:     item,
		Field:    field,
	}
}

// All returns every diagnostic, most severe first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Len returns the total number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Warnings) + len(d.Infos)
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Item != "" {
		prefix = append(prefix, "["+d.Item+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
