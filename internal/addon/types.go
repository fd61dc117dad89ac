package addon

import (
	"github.com/cockroachdb/errors"

	"fcitx-scanner/internal/diagnostic"
)

// GroupName is the group that describes the addon itself.
const GroupName = "FcitxAddon"

// Entry keys read by the builder.
const (
	KeyName          = "Name"
	KeyPrefix        = "Prefix"
	KeyMacro         = "Macro"
	KeyInclude       = "Include"
	KeyFunction      = "Function"
	KeyValue         = "Value"
	KeyDefine        = "Define"
	KeyUndefine      = "Undefine"
	KeyArg           = "Arg"
	KeyReturn        = "Return"
	KeyErrorReturn   = "ErrorReturn"
	KeyCacheResult   = "CacheResult"
	KeyEnableWrapper = "EnableWrapper"
)

// Structural errors. Either one aborts the whole run.
var (
	ErrNoAddonGroup = errors.New("missing [" + GroupName + "] group")
	ErrMissingField = errors.New("missing required entry")
)

// Addon describes the module as a whole.
type Addon struct {
	// Name is the display name, also used to build the include guard.
	Name string `yaml:"name" toml:"name"`
	// Prefix is the identifier fragment used in generated symbol names.
	Prefix string `yaml:"prefix" toml:"prefix"`
	// Macros lists macro group names in declaration order.
	Macros []string `yaml:"macros,omitempty" toml:"macros,omitempty"`
	// Includes lists include targets exactly as written, quotes or brackets
	// included.
	Includes []string `yaml:"includes,omitempty" toml:"includes,omitempty"`
	// Functions lists function group names in declaration order.
	Functions []string `yaml:"functions,omitempty" toml:"functions,omitempty"`
}

// Macro describes one preprocessor macro to reset and optionally redefine.
type Macro struct {
	Name   string `yaml:"name" toml:"name"`
	Define bool   `yaml:"define" toml:"define"`
	Value  string `yaml:"value,omitempty" toml:"value,omitempty"`
}

// Function describes one exported addon function.
type Function struct {
	Name string `yaml:"name" toml:"name"`
	// Index is the position of the function in the addon's declared list and
	// the key into the module's function table.
	Index int `yaml:"index" toml:"index"`
	// ReturnType is empty for functions that return nothing.
	ReturnType string `yaml:"return_type,omitempty" toml:"return_type,omitempty"`
	// ErrorReturn is the literal returned when the lookup fails. Nil selects
	// the plain invocation form.
	ErrorReturn   *string  `yaml:"error_return,omitempty" toml:"error_return,omitempty"`
	CacheResult   bool     `yaml:"cache_result" toml:"cache_result"`
	EnableWrapper bool     `yaml:"enable_wrapper" toml:"enable_wrapper"`
	Args          []string `yaml:"args,omitempty" toml:"args,omitempty"`
}

// HasReturn reports whether the function produces a value.
func (f *Function) HasReturn() bool {
	return f.ReturnType != ""
}

// Resolved is the outcome of looking a declared name up in the document:
// either Found with a descriptor, or Missing with the reason.
type Resolved[T any] struct {
	Name   string `yaml:"name" toml:"name"`
	Found  bool   `yaml:"found" toml:"found"`
	Reason string `yaml:"reason,omitempty" toml:"reason,omitempty"`
	Desc   *T     `yaml:"desc,omitempty" toml:"desc,omitempty"`
}

func found[T any](name string, desc *T) Resolved[T] {
	return Resolved[T]{Name: name, Found: true, Desc: desc}
}

func missing[T any](name, reason string) Resolved[T] {
	return Resolved[T]{Name: name, Reason: reason}
}

// Plan is the fully resolved input of the emission engine.
type Plan struct {
	Addon       Addon                  `yaml:"addon" toml:"addon"`
	Macros      []Resolved[Macro]      `yaml:"macros,omitempty" toml:"macros,omitempty"`
	Functions   []Resolved[Function]   `yaml:"functions,omitempty" toml:"functions,omitempty"`
	Diagnostics diagnostic.Diagnostics `yaml:"diagnostics" toml:"diagnostics"`
}
