package addon

import (
	"strings"

	"github.com/cockroachdb/errors"

	"fcitx-scanner/internal/desktop"
	"fcitx-scanner/internal/diagnostic"
	"fcitx-scanner/internal/value"
)

// Reasons recorded on Missing resolutions.
const (
	ReasonNoGroup = "no group with this name"
	ReasonNoName  = "group has no Name entry"
)

var voidToken = []string{"void"}

// LoadAddon reads the addon descriptor from the FcitxAddon group.
func LoadAddon(doc *desktop.Document) (*Addon, error) {
	grp, ok := doc.FindGroup(GroupName)
	if !ok {
		return nil, errors.WithHint(ErrNoAddonGroup,
			"the description file must contain a ["+GroupName+"] section")
	}

	name, err := required(grp, KeyName)
	if err != nil {
		return nil, err
	}

	prefix, err := required(grp, KeyPrefix)
	if err != nil {
		return nil, err
	}

	return &Addon{
		Name:      name,
		Prefix:    prefix,
		Macros:    value.NumberedList(grp, KeyMacro, false, nil),
		Includes:  value.NumberedList(grp, KeyInclude, false, nil),
		Functions: value.NumberedList(grp, KeyFunction, true, nil),
	}, nil
}

func required(grp *desktop.Group, key string) (string, error) {
	v, ok := grp.Value(key)
	if !ok {
		return "", errors.WithHintf(
			errors.Wrapf(ErrMissingField, "[%s] %s", grp.Name, key),
			"add a %s= entry to the [%s] section", key, grp.Name)
	}

	return v, nil
}

// ResolveMacro looks up the macro group called name.
func ResolveMacro(doc *desktop.Document, name string) Resolved[Macro] {
	grp, ok := doc.FindGroup(name)
	if !ok {
		return missing[Macro](name, ReasonNoGroup)
	}

	v, _ := grp.Value(KeyValue)

	return found(name, &Macro{
		Name:   name,
		Define: macroDefine(grp),
		Value:  v,
	})
}

// macroDefine decides whether the macro is redefined after the undef.
// An explicit Define entry wins; otherwise Undefine is read inverted.
func macroDefine(grp *desktop.Group) bool {
	if v, ok := grp.Value(KeyDefine); ok {
		return value.ParseBool(v, false)
	}

	if v, ok := grp.Value(KeyUndefine); ok {
		return !value.ParseBool(v, false)
	}

	return true
}

// ResolveFunction looks up the function group called name. index is the
// position of name in the addon's declared function list. Policy downgrades
// are recorded in diags.
func ResolveFunction(doc *desktop.Document, name string, index int, diags *diagnostic.Diagnostics) Resolved[Function] {
	grp, ok := doc.FindGroup(name)
	if !ok {
		return missing[Function](name, ReasonNoGroup)
	}

	// The Name entry marks a well-formed function group; its value is unused.
	if !value.Has(grp, KeyName) {
		return missing[Function](name, ReasonNoName)
	}

	fn := &Function{
		Name:          name,
		Index:         index,
		Args:          value.NumberedList(grp, KeyArg, true, nil),
		ReturnType:    returnType(grp),
		CacheResult:   value.Bool(grp, KeyCacheResult, false),
		EnableWrapper: value.Bool(grp, KeyEnableWrapper, true),
	}

	if v, ok := grp.Value(KeyErrorReturn); ok {
		fn.ErrorReturn = &v
	}

	if fn.CacheResult && !fn.HasReturn() {
		diags.AddWarning(diagnostic.CodeCacheVoidReturn,
			"Cannot cache result of type void.", name, KeyCacheResult)

		fn.CacheResult = false
	}

	return found(name, fn)
}

// returnType reads the Return entry. Blank values and "void" both mean the
// function returns nothing.
func returnType(grp *desktop.Group) string {
	v, ok := grp.Value(KeyReturn)
	if !ok {
		return ""
	}

	v = strings.TrimLeft(v, desktop.Blank)
	if v == "" || value.StripMatch(v, false, voidToken) > 0 {
		return ""
	}

	return v
}

// Build loads the addon descriptor and resolves every declared macro and
// function, in declaration order.
func Build(doc *desktop.Document) (*Plan, error) {
	a, err := LoadAddon(doc)
	if err != nil {
		return nil, err
	}

	p := &Plan{Addon: *a}

	for _, name := range a.Macros {
		r := ResolveMacro(doc, name)
		if !r.Found {
			noteSkipped(&p.Diagnostics, "macro", r.Name, r.Reason)
		}

		p.Macros = append(p.Macros, r)
	}

	for i, name := range a.Functions {
		r := ResolveFunction(doc, name, i, &p.Diagnostics)
		if !r.Found {
			noteSkipped(&p.Diagnostics, "function", r.Name, r.Reason)
		}

		p.Functions = append(p.Functions, r)
	}

	return p, nil
}

// noteSkipped records a declared name that resolved to nothing. Skips are
// informational; the item is left out of the header and the run goes on.
func noteSkipped(diags *diagnostic.Diagnostics, kind, name, reason string) {
	diags.AddInfo(diagnostic.CodeItemSkipped, "Skipping "+kind+": "+reason, name, "")
}
