package gen

import (
	"bytes"
	"text/template"

	"github.com/cockroachdb/errors"

	"fcitx-scanner/internal/addon"
	"fcitx-scanner/internal/common"
)

// GeneratorConfig holds configuration for header generation.
type GeneratorConfig struct {
	// GuardNamespace is the leading part of the include guard,
	// as in __<NAMESPACE>_MODULE_<NAME>_H.
	GuardNamespace string
	// License is the banner written at the very top of the header. It must
	// end with a newline.
	License string
}

// DefaultGeneratorConfig returns the configuration that produces fcitx
// module headers.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GuardNamespace: "FCITX",
		License:        licenseBanner,
	}
}

// Generator renders addon plans.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// fileData holds everything the header template needs.
type fileData struct {
	License   string
	Guard     string
	Name      string
	Prefix    string
	Macros    []*addon.Macro
	Includes  []string
	Functions []functionData
}

// functionData is one invocation macro plus its wrapper.
type functionData struct {
	Prefix         string
	Name           string
	Index          int
	HasErrorReturn bool
	ErrorReturn    string
	Wrapper        bool
	// ReturnType is empty for void functions; ResultType is what the
	// wrapper declares.
	ReturnType string
	ResultType string
	Args       []argData
	// Cache is set when the wrapper memoizes the first result.
	Cache *cacheCell
}

type argData struct {
	Index int
	Type  string
}

// cacheCell is the lazily initialized storage of a caching wrapper: a
// one-shot flag and the slot holding the raw result. The cell is a plain
// static, so cached wrappers are not safe to call concurrently before the
// first call has returned.
type cacheCell struct {
	Flag string
	// Slot doubles as the result variable of the wrapper body.
	Slot string
}

func newCacheCell() *cacheCell {
	return &cacheCell{Flag: "_init", Slot: "result"}
}

// Generate renders the header for p.
func (g *Generator) Generate(p *addon.Plan) ([]byte, error) {
	if p == nil {
		return nil, errors.New("nil plan")
	}

	data := g.buildFileData(p)

	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "executing header template")
	}

	return buf.Bytes(), nil
}

func (g *Generator) buildFileData(p *addon.Plan) *fileData {
	data := &fileData{
		License:  g.config.License,
		Guard:    g.config.GuardNamespace + "_MODULE_" + common.MacroName(p.Addon.Name),
		Name:     p.Addon.Name,
		Prefix:   p.Addon.Prefix,
		Includes: p.Addon.Includes,
	}

	for _, m := range p.Macros {
		if !m.Found {
			continue
		}

		data.Macros = append(data.Macros, m.Desc)
	}

	for _, f := range p.Functions {
		if !f.Found {
			continue
		}

		data.Functions = append(data.Functions, buildFunctionData(p.Addon.Prefix, f.Desc))
	}

	return data
}

func buildFunctionData(prefix string, fn *addon.Function) functionData {
	fd := functionData{
		Prefix:     prefix,
		Name:       fn.Name,
		Index:      fn.Index,
		Wrapper:    fn.EnableWrapper,
		ReturnType: fn.ReturnType,
		ResultType: fn.ReturnType,
	}

	if !fn.HasReturn() {
		fd.ResultType = "void"
	}

	if fn.ErrorReturn != nil {
		fd.HasErrorReturn = true
		fd.ErrorReturn = *fn.ErrorReturn
	}

	for i, t := range fn.Args {
		fd.Args = append(fd.Args, argData{Index: i, Type: t})
	}

	if fn.CacheResult && fn.HasReturn() {
		fd.Cache = newCacheCell()
	}

	return fd
}

var headerTemplate = newHeaderTemplate()

func newHeaderTemplate() *template.Template {
	t := template.Must(template.New("header").Parse(headerText))
	template.Must(t.New("macro").Parse(macroText))
	template.Must(t.New("function").Parse(functionText))

	return t
}

const headerText = `{{.License}}
#ifndef __{{.Guard}}_H
#define __{{.Guard}}_H

#ifdef __cplusplus
extern "C" {
#endif

{{range .Macros}}{{template "macro" .}}{{end}}#include <stdint.h>
#include <fcitx-utils/utils.h>
#include <fcitx/instance.h>
#include <fcitx/addon.h>
#include <fcitx/module.h>{{range .Includes}}
#include {{.}}{{end}}

DEFINE_GET_ADDON("{{.Name}}", {{.Prefix}})

{{range .Functions}}{{template "function" .}}{{end}}
#ifdef __cplusplus
}
#endif

#endif
`

const macroText = `#ifdef {{.Name}}
#  undef {{.Name}}
#endif
{{if .Define}}#define {{.Name}}{{if .Value}} {{.Value}}{{end}}
{{end}}`

const functionText = `{{if .HasErrorReturn}}DEFINE_GET_AND_INVOKE_FUNC_WITH_ERROR({{.Prefix}}, {{.Name}}, {{.Index}}, {{.ErrorReturn}})
{{else}}DEFINE_GET_AND_INVOKE_FUNC({{.Prefix}}, {{.Name}}, {{.Index}})
{{end}}{{if not .Wrapper}}#if 0
{{end}}static inline {{.ResultType}}
Fcitx{{.Prefix}}{{.Name}}(FcitxInstance *instance{{range .Args}}, {{.Type}} arg{{.Index}}{{end}})
{
{{with .Cache}}    static boolean {{.Flag}} = false;
    static void *{{.Slot}} = NULL;
    if (fcitx_likely({{.Flag}}))
        return ({{$.ReturnType}})(intptr_t){{.Slot}};
    {{.Flag}} = true;
{{else}}{{if .ReturnType}}    void *result;
{{end}}{{end}}    FCITX_DEF_MODULE_ARGS(args{{range .Args}}, (void*)(intptr_t)arg{{.Index}}{{end}});
    {{if .ReturnType}}result = {{end}}Fcitx{{.Prefix}}Invoke{{.Name}}(instance, args);
{{if .ReturnType}}    return ({{.ReturnType}})(intptr_t)result;
{{end}}}
{{if not .Wrapper}}#endif
{{end}}
`

const licenseBanner = `/************************************************************************
 * This program is free software; you can redistribute it and/or modify *
 * it under the terms of the GNU General Public License as published by *
 * the Free Software Foundation; either version 2 of the License, or    *
 * (at your option) any later version.                                  *
 *                                                                      *
 * This program is distributed in the hope that it will be useful,      *
 * but WITHOUT ANY WARRANTY; without even the implied warranty of       *
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the        *
 * GNU General Public License for more details.                         *
 *                                                                      *
 * You should have received a copy of the GNU General Public License    *
 * along with this program; if not, write to the                        *
 * Free Software Foundation, Inc.,                                      *
 * 51 Franklin St, Fifth Floor, Boston, MA 02110-1301, USA.             *
 ************************************************************************/
`
