package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fcitx-scanner/internal/addon"
	"fcitx-scanner/internal/desktop"
)

func buildPlan(t *testing.T, text string) *addon.Plan {
	t.Helper()

	doc, err := desktop.Parse(strings.NewReader(text))
	require.NoError(t, err)

	p, err := addon.Build(doc)
	require.NoError(t, err)

	return p
}

// body strips the license banner so assertions can focus on the rest.
func body(out []byte) string {
	return strings.TrimPrefix(string(out), licenseBanner)
}

func TestGenerator_Generate_TypedWrapper(t *testing.T) {
	p := buildPlan(t, `
[FcitxAddon]
Name=fcitx-spell
Prefix=Spell
Function0=HintWords

[HintWords]
Name=hint_words
Return=SpellHint*
Arg0=const char*
Arg1=int
`)

	out, err := NewGenerator(DefaultGeneratorConfig()).Generate(p)
	require.NoError(t, err)

	expected := "DEFINE_GET_AND_INVOKE_FUNC(Spell, HintWords, 0)\n" +
		"static inline SpellHint*\n" +
		"FcitxSpellHintWords(FcitxInstance *instance, const char* arg0, int arg1)\n" +
		"{\n" +
		"    void *result;\n" +
		"    FCITX_DEF_MODULE_ARGS(args, (void*)(intptr_t)arg0, (void*)(intptr_t)arg1);\n" +
		"    result = FcitxSpellInvokeHintWords(instance, args);\n" +
		"    return (SpellHint*)(intptr_t)result;\n" +
		"}\n\n"

	assert.Contains(t, body(out), expected)
	assert.NotContains(t, body(out), "_WITH_ERROR")
}

func TestGenerator_Generate_Layout(t *testing.T) {
	p := buildPlan(t, `
[FcitxAddon]
Name=fcitx-x11
Prefix=X11
`)

	out, err := NewGenerator(DefaultGeneratorConfig()).Generate(p)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(string(out), licenseBanner))

	expected := "\n#ifndef __FCITX_MODULE_FCITX_X11_H\n" +
		"#define __FCITX_MODULE_FCITX_X11_H\n" +
		"\n" +
		"#ifdef __cplusplus\n" +
		"extern \"C\" {\n" +
		"#endif\n" +
		"\n" +
		"#include <stdint.h>\n" +
		"#include <fcitx-utils/utils.h>\n" +
		"#include <fcitx/instance.h>\n" +
		"#include <fcitx/addon.h>\n" +
		"#include <fcitx/module.h>\n" +
		"\n" +
		"DEFINE_GET_ADDON(\"fcitx-x11\", X11)\n" +
		"\n" +
		"\n" +
		"#ifdef __cplusplus\n" +
		"}\n" +
		"#endif\n" +
		"\n" +
		"#endif\n"

	assert.Equal(t, expected, body(out))
}

func TestGenerator_Generate_Macros(t *testing.T) {
	p := buildPlan(t, `
[FcitxAddon]
Name=m
Prefix=M
Macro0=WITH_VALUE
Macro1=BARE
Macro2=UNDEF
Macro3=MISSING

[WITH_VALUE]
Value=(1 << 3)

[BARE]

[UNDEF]
Define=no
`)

	out, err := NewGenerator(DefaultGeneratorConfig()).Generate(p)
	require.NoError(t, err)

	expected := "#ifdef WITH_VALUE\n#  undef WITH_VALUE\n#endif\n#define WITH_VALUE (1 << 3)\n" +
		"#ifdef BARE\n#  undef BARE\n#endif\n#define BARE\n" +
		"#ifdef UNDEF\n#  undef UNDEF\n#endif\n" +
		"#include <stdint.h>\n"

	assert.Contains(t, body(out), expected)
	assert.NotContains(t, body(out), "MISSING")
}

func TestGenerator_Generate_ErrorReturnAndDisabledWrapper(t *testing.T) {
	p := buildPlan(t, `
[FcitxAddon]
Name=e
Prefix=E
Function0=Ghost
Function1=Open

[Open]
Name=open
Return=boolean
ErrorReturn=false
EnableWrapper=no
`)

	out, err := NewGenerator(DefaultGeneratorConfig()).Generate(p)
	require.NoError(t, err)

	expected := "DEFINE_GET_AND_INVOKE_FUNC_WITH_ERROR(E, Open, 1, false)\n" +
		"#if 0\n" +
		"static inline boolean\n" +
		"FcitxEOpen(FcitxInstance *instance)\n" +
		"{\n" +
		"    void *result;\n" +
		"    FCITX_DEF_MODULE_ARGS(args);\n" +
		"    result = FcitxEInvokeOpen(instance, args);\n" +
		"    return (boolean)(intptr_t)result;\n" +
		"}\n" +
		"#endif\n\n"

	assert.Contains(t, body(out), expected)
	assert.NotContains(t, body(out), "Ghost")
}

func TestGenerator_Generate_CachedWrapper(t *testing.T) {
	p := buildPlan(t, `
[FcitxAddon]
Name=c
Prefix=C
Function0=Get

[Get]
Name=get
Return=void*
CacheResult=true
`)

	out, err := NewGenerator(DefaultGeneratorConfig()).Generate(p)
	require.NoError(t, err)

	expected := "{\n" +
		"    static boolean _init = false;\n" +
		"    static void *result = NULL;\n" +
		"    if (fcitx_likely(_init))\n" +
		"        return (void*)(intptr_t)result;\n" +
		"    _init = true;\n" +
		"    FCITX_DEF_MODULE_ARGS(args);\n" +
		"    result = FcitxCInvokeGet(instance, args);\n" +
		"    return (void*)(intptr_t)result;\n" +
		"}\n"

	assert.Contains(t, body(out), expected)
	assert.NotContains(t, body(out), "    void *result;\n")
}

func TestGenerator_Generate_Idempotent(t *testing.T) {
	text := `
[FcitxAddon]
Name=idem
Prefix=Idem
Macro0=A
Include0=<a.h>
Function0=F

[A]
Value=1

[F]
Name=f
Return=int
Arg0=int
CacheResult=1
`

	g := NewGenerator(DefaultGeneratorConfig())

	first, err := g.Generate(buildPlan(t, text))
	require.NoError(t, err)

	second, err := g.Generate(buildPlan(t, text))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerator_Generate_CustomConfig(t *testing.T) {
	p := buildPlan(t, "[FcitxAddon]\nName=x\nPrefix=X\n")

	out, err := NewGenerator(GeneratorConfig{GuardNamespace: "DEMO", License: "/* demo */\n"}).Generate(p)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(out), "/* demo */\n\n#ifndef __DEMO_MODULE_X_H\n"))
}

func TestGenerator_Generate_NilPlan(t *testing.T) {
	_, err := NewGenerator(DefaultGeneratorConfig()).Generate(nil)
	require.Error(t, err)
}

func TestBuildFunctionData(t *testing.T) {
	errRet := "NULL"

	fd := buildFunctionData("P", &addon.Function{
		Name:          "F",
		Index:         4,
		ReturnType:    "char*",
		ErrorReturn:   &errRet,
		CacheResult:   true,
		EnableWrapper: true,
		Args:          []string{"int", "long"},
	})

	assert.Equal(t, "char*", fd.ResultType)
	assert.True(t, fd.HasErrorReturn)
	assert.Equal(t, "NULL", fd.ErrorReturn)
	require.NotNil(t, fd.Cache)
	assert.Equal(t, "result", fd.Cache.Slot)
	assert.Equal(t, []argData{{0, "int"}, {1, "long"}}, fd.Args)

	void := buildFunctionData("P", &addon.Function{Name: "V", EnableWrapper: true})
	assert.Equal(t, "void", void.ResultType)
	assert.Nil(t, void.Cache)
	assert.False(t, void.HasErrorReturn)
}
