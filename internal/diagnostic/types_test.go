package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsCollect(t *testing.T) {
	var d Diagnostics

	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.All())

	d.AddInfo(CodeItemSkipped, "Skipping function: no group with this name", "Ghost", "")
	d.AddWarning(CodeCacheVoidReturn, "Cannot cache result of type void.", "GetFoo", "CacheResult")

	assert.Equal(t, 2, d.Len())

	all := d.All()
	require.Len(t, all, 2)
	assert.Equal(t, DiagnosticWarning, all[0].Severity)
	assert.Equal(t, "GetFoo", all[0].Item)
	assert.Equal(t, DiagnosticInfo, all[1].Severity)
	assert.Equal(t, "Ghost", all[1].Item)
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Code: CodeCacheVoidReturn, Message: "m", Item: "F", Field: "CacheResult"}
	assert.Equal(t, "[F] CacheResult: [cache-void-return] m", d.String())

	assert.Equal(t, "[G]: [item-skipped] m", Diagnostic{Code: CodeItemSkipped, Message: "m", Item: "G"}.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())

	text, err := DiagnosticWarning.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "warning", string(text))
}
