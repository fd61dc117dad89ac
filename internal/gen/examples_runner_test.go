package gen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fcitx-scanner/internal/addon"
	"fcitx-scanner/internal/desktop"
	"fcitx-scanner/internal/gen"
)

// TestExamples_Golden renders every examples/<case>/addon.fxaddon and
// compares it with the expected.h next to it.
func TestExamples_Golden(t *testing.T) {
	t.Parallel()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	inputs, err := filepath.Glob(filepath.Join(repoRoot, "examples", "*", "addon.fxaddon"))
	require.NoError(t, err)
	require.NotEmpty(t, inputs)

	for _, input := range inputs {
		dir := filepath.Dir(input)

		t.Run(filepath.Base(dir), func(t *testing.T) {
			t.Parallel()

			doc, err := desktop.Load(input)
			require.NoError(t, err)

			p, err := addon.Build(doc)
			require.NoError(t, err)

			got, err := gen.NewGenerator(gen.DefaultGeneratorConfig()).Generate(p)
			require.NoError(t, err)

			want, err := os.ReadFile(filepath.Join(dir, "expected.h"))
			require.NoError(t, err)

			assert.Equal(t, string(want), string(got))
		})
	}
}
