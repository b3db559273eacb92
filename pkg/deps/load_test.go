package deps_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/depusage/pkg/deps"
)

func TestLoadTable_EmptyPathUsesDefault(t *testing.T) {
	t.Parallel()

	table, err := deps.LoadTable("")
	require.NoError(t, err)

	assert.Equal(t, deps.DefaultTable, table)
}

func TestLoadTable_FromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deps.yaml")
	content := `dependencies:
  - name: coil
    patterns: [coil]
  - name: room
    patterns:
      - androidx.room
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	table, err := deps.LoadTable(path)
	require.NoError(t, err)

	assert.Equal(t, []deps.Dependency{
		{Name: "coil", Patterns: []string{"coil"}},
		{Name: "room", Patterns: []string{"androidx.room"}},
	}, table)
}

func TestLoadTable_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := deps.LoadTable(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseTable_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{name: "empty document", content: "", wantMsg: "invalid dependency table"},
		{name: "no dependencies", content: "dependencies: []\n", wantMsg: "dependencies"},
		{name: "missing patterns", content: "dependencies:\n  - name: gson\n", wantMsg: "patterns"},
		{name: "empty pattern list", content: "dependencies:\n  - name: gson\n    patterns: []\n", wantMsg: "patterns"},
		{name: "empty name", content: "dependencies:\n  - name: \"\"\n    patterns: [a]\n", wantMsg: "name"},
		{name: "unknown key", content: "dependencies:\n  - name: a\n    patterns: [a]\n    version: 1\n", wantMsg: "version"},
		{name: "duplicate name", content: "dependencies:\n  - name: a\n    patterns: [a]\n  - name: a\n    patterns: [b]\n", wantMsg: "duplicate"},
		{name: "malformed yaml", content: "dependencies: [\n", wantMsg: "invalid dependency table"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := deps.ParseTable([]byte(tt.content))
			require.ErrorIs(t, err, deps.ErrInvalidTable)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
