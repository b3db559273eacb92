package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/depusage/pkg/deps"
	"github.com/Sumatoshi-tech/depusage/pkg/importmodel"
	"github.com/Sumatoshi-tech/depusage/pkg/report"
)

var testTable = []deps.Dependency{
	{Name: "retrofit", Patterns: []string{"retrofit2"}},
	{Name: "gson", Patterns: []string{"com.google.gson"}},
	{Name: "timber", Patterns: []string{"timber.log"}},
}

func sampleReport() report.Report {
	imports := importmodel.NewSet("retrofit2.Retrofit", "android.os.Bundle", "timber.log.Timber")

	return report.New(deps.Classify(testTable, imports), imports)
}

func TestWrite_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := report.Write(&buf, report.FormatText, sampleReport(), report.Options{NoColor: true})
	require.NoError(t, err)

	want := `=== DEPENDENCY ANALYSIS ===

USED DEPENDENCIES (2):
  ✓ retrofit
  ✓ timber

POTENTIALLY UNUSED DEPENDENCIES (1):
  ✗ gson

ALL IMPORTS FOUND (3):
  - android.os.Bundle
  - retrofit2.Retrofit
  - timber.log.Timber
`
	assert.Equal(t, want, buf.String())
}

func TestWrite_TextEmpty(t *testing.T) {
	t.Parallel()

	imports := importmodel.NewSet()
	rep := report.New(deps.Classify(testTable, imports), imports)

	var buf bytes.Buffer

	require.NoError(t, report.Write(&buf, "", rep, report.Options{NoColor: true}))

	want := `=== DEPENDENCY ANALYSIS ===

USED DEPENDENCIES (0):

POTENTIALLY UNUSED DEPENDENCIES (3):
  ✗ gson
  ✗ retrofit
  ✗ timber

ALL IMPORTS FOUND (0):
`
	assert.Equal(t, want, buf.String())
}

func TestWrite_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.Write(&buf, report.FormatJSON, sampleReport(), report.Options{}))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.InDelta(t, 2, doc["used_count"], 0)
	assert.InDelta(t, 1, doc["unused_count"], 0)
	assert.InDelta(t, 3, doc["import_count"], 0)
	assert.Equal(t, []any{"retrofit", "timber"}, doc["used"])
	assert.Equal(t, []any{"gson"}, doc["unused"])

	matches, ok := doc["matches"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"retrofit2.Retrofit"}, matches["retrofit"])
}

func TestWrite_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.Write(&buf, report.FormatYAML, sampleReport(), report.Options{}))

	var doc struct {
		Used    []string `yaml:"used"`
		Unused  []string `yaml:"unused"`
		Imports []string `yaml:"imports"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, []string{"retrofit", "timber"}, doc.Used)
	assert.Equal(t, []string{"gson"}, doc.Unused)
	assert.Len(t, doc.Imports, 3)
}

func TestWrite_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.Write(&buf, report.FormatTable, sampleReport(), report.Options{NoColor: true, Width: 100}))

	out := buf.String()
	assert.Contains(t, out, "DEPENDENCY ANALYSIS")
	assert.Contains(t, out, "retrofit")
	assert.Contains(t, out, "gson")
	assert.Contains(t, out, "unused")
	assert.Contains(t, out, "ALL IMPORTS FOUND (3)")
	assert.Contains(t, out, "android.os.Bundle")
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := report.Write(&bytes.Buffer{}, "xml", sampleReport(), report.Options{})
	require.ErrorIs(t, err, report.ErrUnknownFormat)
	assert.Contains(t, err.Error(), "xml")
}

func TestWriteDependencyTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.WriteDependencyTable(&buf, deps.DefaultTable, report.Options{NoColor: true}))

	out := buf.String()
	assert.Contains(t, out, "hilt")
	assert.Contains(t, out, "dagger.hilt, javax.inject")
	assert.Contains(t, out, "webrtc_lib")
}
