package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MDx3R/csv-processor/sql/table"
	"github.com/MDx3R/csv-processor/sql/types"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBuildsCSVTablesFromDescriptor(t *testing.T) {
	path := writeCatalogFile(t, `
products:
  path: testdata/products.csv
  skip_header: false
  columns:
    - name: name
      type: string
    - name: brand
      type: string
    - name: price
      type: int
    - name: rating
      type: decimal
`)

	cat, err := Load(path)
	require.NoError(t, err)

	tbl, err := cat.Resolve("products")
	require.NoError(t, err)

	csvTbl, ok := tbl.(*table.CSVTable)
	require.True(t, ok)
	assert.Equal(t, "testdata/products.csv", csvTbl.Path)
	assert.False(t, csvTbl.SkipHeader)

	cols := csvTbl.Schema().Columns()
	require.Len(t, cols, 4)
	assert.Equal(t, "name", cols[0].Name)
	assert.Equal(t, types.String, cols[0].TypeID)
	assert.Equal(t, types.Int, cols[2].TypeID)
	assert.Equal(t, types.Decimal, cols[3].TypeID)
}

func TestLoadUnsupportedColumnTypeFails(t *testing.T) {
	path := writeCatalogFile(t, `
products:
  path: products.csv
  columns:
    - name: name
      type: uuid
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMalformedYAMLFails(t *testing.T) {
	path := writeCatalogFile(t, "not: [valid: yaml")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load("/nonexistent/catalog.yaml")
	require.Error(t, err)
}

func TestParseTypeIDCaseInsensitive(t *testing.T) {
	id, err := parseTypeID("STRING")
	require.NoError(t, err)
	assert.Equal(t, types.String, id)
}
