// Package catalog loads a table.Catalog from a YAML descriptor file,
// replacing ad hoc in-code table registries with a
// declarative, user-editable bootstrap surface.
package catalog

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"

	"github.com/MDx3R/csv-processor/sql/schema"
	"github.com/MDx3R/csv-processor/sql/table"
	"github.com/MDx3R/csv-processor/sql/types"
)

// columnDescriptor is the YAML shape of a single column.
type columnDescriptor struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// tableDescriptor is the YAML shape of a single table entry.
type tableDescriptor struct {
	Path       string             `yaml:"path"`
	SkipHeader bool               `yaml:"skip_header"`
	Columns    []columnDescriptor `yaml:"columns"`
}

// document is the YAML shape of a catalog file: a map of table name to
// descriptor.
type document map[string]tableDescriptor

// Load parses a YAML catalog descriptor and builds a table.Catalog from
// it. Every registered table is a CSVTable; StringTable entries are built
// programmatically (tests, embedding) rather than bootstrapped from disk.
func Load(path string) (table.Catalog, error) {
	log := logrus.WithField("component", "catalog")

	data, err := os.ReadFile(path)
	if err != nil {
		log.WithField("path", path).WithError(err).Error("failed to read catalog file")
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.WithField("path", path).WithError(err).Error("failed to parse catalog file")
		return nil, err
	}

	cat := make(table.Catalog, len(doc))
	for name, desc := range doc {
		cols := make([]schema.Column, len(desc.Columns))
		for i, c := range desc.Columns {
			typeID, err := parseTypeID(c.Type)
			if err != nil {
				return nil, err
			}
			cols[i] = schema.NewColumn(c.Name, typeID)
		}
		sc := schema.New(cols)
		cat[name] = table.NewCSVTable(desc.Path, desc.SkipHeader, sc)
		log.WithFields(logrus.Fields{"table": name, "path": desc.Path, "columns": len(cols)}).Info("registered table")
	}

	return cat, nil
}

func parseTypeID(s string) (types.TypeId, error) {
	switch strings.ToLower(s) {
	case "int":
		return types.Int, nil
	case "decimal":
		return types.Decimal, nil
	case "boolean":
		return types.Boolean, nil
	case "string":
		return types.String, nil
	default:
		return types.Invalid, types.ErrUnsupportedCast.New(s, "column type")
	}
}
