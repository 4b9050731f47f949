package template

import (
	"strings"

	"batchrename/internal/errors"
	"batchrename/internal/log"
	"batchrename/pkg/types"
)

// Generate expands the template against each table row and returns one name
// per row, in row order. Names exclude the extension; the original file's
// own extension is reattached at rename time.
//
// Missing columns are enumerated together before any row is expanded, and
// literal tokens are re-checked against the separator character set as a
// defensive measure.
func Generate(table *types.DataTable, tpl Template) ([]string, error) {
	if table == nil {
		return nil, errors.New("no table bound")
	}

	var missing []string
	for _, field := range tpl.Fields() {
		if !table.HasColumn(field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewColumnError("columns not found in table", missing)
	}

	for _, tok := range tpl.Tokens {
		if tok.Kind == Literal && !ValidSeparator(tok.Text) {
			return nil, errors.NewKind(errors.InvalidCharacters,
				"template literal contains characters outside the allowed set: "+tok.Text)
		}
	}

	names := make([]string, 0, table.Len())
	for _, row := range table.Rows {
		var sb strings.Builder
		for _, tok := range tpl.Tokens {
			switch tok.Kind {
			case FieldRef:
				sb.WriteString(row[tok.Text].String())
			case Literal:
				sb.WriteString(tok.Text)
			}
		}
		names = append(names, sb.String())
	}

	log.Debug("generated %d names from template %q", len(names), tpl.String())
	return names, nil
}
