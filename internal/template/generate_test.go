package template_test

import (
	"strings"
	"testing"

	"batchrename/internal/errors"
	"batchrename/internal/template"
	"batchrename/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTable(columns []string, cells ...[]string) *types.DataTable {
	t := &types.DataTable{Columns: columns}
	for _, raw := range cells {
		row := make(types.Row, len(columns))
		for i, col := range columns {
			row[col] = types.ParseValue(raw[i])
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func TestGenerateOneNamePerRow(t *testing.T) {
	tbl := makeTable([]string{"Name", "Year"},
		[]string{"Alpha", "2020"},
		[]string{"Beta", "2021"},
	)
	b := template.NewBuilder([]string{"Name", "Year"}, ".pdf")
	require.NoError(t, b.SetSeparator(0, "-"))

	names, err := template.Generate(tbl, b.Build())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha-2020", "Beta-2021"}, names)
}

func TestGenerateCoercesWholeFloats(t *testing.T) {
	tbl := makeTable([]string{"Year"}, []string{"2020.0"})
	b := template.NewBuilder([]string{"Year"}, ".pdf")

	tpl := b.Build()
	tpl.Tokens = append(tpl.Tokens, template.Token{Kind: template.Literal, Text: "-Report"})

	names, err := template.Generate(tbl, tpl)
	require.NoError(t, err)
	assert.Equal(t, []string{"2020-Report"}, names)
}

func TestGenerateTrimsValueWhitespace(t *testing.T) {
	tbl := makeTable([]string{"Name"}, []string{"  Alpha  "})
	tpl := template.NewBuilder([]string{"Name"}, ".pdf").Build()

	names, err := template.Generate(tbl, tpl)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha"}, names)
}

func TestGenerateSubstringFieldNamesStayIndependent(t *testing.T) {
	// Token-based expansion: "Year" inside "FiscalYear" must not be replaced.
	tbl := makeTable([]string{"Year", "FiscalYear"}, []string{"2020", "FY21"})
	b := template.NewBuilder([]string{"FiscalYear", "Year"}, ".pdf")
	require.NoError(t, b.SetSeparator(0, "_"))

	names, err := template.Generate(tbl, b.Build())
	require.NoError(t, err)
	assert.Equal(t, []string{"FY21_2020"}, names)
}

func TestGenerateEnumeratesAllMissingColumns(t *testing.T) {
	tbl := makeTable([]string{"Name"}, []string{"Alpha"})
	b := template.NewBuilder([]string{"Name", "Year", "Region"}, ".pdf")

	_, err := template.Generate(tbl, b.Build())
	require.Error(t, err)
	assert.True(t, errors.IsMissingColumn(err))
	assert.Contains(t, err.Error(), "Year")
	assert.Contains(t, err.Error(), "Region")
	assert.NotContains(t, err.Error(), "Name,")
}

func TestGenerateRejectsInvalidLiteral(t *testing.T) {
	tbl := makeTable([]string{"Name"}, []string{"Alpha"})
	tpl := template.Template{
		Tokens: []template.Token{
			{Kind: template.FieldRef, Text: "Name"},
			{Kind: template.Literal, Text: "bad/slash"},
		},
		Extension: ".pdf",
	}

	_, err := template.Generate(tbl, tpl)
	assert.True(t, errors.IsKind(err, errors.InvalidCharacters))
}

func TestGenerateNilTable(t *testing.T) {
	tpl := template.NewBuilder([]string{"Name"}, ".pdf").Build()
	_, err := template.Generate(nil, tpl)
	assert.Error(t, err)
}

func TestBuildThenGenerateRoundTrip(t *testing.T) {
	tbl := makeTable([]string{"Name", "Year"},
		[]string{"Quarterly", "2020"},
		[]string{"Annual", "2021"},
	)
	b := template.NewBuilder([]string{"Year", "Name"}, ".pdf")
	require.NoError(t, b.SetSeparator(0, "_"))

	names, err := template.Generate(tbl, b.Build())
	require.NoError(t, err)
	require.Len(t, names, tbl.Len())
	// Full substitution: no field name survives in any generated name.
	for _, name := range names {
		assert.False(t, strings.Contains(name, "Name"), name)
		assert.False(t, strings.Contains(name, "Year"), name)
	}
	assert.Equal(t, []string{"2020_Quarterly", "2021_Annual"}, names)
}
