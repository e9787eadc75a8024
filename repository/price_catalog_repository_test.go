package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeRatesWorkbook(t *testing.T, path string, rows [][]string) {
	t.Helper()
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := xl.GetSheetName(0)
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, xl.SetCellValue(sheet, cell, v))
		}
	}
	require.NoError(t, xl.SaveAs(path))
}

func TestXLSXPriceCatalog_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices_updated.xlsx")
	writeRatesWorkbook(t, path, [][]string{
		{"POL", "POD", "Commodity", "Rates Validity", "Freight_Charges"},
		{"Karachi", "Kabul", "Rice", "01/12/2026", "1000"},
		{"Karachi", "Tashkent", "Cement", "15/11/2026"},
	})

	result := NewXLSXPriceCatalogRepository(path).Load(context.Background())
	require.Equal(t, CatalogOK, result.Status)
	require.NotNil(t, result.Catalog)

	assert.Equal(t, []string{"POL", "POD", "Commodity", "Rates Validity", "Freight_Charges"}, result.Catalog.Columns)
	require.Len(t, result.Catalog.Records, 2)
	assert.Equal(t, "Rice", result.Catalog.Records[0].Get("Commodity"))
	// Short rows pad out with empty cells.
	assert.Equal(t, "", result.Catalog.Records[1].Get("Freight_Charges"))
	assert.True(t, result.Catalog.HasColumn("Rates Validity"))
	assert.False(t, result.Catalog.HasColumn("Trucking_Charges"))
}

func TestXLSXPriceCatalog_MissingFile(t *testing.T) {
	repo := NewXLSXPriceCatalogRepository(filepath.Join(t.TempDir(), "absent.xlsx"))

	result := repo.Load(context.Background())
	assert.Equal(t, CatalogNotFound, result.Status)
	assert.Nil(t, result.Catalog)
}

func TestXLSXPriceCatalog_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices_updated.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	result := NewXLSXPriceCatalogRepository(path).Load(context.Background())
	assert.Equal(t, CatalogMalformed, result.Status)
	assert.Error(t, result.Err)
}
