package repository

import (
	"context"
	"os"

	"github.com/logenix/freightquote/models"
	"github.com/xuri/excelize/v2"
)

// XLSXPriceCatalogRepository reads the rates workbook with excelize. The
// workbook is owned by the operations team and replaced wholesale, so every
// Load opens the file fresh.
type XLSXPriceCatalogRepository struct {
	path string
}

// NewXLSXPriceCatalogRepository creates a workbook-backed price catalog.
func NewXLSXPriceCatalogRepository(path string) *XLSXPriceCatalogRepository {
	return &XLSXPriceCatalogRepository{path: path}
}

// Load reads the first sheet of the rates workbook. A missing file reports
// CatalogNotFound and an unreadable one CatalogMalformed; neither is fatal.
func (r *XLSXPriceCatalogRepository) Load(ctx context.Context) CatalogResult {
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return CatalogResult{Status: CatalogNotFound, Err: err}
	}

	xl, err := excelize.OpenFile(r.path)
	if err != nil {
		return CatalogResult{Status: CatalogMalformed, Err: err}
	}
	defer func() { _ = xl.Close() }()

	sheet := xl.GetSheetName(0)
	rows, err := xl.GetRows(sheet)
	if err != nil {
		return CatalogResult{Status: CatalogMalformed, Err: err}
	}
	if len(rows) == 0 {
		return CatalogResult{Status: CatalogOK, Catalog: &models.PriceCatalog{}}
	}

	columns := make([]string, 0, len(rows[0]))
	for _, name := range rows[0] {
		columns = append(columns, name)
	}

	catalog := &models.PriceCatalog{Columns: columns}
	for _, row := range rows[1:] {
		cells := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(row) {
				cells[col] = row[i]
			} else {
				cells[col] = ""
			}
		}
		catalog.Records = append(catalog.Records, &models.PriceRecord{
			Columns: columns,
			Cells:   cells,
		})
	}

	return CatalogResult{Status: CatalogOK, Catalog: catalog}
}
