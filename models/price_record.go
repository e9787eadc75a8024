package models

// Required price catalog columns. Cost columns follow the deployment's
// naming convention on top of these.
const (
	ColumnPOL           = "POL"
	ColumnPOD           = "POD"
	ColumnCommodity     = "Commodity"
	ColumnRatesValidity = "Rates Validity"
)

// RequiredPriceColumns lists the columns every usable rates workbook carries.
func RequiredPriceColumns() []string {
	return []string{ColumnPOL, ColumnPOD, ColumnCommodity, ColumnRatesValidity}
}

// PriceRecord is one row of the rates workbook, read-only per request.
// Cells preserves the sheet's column order alongside Columns so display
// output mirrors the source layout.
type PriceRecord struct {
	Columns []string
	Cells   map[string]string
}

// Get returns the raw cell text for a column, empty when absent.
func (r *PriceRecord) Get(column string) string {
	if r.Cells == nil {
		return ""
	}
	return r.Cells[column]
}

// PriceCatalog is the loaded rates table: header order plus rows.
type PriceCatalog struct {
	Columns []string
	Records []*PriceRecord
}

// HasColumn reports whether the catalog header includes the named column.
func (c *PriceCatalog) HasColumn(name string) bool {
	for _, col := range c.Columns {
		if col == name {
			return true
		}
	}
	return false
}
