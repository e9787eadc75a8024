package repository

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/logenix/freightquote/models"
	"github.com/logenix/freightquote/utils"
	"github.com/xuri/excelize/v2"
)

// Submission workbook column order mirrors the quote form field order.
var submissionColumns = []string{
	"quote_id", "company_name", "salesperson_name",
	"container_ownership", "incoterm",
	"shipping_from_1", "shipping_from_2", "shipping_from_3", "shipping_from_4",
	"destination_1", "destination_2", "destination_3", "destination_4",
	"transit_border_1", "transit_border_2", "transit_border_3", "transit_border_4",
	"selected_route_id", "selected_route_text", "custom_route_text",
	"cargo_type", "packaging_type", "free_days_return",
	"lifting_labor_required", "offloading_responsible", "final_customs_responsible",
	"reloading_required", "reloading_count", "reloading_places",
	"commodity", "weight_tons",
	"container_type", "container_size", "num_containers",
	"width_ft", "height_ft", "temperature_c",
	"cargo_value", "insurance_rate", "insurance_amount", "misc_cost",
	"special_cost_option", "reason", "special_cost",
	"shipment_type", "timestamp",
}

// XLSXQuoteSubmissionRepository appends submitted quote forms to a workbook
// and extracts distinct column values to enrich the dropdown lists.
type XLSXQuoteSubmissionRepository struct {
	path string
	mu   sync.Mutex
}

// NewXLSXQuoteSubmissionRepository creates a workbook-backed submission log.
func NewXLSXQuoteSubmissionRepository(path string) *XLSXQuoteSubmissionRepository {
	return &XLSXQuoteSubmissionRepository{path: path}
}

func submissionValues(s *models.QuoteSubmission) []string {
	return []string{
		s.QuoteID, s.CompanyName, s.SalespersonName,
		s.ContainerOwnership, s.Incoterm,
		s.Origins[0], s.Origins[1], s.Origins[2], s.Origins[3],
		s.Destinations[0], s.Destinations[1], s.Destinations[2], s.Destinations[3],
		s.TransitBorders[0], s.TransitBorders[1], s.TransitBorders[2], s.TransitBorders[3],
		s.SelectedRouteID, s.SelectedRouteText, s.CustomRouteText,
		s.CargoType, s.PackagingType, s.FreeDaysReturn,
		s.LiftingLaborRequired, s.OffloadingResponsible, s.FinalCustomsResponsible,
		s.ReloadingRequired, strconv.Itoa(s.ReloadingCount), s.ReloadingPlaces,
		s.Commodity, s.WeightTons,
		s.ContainerType, s.ContainerSize, s.NumContainers,
		s.WidthFt, s.HeightFt, s.TemperatureC,
		s.CargoValue, s.InsuranceRate, s.InsuranceAmount, s.MiscCost,
		s.SpecialCostOption, s.SpecialCostReason, s.SpecialCost,
		s.ShipmentType, s.CreatedAt.Format(historyTimeLayout),
	}
}

// Append writes the submission as a new row, creating the workbook with a
// header row on first use.
func (r *XLSXQuoteSubmissionRepository) Append(ctx context.Context, submission *models.QuoteSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var xl *excelize.File
	fresh := false
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		xl = excelize.NewFile()
		fresh = true
	} else {
		f, err := excelize.OpenFile(r.path)
		if err != nil {
			return err
		}
		xl = f
	}
	defer func() { _ = xl.Close() }()

	sheet := xl.GetSheetName(0)
	if fresh {
		for i, name := range submissionColumns {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			_ = xl.SetCellValue(sheet, cell, name)
		}
	}

	rows, err := xl.GetRows(sheet)
	if err != nil {
		return err
	}
	next := len(rows) + 1
	if fresh {
		next = 2
	}

	for i, v := range submissionValues(submission) {
		cell, _ := excelize.CoordinatesToCellName(i+1, next)
		_ = xl.SetCellValue(sheet, cell, v)
	}

	return xl.SaveAs(r.path)
}

// DistinctValues returns the unique non-empty values of a column in first
// appearance order, matching the column name case-insensitively.
func (r *XLSXQuoteSubmissionRepository) DistinctValues(ctx context.Context, column string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return nil, nil
	}

	xl, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = xl.Close() }()

	sheet := xl.GetSheetName(0)
	rows, err := xl.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	idx := -1
	want := utils.Normalize(column)
	for i, name := range rows[0] {
		if utils.Normalize(name) == want {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}

	seen := make(map[string]struct{})
	var out []string
	for _, row := range rows[1:] {
		if idx >= len(row) {
			continue
		}
		v := strings.TrimSpace(row[idx])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}
