package repository

import (
	"context"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/logenix/freightquote/models"
	"github.com/logenix/freightquote/utils"
	"github.com/xuri/excelize/v2"
)

const historyTimeLayout = "2006-01-02 15:04:05"

var historyColumns = []string{"pol", "pod", "route_text", "borders", "created_at"}

// Border hints are flattened into one cell in the workbook backend.
const borderSeparator = "; "

// XLSXRouteHistoryRepository implements RouteHistoryRepository on a
// standalone workbook for deployments without a database. Appends rewrite
// the whole sheet, so a single-writer lock serializes them; the
// dedup-check-then-append would otherwise race on read-modify-write.
type XLSXRouteHistoryRepository struct {
	path string
	mu   sync.Mutex
}

// NewXLSXRouteHistoryRepository creates a workbook-backed history store.
func NewXLSXRouteHistoryRepository(path string) *XLSXRouteHistoryRepository {
	return &XLSXRouteHistoryRepository{path: path}
}

func (r *XLSXRouteHistoryRepository) load() ([]*models.RouteHistory, error) {
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

	col := make(map[string]int)
	for i, name := range rows[0] {
		col[utils.Normalize(name)] = i
	}

	cell := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	out := make([]*models.RouteHistory, 0, len(rows)-1)
	for i, row := range rows[1:] {
		entry := &models.RouteHistory{
			ID:        uint(i + 1),
			Pol:       cell(row, "pol"),
			Pod:       cell(row, "pod"),
			RouteText: cell(row, "route_text"),
		}
		if b := strings.TrimSpace(cell(row, "borders")); b != "" {
			entry.Borders = strings.Split(b, borderSeparator)
		}
		if t, ok := utils.ParseDate(cell(row, "created_at")); ok {
			entry.CreatedAt = t
		}
		out = append(out, entry)
	}
	return out, nil
}

func (r *XLSXRouteHistoryRepository) store(entries []*models.RouteHistory) error {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := xl.GetSheetName(0)
	for i, name := range historyColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = xl.SetCellValue(sheet, cell, name)
	}
	for i, entry := range entries {
		values := []string{
			entry.Pol,
			entry.Pod,
			entry.RouteText,
			strings.Join(entry.Borders, borderSeparator),
			entry.CreatedAt.Format(historyTimeLayout),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = xl.SetCellValue(sheet, cell, v)
		}
	}

	return xl.SaveAs(r.path)
}

// Append inserts the accepted custom route unless an equivalent row exists,
// keeping only the most recently appended rows once the cap is exceeded.
func (r *XLSXRouteHistoryRepository) Append(ctx context.Context, pol, pod, routeText string, borders []string) error {
	routeText = strings.TrimSpace(routeText)
	if routeText == "" {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return err
	}

	polN := utils.Normalize(pol)
	podN := utils.Normalize(pod)
	textN := utils.Normalize(routeText)
	for _, entry := range entries {
		if utils.Normalize(entry.Pol) == polN &&
			utils.Normalize(entry.Pod) == podN &&
			utils.Normalize(entry.RouteText) == textN {
			return nil
		}
	}

	entries = append(entries, &models.RouteHistory{
		Pol:       strings.TrimSpace(pol),
		Pod:       strings.TrimSpace(pod),
		RouteText: routeText,
		Borders:   cleanBorders(borders),
		CreatedAt: utils.UTCNow(),
	})
	if len(entries) > utils.RouteHistoryCap {
		entries = entries[len(entries)-utils.RouteHistoryCap:]
	}

	return r.store(entries)
}

// Recent returns up to limit rows for the normalized (pol, pod) pair,
// newest first; rows with unparseable timestamps sort after all parseable
// ones.
func (r *XLSXRouteHistoryRepository) Recent(ctx context.Context, pol, pod string, limit int) ([]*models.RouteHistory, error) {
	if limit <= 0 {
		return nil, nil
	}

	r.mu.Lock()
	entries, err := r.load()
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	polN := utils.Normalize(pol)
	podN := utils.Normalize(pod)

	var matched []*models.RouteHistory
	for _, entry := range entries {
		if utils.Normalize(entry.Pol) == polN && utils.Normalize(entry.Pod) == podN {
			matched = append(matched, entry)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i].CreatedAt, matched[j].CreatedAt
		if a.IsZero() != b.IsZero() {
			return !a.IsZero()
		}
		if !a.Equal(b) {
			return a.After(b)
		}
		// Timestamps are stored at second resolution; fall back to sheet
		// order for appends within the same second.
		return matched[i].ID > matched[j].ID
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}
