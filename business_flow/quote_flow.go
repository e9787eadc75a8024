package businessflow

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/logenix/freightquote/app/dto"
	"github.com/logenix/freightquote/config"
	"github.com/logenix/freightquote/models"
	"github.com/logenix/freightquote/repository"
	"github.com/logenix/freightquote/utils"
)

const bestOptionSummary = "Best Option available based on rate validity and match."

// QuoteFlow searches the price catalog and ranks matching rate records.
type QuoteFlow interface {
	FindQuotes(ctx context.Context, req *dto.FindQuotesRequest) (*dto.FindQuotesResponse, error)
}

// QuoteFlowImpl implements quote matching and ranking over the price
// catalog repository.
type QuoteFlowImpl struct {
	catalogRepo repository.PriceCatalogRepository
	classifier  CostColumnClassifier
	resultLimit int
	recordRead  func(outcome string)
}

// NewQuoteFlow creates a new quote flow instance. recordRead receives the
// outcome of every catalog load ("ok", "not_found", "malformed") so the
// presentation layer can meter reads; nil disables recording.
func NewQuoteFlow(catalogRepo repository.PriceCatalogRepository, policy config.PolicyConfig, resultLimit int, recordRead func(outcome string)) QuoteFlow {
	if resultLimit <= 0 {
		resultLimit = utils.ShowLimit
	}
	if recordRead == nil {
		recordRead = func(string) {}
	}
	return &QuoteFlowImpl{
		catalogRepo: catalogRepo,
		classifier:  NewCostColumnClassifier(policy.CostRule),
		resultLimit: resultLimit,
		recordRead:  recordRead,
	}
}

// matchedRow pairs a catalog record with its derived ranking attributes.
type matchedRow struct {
	record   *models.PriceRecord
	validity time.Time
	hasDate  bool
	isValid  bool
	total    float64
	hasTotal bool
}

// FindQuotes filters the catalog to exact matches on origin, destination,
// and commodity, ranks by validity then validity date, and flags the single
// best candidate. Configuration and availability problems come back as the
// Error field; an empty result with no error means no offer exists.
func (f *QuoteFlowImpl) FindQuotes(ctx context.Context, req *dto.FindQuotesRequest) (*dto.FindQuotesResponse, error) {
	limit := req.Limit
	if limit <= 0 || limit > f.resultLimit {
		limit = f.resultLimit
	}

	result := f.catalogRepo.Load(ctx)
	switch result.Status {
	case repository.CatalogOK:
		f.recordRead("ok")
	case repository.CatalogNotFound:
		f.recordRead("not_found")
	default:
		f.recordRead("malformed")
	}
	if result.Status != repository.CatalogOK || result.Catalog == nil || len(result.Catalog.Records) == 0 {
		return &dto.FindQuotesResponse{
			Candidates: []dto.QuoteCandidateDTO{},
			Error:      "Could not load the price catalog properly. Please confirm the file exists and headers are correct.",
		}, nil
	}
	catalog := result.Catalog

	for _, col := range models.RequiredPriceColumns() {
		if !catalog.HasColumn(col) {
			return &dto.FindQuotesResponse{
				Candidates: []dto.QuoteCandidateDTO{},
				Error:      fmt.Sprintf("Missing required column in price catalog: %s", col),
			}, nil
		}
	}

	polN := normEq(req.Origin)
	podN := normEq(req.Destination)
	comN := normEq(req.Commodity)

	var matched []*matchedRow
	for _, record := range catalog.Records {
		if normEq(record.Get(models.ColumnPOL)) != polN ||
			normEq(record.Get(models.ColumnPOD)) != podN ||
			normEq(record.Get(models.ColumnCommodity)) != comN {
			continue
		}
		matched = append(matched, f.deriveRow(record))
	}

	if len(matched) == 0 {
		// No offer for this lane/commodity; not an error.
		return &dto.FindQuotesResponse{Candidates: []dto.QuoteCandidateDTO{}}, nil
	}

	// Valid rows first, then latest validity date, rows without a parseable
	// date last.
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].isValid != matched[j].isValid {
			return matched[i].isValid
		}
		if matched[i].hasDate != matched[j].hasDate {
			return matched[i].hasDate
		}
		return matched[i].validity.After(matched[j].validity)
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}

	best := pickBest(matched)

	candidates := make([]dto.QuoteCandidateDTO, 0, len(matched))
	for i, row := range matched {
		candidates = append(candidates, f.render(row, i == best, req.ContainerSize))
	}

	return &dto.FindQuotesResponse{
		Candidates: candidates,
		Summary:    bestOptionSummary,
	}, nil
}

// normEq is the exact-match key: trimmed, lowercased. Looser than
// utils.Normalize on purpose; catalog cells are matched by equality, not
// substring containment.
func normEq(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (f *QuoteFlowImpl) deriveRow(record *models.PriceRecord) *matchedRow {
	row := &matchedRow{record: record}

	if d, ok := utils.ParseDate(record.Get(models.ColumnRatesValidity)); ok {
		row.validity = utils.DateOnly(d)
		row.hasDate = true
		row.isValid = !row.validity.Before(utils.Today())
	}

	for _, col := range record.Columns {
		if !f.classifier.IsCostColumn(col) {
			continue
		}
		if v, ok := utils.ParsePrice(record.Get(col)); ok {
			row.total += v
			row.hasTotal = true
		}
	}

	return row
}

// pickBest prefers the lowest total among valid rows that have one, then
// the first valid row, then the first row overall.
func pickBest(rows []*matchedRow) int {
	best := -1
	for i, row := range rows {
		if !row.isValid || !row.hasTotal {
			continue
		}
		if best < 0 || row.total < rows[best].total {
			best = i
		}
	}
	if best >= 0 {
		return best
	}
	for i, row := range rows {
		if row.isValid {
			return i
		}
	}
	return 0
}

func (f *QuoteFlowImpl) render(row *matchedRow, isBest bool, containerSize string) dto.QuoteCandidateDTO {
	record := row.record

	var label, kind string
	switch {
	case !row.hasDate:
		label = "Validity: Unknown"
		kind = models.ValidityUnknown
	case row.isValid:
		label = fmt.Sprintf("Validity: Valid (until %s)", row.validity.Format("02/01/2006"))
		kind = models.ValidityValid
	default:
		label = fmt.Sprintf("Validity: Expired (until %s)", row.validity.Format("02/01/2006"))
		kind = models.ValidityExpired
	}

	fields := make([]dto.QuoteFieldDTO, 0, len(record.Columns)+1)
	for _, col := range record.Columns {
		fields = append(fields, f.renderField(col, record.Get(col)))
	}

	totalValue := "N/A"
	if row.hasTotal {
		totalValue = utils.FormatMoney(row.total)
	}
	fields = append(fields, dto.QuoteFieldDTO{
		Key:        "Grand Total",
		Value:      totalValue,
		NA:         !row.hasTotal,
		GrandTotal: true,
	})

	size := strings.TrimSpace(containerSize)
	title := fmt.Sprintf("Shipping from %s to %s",
		strings.TrimSpace(record.Get(models.ColumnPOL)),
		strings.TrimSpace(record.Get(models.ColumnPOD)))
	if size != "" {
		title = size + " " + title
	}

	return dto.QuoteCandidateDTO{
		Best:          isBest,
		Title:         title,
		ValidityLabel: label,
		ValidityKind:  kind,
		Fields:        fields,
	}
}

// renderField formats one source cell: empty cells surface an explicit N/A
// marker, date-like columns format uniformly, cost columns render as
// currency when parseable and raw text otherwise.
func (f *QuoteFlowImpl) renderField(col, raw string) dto.QuoteFieldDTO {
	if strings.TrimSpace(raw) == "" {
		return dto.QuoteFieldDTO{Key: col, NA: true}
	}

	colN := utils.Normalize(col)
	if strings.Contains(colN, "date") || strings.Contains(colN, "validity") {
		if d, ok := utils.ParseDate(raw); ok {
			return dto.QuoteFieldDTO{Key: col, Value: utils.FormatDate(d)}
		}
		return dto.QuoteFieldDTO{Key: col, NA: true}
	}

	if f.classifier.IsCostColumn(col) {
		if v, ok := utils.ParsePrice(raw); ok {
			return dto.QuoteFieldDTO{Key: col, Value: utils.FormatMoney(v)}
		}
		return dto.QuoteFieldDTO{Key: col, Value: strings.TrimSpace(raw)}
	}

	return dto.QuoteFieldDTO{Key: col, Value: strings.TrimSpace(raw)}
}
