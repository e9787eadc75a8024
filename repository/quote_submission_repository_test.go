package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/logenix/freightquote/models"
	"github.com/logenix/freightquote/utils"
)

func sampleSubmission(quoteID, commodity, salesperson string) *models.QuoteSubmission {
	s := &models.QuoteSubmission{
		QuoteID:         quoteID,
		CompanyName:     "Acme Traders",
		SalespersonName: salesperson,
		Commodity:       commodity,
		ContainerType:   "Dry Container (General Purpose)",
		ContainerSize:   "20ft",
		CreatedAt:       utils.UTCNow(),
	}
	s.Origins[0] = "Karachi"
	s.Destinations[0] = "Kabul"
	return s
}

func TestXLSXQuoteSubmission_AppendCreatesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.xlsx")
	repo := NewXLSXQuoteSubmissionRepository(path)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, sampleSubmission("QUOTE-1", "Rice", "Ahmed")))
	require.NoError(t, repo.Append(ctx, sampleSubmission("QUOTE-2", "Cement", "Dawood")))

	xl, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = xl.Close() }()

	rows, err := xl.GetRows(xl.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, submissionColumns, rows[0][:len(submissionColumns)])
	assert.Equal(t, "QUOTE-1", rows[1][0])
	assert.Equal(t, "QUOTE-2", rows[2][0])
}

func TestXLSXQuoteSubmission_DistinctValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.xlsx")
	repo := NewXLSXQuoteSubmissionRepository(path)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, sampleSubmission("QUOTE-1", "Rice", "Ahmed")))
	require.NoError(t, repo.Append(ctx, sampleSubmission("QUOTE-2", "Cement", "Ahmed")))
	require.NoError(t, repo.Append(ctx, sampleSubmission("QUOTE-3", "Rice", "")))

	values, err := repo.DistinctValues(ctx, "commodity")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rice", "Cement"}, values)

	// Column lookup is case-insensitive; empty cells are skipped.
	values, err = repo.DistinctValues(ctx, "Salesperson_Name")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ahmed"}, values)

	values, err = repo.DistinctValues(ctx, "no_such_column")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestXLSXQuoteSubmission_DistinctValuesMissingFile(t *testing.T) {
	repo := NewXLSXQuoteSubmissionRepository(filepath.Join(t.TempDir(), "absent.xlsx"))

	values, err := repo.DistinctValues(context.Background(), "commodity")
	require.NoError(t, err)
	assert.Nil(t, values)
}
