package businessflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logenix/freightquote/models"
)

func TestListsFlow_Options(t *testing.T) {
	repo := &fakeSubmissionRepo{distinct: map[string][]string{
		"commodity":        {"Rice", "Frozen Shrimp", "rice"},
		"salesperson_name": {"Ahmed", "Bilal"},
		"shipping_from_1":  {"Gwadar Port"},
	}}
	flow := NewListsFlow(repo, nil, nil)

	resp, err := flow.Options(context.Background())
	require.NoError(t, err)

	// Seeds come first, historical values follow, and case-insensitive
	// duplicates collapse onto the seed spelling.
	assert.Equal(t, models.Salespersons, resp.Salespersons[:len(models.Salespersons)])
	assert.Contains(t, resp.Salespersons, "Bilal")
	assert.Equal(t, 1, countOf(resp.Salespersons, "Ahmed"))

	assert.Contains(t, resp.Commodities, "Frozen Shrimp")
	assert.Equal(t, 1, countOfFold(resp.Commodities, "rice"))

	assert.Contains(t, resp.Countries, "Gwadar Port")
	assert.Equal(t, models.ContainerSizes, resp.ContainerSizes)
}

func TestListsFlow_SubmissionLogFailureDegrades(t *testing.T) {
	repo := &fakeSubmissionRepo{distinctErr: errors.New("workbook locked")}
	flow := NewListsFlow(repo, nil, nil)

	resp, err := flow.Options(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(models.BaseCommodities), len(resp.Commodities))
	assert.Equal(t, len(models.Salespersons), len(resp.Salespersons))
}

func countOf(values []string, want string) int {
	n := 0
	for _, v := range values {
		if v == want {
			n++
		}
	}
	return n
}

func countOfFold(values []string, want string) int {
	n := 0
	for _, v := range values {
		if normEq(v) == normEq(want) {
			n++
		}
	}
	return n
}
