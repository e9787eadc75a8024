package businessflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logenix/freightquote/app/dto"
	"github.com/logenix/freightquote/config"
	"github.com/logenix/freightquote/models"
)

type fakeHistoryRepo struct {
	rows      []*models.RouteHistory
	recentErr error
	appendErr error
	appended  [][3]string
}

func (f *fakeHistoryRepo) Append(ctx context.Context, pol, pod, routeText string, borders []string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, [3]string{pol, pod, routeText})
	return nil
}

func (f *fakeHistoryRepo) Recent(ctx context.Context, pol, pod string, limit int) ([]*models.RouteHistory, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	if limit > 0 && len(f.rows) > limit {
		return f.rows[:limit], nil
	}
	return f.rows, nil
}

func keywordScorePolicy() config.PolicyConfig {
	return config.PolicyConfig{RouteRanking: config.RankingKeywordScore, CostRule: config.CostRuleSuffix}
}

func newTestRouteFlow(history *fakeHistoryRepo, policy config.PolicyConfig) RouteFlow {
	return NewRouteFlow(models.DefaultRouteCatalog(), history, policy)
}

func TestFindRoutes_ForwardMatch(t *testing.T) {
	flow := newTestRouteFlow(&fakeHistoryRepo{}, keywordScorePolicy())

	resp, err := flow.FindRoutes(context.Background(), &dto.FindRoutesRequest{
		Origin:      "Karachi Port",
		Destination: "Kabul",
	})
	require.NoError(t, err)
	require.Len(t, resp.Candidates, 2)

	assert.Equal(t, "R2", resp.Candidates[0].ID)
	assert.Equal(t, "R3", resp.Candidates[1].ID)
	assert.Equal(t, "R2", resp.BestID)
	for _, c := range resp.Candidates {
		assert.Equal(t, 5, c.Score)
		assert.False(t, c.Reversed)
		assert.False(t, c.Custom)
	}
}

func TestFindRoutes_ReverseMatch(t *testing.T) {
	flow := newTestRouteFlow(&fakeHistoryRepo{}, keywordScorePolicy())

	resp, err := flow.FindRoutes(context.Background(), &dto.FindRoutesRequest{
		Origin:      "Kabul",
		Destination: "Karachi",
	})
	require.NoError(t, err)
	require.Len(t, resp.Candidates, 2)

	for _, c := range resp.Candidates {
		assert.True(t, c.Reversed)
	}
	// Reversed path starts from the original terminus.
	assert.Contains(t, resp.Candidates[0].Path, "Kabul (Afghanistan)")
}

func TestFindRoutes_TransitHintBonuses(t *testing.T) {
	flow := newTestRouteFlow(&fakeHistoryRepo{}, keywordScorePolicy())

	// "torkham" appears only in the R3/R5-style paths; the first hint is
	// worth +4, so the Torkham corridor must outrank the Chaman one.
	resp, err := flow.FindRoutes(context.Background(), &dto.FindRoutesRequest{
		Origin:         "Karachi",
		Destination:    "Kabul",
		TransitBorders: []string{"Torkham"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Candidates, 2)

	assert.Equal(t, "R3", resp.Candidates[0].ID)
	assert.Equal(t, 9, resp.Candidates[0].Score)
	assert.Equal(t, "R2", resp.Candidates[1].ID)
	assert.Equal(t, 5, resp.Candidates[1].Score)
}

func TestFindRoutes_BlankHintsSkipPositions(t *testing.T) {
	flow := newTestRouteFlow(&fakeHistoryRepo{}, keywordScorePolicy())

	// A leading blank hint must not consume the +4 slot.
	resp, err := flow.FindRoutes(context.Background(), &dto.FindRoutesRequest{
		Origin:         "Karachi",
		Destination:    "Kabul",
		TransitBorders: []string{"  ", "Torkham"},
	})
	require.NoError(t, err)
	assert.Equal(t, "R3", resp.Candidates[0].ID)
	assert.Equal(t, 9, resp.Candidates[0].Score)
}

func TestFindRoutes_MustBorderBonus(t *testing.T) {
	flow := newTestRouteFlow(&fakeHistoryRepo{}, keywordScorePolicy())

	// R3 must-borders are torkham and kabul; both hints match, so on top
	// of the positional +4/+4 it gains the +2 confidence bonus.
	resp, err := flow.FindRoutes(context.Background(), &dto.FindRoutesRequest{
		Origin:         "Karachi",
		Destination:    "Kabul",
		TransitBorders: []string{"Torkham", "Kabul"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Candidates, 2)

	assert.Equal(t, "R3", resp.Candidates[0].ID)
	assert.Equal(t, 15, resp.Candidates[0].Score)
	// R2 only gets the positional bonus for "kabul" in its path; a single
	// must-border hit is below the threshold.
	assert.Equal(t, "R2", resp.Candidates[1].ID)
	assert.Equal(t, 9, resp.Candidates[1].Score)
}

func TestFindRoutes_HistoryRecall(t *testing.T) {
	history := &fakeHistoryRepo{rows: []*models.RouteHistory{
		{ID: 7, Pol: "Lahore", Pod: "Almaty", RouteText: "Lahore → Torkham → Almaty"},
	}}
	flow := newTestRouteFlow(history, keywordScorePolicy())

	resp, err := flow.FindRoutes(context.Background(), &dto.FindRoutesRequest{
		Origin:      "Lahore",
		Destination: "Almaty",
	})
	require.NoError(t, err)
	require.Len(t, resp.Candidates, 1)

	c := resp.Candidates[0]
	assert.Equal(t, "HR-7", c.ID)
	assert.Equal(t, "Recent Used Route", c.Title)
	assert.Equal(t, 1, c.Score)
	assert.True(t, c.Custom)
	assert.True(t, c.Recent)
	assert.Equal(t, "HR-7", resp.BestID)
}

func TestFindRoutes_HistoryHintBonus(t *testing.T) {
	history := &fakeHistoryRepo{rows: []*models.RouteHistory{
		{ID: 1, Pol: "Lahore", Pod: "Almaty", RouteText: "Lahore → Torkham → Almaty"},
		{ID: 2, Pol: "Lahore", Pod: "Almaty", RouteText: "Lahore → Chaman → Almaty"},
	}}
	flow := newTestRouteFlow(history, keywordScorePolicy())

	resp, err := flow.FindRoutes(context.Background(), &dto.FindRoutesRequest{
		Origin:         "Lahore",
		Destination:    "Almaty",
		TransitBorders: []string{"Chaman"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Candidates, 2)
	assert.Equal(t, "HR-2", resp.Candidates[0].ID)
	assert.Equal(t, 5, resp.Candidates[0].Score)
	assert.Equal(t, 1, resp.Candidates[1].Score)
}

func TestFindRoutes_HistoryFailureDegrades(t *testing.T) {
	history := &fakeHistoryRepo{recentErr: errors.New("workbook locked")}
	flow := newTestRouteFlow(history, keywordScorePolicy())

	resp, err := flow.FindRoutes(context.Background(), &dto.FindRoutesRequest{
		Origin:      "Karachi",
		Destination: "Kabul",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Candidates, 2)
}

func TestFindRoutes_NoMatch(t *testing.T) {
	flow := newTestRouteFlow(&fakeHistoryRepo{}, keywordScorePolicy())

	resp, err := flow.FindRoutes(context.Background(), &dto.FindRoutesRequest{
		Origin:      "Rotterdam",
		Destination: "Hamburg",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Candidates)
	assert.Empty(t, resp.BestID)
}

func TestFindRoutes_TransitTimePolicy(t *testing.T) {
	catalog := []models.RouteDefinition{
		{
			ID: "S1", Title: "Slow", OriginKeywords: []string{"karachi"},
			DestinationKeywords: []string{"kabul"}, Path: "Karachi → Chaman → Kabul",
			Status: models.RouteStatusOpen, TransitDaysMin: 9, TransitDaysMax: 12,
		},
		{
			ID: "S2", Title: "Fast", OriginKeywords: []string{"karachi"},
			DestinationKeywords: []string{"kabul"}, Path: "Karachi → Torkham → Kabul",
			Status: models.RouteStatusClosed, TransitDaysMin: 6, TransitDaysMax: 8,
		},
		{
			ID: "S3", Title: "Unknown", OriginKeywords: []string{"karachi"},
			DestinationKeywords: []string{"kabul"}, Path: "Karachi → Kabul",
			Status: models.RouteStatusOpen,
		},
	}
	policy := config.PolicyConfig{RouteRanking: config.RankingTransitTime, CostRule: config.CostRuleSuffix}
	flow := NewRouteFlow(catalog, &fakeHistoryRepo{}, policy)

	resp, err := flow.FindRoutes(context.Background(), &dto.FindRoutesRequest{
		Origin:      "Karachi",
		Destination: "Kabul",
	})
	require.NoError(t, err)
	require.Len(t, resp.Candidates, 3)

	assert.Equal(t, "S2", resp.Candidates[0].ID)
	assert.True(t, resp.Candidates[0].NeedsConfirmation)
	assert.Equal(t, "S1", resp.Candidates[1].ID)
	assert.False(t, resp.Candidates[1].NeedsConfirmation)
	// Unknown transit range sorts last.
	assert.Equal(t, "S3", resp.Candidates[2].ID)
}

func TestAcceptCustomRoute(t *testing.T) {
	tests := []struct {
		name      string
		routeText string
		expectErr bool
	}{
		{
			name:      "valid route with both endpoints",
			routeText: "Karachi → Quetta → Chaman → Kabul",
			expectErr: false,
		},
		{
			name:      "missing destination",
			routeText: "Karachi → Quetta → Chaman",
			expectErr: true,
		},
		{
			name:      "missing origin",
			routeText: "Quetta → Chaman → Kabul",
			expectErr: true,
		},
		{
			name:      "blank text",
			routeText: "   ",
			expectErr: true,
		},
		{
			name:      "endpoints differ in case and spacing",
			routeText: "KARACHI — Quetta — kabul  city",
			expectErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := &fakeHistoryRepo{}
			flow := newTestRouteFlow(history, keywordScorePolicy())

			resp, err := flow.AcceptCustomRoute(context.Background(), &dto.AcceptCustomRouteRequest{
				Origin:      "Karachi",
				Destination: "Kabul",
				RouteText:   tt.routeText,
			})
			if tt.expectErr {
				require.Error(t, err)
				var bizErr *BusinessError
				require.ErrorAs(t, err, &bizErr)
				assert.Equal(t, "VALIDATION_ERROR", bizErr.Code)
				assert.Empty(t, history.appended)
				return
			}
			require.NoError(t, err)
			assert.True(t, resp.Accepted)
			require.Len(t, history.appended, 1)
			assert.Equal(t, tt.routeText, history.appended[0][2])
		})
	}
}

func TestAcceptCustomRoute_StorageFailureIsSilent(t *testing.T) {
	history := &fakeHistoryRepo{appendErr: errors.New("disk full")}
	flow := newTestRouteFlow(history, keywordScorePolicy())

	resp, err := flow.AcceptCustomRoute(context.Background(), &dto.AcceptCustomRouteRequest{
		Origin:      "Karachi",
		Destination: "Kabul",
		RouteText:   "Karachi → Chaman → Kabul",
	})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
}
