package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/logenix/freightquote/models"
	"github.com/logenix/freightquote/utils"
	"gorm.io/gorm"
)

// RouteHistoryRepositoryImpl implements RouteHistoryRepository on Postgres.
type RouteHistoryRepositoryImpl struct {
	*BaseRepository[models.RouteHistory, models.RouteHistoryFilter]
}

var _ Repository[models.RouteHistory, models.RouteHistoryFilter] = (*RouteHistoryRepositoryImpl)(nil)

// NewRouteHistoryRepository creates a new repository for route history rows
func NewRouteHistoryRepository(db *gorm.DB) RouteHistoryRepository {
	return &RouteHistoryRepositoryImpl{
		BaseRepository: NewBaseRepository[models.RouteHistory, models.RouteHistoryFilter](db),
	}
}

// Append inserts an accepted custom route unless an equivalent row already
// exists. Equivalence is on the normalized (pol, pod, route_text) triple;
// normalization collapses whitespace and dash variants, so the comparison
// happens here rather than in SQL. After insert the table is trimmed back to
// the retention cap, oldest rows first.
func (r *RouteHistoryRepositoryImpl) Append(ctx context.Context, pol, pod, routeText string, borders []string) error {
	routeText = strings.TrimSpace(routeText)
	if routeText == "" {
		return nil
	}

	db := r.getDB(ctx)

	var existing []*models.RouteHistory
	if err := db.Find(&existing).Error; err != nil {
		return fmt.Errorf("failed to scan route history: %w", err)
	}

	polN := utils.Normalize(pol)
	podN := utils.Normalize(pod)
	textN := utils.Normalize(routeText)
	for _, row := range existing {
		if utils.Normalize(row.Pol) == polN &&
			utils.Normalize(row.Pod) == podN &&
			utils.Normalize(row.RouteText) == textN {
			return nil
		}
	}

	row := &models.RouteHistory{
		Pol:       strings.TrimSpace(pol),
		Pod:       strings.TrimSpace(pod),
		RouteText: routeText,
		Borders:   cleanBorders(borders),
		CreatedAt: utils.UTCNow(),
	}
	if err := r.Save(ctx, row); err != nil {
		return err
	}

	if len(existing)+1 > utils.RouteHistoryCap {
		overflow := len(existing) + 1 - utils.RouteHistoryCap
		err := db.Exec(`
			DELETE FROM route_history
			WHERE id IN (SELECT id FROM route_history ORDER BY id ASC LIMIT ?)
		`, overflow).Error
		if err != nil {
			return fmt.Errorf("failed to trim route history: %w", err)
		}
	}

	return nil
}

func cleanBorders(borders []string) []string {
	out := make([]string, 0, len(borders))
	for _, b := range borders {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// Recent returns up to limit rows whose normalized (pol, pod) pair equals
// the query, most recently created first.
func (r *RouteHistoryRepositoryImpl) Recent(ctx context.Context, pol, pod string, limit int) ([]*models.RouteHistory, error) {
	if limit <= 0 {
		return nil, nil
	}

	db := r.getDB(ctx)

	var rows []*models.RouteHistory
	if err := db.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query route history: %w", err)
	}

	polN := utils.Normalize(pol)
	podN := utils.Normalize(pod)

	out := make([]*models.RouteHistory, 0, limit)
	for _, row := range rows {
		if utils.Normalize(row.Pol) != polN || utils.Normalize(row.Pod) != podN {
			continue
		}
		out = append(out, row)
		if len(out) == limit {
			break
		}
	}

	return out, nil
}

// ByFilter retrieves route history rows matching the filter.
func (r *RouteHistoryRepositoryImpl) ByFilter(ctx context.Context, filter models.RouteHistoryFilter, orderBy string, limit, offset int) ([]*models.RouteHistory, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.RouteHistory{})

	if filter.Pol != nil {
		query = query.Where("pol = ?", *filter.Pol)
	}
	if filter.Pod != nil {
		query = query.Where("pod = ?", *filter.Pod)
	}

	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.RouteHistory
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query route history: %w", err)
	}
	return rows, nil
}
