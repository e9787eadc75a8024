// Package repository provides data access layer implementations and interfaces for the quoting tables
package repository

import (
	"context"

	"github.com/logenix/freightquote/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	Count(ctx context.Context, filter F) (int64, error)
}

// RouteHistoryRepository defines operations for remembered custom routes.
// Append deduplicates on the normalized (pol, pod, route_text) triple and
// enforces the retention cap; borders are recorded as-is alongside the
// route. Recent returns rows whose normalized (pol, pod) pair equals the
// query, newest first.
type RouteHistoryRepository interface {
	Append(ctx context.Context, pol, pod, routeText string, borders []string) error
	Recent(ctx context.Context, pol, pod string, limit int) ([]*models.RouteHistory, error)
}

// CatalogStatus is the explicit outcome of a price catalog read.
type CatalogStatus int

const (
	CatalogOK CatalogStatus = iota
	CatalogNotFound
	CatalogMalformed
)

// CatalogResult carries the loaded rates table together with its read
// status, so callers decide how to degrade instead of inheriting a blanket
// error swallow at the storage boundary.
type CatalogResult struct {
	Status  CatalogStatus
	Catalog *models.PriceCatalog
	Err     error
}

// PriceCatalogRepository reads the external rates table. The table is
// re-read on every call; nothing is cached across requests.
type PriceCatalogRepository interface {
	Load(ctx context.Context) CatalogResult
}

// QuoteSubmissionRepository appends submitted quote forms and mines them for
// dropdown suggestions.
type QuoteSubmissionRepository interface {
	Append(ctx context.Context, submission *models.QuoteSubmission) error
	DistinctValues(ctx context.Context, column string) ([]string, error)
}
