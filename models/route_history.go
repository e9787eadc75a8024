package models

import (
	"time"

	"github.com/lib/pq"
)

// RouteHistory is an accepted custom route, keyed for recall by the
// normalized (pol, pod) pair. Rows are append-only; a normalized
// (pol, pod, route_text) triple is inserted at most once, and the table is
// capped at 5000 rows with the oldest discarded first. Borders keeps the
// transit-border hints active when the route was accepted, for corridor
// usage analysis.
// Table: route_history
type RouteHistory struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Pol       string         `gorm:"size:255;not null;index:idx_route_history_pol_pod,priority:1" json:"pol"`
	Pod       string         `gorm:"size:255;not null;index:idx_route_history_pol_pod,priority:2" json:"pod"`
	RouteText string         `gorm:"type:text;not null" json:"route_text"`
	Borders   pq.StringArray `gorm:"type:text[]" json:"borders,omitempty"`
	CreatedAt time.Time      `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_route_history_created_at" json:"created_at"`
}

func (RouteHistory) TableName() string {
	return "route_history"
}

type RouteHistoryFilter struct {
	Pol *string `json:"pol,omitempty"`
	Pod *string `json:"pod,omitempty"`
}
