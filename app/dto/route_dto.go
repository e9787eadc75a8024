package dto

// FindRoutesRequest asks for route suggestions between an origin and a
// destination, optionally disambiguated by up to four transit border hints
// in positional order.
type FindRoutesRequest struct {
	Origin         string   `json:"origin" validate:"required,max=255"`
	Destination    string   `json:"destination" validate:"required,max=255"`
	TransitBorders []string `json:"transit_borders" validate:"omitempty,max=4,dive,max=255"`
}

// MatchedRouteDTO is one suggested route candidate.
type MatchedRouteDTO struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Path              string `json:"path"`
	Score             int    `json:"score"`
	Reversed          bool   `json:"reversed"`
	Custom            bool   `json:"custom"`
	Recent            bool   `json:"recent"`
	Status            string `json:"status,omitempty"`
	TransitDaysMin    int    `json:"transit_days_min,omitempty"`
	TransitDaysMax    int    `json:"transit_days_max,omitempty"`
	NeedsConfirmation bool   `json:"needs_confirmation,omitempty"`
}

// FindRoutesResponse lists candidates best-first. BestID is empty when no
// candidate matched; callers should then offer the type-your-own fallback.
type FindRoutesResponse struct {
	Candidates []MatchedRouteDTO `json:"candidates"`
	BestID     string            `json:"best_id,omitempty"`
}

// AcceptCustomRouteRequest submits a user-typed itinerary for persistence.
// TransitBorders carries the hints that were active during the search and
// is stored alongside the route.
type AcceptCustomRouteRequest struct {
	Origin         string   `json:"origin" validate:"required,max=255"`
	Destination    string   `json:"destination" validate:"required,max=255"`
	RouteText      string   `json:"route_text" validate:"required"`
	TransitBorders []string `json:"transit_borders" validate:"omitempty,max=4,dive,max=255"`
}

// AcceptCustomRouteResponse confirms acceptance of a custom route.
type AcceptCustomRouteResponse struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message"`
}
