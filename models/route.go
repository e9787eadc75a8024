package models

// Route operational status values
const (
	RouteStatusOpen   = "open"
	RouteStatusClosed = "closed"
)

// RouteDefinition is one corridor in the static route catalog. A location
// string matches a keyword set when it contains any keyword as a substring
// after normalization. MustBorders only boost match confidence; they never
// filter. ID is unique across the catalog for the lifetime of the process.
type RouteDefinition struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	OriginKeywords      []string `json:"origin_keywords"`
	DestinationKeywords []string `json:"destination_keywords"`
	Path                string   `json:"path"`
	MustBorders         []string `json:"must_borders"`

	// Operational metadata used by the transit-time ranking policy.
	// Zero transit days means the range is unknown.
	Status         string `json:"status"`
	TransitDaysMin int    `json:"transit_days_min"`
	TransitDaysMax int    `json:"transit_days_max"`
}

// MatchedRoute is a per-request route candidate, derived either from a
// catalog definition (forward or reverse orientation) or from a remembered
// custom route. Score is comparable only within one ranking pass.
type MatchedRoute struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Path     string `json:"path"`
	Score    int    `json:"score"`
	Reversed bool   `json:"reversed"`
	Custom   bool   `json:"custom"`
	Recent   bool   `json:"recent"`

	// Transit-time policy fields; NeedsConfirmation is set on closed routes.
	Status            string `json:"status,omitempty"`
	TransitDaysMin    int    `json:"transit_days_min,omitempty"`
	TransitDaysMax    int    `json:"transit_days_max,omitempty"`
	NeedsConfirmation bool   `json:"needs_confirmation,omitempty"`
}

// DefaultRouteCatalog returns the curated Pakistan/Central Asia corridor
// catalog. Loaded once at startup and treated as immutable afterward.
func DefaultRouteCatalog() []RouteDefinition {
	return []RouteDefinition{
		{
			ID:                  "R1",
			Title:               "Route 1",
			OriginKeywords:      []string{"karachi", "karachi port"},
			DestinationKeywords: []string{"ashgabat", "turkmenistan"},
			Path:                "Karachi → Chaman Border (Pakistan/Afghanistan) → Torghundi Border (Afghanistan/Turkmenistan) → Ashgabat (Turkmenistan).",
			MustBorders:         []string{"chaman", "torghundi"},
			Status:              RouteStatusOpen,
			TransitDaysMin:      12,
			TransitDaysMax:      16,
		},
		{
			ID:                  "R2",
			Title:               "Route 2",
			OriginKeywords:      []string{"karachi", "karachi port"},
			DestinationKeywords: []string{"kabul", "afghanistan"},
			Path:                "Karachi → Chaman Border (Pakistan/Afghanistan) → Kabul (Afghanistan).",
			MustBorders:         []string{"chaman", "kabul"},
			Status:              RouteStatusOpen,
			TransitDaysMin:      7,
			TransitDaysMax:      10,
		},
		{
			ID:                  "R3",
			Title:               "Route 3",
			OriginKeywords:      []string{"karachi", "karachi port"},
			DestinationKeywords: []string{"kabul", "afghanistan"},
			Path:                "Karachi → Peshawar → Torkham Border (Pakistan/Afghanistan) → Kabul (Afghanistan).",
			MustBorders:         []string{"torkham", "kabul"},
			Status:              RouteStatusOpen,
			TransitDaysMin:      6,
			TransitDaysMax:      9,
		},
		{
			ID:                  "R4",
			Title:               "Route 4",
			OriginKeywords:      []string{"karachi", "karachi port"},
			DestinationKeywords: []string{"dushanbe", "dushambe", "tajikistan"},
			Path:                "Karachi → Chaman Border (Pakistan/Afghanistan) → Dushanbe (Tajikistan).",
			MustBorders:         []string{"chaman", "dushanbe"},
			Status:              RouteStatusOpen,
			TransitDaysMin:      10,
			TransitDaysMax:      14,
		},
		{
			ID:                  "R5",
			Title:               "Route 5",
			OriginKeywords:      []string{"karachi", "karachi port"},
			DestinationKeywords: []string{"dushanbe", "dushambe", "tajikistan"},
			Path:                "Karachi → Peshawar → Torkham Border (Pakistan/Afghanistan) → Dushanbe (Tajikistan).",
			MustBorders:         []string{"torkham", "dushanbe"},
			Status:              RouteStatusOpen,
			TransitDaysMin:      10,
			TransitDaysMax:      13,
		},
		{
			ID:                  "R6",
			Title:               "Route 6",
			OriginKeywords:      []string{"karachi", "karachi port"},
			DestinationKeywords: []string{"uzbekistan"},
			Path:                "Karachi → Chaman Border (Pakistan/Afghanistan) → Hairatan Border (Afghanistan/Uzbekistan) → Any city in Uzbekistan.",
			MustBorders:         []string{"chaman", "hairatan"},
			Status:              RouteStatusOpen,
			TransitDaysMin:      12,
			TransitDaysMax:      18,
		},
		{
			ID:                  "R7",
			Title:               "Route 7",
			OriginKeywords:      []string{"karachi", "karachi port"},
			DestinationKeywords: []string{"uzbekistan"},
			Path:                "Karachi → Peshawar → Torkham Border (Pakistan/Afghanistan) → Hairatan Border (Afghanistan/Uzbekistan) → Any city in Uzbekistan.",
			MustBorders:         []string{"torkham", "hairatan"},
			Status:              RouteStatusOpen,
			TransitDaysMin:      12,
			TransitDaysMax:      17,
		},
		{
			ID:                  "R8",
			Title:               "Route 8",
			OriginKeywords:      []string{"karachi", "karachi port"},
			DestinationKeywords: []string{"almaty", "kazakhstan"},
			Path:                "Karachi → Chaman Border (Pakistan/Afghanistan) → Hairatan Border (Afghanistan/Uzbekistan) → Tashkent Border (Uzbekistan/Kazakhstan) → Almaty (Kazakhstan).",
			MustBorders:         []string{"chaman", "hairatan", "tashkent", "almaty"},
			Status:              RouteStatusOpen,
			TransitDaysMin:      16,
			TransitDaysMax:      22,
		},
		{
			ID:                  "R9",
			Title:               "Route 9",
			OriginKeywords:      []string{"karachi", "karachi port"},
			DestinationKeywords: []string{"almaty", "kazakhstan"},
			Path:                "Karachi → Peshawar → Torkham Border (Pakistan/Afghanistan) → Hairatan Border (Afghanistan/Uzbekistan) → Tashkent Border (Uzbekistan/Kazakhstan) → Almaty (Kazakhstan).",
			MustBorders:         []string{"torkham", "hairatan", "tashkent", "almaty"},
			Status:              RouteStatusOpen,
			TransitDaysMin:      16,
			TransitDaysMax:      21,
		},
	}
}
