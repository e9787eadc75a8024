package utils

// Quote presentation constants
const (
	// ShowLimit is the maximum number of quote boxes presented per search
	ShowLimit = 4

	// RecentRouteLimit is the maximum number of history routes surfaced per lookup
	RecentRouteLimit = 5

	// RouteHistoryCap is the maximum number of rows retained in the route
	// history store; the oldest rows are discarded once it is exceeded
	RouteHistoryCap = 5000
)

// Cache key constants
const (
	// FormOptionsCacheKey stores the merged dropdown/autocomplete lists
	FormOptionsCacheKey = "form_options"
)
