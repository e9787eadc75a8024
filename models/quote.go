package models

import "time"

// Validity classification for a quote candidate.
const (
	ValidityValid   = "valid"
	ValidityExpired = "expired"
	ValidityUnknown = "unknown"
)

// QuoteField is one display entry of a quote candidate. NA marks an
// empty/missing source value, distinct from a legitimate zero.
type QuoteField struct {
	Key        string `json:"key"`
	Value      string `json:"value"`
	NA         bool   `json:"na"`
	GrandTotal bool   `json:"grand_total"`
}

// QuoteCandidate is one ranked price offer derived from a PriceRecord.
// Exactly one candidate in a non-empty result set carries Best.
type QuoteCandidate struct {
	Best          bool         `json:"best"`
	Title         string       `json:"title"`
	ValidityLabel string       `json:"validity_label"`
	ValidityKind  string       `json:"validity_kind"`
	Fields        []QuoteField `json:"fields"`
}

// QuoteSubmission is a submitted quote request form, appended to the
// submissions workbook and mined later for dropdown suggestions.
type QuoteSubmission struct {
	QuoteID         string `json:"quote_id"`
	CompanyName     string `json:"company_name"`
	SalespersonName string `json:"salesperson_name"`

	ContainerOwnership string `json:"container_ownership"`
	Incoterm           string `json:"incoterm"`
	ShipmentType       string `json:"shipment_type"`

	Origins        [4]string `json:"origins"`
	Destinations   [4]string `json:"destinations"`
	TransitBorders [4]string `json:"transit_borders"`

	SelectedRouteID   string `json:"selected_route_id"`
	SelectedRouteText string `json:"selected_route_text"`
	CustomRouteText   string `json:"custom_route_text"`

	CargoType      string `json:"cargo_type"`
	PackagingType  string `json:"packaging_type"`
	FreeDaysReturn string `json:"free_days_return"`

	LiftingLaborRequired    string `json:"lifting_labor_required"`
	OffloadingResponsible   string `json:"offloading_responsible"`
	FinalCustomsResponsible string `json:"final_customs_responsible"`

	ReloadingRequired string `json:"reloading_required"`
	ReloadingCount    int    `json:"reloading_count"`
	ReloadingPlaces   string `json:"reloading_places"`

	Commodity  string `json:"commodity"`
	WeightTons string `json:"weight_tons"`

	ContainerType string `json:"container_type"`
	ContainerSize string `json:"container_size"`
	NumContainers string `json:"num_containers"`

	WidthFt      string `json:"width_ft"`
	HeightFt     string `json:"height_ft"`
	TemperatureC string `json:"temperature_c"`

	CargoValue      string `json:"cargo_value"`
	InsuranceRate   string `json:"insurance_rate"`
	InsuranceAmount string `json:"insurance_amount"`
	MiscCost        string `json:"misc_cost"`

	SpecialCostOption string `json:"special_cost_option"`
	SpecialCostReason string `json:"special_cost_reason"`
	SpecialCost       string `json:"special_cost"`

	CreatedAt time.Time `json:"created_at"`
}
