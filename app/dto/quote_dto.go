package dto

// FindQuotesRequest searches the price catalog for matching rate records.
type FindQuotesRequest struct {
	Origin        string `json:"origin" validate:"required,max=255"`
	Destination   string `json:"destination" validate:"required,max=255"`
	Commodity     string `json:"commodity" validate:"required,max=255"`
	ContainerSize string `json:"container_size" validate:"omitempty,max=64"`
	Limit         int    `json:"limit" validate:"omitempty,gte=1,lte=20"`
}

// QuoteFieldDTO is one display entry of a quote candidate.
type QuoteFieldDTO struct {
	Key        string `json:"key"`
	Value      string `json:"value"`
	NA         bool   `json:"na"`
	GrandTotal bool   `json:"grand_total"`
}

// QuoteCandidateDTO is one ranked price offer.
type QuoteCandidateDTO struct {
	Best          bool            `json:"best"`
	Title         string          `json:"title"`
	ValidityLabel string          `json:"validity_label"`
	ValidityKind  string          `json:"validity_kind"`
	Fields        []QuoteFieldDTO `json:"fields"`
}

// FindQuotesResponse carries ranked candidates. Error is a configuration or
// availability message; an empty candidate list with no error is a no-offer
// outcome, not a failure.
type FindQuotesResponse struct {
	Candidates []QuoteCandidateDTO `json:"candidates"`
	Summary    string              `json:"summary,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// SubmitQuoteRequest is the full quote form. Field names mirror the form
// layout; everything beyond origin, destination, and commodity is optional
// free text recorded for the submission log.
type SubmitQuoteRequest struct {
	CompanyName     string `json:"company_name" validate:"omitempty,max=255"`
	SalespersonName string `json:"salesperson_name" validate:"omitempty,max=255"`

	ContainerOwnership string `json:"container_ownership" validate:"omitempty,max=255"`
	Incoterm           string `json:"incoterm" validate:"omitempty,max=64"`
	ShipmentType       string `json:"shipment_type" validate:"omitempty,max=255"`

	Origins        []string `json:"origins" validate:"required,min=1,max=4,dive,max=255"`
	Destinations   []string `json:"destinations" validate:"required,min=1,max=4,dive,max=255"`
	TransitBorders []string `json:"transit_borders" validate:"omitempty,max=4,dive,max=255"`

	SelectedRouteID string `json:"selected_route_id" validate:"omitempty,max=64"`
	OwnRouteText    string `json:"own_route_text" validate:"omitempty"`
	ConfirmClosed   bool   `json:"confirm_closed"`

	CargoType      string `json:"cargo_type" validate:"omitempty,max=255"`
	PackagingType  string `json:"packaging_type" validate:"omitempty,max=255"`
	FreeDaysReturn string `json:"free_days_return" validate:"omitempty,max=32"`

	LiftingLaborRequired    string `json:"lifting_labor_required" validate:"omitempty,max=64"`
	OffloadingResponsible   string `json:"offloading_responsible" validate:"omitempty,max=255"`
	FinalCustomsResponsible string `json:"final_customs_responsible" validate:"omitempty,max=255"`

	ReloadingRequired string   `json:"reloading_required" validate:"omitempty,max=16"`
	ReloadingCount    int      `json:"reloading_count" validate:"omitempty,gte=0,lte=5"`
	ReloadingPlaces   []string `json:"reloading_places" validate:"omitempty,max=5,dive,max=255"`

	Commodity  string `json:"commodity" validate:"required,max=255"`
	WeightTons string `json:"weight_tons" validate:"omitempty,max=64"`

	ContainerType string `json:"container_type" validate:"omitempty,max=255"`
	ContainerSize string `json:"container_size" validate:"omitempty,max=64"`
	NumContainers string `json:"num_containers" validate:"omitempty,max=32"`

	WidthFt      string `json:"width_ft" validate:"omitempty,max=32"`
	HeightFt     string `json:"height_ft" validate:"omitempty,max=32"`
	TemperatureC string `json:"temperature_c" validate:"omitempty,max=32"`

	CargoValue    string `json:"cargo_value" validate:"omitempty,max=64"`
	InsuranceRate string `json:"insurance_rate" validate:"omitempty,max=32"`
	MiscCost      string `json:"misc_cost" validate:"omitempty,max=255"`

	SpecialCostOption string `json:"special_cost_option" validate:"omitempty,max=16"`
	SpecialCostReason string `json:"special_cost_reason" validate:"omitempty,max=255"`
	SpecialCost       string `json:"special_cost" validate:"omitempty,max=255"`
}

// SubmittedItemDTO is one label/value pair echoed back on the result page;
// only fields with a real value are included.
type SubmittedItemDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SubmitQuoteResponse is the result page payload: the recorded submission
// echo plus the ranked rate candidates.
type SubmitQuoteResponse struct {
	QuoteID           string              `json:"quote_id"`
	SelectedRouteText string              `json:"selected_route_text,omitempty"`
	SubmittedItems    []SubmittedItemDTO  `json:"submitted_items"`
	Quotes            []QuoteCandidateDTO `json:"quotes"`
	Summary           string              `json:"summary,omitempty"`
	Error             string              `json:"error,omitempty"`
}
