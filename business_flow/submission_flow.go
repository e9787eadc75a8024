package businessflow

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/logenix/freightquote/app/dto"
	"github.com/logenix/freightquote/models"
	"github.com/logenix/freightquote/repository"
	"github.com/logenix/freightquote/utils"
)

// OwnRouteID is the sentinel route selection meaning "my own route".
const OwnRouteID = "OWN"

// SubmissionFlow records a completed quote form and returns the ranked
// rate candidates for the result page.
type SubmissionFlow interface {
	SubmitQuote(ctx context.Context, req *dto.SubmitQuoteRequest) (*dto.SubmitQuoteResponse, error)
}

// SubmissionFlowImpl implements the quote form submission flow.
type SubmissionFlowImpl struct {
	routeFlow      RouteFlow
	quoteFlow      QuoteFlow
	submissionRepo repository.QuoteSubmissionRepository
}

// NewSubmissionFlow creates a new submission flow instance
func NewSubmissionFlow(routeFlow RouteFlow, quoteFlow QuoteFlow, submissionRepo repository.QuoteSubmissionRepository) SubmissionFlow {
	return &SubmissionFlowImpl{
		routeFlow:      routeFlow,
		quoteFlow:      quoteFlow,
		submissionRepo: submissionRepo,
	}
}

// SubmitQuote resolves the route selection, validates the shipment details,
// records the submission, and runs the rate search. Validation failures
// come back as BusinessError with code VALIDATION_ERROR and persist nothing.
func (f *SubmissionFlowImpl) SubmitQuote(ctx context.Context, req *dto.SubmitQuoteRequest) (*dto.SubmitQuoteResponse, error) {
	pol := firstNonEmpty(req.Origins)
	pod := firstNonEmpty(req.Destinations)
	if pol == "" || pod == "" {
		return nil, NewBusinessError("VALIDATION_ERROR", "Pick Up Point and Point of Delivery are required", nil)
	}

	if err := f.validateContainerDetails(req); err != nil {
		return nil, err
	}

	routeText, err := f.resolveRoute(ctx, req, pol, pod)
	if err != nil {
		return nil, err
	}

	submission := f.buildSubmission(req, pol, pod, routeText)

	if err := f.submissionRepo.Append(ctx, submission); err != nil {
		// The submission log is best-effort; quoting continues.
		log.Printf("quote submission append dropped: %v", err)
	}

	quotes, err := f.quoteFlow.FindQuotes(ctx, &dto.FindQuotesRequest{
		Origin:        pol,
		Destination:   pod,
		Commodity:     req.Commodity,
		ContainerSize: submission.ContainerSize,
	})
	if err != nil {
		return nil, err
	}

	return &dto.SubmitQuoteResponse{
		QuoteID:           submission.QuoteID,
		SelectedRouteText: routeText,
		SubmittedItems:    buildSubmittedItems(submission),
		Quotes:            quotes.Candidates,
		Summary:           quotes.Summary,
		Error:             quotes.Error,
	}, nil
}

func firstNonEmpty(values []string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func (f *SubmissionFlowImpl) validateContainerDetails(req *dto.SubmitQuoteRequest) error {
	ct := utils.Normalize(req.ContainerType)
	if strings.Contains(ct, "open top") || strings.Contains(ct, "flat rack") {
		if strings.TrimSpace(req.WidthFt) == "" || strings.TrimSpace(req.HeightFt) == "" {
			return NewBusinessError("VALIDATION_ERROR",
				"Width and Height are required for Open Top / Flat Rack.", ErrDimensionsRequired)
		}
	}
	if strings.Contains(ct, "reefer") {
		if strings.TrimSpace(req.TemperatureC) == "" {
			return NewBusinessError("VALIDATION_ERROR",
				"Temperature is required for Reefer.", ErrTemperatureRequired)
		}
	}
	return nil
}

// resolveRoute turns the user's selection into the final route text,
// persisting a newly accepted custom route along the way.
func (f *SubmissionFlowImpl) resolveRoute(ctx context.Context, req *dto.SubmitQuoteRequest, pol, pod string) (string, error) {
	matched, err := f.routeFlow.FindRoutes(ctx, &dto.FindRoutesRequest{
		Origin:         pol,
		Destination:    pod,
		TransitBorders: req.TransitBorders,
	})
	if err != nil {
		return "", err
	}

	selected := strings.TrimSpace(req.SelectedRouteID)

	if selected == OwnRouteID {
		if _, err := f.routeFlow.AcceptCustomRoute(ctx, &dto.AcceptCustomRouteRequest{
			Origin:         pol,
			Destination:    pod,
			RouteText:      req.OwnRouteText,
			TransitBorders: req.TransitBorders,
		}); err != nil {
			return "", err
		}
		return strings.TrimSpace(req.OwnRouteText), nil
	}

	if len(matched.Candidates) == 0 {
		return "", NewBusinessError("VALIDATION_ERROR",
			"No routes found for now. Please choose 'My own route' and type your route.",
			ErrRouteSelectionRequired)
	}

	if selected == "" {
		return "", NewBusinessError("VALIDATION_ERROR",
			"Please select one route or choose 'My own route'.", ErrRouteSelectionRequired)
	}

	for _, c := range matched.Candidates {
		if c.ID != selected {
			continue
		}
		if c.NeedsConfirmation && !req.ConfirmClosed {
			return "", NewBusinessError("ROUTE_CLOSED_UNCONFIRMED",
				"This route is currently closed; confirm to select it anyway.",
				ErrRouteClosedUnconfirmed)
		}
		return strings.TrimSpace(c.Path), nil
	}

	return "", NewBusinessError("VALIDATION_ERROR",
		"Selected route not found. Please choose again.", ErrSelectedRouteNotFound)
}

func (f *SubmissionFlowImpl) buildSubmission(req *dto.SubmitQuoteRequest, pol, pod, routeText string) *models.QuoteSubmission {
	s := &models.QuoteSubmission{
		QuoteID:         "QUOTE-" + utils.UTCNowFormat("20060102150405"),
		CompanyName:     strings.TrimSpace(req.CompanyName),
		SalespersonName: strings.TrimSpace(req.SalespersonName),

		ContainerOwnership: strings.TrimSpace(req.ContainerOwnership),
		Incoterm:           strings.TrimSpace(req.Incoterm),
		ShipmentType:       strings.TrimSpace(req.ShipmentType),

		SelectedRouteID:   strings.TrimSpace(req.SelectedRouteID),
		SelectedRouteText: routeText,

		CargoType:      strings.TrimSpace(req.CargoType),
		PackagingType:  strings.TrimSpace(req.PackagingType),
		FreeDaysReturn: strings.TrimSpace(req.FreeDaysReturn),

		LiftingLaborRequired:    strings.TrimSpace(req.LiftingLaborRequired),
		OffloadingResponsible:   strings.TrimSpace(req.OffloadingResponsible),
		FinalCustomsResponsible: strings.TrimSpace(req.FinalCustomsResponsible),

		ReloadingRequired: strings.TrimSpace(req.ReloadingRequired),

		Commodity:  strings.TrimSpace(req.Commodity),
		WeightTons: strings.TrimSpace(req.WeightTons),

		ContainerType: strings.TrimSpace(req.ContainerType),
		ContainerSize: utils.CleanContainerSize(req.ContainerSize),
		NumContainers: strings.TrimSpace(req.NumContainers),

		WidthFt:      strings.TrimSpace(req.WidthFt),
		HeightFt:     strings.TrimSpace(req.HeightFt),
		TemperatureC: strings.TrimSpace(req.TemperatureC),

		CargoValue:    strings.TrimSpace(req.CargoValue),
		InsuranceRate: strings.TrimSpace(req.InsuranceRate),
		MiscCost:      strings.TrimSpace(req.MiscCost),

		SpecialCostOption: strings.TrimSpace(req.SpecialCostOption),

		CreatedAt: utils.UTCNow(),
	}

	copy(s.Origins[:], req.Origins)
	copy(s.Destinations[:], req.Destinations)
	copy(s.TransitBorders[:], req.TransitBorders)
	s.Origins[0] = pol
	s.Destinations[0] = pod

	if s.SelectedRouteID == OwnRouteID {
		s.CustomRouteText = strings.TrimSpace(req.OwnRouteText)
	}

	if utils.Normalize(req.ReloadingRequired) == "yes" {
		count := req.ReloadingCount
		if count < 0 {
			count = 0
		}
		if count > 5 {
			count = 5
		}
		s.ReloadingCount = count
		places := make([]string, 0, len(req.ReloadingPlaces))
		for _, p := range req.ReloadingPlaces {
			if p = strings.TrimSpace(p); p != "" {
				places = append(places, p)
			}
		}
		s.ReloadingPlaces = strings.Join(places, "; ")
	}

	// Insurance amount derives from cargo value and rate when both parse.
	if value, ok := utils.ParsePrice(req.CargoValue); ok {
		if rate, ok := utils.ParsePercent(req.InsuranceRate); ok {
			s.InsuranceAmount = utils.FormatMoney(rate / 100.0 * value)
		}
	}

	if utils.Normalize(req.SpecialCostOption) == "yes" {
		s.SpecialCostReason = strings.TrimSpace(req.SpecialCostReason)
		s.SpecialCost = strings.TrimSpace(req.SpecialCost)
	}

	return s
}

// buildSubmittedItems echoes back only the fields the user actually filled.
func buildSubmittedItems(s *models.QuoteSubmission) []dto.SubmittedItemDTO {
	var items []dto.SubmittedItemDTO
	add := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			items = append(items, dto.SubmittedItemDTO{Label: label, Value: strings.TrimSpace(value)})
		}
	}

	add("Quote ID", s.QuoteID)
	add("Company", s.CompanyName)
	add("Salesperson Name", s.SalespersonName)
	add("Container Ownership", s.ContainerOwnership)
	add("Incoterm", s.Incoterm)

	for i, v := range s.Origins {
		add("Pick Up Point (POL "+strconv.Itoa(i+1)+")", v)
	}
	for i, v := range s.Destinations {
		add("Point of Delivery (POD "+strconv.Itoa(i+1)+")", v)
	}
	for i, v := range s.TransitBorders {
		add("Transit Border "+strconv.Itoa(i+1), v)
	}

	add("Selected Route ID", s.SelectedRouteID)
	add("Selected Route", s.SelectedRouteText)
	add("Custom Route", s.CustomRouteText)

	add("Cargo Type", s.CargoType)
	add("Packaging Type", s.PackagingType)
	add("Free Days to Return Container", s.FreeDaysReturn)

	add("Lifting / Labor required?", s.LiftingLaborRequired)
	add("Who is responsible for offloading?", s.OffloadingResponsible)
	add("Who is responsible for Final Customs?", s.FinalCustomsResponsible)

	add("Reloading Required", s.ReloadingRequired)
	if s.ReloadingCount > 0 {
		add("Reloading Count", strconv.Itoa(s.ReloadingCount))
	}
	add("Reloading Places", s.ReloadingPlaces)

	add("Commodity", s.Commodity)
	add("Weight", s.WeightTons)

	add("Type of Container", s.ContainerType)
	add("Container Size", s.ContainerSize)
	add("Number of Containers", s.NumContainers)

	add("Width (ft)", s.WidthFt)
	add("Height (ft)", s.HeightFt)
	add("Temperature (°C)", s.TemperatureC)

	add("Cargo Value", s.CargoValue)
	add("Insurance Rate", s.InsuranceRate)
	add("Insurance Amount", s.InsuranceAmount)

	add("Miscellaneous Cost", s.MiscCost)
	add("Special Cost Option", s.SpecialCostOption)
	add("Reason", s.SpecialCostReason)
	add("Special Cost", s.SpecialCost)

	add("Shipment Type", s.ShipmentType)
	add("Timestamp", s.CreatedAt.Format("2006-01-02 15:04:05"))

	return items
}
