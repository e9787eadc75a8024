package businessflow

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/logenix/freightquote/app/dto"
	"github.com/logenix/freightquote/config"
	"github.com/logenix/freightquote/models"
	"github.com/logenix/freightquote/repository"
	"github.com/logenix/freightquote/utils"
)

// Scoring constants for the keyword-score ranking policy. Early transit
// hints weigh more because they tend to be the decisive legs of a
// multi-border corridor.
const (
	catalogBaseScore = 5
	historyBaseScore = 1
	mustBorderBonus  = 2
	mustBorderMin    = 2
)

var transitHintBonuses = [4]int{4, 4, 2, 2}

// RouteFlow suggests routes between an origin and destination and records
// accepted custom routes for later recall.
type RouteFlow interface {
	FindRoutes(ctx context.Context, req *dto.FindRoutesRequest) (*dto.FindRoutesResponse, error)
	AcceptCustomRoute(ctx context.Context, req *dto.AcceptCustomRouteRequest) (*dto.AcceptCustomRouteResponse, error)
}

// RouteFlowImpl implements the route matching and ranking flow over the
// static catalog and the route history store.
type RouteFlowImpl struct {
	catalog     []models.RouteDefinition
	historyRepo repository.RouteHistoryRepository
	policy      config.PolicyConfig
}

// NewRouteFlow creates a new route flow instance
func NewRouteFlow(catalog []models.RouteDefinition, historyRepo repository.RouteHistoryRepository, policy config.PolicyConfig) RouteFlow {
	return &RouteFlowImpl{
		catalog:     catalog,
		historyRepo: historyRepo,
		policy:      policy,
	}
}

// hintBonus applies the positional transit-hint bonuses to a candidate path.
func hintBonus(path string, hints []string) int {
	pathN := utils.Normalize(path)
	bonus := 0
	pos := 0
	for _, hint := range hints {
		h := utils.Normalize(hint)
		if h == "" {
			continue
		}
		if pos >= len(transitHintBonuses) {
			break
		}
		if containsSubstring(pathN, h) {
			bonus += transitHintBonuses[pos]
		}
		pos++
	}
	return bonus
}

func containsSubstring(haystackN, needleN string) bool {
	if needleN == "" {
		return false
	}
	return strings.Contains(haystackN, needleN)
}

// mustBorderHits counts must-borders found as substrings inside some hint.
func mustBorderHits(mustBorders, hints []string) int {
	hits := 0
	for _, m := range mustBorders {
		mN := utils.Normalize(m)
		if mN == "" {
			continue
		}
		for _, hint := range hints {
			if containsSubstring(utils.Normalize(hint), mN) {
				hits++
				break
			}
		}
	}
	return hits
}

func keywordMatch(locationN string, keywords []string) bool {
	for _, k := range keywords {
		kN := utils.Normalize(k)
		if kN != "" && containsSubstring(locationN, kN) {
			return true
		}
	}
	return false
}

// FindRoutes matches the catalog in both orientations, pulls recent custom
// routes for the pair, scores everything, and returns candidates best-first.
// An empty result is a signal to offer the type-your-own fallback, not an
// error.
func (f *RouteFlowImpl) FindRoutes(ctx context.Context, req *dto.FindRoutesRequest) (*dto.FindRoutesResponse, error) {
	polN := utils.Normalize(req.Origin)
	podN := utils.Normalize(req.Destination)

	var candidates []models.MatchedRoute

	for _, def := range f.catalog {
		// Forward and reverse are independent checks against the same
		// definition; symmetric keyword sets may legitimately yield both.
		if keywordMatch(polN, def.OriginKeywords) && keywordMatch(podN, def.DestinationKeywords) {
			candidates = append(candidates, f.catalogCandidate(def, false, req.TransitBorders))
		}
		if keywordMatch(polN, def.DestinationKeywords) && keywordMatch(podN, def.OriginKeywords) {
			candidates = append(candidates, f.catalogCandidate(def, true, req.TransitBorders))
		}
	}

	recent, err := f.historyRepo.Recent(ctx, req.Origin, req.Destination, utils.RecentRouteLimit)
	if err != nil {
		// History unavailability never blocks quoting; degrade to catalog-only.
		log.Printf("route history read failed, continuing without history: %v", err)
		recent = nil
	}
	for _, row := range recent {
		candidates = append(candidates, models.MatchedRoute{
			ID:     fmt.Sprintf("HR-%d", row.ID),
			Title:  "Recent Used Route",
			Path:   row.RouteText,
			Score:  historyBaseScore + hintBonus(row.RouteText, req.TransitBorders),
			Custom: true,
			Recent: true,
		})
	}

	if len(candidates) == 0 {
		return &dto.FindRoutesResponse{Candidates: []dto.MatchedRouteDTO{}}, nil
	}

	f.rank(candidates)

	out := make([]dto.MatchedRouteDTO, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, toMatchedRouteDTO(c))
	}
	return &dto.FindRoutesResponse{
		Candidates: out,
		BestID:     candidates[0].ID,
	}, nil
}

func (f *RouteFlowImpl) catalogCandidate(def models.RouteDefinition, reversed bool, hints []string) models.MatchedRoute {
	path := def.Path
	if reversed {
		path = utils.ReversePath(path)
	}

	score := catalogBaseScore + hintBonus(path, hints)
	if mustBorderHits(def.MustBorders, hints) >= mustBorderMin {
		score += mustBorderBonus
	}

	return models.MatchedRoute{
		ID:                def.ID,
		Title:             def.Title,
		Path:              path,
		Score:             score,
		Reversed:          reversed,
		Status:            def.Status,
		TransitDaysMin:    def.TransitDaysMin,
		TransitDaysMax:    def.TransitDaysMax,
		NeedsConfirmation: f.policy.RouteRanking == config.RankingTransitTime && def.Status == models.RouteStatusClosed,
	}
}

// rank orders candidates per the configured policy. Keyword-score ranks
// descending by score; transit-time ranks ascending by minimum transit days
// with unknown ranges last. Both sorts are stable, so ties keep
// catalog-then-history insertion order.
func (f *RouteFlowImpl) rank(candidates []models.MatchedRoute) {
	if f.policy.RouteRanking == config.RankingTransitTime {
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i].TransitDaysMin, candidates[j].TransitDaysMin
			if (a > 0) != (b > 0) {
				return a > 0
			}
			if a != b {
				return a < b
			}
			return candidates[i].Score > candidates[j].Score
		})
		return
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}

// AcceptCustomRoute validates and persists a user-typed itinerary. The text
// must contain both the origin and the destination; storage failures are
// dropped silently so quoting stays available.
func (f *RouteFlowImpl) AcceptCustomRoute(ctx context.Context, req *dto.AcceptCustomRouteRequest) (*dto.AcceptCustomRouteResponse, error) {
	textN := utils.Normalize(req.RouteText)
	if textN == "" {
		return nil, NewBusinessError("VALIDATION_ERROR", "Please type your own route.", ErrOwnRouteTextRequired)
	}

	polOK := utils.ContainsNormalized(req.RouteText, req.Origin)
	podOK := utils.ContainsNormalized(req.RouteText, req.Destination)
	if !polOK || !podOK {
		return nil, NewBusinessError("VALIDATION_ERROR",
			"Your custom route must contain Pick Up Point and Point of Delivery (POL and POD).",
			ErrRouteEndpointsMissing)
	}

	if err := f.historyRepo.Append(ctx, req.Origin, req.Destination, req.RouteText, req.TransitBorders); err != nil {
		log.Printf("route history append dropped: %v", err)
	}

	return &dto.AcceptCustomRouteResponse{
		Accepted: true,
		Message:  "Custom route accepted",
	}, nil
}

func toMatchedRouteDTO(c models.MatchedRoute) dto.MatchedRouteDTO {
	return dto.MatchedRouteDTO{
		ID:                c.ID,
		Title:             c.Title,
		Path:              c.Path,
		Score:             c.Score,
		Reversed:          c.Reversed,
		Custom:            c.Custom,
		Recent:            c.Recent,
		Status:            c.Status,
		TransitDaysMin:    c.TransitDaysMin,
		TransitDaysMax:    c.TransitDaysMax,
		NeedsConfirmation: c.NeedsConfirmation,
	}
}
