package booking

import (
	"context"
	"strconv"
	"strings"

	"summitos/models"
	"summitos/services/distance"
	"summitos/services/pricing"
	"summitos/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// simpleWaitHours is the flat wait applied to a one-way trip that requests a
// short wait-and-return at the dropoff.
const simpleWaitHours = 1.0

// maxStopsPerLeg bounds intermediate stops on each leg of a trip.
const maxStopsPerLeg = 5

func validateTripRequest(req models.TripRequest) error {
	if strings.TrimSpace(req.Pickup) == "" {
		return NewValidationError("pickup address is required")
	}
	if strings.TrimSpace(req.Dropoff) == "" {
		return NewValidationError("dropoff address is required")
	}
	switch req.TripType {
	case models.TripTypeOneWay, models.TripTypeRoundTrip:
	default:
		return NewValidationError("trip type must be one-way or round-trip")
	}
	if req.LayoverHours < 0 {
		return NewValidationError("layover hours cannot be negative")
	}
	if req.TripType == models.TripTypeOneWay && req.LayoverHours > 0 {
		return NewValidationError("layover hours apply to round trips only")
	}
	if req.TripType == models.TripTypeRoundTrip && req.SimpleWait {
		return NewValidationError("the simple wait option applies to one-way trips only")
	}
	if len(req.Stops) > maxStopsPerLeg || len(req.ReturnStops) > maxStopsPerLeg {
		return NewValidationError("at most 5 stops are allowed per leg")
	}
	return nil
}

// aggregateTrip turns a resolved one-way leg into the pricing input. Stops are
// never routed through the distance matrix; each one is charged a fixed detour
// allowance instead, and a round trip doubles the leg.
func (s *DefaultBookingService) aggregateTrip(req models.TripRequest, leg distance.RouteInfo, surcharge bool) models.TripParams {
	factor := s.RoundTripFactor
	if factor <= 0 {
		factor = 2.0
	}
	detour := s.StopDetourMiles
	if detour <= 0 {
		detour = 3.0
	}

	params := models.TripParams{IsSurchargeZone: surcharge}
	switch req.TripType {
	case models.TripTypeRoundTrip:
		stops := len(req.Stops) + len(req.ReturnStops)
		params.DistanceMiles = factor*leg.Miles + detour*float64(stops)
		params.StopCount = stops
		params.WaitTimeHours = req.LayoverHours
	default:
		stops := len(req.Stops)
		params.DistanceMiles = leg.Miles + detour*float64(stops)
		params.StopCount = stops
		if req.SimpleWait {
			params.WaitTimeHours = simpleWaitHours
		}
	}
	return params
}

// InitiateQuote resolves the trip distance, prices it, and opens a session.
func (s *DefaultBookingService) InitiateQuote(ctx context.Context, req models.TripRequest) (*models.BookingSession, error) {
	logger := utils.GetLogger()

	if err := validateTripRequest(req); err != nil {
		return nil, err
	}

	req.Pickup = distance.NormalizeAddress(req.Pickup)
	req.Dropoff = distance.NormalizeAddress(req.Dropoff)
	for i, stop := range req.Stops {
		req.Stops[i] = distance.NormalizeAddress(stop)
	}
	for i, stop := range req.ReturnStops {
		req.ReturnStops[i] = distance.NormalizeAddress(stop)
	}

	leg, err := s.Resolver.ResolveDistance(ctx, req.Pickup, req.Dropoff, req.Stops)
	if err != nil {
		logger.Error("Distance resolution failed", zap.Error(err))
		return nil, NewUpstreamError("could not resolve trip distance", err)
	}

	surcharge := distance.IsSurchargeZone(req.Pickup, req.Dropoff)
	params := s.aggregateTrip(req, leg, surcharge)
	quote := pricing.CalculateTripPrice(params)
	quote.Debug = &models.QuoteDebug{
		Origin:          req.Pickup,
		Destination:     req.Dropoff,
		LegMiles:        strconv.FormatFloat(leg.Miles, 'f', 1, 64) + " mi",
		Duration:        leg.DurationText,
		IsSurchargeZone: surcharge,
		KeySource:       leg.KeySource,
	}

	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		State:     models.StateQuote,
		Trip:      req,
		Quote:     &quote,
		CreatedAt: s.clock(),
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		logger.Error("Failed to store booking session", zap.Error(err))
		return nil, err
	}

	logger.Info("Initiated booking session",
		zap.String("sessionID", session.SessionID),
		zap.Float64("total", quote.Total))
	return session, nil
}
