package skill

import (
	"context"
	"fmt"
	"strings"

	sessionRepo "github.com/krharsh17/alexa-flight-booking/database/repository/session"
	"github.com/krharsh17/alexa-flight-booking/models"
	"github.com/krharsh17/alexa-flight-booking/services/flights"

	"go.uber.org/zap"
)

// TravelIntent is the intent name for flight searches.
const TravelIntent = "TravelIntent"

// Slot names supplied by the interaction model.
const (
	slotFromCity        = "fromCity"
	slotToCity          = "toCity"
	slotDateOfDeparture = "dateOfDeparture"
	slotSelection       = "selection"
)

const (
	searchAdults = 1
	searchMax    = 7
	// spokenOffers caps how many offers the summary reads out; the full
	// result set is still persisted for booking.
	spokenOffers = 2
)

// SearchHandler serves the flight-search step: it validates slots, asks
// the provider for offers, speaks a summary of the first options and
// persists the whole offer list for a later booking.
type SearchHandler struct {
	Flights  flights.Provider
	Sessions sessionRepo.Repository
	Logger   *zap.Logger
}

func (h *SearchHandler) CanHandle(env *models.RequestEnvelope) bool {
	return env.RequestType() == models.RequestTypeIntent && env.IntentName() == TravelIntent
}

func (h *SearchHandler) Handle(ctx context.Context, env *models.RequestEnvelope) (*models.Response, error) {
	fromCity := env.SlotValue(slotFromCity)
	toCity := env.SlotValue(slotToCity)
	dateOfDeparture := env.SlotValue(slotDateOfDeparture)

	if fromCity == "" || toCity == "" || dateOfDeparture == "" {
		speechText := "I'm sorry, you need an origin, destination, and date of departure to find some flights."
		return models.NewResponseBuilder().
			Speak(speechText).
			WithSimpleCard("Try again", speechText).
			Build(), nil
	}

	// Both cities must resolve before any provider call; an unknown city
	// is a validation failure, not a provider one.
	originCode, ok := flights.AirportCode(fromCity)
	if !ok {
		return unknownCityResponse(fromCity), nil
	}
	destinationCode, ok := flights.AirportCode(toCity)
	if !ok {
		return unknownCityResponse(toCity), nil
	}

	result, err := h.Flights.SearchOffers(ctx, flights.SearchQuery{
		OriginCode:      originCode,
		DestinationCode: destinationCode,
		DepartureDate:   dateOfDeparture,
		Adults:          searchAdults,
		MaxResults:      searchMax,
	})
	if err != nil {
		return nil, fmt.Errorf("flight offers search: %w", err)
	}

	if result.Count == 0 || len(result.Offers) == 0 {
		speechText := "I'm sorry, I can't find any flights at that time."
		return models.NewResponseBuilder().
			Speak(speechText).
			WithSimpleCard("Your travel info", speechText).
			Build(), nil
	}

	speechText := fmt.Sprintf("I've found %d flights. Here are two options. %s",
		result.Count, summarizeOffers(result.Offers))

	// The full, unfiltered offer list replaces the user's session record;
	// the response is only final once the save succeeded.
	record := &models.SessionRecord{Data: result.Offers}
	if err := h.Sessions.Save(ctx, env.UserID(), record); err != nil {
		return nil, fmt.Errorf("save session record: %w", err)
	}

	h.Logger.Info("flight search completed",
		zap.String("origin", originCode),
		zap.String("destination", destinationCode),
		zap.Int("offers", result.Count),
	)

	return models.NewResponseBuilder().
		Speak(speechText).
		WithSimpleCard("Your travel info", speechText).
		Build(), nil
}

func unknownCityResponse(city string) *models.Response {
	speechText := fmt.Sprintf("I'm sorry, I don't know an airport for %s. Please try a different city.", city)
	return models.NewResponseBuilder().
		Speak(speechText).
		WithSimpleCard("Try again", speechText).
		Build()
}

func summarizeOffers(offers []models.Offer) string {
	limit := spokenOffers
	if len(offers) < limit {
		limit = len(offers)
	}

	lines := make([]string, 0, limit)
	for i, offer := range offers[:limit] {
		var sb strings.Builder
		fmt.Fprintf(&sb, "Option number %d", i+1)
		for _, itinerary := range offer.Itineraries {
			for _, segment := range itinerary.Segments {
				fmt.Fprintf(&sb, " takes off from %s and lands at %s, flight time would be %s. ",
					segment.Departure.IataCode,
					segment.Arrival.IataCode,
					flights.FormatDuration(segment.Duration),
				)
			}
		}
		fmt.Fprintf(&sb, "Total cost: %s %s", offer.Price.Currency, offer.Price.Total)
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}
