package skill

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	sessionRepo "github.com/krharsh17/alexa-flight-booking/database/repository/session"
	travelerRepo "github.com/krharsh17/alexa-flight-booking/database/repository/traveler"
	"github.com/krharsh17/alexa-flight-booking/models"
	"github.com/krharsh17/alexa-flight-booking/services/flights"

	"go.uber.org/zap"
)

// BookingIntent is the intent name for booking a previously found offer.
const BookingIntent = "BookingIntent"

// BookingHandler books one of the offers persisted by the last search.
// The selection slot is the option number announced by the search summary,
// so it is 1-based and bounds-checked against the stored offer list.
type BookingHandler struct {
	Flights   flights.Provider
	Sessions  sessionRepo.Repository
	Travelers travelerRepo.Repository
	Logger    *zap.Logger
}

func (h *BookingHandler) CanHandle(env *models.RequestEnvelope) bool {
	return env.RequestType() == models.RequestTypeIntent && env.IntentName() == BookingIntent
}

func (h *BookingHandler) Handle(ctx context.Context, env *models.RequestEnvelope) (*models.Response, error) {
	selection := env.SlotValue(slotSelection)
	if selection == "" {
		speechText := "Sorry, you need to pick an option."
		return models.NewResponseBuilder().
			Speak(speechText).
			WithSimpleCard("Sorry. Couldn't book.", speechText).
			Build(), nil
	}

	record, err := h.Sessions.Load(ctx, env.UserID())
	if err != nil {
		return nil, fmt.Errorf("load session record: %w", err)
	}
	if !record.HasOffers() {
		speechText := "I'm sorry, I don't have a flight ready to book for you."
		return models.NewResponseBuilder().
			Speak(speechText).
			WithSimpleCard("Sorry. Couldn't book.", speechText).
			Build(), nil
	}

	option, err := strconv.Atoi(selection)
	if err != nil || option < 1 || option > len(record.Data) {
		speechText := fmt.Sprintf("Sorry, that isn't one of the options I found. Please pick a number between 1 and %d.", len(record.Data))
		return models.NewResponseBuilder().
			Speak(speechText).
			WithSimpleCard("Sorry. Couldn't book.", speechText).
			Build(), nil
	}
	offer := record.Data[option-1]

	traveler, err := h.Travelers.GetByUserID(ctx, env.UserID())
	if errors.Is(err, travelerRepo.ErrNotFound) {
		speechText := "I need your traveler details before I can book a flight. Please set up your traveler profile first."
		return models.NewResponseBuilder().
			Speak(speechText).
			WithSimpleCard("Traveler profile needed", speechText).
			Build(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load traveler profile: %w", err)
	}

	// Provider failures are recovered here: booking gets its own apology
	// instead of the dispatcher's generic one.
	order, err := h.Flights.CreateOrder(ctx, flights.OrderRequest{
		Offer:    offer,
		Traveler: *traveler,
	})
	if err != nil {
		h.Logger.Error("flight order creation failed",
			zap.String("offerId", offer.ID),
			zap.Error(err),
		)
		speechText := "Sorry, you can't book that flight now. Please try again later."
		return models.NewResponseBuilder().
			Speak(speechText).
			WithSimpleCard("Sorry. Couldn't book.", speechText).
			Build(), nil
	}

	h.Logger.Info("flight order created", zap.String("orderId", order.ID))

	speechText := fmt.Sprintf("All done! Your reference number is %s. Have a good trip!", order.ID)
	return models.NewResponseBuilder().
		Speak(speechText).
		WithSimpleCard(fmt.Sprintf("Booked. Ref: %s", order.ID), speechText).
		Build(), nil
}
