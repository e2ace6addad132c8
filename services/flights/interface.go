package flights

import (
	"context"

	"github.com/krharsh17/alexa-flight-booking/models"
)

// SearchQuery describes one flight-offers search.
type SearchQuery struct {
	OriginCode      string
	DestinationCode string
	DepartureDate   string
	Adults          int
	MaxResults      int
}

// SearchResult is the provider's answer: a count plus the ordered offers.
type SearchResult struct {
	Count  int
	Offers []models.Offer
}

// OrderRequest carries the chosen offer and the traveler it is booked for.
type OrderRequest struct {
	Offer    models.Offer
	Traveler models.TravelerProfile
}

// FlightOrder is a confirmed order; ID is the user-facing reference number.
type FlightOrder struct {
	ID string
}

// Provider is the flight-data provider: remote offer search and order
// creation over HTTPS.
type Provider interface {
	SearchOffers(ctx context.Context, query SearchQuery) (*SearchResult, error)
	CreateOrder(ctx context.Context, req OrderRequest) (*FlightOrder, error)
}
