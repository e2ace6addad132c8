package models

import "encoding/json"

// Offer is one priced itinerary combination returned by the flight-data
// provider. Beyond the fields read for the spoken summary the offer is
// opaque: Raw keeps the provider's full payload so order creation can send
// the offer back unchanged.
type Offer struct {
	ID          string          `json:"id" bson:"id"`
	Itineraries []Itinerary     `json:"itineraries" bson:"itineraries"`
	Price       Price           `json:"price" bson:"price"`
	Raw         json.RawMessage `json:"-" bson:"raw,omitempty"`
}

type Itinerary struct {
	Duration string    `json:"duration,omitempty" bson:"duration,omitempty"`
	Segments []Segment `json:"segments" bson:"segments"`
}

type Segment struct {
	Departure SegmentPoint `json:"departure" bson:"departure"`
	Arrival   SegmentPoint `json:"arrival" bson:"arrival"`
	// Duration is an ISO-8601 token such as "PT2H30M".
	Duration string `json:"duration" bson:"duration"`
}

type SegmentPoint struct {
	IataCode string `json:"iataCode" bson:"iataCode"`
	Terminal string `json:"terminal,omitempty" bson:"terminal,omitempty"`
	At       string `json:"at,omitempty" bson:"at,omitempty"`
}

type Price struct {
	Currency string `json:"currency" bson:"currency"`
	Total    string `json:"total" bson:"total"`
}

// ProviderPayload returns the JSON the provider originally sent for this
// offer, falling back to re-marshaling the read fields when the raw
// capture is missing (offers restored from old session records).
func (o Offer) ProviderPayload() (json.RawMessage, error) {
	if len(o.Raw) > 0 {
		return o.Raw, nil
	}
	return json.Marshal(o)
}
