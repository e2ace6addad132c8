package skill_test

import (
	"context"

	travelerRepo "github.com/krharsh17/alexa-flight-booking/database/repository/traveler"
	"github.com/krharsh17/alexa-flight-booking/models"
	"github.com/krharsh17/alexa-flight-booking/services/flights"
)

// ---------- Stubs ----------

type stubProvider struct {
	searchResult *flights.SearchResult
	searchErr    error
	searchCalls  int
	lastQuery    flights.SearchQuery

	order      *flights.FlightOrder
	orderErr   error
	orderCalls int
	lastOrder  flights.OrderRequest
}

func (s *stubProvider) SearchOffers(_ context.Context, query flights.SearchQuery) (*flights.SearchResult, error) {
	s.searchCalls++
	s.lastQuery = query
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.searchResult, nil
}

func (s *stubProvider) CreateOrder(_ context.Context, req flights.OrderRequest) (*flights.FlightOrder, error) {
	s.orderCalls++
	s.lastOrder = req
	if s.orderErr != nil {
		return nil, s.orderErr
	}
	return s.order, nil
}

type stubSessions struct {
	records   map[string]*models.SessionRecord
	loadErr   error
	saveErr   error
	saveCalls int
}

func newStubSessions() *stubSessions {
	return &stubSessions{records: make(map[string]*models.SessionRecord)}
}

func (s *stubSessions) Load(_ context.Context, userID string) (*models.SessionRecord, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if rec, ok := s.records[userID]; ok {
		return rec, nil
	}
	return &models.SessionRecord{UserID: userID}, nil
}

func (s *stubSessions) Save(_ context.Context, userID string, rec *models.SessionRecord) error {
	s.saveCalls++
	if s.saveErr != nil {
		return s.saveErr
	}
	rec.UserID = userID
	s.records[userID] = rec
	return nil
}

type stubTravelers struct {
	profiles map[string]*models.TravelerProfile
	err      error
}

func newStubTravelers() *stubTravelers {
	return &stubTravelers{profiles: make(map[string]*models.TravelerProfile)}
}

func (s *stubTravelers) GetByUserID(_ context.Context, userID string) (*models.TravelerProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	if profile, ok := s.profiles[userID]; ok {
		return profile, nil
	}
	return nil, travelerRepo.ErrNotFound
}

func (s *stubTravelers) Upsert(_ context.Context, userID string, profile *models.TravelerProfile) error {
	s.profiles[userID] = profile
	return nil
}

// ---------- Fixtures ----------

const testUserID = "amzn1.ask.account.test-user"

func intentEnvelope(intentName string, slots map[string]string) *models.RequestEnvelope {
	slotMap := make(map[string]models.Slot, len(slots))
	for name, value := range slots {
		slotMap[name] = models.Slot{Name: name, Value: value}
	}
	return &models.RequestEnvelope{
		Version: "1.0",
		Session: &models.Session{
			SessionID: "session-1",
			User:      models.User{UserID: testUserID},
		},
		Request: models.Request{
			Type:   models.RequestTypeIntent,
			Intent: &models.Intent{Name: intentName, Slots: slotMap},
		},
	}
}

func makeOffer(id, from, to, duration, currency, total string) models.Offer {
	return models.Offer{
		ID: id,
		Itineraries: []models.Itinerary{{
			Segments: []models.Segment{{
				Departure: models.SegmentPoint{IataCode: from},
				Arrival:   models.SegmentPoint{IataCode: to},
				Duration:  duration,
			}},
		}},
		Price: models.Price{Currency: currency, Total: total},
	}
}
