package flights_test

import (
	"testing"

	"github.com/krharsh17/alexa-flight-booking/services/flights"

	"github.com/stretchr/testify/require"
)

func TestAirportCode(t *testing.T) {
	code, ok := flights.AirportCode("London")
	require.True(t, ok)
	require.Equal(t, "LON", code)

	code, ok = flights.AirportCode("New York")
	require.True(t, ok)
	require.Equal(t, "NYC", code)

	// Lookup is an exact match on table keys.
	_, ok = flights.AirportCode("london")
	require.False(t, ok)

	_, ok = flights.AirportCode("Atlantis")
	require.False(t, ok)
}
