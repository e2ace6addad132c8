package flights_test

import (
	"testing"

	"github.com/krharsh17/alexa-flight-booking/services/flights"

	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		name  string
		token string
		want  string
	}{
		{"hours and minutes", "PT2H30M", "2 hours and 30 minutes"},
		{"hours only", "PT1H", "1 hour"},
		{"minutes only", "PT45M", "45 minutes"},
		{"single minute", "PT1H1M", "1 hour and 1 minute"},
		{"zero duration", "PT0H0M", ""},
		{"bare prefix", "PT", ""},
		{"empty input", "", ""},
		{"malformed input", "two hours", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, flights.FormatDuration(tc.token))
		})
	}
}
