package flights

// airportCodes maps spoken city names to provider location codes. Lookup
// is an exact match on the table keys; no case folding or trimming is
// applied, so interaction-model city values must match these keys.
var airportCodes = map[string]string{
	"London":   "LON",
	"Belfast":  "BFS",
	"Paris":    "PAR",
	"New York": "NYC",
	"Chicago":  "ORD",
}

// AirportCode resolves a city name to its location code. ok is false for
// unrecognized cities; callers must treat that as "no matching code".
func AirportCode(city string) (code string, ok bool) {
	code, ok = airportCodes[city]
	return code, ok
}
