package models

// TravelerProfile holds the identity and document details the provider
// requires on an order. Profiles are provisioned per user out-of-band and
// loaded at booking time; field names follow the provider's traveler
// element so the profile can be sent on the order as-is.
type TravelerProfile struct {
	ID          string             `json:"id" bson:"id"`
	DateOfBirth string             `json:"dateOfBirth" bson:"dateOfBirth"`
	Name        TravelerName       `json:"name" bson:"name"`
	Gender      string             `json:"gender" bson:"gender"`
	Contact     TravelerContact    `json:"contact" bson:"contact"`
	Documents   []TravelerDocument `json:"documents" bson:"documents"`
}

type TravelerName struct {
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
}

type TravelerContact struct {
	EmailAddress string          `json:"emailAddress" bson:"emailAddress"`
	Phones       []TravelerPhone `json:"phones" bson:"phones"`
}

type TravelerPhone struct {
	DeviceType         string `json:"deviceType" bson:"deviceType"`
	CountryCallingCode string `json:"countryCallingCode" bson:"countryCallingCode"`
	Number             string `json:"number" bson:"number"`
}

type TravelerDocument struct {
	DocumentType     string `json:"documentType" bson:"documentType"`
	BirthPlace       string `json:"birthPlace,omitempty" bson:"birthPlace,omitempty"`
	IssuanceLocation string `json:"issuanceLocation,omitempty" bson:"issuanceLocation,omitempty"`
	IssuanceDate     string `json:"issuanceDate,omitempty" bson:"issuanceDate,omitempty"`
	Number           string `json:"number" bson:"number"`
	ExpiryDate       string `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`
	IssuanceCountry  string `json:"issuanceCountry,omitempty" bson:"issuanceCountry,omitempty"`
	ValidityCountry  string `json:"validityCountry,omitempty" bson:"validityCountry,omitempty"`
	Nationality      string `json:"nationality,omitempty" bson:"nationality,omitempty"`
	Holder           bool   `json:"holder" bson:"holder"`
}
