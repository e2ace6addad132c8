package models

import "time"

// SessionRecord is the durable per-user state bridging the search and
// booking steps. Each successful search replaces the whole record; records
// are never deleted, only overwritten.
type SessionRecord struct {
	UserID    string    `json:"-" bson:"userId"`
	Data      []Offer   `json:"data,omitempty" bson:"data,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// HasOffers reports whether a prior search left offers to book.
func (r *SessionRecord) HasOffers() bool {
	return r != nil && len(r.Data) > 0
}
