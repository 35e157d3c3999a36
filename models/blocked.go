package models

import "time"

// BlockedDate forces a calendar day fully closed for every agency,
// regardless of the weekly templates. Day is the canonical day string
// ("2006-01-02", UTC); a unique index on it guarantees at most one
// record per calendar day.
type BlockedDate struct {
	ID        string    `bson:"id" json:"id"`
	Date      time.Time `bson:"date" json:"date"`
	Day       string    `bson:"day" json:"day"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
