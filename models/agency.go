package models

import "time"

// ScheduleDay is one entry of an agency's weekly template. Day holds the
// French weekday name ("lundi" … "dimanche"); Slots are ordered "HH:MM"
// tokens offered when the day is open.
type ScheduleDay struct {
	Day    string   `bson:"day" json:"day"`
	IsOpen bool     `bson:"isOpen" json:"isOpen"`
	Slots  []string `bson:"slots" json:"slots"`
}

// Agency represents one office of the firm, with its own contact details
// and weekly appointment template.
type Agency struct {
	ID           string        `bson:"id" json:"id"`
	Name         string        `bson:"name" json:"name"`
	District     string        `bson:"district" json:"district"`
	City         string        `bson:"city" json:"city"`
	Country      string        `bson:"country" json:"country"`
	Directions   string        `bson:"directions" json:"directions"`
	Phones       []string      `bson:"phones" json:"phones"`
	Emails       []string      `bson:"emails" json:"emails"`
	Schedule     []ScheduleDay `bson:"schedule" json:"schedule"`
	DisplayHours string        `bson:"displayHours" json:"displayHours"`
	IsMainOffice bool          `bson:"isMainOffice" json:"isMainOffice"`
	IsActive     bool          `bson:"isActive" json:"isActive"`
	Order        int           `bson:"order" json:"order"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}
