package models

import "time"

// SocialLinks groups the site's social profiles shown in the footer.
type SocialLinks struct {
	LinkedIn  string `bson:"linkedin" json:"linkedin"`
	Facebook  string `bson:"facebook" json:"facebook"`
	Instagram string `bson:"instagram" json:"instagram"`
	WhatsApp  string `bson:"whatsapp" json:"whatsapp"`
	YouTube   string `bson:"youtube" json:"youtube"`
	Twitter   string `bson:"twitter" json:"twitter"`
}

// ContactInfo is a singleton document. GlobalEmails is the site-wide
// notification list used when an agency has no contact emails of its own.
type ContactInfo struct {
	ID           string      `bson:"id" json:"id"`
	GlobalEmails []string    `bson:"globalEmails" json:"globalEmails"`
	SocialLinks  SocialLinks `bson:"socialLinks" json:"socialLinks"`
	UpdatedAt    time.Time   `bson:"updatedAt" json:"updatedAt"`
}
