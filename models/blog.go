package models

import "time"

// Blog post statuses.
const (
	BlogDraft     = "draft"
	BlogPublished = "published"
)

// BlogPost is an article on the public site. PublishedAt is stamped the
// first time the post transitions to published.
type BlogPost struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Slug        string     `bson:"slug" json:"slug"`
	Excerpt     string     `bson:"excerpt" json:"excerpt"`
	Content     string     `bson:"content" json:"content"`
	Category    string     `bson:"category" json:"category"`
	Author      string     `bson:"author" json:"author"`
	CoverImage  string     `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	ReadTime    string     `bson:"readTime" json:"readTime"`
	Status      string     `bson:"status" json:"status"`
	PublishedAt *time.Time `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}
