package model

import "time"

// Testimonial is a marketing quote shown on the public site.
type Testimonial struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Position  string    `json:"position" bson:"position"`
	Content   string    `json:"content" bson:"content"`
	ImageURL  string    `json:"image_url" bson:"image_url"`
	Rating    int       `json:"rating" bson:"rating"`
	IsActive  bool      `json:"is_active" bson:"is_active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Partner is a partner organization listed on the public site.
type Partner struct {
	ID         string `json:"id" bson:"id"`
	Name       string `json:"name" bson:"name"`
	Country    string `json:"country" bson:"country"`
	LogoURL    string `json:"logo_url" bson:"logo_url"`
	WebsiteURL string `json:"website_url,omitempty" bson:"website_url,omitempty"`
	IsActive   bool   `json:"is_active" bson:"is_active"`
}

// BlogPost is a public blog entry.
type BlogPost struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Content     string    `json:"content" bson:"content"`
	Excerpt     string    `json:"excerpt" bson:"excerpt"`
	Author      string    `json:"author" bson:"author"`
	ImageURL    string    `json:"image_url" bson:"image_url"`
	Tags        []string  `json:"tags" bson:"tags"`
	PublishedAt time.Time `json:"published_at" bson:"published_at"`
	IsPublished bool      `json:"is_published" bson:"is_published"`
}
