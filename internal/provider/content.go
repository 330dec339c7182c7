package provider

import "time"

// Page is the readable content extracted from a web page.
type Page struct {
	Title    string
	Text     string
	ImageURL string
}

// FeedItem is a single feed entry with a link to the full article.
type FeedItem struct {
	Title       string
	Link        string
	Description string
	ImageURL    string
	Published   *time.Time
}
