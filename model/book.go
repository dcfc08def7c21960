package model

import (
	"time"

	"gorm.io/datatypes"
)

// Reading status of a book on a user's shelf.
const (
	BookStatusWantToRead       = "want_to_read"
	BookStatusCurrentlyReading = "currently_reading"
	BookStatusFinished         = "finished"
)

// ValidBookStatus reports whether s is one of the three shelf statuses.
func ValidBookStatus(s string) bool {
	return s == BookStatusWantToRead || s == BookStatusCurrentlyReading || s == BookStatusFinished
}

/*

Book is one entry on a user's personal shelf

Id: primary key, use to identify a shelf entry
CreatedAt: time when entity is created
UpdatedAt: time when entity is last updated
UserID: owning user, shelf entries are private to their owner

Title, Author, CoverURL: descriptive fields, usually filled from a metadata
lookup but freely editable
Status: one of want_to_read / currently_reading / finished
Rating: 1-5 stars, only meaningful once the book is finished, 0 means unrated
Review: free-form text review
PagesTotal, PagesRead: reading progress, PagesRead is clamped to PagesTotal
ExternalID: identifier of the book in the metadata provider, if looked up
Metadata: raw provider payload kept verbatim for the detail page

*/

type Book struct {
	Id         string         `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	UserID     string         `gorm:"index" json:"userId"`
	Title      string         `json:"title"`
	Author     string         `json:"author"`
	CoverURL   string         `json:"coverUrl"`
	Status     string         `json:"status"`
	Rating     int            `json:"rating"`
	Review     string         `json:"review"`
	PagesTotal int            `json:"pagesTotal"`
	PagesRead  int            `json:"pagesRead"`
	ExternalID string         `json:"externalId"`
	Metadata   datatypes.JSON `json:"metadata,omitempty"`
}
