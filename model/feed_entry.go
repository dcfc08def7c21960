package model

import (
	"time"
)

/*

FeedEntry is a denormalized copy of a post placed in one recipient's feed

Id: primary key, use to identify a feed entry
PostID: the canonical post this entry points at
RecipientUserID: whose feed this row appears in, indexed for feed reads

Content, AuthorID, AuthorName, OriginalAuthorID: snapshot of the post at
fan-out time. Never re-synced. Likes and comments are deliberately not copied
here; reads resolve them through the canonical post so one like is visible to
every recipient.

CreatedAt: time of the fan-out write, used for feed ordering

Entries are created in bulk when a post is distributed and deleted in bulk
when the post is deleted. They are never individually mutated. An entry whose
post no longer exists (delete raced a read) is skipped by the reader.

*/

type FeedEntry struct {
	Id               string    `gorm:"primaryKey" json:"id"`
	PostID           string    `gorm:"index" json:"postId"`
	RecipientUserID  string    `gorm:"index" json:"recipientUserId"`
	Content          string    `json:"content"`
	AuthorID         string    `json:"authorId"`
	AuthorName       string    `json:"authorName"`
	OriginalAuthorID string    `json:"originalAuthorId"`
	CreatedAt        time.Time `json:"createdAt"`
}
