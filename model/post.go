package model

import (
	"time"
)

/*

Post is the canonical record of a status update a user authored

Id: primary key, use to identify a post
CreatedAt: time when entity is created
UpdatedAt: time when entity is last updated

Content: post's body in plain text, trimmed, 1 to 500 characters
AuthorID, Author: user who wrote the post, "belongs-to" relation
AuthorName: snapshot of the author's display name at post time. Not updated
if the author later renames.

Likes: one row per user who currently likes the post, "has-many" relation
Comments: ordered comment thread, append-only, "has-many" relation

Engagement always mutates this record. Feed entries only snapshot the content
fields and resolve likes/comments through here at read time.

*/

type Post struct {
	Id         string    `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Content    string    `json:"content"`
	AuthorID   string    `gorm:"index" json:"authorId"`
	Author     *User     `json:"-"`
	AuthorName string    `json:"authorName"`
	Likes      []PostLike `gorm:"constraint:OnDelete:CASCADE" json:"likes"`
	Comments   []Comment  `gorm:"constraint:OnDelete:CASCADE" json:"comments"`
}

// LikeUserIds flattens the like rows into the set of user ids the API returns.
func (p *Post) LikeUserIds() []string {
	ids := []string{}
	for _, l := range p.Likes {
		ids = append(ids, l.UserID)
	}
	return ids
}

// IsLikedBy reports whether userId is currently in the post's like set.
func (p *Post) IsLikedBy(userId string) bool {
	for _, l := range p.Likes {
		if l.UserID == userId {
			return true
		}
	}
	return false
}
