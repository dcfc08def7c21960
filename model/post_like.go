package model

import (
	"time"
)

/*

PostLike marks that a user currently likes a post

PostID: the liked post
UserID: the liking user
CreatedAt: time when relation is created

The composite primary key gives the like list set semantics: a user appears at
most once per post. Toggling a like inserts or deletes this row.

*/

type PostLike struct {
	PostID    string `gorm:"primaryKey" json:"postId"`
	UserID    string `gorm:"primaryKey" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
