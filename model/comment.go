package model

import (
	"time"
)

/*

Comment is one entry in a post's comment thread

Id: primary key, use to identify a comment
PostID: the post this comment belongs to, "belongs-to" relation
Content: comment body in plain text. Unlike post content this is not length
validated, matching the behavior of the original product surface.
AuthorID: commenting user
AuthorName: snapshot of the commenter's display name at comment time
CreatedAt: time when entity is created

Comments are append-only from the API surface, there is no edit or delete.

*/

type Comment struct {
	Id         string    `gorm:"primaryKey" json:"id"`
	PostID     string    `gorm:"index" json:"postId"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}
