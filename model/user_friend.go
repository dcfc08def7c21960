package model

import (
	"time"
)

/*

UserFriend is one direction of the symmetric friendship between two users

UserID: the user whose friend list this row belongs to
FriendID: the befriended user
CreatedAt: time when relation is created

A friendship is stored as two rows, (A, B) and (B, A), written sequentially
without a transaction. A partial failure can leave a one-way edge; the remove
operation is idempotent so a retry converges.

*/

type UserFriend struct {
	UserID    string `gorm:"primaryKey"`
	FriendID  string `gorm:"primaryKey"`
	CreatedAt time.Time
}
