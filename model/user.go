package model

import (
	"time"
)

/*

User is a registered reader of the application

Id: primary key, use to identify a user
CreatedAt: time when entity is created
UpdatedAt: time when entity is last updated

Email: sign-in identity, unique across all users
PasswordHash: bcrypt hash of the user's password, never serialized
Name: public display name picked during onboarding, empty before. Uniqueness
is enforced by a partial unique index over non-empty names, so concurrent
onboards cannot both claim a name even if they race past the application check.
FullName: name provided at sign-up, used as a display fallback

Friends: users this user befriended, "many-to-many" self relation. The edge is
symmetric: adding a friend writes both directions as two independent join rows.

*/

type User struct {
	Id           string    `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `gorm:"index:idx_users_name,unique,where:name <> ''" json:"name"`
	FullName     string    `json:"fullName"`
	Friends      []*User   `gorm:"many2many:user_friends" json:"friends,omitempty"`
}

// DisplayName is the name shown next to posts and comments. Falls back to the
// sign-up full name, then "Anonymous" for users who never onboarded.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.FullName != "" {
		return u.FullName
	}
	return "Anonymous"
}
