package utils

import (
	"testing"
	"time"

	"bookmates/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// create user with email and display name, do sanity checks and returns it
func TestCreateUserAndValidate(t *testing.T, db *gorm.DB, email string, name string) *model.User {
	t.Helper()
	user := model.User{
		Id:           uuid.New().String(),
		CreatedAt:    time.Now(),
		Email:        email,
		PasswordHash: "test-password-hash",
		Name:         name,
		FullName:     "Test " + email,
		Friends:      []*model.User{},
	}
	require.NoError(t, db.Create(&user).Error)
	require.NotEmpty(t, user.Id)

	var got model.User
	require.Equal(t, int64(1), db.Where("id = ?", user.Id).First(&got).RowsAffected)
	require.Equal(t, email, got.Email)
	return &user
}

// create the symmetric friendship between a and b directly in the join
// table, do sanity checks
func TestAddFriendAndValidate(t *testing.T, db *gorm.DB, a *model.User, b *model.User) {
	t.Helper()
	require.NoError(t, db.Create(&model.UserFriend{UserID: a.Id, FriendID: b.Id, CreatedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&model.UserFriend{UserID: b.Id, FriendID: a.Id, CreatedAt: time.Now()}).Error)

	var count int64
	require.NoError(t, db.Model(&model.UserFriend{}).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)", a.Id, b.Id, b.Id, a.Id).
		Count(&count).Error)
	require.Equal(t, int64(2), count)
}

// FeedEntryCount returns the number of feed entries referencing a post.
func FeedEntryCount(t *testing.T, db *gorm.DB, postId string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.FeedEntry{}).Where("post_id = ?", postId).Count(&count).Error)
	return count
}
