// userdir is the user directory: identity lookup, onboarding and the
// symmetric friend list every other service reads through.
package userdir

import (
	"time"

	"bookmates/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Directory struct {
	DB *gorm.DB
}

func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{DB: db}
}

// GetUser fetches a user by id.
func (d *Directory) GetUser(id string) (*model.User, error) {
	var user model.User
	res := d.DB.Where("id = ?", id).First(&user)
	if res.RowsAffected != 1 {
		return nil, errors.Wrap(model.ErrNotFound, "invalid user id "+id)
	}
	return &user, nil
}

// GetUserByEmail fetches a user by sign-in email.
func (d *Directory) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	res := d.DB.Where("email = ?", email).First(&user)
	if res.RowsAffected != 1 {
		return nil, errors.Wrap(model.ErrNotFound, "no user with email "+email)
	}
	return &user, nil
}

// CreateUser registers a new user at sign-up. The display name stays empty
// until the user onboards.
func (d *Directory) CreateUser(email string, passwordHash string, fullName string) (*model.User, error) {
	var existing model.User
	if d.DB.Where("email = ?", email).First(&existing).RowsAffected != 0 {
		return nil, errors.Wrap(model.ErrConflict, "email already registered")
	}

	user := model.User{
		Id:           uuid.New().String(),
		CreatedAt:    time.Now(),
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Friends:      []*model.User{},
	}
	if err := d.DB.Create(&user).Error; err != nil {
		return nil, errors.Wrap(err, "fail to create user")
	}
	return &user, nil
}

// Onboard sets the user's unique public display name.
func (d *Directory) Onboard(userId string, name string) (*model.User, error) {
	if name == "" {
		return nil, errors.Wrap(model.ErrValidation, "display name must not be empty")
	}

	var taken model.User
	if d.DB.Where("name = ? AND id != ?", name, userId).First(&taken).RowsAffected != 0 {
		return nil, errors.Wrap(model.ErrConflict, "display name already taken")
	}

	user, err := d.GetUser(userId)
	if err != nil {
		return nil, err
	}
	user.Name = name
	if err := d.DB.Save(user).Error; err != nil {
		return nil, errors.Wrap(err, "fail to update user")
	}
	return user, nil
}

// SearchUsers returns onboarded users whose display name starts with the
// query, capped to limit.
func (d *Directory) SearchUsers(query string, limit int) ([]*model.User, error) {
	var users []*model.User
	res := d.DB.Where("name != '' AND name LIKE ?", query+"%").
		Order("name asc").
		Limit(limit).
		Find(&users)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "fail to search users")
	}
	return users, nil
}

// Friends returns the hydrated friend list of a user.
func (d *Directory) Friends(userId string) ([]*model.User, error) {
	var user model.User
	res := d.DB.Where("id = ?", userId).Preload("Friends").First(&user)
	if res.RowsAffected != 1 {
		return nil, errors.Wrap(model.ErrNotFound, "invalid user id "+userId)
	}
	if user.Friends == nil {
		user.Friends = []*model.User{}
	}
	return user.Friends, nil
}

// FriendIds returns just the ids of a user's friends. The feed distributor
// uses this to compute the fan-out recipient set.
func (d *Directory) FriendIds(userId string) ([]string, error) {
	friends, err := d.Friends(userId)
	if err != nil {
		return nil, err
	}
	ids := []string{}
	for _, f := range friends {
		ids = append(ids, f.Id)
	}
	return ids, nil
}

func (d *Directory) areFriends(selfId string, targetId string) bool {
	var edge model.UserFriend
	return d.DB.Where("user_id = ? AND friend_id = ?", selfId, targetId).
		First(&edge).RowsAffected != 0
}

// AddFriend creates the symmetric friendship between self and target. Both
// directions are written sequentially without a transaction; a crash in
// between leaves a one-way edge until retried.
func (d *Directory) AddFriend(selfId string, targetId string) error {
	if selfId == targetId {
		return errors.Wrap(model.ErrValidation, "cannot befriend yourself")
	}

	self, err := d.GetUser(selfId)
	if err != nil {
		return err
	}
	target, err := d.GetUser(targetId)
	if err != nil {
		return err
	}

	if d.areFriends(selfId, targetId) {
		return errors.Wrap(model.ErrConflict, "already friends")
	}

	if err := d.DB.Model(self).Association("Friends").Append(target); err != nil {
		return errors.Wrap(err, "fail to add friend edge")
	}
	if err := d.DB.Model(target).Association("Friends").Append(self); err != nil {
		return errors.Wrap(err, "fail to add reverse friend edge")
	}
	return nil
}

// RemoveFriend deletes both directions of the friendship. Removing an absent
// friendship silently succeeds, which also heals one-way edges left by a
// partial AddFriend.
func (d *Directory) RemoveFriend(selfId string, targetId string) error {
	self, err := d.GetUser(selfId)
	if err != nil {
		return err
	}
	target, err := d.GetUser(targetId)
	if err != nil {
		return err
	}

	if err := d.DB.Model(self).Association("Friends").Delete(target); err != nil {
		return errors.Wrap(err, "fail to remove friend edge")
	}
	if err := d.DB.Model(target).Association("Friends").Delete(self); err != nil {
		return errors.Wrap(err, "fail to remove reverse friend edge")
	}
	return nil
}
