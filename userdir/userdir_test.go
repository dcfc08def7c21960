package userdir

import (
	"os"
	"testing"
	"time"

	"bookmates/model"
	"bookmates/utils"
	"bookmates/utils/dotenv"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dotenv.LoadDotEnvsInTests()
	os.Exit(m.Run())
}

func createUser(t *testing.T, d *Directory, email string, name string) *model.User {
	t.Helper()
	user, err := d.CreateUser(email, "hash", "Full Name")
	require.NoError(t, err)
	if name != "" {
		user, err = d.Onboard(user.Id, name)
		require.NoError(t, err)
	}
	return user
}

func TestCreateUserAndLookup(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	d := NewDirectory(db)

	user, err := d.CreateUser("alice@example.com", "hash", "Alice Liddell")
	require.NoError(t, err)
	require.NotEmpty(t, user.Id)
	require.Equal(t, "", user.Name)
	require.Equal(t, "Alice Liddell", user.DisplayName())

	got, err := d.GetUser(user.Id)
	require.NoError(t, err)
	require.Equal(t, user.Email, got.Email)

	got, err = d.GetUserByEmail("alice@example.com")
	require.NoError(t, err)
	require.Equal(t, user.Id, got.Id)

	// Duplicate email is rejected.
	_, err = d.CreateUser("alice@example.com", "hash2", "Other")
	require.True(t, errors.Is(err, model.ErrConflict))

	_, err = d.GetUser("no-such-id")
	require.True(t, errors.Is(err, model.ErrNotFound))
}

func TestOnboardUniqueName(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	d := NewDirectory(db)

	a := createUser(t, d, "a@example.com", "alice")
	require.Equal(t, "alice", a.DisplayName())

	b, err := d.CreateUser("b@example.com", "hash", "Bob")
	require.NoError(t, err)

	_, err = d.Onboard(b.Id, "alice")
	require.True(t, errors.Is(err, model.ErrConflict))

	_, err = d.Onboard(b.Id, "")
	require.True(t, errors.Is(err, model.ErrValidation))

	// Re-onboarding with your own current name is not a conflict.
	_, err = d.Onboard(a.Id, "alice")
	require.NoError(t, err)
}

func TestDuplicateNameRejectedByStore(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	d := NewDirectory(db)

	createUser(t, d, "a@example.com", "alice")

	// A write that races past the application pre-check still cannot claim a
	// taken name; the partial unique index rejects it.
	dup := model.User{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		Email:     "b@example.com",
		Name:      "alice",
	}
	require.Error(t, db.Create(&dup).Error)

	// Users who never onboarded all share the empty name without conflict.
	_, err := d.CreateUser("c@example.com", "hash", "Carol")
	require.NoError(t, err)
	_, err = d.CreateUser("d@example.com", "hash", "Dave")
	require.NoError(t, err)
}

func TestSearchUsers(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	d := NewDirectory(db)

	createUser(t, d, "a@example.com", "alice")
	createUser(t, d, "b@example.com", "alina")
	createUser(t, d, "c@example.com", "bob")
	// Never onboarded, must not show up in search.
	_, err := d.CreateUser("d@example.com", "hash", "Hidden")
	require.NoError(t, err)

	users, err := d.SearchUsers("ali", 20)
	require.NoError(t, err)
	require.Equal(t, 2, len(users))
	require.Equal(t, "alice", users[0].Name)
	require.Equal(t, "alina", users[1].Name)

	users, err = d.SearchUsers("zzz", 20)
	require.NoError(t, err)
	require.Equal(t, 0, len(users))
}

func TestAddFriendSymmetric(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	d := NewDirectory(db)

	a := createUser(t, d, "a@example.com", "alice")
	b := createUser(t, d, "b@example.com", "bob")

	require.NoError(t, d.AddFriend(a.Id, b.Id))

	// Both directions exist after a single add.
	aIds, err := d.FriendIds(a.Id)
	require.NoError(t, err)
	require.Equal(t, []string{b.Id}, aIds)
	bIds, err := d.FriendIds(b.Id)
	require.NoError(t, err)
	require.Equal(t, []string{a.Id}, bIds)

	// Duplicate add conflicts, from either side.
	err = d.AddFriend(a.Id, b.Id)
	require.True(t, errors.Is(err, model.ErrConflict))
	err = d.AddFriend(b.Id, a.Id)
	require.True(t, errors.Is(err, model.ErrConflict))
}

func TestAddFriendValidation(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	d := NewDirectory(db)

	a := createUser(t, d, "a@example.com", "alice")

	err := d.AddFriend(a.Id, a.Id)
	require.True(t, errors.Is(err, model.ErrValidation))

	err = d.AddFriend(a.Id, "no-such-user")
	require.True(t, errors.Is(err, model.ErrNotFound))

	err = d.AddFriend("no-such-user", a.Id)
	require.True(t, errors.Is(err, model.ErrNotFound))
}

func TestRemoveFriendIdempotent(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	d := NewDirectory(db)

	a := createUser(t, d, "a@example.com", "alice")
	b := createUser(t, d, "b@example.com", "bob")

	require.NoError(t, d.AddFriend(a.Id, b.Id))
	require.NoError(t, d.RemoveFriend(a.Id, b.Id))

	aIds, err := d.FriendIds(a.Id)
	require.NoError(t, err)
	require.Empty(t, aIds)
	bIds, err := d.FriendIds(b.Id)
	require.NoError(t, err)
	require.Empty(t, bIds)

	// Removing an absent friendship silently succeeds.
	require.NoError(t, d.RemoveFriend(a.Id, b.Id))
}
