package feed

import (
	"fmt"
	"testing"

	"bookmates/model"
	"bookmates/utils"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGetFeedOrderingAndLimit(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	d := newDistributor(db)
	r := NewReader(db, nil)

	author := utils.TestCreateUserAndValidate(t, db, "a@example.com", "alice")

	const total = DefaultFeedLimit + 5
	var lastPostId string
	for i := 0; i < total; i++ {
		post, err := d.CreatePost(author.Id, fmt.Sprintf("post %d", i))
		require.NoError(t, err)
		lastPostId = post.Id
	}

	entries, err := r.GetFeed(author.Id, 0)
	require.NoError(t, err)
	require.Equal(t, DefaultFeedLimit, len(entries))

	// Most recent first.
	require.Equal(t, lastPostId, entries[0].PostID)
	for i := 1; i < len(entries); i++ {
		require.False(t, entries[i].CreatedAt.After(entries[i-1].CreatedAt))
	}

	// Requests above the cap are clamped back down.
	entries, err = r.GetFeed(author.Id, 1000)
	require.NoError(t, err)
	require.Equal(t, DefaultFeedLimit, len(entries))

	entries, err = r.GetFeed(author.Id, 3)
	require.NoError(t, err)
	require.Equal(t, 3, len(entries))
}

func TestGetFeedEngagementVisibleToAllRecipients(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	d := newDistributor(db)
	e := newEngagement(db)
	r := NewReader(db, nil)

	author := utils.TestCreateUserAndValidate(t, db, "a@example.com", "alice")
	b := utils.TestCreateUserAndValidate(t, db, "b@example.com", "bob")
	c := utils.TestCreateUserAndValidate(t, db, "c@example.com", "carol")
	utils.TestAddFriendAndValidate(t, db, author, b)
	utils.TestAddFriendAndValidate(t, db, author, c)

	post, err := d.CreatePost(author.Id, "Just finished Dune!")
	require.NoError(t, err)

	// B likes, B comments. Every recipient's feed must reflect it because
	// reads resolve through the one canonical post.
	_, err = e.ToggleLike(post.Id, b.Id)
	require.NoError(t, err)
	_, err = e.AddComment(post.Id, b.Id, "great book")
	require.NoError(t, err)

	for _, recipient := range []string{author.Id, b.Id, c.Id} {
		entries, err := r.GetFeed(recipient, 0)
		require.NoError(t, err)
		require.Equal(t, 1, len(entries))
		require.Equal(t, post.Id, entries[0].PostID)
		require.Equal(t, []string{b.Id}, entries[0].Likes)
		require.Equal(t, 1, len(entries[0].Comments))
		require.Equal(t, "great book", entries[0].Comments[0].Content)
	}

	// Apart from the per-recipient entry id, every recipient sees the exact
	// same enriched view.
	bFeed, err := r.GetFeed(b.Id, 0)
	require.NoError(t, err)
	cFeed, err := r.GetFeed(c.Id, 0)
	require.NoError(t, err)
	if diff := cmp.Diff(bFeed, cFeed, cmpopts.IgnoreFields(EnrichedEntry{}, "Id")); diff != "" {
		t.Errorf("recipients disagree on enriched feed content (-b +c):\n%s", diff)
	}
}

func TestGetFeedSkipsOrphanedEntries(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	d := newDistributor(db)
	r := NewReader(db, nil)

	author := utils.TestCreateUserAndValidate(t, db, "a@example.com", "alice")
	post, err := d.CreatePost(author.Id, "survivor")
	require.NoError(t, err)

	// Simulate a crash between the two delete phases: an entry pointing at a
	// post that no longer exists.
	orphan := model.FeedEntry{
		Id:              uuid.New().String(),
		PostID:          uuid.New().String(),
		RecipientUserID: author.Id,
		Content:         "ghost",
		AuthorID:        author.Id,
		AuthorName:      "alice",
	}
	require.NoError(t, db.Create(&orphan).Error)

	entries, err := r.GetFeed(author.Id, 0)
	require.NoError(t, err)
	require.Equal(t, 1, len(entries))
	require.Equal(t, post.Id, entries[0].PostID)
}

func TestGetFeedEmpty(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	r := NewReader(db, nil)

	user := utils.TestCreateUserAndValidate(t, db, "a@example.com", "alice")
	entries, err := r.GetFeed(user.Id, 0)
	require.NoError(t, err)
	require.Equal(t, 0, len(entries))
}
