// feed implements the social feed core: write-time fan-out of posts into
// per-recipient feed entries, engagement against the canonical post, and the
// join-at-read feed query.
package feed

import (
	"strings"
	"time"
	"unicode/utf8"

	"bookmates/model"
	"bookmates/userdir"
	. "bookmates/utils/log"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// MaxPostContentLength bounds post content. Comment content is deliberately
// not bounded, see Engagement.AddComment.
const MaxPostContentLength = 500

// Distributor creates and deletes posts and owns the fan-out of feed entries.
type Distributor struct {
	DB    *gorm.DB
	Users *userdir.Directory
}

func NewDistributor(db *gorm.DB, users *userdir.Directory) *Distributor {
	return &Distributor{DB: db, Users: users}
}

// CreatePost persists one canonical post and fans out one feed entry to the
// author plus one per current friend. Friends added afterwards do not receive
// entries for this post. A failure mid fan-out is not rolled back: entries
// written so far stay valid, recipients with missing entries simply never see
// the post.
func (d *Distributor) CreatePost(authorId string, content string) (*model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.Wrap(model.ErrValidation, "post content must not be empty")
	}
	if utf8.RuneCountInString(content) > MaxPostContentLength {
		return nil, errors.Wrapf(model.ErrValidation, "post content exceeds %d characters", MaxPostContentLength)
	}

	author, err := d.Users.GetUser(authorId)
	if err != nil {
		return nil, err
	}
	friendIds, err := d.Users.FriendIds(authorId)
	if err != nil {
		return nil, err
	}

	post := model.Post{
		Id:         uuid.New().String(),
		CreatedAt:  time.Now(),
		Content:    content,
		AuthorID:   author.Id,
		AuthorName: author.DisplayName(),
		Likes:      []model.PostLike{},
		Comments:   []model.Comment{},
	}
	if err := d.DB.Create(&post).Error; err != nil {
		return nil, errors.Wrap(err, "fail to create post")
	}

	// Author sees their own posts, so fan out to self as well.
	recipients := append([]string{author.Id}, friendIds...)
	entries := make([]model.FeedEntry, 0, len(recipients))
	for _, recipientId := range recipients {
		entries = append(entries, model.FeedEntry{
			Id:               uuid.New().String(),
			PostID:           post.Id,
			RecipientUserID:  recipientId,
			Content:          post.Content,
			AuthorID:         post.AuthorID,
			AuthorName:       post.AuthorName,
			OriginalAuthorID: post.AuthorID,
			CreatedAt:        post.CreatedAt,
		})
	}
	if err := d.DB.Create(&entries).Error; err != nil {
		Log.Error("partial fan-out for post ", post.Id, ": ", err)
		return nil, errors.Wrap(err, "fail to fan out feed entries")
	}

	Log.Info("post ", post.Id, " fanned out to ", len(entries), " feeds")
	return &post, nil
}

// DeletePost removes the canonical post and then all feed entries referencing
// it. Only the author may delete. The two deletes are not transactional; a
// crash in between leaves orphaned entries which the reader skips.
func (d *Distributor) DeletePost(postId string, requesterId string) error {
	var post model.Post
	res := d.DB.Where("id = ?", postId).First(&post)
	if res.RowsAffected != 1 {
		return errors.Wrap(model.ErrNotFound, "invalid post id "+postId)
	}
	if post.AuthorID != requesterId {
		return errors.Wrap(model.ErrForbidden, "only the author may delete a post")
	}

	if err := d.DB.Select("Likes", "Comments").Delete(&post).Error; err != nil {
		return errors.Wrap(err, "fail to delete post")
	}
	if err := d.DB.Where("post_id = ?", postId).Delete(&model.FeedEntry{}).Error; err != nil {
		return errors.Wrap(err, "fail to delete feed entries")
	}

	Log.Info("post ", postId, " deleted with its feed entries")
	return nil
}
