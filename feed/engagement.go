package feed

import (
	"time"

	"bookmates/model"
	"bookmates/userdir"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Engagement mutates likes and comments on the canonical post. Feed entries
// are never touched: because every recipient's feed resolves engagement
// through the one canonical record, a single write here is visible to all of
// them on their next read.
type Engagement struct {
	DB    *gorm.DB
	Users *userdir.Directory
}

func NewEngagement(db *gorm.DB, users *userdir.Directory) *Engagement {
	return &Engagement{DB: db, Users: users}
}

// LikeResult is the mutation response for a like toggle.
type LikeResult struct {
	Likes   []string `json:"likes"`
	IsLiked bool     `json:"isLiked"`
}

// ToggleLike adds userId to the post's like set, or removes it if already
// present. Calling twice restores the original state.
func (e *Engagement) ToggleLike(postId string, userId string) (*LikeResult, error) {
	var post model.Post
	res := e.DB.Where("id = ?", postId).Preload("Likes").First(&post)
	if res.RowsAffected != 1 {
		return nil, errors.Wrap(model.ErrNotFound, "invalid post id "+postId)
	}

	if post.IsLikedBy(userId) {
		if err := e.DB.Where("post_id = ? AND user_id = ?", postId, userId).
			Delete(&model.PostLike{}).Error; err != nil {
			return nil, errors.Wrap(err, "fail to remove like")
		}
	} else {
		like := model.PostLike{PostID: postId, UserID: userId, CreatedAt: time.Now()}
		if err := e.DB.Create(&like).Error; err != nil {
			return nil, errors.Wrap(err, "fail to add like")
		}
	}

	// Re-read so the response reflects exactly what was persisted.
	if err := e.DB.Where("id = ?", postId).Preload("Likes").First(&post).Error; err != nil {
		return nil, errors.Wrap(err, "fail to reload post")
	}
	return &LikeResult{
		Likes:   post.LikeUserIds(),
		IsLiked: post.IsLikedBy(userId),
	}, nil
}

// AddComment appends a comment to the post's thread and returns the full
// updated list. The commenter's display name is snapshotted with the usual
// username -> full name -> "Anonymous" fallback. Comment content is not
// length validated; only post content is. That asymmetry matches the original
// product behavior and is kept on purpose.
func (e *Engagement) AddComment(postId string, authorId string, content string) ([]model.Comment, error) {
	var post model.Post
	res := e.DB.Where("id = ?", postId).First(&post)
	if res.RowsAffected != 1 {
		return nil, errors.Wrap(model.ErrNotFound, "invalid post id "+postId)
	}

	author, err := e.Users.GetUser(authorId)
	if err != nil {
		return nil, err
	}

	comment := model.Comment{
		Id:         uuid.New().String(),
		PostID:     postId,
		Content:    content,
		AuthorID:   author.Id,
		AuthorName: author.DisplayName(),
		CreatedAt:  time.Now(),
	}
	if err := e.DB.Create(&comment).Error; err != nil {
		return nil, errors.Wrap(err, "fail to create comment")
	}

	var comments []model.Comment
	if err := e.DB.Where("post_id = ?", postId).
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		return nil, errors.Wrap(err, "fail to load comments")
	}
	return comments, nil
}
