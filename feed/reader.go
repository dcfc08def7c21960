package feed

import (
	"time"

	"bookmates/model"
	. "bookmates/utils/log"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// DefaultFeedLimit is the fixed page size of a feed read. No cursor or offset
// pagination is exposed.
const DefaultFeedLimit = 20

// EnrichedEntry is one item of a feed read: the fan-out snapshot joined with
// the canonical post's live likes and comments.
type EnrichedEntry struct {
	Id         string          `json:"id"`
	PostID     string          `json:"postId"`
	Content    string          `json:"content"`
	AuthorID   string          `json:"authorId"`
	AuthorName string          `json:"authorName"`
	Likes      []string        `json:"likes"`
	Comments   []model.Comment `json:"comments"`
	CreatedAt  time.Time       `json:"createdAt"`
	IsRead     bool            `json:"isRead"`
}

// Reader serves per-recipient feed queries.
type Reader struct {
	DB *gorm.DB
	// ReadStatus annotates entries with per-user read flags. Optional; a nil
	// store means every entry reads as unread.
	ReadStatus *ReadStatusStore
}

func NewReader(db *gorm.DB, readStatus *ReadStatusStore) *Reader {
	return &Reader{DB: db, ReadStatus: readStatus}
}

// GetFeed returns the recipient's feed entries, most recent first, capped at
// limit (DefaultFeedLimit when <= 0). Each entry is joined back to its
// canonical post for current likes/comments. Entries whose post is gone
// (orphans of a half-finished delete) are dropped, not surfaced as errors.
func (r *Reader) GetFeed(recipientUserId string, limit int) ([]*EnrichedEntry, error) {
	if limit <= 0 || limit > DefaultFeedLimit {
		limit = DefaultFeedLimit
	}

	var rows []model.FeedEntry
	res := r.DB.Where("recipient_user_id = ?", recipientUserId).
		Order("created_at desc").
		Limit(limit).
		Find(&rows)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "fail to query feed entries")
	}

	entries := []*EnrichedEntry{}
	for idx := range rows {
		row := rows[idx]

		var post model.Post
		queryResult := r.DB.Where("id = ?", row.PostID).
			Preload("Likes").
			Preload("Comments", func(db *gorm.DB) *gorm.DB {
				return db.Order("comments.created_at asc")
			}).
			First(&post)
		if queryResult.RowsAffected != 1 {
			// Orphaned entry, its post was deleted under us. Skip.
			Log.Info("skip orphaned feed entry ", row.Id, " for missing post ", row.PostID)
			continue
		}

		comments := post.Comments
		if comments == nil {
			comments = []model.Comment{}
		}
		entries = append(entries, &EnrichedEntry{
			Id:         row.Id,
			PostID:     row.PostID,
			Content:    row.Content,
			AuthorID:   row.AuthorID,
			AuthorName: row.AuthorName,
			Likes:      post.LikeUserIds(),
			Comments:   comments,
			CreatedAt:  row.CreatedAt,
		})
	}

	r.annotateReadStatus(recipientUserId, entries)
	return entries, nil
}

// annotateReadStatus fills in IsRead from the redis store. Redis being down
// degrades to all-unread instead of failing the feed read.
func (r *Reader) annotateReadStatus(userId string, entries []*EnrichedEntry) {
	if r.ReadStatus == nil || len(entries) == 0 {
		return
	}
	ids := []string{}
	for _, e := range entries {
		ids = append(ids, e.Id)
	}
	status, err := r.ReadStatus.GetItemsReadStatus(ids, userId)
	if err != nil || len(status) != len(entries) {
		Log.Error("fail to read feed read-status, defaulting to unread: ", err)
		return
	}
	for i := range entries {
		entries[i].IsRead = status[i]
	}
}
