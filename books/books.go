// books manages each user's personal shelf: reading status, progress,
// ratings and reviews. Shelf entries are private to their owner and do not
// participate in the social feed.
package books

import (
	"strings"
	"time"

	"bookmates/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// AddBookInput carries the fields of a new shelf entry. Metadata is the raw
// provider payload when the book came from a lookup.
type AddBookInput struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	CoverURL   string `json:"coverUrl"`
	Status     string `json:"status"`
	PagesTotal int    `json:"pagesTotal"`
	ExternalID string `json:"externalId"`
	Metadata   []byte `json:"metadata"`
}

// UpdateBookInput is a partial update; nil fields are left untouched.
type UpdateBookInput struct {
	Status    *string `json:"status"`
	Rating    *int    `json:"rating"`
	Review    *string `json:"review"`
	PagesRead *int    `json:"pagesRead"`
}

// AddBook creates a shelf entry for the user.
func (s *Service) AddBook(userId string, input AddBookInput) (*model.Book, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.Wrap(model.ErrValidation, "book title must not be empty")
	}
	status := input.Status
	if status == "" {
		status = model.BookStatusWantToRead
	}
	if !model.ValidBookStatus(status) {
		return nil, errors.Wrap(model.ErrValidation, "unknown reading status "+status)
	}
	if input.PagesTotal < 0 {
		return nil, errors.Wrap(model.ErrValidation, "pagesTotal must not be negative")
	}

	book := model.Book{
		Id:         uuid.New().String(),
		CreatedAt:  time.Now(),
		UserID:     userId,
		Title:      strings.TrimSpace(input.Title),
		Author:     input.Author,
		CoverURL:   input.CoverURL,
		Status:     status,
		PagesTotal: input.PagesTotal,
		ExternalID: input.ExternalID,
	}
	if len(input.Metadata) > 0 {
		book.Metadata = datatypes.JSON(input.Metadata)
	}
	if err := s.DB.Create(&book).Error; err != nil {
		return nil, errors.Wrap(err, "fail to create book")
	}
	return &book, nil
}

// ListBooks returns the user's shelf, optionally filtered by status, most
// recently updated first.
func (s *Service) ListBooks(userId string, status string) ([]*model.Book, error) {
	if status != "" && !model.ValidBookStatus(status) {
		return nil, errors.Wrap(model.ErrValidation, "unknown reading status "+status)
	}

	query := s.DB.Where("user_id = ?", userId)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var books []*model.Book
	if err := query.Order("updated_at desc").Find(&books).Error; err != nil {
		return nil, errors.Wrap(err, "fail to list books")
	}
	return books, nil
}

// GetBook fetches one shelf entry, owner only.
func (s *Service) GetBook(bookId string, userId string) (*model.Book, error) {
	var book model.Book
	res := s.DB.Where("id = ?", bookId).First(&book)
	if res.RowsAffected != 1 {
		return nil, errors.Wrap(model.ErrNotFound, "invalid book id "+bookId)
	}
	if book.UserID != userId {
		return nil, errors.Wrap(model.ErrForbidden, "book belongs to another user")
	}
	return &book, nil
}

// UpdateBook applies a partial update to a shelf entry. Ratings are 1-5 and
// only allowed once the book is finished; progress is clamped to pagesTotal.
func (s *Service) UpdateBook(bookId string, userId string, input UpdateBookInput) (*model.Book, error) {
	book, err := s.GetBook(bookId, userId)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !model.ValidBookStatus(*input.Status) {
			return nil, errors.Wrap(model.ErrValidation, "unknown reading status "+*input.Status)
		}
		book.Status = *input.Status
	}
	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, errors.Wrap(model.ErrValidation, "rating must be between 1 and 5")
		}
		if book.Status != model.BookStatusFinished {
			return nil, errors.Wrap(model.ErrValidation, "only finished books can be rated")
		}
		book.Rating = *input.Rating
	}
	if input.Review != nil {
		book.Review = *input.Review
	}
	if input.PagesRead != nil {
		if *input.PagesRead < 0 {
			return nil, errors.Wrap(model.ErrValidation, "pagesRead must not be negative")
		}
		pages := *input.PagesRead
		if book.PagesTotal > 0 && pages > book.PagesTotal {
			pages = book.PagesTotal
		}
		book.PagesRead = pages
	}

	if err := s.DB.Save(book).Error; err != nil {
		return nil, errors.Wrap(err, "fail to update book")
	}
	return book, nil
}

// DeleteBook removes a shelf entry, owner only.
func (s *Service) DeleteBook(bookId string, userId string) error {
	book, err := s.GetBook(bookId, userId)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(book).Error; err != nil {
		return errors.Wrap(err, "fail to delete book")
	}
	return nil
}
