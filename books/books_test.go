package books

import (
	"os"
	"testing"

	"bookmates/model"
	"bookmates/utils"
	"bookmates/utils/dotenv"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dotenv.LoadDotEnvsInTests()
	os.Exit(m.Run())
}

func TestAddBookDefaultsAndValidation(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	s := NewService(db)
	user := utils.TestCreateUserAndValidate(t, db, "a@example.com", "alice")

	book, err := s.AddBook(user.Id, AddBookInput{Title: "Dune", Author: "Frank Herbert", PagesTotal: 412})
	require.NoError(t, err)
	require.Equal(t, model.BookStatusWantToRead, book.Status)
	require.Equal(t, "Dune", book.Title)
	require.Equal(t, 0, book.PagesRead)

	_, err = s.AddBook(user.Id, AddBookInput{Title: "   "})
	require.True(t, errors.Is(err, model.ErrValidation))

	_, err = s.AddBook(user.Id, AddBookInput{Title: "X", Status: "reading-ish"})
	require.True(t, errors.Is(err, model.ErrValidation))

	_, err = s.AddBook(user.Id, AddBookInput{Title: "X", PagesTotal: -1})
	require.True(t, errors.Is(err, model.ErrValidation))
}

func TestListBooksFilterByStatus(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	s := NewService(db)
	user := utils.TestCreateUserAndValidate(t, db, "a@example.com", "alice")
	other := utils.TestCreateUserAndValidate(t, db, "b@example.com", "bob")

	_, err := s.AddBook(user.Id, AddBookInput{Title: "Dune", Status: model.BookStatusFinished})
	require.NoError(t, err)
	_, err = s.AddBook(user.Id, AddBookInput{Title: "Hyperion", Status: model.BookStatusCurrentlyReading})
	require.NoError(t, err)
	_, err = s.AddBook(other.Id, AddBookInput{Title: "Neuromancer", Status: model.BookStatusFinished})
	require.NoError(t, err)

	all, err := s.ListBooks(user.Id, "")
	require.NoError(t, err)
	require.Equal(t, 2, len(all))

	finished, err := s.ListBooks(user.Id, model.BookStatusFinished)
	require.NoError(t, err)
	require.Equal(t, 1, len(finished))
	require.Equal(t, "Dune", finished[0].Title)

	_, err = s.ListBooks(user.Id, "bogus")
	require.True(t, errors.Is(err, model.ErrValidation))
}

func TestUpdateBookProgressAndRating(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	s := NewService(db)
	user := utils.TestCreateUserAndValidate(t, db, "a@example.com", "alice")

	book, err := s.AddBook(user.Id, AddBookInput{Title: "Dune", Status: model.BookStatusCurrentlyReading, PagesTotal: 412})
	require.NoError(t, err)

	// Progress is clamped to the page count.
	read := 500
	book, err = s.UpdateBook(book.Id, user.Id, UpdateBookInput{PagesRead: &read})
	require.NoError(t, err)
	require.Equal(t, 412, book.PagesRead)

	// Rating an unfinished book is rejected.
	rating := 5
	_, err = s.UpdateBook(book.Id, user.Id, UpdateBookInput{Rating: &rating})
	require.True(t, errors.Is(err, model.ErrValidation))

	// Finish, then rate and review.
	finished := model.BookStatusFinished
	review := "A masterpiece."
	book, err = s.UpdateBook(book.Id, user.Id, UpdateBookInput{Status: &finished})
	require.NoError(t, err)
	book, err = s.UpdateBook(book.Id, user.Id, UpdateBookInput{Rating: &rating, Review: &review})
	require.NoError(t, err)
	require.Equal(t, 5, book.Rating)
	require.Equal(t, "A masterpiece.", book.Review)

	outOfRange := 6
	_, err = s.UpdateBook(book.Id, user.Id, UpdateBookInput{Rating: &outOfRange})
	require.True(t, errors.Is(err, model.ErrValidation))
}

func TestBookOwnership(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	s := NewService(db)
	owner := utils.TestCreateUserAndValidate(t, db, "a@example.com", "alice")
	intruder := utils.TestCreateUserAndValidate(t, db, "b@example.com", "bob")

	book, err := s.AddBook(owner.Id, AddBookInput{Title: "Dune"})
	require.NoError(t, err)

	_, err = s.GetBook(book.Id, intruder.Id)
	require.True(t, errors.Is(err, model.ErrForbidden))

	err = s.DeleteBook(book.Id, intruder.Id)
	require.True(t, errors.Is(err, model.ErrForbidden))

	require.NoError(t, s.DeleteBook(book.Id, owner.Id))
	_, err = s.GetBook(book.Id, owner.Id)
	require.True(t, errors.Is(err, model.ErrNotFound))
}
