package server

import (
	"net/http"

	"bookmates/books"
	"bookmates/model"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func (s *Server) handleListBooks(c *gin.Context) {
	list, err := s.Books.ListBooks(callerId(c), c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": list})
}

func (s *Server) handleAddBook(c *gin.Context) {
	var input books.AddBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeError(c, errors.Wrap(model.ErrValidation, err.Error()))
		return
	}

	book, err := s.Books.AddBook(callerId(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, book)
}

func (s *Server) handleUpdateBook(c *gin.Context) {
	var input books.UpdateBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeError(c, errors.Wrap(model.ErrValidation, err.Error()))
		return
	}

	book, err := s.Books.UpdateBook(c.Param("id"), callerId(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (s *Server) handleDeleteBook(c *gin.Context) {
	if err := s.Books.DeleteBook(c.Param("id"), callerId(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSearchBooks(c *gin.Context) {
	results, err := s.Metadata.Search(c.Query("q"), 10)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
