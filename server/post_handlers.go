package server

import (
	"net/http"

	"bookmates/model"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type createPostRequest struct {
	Content string `json:"content"`
}

type addCommentRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleCreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.Wrap(model.ErrValidation, err.Error()))
		return
	}

	post, err := s.Distributor.CreatePost(callerId(c), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (s *Server) handleDeletePost(c *gin.Context) {
	if err := s.Distributor.DeletePost(c.Param("id"), callerId(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleToggleLike(c *gin.Context) {
	result, err := s.Engagement.ToggleLike(c.Param("id"), callerId(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleAddComment(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.Wrap(model.ErrValidation, err.Error()))
		return
	}

	comments, err := s.Engagement.AddComment(c.Param("id"), callerId(c), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
