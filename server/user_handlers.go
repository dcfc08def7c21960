package server

import (
	"net/http"

	"bookmates/model"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type onboardRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *Server) handleGetMe(c *gin.Context) {
	user, err := s.Users.GetUser(callerId(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) handleOnboard(c *gin.Context) {
	var req onboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.Wrap(model.ErrValidation, err.Error()))
		return
	}

	user, err := s.Users.Onboard(callerId(c), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) handleGetUser(c *gin.Context) {
	user, err := s.Users.GetUser(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) handleSearchUsers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		writeError(c, errors.Wrap(model.ErrValidation, "missing query parameter q"))
		return
	}

	users, err := s.Users.SearchUsers(query, 20)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
