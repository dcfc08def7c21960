package server

import (
	"net/http"

	"bookmates/auth"
	"bookmates/model"
	. "bookmates/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type signUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (s *Server) handleSignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.Wrap(model.ErrValidation, err.Error()))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	user, err := s.Users.CreateUser(req.Email, hash, req.FullName)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := auth.GenerateToken(user.Id, user.DisplayName())
	if err != nil {
		writeError(c, err)
		return
	}

	Log.Info("new user signed up: ", user.Id)
	c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.Wrap(model.ErrValidation, err.Error()))
		return
	}

	user, err := s.Users.GetUserByEmail(req.Email)
	// A wrong email and a wrong password are indistinguishable to the caller.
	if err != nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(c, errors.Wrap(model.ErrUnauthorized, "invalid email or password"))
		return
	}

	token, err := auth.GenerateToken(user.Id, user.DisplayName())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}
