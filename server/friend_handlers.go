package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleListFriends(c *gin.Context) {
	friends, err := s.Users.Friends(callerId(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

func (s *Server) handleAddFriend(c *gin.Context) {
	if err := s.Users.AddFriend(callerId(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleRemoveFriend(c *gin.Context) {
	if err := s.Users.RemoveFriend(callerId(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
