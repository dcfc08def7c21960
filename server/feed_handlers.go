package server

import (
	"net/http"
	"strconv"

	"bookmates/feed"
	"bookmates/model"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type markFeedReadRequest struct {
	EntryIds []string `json:"entryIds" binding:"required"`
}

func (s *Server) handleGetFeed(c *gin.Context) {
	limit := feed.DefaultFeedLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, errors.Wrap(model.ErrValidation, "limit must be an integer"))
			return
		}
		limit = parsed
	}

	entries, err := s.Reader.GetFeed(callerId(c), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (s *Server) handleMarkFeedRead(c *gin.Context) {
	var req markFeedReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.Wrap(model.ErrValidation, err.Error()))
		return
	}

	if s.Reader.ReadStatus == nil {
		writeError(c, errors.Wrap(model.ErrInternal, "read-status store not configured"))
		return
	}
	if err := s.Reader.ReadStatus.SetItemsReadStatus(req.EntryIds, callerId(c), true); err != nil {
		if errors.Is(err, model.ErrValidation) {
			writeError(c, err)
			return
		}
		writeError(c, errors.Wrap(model.ErrInternal, err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
