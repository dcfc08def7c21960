// server exposes the REST surface of the application. Handlers stay thin:
// bind input, read the caller id stamped by the auth middleware, call the
// owning service, map the error class to a status code.
package server

import (
	"net/http"

	"bookmates/books"
	"bookmates/feed"
	"bookmates/model"
	"bookmates/userdir"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Server struct {
	DB          *gorm.DB
	Users       *userdir.Directory
	Distributor *feed.Distributor
	Engagement  *feed.Engagement
	Reader      *feed.Reader
	Books       *books.Service
	Metadata    *books.MetadataClient
}

// NewServer wires all services around one injected DB connection. readStatus
// may be nil when redis isn't configured; the feed then reads as all-unread.
func NewServer(db *gorm.DB, readStatus *feed.ReadStatusStore) *Server {
	users := userdir.NewDirectory(db)
	return &Server{
		DB:          db,
		Users:       users,
		Distributor: feed.NewDistributor(db, users),
		Engagement:  feed.NewEngagement(db, users),
		Reader:      feed.NewReader(db, readStatus),
		Books:       books.NewService(db),
		Metadata:    books.NewMetadataClient(),
	}
}

// RegisterRoutes attaches every API route to the router group. The group is
// expected to already carry the JWT middleware; signup/login are registered
// by RegisterAuthRoutes on an unauthenticated group.
func (s *Server) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/users/me", s.handleGetMe)
	api.POST("/users/onboard", s.handleOnboard)
	api.GET("/users/search", s.handleSearchUsers)
	api.GET("/users/:id", s.handleGetUser)

	api.GET("/friends", s.handleListFriends)
	api.POST("/friends/:id", s.handleAddFriend)
	api.DELETE("/friends/:id", s.handleRemoveFriend)

	api.POST("/posts", s.handleCreatePost)
	api.DELETE("/posts/:id", s.handleDeletePost)
	api.POST("/posts/:id/like", s.handleToggleLike)
	api.POST("/posts/:id/comments", s.handleAddComment)

	api.GET("/feed", s.handleGetFeed)
	api.POST("/feed/read", s.handleMarkFeedRead)

	api.GET("/books", s.handleListBooks)
	api.POST("/books", s.handleAddBook)
	api.GET("/books/search", s.handleSearchBooks)
	api.PATCH("/books/:id", s.handleUpdateBook)
	api.DELETE("/books/:id", s.handleDeleteBook)
}

// RegisterAuthRoutes attaches the unauthenticated signup/login routes.
func (s *Server) RegisterAuthRoutes(api *gin.RouterGroup) {
	api.POST("/auth/signup", s.handleSignUp)
	api.POST("/auth/login", s.handleLogin)
}

// callerId returns the user id the JWT middleware stamped on the request.
func callerId(c *gin.Context) string {
	return c.Request.Header.Get("sub")
}

// writeError maps the service error taxonomy onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, model.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, model.ErrConflict):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": errors.Cause(err).Error(), "msg": err.Error()})
}
