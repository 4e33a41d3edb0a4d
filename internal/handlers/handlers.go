// Package handlers contains the HTTP route handlers. Handlers talk to the
// shared database directly and convert every failure at the boundary into a
// JSON error with a conventional status code; internal details are logged,
// never returned to clients.
package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"blackcoffee-backend/internal/database"
	"blackcoffee-backend/internal/email"
	"blackcoffee-backend/internal/middleware"
	"blackcoffee-backend/internal/notify"
	"blackcoffee-backend/internal/upload"
)

type Handler struct {
	DB      *database.Database
	Log     *zap.Logger
	Secret  []byte
	BaseURL string
	Mail    *email.Service
	Notify  *notify.Service
	Images  *upload.Cloudinary
}

func New(db *database.Database, log *zap.Logger, secret []byte, baseURL string,
	mail *email.Service, notifier *notify.Service, images *upload.Cloudinary) *Handler {
	return &Handler{
		DB:      db,
		Log:     log,
		Secret:  secret,
		BaseURL: baseURL,
		Mail:    mail,
		Notify:  notifier,
		Images:  images,
	}
}

// userID reads the authenticated user id set by the auth middleware. A second
// return of false means the response has already been written.
func (h *Handler) userID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString(middleware.CtxUserID))
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid token"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// serverError logs the cause and returns the generic 500 body.
func (h *Handler) serverError(c *gin.Context, msg string, err error) {
	h.Log.Error(msg, zap.Error(err), zap.String("path", c.FullPath()))
	c.JSON(500, gin.H{"error": "Internal server error"})
}
