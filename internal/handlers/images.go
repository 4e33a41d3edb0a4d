package handlers

import (
	"github.com/gin-gonic/gin"

	"blackcoffee-backend/internal/middleware"
	"blackcoffee-backend/internal/models"
)

// GetImage streams a stored image straight from GridFS. Public, cacheable.
func (h *Handler) GetImage(c *gin.Context) {
	if err := h.DB.StreamImage(c.Param("id"), c.Writer); err != nil {
		c.JSON(404, gin.H{"error": "Image not found"})
	}
}

func (h *Handler) ListImages(c *gin.Context) {
	if c.GetString(middleware.CtxRole) != models.RoleAdmin {
		c.JSON(403, gin.H{"error": "Admin access required"})
		return
	}

	files, err := h.DB.ListImages(c.Request.Context(), 100)
	if err != nil {
		h.serverError(c, "images: list failed", err)
		return
	}

	c.JSON(200, gin.H{"images": files, "count": len(files)})
}
