package handlers

import (
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"blackcoffee-backend/internal/images"
	"blackcoffee-backend/internal/middleware"
	"blackcoffee-backend/internal/models"
)

const maxUploadSize = 10 << 20 // 10MB

// UploadImage accepts a multipart image and stores it in Cloudinary when
// configured, otherwise in GridFS so the instance works without external
// credentials.
func (h *Handler) UploadImage(c *gin.Context) {
	if c.GetString(middleware.CtxRole) != models.RoleAdmin {
		c.JSON(403, gin.H{"error": "Admin access required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": "No file provided"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(400, gin.H{"error": "File too large. Maximum size is 10MB"})
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(400, gin.H{"error": "Only image files are allowed"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.serverError(c, "upload: open failed", err)
		return
	}
	defer file.Close()

	if h.Images != nil {
		res, err := h.Images.Upload(c.Request.Context(), file)
		if err != nil {
			h.serverError(c, "upload: cloudinary upload failed", err)
			return
		}
		c.JSON(200, gin.H{
			"success":  true,
			"url":      res.SecureURL,
			"publicId": res.PublicID,
			"message":  "Image uploaded successfully",
		})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		h.serverError(c, "upload: read failed", err)
		return
	}
	id, err := h.DB.UploadImage(fileHeader.Filename, contentType, data)
	if err != nil {
		h.serverError(c, "upload: gridfs upload failed", err)
		return
	}

	c.JSON(200, gin.H{
		"success":  true,
		"url":      "/api/images/" + id,
		"publicId": id,
		"message":  "Image uploaded successfully",
	})
}

func (h *Handler) DeleteImage(c *gin.Context) {
	if c.GetString(middleware.CtxRole) != models.RoleAdmin {
		c.JSON(403, gin.H{"error": "Admin access required"})
		return
	}

	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(400, gin.H{"error": "publicId is required"})
		return
	}

	if h.Images != nil && !images.IsGridFSRef(publicID) {
		if err := h.Images.Delete(c.Request.Context(), publicID); err != nil {
			h.serverError(c, "upload: cloudinary delete failed", err)
			return
		}
	} else {
		if err := h.DB.DeleteImage(publicID); err != nil {
			c.JSON(404, gin.H{"error": "Image not found"})
			return
		}
	}

	c.JSON(200, gin.H{"success": true, "message": "Image deleted successfully"})
}
