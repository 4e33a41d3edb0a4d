package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blackcoffee-backend/internal/catalog"
	"blackcoffee-backend/internal/middleware"
	"blackcoffee-backend/internal/models"
)

// requireAdmin writes a 403 and returns false unless the authenticated
// caller carries the admin role. Role checks happen before any data access.
func (h *Handler) requireAdmin(c *gin.Context) bool {
	if c.GetString(middleware.CtxRole) != models.RoleAdmin {
		c.JSON(403, gin.H{"error": "Admin access required"})
		return false
	}
	return true
}

func (h *Handler) AdminStats(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	ctx := c.Request.Context()

	totalProducts, err := h.DB.Products().CountDocuments(ctx, bson.M{})
	if err != nil {
		h.serverError(c, "admin: stats failed", err)
		return
	}
	newProducts, err := h.DB.Products().CountDocuments(ctx, bson.M{"isNew": true})
	if err != nil {
		h.serverError(c, "admin: stats failed", err)
		return
	}
	saleProducts, err := h.DB.Products().CountDocuments(ctx, bson.M{"isOnSale": true})
	if err != nil {
		h.serverError(c, "admin: stats failed", err)
		return
	}
	totalNews, err := h.DB.News().CountDocuments(ctx, bson.M{})
	if err != nil {
		h.serverError(c, "admin: stats failed", err)
		return
	}
	weekAgo := time.Now().AddDate(0, 0, -7)
	recentNews, err := h.DB.News().CountDocuments(ctx, bson.M{"publishedAt": bson.M{"$gte": weekAgo}})
	if err != nil {
		h.serverError(c, "admin: stats failed", err)
		return
	}
	totalUsers, err := h.DB.Users().CountDocuments(ctx, bson.M{})
	if err != nil {
		h.serverError(c, "admin: stats failed", err)
		return
	}
	totalOrders, err := h.DB.Orders().CountDocuments(ctx, bson.M{})
	if err != nil {
		h.serverError(c, "admin: stats failed", err)
		return
	}

	var totalRevenue float64
	revCur, err := h.DB.Orders().Aggregate(ctx, []bson.M{
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$total"}}},
	})
	if err != nil {
		h.serverError(c, "admin: revenue aggregate failed", err)
		return
	}
	var revenue []struct {
		Total float64 `bson:"total"`
	}
	if err := revCur.All(ctx, &revenue); err != nil {
		h.serverError(c, "admin: revenue decode failed", err)
		return
	}
	if len(revenue) > 0 {
		totalRevenue = revenue[0].Total
	}

	cur, err := h.DB.Orders().Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(5))
	if err != nil {
		h.serverError(c, "admin: recent orders failed", err)
		return
	}
	var recentOrders []models.Order
	if err := cur.All(ctx, &recentOrders); err != nil {
		h.serverError(c, "admin: recent orders decode failed", err)
		return
	}

	c.JSON(200, gin.H{
		"products": gin.H{
			"total": totalProducts,
			"new":   newProducts,
			"sale":  saleProducts,
		},
		"news": gin.H{
			"total":  totalNews,
			"recent": recentNews,
		},
		"users":        gin.H{"total": totalUsers},
		"orders":       gin.H{"total": totalOrders},
		"revenue":      gin.H{"total": totalRevenue},
		"recentOrders": recentOrders,
	})
}

func (h *Handler) GetNotifications(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	ctx := c.Request.Context()

	filter := bson.M{"type": "admin"}
	unreadCount, err := h.DB.Notifications().CountDocuments(ctx, bson.M{"type": "admin", "read": false})
	if err != nil {
		h.serverError(c, "admin: notifications count failed", err)
		return
	}

	cur, err := h.DB.Notifications().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(20))
	if err != nil {
		h.serverError(c, "admin: notifications fetch failed", err)
		return
	}
	var notifications []models.Notification
	if err := cur.All(ctx, &notifications); err != nil {
		h.serverError(c, "admin: notifications decode failed", err)
		return
	}

	c.JSON(200, gin.H{
		"notifications": notifications,
		"unreadCount":   unreadCount,
	})
}

func (h *Handler) UpdateNotification(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	var req struct {
		NotificationID string `json:"notificationId"`
		Action         string `json:"action"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}
	id, err := primitive.ObjectIDFromHex(req.NotificationID)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid notification ID"})
		return
	}

	ctx := c.Request.Context()
	switch req.Action {
	case "markAsRead":
		_, err = h.DB.Notifications().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}})
	case "markAsUnread":
		_, err = h.DB.Notifications().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": false}})
	case "delete":
		_, err = h.DB.Notifications().DeleteOne(ctx, bson.M{"_id": id})
	default:
		c.JSON(400, gin.H{"error": "Invalid action"})
		return
	}
	if err != nil {
		h.serverError(c, "admin: notification update failed", err)
		return
	}

	c.JSON(200, gin.H{"message": "Notification updated"})
}

func (h *Handler) GetAdminLogs(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	params := catalog.Params{Page: 1, Limit: 50, SortBy: "timestamp", SortOrder: -1}
	params.ParsePage(c.Query("page"), c.Query("limit"))

	ctx := c.Request.Context()
	col := h.DB.AdminLogs()

	cur, err := col.Find(ctx, bson.M{}, params.FindOptions())
	if err != nil {
		h.serverError(c, "admin: logs fetch failed", err)
		return
	}
	var logs []models.AdminLog
	if err := cur.All(ctx, &logs); err != nil {
		h.serverError(c, "admin: logs decode failed", err)
		return
	}

	totalCount, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		h.serverError(c, "admin: logs count failed", err)
		return
	}

	c.JSON(200, gin.H{
		"logs":       logs,
		"pagination": catalog.NewPageInfo(params, totalCount),
	})
}

func (h *Handler) CreateAdminLog(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	var req struct {
		Action  string `json:"action"`
		Details string `json:"details"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Action == "" {
		c.JSON(400, gin.H{"error": "Action is required"})
		return
	}

	entry := models.AdminLog{
		AdminID:    c.GetString(middleware.CtxUserID),
		AdminEmail: c.GetString(middleware.CtxEmail),
		Action:     req.Action,
		Details:    req.Details,
		IP:         c.ClientIP(),
		Timestamp:  time.Now(),
	}
	if _, err := h.DB.AdminLogs().InsertOne(c.Request.Context(), entry); err != nil {
		h.serverError(c, "admin: log insert failed", err)
		return
	}

	c.JSON(201, gin.H{"message": "Log recorded"})
}
