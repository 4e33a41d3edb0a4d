package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blackcoffee-backend/internal/cart"
	"blackcoffee-backend/internal/models"
)

// loadCartItems returns the stored items for a user, or an empty slice when
// no cart document exists yet.
func (h *Handler) loadCartItems(c *gin.Context, userID interface{}) ([]models.CartItem, bool, error) {
	var doc models.Cart
	err := h.DB.Carts().FindOne(c.Request.Context(), bson.M{"userId": userID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return []models.CartItem{}, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if doc.Items == nil {
		doc.Items = []models.CartItem{}
	}
	return doc.Items, true, nil
}

// saveCartItems upserts the per-user cart document.
func (h *Handler) saveCartItems(c *gin.Context, userID interface{}, items []models.CartItem) error {
	_, err := h.DB.Carts().UpdateOne(c.Request.Context(),
		bson.M{"userId": userID},
		bson.M{
			"$set":         bson.M{"items": items, "updatedAt": time.Now()},
			"$setOnInsert": bson.M{"userId": userID, "createdAt": time.Now()},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	items, _, err := h.loadCartItems(c, userID)
	if err != nil {
		h.serverError(c, "cart: fetch failed", err)
		return
	}
	c.JSON(200, gin.H{"cart": items})
}

// SaveCart replaces the whole cart document with the client's copy; the
// client writes through after every local mutation.
func (h *Handler) SaveCart(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req struct {
		Items []models.CartItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Items == nil {
		c.JSON(400, gin.H{"error": "Cart items are required"})
		return
	}

	if err := h.saveCartItems(c, userID, req.Items); err != nil {
		h.serverError(c, "cart: save failed", err)
		return
	}
	c.JSON(200, gin.H{"message": "Cart saved successfully"})
}

func (h *Handler) UpdateCart(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req struct {
		Action   string `json:"action"`
		ItemID   string `json:"itemId"`
		Quantity *int   `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Action == "" || req.ItemID == "" {
		c.JSON(400, gin.H{"error": "Action and itemId are required"})
		return
	}

	items, exists, err := h.loadCartItems(c, userID)
	if err != nil {
		h.serverError(c, "cart: fetch failed", err)
		return
	}
	if !exists {
		c.JSON(404, gin.H{"error": "Cart not found"})
		return
	}

	switch {
	case req.Action == "remove":
		items = cart.RemoveItem(items, req.ItemID)
	case req.Action == "update" && req.Quantity != nil:
		items = cart.UpdateQuantity(items, req.ItemID, *req.Quantity)
	default:
		c.JSON(400, gin.H{"error": "Invalid action or missing quantity"})
		return
	}

	if err := h.saveCartItems(c, userID, items); err != nil {
		h.serverError(c, "cart: update failed", err)
		return
	}
	c.JSON(200, gin.H{"message": "Cart updated successfully", "cart": items})
}

func (h *Handler) ClearCart(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	if _, err := h.DB.Carts().DeleteOne(c.Request.Context(), bson.M{"userId": userID}); err != nil {
		h.serverError(c, "cart: clear failed", err)
		return
	}
	c.JSON(200, gin.H{"message": "Cart cleared successfully"})
}

// MergeCart reconciles the cart a client kept while logged out with the
// stored one: stored lines win per id, local-only lines are appended.
func (h *Handler) MergeCart(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req struct {
		Items []models.CartItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Items == nil {
		c.JSON(400, gin.H{"error": "Cart items are required"})
		return
	}

	server, _, err := h.loadCartItems(c, userID)
	if err != nil {
		h.serverError(c, "cart: fetch failed", err)
		return
	}

	merged := cart.Merge(server, req.Items)
	if err := h.saveCartItems(c, userID, merged); err != nil {
		h.serverError(c, "cart: merge save failed", err)
		return
	}

	c.JSON(200, gin.H{
		"cart":       merged,
		"totalPrice": cart.TotalPrice(merged),
		"totalItems": cart.TotalItems(merged),
	})
}
