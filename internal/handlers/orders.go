package handlers

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blackcoffee-backend/internal/middleware"
	"blackcoffee-backend/internal/models"
)

// newOrderNumber draws an ORD-YYYYMMDD-XXXX candidate with a 4-digit suffix
// in 1000..9999. The date part is UTC.
func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%d", now.UTC().Format("20060102"), 1000+rand.Intn(9000))
}

// validateOrder enforces the creation preconditions: a non-empty item
// snapshot and a positive total. A legitimately free order is rejected too;
// that matches the storefront, which never produces one.
func validateOrder(items []models.CartItem, total float64) error {
	if len(items) == 0 {
		return errors.New("Order items are required")
	}
	if total <= 0 {
		return errors.New("Order total is required")
	}
	return nil
}

func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	cur, err := h.DB.Orders().Find(ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		h.serverError(c, "orders: fetch failed", err)
		return
	}

	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		h.serverError(c, "orders: decode failed", err)
		return
	}

	out := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		orderNumber := o.OrderNumber
		if orderNumber == "" {
			orderNumber = o.ID.Hex()
		}
		status := o.Status
		if status == "" {
			status = models.OrderStatusPending
		}
		out = append(out, gin.H{
			"id":              o.ID.Hex(),
			"orderNumber":     orderNumber,
			"items":           o.Items,
			"total":           o.Total,
			"status":          status,
			"createdAt":       o.CreatedAt,
			"deliveryAddress": o.DeliveryAddress,
			"paymentMethod":   o.PaymentMethod,
		})
	}

	c.JSON(200, gin.H{"orders": out})
}

func (h *Handler) CreateOrder(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req struct {
		Items           []models.CartItem `json:"items"`
		Total           float64           `json:"total"`
		DeliveryAddress string            `json:"deliveryAddress"`
		PaymentMethod   string            `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}
	if err := validateOrder(req.Items, req.Total); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	orders := h.DB.Orders()

	// The random suffix can collide within a day. Probe and redraw a few
	// times; after that the last candidate is accepted as-is.
	orderNumber := newOrderNumber(time.Now())
	for i := 0; i < 3; i++ {
		count, err := orders.CountDocuments(ctx, bson.M{"orderNumber": orderNumber})
		if err != nil || count == 0 {
			break
		}
		orderNumber = newOrderNumber(time.Now())
	}

	order := models.Order{
		UserID:          userID,
		OrderNumber:     orderNumber,
		Items:           req.Items,
		Total:           req.Total,
		Status:          models.OrderStatusPending,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		CreatedAt:       time.Now(),
	}

	res, err := orders.InsertOne(ctx, order)
	if err != nil {
		h.serverError(c, "orders: insert failed", err)
		return
	}

	h.Notify.NewOrder(orderNumber, c.GetString(middleware.CtxEmail), req.Total)

	c.JSON(201, gin.H{
		"message": "Order created",
		"orderId": res.InsertedID.(primitive.ObjectID).Hex(),
	})
}
