// Package jobs holds the scheduled background tasks. Each task is a plain
// func suitable for registration with a cron scheduler.
package jobs

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"blackcoffee-backend/internal/database"
	"blackcoffee-backend/internal/models"
	"blackcoffee-backend/internal/notify"
)

const staleOrderAge = 24 * time.Hour

type Reminders struct {
	DB     *database.Database
	Notify *notify.Service
	Log    *zap.Logger
}

func NewReminders(db *database.Database, notifier *notify.Service, log *zap.Logger) *Reminders {
	return &Reminders{DB: db, Notify: notifier, Log: log}
}

// CheckStaleOrders raises an admin notification for every order still
// pending a day after it was placed. Runs nightly.
func (r *Reminders) CheckStaleOrders() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-staleOrderAge)
	cur, err := r.DB.Orders().Find(ctx, bson.M{
		"status":    models.OrderStatusPending,
		"createdAt": bson.M{"$lt": cutoff},
	})
	if err != nil {
		r.Log.Error("reminders: stale order query failed", zap.Error(err))
		return
	}

	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		r.Log.Error("reminders: stale order decode failed", zap.Error(err))
		return
	}

	for _, order := range orders {
		r.Notify.StaleOrder(order.OrderNumber, time.Since(order.CreatedAt))
	}
	if len(orders) > 0 {
		r.Log.Info("reminders: stale orders flagged", zap.Int("count", len(orders)))
	}
}
