// Package notify writes admin-facing event records. Writes are best effort:
// a failed notification never aborts the operation that produced it.
package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"blackcoffee-backend/internal/models"
)

type Service struct {
	insert func(ctx context.Context, n models.Notification) error
	log    *zap.Logger
}

// NewService wraps the notifications collection insert. The insert func
// indirection keeps the service testable without a live database.
func NewService(insert func(ctx context.Context, n models.Notification) error, log *zap.Logger) *Service {
	return &Service{insert: insert, log: log}
}

// Create writes one notification in the background and returns the non-fatal
// result channel.
func (s *Service) Create(n models.Notification) <-chan error {
	n.Type = "admin"
	n.Read = false
	n.CreatedAt = time.Now()

	result := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := s.insert(ctx, n)
		if err != nil {
			s.log.Warn("notification write failed", zap.String("title", n.Title), zap.Error(err))
		}
		result <- err
	}()
	return result
}

// NewOrder records an incoming order for the back office.
func (s *Service) NewOrder(orderNumber, customerName string, total float64) <-chan error {
	return s.Create(models.Notification{
		Title:       "Нове замовлення",
		Message:     fmt.Sprintf("Отримано нове замовлення №%s від %s на суму ₴%.2f", orderNumber, customerName, total),
		RelatedID:   orderNumber,
		RelatedType: "order",
	})
}

// StaleOrder records an order still pending after the reminder threshold.
func (s *Service) StaleOrder(orderNumber string, age time.Duration) <-chan error {
	return s.Create(models.Notification{
		Title:       "Замовлення очікує обробки",
		Message:     fmt.Sprintf("Замовлення №%s в статусі pending вже %d год.", orderNumber, int(age.Hours())),
		RelatedID:   orderNumber,
		RelatedType: "order",
	})
}
