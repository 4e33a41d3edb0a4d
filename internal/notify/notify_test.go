package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"blackcoffee-backend/internal/models"
)

func TestCreateMarksAdminUnread(t *testing.T) {
	var got models.Notification
	svc := NewService(func(_ context.Context, n models.Notification) error {
		got = n
		return nil
	}, zap.NewNop())

	if err := <-svc.Create(models.Notification{Title: "t", Message: "m"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Type != "admin" || got.Read {
		t.Errorf("notification not normalized: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("createdAt not set")
	}
}

func TestCreateSurfacesNonFatalError(t *testing.T) {
	svc := NewService(func(_ context.Context, _ models.Notification) error {
		return errors.New("insert failed")
	}, zap.NewNop())

	if err := <-svc.Create(models.Notification{Title: "t"}); err == nil {
		t.Fatal("expected error on result channel")
	}
}

func TestNewOrderMessage(t *testing.T) {
	var got models.Notification
	svc := NewService(func(_ context.Context, n models.Notification) error {
		got = n
		return nil
	}, zap.NewNop())

	<-svc.NewOrder("ORD-20260829-1234", "Олена", 450)

	if !strings.Contains(got.Message, "ORD-20260829-1234") || !strings.Contains(got.Message, "Олена") {
		t.Errorf("message missing details: %q", got.Message)
	}
	if got.RelatedType != "order" {
		t.Errorf("relatedType = %q", got.RelatedType)
	}
}
