package notify

import (
	"context"
	"errors"
	"time"

	"marketcal/internal/marketcal/model"
	"marketcal/internal/marketcal/repository"

	"github.com/google/uuid"
)

// Notifier is the fire-and-forget notification sink. A failed delivery must
// never fail the permission change that triggered it; callers log and move on.
type Notifier interface {
	Notify(ctx context.Context, n *model.Notification) error
}

// StoreNotifier writes notifications straight to the store. Used when no
// Redis queue is configured, and as the delivery end of the queued path.
type StoreNotifier struct {
	Repo repository.NotificationRepository
}

func NewStoreNotifier(repo repository.NotificationRepository) *StoreNotifier {
	return &StoreNotifier{Repo: repo}
}

func (s *StoreNotifier) Notify(ctx context.Context, n *model.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	err := s.Repo.CreateNotification(ctx, n)
	if errors.Is(err, repository.ErrDuplicate) {
		// Same notification delivered twice (queue retry); already stored.
		return nil
	}
	return err
}
