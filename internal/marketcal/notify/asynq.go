package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketcal/internal/marketcal/model"
	"marketcal/internal/marketcal/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

const (
	TypeNotificationDeliver = "notification:deliver"
	QueueNotifications      = "notifications"
)

// TaskNotifier enqueues notifications to Redis instead of writing them inline.
// A worker started from main consumes the queue and persists the rows.
type TaskNotifier struct {
	client      *asynq.Client
	redisClient *redis.Client
}

func NewTaskNotifier(redisAddr, password string, db int) *TaskNotifier {
	redisOpt := asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	}
	return &TaskNotifier{
		client: asynq.NewClient(redisOpt),
		redisClient: redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: password,
			DB:       db,
		}),
	}
}

// Ping verifies Redis connectivity at startup so a misconfigured queue fails
// fast instead of dropping every notification silently.
func (t *TaskNotifier) Ping(ctx context.Context) error {
	return t.redisClient.Ping(ctx).Err()
}

func (t *TaskNotifier) Notify(ctx context.Context, n *model.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	task := asynq.NewTask(TypeNotificationDeliver, payload)
	_, err = t.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueNotifications),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	return err
}

func (t *TaskNotifier) Close() error {
	if err := t.client.Close(); err != nil {
		return err
	}
	return t.redisClient.Close()
}

// NewWorker builds the asynq server and mux that drain the notification queue
// into the store.
func NewWorker(redisAddr, password string, db int, repo repository.NotificationRepository) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr, Password: password, DB: db},
		asynq.Config{
			Concurrency: 4,
			Queues:      map[string]int{QueueNotifications: 1},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeNotificationDeliver, HandleDeliver(repo))
	return srv, mux
}

// HandleDeliver persists a queued notification. Duplicate delivery on retry is
// treated as success.
func HandleDeliver(repo repository.NotificationRepository) asynq.HandlerFunc {
	sink := NewStoreNotifier(repo)
	return func(ctx context.Context, task *asynq.Task) error {
		var n model.Notification
		if err := json.Unmarshal(task.Payload(), &n); err != nil {
			return fmt.Errorf("unmarshal notification: %v: %w", err, asynq.SkipRetry)
		}
		return sink.Notify(ctx, &n)
	}
}
