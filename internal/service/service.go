package service

import (
	"context"

	"go.uber.org/zap"
)

// Service defines the data-access operations the commands consume.
// Commands never talk to a Store directly.
type Service interface {
	// Login finds the user with the given email and password.
	// The returned user never carries a password.
	Login(ctx context.Context, email, password string) (User, error)

	// CreateUser registers a new user. Email uniqueness is not enforced.
	CreateUser(ctx context.Context, u NewUser) error

	// UpdateUserProfile merges patch into the user and returns the updated
	// record as re-read from the store.
	UpdateUserProfile(ctx context.Context, id string, patch UserPatch) (User, error)

	// FetchTasks returns all tasks owned by userID in store order.
	// An empty userID yields an empty list without contacting the store.
	FetchTasks(ctx context.Context, userID string) ([]Task, error)

	// FetchTask returns a single task.
	FetchTask(ctx context.Context, id string) (Task, error)

	// AddTask creates a task. Fails if any task already has the same title.
	AddTask(ctx context.Context, t NewTask) error

	// EditTask merges patch into the task.
	EditTask(ctx context.Context, id string, patch TaskPatch) error

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, id string) error

	// ToggleTaskStatus flips the task's completion status.
	ToggleTaskStatus(ctx context.Context, id string) error
}

// Client implements Service on top of a Store.
type Client struct {
	store  Store
	logger *zap.Logger
}

// New creates a Client. A nil logger disables logging.
func New(store Store, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{store: store, logger: logger.Named("service")}
}

// Close closes the underlying store.
func (c *Client) Close() error {
	return c.store.Close()
}

// fail logs a failed operation and returns err unchanged.
func (c *Client) fail(op string, err error) error {
	c.logger.Debug("operation failed", zap.String("op", op), zap.Error(err))
	return err
}
