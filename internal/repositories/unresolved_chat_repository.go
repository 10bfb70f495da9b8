package repositories

import (
	"context"
	"errors"
	"time"

	"finvox/internal/models"
)

var (
	ErrChatNotFound        = errors.New("unresolved chat not found")
	ErrChatAlreadyResolved = errors.New("chat is already resolved")
	ErrInvalidChatData     = errors.New("invalid chat data")
)

// UnresolvedChatRepository tracks escalations handed to human agents.
// A record is born open (resolved_at null) and Resolve is the only way
// it ever closes.
type UnresolvedChatRepository interface {
	Create(ctx context.Context, chat *models.UnresolvedChat) error
	GetByID(ctx context.Context, id uint) (*models.UnresolvedChat, error)
	Resolve(ctx context.Context, id uint, resolvedAt time.Time) error
	ListOpen(ctx context.Context) ([]*models.UnresolvedChat, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*models.UnresolvedChat, error)
}
