package repositories

import (
	"context"
	"errors"

	"finvox/internal/models"

	"github.com/google/uuid"
)

var (
	ErrInteractionNotFound = errors.New("interaction not found")
	ErrInvalidSender       = errors.New("sender must be user or bot")
	ErrMissingSession      = errors.New("interaction requires a session id")
	ErrEmptyMessage        = errors.New("interaction requires message text")
	ErrEmbeddingDimension  = errors.New("embedding has wrong dimension")
)

// InteractionRepository logs chatbot turns and feedback. Embeddings are
// stored opaquely; similarity search happens in the retrieval service,
// not here.
type InteractionRepository interface {
	Log(ctx context.Context, interaction *models.ClientInteraction) error
	GetByID(ctx context.Context, interactionID uuid.UUID) (*models.ClientInteraction, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*models.ClientInteraction, error)
	SetFeedback(ctx context.Context, interactionID uuid.UUID, positive bool) error
}
