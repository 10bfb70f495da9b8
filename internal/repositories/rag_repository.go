package repositories

import (
	"context"
	"errors"

	"finvox/internal/models"

	"github.com/google/uuid"
)

var ErrDocumentNotFound = errors.New("document not found")

// RAGRepository stores knowledge-base snippets for the retrieval
// pipeline. Nearest-neighbor search over the embeddings belongs to the
// retrieval service; this layer only validates and persists them.
type RAGRepository interface {
	Create(ctx context.Context, doc *models.RAGDocument) error
	GetByID(ctx context.Context, documentID uuid.UUID) (*models.RAGDocument, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*models.RAGDocument, error)
}
