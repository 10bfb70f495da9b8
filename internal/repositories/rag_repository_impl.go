package repositories

import (
	"context"
	"fmt"

	"finvox/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ragRepository struct {
	db *gorm.DB
}

var _ RAGRepository = (*ragRepository)(nil)

func NewRAGRepository(db *gorm.DB) RAGRepository {
	return &ragRepository{db: db}
}

func (r *ragRepository) Create(ctx context.Context, doc *models.RAGDocument) error {
	if doc.Embedding != nil && len(doc.Embedding.Slice()) != models.DocumentEmbeddingDim {
		return ErrEmbeddingDimension
	}
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

func (r *ragRepository) GetByID(ctx context.Context, documentID uuid.UUID) (*models.RAGDocument, error) {
	var doc models.RAGDocument
	err := r.db.WithContext(ctx).Where("document_id = ?", documentID).First(&doc).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &doc, nil
}

func (r *ragRepository) ListByCustomer(ctx context.Context, customerID string) ([]*models.RAGDocument, error) {
	var docs []*models.RAGDocument
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}
