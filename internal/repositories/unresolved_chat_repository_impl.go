package repositories

import (
	"context"
	"fmt"
	"time"

	"finvox/internal/models"

	"gorm.io/gorm"
)

type unresolvedChatRepository struct {
	db *gorm.DB
}

var _ UnresolvedChatRepository = (*unresolvedChatRepository)(nil)

func NewUnresolvedChatRepository(db *gorm.DB) UnresolvedChatRepository {
	return &unresolvedChatRepository{db: db}
}

func (r *unresolvedChatRepository) Create(ctx context.Context, chat *models.UnresolvedChat) error {
	if chat.CustomerID == "" || chat.SessionID == "" || chat.Summary == "" {
		return ErrInvalidChatData
	}
	// Escalations are always created open.
	if chat.ResolvedAt != nil {
		return ErrInvalidChatData
	}
	if chat.EmbeddingVector != nil && len(chat.EmbeddingVector.Slice()) != models.ChatEmbeddingDim {
		return ErrEmbeddingDimension
	}
	if err := r.db.WithContext(ctx).Create(chat).Error; err != nil {
		return fmt.Errorf("failed to create unresolved chat: %w", err)
	}
	return nil
}

func (r *unresolvedChatRepository) GetByID(ctx context.Context, id uint) (*models.UnresolvedChat, error) {
	var chat models.UnresolvedChat
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&chat).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrChatNotFound
		}
		return nil, fmt.Errorf("failed to get unresolved chat: %w", err)
	}
	return &chat, nil
}

func (r *unresolvedChatRepository) Resolve(ctx context.Context, id uint, resolvedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.UnresolvedChat{}).
		Where("id = ? AND resolved_at IS NULL", id).
		Update("resolved_at", resolvedAt)
	if result.Error != nil {
		return fmt.Errorf("failed to resolve chat: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrChatAlreadyResolved
	}
	return nil
}

func (r *unresolvedChatRepository) ListOpen(ctx context.Context) ([]*models.UnresolvedChat, error) {
	var chats []*models.UnresolvedChat
	err := r.db.WithContext(ctx).
		Where("resolved_at IS NULL").
		Order("created_at ASC").
		Find(&chats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list open chats: %w", err)
	}
	return chats, nil
}

func (r *unresolvedChatRepository) ListByCustomer(ctx context.Context, customerID string) ([]*models.UnresolvedChat, error) {
	var chats []*models.UnresolvedChat
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&chats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list chats by customer: %w", err)
	}
	return chats, nil
}
