package repositories

import (
	"context"
	"fmt"

	"finvox/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type interactionRepository struct {
	db *gorm.DB
}

var _ InteractionRepository = (*interactionRepository)(nil)

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Log(ctx context.Context, interaction *models.ClientInteraction) error {
	if interaction.SessionID == uuid.Nil {
		return ErrMissingSession
	}
	if interaction.Sender != models.SenderUser && interaction.Sender != models.SenderBot {
		return ErrInvalidSender
	}
	if interaction.MessageText == "" {
		return ErrEmptyMessage
	}
	if interaction.Embedding != nil && len(interaction.Embedding.Slice()) != models.InteractionEmbeddingDim {
		return ErrEmbeddingDimension
	}
	if err := r.db.WithContext(ctx).Create(interaction).Error; err != nil {
		return fmt.Errorf("failed to log interaction: %w", err)
	}
	return nil
}

func (r *interactionRepository) GetByID(ctx context.Context, interactionID uuid.UUID) (*models.ClientInteraction, error) {
	var interaction models.ClientInteraction
	err := r.db.WithContext(ctx).Where("interaction_id = ?", interactionID).First(&interaction).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInteractionNotFound
		}
		return nil, fmt.Errorf("failed to get interaction: %w", err)
	}
	return &interaction, nil
}

func (r *interactionRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*models.ClientInteraction, error) {
	var interactions []*models.ClientInteraction
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp ASC").
		Find(&interactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	return interactions, nil
}

func (r *interactionRepository) SetFeedback(ctx context.Context, interactionID uuid.UUID, positive bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.ClientInteraction{}).
		Where("interaction_id = ?", interactionID).
		Updates(map[string]interface{}{
			"feedback_provided": true,
			"feedback_positive": positive,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to set feedback: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInteractionNotFound
	}
	return nil
}
