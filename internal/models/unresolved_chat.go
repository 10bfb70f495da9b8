package models

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// ChatEmbeddingDim is the dimensionality of escalation summary embeddings.
// Summaries are embedded with the conversation model, so the width matches
// ClientInteraction.
const ChatEmbeddingDim = 1536

// UnresolvedChat is an escalation record for a call the bot could not
// close out. ResolvedAt stays nil while the case is open; a human agent
// stamps it when the follow-up completes.
type UnresolvedChat struct {
	ID              uint             `gorm:"column:id;primaryKey"`
	CustomerID      string           `gorm:"column:customer_id;not null;index"`
	AccountID       string           `gorm:"column:account_id"`
	SessionID       string           `gorm:"column:session_id;not null"`
	Summary         string           `gorm:"column:summary;type:text;not null"`
	EmbeddingVector *pgvector.Vector `gorm:"column:embedding_vector;type:vector(1536)"`
	CreatedAt       time.Time        `gorm:"column:created_at;not null;autoCreateTime"`
	ResolvedAt      *time.Time       `gorm:"column:resolved_at"`
}

func (UnresolvedChat) TableName() string {
	return "unresolved_chats"
}

// Open reports whether the escalation still needs human follow-up.
func (c *UnresolvedChat) Open() bool {
	return c.ResolvedAt == nil
}
