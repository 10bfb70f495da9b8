package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Message senders
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// InteractionEmbeddingDim is the dimensionality of conversation embeddings.
const InteractionEmbeddingDim = 1536

// ClientInteraction is one logged chatbot turn. SessionID groups the turns
// of a single call; CustomerID stays nil until the caller is identified.
// Embedding is written by the ingestion pipeline and read back by an
// external retrieval component, so this layer treats it as opaque.
type ClientInteraction struct {
	InteractionID    uuid.UUID        `gorm:"column:interaction_id;type:uuid;primaryKey"`
	SessionID        uuid.UUID        `gorm:"column:session_id;type:uuid;not null;index"`
	CustomerID       *string          `gorm:"column:customer_id;type:varchar(20);index"`
	Timestamp        time.Time        `gorm:"column:timestamp;autoCreateTime"`
	Sender           string           `gorm:"column:sender;type:varchar(10);not null"`
	MessageText      string           `gorm:"column:message_text;type:text;not null"`
	Intent           string           `gorm:"column:intent;type:varchar(50)"`
	Stage            string           `gorm:"column:stage;type:varchar(50)"`
	FeedbackProvided bool             `gorm:"column:feedback_provided;default:false"`
	FeedbackPositive *bool            `gorm:"column:feedback_positive"`
	RawResponseData  datatypes.JSON   `gorm:"column:raw_response_data;type:jsonb"`
	Embedding        *pgvector.Vector `gorm:"column:embedding;type:vector(1536)"`

	Customer *Customer `gorm:"foreignKey:CustomerID;references:CustomerID"`
}

func (ClientInteraction) TableName() string {
	return "client_interaction"
}

func (ci *ClientInteraction) BeforeCreate(tx *gorm.DB) error {
	if ci.InteractionID == uuid.Nil {
		ci.InteractionID = uuid.New()
	}
	return nil
}
