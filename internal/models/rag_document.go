package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// DocumentEmbeddingDim is the dimensionality of knowledge-base embeddings.
// Documents use a smaller retrieval model than conversation logging, so
// the two vector widths differ.
const DocumentEmbeddingDim = 1024

// RAGDocument is a knowledge snippet served to the retrieval pipeline.
// CustomerID scopes a document to one customer; nil means bank-wide.
type RAGDocument struct {
	DocumentID   uuid.UUID        `gorm:"column:document_id;type:uuid;primaryKey"`
	CustomerID   *string          `gorm:"column:customer_id;type:varchar(20);index"`
	DocumentText string           `gorm:"column:document_text;type:text"`
	Embedding    *pgvector.Vector `gorm:"column:embedding;type:vector(1024)"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`

	Customer *Customer `gorm:"foreignKey:CustomerID;references:CustomerID"`
}

func (RAGDocument) TableName() string {
	return "rag_document"
}

func (d *RAGDocument) BeforeCreate(tx *gorm.DB) error {
	if d.DocumentID == uuid.Nil {
		d.DocumentID = uuid.New()
	}
	return nil
}
