// file: internals/features/materials/model/learning_material_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type LearningMaterialModel struct {
	MaterialID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:material_id" json:"material_id"`
	MaterialTitle       string    `gorm:"type:varchar(200);not null;column:material_title" json:"material_title"`
	MaterialContent     string    `gorm:"type:text;not null;column:material_content" json:"material_content"`
	MaterialDocumentURL *string   `gorm:"type:text;column:material_document_url" json:"material_document_url,omitempty"`

	MaterialCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:material_created_at" json:"material_created_at"`
	MaterialUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:material_updated_at" json:"material_updated_at"`
}

func (LearningMaterialModel) TableName() string { return "learning_materials" }
