// file: internals/features/materials/dto/material_dto.go
package dto

import (
	"time"

	model "sekolahku_backend/internals/features/materials/model"
)

type MaterialResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	DocumentURL *string `json:"documentUrl,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func FromModelMaterial(m *model.LearningMaterialModel) MaterialResponse {
	return MaterialResponse{
		ID:          m.MaterialID.String(),
		Title:       m.MaterialTitle,
		Content:     m.MaterialContent,
		DocumentURL: m.MaterialDocumentURL,
		CreatedAt:   m.MaterialCreatedAt.Format(time.RFC3339),
		UpdatedAt:   m.MaterialUpdatedAt.Format(time.RFC3339),
	}
}

func FromModelMaterials(rows []model.LearningMaterialModel) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelMaterial(&rows[i]))
	}
	return out
}
