package mapper

import (
	"time"

	"github.com/charley4805/project-pretzel/internal/entity"
	"github.com/charley4805/project-pretzel/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.ProjectDocument) *entity.ProjectDocument {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.ProjectDocument{
		Id:         d.Id,
		ProjectId:  d.ProjectId,
		Title:      d.Title,
		Content:    d.Content,
		UploadedBy: d.UploadedBy,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.ProjectDocument) *model.ProjectDocument {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.ProjectDocument{
		Id:         d.Id,
		ProjectId:  d.ProjectId,
		Title:      d.Title,
		Content:    d.Content,
		UploadedBy: d.UploadedBy,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *DocumentMapper) ToEntities(docs []*model.ProjectDocument) []*entity.ProjectDocument {
	entities := make([]*entity.ProjectDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
