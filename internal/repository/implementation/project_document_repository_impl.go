package implementation

import (
	"context"

	"gorm.io/gorm"

	"github.com/charley4805/project-pretzel/internal/entity"
	"github.com/charley4805/project-pretzel/internal/mapper"
	"github.com/charley4805/project-pretzel/internal/model"
	"github.com/charley4805/project-pretzel/internal/repository/contract"
	"github.com/charley4805/project-pretzel/internal/repository/specification"
)

type ProjectDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewProjectDocumentRepository(db *gorm.DB) contract.ProjectDocumentRepository {
	return &ProjectDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *ProjectDocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProjectDocumentRepositoryImpl) Create(ctx context.Context, doc *entity.ProjectDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProjectDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProjectDocument, error) {
	var models []*model.ProjectDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
