package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/charley4805/project-pretzel/internal/entity"
	"github.com/charley4805/project-pretzel/internal/mapper"
	"github.com/charley4805/project-pretzel/internal/model"
	"github.com/charley4805/project-pretzel/internal/repository/contract"
)

type ProjectMemberRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MemberMapper
}

func NewProjectMemberRepository(db *gorm.DB) contract.ProjectMemberRepository {
	return &ProjectMemberRepositoryImpl{
		db:     db,
		mapper: mapper.NewMemberMapper(),
	}
}

func (r *ProjectMemberRepositoryImpl) Create(ctx context.Context, member *entity.ProjectMember) error {
	m := r.mapper.ToModel(member)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	member.Id = m.Id
	member.CreatedAt = m.CreatedAt
	return nil
}

func (r *ProjectMemberRepositoryImpl) FindByProjectAndUser(ctx context.Context, projectId, userId uuid.UUID) (*entity.ProjectMember, error) {
	var m model.ProjectMember
	err := r.db.WithContext(ctx).
		Preload("Role").
		First(&m, "project_id = ? AND user_id = ?", projectId, userId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProjectMemberRepositoryImpl) FindAllByProject(ctx context.Context, projectId uuid.UUID) ([]*entity.ProjectMember, error) {
	var models []*model.ProjectMember
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("project_id = ?", projectId).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
