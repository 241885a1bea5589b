package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/charley4805/project-pretzel/internal/entity"
	"github.com/charley4805/project-pretzel/internal/model"
	"github.com/charley4805/project-pretzel/internal/repository/contract"
	"github.com/charley4805/project-pretzel/internal/repository/specification"
)

type RoleRepositoryImpl struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) contract.RoleRepository {
	return &RoleRepositoryImpl{db: db}
}

func (r *RoleRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RoleRepositoryImpl) Create(ctx context.Context, role *entity.Role) error {
	m := &model.Role{Id: role.Id, Key: role.Key, Name: role.Name}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	role.Id = m.Id
	return nil
}

func (r *RoleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Role, error) {
	var m model.Role
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity.Role{Id: m.Id, Key: m.Key, Name: m.Name}, nil
}

func (r *RoleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Role, error) {
	var models []*model.Role
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	roles := make([]*entity.Role, len(models))
	for i, m := range models {
		roles[i] = &entity.Role{Id: m.Id, Key: m.Key, Name: m.Name}
	}
	return roles, nil
}
