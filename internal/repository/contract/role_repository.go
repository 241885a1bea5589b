package contract

import (
	"context"

	"github.com/charley4805/project-pretzel/internal/entity"
	"github.com/charley4805/project-pretzel/internal/repository/specification"
)

type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Role, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Role, error)
}
