package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/charley4805/project-pretzel/internal/entity"
)

type ProjectMemberRepository interface {
	Create(ctx context.Context, member *entity.ProjectMember) error

	// FindByProjectAndUser returns the membership row (role preloaded),
	// or nil when the user is not on the project.
	FindByProjectAndUser(ctx context.Context, projectId, userId uuid.UUID) (*entity.ProjectMember, error)

	// FindAllByProject returns all memberships of a project, roles preloaded.
	FindAllByProject(ctx context.Context, projectId uuid.UUID) ([]*entity.ProjectMember, error)
}
