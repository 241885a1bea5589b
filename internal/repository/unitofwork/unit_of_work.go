package unitofwork

import (
	"context"

	"github.com/charley4805/project-pretzel/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	RoleRepository() contract.RoleRepository
	ProjectRepository() contract.ProjectRepository
	ProjectMemberRepository() contract.ProjectMemberRepository
	MessageRepository() contract.MessageRepository
	ProjectDocumentRepository() contract.ProjectDocumentRepository
	NotificationRepository() contract.NotificationRepository
}
