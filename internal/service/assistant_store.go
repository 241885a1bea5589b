package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/charley4805/project-pretzel/internal/repository/specification"
	"github.com/charley4805/project-pretzel/internal/repository/unitofwork"
	"github.com/charley4805/project-pretzel/pkg/assistant"
)

// assistantStore adapts the repository layer to the engine's store contracts.
// Documents always come back newest-first so the retrieval tie-break stays
// reproducible.
type assistantStore struct {
	uowFactory unitofwork.RepositoryFactory
}

func newAssistantStore(uowFactory unitofwork.RepositoryFactory) *assistantStore {
	return &assistantStore{uowFactory: uowFactory}
}

var _ assistant.DocumentStore = (*assistantStore)(nil)
var _ assistant.ProjectStore = (*assistantStore)(nil)

func (s *assistantStore) FetchDocuments(ctx context.Context, projectId uuid.UUID) ([]assistant.Document, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.ProjectDocumentRepository().FindAll(ctx,
		specification.ByProjectId{ProjectId: projectId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]assistant.Document, len(docs))
	for i, d := range docs {
		out[i] = assistant.Document{
			Id:        d.Id,
			ProjectId: d.ProjectId,
			Title:     d.Title,
			Content:   d.Content,
			CreatedAt: d.CreatedAt,
		}
	}
	return out, nil
}

func (s *assistantStore) SearchDocuments(ctx context.Context, projectId uuid.UUID, query string, limit int) ([]assistant.Document, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.ProjectDocumentRepository().FindAll(ctx,
		specification.ByProjectId{ProjectId: projectId},
		specification.TitleOrContentILike{Query: query},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	out := make([]assistant.Document, len(docs))
	for i, d := range docs {
		out[i] = assistant.Document{
			Id:        d.Id,
			ProjectId: d.ProjectId,
			Title:     d.Title,
			Content:   d.Content,
			CreatedAt: d.CreatedAt,
		}
	}
	return out, nil
}

func (s *assistantStore) GetProject(ctx context.Context, projectId uuid.UUID) (*assistant.Project, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := uow.ProjectRepository().FindById(ctx, projectId)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}
	return &assistant.Project{
		Id:          project.Id,
		Name:        project.Name,
		Description: project.Description,
		Status:      project.Status,
	}, nil
}

func (s *assistantStore) ListMembers(ctx context.Context, projectId uuid.UUID) ([]assistant.Member, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	members, err := uow.ProjectMemberRepository().FindAllByProject(ctx, projectId)
	if err != nil {
		return nil, err
	}

	out := make([]assistant.Member, len(members))
	for i, m := range members {
		out[i] = assistant.Member{
			RoleName: m.RoleName,
			UserId:   m.UserId,
		}
	}
	return out, nil
}
