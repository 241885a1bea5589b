package contract

import (
	"context"

	"github.com/charley4805/project-pretzel/internal/entity"
	"github.com/charley4805/project-pretzel/internal/repository/specification"
)

type ProjectDocumentRepository interface {
	Create(ctx context.Context, doc *entity.ProjectDocument) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProjectDocument, error)
}
