// Package assistant implements the conversational request router for
// construction projects: intent classification, the specialized calculators
// and retrieval handlers behind each intent, and the generative fallback.
package assistant

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Document is a project document as fetched from the collaborator store.
type Document struct {
	Id        uuid.UUID
	ProjectId uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
}

// Project is the read-only project view the engine needs.
type Project struct {
	Id          uuid.UUID
	Name        string
	Description string
	Status      string
}

// Member is a project member as (role name, user id).
type Member struct {
	RoleName string
	UserId   uuid.UUID
}

// DocumentStore exposes the document side of the collaborator store.
// Both methods return documents newest-first.
type DocumentStore interface {
	// FetchDocuments returns all documents of a project.
	FetchDocuments(ctx context.Context, projectId uuid.UUID) ([]Document, error)

	// SearchDocuments returns documents whose title or content contains the
	// query, case-insensitive, capped at limit.
	SearchDocuments(ctx context.Context, projectId uuid.UUID, query string, limit int) ([]Document, error)
}

// ProjectStore exposes the project/member side of the collaborator store.
type ProjectStore interface {
	// GetProject returns the project, or nil if no such project exists.
	GetProject(ctx context.Context, projectId uuid.UUID) (*Project, error)

	// ListMembers returns the project's members with their resolved role names.
	ListMembers(ctx context.Context, projectId uuid.UUID) ([]Member, error)
}
