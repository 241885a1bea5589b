package assistant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/charley4805/project-pretzel/pkg/assistant/prompt"
	"github.com/charley4805/project-pretzel/pkg/assistant/retrieval"
	"github.com/charley4805/project-pretzel/pkg/assistant/session"
)

const (
	docSearchNoId = "I can search project documents, but no projectId was provided. " +
		"Try asking again from inside an active project."
	docSearchBadId = "I tried to look up this project's documents, but the projectId format " +
		"seems invalid. Please try again from an active project."
	docSearchNothing = "I searched the project documents but couldn't find anything clearly " +
		"related to your question. Try rephrasing or adding more detail."
)

// searchLimit caps how many matches feed the doc-search prompt.
const searchLimit = 5

// handleDocSearch answers from project documents only: substring search,
// newest-first, top 5, strict "answer from these documents" prompt.
func (e *Engine) handleDocSearch(ctx context.Context, sess *session.Session, query string) (string, error) {
	if sess.ProjectId == "" {
		return docSearchNoId, nil
	}

	projectId, err := uuid.Parse(sess.ProjectId)
	if err != nil {
		return docSearchBadId, nil
	}

	docs, err := e.docs.SearchDocuments(ctx, projectId, query, searchLimit)
	if err != nil {
		return "", fmt.Errorf("search documents: %w", err)
	}
	if len(docs) == 0 {
		return docSearchNothing, nil
	}

	scoreDocs := make([]retrieval.Document, len(docs))
	for i, d := range docs {
		scoreDocs[i] = retrieval.Document{Title: d.Title, Content: d.Content}
	}

	reply, err := e.provider.Generate(ctx, prompt.DocSearch(query, scoreDocs))
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}
	return reply, nil
}

// topDocs is how many scored documents ground the chat fallback.
const topDocs = 3

// handleChat is the generic assistant fallback. With an active project it
// runs the keyword-overlap scorer over the project's documents and grounds
// the prompt in the top hits; otherwise the raw user text goes straight to
// the model. A malformed project id simply means no grounding.
func (e *Engine) handleChat(ctx context.Context, sess *session.Session, userText string) (string, error) {
	top, err := e.topProjectDocs(ctx, sess.ProjectId, userText)
	if err != nil {
		return "", err
	}

	p := userText
	if len(top) > 0 {
		p = prompt.Grounded(userText, top)
	}

	reply, err := e.provider.Generate(ctx, p)
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}
	return reply, nil
}

func (e *Engine) topProjectDocs(ctx context.Context, projectIdStr, query string) ([]retrieval.Document, error) {
	if projectIdStr == "" {
		return nil, nil
	}
	projectId, err := uuid.Parse(projectIdStr)
	if err != nil {
		return nil, nil
	}

	docs, err := e.docs.FetchDocuments(ctx, projectId)
	if err != nil {
		return nil, fmt.Errorf("fetch documents: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	scoreDocs := make([]retrieval.Document, len(docs))
	for i, d := range docs {
		scoreDocs[i] = retrieval.Document{Title: d.Title, Content: d.Content}
	}
	return retrieval.TopK(scoreDocs, query, topDocs), nil
}
