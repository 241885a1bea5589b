package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charley4805/project-pretzel/pkg/assistant/access"
	"github.com/charley4805/project-pretzel/pkg/assistant/router"
	"github.com/charley4805/project-pretzel/pkg/assistant/session"
	"github.com/charley4805/project-pretzel/pkg/llm"
)

// stubLLM captures every prompt and returns a canned reply.
type stubLLM struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	if len(history) > 0 {
		s.prompts = append(s.prompts, history[len(history)-1].Content)
	}
	return s.reply, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, _ ...llm.Option) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

type fakeDocs struct {
	docs []Document
	err  error
}

func (f *fakeDocs) FetchDocuments(ctx context.Context, projectId uuid.UUID) ([]Document, error) {
	return f.docs, f.err
}

func (f *fakeDocs) SearchDocuments(ctx context.Context, projectId uuid.UUID, query string, limit int) ([]Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	q := strings.ToLower(query)
	var out []Document
	for _, d := range f.docs {
		text := strings.ToLower(d.Title + "\n" + d.Content)
		for token := range tokenSet(q) {
			if strings.Contains(text, token) {
				out = append(out, d)
				break
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func tokenSet(q string) map[string]bool {
	set := map[string]bool{}
	for _, w := range strings.Fields(q) {
		set[strings.Trim(w, "?.,!")] = true
	}
	return set
}

type fakeProjects struct {
	project *Project
	members []Member
	err     error
}

func (f *fakeProjects) GetProject(ctx context.Context, projectId uuid.UUID) (*Project, error) {
	return f.project, f.err
}

func (f *fakeProjects) ListMembers(ctx context.Context, projectId uuid.UUID) ([]Member, error) {
	return f.members, f.err
}

func newTestEngine(docs *fakeDocs, projects *fakeProjects, provider *stubLLM) *Engine {
	if docs == nil {
		docs = &fakeDocs{}
	}
	if projects == nil {
		projects = &fakeProjects{}
	}
	if provider == nil {
		provider = &stubLLM{reply: "model reply"}
	}
	return NewEngine(docs, projects, provider, nil)
}

func handle(t *testing.T, e *Engine, sess *session.Session, text string) *Result {
	t.Helper()
	res, err := e.HandleTurn(context.Background(), sess, text)
	require.NoError(t, err)
	return res
}

func TestHandleTurnBoardFoot(t *testing.T) {
	e := newTestEngine(nil, nil, nil)

	t.Run("single board", func(t *testing.T) {
		sess := session.New(nil, "", "", string(access.RoleForeman))
		res := handle(t, e, sess, "board feet for 2x10x16")
		assert.Equal(t, router.IntentBoardFoot, res.Intent)
		assert.Contains(t, res.Reply, "Board feet per board: 26.67 bf")
		assert.Contains(t, res.Reply, "Total board feet: 26.67 bf")
	})

	t.Run("ten boards", func(t *testing.T) {
		sess := session.New(nil, "", "", string(access.RoleForeman))
		res := handle(t, e, sess, "board feet for 10 boards of 2x6x12")
		assert.Contains(t, res.Reply, "Quantity: 10")
		assert.Contains(t, res.Reply, "Total board feet: 120.00 bf")
	})

	t.Run("parse miss is guided", func(t *testing.T) {
		sess := session.New(nil, "", "", string(access.RoleForeman))
		res := handle(t, e, sess, "board feet please")
		assert.Contains(t, res.Reply, "couldn't parse")
		assert.Contains(t, res.Reply, "2x10x16")
	})
}

func TestHandleTurnSheet(t *testing.T) {
	e := newTestEngine(nil, nil, nil)
	sess := session.New(nil, "", "", string(access.RoleForeman))

	res := handle(t, e, sess, "how many sheets of drywall for 720 sq ft")
	assert.Equal(t, router.IntentSheet, res.Intent)
	assert.Contains(t, res.Reply, "Raw sheet count (no rounding): 22.50")
	assert.Contains(t, res.Reply, "Recommended sheets (rounded up): 23")
}

func TestHandleTurnMeasure(t *testing.T) {
	e := newTestEngine(nil, nil, nil)
	sess := session.New(nil, "", "", string(access.RoleForeman))

	res := handle(t, e, sess, `convert 9' 7"`)
	assert.Equal(t, router.IntentMeasure, res.Intent)
	assert.Contains(t, res.Reply, "Total inches: 115.00 in")
	assert.Contains(t, res.Reply, `Feet & inches: 9' 7.00"`)
}

func TestHandleTurnCostGate(t *testing.T) {
	e := newTestEngine(nil, nil, nil)

	t.Run("homeowner refused before parsing", func(t *testing.T) {
		sess := session.New(nil, "", "", string(access.RoleHomeowner))
		res := handle(t, e, sess, "cost of 40 sheets at $14")
		assert.Equal(t, router.IntentCost, res.Intent)
		assert.Contains(t, res.Reply, "restricted to the Project Manager")
		assert.NotContains(t, res.Reply, "$560")
	})

	t.Run("estimator generic cost", func(t *testing.T) {
		sess := session.New(nil, "", "", string(access.RoleEstimator))
		res := handle(t, e, sess, "cost of 40 sheets at $14")
		assert.Contains(t, res.Reply, "Quantity: 40")
		assert.Contains(t, res.Reply, "Price per unit: $14.00")
		assert.Contains(t, res.Reply, "Estimated material cost: $560.00")
	})

	t.Run("estimator board-foot cost", func(t *testing.T) {
		sess := session.New(nil, "", "", string(access.RoleEstimator))
		res := handle(t, e, sess, "cost for 16 boards of 2x10x16 at $2.10 per bf")
		assert.Contains(t, res.Reply, "Total board feet: 426.67 bf")
		assert.Contains(t, res.Reply, "Price per bf: $2.10")
		assert.Contains(t, res.Reply, "Estimated material cost: $896.00")
	})

	t.Run("bf vocabulary without price", func(t *testing.T) {
		sess := session.New(nil, "", "", string(access.RoleProjectManager))
		res := handle(t, e, sess, "cost for 16 boards of 2x10x16 in bf")
		assert.Contains(t, res.Reply, "couldn't parse a price")
	})
}

func TestHandleTurnProjectInfo(t *testing.T) {
	projectId := uuid.New()
	project := &Project{
		Id:     projectId,
		Name:   "Maple Street Remodel",
		Status: "active",
	}

	t.Run("no project id", func(t *testing.T) {
		e := newTestEngine(nil, &fakeProjects{project: project}, nil)
		sess := session.New(nil, "", "", string(access.RoleProjectManager))
		res := handle(t, e, sess, "project overview")
		assert.Contains(t, res.Reply, "no projectId was provided")
	})

	t.Run("malformed project id", func(t *testing.T) {
		e := newTestEngine(nil, &fakeProjects{project: project}, nil)
		sess := session.New(nil, "not-a-uuid", "", string(access.RoleProjectManager))
		res := handle(t, e, sess, "project overview")
		assert.Contains(t, res.Reply, "format seems invalid")
	})

	t.Run("project not found", func(t *testing.T) {
		e := newTestEngine(nil, &fakeProjects{}, nil)
		sess := session.New(nil, projectId.String(), "", string(access.RoleProjectManager))
		res := handle(t, e, sess, "project overview")
		assert.Contains(t, res.Reply, "couldn't find it")
	})

	t.Run("limited view for non manager", func(t *testing.T) {
		members := []Member{{RoleName: "Foreman", UserId: uuid.New()}}
		e := newTestEngine(nil, &fakeProjects{project: project, members: members}, nil)
		sess := session.New(nil, projectId.String(), "", string(access.RoleHomeowner))
		res := handle(t, e, sess, "project overview")
		assert.Contains(t, res.Reply, "Name: Maple Street Remodel")
		assert.Contains(t, res.Reply, "No description provided.")
		assert.Contains(t, res.Reply, "Team details are limited based on your role.")
		assert.NotContains(t, res.Reply, "user id:")
	})

	t.Run("manager sees members", func(t *testing.T) {
		memberId := uuid.New()
		members := []Member{
			{RoleName: "Foreman", UserId: memberId},
			{RoleName: "", UserId: uuid.New()},
		}
		e := newTestEngine(nil, &fakeProjects{project: project, members: members}, nil)
		sess := session.New(nil, projectId.String(), "", string(access.RoleProjectManager))
		res := handle(t, e, sess, "project overview")
		assert.Contains(t, res.Reply, "Project Overview (PM view):")
		assert.Contains(t, res.Reply, "- Foreman (user id: "+memberId.String()+")")
		assert.Contains(t, res.Reply, "- No role assigned")
	})

	t.Run("manager with empty roster", func(t *testing.T) {
		e := newTestEngine(nil, &fakeProjects{project: project}, nil)
		sess := session.New(nil, projectId.String(), "", string(access.RoleProjectManager))
		res := handle(t, e, sess, "project overview")
		assert.Contains(t, res.Reply, "No members found.")
	})

	t.Run("store failure surfaces as error", func(t *testing.T) {
		e := newTestEngine(nil, &fakeProjects{err: errors.New("db down")}, nil)
		sess := session.New(nil, projectId.String(), "", string(access.RoleProjectManager))
		_, err := e.HandleTurn(context.Background(), sess, "project overview")
		require.Error(t, err)
		// The failed turn keeps the user turn but never fabricates a reply.
		assert.Equal(t, 1, sess.Len())
	})
}

func TestHandleTurnDocSearch(t *testing.T) {
	projectId := uuid.New()
	docs := []Document{
		{Title: "Roof inspection", Content: "leak near skylight"},
	}

	t.Run("prompt is document-bound", func(t *testing.T) {
		provider := &stubLLM{reply: "The roof inspection notes a leak near the skylight."}
		e := newTestEngine(&fakeDocs{docs: docs}, nil, provider)
		sess := session.New(nil, projectId.String(), "", string(access.RoleForeman))

		res := handle(t, e, sess, "find the roof document")
		assert.Equal(t, router.IntentDocSearch, res.Intent)
		assert.Equal(t, "The roof inspection notes a leak near the skylight.", res.Reply)

		require.Len(t, provider.prompts, 1)
		assert.Contains(t, provider.prompts[0], "Use ONLY the following project documents")
		assert.Contains(t, provider.prompts[0], "Roof inspection")
	})

	t.Run("no matches", func(t *testing.T) {
		e := newTestEngine(&fakeDocs{}, nil, nil)
		sess := session.New(nil, projectId.String(), "", string(access.RoleForeman))
		res := handle(t, e, sess, "search the docs for the permit")
		assert.Contains(t, res.Reply, "couldn't find anything clearly")
	})

	t.Run("no project id", func(t *testing.T) {
		e := newTestEngine(&fakeDocs{docs: docs}, nil, nil)
		sess := session.New(nil, "", "", string(access.RoleForeman))
		res := handle(t, e, sess, "find the roof document")
		assert.Contains(t, res.Reply, "no projectId was provided")
	})
}

func TestHandleTurnChatFallback(t *testing.T) {
	projectId := uuid.New()

	t.Run("grounded when documents overlap", func(t *testing.T) {
		provider := &stubLLM{reply: "Grounded answer."}
		e := newTestEngine(&fakeDocs{docs: []Document{
			{Title: "Roof inspection", Content: "leak near skylight"},
			{Title: "Painting schedule", Content: "interior colors"},
		}}, nil, provider)
		sess := session.New(nil, projectId.String(), "", string(access.RoleForeman))

		res := handle(t, e, sess, "hello, what should I know about the roof leak?")
		assert.Equal(t, router.IntentChat, res.Intent)
		require.Len(t, provider.prompts, 1)
		assert.Contains(t, provider.prompts[0], "do NOT invent project-specific facts")
		assert.Contains(t, provider.prompts[0], "Roof inspection")
	})

	t.Run("raw prompt without project", func(t *testing.T) {
		provider := &stubLLM{reply: "Hi!"}
		e := newTestEngine(nil, nil, provider)
		sess := session.New(nil, "", "", string(access.RoleForeman))

		handle(t, e, sess, "hello there")
		require.Len(t, provider.prompts, 1)
		assert.Equal(t, "hello there", provider.prompts[0])
	})

	t.Run("malformed project id means no grounding", func(t *testing.T) {
		provider := &stubLLM{reply: "Hi!"}
		e := newTestEngine(&fakeDocs{err: errors.New("must not be called")}, nil, provider)
		sess := session.New(nil, "garbage", "", string(access.RoleForeman))

		res := handle(t, e, sess, "hello there")
		assert.Equal(t, "Hi!", res.Reply)
	})

	t.Run("provider failure is an error", func(t *testing.T) {
		provider := &stubLLM{err: errors.New("model offline")}
		e := newTestEngine(nil, nil, provider)
		sess := session.New(nil, "", "", string(access.RoleForeman))

		_, err := e.HandleTurn(context.Background(), sess, "hello there")
		require.Error(t, err)
		assert.Equal(t, 1, sess.Len())
	})
}

func TestHandleTurnAppendsBothTurns(t *testing.T) {
	e := newTestEngine(nil, nil, nil)
	sess := session.New([]session.Turn{
		{Role: session.RoleUser, Text: "earlier question"},
		{Role: session.RoleAssistant, Text: "earlier answer"},
	}, "", "", string(access.RoleForeman))

	res := handle(t, e, sess, "board feet for 2x10x16")

	turns := sess.Turns()
	require.Len(t, turns, 4)
	assert.Equal(t, session.RoleUser, turns[2].Role)
	assert.Equal(t, "board feet for 2x10x16", turns[2].Text)
	assert.Equal(t, session.RoleAssistant, turns[3].Role)
	assert.Equal(t, res.Reply, turns[3].Text)
}
