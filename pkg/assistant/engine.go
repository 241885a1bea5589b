package assistant

import (
	"context"
	"fmt"
	"log"

	"github.com/charley4805/project-pretzel/pkg/assistant/router"
	"github.com/charley4805/project-pretzel/pkg/assistant/session"
	"github.com/charley4805/project-pretzel/pkg/llm"
)

// Result is the outcome of a single handled turn.
type Result struct {
	Reply  string
	Intent router.Intent
}

// Engine routes a user turn to one handler and produces the assistant reply.
// It is stateless across requests; every dependency is injected, so a fake
// LLM provider or store makes the whole engine deterministic under test.
type Engine struct {
	docs     DocumentStore
	projects ProjectStore
	provider llm.LLMProvider
	logger   *log.Logger
}

// NewEngine wires the engine. The logger is optional; nil discards.
func NewEngine(docs DocumentStore, projects ProjectStore, provider llm.LLMProvider, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(discard{}, "", 0)
	}
	return &Engine{
		docs:     docs,
		projects: projects,
		provider: provider,
		logger:   logger,
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// HandleTurn appends the new user utterance to the session, routes it,
// executes exactly one handler, and appends the handler's reply as the
// assistant turn. Parse misses, denied role gates and unresolvable project
// references come back as normal replies; only collaborator failures (store
// or completion call) return an error, in which case no assistant turn is
// appended.
func (e *Engine) HandleTurn(ctx context.Context, sess *session.Session, userText string) (*Result, error) {
	sess.Append(session.RoleUser, userText)

	text := session.StripLabel(userText)
	intent := router.Route(text)
	e.logger.Printf("[ENGINE] intent=%s project=%q role=%q", intent, sess.ProjectId, sess.RoleKey)

	var (
		reply string
		err   error
	)
	switch intent {
	case router.IntentProjectInfo:
		reply, err = e.handleProjectInfo(ctx, sess)
	case router.IntentDocSearch:
		reply, err = e.handleDocSearch(ctx, sess, text)
	case router.IntentCost:
		reply = e.handleCost(sess, text)
	case router.IntentBoardFoot:
		reply = e.handleBoardFoot(text)
	case router.IntentSheet:
		reply = e.handleSheet(text)
	case router.IntentMeasure:
		reply = e.handleMeasure(text)
	default:
		reply, err = e.handleChat(ctx, sess, text)
	}
	if err != nil {
		return nil, fmt.Errorf("assistant %s handler: %w", intent, err)
	}

	sess.Append(session.RoleAssistant, reply)

	return &Result{Reply: reply, Intent: intent}, nil
}
