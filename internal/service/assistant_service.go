package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/charley4805/project-pretzel/internal/dto"
	"github.com/charley4805/project-pretzel/internal/entity"
	"github.com/charley4805/project-pretzel/internal/repository/memory"
	"github.com/charley4805/project-pretzel/internal/repository/specification"
	"github.com/charley4805/project-pretzel/internal/repository/unitofwork"
	"github.com/charley4805/project-pretzel/pkg/assistant"
	"github.com/charley4805/project-pretzel/pkg/assistant/prompt"
	"github.com/charley4805/project-pretzel/pkg/assistant/session"
	"github.com/charley4805/project-pretzel/pkg/events"
	"github.com/charley4805/project-pretzel/pkg/llm"
	pktNats "github.com/charley4805/project-pretzel/pkg/nats"
)

// ErrNotProjectMember is returned when the caller has no membership on the
// target project. Controllers map it to 403.
var ErrNotProjectMember = errors.New("user is not a member of this project")

// historyLimit caps how many persisted turns are replayed into a session.
const historyLimit = 100

// replyPreviewLen caps the reply excerpt carried in events/notifications.
const replyPreviewLen = 140

type IAssistantService interface {
	Chat(ctx context.Context, projectId, userId uuid.UUID, request *dto.ChatRequest) (*dto.ChatResponse, error)
	GetHistory(ctx context.Context, projectId, userId uuid.UUID) (*dto.ChatHistoryResponse, error)
}

type assistantService struct {
	uowFactory       unitofwork.RepositoryFactory
	engine           *assistant.Engine
	membershipCache  *memory.MembershipCache
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	engineLogger     *log.Logger
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	membershipCache *memory.MembershipCache,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IAssistantService {
	engineLogger := initEngineLogger()
	store := newAssistantStore(uowFactory)
	engine := assistant.NewEngine(store, store, llmProvider, engineLogger)

	return &assistantService{
		uowFactory:       uowFactory,
		engine:           engine,
		membershipCache:  membershipCache,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		engineLogger:     engineLogger,
	}
}

func initEngineLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "assistant_engine.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[ASSISTANT] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

// resolveMembership returns the caller's membership on the project, serving
// repeated lookups from the in-memory cache.
func (s *assistantService) resolveMembership(ctx context.Context, projectId, userId uuid.UUID) (*entity.ProjectMember, error) {
	if member, found := s.membershipCache.Get(projectId, userId); found {
		return member, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	member, err := uow.ProjectMemberRepository().FindByProjectAndUser(ctx, projectId, userId)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrNotProjectMember
	}

	s.membershipCache.Save(member)
	return member, nil
}

// loadHistory replays the most recent turns of the project conversation,
// oldest first.
func (s *assistantService) loadHistory(ctx context.Context, projectId uuid.UUID) ([]*entity.Message, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByProjectId{ProjectId: projectId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: historyLimit},
	)
	if err != nil {
		return nil, err
	}

	// Fetched newest-first for the cap, replayed oldest-first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (s *assistantService) Chat(ctx context.Context, projectId, userId uuid.UUID, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	member, err := s.resolveMembership(ctx, projectId, userId)
	if err != nil {
		return nil, err
	}

	history, err := s.loadHistory(ctx, projectId)
	if err != nil {
		return nil, err
	}

	turns := make([]session.Turn, len(history))
	for i, m := range history {
		turns[i] = session.Turn{Role: m.MessageType, Text: m.Content}
	}

	sess := session.New(turns, projectId.String(), userId.String(), member.RoleKey)

	result, err := s.engine.HandleTurn(ctx, sess, request.Message)
	if err != nil {
		return nil, fmt.Errorf("handle turn: %w", err)
	}

	userMessage := &entity.Message{
		Id:          uuid.New(),
		ProjectId:   projectId,
		UserId:      userId,
		MessageType: entity.MessageTypeUser,
		Content:     request.Message,
		Intent:      string(result.Intent),
		CreatedAt:   time.Now(),
	}
	assistantMessage := &entity.Message{
		Id:          uuid.New(),
		ProjectId:   projectId,
		UserId:      userId,
		MessageType: entity.MessageTypeAssistant,
		Content:     result.Reply,
		Intent:      string(result.Intent),
		CreatedAt:   time.Now(),
	}

	// Both turns commit or neither does.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}
	if err := uow.MessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishReply(ctx, projectId, userId, assistantMessage, string(result.Intent))

	return &dto.ChatResponse{
		ProjectId: projectId,
		Intent:    string(result.Intent),
		Sent:      toMessageDTO(userMessage),
		Reply:     toMessageDTO(assistantMessage),
	}, nil
}

// publishReply fans the persisted reply out to the notification bus and the
// email digest worker. Both are best-effort: a dead bus never fails the chat.
func (s *assistantService) publishReply(ctx context.Context, projectId, userId uuid.UUID, reply *entity.Message, intent string) {
	preview := prompt.Truncate(reply.Content, replyPreviewLen)

	if s.eventPublisher != nil {
		evt := events.NewAssistantReply(projectId, userId, intent, preview)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.engineLogger.Printf("[WARN] Failed to publish ASSISTANT_REPLY event: %v", err)
		}
	}

	if s.publisherService != nil {
		payload := dto.PublishAssistantReplyMessage{
			MessageId: reply.Id,
			ProjectId: projectId,
			UserId:    userId,
		}
		raw, err := json.Marshal(payload)
		if err != nil {
			s.engineLogger.Printf("[WARN] Failed to marshal reply digest payload: %v", err)
			return
		}
		if err := s.publisherService.Publish(ctx, raw); err != nil {
			s.engineLogger.Printf("[WARN] Failed to queue reply digest: %v", err)
		}
	}
}

func (s *assistantService) GetHistory(ctx context.Context, projectId, userId uuid.UUID) (*dto.ChatHistoryResponse, error) {
	if _, err := s.resolveMembership(ctx, projectId, userId); err != nil {
		return nil, err
	}

	history, err := s.loadHistory(ctx, projectId)
	if err != nil {
		return nil, err
	}

	messages := make([]dto.ChatMessageDTO, len(history))
	for i, m := range history {
		messages[i] = *toMessageDTO(m)
	}

	return &dto.ChatHistoryResponse{
		ProjectId: projectId,
		Messages:  messages,
	}, nil
}

func toMessageDTO(m *entity.Message) *dto.ChatMessageDTO {
	return &dto.ChatMessageDTO{
		Id:        m.Id,
		Role:      m.MessageType,
		Content:   m.Content,
		Intent:    m.Intent,
		CreatedAt: m.CreatedAt,
	}
}
