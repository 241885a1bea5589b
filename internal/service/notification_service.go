package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/charley4805/project-pretzel/internal/dto"
	"github.com/charley4805/project-pretzel/internal/entity"
	"github.com/charley4805/project-pretzel/internal/pkg/logger"
	"github.com/charley4805/project-pretzel/internal/repository/specification"
	"github.com/charley4805/project-pretzel/internal/repository/unitofwork"
	"github.com/charley4805/project-pretzel/pkg/events"
	pktNats "github.com/charley4805/project-pretzel/pkg/nats"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userId uuid.UUID, notification *entity.Notification)
}

type INotificationService interface {
	Start()
	List(ctx context.Context, userId uuid.UUID) (*dto.NotificationListResponse, error)
	MarkRead(ctx context.Context, userId, notificationId uuid.UUID) error
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	sub *pktNats.Subscriber,
	delivery NotificationDelivery,
	log logger.ILogger,
) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *notificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *notificationService) handleEvent(ctx context.Context, event events.Event) error {
	// NATS subjects arrive as "events.<TYPE>".
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	switch typeCode {
	case events.TypeAssistantReply:
		return s.handleAssistantReply(ctx, event)
	default:
		// Unknown types are acked, not retried.
		s.logger.Debug("NotificationService", fmt.Sprintf("Ignoring event type '%s'", typeCode), nil)
		return nil
	}
}

func (s *notificationService) handleAssistantReply(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	userIdStr, _ := payload["user_id"].(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		s.logger.Warn("NotificationService", "ASSISTANT_REPLY event without valid user_id", map[string]interface{}{"payload": payload})
		return nil
	}

	preview, _ := payload["preview"].(string)
	intent, _ := payload["intent"].(string)

	notification := &entity.Notification{
		Id:       uuid.New(),
		UserId:   userId,
		Title:    "Assistant replied",
		Message:  preview,
		Metadata: payload,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		s.logger.Error("NotificationService", "Failed to save notification", map[string]interface{}{"error": err})
		return err // NATS will retry
	}

	if s.delivery != nil {
		s.delivery.Send(userId, notification)
	}

	s.logger.Info("NotificationService", "Assistant reply notification delivered", map[string]interface{}{
		"user_id": userId.String(),
		"intent":  intent,
	})
	return nil
}

func (s *notificationService) List(ctx context.Context, userId uuid.UUID) (*dto.NotificationListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.ByUserId{UserId: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 50},
	)
	if err != nil {
		return nil, err
	}

	unread, err := uow.NotificationRepository().CountUnread(ctx, userId)
	if err != nil {
		return nil, err
	}

	out := make([]dto.NotificationDTO, len(notifications))
	for i, n := range notifications {
		out[i] = dto.NotificationDTO{
			Id:        n.Id,
			Title:     n.Title,
			Message:   n.Message,
			Metadata:  n.Metadata,
			IsRead:    n.IsRead,
			ReadAt:    n.ReadAt,
			CreatedAt: n.CreatedAt,
		}
	}

	return &dto.NotificationListResponse{
		Notifications: out,
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userId, notificationId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkRead(ctx, notificationId, userId)
}
