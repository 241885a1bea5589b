package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/charley4805/project-pretzel/internal/dto"
	"github.com/charley4805/project-pretzel/internal/pkg/mailer"
	"github.com/charley4805/project-pretzel/internal/repository/unitofwork"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the reply digest queue and mirrors assistant
// replies to the asking user's email.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishAssistantReplyMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal reply digest message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindById(ctx, payload.UserId)
	if err != nil {
		log.Printf("[ERROR] Failed to get user %s: %v", payload.UserId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if user == nil {
		log.Printf("[WARN] User not found for reply digest: %s", payload.UserId)
		msg.Ack() // User deleted? Ack.
		return
	}

	project, err := uow.ProjectRepository().FindById(ctx, payload.ProjectId)
	if err != nil {
		log.Printf("[ERROR] Failed to get project %s: %v", payload.ProjectId, err)
		msg.Nack()
		return
	}

	projectName := "your project"
	if project != nil {
		projectName = project.Name
	}

	title := "Assistant replied in " + projectName
	body := "The project assistant answered your latest question. Open the project chat to read the full reply."

	if err := cs.emailService.SendNotificationEmail(user.Email, title, body); err != nil {
		log.Printf("[ERROR] Failed to send reply digest to %s: %v", user.Email, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
