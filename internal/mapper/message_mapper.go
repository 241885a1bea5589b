package mapper

import (
	"github.com/charley4805/project-pretzel/internal/entity"
	"github.com/charley4805/project-pretzel/internal/model"
)

type MessageMapper struct{}

func NewMessageMapper() *MessageMapper {
	return &MessageMapper{}
}

func (m *MessageMapper) ToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}

	return &entity.Message{
		Id:          msg.Id,
		ProjectId:   msg.ProjectId,
		UserId:      msg.UserId,
		MessageType: msg.MessageType,
		Content:     msg.Content,
		Intent:      msg.Intent,
		CreatedAt:   msg.CreatedAt,
	}
}

func (m *MessageMapper) ToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}

	return &model.Message{
		Id:          msg.Id,
		ProjectId:   msg.ProjectId,
		UserId:      msg.UserId,
		MessageType: msg.MessageType,
		Content:     msg.Content,
		Intent:      msg.Intent,
		CreatedAt:   msg.CreatedAt,
	}
}

func (m *MessageMapper) ToEntities(msgs []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.ToEntity(msg)
	}
	return entities
}
