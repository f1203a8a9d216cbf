package mapper

import (
	"resort-concierge-be/internal/entity"
	"resort-concierge-be/internal/model"
)

type ChatLogMapper struct{}

func NewChatLogMapper() *ChatLogMapper {
	return &ChatLogMapper{}
}

func (m *ChatLogMapper) ToEntity(e *model.ChatLog) *entity.ChatLog {
	if e == nil {
		return nil
	}
	return &entity.ChatLog{
		Id:        e.Id,
		Phone:     e.Phone,
		Question:  e.Question,
		Answer:    e.Answer,
		Timestamp: e.Timestamp,
	}
}

func (m *ChatLogMapper) ToModel(e *entity.ChatLog) *model.ChatLog {
	if e == nil {
		return nil
	}
	return &model.ChatLog{
		Id:        e.Id,
		Phone:     e.Phone,
		Question:  e.Question,
		Answer:    e.Answer,
		Timestamp: e.Timestamp,
	}
}

func (m *ChatLogMapper) ToEntities(logs []*model.ChatLog) []*entity.ChatLog {
	entities := make([]*entity.ChatLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
