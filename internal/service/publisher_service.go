package service

import (
	"context"
	"encoding/json"

	"resort-concierge-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	PublishIndexRebuild(ctx context.Context, reason string) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

// PublishIndexRebuild asks the indexer to rebuild the semantic index from
// the current corpus snapshot.
func (ps *publisherService) PublishIndexRebuild(ctx context.Context, reason string) error {
	payload, err := json.Marshal(dto.IndexCorpusMessage{Reason: reason})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return ps.pubSub.Publish(ps.topicName, msg)
}
