package contract

import (
	"context"

	"resort-concierge-be/internal/entity"
	"resort-concierge-be/internal/repository/specification"
)

type ChatLogRepository interface {
	Create(ctx context.Context, log *entity.ChatLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
