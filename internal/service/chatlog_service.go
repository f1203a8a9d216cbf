package service

import (
	"context"

	"resort-concierge-be/internal/dto"
	"resort-concierge-be/internal/entity"
	"resort-concierge-be/internal/pkg/logger"
	"resort-concierge-be/internal/repository/specification"
	"resort-concierge-be/internal/repository/unitofwork"
)

type IChatLogService interface {
	Record(ctx context.Context, phone, question, answer string)
	GetLogs(ctx context.Context, limit, offset int, phone string) (*dto.GetChatLogsResponse, error)
}

type chatLogService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewChatLogService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IChatLogService {
	return &chatLogService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Record appends one exchange row. Logging is best-effort: a storage
// failure is reported in the logs but never propagated, because the guest
// already has an answer and must receive it.
func (s *chatLogService) Record(ctx context.Context, phone, question, answer string) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	log := &entity.ChatLog{
		Phone:    phone,
		Question: question,
		Answer:   answer,
	}

	if err := uow.ChatLogRepository().Create(ctx, log); err != nil {
		s.logger.Warn("chatlog", "failed to record exchange", map[string]interface{}{
			"phone": phone,
			"error": err.Error(),
		})
		return
	}

	s.logger.Debug("chatlog", "exchange recorded", map[string]interface{}{
		"id":    log.Id,
		"phone": phone,
	})
}

// GetLogs returns exchanges newest-first with the total row count for
// pagination. An empty phone returns all requesters.
func (s *chatLogService) GetLogs(ctx context.Context, limit, offset int, phone string) (*dto.GetChatLogsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatLogRepository()

	specs := []specification.Specification{}
	countSpecs := []specification.Specification{}
	if phone != "" {
		specs = append(specs, specification.ByPhone{Phone: phone})
		countSpecs = append(countSpecs, specification.ByPhone{Phone: phone})
	}
	specs = append(specs,
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)

	logs, err := repo.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	total, err := repo.Count(ctx, countSpecs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ChatLogResponse, 0, len(logs))
	for _, log := range logs {
		items = append(items, dto.ChatLogResponse{
			Id:        log.Id,
			Phone:     log.Phone,
			Question:  log.Question,
			Answer:    log.Answer,
			Timestamp: log.Timestamp,
		})
	}

	return &dto.GetChatLogsResponse{
		Total: total,
		Logs:  items,
	}, nil
}
