package controller

import (
	"resort-concierge-be/internal/dto"
	"resort-concierge-be/internal/pkg/logger"
	"resort-concierge-be/internal/repository/memory"
	"resort-concierge-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetChatLogs(ctx *fiber.Ctx) error
	ReloadCorpus(ctx *fiber.Ctx) error
}

type adminController struct {
	chatLogService   service.IChatLogService
	publisherService service.IPublisherService
	corpusRepo       *memory.CorpusRepository
	logger           logger.ILogger
}

func NewAdminController(
	chatLogService service.IChatLogService,
	publisherService service.IPublisherService,
	corpusRepo *memory.CorpusRepository,
	logger logger.ILogger,
) IAdminController {
	return &adminController{
		chatLogService:   chatLogService,
		publisherService: publisherService,
		corpusRepo:       corpusRepo,
		logger:           logger,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Get("chat-logs", c.GetChatLogs)
	h.Post("corpus/reload", c.ReloadCorpus)
}

func (c *adminController) GetChatLogs(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	if limit < 1 || limit > 500 {
		limit = 50
	}
	offset := ctx.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	phone := ctx.Query("phone")

	res, err := c.chatLogService.GetLogs(ctx.Context(), limit, offset, phone)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

// ReloadCorpus re-reads the corpus file, swaps the in-memory snapshot and
// schedules a semantic index rebuild. Responds as soon as the snapshot is
// live; the rebuild runs in the background.
func (c *adminController) ReloadCorpus(ctx *fiber.Ctx) error {
	snapshot, err := c.corpusRepo.Reload()
	if err != nil {
		c.logger.Error("admin", "corpus reload failed", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	if err := c.publisherService.PublishIndexRebuild(ctx.Context(), "corpus reload"); err != nil {
		return err
	}

	return ctx.JSON(dto.ReloadCorpusResponse{
		Entries: snapshot.Len(),
		Message: "corpus reloaded, index rebuild scheduled",
	})
}
