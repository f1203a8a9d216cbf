package controller

import (
	"errors"

	"resort-concierge-be/internal/constant"
	"resort-concierge-be/internal/dto"
	"resort-concierge-be/internal/pkg/logger"
	"resort-concierge-be/internal/service"
	"resort-concierge-be/pkg/rag"

	"github.com/gofiber/fiber/v2"
)

type IQueryController interface {
	RegisterRoutes(r fiber.Router)
	Liveness(ctx *fiber.Ctx) error
	Query(ctx *fiber.Ctx) error
}

type queryController struct {
	resolverService service.IResolverService
	logger          logger.ILogger
}

func NewQueryController(resolverService service.IResolverService, logger logger.ILogger) IQueryController {
	return &queryController{
		resolverService: resolverService,
		logger:          logger,
	}
}

func (c *queryController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Liveness)
	r.Post("/query", c.Query)
	// legacy alias, kept for existing room tablets
	r.Post("/chat", c.Query)
}

func (c *queryController) Liveness(ctx *fiber.Ctx) error {
	return ctx.SendString(constant.LivenessMessage)
}

func (c *queryController) Query(ctx *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing or invalid 'question' field",
		})
	}

	answer, err := c.resolverService.Resolve(ctx.Context(), req.Question, req.Phone)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuestion) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Missing or invalid 'question' field",
			})
		}

		var retrievalErr *rag.RetrievalError
		var generationErr *rag.GenerationError
		if errors.As(err, &retrievalErr) || errors.As(err, &generationErr) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(dto.QueryResponse{
				Answer: constant.GenericServerError,
			})
		}

		c.logger.Error("controller", "unexpected resolution failure", map[string]interface{}{
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.QueryResponse{
			Answer: constant.GenericServerError,
		})
	}

	return ctx.JSON(dto.QueryResponse{Answer: answer})
}
