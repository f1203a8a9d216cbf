package bootstrap

import (
	"resort-concierge-be/internal/config"
	"resort-concierge-be/internal/constant"
	"resort-concierge-be/internal/controller"
	"resort-concierge-be/internal/pkg/logger"
	"resort-concierge-be/internal/repository/memory"
	"resort-concierge-be/internal/repository/unitofwork"
	"resort-concierge-be/internal/service"
	"resort-concierge-be/pkg/embedding"
	"resort-concierge-be/pkg/lexical"
	"resort-concierge-be/pkg/llm/ollama"
	"resort-concierge-be/pkg/rag/guard"
	"resort-concierge-be/pkg/rag/response"
	"resort-concierge-be/pkg/rag/search"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	QueryController controller.IQueryController
	AdminController controller.IAdminController

	// Background services (exposed for main.go to run)
	IndexerService   service.IIndexerService
	PublisherService service.IPublisherService

	// Shared state
	CorpusRepository *memory.CorpusRepository
	Logger           logger.ILogger
}

func NewContainer(db *gorm.DB, corpusRepo *memory.CorpusRepository, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI backends
	embeddingProvider := embedding.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.EmbeddingModel,
		cfg.Ai.RequestTimeout,
	)
	llmProvider := ollama.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.LLMModel,
		cfg.Ai.RequestTimeout,
	)

	// 4. Pipeline stages
	corrector := lexical.NewCorrector(cfg.Resolver.MatchThreshold)
	retriever := search.NewOrchestrator(uowFactory, embeddingProvider, sysLogger)
	validator := guard.NewValidator()
	generator := response.NewGenerator(llmProvider, sysLogger)
	sanitizer := response.NewSanitizer(constant.DefaultDeniedPhrases, constant.FallbackFrontDesk)
	answerCache := memory.NewAnswerCacheRepository(cfg.Resolver.CacheTTL)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.IndexTopic, pubSub)
	indexerService := service.NewIndexerService(
		pubSub,
		cfg.App.IndexTopic,
		corpusRepo,
		uowFactory,
		embeddingProvider,
		sysLogger,
	)
	chatLogService := service.NewChatLogService(uowFactory, sysLogger)
	resolverService := service.NewResolverService(
		corpusRepo,
		answerCache,
		corrector,
		retriever,
		validator,
		generator,
		sanitizer,
		chatLogService,
		cfg.Resolver.TopK,
		sysLogger,
	)

	// 6. Controllers
	queryController := controller.NewQueryController(resolverService, sysLogger)
	adminController := controller.NewAdminController(chatLogService, publisherService, corpusRepo, sysLogger)

	return &Container{
		QueryController:  queryController,
		AdminController:  adminController,
		IndexerService:   indexerService,
		PublisherService: publisherService,
		CorpusRepository: corpusRepo,
		Logger:           sysLogger,
	}
}
