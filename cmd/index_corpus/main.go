package main

import (
	"context"
	"log"

	"resort-concierge-be/internal/config"
	"resort-concierge-be/internal/pkg/logger"
	"resort-concierge-be/internal/repository/memory"
	"resort-concierge-be/internal/repository/unitofwork"
	"resort-concierge-be/internal/service"
	"resort-concierge-be/pkg/database"
	"resort-concierge-be/pkg/embedding"

	"github.com/fatih/color"
)

// Rebuilds the semantic index synchronously. Useful after editing the
// corpus file when the server is down, or to warm a fresh database.
func main() {
	color.Cyan("Corpus index rebuild\n")

	cfg := config.Load()

	corpusRepo := memory.NewCorpusRepository(cfg.Resolver.CorpusPath)
	if err := corpusRepo.Load(); err != nil {
		color.Red("Failed to load corpus: %v", err)
		log.Fatal(err)
	}
	color.Yellow("Corpus: %d entries from %s", corpusRepo.Snapshot().Len(), cfg.Resolver.CorpusPath)

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		log.Fatal(err)
	}
	if err := database.Migrate(gormDB); err != nil {
		color.Red("Failed to migrate database: %v", err)
		log.Fatal(err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	embeddingProvider := embedding.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.EmbeddingModel,
		cfg.Ai.RequestTimeout,
	)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)

	indexer := service.NewIndexerService(
		nil, // no event bus, synchronous rebuild only
		cfg.App.IndexTopic,
		corpusRepo,
		uowFactory,
		embeddingProvider,
		sysLogger,
	)

	count, err := indexer.Rebuild(context.Background())
	if err != nil {
		color.Red("Rebuild failed: %v", err)
		log.Fatal(err)
	}

	color.Green("Indexed %d documents", count)
}
