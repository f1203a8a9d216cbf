package main

import (
	"context"
	"errors"
	"log"

	"resort-concierge-be/internal/bootstrap"
	"resort-concierge-be/internal/config"
	"resort-concierge-be/internal/repository/memory"
	"resort-concierge-be/internal/server"
	"resort-concierge-be/pkg/corpus"
	"resort-concierge-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Load Corpus (fatal if missing; the resolver cannot run without it)
	corpusRepo := memory.NewCorpusRepository(cfg.Resolver.CorpusPath)
	if err := corpusRepo.Load(); err != nil {
		if errors.Is(err, corpus.ErrCorpusNotFound) {
			log.Panicf("Corpus file not found at %s", cfg.Resolver.CorpusPath)
		}
		log.Panicf("Unable to load corpus: %v", err)
	}
	log.Printf("Corpus loaded: %d entries", corpusRepo.Snapshot().Len())

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	if err := database.Migrate(gormDB); err != nil {
		log.Panicf("Unable to migrate database: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, corpusRepo, cfg)

	// 5. Start Background Indexer
	ctx := context.Background()
	if err := container.IndexerService.Consume(ctx); err != nil {
		log.Panicf("Unable to start indexer consumer: %v", err)
	}

	// 6. Schedule an initial rebuild when the stored index and the corpus
	// disagree (first boot, or the corpus file changed while down)
	indexed, err := container.IndexerService.IndexedCount(ctx)
	if err != nil {
		log.Printf("Warning: unable to count indexed documents: %v", err)
	}
	if err != nil || indexed != int64(corpusRepo.Snapshot().Len()) {
		if err := container.PublisherService.PublishIndexRebuild(ctx, "startup"); err != nil {
			log.Printf("Warning: unable to schedule index rebuild: %v", err)
		}
	}

	// 7. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
