// Command guardian serves a retrieval-augmented chat API with
// post-generation safety and quality guardrails.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/savvyai/guardian/chat"
	"github.com/savvyai/guardian/config"
	"github.com/savvyai/guardian/embedding"
	"github.com/savvyai/guardian/guardrails"
	"github.com/savvyai/guardian/ingest"
	"github.com/savvyai/guardian/llm"
	"github.com/savvyai/guardian/retriever"
	"github.com/savvyai/guardian/server"
	"github.com/savvyai/guardian/store"
	"github.com/savvyai/guardian/store/chromem"
)

func main() {
	// A missing .env file is fine; the environment itself still applies.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	guardCfg, err := guardrails.LoadConfig(cfg.GuardrailsConfig)
	if err != nil {
		return err
	}
	guards := guardrails.NewEngine(guardCfg)

	embedModel := newEmbeddingModel(cfg)

	vectorStore, err := newVectorStore(cfg, logger)
	if err != nil {
		return err
	}

	pipeline := ingest.NewPipeline(vectorStore, embedModel, ingest.WithPipelineLogger(logger))
	if err := pipeline.RunDir(ctx, cfg.KnowledgeDir, true); err != nil {
		return err
	}

	generator := llm.NewGenerator(llm.BackendOptions{
		Type:       cfg.ModelType,
		LocalURL:   cfg.OllamaHost,
		LocalModel: cfg.LocalModelPath,
		APIModel:   cfg.APIModelName,
		APIKey:     cfg.APIKey,
		Logger:     logger,
	})

	ret := retriever.New(vectorStore, embedModel, retriever.WithTopK(cfg.TopK))
	engine := chat.NewEngine(ret, generator, guards, chat.WithLogger(logger))

	info := server.ModelInfo{
		ModelType: string(cfg.ModelType),
		ModelName: cfg.ModelName(),
	}

	srv := server.New(engine, info, cfg.Addr(), server.WithLogger(logger))
	return srv.Start(ctx)
}

// newEmbeddingModel picks the embedder matching the generation backend. The
// mock backend uses deterministic hash embeddings so the service runs with no
// external model at all.
func newEmbeddingModel(cfg *config.Config) embedding.Model {
	switch cfg.ModelType {
	case llm.BackendLocal:
		opts := []embedding.OllamaOption{}
		if cfg.OllamaHost != "" {
			opts = append(opts, embedding.WithOllamaBaseURL(cfg.OllamaHost))
		}
		return embedding.NewOllamaModel(opts...)
	case llm.BackendAPI:
		return embedding.NewOpenAIModel(cfg.APIKey, "")
	default:
		return embedding.NewHashModel()
	}
}

func newVectorStore(cfg *config.Config, logger *slog.Logger) (store.VectorStore, error) {
	if cfg.ChromemPath == "" {
		return store.NewMemoryStore(), nil
	}

	logger.Info("using persistent vector store", "path", cfg.ChromemPath)
	return chromem.NewStore(cfg.ChromemPath, "documents")
}
