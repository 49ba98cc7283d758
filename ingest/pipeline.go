package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/savvyai/guardian/embedding"
	"github.com/savvyai/guardian/schema"
	"github.com/savvyai/guardian/store"
)

// Pipeline embeds documents and adds them to a vector store.
// It runs once at startup; per-request retrieval never ingests.
type Pipeline struct {
	store      store.VectorStore
	embedModel embedding.Model
	chunker    *Chunker
	logger     *slog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithChunker sets the chunker applied to loaded files.
func WithChunker(c *Chunker) PipelineOption {
	return func(p *Pipeline) {
		p.chunker = c
	}
}

// WithPipelineLogger sets the logger.
func WithPipelineLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// NewPipeline creates a new ingestion Pipeline.
func NewPipeline(vectorStore store.VectorStore, embedModel embedding.Model, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		store:      vectorStore,
		embedModel: embedModel,
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run embeds and indexes the given documents.
func (p *Pipeline) Run(ctx context.Context, docs []schema.Document) error {
	if p.chunker != nil {
		var chunked []schema.Document
		for _, doc := range docs {
			chunked = append(chunked, p.chunker.Chunk(doc)...)
		}
		docs = chunked
	}

	for i := range docs {
		if len(docs[i].Embedding) > 0 {
			continue
		}
		vec, err := p.embedModel.EmbedText(ctx, docs[i].Text)
		if err != nil {
			return fmt.Errorf("failed to embed document %s: %w", docs[i].ID, err)
		}
		docs[i].Embedding = vec
	}

	if len(docs) == 0 {
		return nil
	}

	if _, err := p.store.Add(ctx, docs); err != nil {
		return fmt.Errorf("failed to index documents: %w", err)
	}

	p.logger.Info("indexed documents", "count", len(docs))
	return nil
}

// RunDir loads every supported file under dir and indexes it alongside the
// seed corpus when seed is true.
func (p *Pipeline) RunDir(ctx context.Context, dir string, seed bool) error {
	var docs []schema.Document
	if seed {
		docs = append(docs, SeedDocuments()...)
	}

	if dir != "" {
		loaded, err := LoadDir(dir)
		if err != nil {
			return err
		}
		docs = append(docs, loaded...)
	}

	return p.Run(ctx, docs)
}
