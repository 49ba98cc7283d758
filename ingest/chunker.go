package ingest

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences/english"
	"github.com/savvyai/guardian/schema"
)

const (
	// DefaultSentencesPerChunk is the chunk size in sentences.
	DefaultSentencesPerChunk = 5
	// DefaultOverlapSentences is the number of sentences shared between
	// adjacent chunks.
	DefaultOverlapSentences = 1
)

// Chunker splits documents into sentence-based chunks with overlap, so long
// files index as several retrievable units.
type Chunker struct {
	sentencesPerChunk int
	overlapSentences  int
	tokenize          func(text string) []string
}

// NewChunker creates a Chunker using the English sentence tokenizer.
func NewChunker(sentencesPerChunk, overlapSentences int) (*Chunker, error) {
	if sentencesPerChunk <= 0 {
		sentencesPerChunk = DefaultSentencesPerChunk
	}
	if overlapSentences < 0 || overlapSentences >= sentencesPerChunk {
		overlapSentences = DefaultOverlapSentences
	}

	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build sentence tokenizer: %w", err)
	}

	return &Chunker{
		sentencesPerChunk: sentencesPerChunk,
		overlapSentences:  overlapSentences,
		tokenize: func(text string) []string {
			raw := tokenizer.Tokenize(text)
			result := make([]string, 0, len(raw))
			for _, s := range raw {
				if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
					result = append(result, trimmed)
				}
			}
			return result
		},
	}, nil
}

// Chunk splits a document into chunk documents. A document that fits in one
// chunk is returned as-is, keeping its ID.
func (c *Chunker) Chunk(doc schema.Document) []schema.Document {
	sents := c.tokenize(doc.Text)
	if len(sents) <= c.sentencesPerChunk {
		return []schema.Document{doc}
	}

	var chunks []schema.Document
	idx := 0
	for i := 0; i < len(sents); {
		end := i + c.sentencesPerChunk
		if end > len(sents) {
			end = len(sents)
		}

		chunk := schema.Document{
			ID:   fmt.Sprintf("%s:%d", doc.ID, idx),
			Text: strings.Join(sents[i:end], " "),
			Metadata: map[string]interface{}{
				"parent_id": doc.ID,
				"chunk":     idx,
			},
		}
		for k, v := range doc.Metadata {
			chunk.Metadata[k] = v
		}
		chunks = append(chunks, chunk)

		if end == len(sents) {
			break
		}
		i = end - c.overlapSentences
		idx++
	}
	return chunks
}
