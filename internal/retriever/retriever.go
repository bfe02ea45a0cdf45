package retriever

import (
	"context"

	"campus-assistant/pkg/log"
	"campus-assistant/pkg/qdrant"
	"campus-assistant/pkg/voyage"
)

type implRetriever struct {
	embedder voyage.IVoyage
	searcher VectorSearcher
	config   Config
	logger   log.Logger
}

var _ IRetriever = (*implRetriever)(nil)

// New creates a retriever over a voyage embedder and a qdrant collection.
// Either dependency may be nil, in which case retrieval is disabled and
// every query returns no snippets.
func New(embedder voyage.IVoyage, searcher VectorSearcher, config Config, logger log.Logger) *implRetriever {
	if config.TopK <= 0 {
		config.TopK = DefaultTopK
	}
	return &implRetriever{
		embedder: embedder,
		searcher: searcher,
		config:   config,
		logger:   logger,
	}
}

// Retrieve embeds the query and runs a similarity search. Failures are
// absorbed: they log a warning and yield an empty result.
func (r *implRetriever) Retrieve(ctx context.Context, query string) []string {
	if r.embedder == nil || r.searcher == nil || query == "" {
		return nil
	}

	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		r.logger.Warnf(ctx, "context retrieval: embedding failed: %v", err)
		return nil
	}
	if len(vectors) == 0 {
		return nil
	}

	resp, err := r.searcher.SearchPoints(ctx, r.config.Collection, qdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       r.config.TopK,
		WithPayload: true,
	})
	if err != nil {
		r.logger.Warnf(ctx, "context retrieval: search failed: %v", err)
		return nil
	}

	var snippets []string
	for _, point := range resp.Result {
		if point.Score < r.config.MinScore {
			continue
		}
		text, ok := point.Payload[payloadTextKey].(string)
		if !ok || text == "" {
			continue
		}
		snippets = append(snippets, text)
	}
	return snippets
}
