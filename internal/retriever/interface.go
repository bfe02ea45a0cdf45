package retriever

import (
	"context"

	"campus-assistant/pkg/qdrant"
)

// IRetriever returns reference snippets relevant to a query. It never
// fails: on any internal error the result is simply empty and the caller
// proceeds without augmentation.
type IRetriever interface {
	Retrieve(ctx context.Context, query string) []string
}

// VectorSearcher is the slice of the qdrant client the retriever needs.
type VectorSearcher interface {
	SearchPoints(ctx context.Context, collectionName string, req qdrant.SearchRequest) (*qdrant.SearchResponse, error)
}
