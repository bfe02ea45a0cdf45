package retriever

import (
	"context"
	"errors"
	"testing"

	"campus-assistant/pkg/log"
	"campus-assistant/pkg/qdrant"
)

type mockEmbedder struct {
	vectors [][]float32
	err     error
}

func (m *mockEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.vectors, nil
}

type mockSearcher struct {
	resp    *qdrant.SearchResponse
	err     error
	lastReq qdrant.SearchRequest
}

func (m *mockSearcher) SearchPoints(ctx context.Context, collection string, req qdrant.SearchRequest) (*qdrant.SearchResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func TestRetrieve_ReturnsSnippets(t *testing.T) {
	searcher := &mockSearcher{
		resp: &qdrant.SearchResponse{
			Result: []qdrant.ScoredPoint{
				{Score: 0.9, Payload: map[string]interface{}{"text": "The library opens at 8am."}},
				{Score: 0.8, Payload: map[string]interface{}{"text": "Advising is in Sage Hall."}},
				{Score: 0.1, Payload: map[string]interface{}{"text": "low relevance"}},
			},
		},
	}
	r := New(
		&mockEmbedder{vectors: [][]float32{{0.1, 0.2}}},
		searcher,
		Config{Collection: "campus_docs", TopK: 3, MinScore: 0.5},
		log.NewNop(),
	)

	snippets := r.Retrieve(context.Background(), "library hours")
	if len(snippets) != 2 {
		t.Fatalf("got %d snippets, want 2 (low-score dropped): %v", len(snippets), snippets)
	}
	if snippets[0] != "The library opens at 8am." {
		t.Errorf("unexpected first snippet: %q", snippets[0])
	}
	if searcher.lastReq.Limit != 3 || !searcher.lastReq.WithPayload {
		t.Errorf("unexpected search request: %+v", searcher.lastReq)
	}
}

func TestRetrieve_EmbeddingFailureAbsorbed(t *testing.T) {
	r := New(
		&mockEmbedder{err: errors.New("embed down")},
		&mockSearcher{},
		Config{Collection: "campus_docs"},
		log.NewNop(),
	)

	if got := r.Retrieve(context.Background(), "library hours"); got != nil {
		t.Errorf("expected nil on embedding failure, got %v", got)
	}
}

func TestRetrieve_SearchFailureAbsorbed(t *testing.T) {
	r := New(
		&mockEmbedder{vectors: [][]float32{{0.1}}},
		&mockSearcher{err: errors.New("qdrant down")},
		Config{Collection: "campus_docs"},
		log.NewNop(),
	)

	if got := r.Retrieve(context.Background(), "library hours"); got != nil {
		t.Errorf("expected nil on search failure, got %v", got)
	}
}

func TestRetrieve_DisabledWithoutDependencies(t *testing.T) {
	r := New(nil, nil, Config{}, log.NewNop())
	if got := r.Retrieve(context.Background(), "anything"); got != nil {
		t.Errorf("expected nil when retrieval is unconfigured, got %v", got)
	}
}

func TestRetrieve_SkipsMalformedPayload(t *testing.T) {
	r := New(
		&mockEmbedder{vectors: [][]float32{{0.1}}},
		&mockSearcher{resp: &qdrant.SearchResponse{
			Result: []qdrant.ScoredPoint{
				{Score: 0.9, Payload: map[string]interface{}{"text": 42}},
				{Score: 0.9, Payload: map[string]interface{}{}},
				{Score: 0.9, Payload: map[string]interface{}{"text": "good chunk"}},
			},
		}},
		Config{Collection: "campus_docs"},
		log.NewNop(),
	)

	snippets := r.Retrieve(context.Background(), "q")
	if len(snippets) != 1 || snippets[0] != "good chunk" {
		t.Errorf("got %v, want only the well-formed snippet", snippets)
	}
}
