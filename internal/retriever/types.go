package retriever

const (
	// DefaultTopK bounds how many snippets a query can return.
	DefaultTopK = 3

	// payloadTextKey is the qdrant payload field holding the chunk text,
	// written by the ingestion job.
	payloadTextKey = "text"
)

// Config controls retrieval behavior.
type Config struct {
	Collection string
	TopK       int
	MinScore   float64 // snippets scoring below are dropped
}
