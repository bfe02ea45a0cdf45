// Ingests campus documents into Qdrant so the retriever can augment
// agent prompts with reference snippets.
//
// Usage: go run scripts/ingest/main.go <path/to/docs-dir>
//
// Every .txt and .md file under the directory is chunked, embedded with
// Voyage AI and upserted into the configured collection. Point IDs are
// derived from file path + chunk index, so re-running the script updates
// existing chunks instead of duplicating them.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"campus-assistant/config"
	"campus-assistant/pkg/log"
	pkgQdrant "campus-assistant/pkg/qdrant"
	"campus-assistant/pkg/voyage"
)

const (
	chunkSize    = 3000 // characters per chunk
	chunkOverlap = 200  // characters shared between adjacent chunks
	embedBatch   = 64   // texts per Voyage API call
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/ingest/main.go <path/to/docs-dir>")
		os.Exit(1)
	}
	docsDir := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	embeddingClient, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}
	if cfg.Voyage.Model != "" {
		embeddingClient = embeddingClient.WithModel(cfg.Voyage.Model)
	}
	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)

	// Idempotent: creating an existing collection returns an error we ignore.
	if err := qdrantClient.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: cfg.Qdrant.CollectionName,
		Vectors: pkgQdrant.VectorConfig{
			Size:     cfg.Qdrant.VectorSize,
			Distance: "Cosine",
		},
	}); err != nil {
		logger.Infof(ctx, "Collection %s already exists or creation failed: %v", cfg.Qdrant.CollectionName, err)
	}

	files, err := collectDocFiles(docsDir)
	if err != nil {
		logger.Fatalf(ctx, "Failed to scan %s: %v", docsDir, err)
	}
	logger.Infof(ctx, "Found %d document(s) to ingest", len(files))

	totalChunks := 0
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Errorf(ctx, "Failed to read %s: %v", path, err)
			continue
		}

		chunks := chunkText(string(raw))
		if len(chunks) == 0 {
			continue
		}

		rel, relErr := filepath.Rel(docsDir, path)
		if relErr != nil {
			rel = path
		}

		if err := ingestChunks(ctx, embeddingClient, qdrantClient, cfg.Qdrant.CollectionName, rel, chunks); err != nil {
			logger.Errorf(ctx, "Failed to ingest %s: %v", rel, err)
			continue
		}

		logger.Infof(ctx, "Ingested %s (%d chunk(s))", rel, len(chunks))
		totalChunks += len(chunks)
	}

	logger.Infof(ctx, "Ingestion complete: %d chunk(s) across %d document(s)", totalChunks, len(files))
}

func collectDocFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".txt", ".md":
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// chunkText splits text into overlapping chunks so sentences near chunk
// boundaries stay retrievable. Boundaries are aligned to rune starts;
// a chunk never carries a partial UTF-8 sequence.
func chunkText(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var chunks []string
	for start := 0; start < len(text); {
		end := start + chunkSize
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}
		for !utf8.RuneStart(text[end]) {
			end--
		}
		chunks = append(chunks, text[start:end])

		start = end - chunkOverlap
		for !utf8.RuneStart(text[start]) {
			start++
		}
	}
	return chunks
}

func ingestChunks(ctx context.Context, embedder *voyage.Client, store *pkgQdrant.Client, collection, source string, chunks []string) error {
	for offset := 0; offset < len(chunks); offset += embedBatch {
		end := offset + embedBatch
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[offset:end]

		vectors, err := embedder.Embed(ctx, batch)
		if err != nil {
			return fmt.Errorf("embed batch at %d: %w", offset, err)
		}
		if len(vectors) != len(batch) {
			return fmt.Errorf("embed batch at %d: got %d vectors for %d texts", offset, len(vectors), len(batch))
		}

		points := make([]pkgQdrant.Point, 0, len(batch))
		for i, vec := range vectors {
			idx := offset + i
			points = append(points, pkgQdrant.Point{
				ID:     chunkID(source, idx),
				Vector: vec,
				Payload: map[string]interface{}{
					"text":   batch[i],
					"source": source,
					"chunk":  idx,
				},
			})
		}

		if err := store.UpsertPoints(ctx, collection, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
			return fmt.Errorf("upsert batch at %d: %w", offset, err)
		}
	}
	return nil
}

// chunkID derives a stable UUID from the document path and chunk index,
// making re-ingestion overwrite rather than duplicate.
func chunkID(source string, index int) string {
	name := fmt.Sprintf("%s#%d", source, index)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}
