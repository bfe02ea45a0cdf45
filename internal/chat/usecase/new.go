package usecase

import (
	"campus-assistant/internal/retriever"
	"campus-assistant/internal/router"
	"campus-assistant/pkg/llmprovider"
	pkgLog "campus-assistant/pkg/log"
)

// GenerationConfig controls the model call made on a ready turn.
type GenerationConfig struct {
	MaxTokens   int
	Temperature float64
}

type implUseCase struct {
	l         pkgLog.Logger
	store     *router.Store
	router    *router.Router
	llm       *llmprovider.Manager
	retriever retriever.IRetriever
	genCfg    GenerationConfig
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	store *router.Store,
	rt *router.Router,
	llm *llmprovider.Manager,
	retr retriever.IRetriever,
	genCfg GenerationConfig,
) *implUseCase {
	if genCfg.MaxTokens <= 0 {
		genCfg.MaxTokens = defaultMaxTokens
	}
	if genCfg.Temperature <= 0 {
		genCfg.Temperature = defaultTemperature
	}
	return &implUseCase{
		l:         l,
		store:     store,
		router:    rt,
		llm:       llm,
		retriever: retr,
		genCfg:    genCfg,
	}
}
