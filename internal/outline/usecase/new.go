package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"study-outline-tracker/internal/outline"
	"study-outline-tracker/internal/outline/parser"
	"study-outline-tracker/pkg/log"
)

const defaultCacheEntries = 128

// implUseCase is the private implementation of outline.UseCase.
type implUseCase struct {
	l      log.Logger
	parser parser.Parser

	// cache holds parse results keyed by content hash. Parse is
	// idempotent, so re-uploads of an unchanged document hit here.
	cache *lru.Cache[string, outline.ParseDocumentOutput]
}

// New creates a new outline UseCase implementation.
func New(l log.Logger, p parser.Parser, cacheEntries int) (*implUseCase, error) {
	if cacheEntries <= 0 {
		cacheEntries = defaultCacheEntries
	}

	cache, err := lru.New[string, outline.ParseDocumentOutput](cacheEntries)
	if err != nil {
		return nil, err
	}

	return &implUseCase{
		l:      l,
		parser: p,
		cache:  cache,
	}, nil
}
