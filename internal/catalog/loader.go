// Package catalog loads, merges and filters the storefront catalog.
package catalog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/als344572-ai/Rahal-store/internal/models"
)

//go:generate mockgen -destination=../mocks/mock_source.go -package=mocks . Source

// Source reads catalog rows from the hosted store, newest first.
type Source interface {
	FindRecent(ctx context.Context) ([]models.Product, error)
}

// Loader produces the catalog for one listing request.
type Loader struct {
	source   Source
	fallback []models.Product
	timeout  time.Duration
	log      *zap.Logger
}

// NewLoader creates a loader. A nil source means no backend is configured.
func NewLoader(source Source, timeout time.Duration, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		source:   source,
		fallback: Fallback(),
		timeout:  timeout,
		log:      log,
	}
}

// Load returns the built-in catalog merged with the stored rows. Any fetch
// failure yields the built-in catalog alone; it never returns an error.
func (l *Loader) Load(ctx context.Context) []models.Product {
	if l.source == nil {
		l.log.Debug("catalog backend not configured, serving built-in catalog")
		return l.builtIn()
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	rows, err := l.source.FindRecent(ctx)
	if err != nil {
		l.log.Error("catalog fetch failed, serving built-in catalog", zap.Error(err))
		return l.builtIn()
	}

	fetched := make([]models.Product, len(rows))
	for i, p := range rows {
		fetched[i] = p.Normalize()
	}
	return Merge(l.fallback, fetched)
}

func (l *Loader) builtIn() []models.Product {
	out := make([]models.Product, len(l.fallback))
	copy(out, l.fallback)
	return out
}

// Merge concatenates the lists in order and drops any product whose ID was already seen.
func Merge(lists ...[]models.Product) []models.Product {
	size := 0
	for _, list := range lists {
		size += len(list)
	}

	seen := make(map[string]struct{}, size)
	out := make([]models.Product, 0, size)
	for _, list := range lists {
		for _, p := range list {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
