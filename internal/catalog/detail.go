package catalog

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/als344572-ai/Rahal-store/internal/cache"
	"github.com/als344572-ai/Rahal-store/internal/models"
	"github.com/als344572-ai/Rahal-store/internal/repository"
)

// ErrProductNotFound is returned when neither the store nor the built-in catalog has a product.
var ErrProductNotFound = errors.New("product not found")

const detailKeyPrefix = "product:"

// DetailSource reads one product with its variants from the hosted store.
type DetailSource interface {
	FindByID(ctx context.Context, id string) (models.ProductDetail, error)
}

// Details resolves product detail pages: cache, then store, then the built-in catalog.
type Details struct {
	source  DetailSource
	cache   *cache.Cache
	ttl     time.Duration
	timeout time.Duration
	log     *zap.Logger
}

// NewDetails creates a resolver. source may be nil when no backend is configured.
func NewDetails(source DetailSource, c *cache.Cache, ttl, timeout time.Duration, log *zap.Logger) *Details {
	if log == nil {
		log = zap.NewNop()
	}
	return &Details{source: source, cache: c, ttl: ttl, timeout: timeout, log: log}
}

// Find returns the product detail for id.
func (d *Details) Find(ctx context.Context, id string) (models.ProductDetail, error) {
	key := detailKeyPrefix + id
	if detail, ok := cache.Get[models.ProductDetail](d.cache, key); ok {
		return cloneDetail(detail), nil
	}

	if d.source != nil {
		detail, err := d.fetch(ctx, id)
		if err == nil {
			detail.Colors = FillColorHex(detail.Colors)
			d.cache.Set(key, detail, d.ttl)
			return cloneDetail(detail), nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			d.log.Error("product fetch failed", zap.String("id", id), zap.Error(err))
		}
	}

	if detail, ok := FallbackDetail(id); ok {
		return detail, nil
	}
	return models.ProductDetail{}, ErrProductNotFound
}

func (d *Details) fetch(ctx context.Context, id string) (models.ProductDetail, error) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	return d.source.FindByID(ctx, id)
}

// Remember stores a freshly written product so the next read skips the store.
func (d *Details) Remember(detail models.ProductDetail) {
	detail.Colors = FillColorHex(detail.Colors)
	d.cache.Set(detailKeyPrefix+detail.ID, detail, d.ttl)
}

// Forget drops the cached detail for id.
func (d *Details) Forget(id string) {
	d.cache.Delete(detailKeyPrefix + id)
}

func cloneDetail(d models.ProductDetail) models.ProductDetail {
	d.Gallery = append([]string{}, d.Gallery...)
	d.Sizes = append([]models.SizeVariant{}, d.Sizes...)
	d.Colors = append([]models.ColorVariant{}, d.Colors...)
	return d
}
