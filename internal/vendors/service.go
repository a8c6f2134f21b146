package vendors

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cyberraf/giftyy-backend/pkg/db/models"
	pkgerrors "github.com/cyberraf/giftyy-backend/pkg/errors"
	"github.com/cyberraf/giftyy-backend/pkg/logger"
	"github.com/cyberraf/giftyy-backend/pkg/pagination"
	"github.com/cyberraf/giftyy-backend/pkg/redis"
)

type vendorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	FindNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
	List(ctx context.Context, params pagination.Params) ([]models.Vendor, error)
}

// NameCache is the surface the display-name cache must provide.
type NameCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	VendorNameKey(vendorID string) string
}

// Service exposes vendor directory reads.
type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VendorDTO, error)
	List(ctx context.Context, params pagination.Params) (*VendorPage, error)
	// GetNames resolves display names, serving from the cache where it can.
	GetNames(ctx context.Context, vendorIDs []uuid.UUID) (map[uuid.UUID]string, error)
}

// Options tunes the display-name cache.
type Options struct {
	CacheTTL     time.Duration
	CacheEnabled bool
}

type service struct {
	repo  vendorRepository
	cache NameCache
	logg  *logger.Logger
	opts  Options
}

// NewService builds the vendor directory. The cache is optional; without
// one every name lookup goes to the database.
func NewService(repo vendorRepository, cache NameCache, logg *logger.Logger, opts Options) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("vendor repository required")
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 10 * time.Minute
	}
	return &service{repo: repo, cache: cache, logg: logg, opts: opts}, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*VendorDTO, error) {
	vendor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load vendor")
	}
	return FromModel(vendor), nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*VendorPage, error) {
	rows, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list vendors")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	page := &VendorPage{Vendors: []VendorDTO{}}
	for i := range rows {
		if i == limit {
			last := rows[limit-1]
			page.NextCursor = pagination.EncodeCursor(pagination.Cursor{
				CreatedAt: last.CreatedAt,
				ID:        last.ID,
			})
			break
		}
		page.Vendors = append(page.Vendors, *FromModel(&rows[i]))
	}
	return page, nil
}

func (s *service) GetNames(ctx context.Context, vendorIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(vendorIDs))
	var misses []uuid.UUID

	if s.cacheActive() {
		for _, id := range vendorIDs {
			name, err := s.cache.Get(ctx, s.cache.VendorNameKey(id.String()))
			if err == nil && name != "" {
				names[id] = name
				continue
			}
			if err != nil && !errors.Is(err, redis.ErrCacheMiss) && s.logg != nil {
				s.logg.Warn(s.logg.WithVendorID(ctx, id.String()), "vendor name cache read failed")
			}
			misses = append(misses, id)
		}
	} else {
		misses = vendorIDs
	}

	if len(misses) == 0 {
		return names, nil
	}

	fetched, err := s.repo.FindNames(ctx, misses)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load vendor names")
	}
	for id, name := range fetched {
		names[id] = name
		if s.cacheActive() {
			if err := s.cache.Set(ctx, s.cache.VendorNameKey(id.String()), name, s.opts.CacheTTL); err != nil && s.logg != nil {
				s.logg.Warn(s.logg.WithVendorID(ctx, id.String()), "vendor name cache write failed")
			}
		}
	}
	return names, nil
}

func (s *service) cacheActive() bool {
	return s.opts.CacheEnabled && s.cache != nil
}
