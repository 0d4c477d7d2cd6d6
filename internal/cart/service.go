package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/calabarlabs/storefront-backend/internal/catalog"
	"github.com/calabarlabs/storefront-backend/pkg/logger"
	"github.com/calabarlabs/storefront-backend/pkg/metrics"
	"github.com/calabarlabs/storefront-backend/pkg/storage"
)

// KeyBuilder maps a session ID to its fixed cart storage key.
type KeyBuilder func(sessionID string) string

// Service owns the authoritative per-session cart: every mutation is
// re-persisted in full, and reads rehydrate from storage, falling back to an
// empty cart on any load or decode failure.
type Service interface {
	Get(ctx context.Context, sessionID string) (Lines, error)
	Add(ctx context.Context, sessionID string, product catalog.Product) (Lines, error)
	Remove(ctx context.Context, sessionID, productID string) (Lines, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) (Lines, error)
	Clear(ctx context.Context, sessionID string) (Lines, error)
}

type service struct {
	store   storage.KV
	keys    KeyBuilder
	logg    *logger.Logger
	metrics *metrics.StorefrontMetrics
}

// NewService builds a cart service over the provided storage backend.
func NewService(store storage.KV, keys KeyBuilder, logg *logger.Logger, m *metrics.StorefrontMetrics) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("storage backend required")
	}
	if keys == nil {
		return nil, fmt.Errorf("key builder required")
	}
	return &service{store: store, keys: keys, logg: logg, metrics: m}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (Lines, error) {
	return s.load(ctx, sessionID), nil
}

func (s *service) Add(ctx context.Context, sessionID string, product catalog.Product) (Lines, error) {
	lines := s.load(ctx, sessionID).Add(product)
	s.persist(ctx, sessionID, lines)
	s.metrics.IncCartMutation("add")
	return lines, nil
}

func (s *service) Remove(ctx context.Context, sessionID, productID string) (Lines, error) {
	lines := s.load(ctx, sessionID).Remove(productID)
	s.persist(ctx, sessionID, lines)
	s.metrics.IncCartMutation("remove")
	return lines, nil
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) (Lines, error) {
	lines := s.load(ctx, sessionID).UpdateQuantity(productID, delta)
	s.persist(ctx, sessionID, lines)
	s.metrics.IncCartMutation("update_quantity")
	return lines, nil
}

func (s *service) Clear(ctx context.Context, sessionID string) (Lines, error) {
	lines := s.load(ctx, sessionID).Clear()
	s.persist(ctx, sessionID, lines)
	s.metrics.IncCartMutation("clear")
	return lines, nil
}

// load treats every failure as an empty cart; a missing record is the normal
// first-visit case and is not logged.
func (s *service) load(ctx context.Context, sessionID string) Lines {
	payload, err := s.store.Load(ctx, s.keys(sessionID))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) && s.logg != nil {
			s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "cart load failed, starting empty")
		}
		return Lines{}
	}
	lines, err := Decode(payload)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "cart payload corrupted, starting empty")
		}
		return Lines{}
	}
	return lines
}

// persist is best-effort: a failed write leaves the in-flight response
// correct and the previous record in place.
func (s *service) persist(ctx context.Context, sessionID string, lines Lines) {
	payload, err := Encode(lines)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(s.logg.WithSessionID(ctx, sessionID), "cart encode failed", err)
		}
		return
	}
	if err := s.store.Save(ctx, s.keys(sessionID), payload); err != nil {
		if s.logg != nil {
			s.logg.Error(s.logg.WithSessionID(ctx, sessionID), "cart persist failed", err)
		}
	}
}
