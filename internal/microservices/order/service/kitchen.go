package service

import (
	"context"
	"encoding/json"
	"fmt"

	"order-desk/internal/common/logger"
	dto "order-desk/internal/microservices/order/domain/dto"
)

// PendingOrders is the kitchen feed. A cached copy is served when present;
// cache errors fall through to the store.
func (s *OrderService) PendingOrders(ctx context.Context) ([]dto.OrderView, error) {
	lg := logger.FromContext(ctx, s.lg)

	if s.cache != nil {
		b, ok, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			lg.Error("feed_cache_get_failed", err, nil)
		case ok:
			var views []dto.OrderView
			if err := json.Unmarshal(b, &views); err == nil && views != nil {
				return views, nil
			}
		}
	}

	// the generation is taken before the read so a change during it voids the Set
	var (
		gen    int64
		genErr error
	)
	if s.cache != nil {
		if gen, genErr = s.cache.Generation(ctx); genErr != nil {
			lg.Error("feed_cache_generation_failed", genErr, nil)
		}
	}

	orders, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending orders: %w", err)
	}
	views := dto.FromOrders(orders, s.loc)

	if s.cache != nil && genErr == nil {
		if b, err := json.Marshal(views); err == nil {
			if err := s.cache.Set(ctx, gen, b); err != nil {
				lg.Error("feed_cache_set_failed", err, nil)
			}
		}
	}
	return views, nil
}
