package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"order-desk/internal/common/logger"
	dao "order-desk/internal/microservices/order/domain/dao"
)

const (
	DefaultCustomerName = "Guest"
	maxCustomerName     = 100
	maxTable            = 50
)

func (s *OrderService) PlaceOrder(ctx context.Context, form url.Values) (dao.Order, bool, error) {
	lg := logger.FromContext(ctx, s.lg)

	// 1. Collect lines in menu order
	lines := s.parseLines(form)
	if len(lines) == 0 {
		lg.Debug("order_rejected_empty", nil)
		return dao.Order{}, false, nil
	}

	// 2. Build the order
	name := truncate(strings.TrimSpace(form.Get("customer_name")), maxCustomerName)
	if name == "" {
		name = DefaultCustomerName
	}
	order := dao.Order{
		CustomerName: name,
		Table:        truncate(strings.TrimSpace(form.Get("table")), maxTable),
		Status:       dao.StatusNew,
		CreatedAt:    s.now().UTC(),
		Items:        lines,
	}

	// 3. Save
	stored, err := s.repo.Create(ctx, order)
	if err != nil {
		return dao.Order{}, false, fmt.Errorf("failed to save order: %w", err)
	}

	qty := 0
	for _, l := range stored.Items {
		qty += l.Qty
	}
	lg.Info("order_placed", map[string]any{
		"order_id": stored.ID,
		"lines":    len(stored.Items),
		"quantity": qty,
	})

	// 4. Notify
	s.afterChange(ctx, dao.OrderEvent{
		EventType:    dao.EventOrderPlaced,
		OrderID:      stored.ID,
		CustomerName: stored.CustomerName,
		Table:        stored.Table,
		Status:       stored.Status,
		ItemCount:    qty,
		OccurredAt:   stored.CreatedAt,
	})
	return stored, true, nil
}

// parseLines reads qty_<id> for every menu item. Missing or malformed values
// count as zero and only positive quantities become lines. Fields naming ids
// outside the menu are never looked at.
func (s *OrderService) parseLines(form url.Values) []dao.OrderLine {
	var lines []dao.OrderLine
	for _, item := range s.catalog.Items() {
		qty := parseQty(form.Get("qty_" + strconv.Itoa(item.ID)))
		if qty <= 0 {
			continue
		}
		lines = append(lines, dao.OrderLine{
			ItemID:       item.ID,
			Name:         item.Name,
			CategoryID:   item.CategoryID,
			CategoryName: item.CategoryName,
			Qty:          qty,
		})
	}
	return lines
}

func parseQty(raw string) int {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0
	}
	return int(n)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func (s *OrderService) MarkDone(ctx context.Context, id int64) error {
	changed, err := s.repo.MarkDone(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to mark order done: %w", err)
	}
	if !changed {
		return nil
	}

	logger.FromContext(ctx, s.lg).Info("order_done", map[string]any{"order_id": id})
	s.afterChange(ctx, dao.OrderEvent{
		EventType:  dao.EventOrderDone,
		OrderID:    id,
		Status:     dao.StatusDone,
		OccurredAt: s.now().UTC(),
	})
	return nil
}
