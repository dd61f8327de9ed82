package domain

import (
	"time"
	_ "time/tzdata"

	"order-desk/internal/microservices/order/domain/dao"
)

// ClockLayout is how the kitchen sees order times.
const ClockLayout = "15:04:05"

type OrderLineView struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Qty          int    `json:"qty"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
}

type OrderView struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customer_name"`
	Table        string          `json:"table"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"created_at"`
	Items        []OrderLineView `json:"items"`
}

type DoneResponse struct {
	Success bool `json:"success"`
}

// FromOrder converts a stored order into its display form, rendering the
// creation instant in loc.
func FromOrder(o dao.Order, loc *time.Location) OrderView {
	v := OrderView{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Table:        o.Table,
		Status:       string(o.Status),
		CreatedAt:    FormatClock(o.CreatedAt, loc),
		Items:        make([]OrderLineView, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		v.Items = append(v.Items, OrderLineView{
			ID:           it.ItemID,
			Name:         it.Name,
			Qty:          it.Qty,
			CategoryID:   it.CategoryID,
			CategoryName: it.CategoryName,
		})
	}
	return v
}

// FromOrders never returns nil so the feed encodes as [] when empty.
func FromOrders(orders []dao.Order, loc *time.Location) []OrderView {
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o, loc))
	}
	return out
}

func FormatClock(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(ClockLayout)
}
