package dao

import "time"

type Status string

const (
	StatusNew  Status = "new"
	StatusDone Status = "done"
)

// Order is written once at intake; afterwards only Status changes (new -> done).
// CreatedAt is an absolute instant kept in UTC.
type Order struct {
	ID           int64       `json:"id"`
	CustomerName string      `json:"customer_name"`
	Table        string      `json:"table"`
	Status       Status      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	Items        []OrderLine `json:"items"`
}

func (o Order) Pending() bool { return o.Status != StatusDone }

// OrderLine snapshots the menu item's name and category at order time, so
// later menu edits never rewrite old orders.
type OrderLine struct {
	ItemID       int    `json:"item_id"`
	Name         string `json:"name"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Qty          int    `json:"qty"`
}

// Clone returns a copy that shares no slices with o.
func (o Order) Clone() Order {
	c := o
	if o.Items != nil {
		c.Items = make([]OrderLine, len(o.Items))
		copy(c.Items, o.Items)
	}
	return c
}

// FOR RABBITMQ MESSAGE

const (
	EventOrderPlaced = "order.placed"
	EventOrderDone   = "order.done"
)

type OrderEvent struct {
	EventType    string    `json:"event_type"`
	OrderID      int64     `json:"order_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	Table        string    `json:"table,omitempty"`
	Status       Status    `json:"status"`
	ItemCount    int       `json:"item_count,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
