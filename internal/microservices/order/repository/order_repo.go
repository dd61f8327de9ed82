package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"order-desk/internal/connections/database"
	"order-desk/internal/microservices/order/domain/dao"
)

// SQLOrderRepository stores orders in the orders and order_items tables.
// Queries are written with ? placeholders and rebound per dialect.
type SQLOrderRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

func NewSQLOrderRepository(db *sql.DB, dialect database.Dialect) *SQLOrderRepository {
	return &SQLOrderRepository{db: db, dialect: dialect}
}

func (or *SQLOrderRepository) Close() error { return or.db.Close() }

func (or *SQLOrderRepository) q(query string) string { return or.dialect.Rebind(query) }

func (or *SQLOrderRepository) Create(ctx context.Context, order dao.Order) (dao.Order, error) {
	order.CreatedAt = order.CreatedAt.UTC()
	if order.Status == "" {
		order.Status = dao.StatusNew
	}

	tx, err := or.db.BeginTx(ctx, nil)
	if err != nil {
		return dao.Order{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// 1. Insert order
	var orderID int64
	orderID, err = or.insertOrder(ctx, tx, order)
	if err != nil {
		return dao.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	// 2. Insert order items
	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx, or.q(`
			INSERT INTO order_items (order_id, item_id, name, category_id, category_name, qty)
			VALUES (?, ?, ?, ?, ?, ?)
		`), orderID, item.ItemID, item.Name, item.CategoryID, item.CategoryName, item.Qty)
		if err != nil {
			return dao.Order{}, fmt.Errorf("failed to insert order item %d: %w", item.ItemID, err)
		}
	}

	// Commit
	if err = tx.Commit(); err != nil {
		return dao.Order{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	order.ID = orderID
	return order.Clone(), nil
}

func (or *SQLOrderRepository) insertOrder(ctx context.Context, tx *sql.Tx, order dao.Order) (int64, error) {
	const insert = `INSERT INTO orders (customer_name, dining_table, status, created_at) VALUES (?, ?, ?, ?)`
	args := []any{order.CustomerName, order.Table, string(order.Status), order.CreatedAt}

	if or.dialect == database.Postgres {
		var id int64
		err := tx.QueryRowContext(ctx, or.q(insert+" RETURNING id"), args...).Scan(&id)
		return id, err
	}
	res, err := tx.ExecContext(ctx, insert, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (or *SQLOrderRepository) ListPending(ctx context.Context) ([]dao.Order, error) {
	rows, err := or.db.QueryContext(ctx, or.q(`
		SELECT o.id, o.customer_name, o.dining_table, o.status, o.created_at,
		       i.item_id, i.name, i.category_id, i.category_name, i.qty
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status <> ?
		ORDER BY o.id ASC, i.id ASC
	`), string(dao.StatusDone))
	if err != nil {
		return nil, fmt.Errorf("failed to query pending orders: %w", err)
	}
	defer rows.Close()

	orders := []dao.Order{}
	for rows.Next() {
		var (
			o         dao.Order
			status    string
			createdAt time.Time
			itemID    sql.NullInt64
			name      sql.NullString
			catID     sql.NullString
			catName   sql.NullString
			qty       sql.NullInt64
		)
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Table, &status, &createdAt,
			&itemID, &name, &catID, &catName, &qty); err != nil {
			return nil, fmt.Errorf("failed to scan pending order: %w", err)
		}

		if n := len(orders); n == 0 || orders[n-1].ID != o.ID {
			o.Status = dao.Status(status)
			o.CreatedAt = createdAt.UTC()
			o.Items = []dao.OrderLine{}
			orders = append(orders, o)
		}
		if itemID.Valid {
			last := &orders[len(orders)-1]
			last.Items = append(last.Items, dao.OrderLine{
				ItemID:       int(itemID.Int64),
				Name:         name.String,
				CategoryID:   catID.String,
				CategoryName: catName.String,
				Qty:          int(qty.Int64),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pending orders: %w", err)
	}
	return orders, nil
}

func (or *SQLOrderRepository) MarkDone(ctx context.Context, id int64) (bool, error) {
	res, err := or.db.ExecContext(ctx, or.q(`UPDATE orders SET status = ? WHERE id = ? AND status <> ?`),
		string(dao.StatusDone), id, string(dao.StatusDone))
	if err != nil {
		return false, fmt.Errorf("failed to mark order %d done: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}
