package repository

import (
	"context"
	"fmt"

	"order-desk/internal/common/logger"
	"order-desk/internal/config"
	"order-desk/internal/connections/database"
	"order-desk/internal/microservices/order/domain/dao"
)

type OrderRepositoryInterface interface {
	// Create assigns the id and stores the order together with all of its lines.
	Create(ctx context.Context, order dao.Order) (dao.Order, error)
	// ListPending returns orders that are not done, ascending by id.
	ListPending(ctx context.Context) ([]dao.Order, error)
	// MarkDone reports whether this call moved the order to done. An unknown
	// or already done id yields false and no error.
	MarkDone(ctx context.Context, id int64) (bool, error)
	Close() error
}

type Repository struct {
	OrderRepo OrderRepositoryInterface
}

func New(orders OrderRepositoryInterface) *Repository {
	return &Repository{OrderRepo: orders}
}

func (r *Repository) Close() error {
	if r == nil || r.OrderRepo == nil {
		return nil
	}
	return r.OrderRepo.Close()
}

// Open builds the order store selected by cfg.Storage. The sql backend
// connects and creates the schema if needed.
func Open(ctx context.Context, cfg *config.Config, lg *logger.Logger) (*Repository, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		lg.Info("order_store_opened", map[string]any{"backend": config.BackendFile, "path": cfg.Storage.FilePath})
		return New(NewFileOrderRepository(cfg.Storage.FilePath, lg)), nil
	case config.BackendSQL, "":
		db, dialect, err := database.ConnectDB(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.EnsureSchema(ctx, db, dialect); err != nil {
			_ = db.Close()
			return nil, err
		}
		lg.Info("order_store_opened", map[string]any{"backend": config.BackendSQL, "dialect": string(dialect)})
		return New(NewSQLOrderRepository(db, dialect)), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
