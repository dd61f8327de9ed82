package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"order-desk/internal/common/logger"
	"order-desk/internal/microservices/order/domain/dao"
)

// fileState is the on-disk document, rewritten wholesale after each mutation.
type fileState struct {
	Orders      []dao.Order `json:"orders"`
	NextOrderID int64       `json:"next_order_id"`
}

// FileOrderRepository keeps all orders in memory and mirrors them to one JSON
// file. It assumes a single writer process; concurrent processes sharing the
// file lose updates (last write wins).
type FileOrderRepository struct {
	path string
	lg   *logger.Logger

	mu     sync.Mutex
	orders []dao.Order
	nextID int64
}

// NewFileOrderRepository loads path. A missing or unreadable file starts the
// store empty; read errors are logged, never returned. A file that does not
// decode is renamed to <path>.corrupt-<unix> and id assignment continues past
// every id still readable in it.
func NewFileOrderRepository(path string, lg *logger.Logger) *FileOrderRepository {
	if lg == nil {
		lg = logger.New("order-store")
	}
	r := &FileOrderRepository{path: path, lg: lg, nextID: 1}
	r.load()
	return r
}

func (r *FileOrderRepository) load() {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.lg.Error("order_file_load_failed", err, map[string]any{"path": r.path})
		}
		return
	}
	var st fileState
	if err := json.Unmarshal(b, &st); err != nil {
		r.nextID = salvageNextID(b)
		aside := r.moveAside()
		r.lg.Error("order_file_load_failed", err, map[string]any{
			"path":     r.path,
			"moved_to": aside,
			"next_id":  r.nextID,
		})
		return
	}

	next := st.NextOrderID
	for _, o := range st.Orders {
		o.CreatedAt = o.CreatedAt.UTC()
		r.orders = append(r.orders, o)
		if o.ID >= next {
			next = o.ID + 1
		}
	}
	if next < 1 {
		next = 1
	}
	r.nextID = next
	sort.Slice(r.orders, func(i, j int) bool { return r.orders[i].ID < r.orders[j].ID })
}

// salvageNextID reads only the order ids and the counter from a document the
// full decode rejected, so ids already handed out are never assigned again.
func salvageNextID(b []byte) int64 {
	next := int64(1)
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return next
	}

	var counter int64
	if json.Unmarshal(raw["next_order_id"], &counter) == nil && counter > next {
		next = counter
	}
	var orders []json.RawMessage
	if json.Unmarshal(raw["orders"], &orders) != nil {
		return next
	}
	for _, o := range orders {
		var head struct {
			ID int64 `json:"id"`
		}
		if json.Unmarshal(o, &head) == nil && head.ID >= next {
			next = head.ID + 1
		}
	}
	return next
}

// moveAside renames an unreadable file so the next save does not overwrite
// it. Returns the new path, or "" when the rename failed.
func (r *FileOrderRepository) moveAside() string {
	aside := fmt.Sprintf("%s.corrupt-%d", r.path, time.Now().Unix())
	if err := os.Rename(r.path, aside); err != nil {
		r.lg.Error("order_file_move_aside_failed", err, map[string]any{"path": r.path})
		return ""
	}
	return aside
}

// save must be called with mu held. Failures are logged only.
func (r *FileOrderRepository) save() {
	st := fileState{Orders: r.orders, NextOrderID: r.nextID}
	if st.Orders == nil {
		st.Orders = []dao.Order{}
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		r.lg.Error("order_file_save_failed", err, map[string]any{"path": r.path})
		return
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		r.lg.Error("order_file_save_failed", err, map[string]any{"path": r.path})
		return
	}
	tmpName := tmp.Name()
	if _, err = tmp.Write(b); err == nil {
		err = tmp.Close()
	} else {
		_ = tmp.Close()
	}
	if err == nil {
		err = os.Rename(tmpName, r.path)
	}
	if err != nil {
		_ = os.Remove(tmpName)
		r.lg.Error("order_file_save_failed", err, map[string]any{"path": r.path})
	}
}

func (r *FileOrderRepository) Create(_ context.Context, order dao.Order) (dao.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order = order.Clone()
	order.ID = r.nextID
	order.CreatedAt = order.CreatedAt.UTC()
	if order.Status == "" {
		order.Status = dao.StatusNew
	}
	r.nextID++
	r.orders = append(r.orders, order)
	r.save()
	return order.Clone(), nil
}

func (r *FileOrderRepository) ListPending(_ context.Context) ([]dao.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []dao.Order{}
	for _, o := range r.orders {
		if o.Pending() {
			out = append(out, o.Clone())
		}
	}
	return out, nil
}

func (r *FileOrderRepository) MarkDone(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID != id {
			continue
		}
		if r.orders[i].Status == dao.StatusDone {
			return false, nil
		}
		r.orders[i].Status = dao.StatusDone
		r.save()
		return true, nil
	}
	return false, nil
}

// NextID is the id the next Create will assign.
func (r *FileOrderRepository) NextID() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nextID
}

func (r *FileOrderRepository) Close() error { return nil }
