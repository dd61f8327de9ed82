package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order-desk/internal/common/logger"
	"order-desk/internal/microservices/order/domain/dao"
)

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "orders.json")

	repo := NewFileOrderRepository(path, quietLogger())
	a, err := repo.Create(ctx, sampleOrder("Alice", alooPalak, sahiPaneer))
	require.NoError(t, err)
	_, err = repo.Create(ctx, sampleOrder("Bob", sahiPaneer))
	require.NoError(t, err)
	_, err = repo.MarkDone(ctx, a.ID)
	require.NoError(t, err)

	reloaded := NewFileOrderRepository(path, quietLogger())
	assert.Equal(t, repo.orders, reloaded.orders)
	assert.Equal(t, repo.NextID(), reloaded.NextID())

	var st fileState
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &st))
	assert.Equal(t, int64(3), st.NextOrderID)
	assert.Len(t, st.Orders, 2)
}

func TestFileMarkDoneAndPending(t *testing.T) {
	ctx := context.Background()
	repo := NewFileOrderRepository(filepath.Join(t.TempDir(), "orders.json"), quietLogger())

	a, err := repo.Create(ctx, sampleOrder("Alice", alooPalak))
	require.NoError(t, err)
	b, err := repo.Create(ctx, sampleOrder("Bob", sahiPaneer))
	require.NoError(t, err)

	changed, err := repo.MarkDone(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = repo.MarkDone(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, changed)
	changed, err = repo.MarkDone(ctx, 5)
	require.NoError(t, err)
	assert.False(t, changed)

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, b.ID, pending[0].ID)

	// callers get copies
	pending[0].Items[0].Qty = 99
	again, err := repo.ListPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, again[0].Items[0].Qty)
}

func TestFileLoadFailureStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var logs bytes.Buffer
	repo := NewFileOrderRepository(path, logger.NewWithWriter("test", &logs, logger.LevelDebug))

	pending, err := repo.ListPending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.Equal(t, int64(1), repo.NextID())
	assert.Contains(t, logs.String(), "order_file_load_failed")
}

func TestFileUndecodableFileIsKeptAndIDsAdvance(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.json")
	legacy := `{
  "orders": [
    {"id": 7, "customer_name": "Alice", "table": "5", "status": "new", "created_at": "12:04:05",
     "items": [{"id": 1, "name": "Aloo Palak", "qty": 2}]}
  ],
  "next_order_id": 8
}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	var logs bytes.Buffer
	repo := NewFileOrderRepository(path, logger.NewWithWriter("test", &logs, logger.LevelDebug))
	assert.Contains(t, logs.String(), "order_file_load_failed")
	assert.Equal(t, int64(8), repo.NextID())

	o, err := repo.Create(context.Background(), sampleOrder("Bob", sahiPaneer))
	require.NoError(t, err)
	assert.Equal(t, int64(8), o.ID)

	aside, err := filepath.Glob(path + ".corrupt-*")
	require.NoError(t, err)
	require.Len(t, aside, 1)
	kept, err := os.ReadFile(aside[0])
	require.NoError(t, err)
	assert.Equal(t, legacy, string(kept))
}

func TestSalvageNextID(t *testing.T) {
	assert.Equal(t, int64(1), salvageNextID([]byte("{not json")))
	assert.Equal(t, int64(5), salvageNextID([]byte(`{"next_order_id": 5, "orders": "broken"}`)))
	assert.Equal(t, int64(10), salvageNextID([]byte(`{"next_order_id": 2, "orders": [{"id": 9}, {"id": "x"}]}`)))
}

func TestFileMissingFileIsSilent(t *testing.T) {
	var logs bytes.Buffer
	repo := NewFileOrderRepository(filepath.Join(t.TempDir(), "absent.json"), logger.NewWithWriter("test", &logs, logger.LevelDebug))
	assert.Equal(t, int64(1), repo.NextID())
	assert.Empty(t, logs.String())
}

func TestFileResumesIDsPastMaxExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	st := fileState{
		Orders: []dao.Order{
			{ID: 4, CustomerName: "x", Status: dao.StatusDone, CreatedAt: testTime, Items: []dao.OrderLine{alooPalak}},
			{ID: 7, CustomerName: "y", Status: dao.StatusNew, CreatedAt: testTime, Items: []dao.OrderLine{alooPalak}},
		},
		NextOrderID: 2, // stale counter
	}
	b, err := json.Marshal(st)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o644))

	repo := NewFileOrderRepository(path, quietLogger())
	o, err := repo.Create(context.Background(), sampleOrder("z", sahiPaneer))
	require.NoError(t, err)
	assert.Equal(t, int64(8), o.ID)
}

func TestFileSaveFailureIsNotReturned(t *testing.T) {
	var logs bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing-dir", "orders.json")
	repo := NewFileOrderRepository(path, logger.NewWithWriter("test", &logs, logger.LevelDebug))

	o, err := repo.Create(context.Background(), sampleOrder("Alice", alooPalak))
	require.NoError(t, err)
	assert.Equal(t, int64(1), o.ID)
	assert.Contains(t, logs.String(), "order_file_save_failed")
}
