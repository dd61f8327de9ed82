package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order-desk/internal/microservices/order/domain/dao"
)

func toronto(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)
	return loc
}

func TestFromOrderConvertsToDisplayZone(t *testing.T) {
	o := dao.Order{
		ID:           3,
		CustomerName: "Alice",
		Table:        "5",
		Status:       dao.StatusNew,
		CreatedAt:    time.Date(2025, 7, 1, 16, 30, 0, 0, time.UTC),
		Items: []dao.OrderLine{
			{ItemID: 1, Name: "Aloo Palak", CategoryID: "sabzi", CategoryName: "Sabzi", Qty: 2},
		},
	}

	v := FromOrder(o, toronto(t))

	assert.Equal(t, "12:30:00", v.CreatedAt, "EDT is UTC-4 in July")
	assert.Equal(t, "new", v.Status)
	require.Len(t, v.Items, 1)
	assert.Equal(t, OrderLineView{ID: 1, Name: "Aloo Palak", Qty: 2, CategoryID: "sabzi", CategoryName: "Sabzi"}, v.Items[0])
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "", FormatClock(time.Time{}, toronto(t)))
	assert.Equal(t, "07:05:09", FormatClock(time.Date(2025, 1, 1, 7, 5, 9, 0, time.UTC), nil))
}

func TestFromOrdersEncodesEmptyArray(t *testing.T) {
	b, err := json.Marshal(FromOrders(nil, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestOrderViewJSONKeys(t *testing.T) {
	v := FromOrder(dao.Order{ID: 1, Status: dao.StatusNew, Items: []dao.OrderLine{{ItemID: 9, Qty: 1}}}, time.UTC)
	b, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, k := range []string{"id", "customer_name", "table", "status", "created_at", "items"} {
		assert.Contains(t, m, k)
	}
	items := m["items"].([]any)
	line := items[0].(map[string]any)
	for _, k := range []string{"id", "name", "qty", "category_id", "category_name"} {
		assert.Contains(t, line, k)
	}
}
