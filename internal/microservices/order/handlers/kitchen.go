package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"order-desk/internal/common/logger"
	dto "order-desk/internal/microservices/order/domain/dto"
	"order-desk/internal/microservices/order/service"
)

type KitchenHandler struct {
	service      service.OrderServiceInterface
	pollInterval time.Duration
	lg           *logger.Logger
}

func NewKitchenHandler(s service.OrderServiceInterface, pollInterval time.Duration, lg *logger.Logger) *KitchenHandler {
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}
	return &KitchenHandler{service: s, pollInterval: pollInterval, lg: lg}
}

type kitchenPage struct {
	PollMillis int64
}

func (kh *KitchenHandler) Display(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, kh.lg, "kitchen.gohtml", kitchenPage{PollMillis: kh.pollInterval.Milliseconds()})
}

func (kh *KitchenHandler) PendingOrders(w http.ResponseWriter, r *http.Request) {
	views, err := kh.service.PendingOrders(r.Context())
	if err != nil {
		logger.FromContext(r.Context(), kh.lg).Error("pending_orders_failed", err, nil)
		writeProblem(w, http.StatusInternalServerError, "db_error", "pending orders are unavailable")
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// MarkDone always answers success: unknown ids are a no-op and storage
// failures are only logged.
func (kh *KitchenHandler) MarkDone(w http.ResponseWriter, r *http.Request) {
	lg := logger.FromContext(r.Context(), kh.lg)

	id, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		lg.Debug("mark_done_unknown_id", map[string]any{"order_id": chi.URLParam(r, "order_id")})
		writeJSON(w, http.StatusOK, dto.DoneResponse{Success: true})
		return
	}
	if err := kh.service.MarkDone(r.Context(), id); err != nil {
		lg.Error("mark_done_failed", err, map[string]any{"order_id": id})
	}
	writeJSON(w, http.StatusOK, dto.DoneResponse{Success: true})
}
