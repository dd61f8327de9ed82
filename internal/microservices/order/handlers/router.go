package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"order-desk/internal/common/httpx"
	"order-desk/internal/common/logger"
)

func Router(h *Handler, lg *logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(httpx.RequestLogger(lg))
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/order", http.StatusFound)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/order", h.OrderHandler.Form)
	r.Post("/order", h.OrderHandler.Submit)
	r.Get("/kitchen", h.KitchenHandler.Display)

	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", h.OrderHandler.Menu)
		r.Get("/orders", h.KitchenHandler.PendingOrders)
		r.Post("/orders/{order_id:[0-9]+}/done", h.KitchenHandler.MarkDone)
	})
	return r
}
