package handlers

import (
	"net/http"

	"order-desk/internal/common/logger"
	"order-desk/internal/menu"
	dto "order-desk/internal/microservices/order/domain/dto"
	"order-desk/internal/microservices/order/service"
)

type OrderHandler struct {
	service service.OrderServiceInterface
	lg      *logger.Logger
}

func NewOrderHandler(s service.OrderServiceInterface, lg *logger.Logger) *OrderHandler {
	return &OrderHandler{service: s, lg: lg}
}

type orderPage struct {
	Categories []menu.Category
	Placed     *dto.OrderView
}

func (oh *OrderHandler) Form(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, oh.lg, "order.gohtml", orderPage{Categories: oh.service.Menu()})
}

// Submit stores the posted order and renders the form again with a
// confirmation. Empty or failed submissions go back to the blank form.
func (oh *OrderHandler) Submit(w http.ResponseWriter, r *http.Request) {
	lg := logger.FromContext(r.Context(), oh.lg)

	if err := r.ParseForm(); err != nil {
		lg.Debug("order_form_unparseable", map[string]any{"error": err.Error()})
		http.Redirect(w, r, "/order", http.StatusSeeOther)
		return
	}

	order, ok, err := oh.service.PlaceOrder(r.Context(), r.PostForm)
	if err != nil {
		lg.Error("order_create_failed", err, nil)
		http.Redirect(w, r, "/order", http.StatusSeeOther)
		return
	}
	if !ok {
		http.Redirect(w, r, "/order", http.StatusSeeOther)
		return
	}

	placed := dto.FromOrder(order, oh.service.Location())
	renderPage(w, r, oh.lg, "order.gohtml", orderPage{Categories: oh.service.Menu(), Placed: &placed})
}

func (oh *OrderHandler) Menu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, oh.service.Menu())
}
