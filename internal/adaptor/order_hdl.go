package adaptor

import (
	"fmt"
	"net/http"

	"sunainscent-api/internal/dto/request"
	"sunainscent-api/internal/usecase"
	"sunainscent-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	defaultOrderLimit    = 50
	maxOrderLimit        = 100
	defaultMyOrdersLimit = 20
	maxMyOrdersLimit     = 50
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

func pageFrom(r *http.Request, defaultLimit, maxLimit int) request.PageQuery {
	query := r.URL.Query()
	return request.PageQuery{
		Skip:  utils.ParseInt(query.Get("skip"), 0, 0, 0),
		Limit: utils.ParseInt(query.Get("limit"), defaultLimit, 1, maxLimit),
	}
}

// CreateOrder handles POST /orders (public)
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req request.OrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create order")
		return
	}

	utils.ResponseCreated(w, "Order created successfully", order)
}

// GetOrders handles GET /orders (admin token)
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.OrderListQuery{
		PageQuery:     pageFrom(r, defaultOrderLimit, maxOrderLimit),
		Status:        query.Get("status"),
		CustomerEmail: query.Get("customer_email"),
		Search:        query.Get("search"),
	}

	orders, err := h.service.GetOrders(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", orders)
}

// GetMyOrders handles GET /orders/my-orders
func (h *OrderHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	orders, err := h.service.GetCustomerOrders(r.Context(), principal.Email(),
		pageFrom(r, defaultMyOrdersLimit, maxMyOrdersLimit))
	if err != nil {
		handleServiceError(h.log, w, err, "get my orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", orders)
}

// GetOrderByID handles GET /orders/{id} (admin token)
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.GetOrderByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get order")
		return
	}

	utils.ResponseSuccess(w, "Order retrieved successfully", order)
}

// GetOrderByNumber handles GET /orders/number/{orderNumber} (public tracking)
func (h *OrderHandler) GetOrderByNumber(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.GetOrderByNumber(r.Context(), chi.URLParam(r, "orderNumber"))
	if err != nil {
		handleServiceError(h.log, w, err, "get order by number")
		return
	}

	utils.ResponseSuccess(w, "Order retrieved successfully", order)
}

// UpdateOrder handles PUT /orders/{id} (admin token)
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req request.OrderUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	orderID := chi.URLParam(r, "id")
	order, err := h.service.UpdateOrder(r.Context(), orderID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update order")
		return
	}
	auditLog(h.log, r, "Order updated", orderID)

	utils.ResponseSuccess(w, "Order updated successfully", order)
}

// UpdateOrderStatus handles POST /orders/{id}/update-status?new_status= (admin token)
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	newStatus := r.URL.Query().Get("new_status")
	if newStatus == "" {
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{"new_status": "This field is required"})
		return
	}

	orderID := chi.URLParam(r, "id")
	status, err := h.service.UpdateOrderStatus(r.Context(), orderID, newStatus)
	if err != nil {
		handleServiceError(h.log, w, err, "update order status")
		return
	}
	auditLog(h.log.With(zap.String("status", string(status))), r, "Order status updated", orderID)

	utils.ResponseSuccess(w, fmt.Sprintf("Order status updated to %s", status), nil)
}

// DeleteOrder handles DELETE /orders/{id} (admin token)
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if err := h.service.DeleteOrder(r.Context(), orderID); err != nil {
		handleServiceError(h.log, w, err, "delete order")
		return
	}
	auditLog(h.log, r, "Order deleted", orderID)

	utils.ResponseSuccess(w, "Order deleted successfully", nil)
}

// GetOrderStats handles GET /orders/stats/overview (admin token)
func (h *OrderHandler) GetOrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetOrderStats(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get order stats")
		return
	}

	utils.ResponseSuccess(w, "Order statistics retrieved successfully", stats)
}

// GetOrdersByStatus handles GET /orders/status/{status} (admin token)
func (h *OrderHandler) GetOrdersByStatus(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetOrdersByStatus(r.Context(), chi.URLParam(r, "status"),
		pageFrom(r, defaultOrderLimit, maxOrderLimit))
	if err != nil {
		handleServiceError(h.log, w, err, "get orders by status")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", result)
}
