package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sunainscent-api/internal/data/entity"
	"sunainscent-api/internal/data/repository"
	"sunainscent-api/internal/dto/request"
	"sunainscent-api/internal/dto/response"
	"sunainscent-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const orderNumberAttempts = 3

type OrderService interface {
	CreateOrder(ctx context.Context, req *request.OrderRequest) (*response.OrderResponse, error)
	GetOrders(ctx context.Context, query request.OrderListQuery) ([]response.OrderResponse, error)
	GetCustomerOrders(ctx context.Context, email string, page request.PageQuery) ([]response.OrderResponse, error)
	GetOrderByID(ctx context.Context, orderID string) (*response.OrderResponse, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*response.OrderResponse, error)
	UpdateOrder(ctx context.Context, orderID string, req *request.OrderUpdateRequest) (*response.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) (entity.OrderStatus, error)
	DeleteOrder(ctx context.Context, orderID string) error
	GetOrderStats(ctx context.Context) (*response.OrderStats, error)
	GetOrdersByStatus(ctx context.Context, status string, page request.PageQuery) (*response.OrdersByStatusResponse, error)
}

type orderService struct {
	repo repository.OrderRepository
	now  func() time.Time
	log  *zap.Logger
}

func NewOrderService(repo repository.OrderRepository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
		log:  log.With(zap.String("service", "order")),
	}
}

func parseStatus(raw string) (entity.OrderStatus, error) {
	status := entity.OrderStatus(raw)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return status, nil
}

func (s *orderService) CreateOrder(ctx context.Context, req *request.OrderRequest) (*response.OrderResponse, error) {
	now := s.now()

	items := make([]entity.OrderItem, len(req.Items))
	var total float64
	for i, item := range req.Items {
		items[i] = entity.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		}
		total += items[i].Subtotal()
	}

	addr := req.ShippingAddress
	order := &entity.Order{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
		Items:         items,
		ShippingAddress: entity.ShippingAddress{
			FullName:      addr.FullName,
			StreetAddress: addr.StreetAddress,
			City:          addr.City,
			State:         addr.State,
			PostalCode:    addr.PostalCode,
			Country:       addr.Country,
			Phone:         addr.Phone,
		},
		Status:      entity.OrderStatusPending,
		TotalAmount: total,
		Notes:       req.Notes,
	}

	for attempt := 1; ; attempt++ {
		number, err := utils.GenerateOrderNumber(now)
		if err != nil {
			return nil, fmt.Errorf("generate order number: %w", err)
		}
		order.OrderNumber = number

		err = s.repo.Create(ctx, order)
		if err == nil {
			break
		}
		if errors.Is(err, repository.ErrDuplicate) && attempt < orderNumberAttempts {
			s.log.Warn("Order number collision, retrying", zap.String("order_number", number))
			continue
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.Float64("total_amount", order.TotalAmount),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetOrders(ctx context.Context, query request.OrderListQuery) ([]response.OrderResponse, error) {
	filter := repository.OrderFilter{
		CustomerEmail: query.CustomerEmail,
		Search:        query.Search,
		Offset:        query.Offset(),
		Limit:         query.Limit,
	}
	if query.Status != "" {
		status, err := parseStatus(query.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}

	orders, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return response.OrdersToResponse(orders), nil
}

// GetCustomerOrders lists the orders placed under email, newest first.
func (s *orderService) GetCustomerOrders(ctx context.Context, email string, page request.PageQuery) ([]response.OrderResponse, error) {
	orders, err := s.repo.FindByCustomerEmail(ctx, email, page.Offset(), page.Limit)
	if err != nil {
		return nil, fmt.Errorf("get customer orders: %w", err)
	}
	return response.OrdersToResponse(orders), nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (*response.OrderResponse, error) {
	id, err := parseID("order", orderID)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, notFound("order")
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*response.OrderResponse, error) {
	order, err := s.repo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, notFound("order")
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) UpdateOrder(ctx context.Context, orderID string, req *request.OrderUpdateRequest) (*response.OrderResponse, error) {
	id, err := parseID("order", orderID)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, notFound("order")
	}

	if req.Status != nil {
		status, err := parseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		order.Status = status
	}
	if req.AdminNotes != nil {
		order.AdminNotes = req.AdminNotes
	}
	order.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, order); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("order")
		}
		return nil, fmt.Errorf("update order: %w", err)
	}

	s.log.Info("Order updated",
		zap.String("order_id", order.ID.String()),
		zap.String("status", string(order.Status)),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID, status string) (entity.OrderStatus, error) {
	id, err := parseID("order", orderID)
	if err != nil {
		return "", err
	}
	newStatus, err := parseStatus(status)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", notFound("order")
		}
		return "", fmt.Errorf("update order status: %w", err)
	}

	s.log.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("status", string(newStatus)),
	)
	return newStatus, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	id, err := parseID("order", orderID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFound("order")
		}
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (s *orderService) GetOrderStats(ctx context.Context) (*response.OrderStats, error) {
	w := windowsAt(s.now())
	var (
		stats response.OrderStats
		err   error
	)

	if stats.TotalOrders, err = s.repo.Count(ctx, ""); err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	if stats.PendingOrders, err = s.repo.Count(ctx, entity.OrderStatusPending); err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	if stats.OrdersToday, err = s.repo.CountSince(ctx, w.today); err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	if stats.OrdersThisWeek, err = s.repo.CountSince(ctx, w.week); err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	if stats.TotalRevenue, err = s.repo.Revenue(ctx, time.Time{}); err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	if stats.RevenueThisMonth, err = s.repo.Revenue(ctx, w.month); err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}

	return &stats, nil
}

func (s *orderService) GetOrdersByStatus(ctx context.Context, status string, page request.PageQuery) (*response.OrdersByStatusResponse, error) {
	orderStatus, err := parseStatus(status)
	if err != nil {
		return nil, err
	}

	orders, err := s.repo.FindAll(ctx, repository.OrderFilter{
		Status: orderStatus,
		Offset: page.Offset(),
		Limit:  page.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("get orders by status: %w", err)
	}

	return &response.OrdersByStatusResponse{
		Status: orderStatus,
		Count:  len(orders),
		Orders: response.OrdersToResponse(orders),
	}, nil
}
