package usecase

import (
	"context"
	"fmt"
	"time"

	"sunainscent-api/internal/data/entity"
	"sunainscent-api/internal/data/repository"
	"sunainscent-api/internal/dto/response"

	"go.uber.org/zap"
)

const (
	lowStockThreshold = 10
	recentActivityLen = 5
	recentUsersLen    = 10
	topProductsLen    = 10
	analyticsDays     = 30
)

// statWindows are the reporting period starts, all in UTC.
type statWindows struct {
	today time.Time
	week  time.Time
	month time.Time
}

func windowsAt(now time.Time) statWindows {
	now = now.UTC()
	return statWindows{
		today: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		week:  now.AddDate(0, 0, -7),
		month: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
	}
}

type AdminService interface {
	GetDashboard(ctx context.Context) (*response.DashboardResponse, error)
	GetProductStats(ctx context.Context) (*response.ProductStatsResponse, error)
	GetUserStats(ctx context.Context) (*response.UserStatsResponse, error)
	GetAnalytics(ctx context.Context) (*response.AnalyticsResponse, error)
}

type adminService struct {
	repo *repository.Repository
	now  func() time.Time
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
		log:  log.With(zap.String("service", "admin")),
	}
}

// counter runs a sequence of count queries, stopping at the first error.
type counter struct {
	ctx context.Context
	err error
}

func (c *counter) count(dst *int64, fn func(context.Context) (int64, error)) {
	if c.err != nil {
		return
	}
	*dst, c.err = fn(c.ctx)
}

func (c *counter) sum(dst *float64, fn func(context.Context) (float64, error)) {
	if c.err != nil {
		return
	}
	*dst, c.err = fn(c.ctx)
}

func (s *adminService) GetDashboard(ctx context.Context) (*response.DashboardResponse, error) {
	w := windowsAt(s.now())
	r := s.repo
	var d response.DashboardResponse

	c := &counter{ctx: ctx}
	c.count(&d.Overview.TotalProducts, func(ctx context.Context) (int64, error) { return r.Product.CountByActive(ctx, true) })
	c.count(&d.Overview.InactiveProducts, func(ctx context.Context) (int64, error) { return r.Product.CountByActive(ctx, false) })
	c.count(&d.Overview.TotalOrders, func(ctx context.Context) (int64, error) { return r.Order.Count(ctx, "") })
	c.count(&d.Overview.PendingOrders, func(ctx context.Context) (int64, error) { return r.Order.Count(ctx, entity.OrderStatusPending) })
	c.count(&d.Overview.TotalUsers, r.User.CountAll)
	c.count(&d.Overview.TotalMessages, func(ctx context.Context) (int64, error) { return r.Contact.Count(ctx, false) })
	c.count(&d.Overview.UnreadMessages, func(ctx context.Context) (int64, error) { return r.Contact.Count(ctx, true) })

	c.sum(&d.Revenue.TotalRevenue, func(ctx context.Context) (float64, error) { return r.Order.Revenue(ctx, time.Time{}) })
	c.sum(&d.Revenue.RevenueThisMonth, func(ctx context.Context) (float64, error) { return r.Order.Revenue(ctx, w.month) })

	c.count(&d.RecentActivity.OrdersToday, sinceFn(r.Order.CountSince, w.today))
	c.count(&d.RecentActivity.OrdersThisWeek, sinceFn(r.Order.CountSince, w.week))
	c.count(&d.RecentActivity.MessagesToday, sinceFn(r.Contact.CountSince, w.today))
	c.count(&d.RecentActivity.MessagesThisWeek, sinceFn(r.Contact.CountSince, w.week))
	c.count(&d.RecentActivity.UsersToday, sinceFn(r.User.CountSince, w.today))
	c.count(&d.RecentActivity.UsersThisWeek, sinceFn(r.User.CountSince, w.week))
	if c.err != nil {
		s.log.Error("Failed to build dashboard counts", zap.Error(c.err))
		return nil, fmt.Errorf("dashboard: %w", c.err)
	}

	orders, err := r.Order.FindAll(ctx, repository.OrderFilter{Limit: recentActivityLen})
	if err != nil {
		return nil, fmt.Errorf("dashboard recent orders: %w", err)
	}
	d.RecentOrders = make([]response.OrderSummary, 0, len(orders))
	for _, o := range orders {
		d.RecentOrders = append(d.RecentOrders, response.OrderToSummary(o))
	}

	messages, err := r.Contact.FindRecent(ctx, recentActivityLen)
	if err != nil {
		return nil, fmt.Errorf("dashboard recent messages: %w", err)
	}
	d.RecentMessages = make([]response.ContactSummary, 0, len(messages))
	for _, m := range messages {
		d.RecentMessages = append(d.RecentMessages, response.ContactToSummary(m))
	}

	return &d, nil
}

func sinceFn(fn func(context.Context, time.Time) (int64, error), since time.Time) func(context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) { return fn(ctx, since) }
}

func (s *adminService) GetProductStats(ctx context.Context) (*response.ProductStatsResponse, error) {
	var stats response.ProductStatsResponse

	c := &counter{ctx: ctx}
	c.count(&stats.TotalActive, func(ctx context.Context) (int64, error) { return s.repo.Product.CountByActive(ctx, true) })
	c.count(&stats.TotalInactive, func(ctx context.Context) (int64, error) { return s.repo.Product.CountByActive(ctx, false) })
	if c.err != nil {
		return nil, fmt.Errorf("product stats: %w", c.err)
	}

	categories, err := s.repo.Product.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("product stats: %w", err)
	}
	if categories == nil {
		categories = []repository.CategoryCount{}
	}
	stats.Categories = categories

	lowStock, err := s.repo.Product.FindLowStock(ctx, lowStockThreshold, lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("product stats: %w", err)
	}
	stats.LowStockProducts = make([]response.LowStockProduct, 0, len(lowStock))
	for _, p := range lowStock {
		stats.LowStockProducts = append(stats.LowStockProducts, response.LowStockProduct{
			ID:            p.ID.String(),
			Name:          p.Name,
			StockQuantity: p.StockQuantity,
			Price:         p.Price,
		})
	}

	return &stats, nil
}

func (s *adminService) GetUserStats(ctx context.Context) (*response.UserStatsResponse, error) {
	w := windowsAt(s.now())
	users := s.repo.User
	var stats response.UserStatsResponse

	c := &counter{ctx: ctx}
	c.count(&stats.TotalUsers, users.CountAll)
	c.count(&stats.UsersToday, sinceFn(users.CountSince, w.today))
	c.count(&stats.UsersThisWeek, sinceFn(users.CountSince, w.week))
	c.count(&stats.UsersThisMonth, sinceFn(users.CountSince, w.month))
	if c.err != nil {
		return nil, fmt.Errorf("user stats: %w", c.err)
	}

	recent, err := users.FindRecent(ctx, recentUsersLen)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}
	stats.RecentUsers = make([]response.RecentUser, 0, len(recent))
	for _, u := range recent {
		stats.RecentUsers = append(stats.RecentUsers, response.RecentUser{
			ID:        u.ID.String(),
			Email:     u.Email,
			FirstName: u.FirstName,
			CreatedAt: u.CreatedAt,
		})
	}

	return &stats, nil
}

func (s *adminService) GetAnalytics(ctx context.Context) (*response.AnalyticsResponse, error) {
	since := s.now().AddDate(0, 0, -analyticsDays)

	daily, err := s.repo.Order.DailyStats(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}
	statuses, err := s.repo.Order.StatusDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}
	top, err := s.repo.Order.TopProducts(ctx, topProductsLen)
	if err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}

	if daily == nil {
		daily = []repository.DailyOrderStat{}
	}
	if statuses == nil {
		statuses = []repository.StatusCount{}
	}
	if top == nil {
		top = []repository.ProductSales{}
	}

	return &response.AnalyticsResponse{
		DailyStats:              daily,
		OrderStatusDistribution: statuses,
		TopProducts:             top,
	}, nil
}
