package response

import (
	"time"

	"sunainscent-api/internal/data/repository"
)

type DashboardOverview struct {
	TotalProducts    int64 `json:"total_products"`
	InactiveProducts int64 `json:"inactive_products"`
	TotalOrders      int64 `json:"total_orders"`
	PendingOrders    int64 `json:"pending_orders"`
	TotalUsers       int64 `json:"total_users"`
	TotalMessages    int64 `json:"total_messages"`
	UnreadMessages   int64 `json:"unread_messages"`
}

type DashboardRevenue struct {
	TotalRevenue     float64 `json:"total_revenue"`
	RevenueThisMonth float64 `json:"revenue_this_month"`
}

type DashboardActivity struct {
	OrdersToday      int64 `json:"orders_today"`
	OrdersThisWeek   int64 `json:"orders_this_week"`
	MessagesToday    int64 `json:"messages_today"`
	MessagesThisWeek int64 `json:"messages_this_week"`
	UsersToday       int64 `json:"users_today"`
	UsersThisWeek    int64 `json:"users_this_week"`
}

type DashboardResponse struct {
	Overview       DashboardOverview `json:"overview"`
	Revenue        DashboardRevenue  `json:"revenue"`
	RecentActivity DashboardActivity `json:"recent_activity"`
	RecentOrders   []OrderSummary    `json:"recent_orders"`
	RecentMessages []ContactSummary  `json:"recent_messages"`
}

type LowStockProduct struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	StockQuantity int     `json:"stock_quantity"`
	Price         float64 `json:"price"`
}

type ProductStatsResponse struct {
	TotalActive      int64                      `json:"total_active"`
	TotalInactive    int64                      `json:"total_inactive"`
	Categories       []repository.CategoryCount `json:"categories"`
	LowStockProducts []LowStockProduct          `json:"low_stock_products"`
}

type RecentUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	CreatedAt time.Time `json:"created_at"`
}

type UserStatsResponse struct {
	TotalUsers     int64        `json:"total_users"`
	UsersToday     int64        `json:"users_today"`
	UsersThisWeek  int64        `json:"users_this_week"`
	UsersThisMonth int64        `json:"users_this_month"`
	RecentUsers    []RecentUser `json:"recent_users"`
}

type AnalyticsResponse struct {
	DailyStats              []repository.DailyOrderStat `json:"daily_stats"`
	OrderStatusDistribution []repository.StatusCount    `json:"order_status_distribution"`
	TopProducts             []repository.ProductSales   `json:"top_products"`
}
