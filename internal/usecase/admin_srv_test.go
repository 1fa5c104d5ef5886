package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"sunainscent-api/internal/data/entity"
	"sunainscent-api/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWindowsAt(t *testing.T) {
	t.Parallel()

	wib := time.FixedZone("WIB", 7*60*60)
	// 02:00 WIB on the 1st is still the previous month in UTC.
	w := windowsAt(time.Date(2024, time.June, 1, 2, 0, 0, 0, wib))

	assert.Equal(t, time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC), w.today)
	assert.Equal(t, time.Date(2024, time.May, 24, 19, 0, 0, 0, time.UTC), w.week)
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), w.month)
}

type adminFixture struct {
	users    *memUsers
	products *memProducts
	orders   *memOrders
	contacts *memContacts
	srv      *adminService
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		users:    newMemUsers(),
		products: &memProducts{},
		orders:   &memOrders{},
		contacts: &memContacts{},
	}
	repo := &repository.Repository{User: f.users, Product: f.products, Order: f.orders, Contact: f.contacts}
	f.srv = NewAdminService(repo, zap.NewNop()).(*adminService)
	f.srv.now = func() time.Time { return fixedNow }
	return f
}

func (f *adminFixture) addUser(email string, createdAt time.Time) {
	f.users.byEmail[email] = &entity.User{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: createdAt},
		Email:      email,
		FirstName:  "User",
	}
}

func TestAdminService_GetDashboard(t *testing.T) {
	t.Parallel()

	f := newAdminFixture()
	f.addUser("a@x.com", fixedNow.Add(-time.Hour))
	f.addUser("b@x.com", fixedNow.AddDate(0, -2, 0))
	seedProduct(f.products, "A", "women", true, 20)
	seedProduct(f.products, "B", "men", false, 20)
	seedOrder(f.orders, "a@x.com", entity.OrderStatusPending, fixedNow.Add(-time.Hour), 100)
	seedOrder(f.orders, "a@x.com", entity.OrderStatusDelivered, fixedNow.AddDate(0, -1, 0), 300)
	seedMessage(f.contacts, false, fixedNow.Add(-time.Minute))

	d, err := f.srv.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), d.Overview.TotalProducts)
	assert.Equal(t, int64(1), d.Overview.InactiveProducts)
	assert.Equal(t, int64(2), d.Overview.TotalOrders)
	assert.Equal(t, int64(1), d.Overview.PendingOrders)
	assert.Equal(t, int64(2), d.Overview.TotalUsers)
	assert.Equal(t, int64(1), d.Overview.TotalMessages)
	assert.Equal(t, int64(1), d.Overview.UnreadMessages)

	assert.InDelta(t, 400, d.Revenue.TotalRevenue, 1e-9)
	assert.InDelta(t, 100, d.Revenue.RevenueThisMonth, 1e-9)

	assert.Equal(t, int64(1), d.RecentActivity.OrdersToday)
	assert.Equal(t, int64(1), d.RecentActivity.UsersToday)
	assert.Equal(t, int64(1), d.RecentActivity.MessagesThisWeek)

	assert.Len(t, d.RecentOrders, 2)
	assert.Len(t, d.RecentMessages, 1)
}

func TestAdminService_GetDashboard_StoreFailure(t *testing.T) {
	t.Parallel()

	f := newAdminFixture()
	storeErr := errors.New("connection refused")
	f.orders.err = storeErr

	_, err := f.srv.GetDashboard(context.Background())
	assert.ErrorIs(t, err, storeErr)
}

func TestAdminService_GetProductStats(t *testing.T) {
	t.Parallel()

	f := newAdminFixture()
	seedProduct(f.products, "Low", "women", true, 3)
	seedProduct(f.products, "Plenty", "women", true, 50)
	seedProduct(f.products, "Hidden low", "men", false, 1)

	stats, err := f.srv.GetProductStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalActive)
	assert.Equal(t, int64(1), stats.TotalInactive)
	assert.NotNil(t, stats.Categories)
	require.Len(t, stats.LowStockProducts, 1)
	assert.Equal(t, "Low", stats.LowStockProducts[0].Name)
}

func TestAdminService_GetUserStats(t *testing.T) {
	t.Parallel()

	f := newAdminFixture()
	f.addUser("today@x.com", fixedNow.Add(-time.Hour))
	f.addUser("week@x.com", fixedNow.AddDate(0, 0, -3))
	f.addUser("old@x.com", fixedNow.AddDate(-1, 0, 0))

	stats, err := f.srv.GetUserStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.UsersToday)
	assert.Equal(t, int64(2), stats.UsersThisWeek)
	assert.Equal(t, int64(2), stats.UsersThisMonth)
	require.Len(t, stats.RecentUsers, 3)
	assert.Equal(t, "today@x.com", stats.RecentUsers[0].Email)
}

func TestAdminService_GetAnalytics_EmptyIsNotNull(t *testing.T) {
	t.Parallel()

	f := newAdminFixture()

	a, err := f.srv.GetAnalytics(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, a.DailyStats)
	assert.NotNil(t, a.OrderStatusDistribution)
	assert.NotNil(t, a.TopProducts)
}
