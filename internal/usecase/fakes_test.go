package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"sunainscent-api/internal/data/entity"
	"sunainscent-api/internal/data/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// In-memory repositories. Each can be forced to fail with err.

type memUsers struct {
	byEmail   map[string]*entity.User
	err       error
	createErr error
}

func newMemUsers() *memUsers {
	return &memUsers{byEmail: map[string]*entity.User{}}
}

func (m *memUsers) Create(_ context.Context, user *entity.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byEmail[user.Email]; ok {
		return repository.ErrDuplicate
	}
	m.byEmail[user.Email] = user
	return nil
}

func (m *memUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byEmail[email], nil
}

func (m *memUsers) FindRecent(_ context.Context, limit int) ([]*entity.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	users := make([]*entity.User, 0, len(m.byEmail))
	for _, u := range m.byEmail {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (m *memUsers) CountAll(context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.byEmail)), nil
}

func (m *memUsers) CountSince(_ context.Context, since time.Time) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, u := range m.byEmail {
		if !u.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

type memOrders struct {
	orders []*entity.Order
	err    error
	// createErrs are returned by successive Create calls before succeeding.
	createErrs []error
	creates    int
}

func (m *memOrders) Create(_ context.Context, order *entity.Order) error {
	m.creates++
	if len(m.createErrs) > 0 {
		err := m.createErrs[0]
		m.createErrs = m.createErrs[1:]
		return err
	}
	if m.err != nil {
		return m.err
	}
	m.orders = append(m.orders, order)
	return nil
}

func (m *memOrders) find(match func(*entity.Order) bool) (*entity.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, o := range m.orders {
		if match(o) {
			return o, nil
		}
	}
	return nil, nil
}

func (m *memOrders) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	return m.find(func(o *entity.Order) bool { return o.ID == id })
}

func (m *memOrders) FindByNumber(_ context.Context, number string) (*entity.Order, error) {
	return m.find(func(o *entity.Order) bool { return o.OrderNumber == number })
}

func (m *memOrders) FindAll(_ context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*entity.Order
	for _, o := range m.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.CustomerEmail != "" && !strings.Contains(strings.ToLower(o.CustomerEmail), strings.ToLower(filter.CustomerEmail)) {
			continue
		}
		out = append(out, o)
	}
	return window(out, filter.Offset, filter.Limit), nil
}

func (m *memOrders) FindByCustomerEmail(_ context.Context, email string, offset, limit int) ([]*entity.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*entity.Order
	for _, o := range m.orders {
		if o.CustomerEmail == email {
			out = append(out, o)
		}
	}
	return window(out, offset, limit), nil
}

func (m *memOrders) Update(_ context.Context, order *entity.Order) error {
	if m.err != nil {
		return m.err
	}
	for i, o := range m.orders {
		if o.ID == order.ID {
			m.orders[i] = order
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *memOrders) UpdateStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus) error {
	if m.err != nil {
		return m.err
	}
	for _, o := range m.orders {
		if o.ID == id {
			o.Status = status
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *memOrders) Delete(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i, o := range m.orders {
		if o.ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *memOrders) Count(_ context.Context, status entity.OrderStatus) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, o := range m.orders {
		if status == "" || o.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *memOrders) CountSince(_ context.Context, since time.Time) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, o := range m.orders {
		if !o.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (m *memOrders) Revenue(_ context.Context, since time.Time) (float64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var total float64
	for _, o := range m.orders {
		if o.CreatedAt.Before(since) {
			continue
		}
		total += o.TotalAmount
	}
	return total, nil
}

func (m *memOrders) DailyStats(context.Context, time.Time) ([]repository.DailyOrderStat, error) {
	return nil, m.err
}

func (m *memOrders) StatusDistribution(context.Context) ([]repository.StatusCount, error) {
	return nil, m.err
}

func (m *memOrders) TopProducts(context.Context, int) ([]repository.ProductSales, error) {
	return nil, m.err
}

type memContacts struct {
	messages []*entity.ContactMessage
	err      error
}

func (m *memContacts) Create(_ context.Context, msg *entity.ContactMessage) error {
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, msg)
	return nil
}

func (m *memContacts) FindByID(_ context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, msg := range m.messages {
		if msg.ID == id {
			return msg, nil
		}
	}
	return nil, nil
}

func (m *memContacts) FindAll(_ context.Context, filter repository.ContactFilter) ([]*entity.ContactMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*entity.ContactMessage
	for _, msg := range m.messages {
		if filter.IsRead != nil && msg.IsRead != *filter.IsRead {
			continue
		}
		out = append(out, msg)
	}
	return window(out, filter.Offset, filter.Limit), nil
}

func (m *memContacts) FindRecent(_ context.Context, limit int) ([]*entity.ContactMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	return window(m.messages, 0, limit), nil
}

func (m *memContacts) Update(_ context.Context, msg *entity.ContactMessage) error {
	if m.err != nil {
		return m.err
	}
	for i, existing := range m.messages {
		if existing.ID == msg.ID {
			m.messages[i] = msg
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *memContacts) MarkRead(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for _, msg := range m.messages {
		if msg.ID == id {
			msg.IsRead = true
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *memContacts) MarkAllRead(context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, msg := range m.messages {
		if !msg.IsRead {
			msg.IsRead = true
			n++
		}
	}
	return n, nil
}

func (m *memContacts) Delete(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i, msg := range m.messages {
		if msg.ID == id {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *memContacts) Count(_ context.Context, unreadOnly bool) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, msg := range m.messages {
		if !unreadOnly || !msg.IsRead {
			n++
		}
	}
	return n, nil
}

func (m *memContacts) CountSince(_ context.Context, since time.Time) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, msg := range m.messages {
		if !msg.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

type memProducts struct {
	products []*entity.Product
	err      error
}

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	if m.err != nil {
		return m.err
	}
	m.products = append(m.products, p)
	return nil
}

func (m *memProducts) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memProducts) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, err := m.FindByID(ctx, id)
	if err != nil || p == nil || !p.IsActive {
		return nil, err
	}
	return p, nil
}

func (m *memProducts) FindActive(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*entity.Product
	for _, p := range m.products {
		if !p.IsActive || (filter.Category != "" && p.Category != filter.Category) {
			continue
		}
		out = append(out, p)
	}
	return window(out, filter.Offset, filter.Limit), nil
}

func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	if m.err != nil {
		return m.err
	}
	for i, existing := range m.products {
		if existing.ID == p.ID {
			m.products[i] = p
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *memProducts) Deactivate(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for _, p := range m.products {
		if p.ID == id {
			p.IsActive = false
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *memProducts) Categories(context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	seen := map[string]bool{}
	var out []string
	for _, p := range m.products {
		if p.IsActive && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *memProducts) CountByActive(_ context.Context, active bool) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, p := range m.products {
		if p.IsActive == active {
			n++
		}
	}
	return n, nil
}

func (m *memProducts) CountByCategory(context.Context) ([]repository.CategoryCount, error) {
	return nil, m.err
}

func (m *memProducts) FindLowStock(_ context.Context, threshold, limit int) ([]*entity.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*entity.Product
	for _, p := range m.products {
		if p.IsActive && p.StockQuantity < threshold {
			out = append(out, p)
		}
	}
	return window(out, 0, limit), nil
}

func window[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
