package order

import (
	"context"
	"sync"
	"testing"

	"github.com/Yohannesabesheger/eep-app/internal/modules/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo mirrors the postgres repository semantics in memory: every mutating
// call holds the lock for its whole read-validate-write sequence, the same
// serialization the row lock provides.
type memRepo struct {
	mu            sync.Mutex
	parts         map[int64]*memPart
	users         map[int64]memUser
	orders        map[int64]*PartOrder
	notifications []string
	nextOrderID   int64
}

type memPart struct {
	name  string
	stock int
}

type memUser struct {
	name   string
	email  string
	active bool
}

func newMemRepo() *memRepo {
	return &memRepo{
		parts:  make(map[int64]*memPart),
		users:  make(map[int64]memUser),
		orders: make(map[int64]*PartOrder),
	}
}

func (m *memRepo) CreateOrder(ctx context.Context, o *PartOrder) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.parts[o.PartID]
	if !ok {
		return 0, false, ErrPartNotFound
	}
	u, ok := m.users[o.OrderedBy]
	if !ok {
		return 0, false, ErrUserNotFound
	}
	if !u.active {
		return 0, false, ErrUserInactive
	}
	if o.Quantity > p.stock {
		return 0, false, ErrInsufficientStock
	}

	m.nextOrderID++
	o.OrderID = m.nextOrderID
	o.Status = StatusPending
	o.PartName = p.name
	o.UserName = u.name
	o.UserEmail = u.email
	m.orders[o.OrderID] = o

	prev := p.stock
	p.stock -= o.Quantity

	notified := false
	if alert := inventory.TransitionAlert(p.name, prev, p.stock); alert != "" {
		m.notifications = append(m.notifications, alert)
		notified = true
	}
	if o.Priority == PriorityHigh || o.Priority == PriorityUrgent {
		m.notifications = append(m.notifications, "high priority order")
		notified = true
	}
	return p.stock, notified, nil
}

func (m *memRepo) CancelOrder(ctx context.Context, orderID int64) (*PartOrder, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[orderID]
	if !ok {
		return nil, false, ErrOrderNotFound
	}
	switch o.Status {
	case StatusCancelled:
		return o, false, nil
	case StatusCompleted:
		return nil, false, ErrInvalidTransition
	}
	o.Status = StatusCancelled
	m.parts[o.PartID].stock += o.Quantity
	return o, true, nil
}

func (m *memRepo) CompleteOrder(ctx context.Context, orderID int64) (*PartOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	if o.Status != StatusPending {
		return nil, ErrInvalidTransition
	}
	o.Status = StatusCompleted
	return o, nil
}

func (m *memRepo) GetOrderByID(ctx context.Context, orderID int64) (*PartOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (m *memRepo) ListOrders(ctx context.Context) ([]*PartOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []*PartOrder
	for _, o := range m.orders {
		list = append(list, o)
	}
	return list, nil
}

func (m *memRepo) stockOf(partID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.parts[partID].stock
}

func (m *memRepo) orderCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

func (m *memRepo) notificationCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.notifications)
}

func seededRepo(stock int) *memRepo {
	repo := newMemRepo()
	repo.parts[1] = &memPart{name: "Servo Motor", stock: stock}
	repo.users[7] = memUser{name: "Alice", email: "alice@example.com", active: true}
	repo.users[8] = memUser{name: "Bob", email: "bob@example.com", active: false}
	return repo
}

func TestCreateOrder_DecrementsStockAndNotifiesOnCrossing(t *testing.T) {
	repo := seededRepo(10)
	svc := NewService(repo)

	res, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		PartID: 1, Quantity: 8, OrderedBy: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, res.Order.Status)
	assert.Equal(t, PriorityMedium, res.Order.Priority)
	assert.Equal(t, "Servo Motor", res.Order.PartName)
	assert.Equal(t, "Alice", res.Order.UserName)
	assert.True(t, res.InventoryUpdated)
	assert.Equal(t, 2, res.NewStockLevel)
	assert.Equal(t, 2, repo.stockOf(1))

	// 10 -> 2 crosses the critical boundary, exactly one alert.
	assert.True(t, res.NotificationCreated)
	assert.Equal(t, 1, repo.notificationCount())
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	repo := seededRepo(3)
	svc := NewService(repo)

	_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		PartID: 1, Quantity: 5, OrderedBy: 7,
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	assert.Equal(t, 3, repo.stockOf(1))
	assert.Equal(t, 0, repo.orderCount())
	assert.Equal(t, 0, repo.notificationCount())
}

func TestCreateOrder_Validation(t *testing.T) {
	repo := seededRepo(10)
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, CreateOrderRequest{PartID: 1, Quantity: 0, OrderedBy: 7})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.CreateOrder(ctx, CreateOrderRequest{PartID: 1, Quantity: 1, OrderedBy: 7, Priority: "ASAP"})
	assert.ErrorIs(t, err, ErrInvalidPriority)

	_, err = svc.CreateOrder(ctx, CreateOrderRequest{PartID: 99, Quantity: 1, OrderedBy: 7})
	assert.ErrorIs(t, err, ErrPartNotFound)

	_, err = svc.CreateOrder(ctx, CreateOrderRequest{PartID: 1, Quantity: 1, OrderedBy: 99})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.CreateOrder(ctx, CreateOrderRequest{PartID: 1, Quantity: 1, OrderedBy: 8})
	assert.ErrorIs(t, err, ErrUserInactive)

	assert.Equal(t, 10, repo.stockOf(1))
	assert.Equal(t, 0, repo.orderCount())
}

func TestCreateOrder_HighPriorityAlwaysNotifies(t *testing.T) {
	repo := seededRepo(100)
	svc := NewService(repo)

	res, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		PartID: 1, Quantity: 1, OrderedBy: 7, Priority: "urgent",
	})
	require.NoError(t, err)

	// 100 -> 99 crosses nothing, yet the priority alone raises an alert.
	assert.Equal(t, PriorityUrgent, res.Order.Priority)
	assert.True(t, res.NotificationCreated)
	assert.Equal(t, 1, repo.notificationCount())
}

func TestCancelOrder_RestoresStockExactlyOnce(t *testing.T) {
	repo := seededRepo(10)
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.CreateOrder(ctx, CreateOrderRequest{PartID: 1, Quantity: 8, OrderedBy: 7})
	require.NoError(t, err)
	require.Equal(t, 2, repo.stockOf(1))

	res, err := svc.CancelOrder(ctx, created.Order.OrderID)
	require.NoError(t, err)
	assert.True(t, res.InventoryRestored)
	assert.Equal(t, StatusCancelled, res.UpdatedOrder.Status)
	assert.Equal(t, 10, repo.stockOf(1))

	// Cancelling again must not restore a second time.
	res, err = svc.CancelOrder(ctx, created.Order.OrderID)
	require.NoError(t, err)
	assert.False(t, res.InventoryRestored)
	assert.Equal(t, 10, repo.stockOf(1))
}

func TestCancelOrder_CompletedOrderIsNotCancellable(t *testing.T) {
	repo := seededRepo(10)
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.CreateOrder(ctx, CreateOrderRequest{PartID: 1, Quantity: 4, OrderedBy: 7})
	require.NoError(t, err)

	_, err = svc.CompleteOrder(ctx, created.Order.OrderID)
	require.NoError(t, err)

	_, err = svc.CancelOrder(ctx, created.Order.OrderID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 6, repo.stockOf(1), "completed order must never give stock back")
}

func TestCompleteOrder_OnlyFromPending(t *testing.T) {
	repo := seededRepo(10)
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.CreateOrder(ctx, CreateOrderRequest{PartID: 1, Quantity: 2, OrderedBy: 7})
	require.NoError(t, err)

	res, err := svc.CompleteOrder(ctx, created.Order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, res.UpdatedOrder.Status)
	assert.Equal(t, 8, repo.stockOf(1), "completion has no stock effect")

	_, err = svc.CompleteOrder(ctx, created.Order.OrderID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	cancelled, err := svc.CreateOrder(ctx, CreateOrderRequest{PartID: 1, Quantity: 2, OrderedBy: 7})
	require.NoError(t, err)
	_, err = svc.CancelOrder(ctx, cancelled.Order.OrderID)
	require.NoError(t, err)
	_, err = svc.CompleteOrder(ctx, cancelled.Order.OrderID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelOrder_NotFound(t *testing.T) {
	svc := NewService(seededRepo(10))
	_, err := svc.CancelOrder(context.Background(), 42)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCreateOrder_ConcurrentOrdersNeverOverdraw(t *testing.T) {
	repo := seededRepo(5)
	svc := NewService(repo)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateOrder(context.Background(), CreateOrderRequest{
				PartID: 1, Quantity: 5, OrderedBy: 7,
			})
		}(i)
	}
	wg.Wait()

	succeeded, failed := 0, 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrInsufficientStock)
			failed++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 0, repo.stockOf(1))
	assert.GreaterOrEqual(t, repo.stockOf(1), 0, "stock must never go negative")
}
