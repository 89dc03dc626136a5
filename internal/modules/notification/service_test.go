package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu     sync.Mutex
	items  map[int64]*Notification
	nextID int64
}

func newMemRepo() *memRepo {
	return &memRepo{items: make(map[int64]*Notification)}
}

func (m *memRepo) Record(ctx context.Context, n *Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	n.NotificationID = m.nextID
	n.CreatedAt = time.Now()
	cp := *n
	m.items[n.NotificationID] = &cp
	return nil
}

func (m *memRepo) List(ctx context.Context) ([]*Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []*Notification
	for _, n := range m.items {
		cp := *n
		list = append(list, &cp)
	}
	return list, nil
}

func (m *memRepo) Resolve(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.items[id]
	if !ok {
		return ErrNotificationNotFound
	}
	n.Status = StatusResolved
	return nil
}

func TestRecord_InitializesPending(t *testing.T) {
	svc := NewService(newMemRepo())
	partID := int64(3)

	n, err := svc.Record(context.Background(), TypeInventory, "Low stock alert for Bearing! 12 units remaining.", &partID, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, n.Status)
	assert.Equal(t, TypeInventory, n.Type)
	assert.NotZero(t, n.NotificationID)

	_, err = svc.Record(context.Background(), TypeInventory, "", nil, nil)
	assert.Error(t, err)
}

func TestResolve_Idempotent(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	n, err := svc.Record(context.Background(), TypeRisk, "New high risk identified", nil, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Resolve(context.Background(), n.NotificationID))
	// Resolving again is a no-op, not an error.
	require.NoError(t, svc.Resolve(context.Background(), n.NotificationID))

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, StatusResolved, list[0].Status)
}

func TestResolve_UnknownID(t *testing.T) {
	svc := NewService(newMemRepo())
	assert.ErrorIs(t, svc.Resolve(context.Background(), 99), ErrNotificationNotFound)
	assert.ErrorIs(t, svc.Resolve(context.Background(), 0), ErrNotificationNotFound)
}
