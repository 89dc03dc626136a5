package inventory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo mirrors the postgres repository's atomic adjust semantics in memory.
type memRepo struct {
	mu     sync.Mutex
	parts  map[int64]*Part
	nextID int64
	alerts []string
}

func newMemRepo() *memRepo {
	return &memRepo{parts: make(map[int64]*Part)}
}

func (m *memRepo) CreatePart(ctx context.Context, p *Part) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	p.PartID = m.nextID
	cp := *p
	m.parts[p.PartID] = &cp
	return nil
}

func (m *memRepo) GetPartByID(ctx context.Context, id int64) (*Part, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.parts[id]
	if !ok {
		return nil, ErrPartNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memRepo) ListParts(ctx context.Context) ([]*Part, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []*Part
	for _, p := range m.parts {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (m *memRepo) AdjustStock(ctx context.Context, partID int64, change int) (*Part, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.parts[partID]
	if !ok {
		return nil, "", ErrPartNotFound
	}
	newLevel := p.StockLevel + change
	if newLevel < 0 {
		return nil, "", ErrInsufficientStock
	}
	alert := TransitionAlert(p.Name, p.StockLevel, newLevel)
	p.StockLevel = newLevel
	p.Status = ClassifyStock(newLevel)
	if alert != "" {
		m.alerts = append(m.alerts, alert)
	}
	cp := *p
	return &cp, alert, nil
}

func seedPart(t *testing.T, repo *memRepo, stock int) *Part {
	t.Helper()
	p := &Part{Name: "Stepper Driver", StockLevel: stock, MinThreshold: 5, MaxThreshold: 100, Status: ClassifyStock(stock)}
	require.NoError(t, repo.CreatePart(context.Background(), p))
	return p
}

func TestAdjustStock_AppliesDeltaAndRefreshesStatus(t *testing.T) {
	repo := newMemRepo()
	p := seedPart(t, repo, 20)
	svc := NewService(repo)

	res, err := svc.AdjustStock(context.Background(), AdjustStockRequest{PartID: p.PartID, Change: -10})
	require.NoError(t, err)
	assert.Equal(t, 10, res.UpdatedPart.StockLevel)
	assert.Equal(t, StatusLow, res.UpdatedPart.Status)
	require.NotNil(t, res.Notification)
	assert.Contains(t, *res.Notification, "Low stock alert")
}

func TestAdjustStock_NoAlertWithoutCrossing(t *testing.T) {
	repo := newMemRepo()
	p := seedPart(t, repo, 10)
	svc := NewService(repo)

	res, err := svc.AdjustStock(context.Background(), AdjustStockRequest{PartID: p.PartID, Change: -2})
	require.NoError(t, err)
	assert.Equal(t, 8, res.UpdatedPart.StockLevel)
	assert.Nil(t, res.Notification, "already-low part must not re-alert")
	assert.Empty(t, repo.alerts)
}

func TestAdjustStock_RejectsNegativeResult(t *testing.T) {
	repo := newMemRepo()
	p := seedPart(t, repo, 3)
	svc := NewService(repo)

	_, err := svc.AdjustStock(context.Background(), AdjustStockRequest{PartID: p.PartID, Change: -5})
	require.ErrorIs(t, err, ErrInsufficientStock)

	got, err := repo.GetPartByID(context.Background(), p.PartID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.StockLevel, "failed adjustment must leave stock untouched")
}

func TestAdjustStock_Validation(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	_, err := svc.AdjustStock(ctx, AdjustStockRequest{PartID: 0, Change: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AdjustStock(ctx, AdjustStockRequest{PartID: 1, Change: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdjustStock_UnknownPart(t *testing.T) {
	svc := NewService(newMemRepo())
	_, err := svc.AdjustStock(context.Background(), AdjustStockRequest{PartID: 9, Change: 1})
	assert.ErrorIs(t, err, ErrPartNotFound)
}

func TestCreatePart_DefaultsAndDerivedStatus(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	p, err := svc.CreatePart(context.Background(), CreatePartRequest{Name: "Encoder", StockLevel: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, p.MinThreshold)
	assert.Equal(t, 100, p.MaxThreshold)
	assert.Equal(t, StatusCritical, p.Status)

	_, err = svc.CreatePart(context.Background(), CreatePartRequest{Name: ""})
	assert.Error(t, err)
}
