package usecase

import (
	"context"

	"pantry-assistant/internal/model"
	"pantry-assistant/internal/pantry/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepository implements repository.Repository in memory, recording
// mutations so tests can assert on the chosen store calls.
type mockRepository struct {
	items []model.PantryItem

	listErr   error
	createErr error
	updateErr error
	deleteErr map[string]error // per-item-id delete failures

	created []repository.CreateItemOptions
	updated map[string]int // item id -> quantity set
	deleted []string
}

func newMockRepository(items ...model.PantryItem) *mockRepository {
	return &mockRepository{
		items:     items,
		deleteErr: map[string]error{},
		updated:   map[string]int{},
	}
}

func (m *mockRepository) ListItems(ctx context.Context, userID string) ([]model.PantryItem, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockRepository) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.PantryItem, error) {
	if m.createErr != nil {
		return model.PantryItem{}, m.createErr
	}
	m.created = append(m.created, opt)
	return model.PantryItem{
		ID:       "new",
		Name:     opt.Name,
		Quantity: opt.Quantity,
		Category: opt.Category,
	}, nil
}

func (m *mockRepository) SetQuantity(ctx context.Context, itemID string, quantity int) (model.PantryItem, error) {
	if m.updateErr != nil {
		return model.PantryItem{}, m.updateErr
	}
	m.updated[itemID] = quantity
	return model.PantryItem{ID: itemID, Quantity: quantity}, nil
}

func (m *mockRepository) DeleteItem(ctx context.Context, itemID string) error {
	if err := m.deleteErr[itemID]; err != nil {
		return err
	}
	m.deleted = append(m.deleted, itemID)
	return nil
}
