package warehouseservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"plumelet/internal/domain"
	apperror "plumelet/internal/errors"
	"plumelet/internal/pkg/logger"
	"plumelet/internal/pkg/pagination"
	"plumelet/internal/service/warehouseservice"
)

// MockWarehouseRepository é uma implementação mock da interface WarehouseRepository.
type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) Insert(ctx context.Context, warehouse *domain.Warehouse) (string, error) {
	args := m.Called(ctx, warehouse)
	return args.String(0), args.Error(1)
}

func (m *MockWarehouseRepository) SelectOne(ctx context.Context, id string) (*domain.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) SelectAll(ctx context.Context) ([]*domain.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, warehouse *domain.Warehouse) (int64, error) {
	args := m.Called(ctx, warehouse)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWarehouseRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockWarehouseRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockWarehouseRepository) SearchByNamePattern(ctx context.Context, fragment string, pag pagination.Pagination) ([]*domain.Warehouse, error) {
	args := m.Called(ctx, fragment, pag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) CountByNamePattern(ctx context.Context, fragment string) (int, error) {
	args := m.Called(ctx, fragment)
	return args.Int(0), args.Error(1)
}

func storedWarehouse(t *testing.T, id string) *domain.Warehouse {
	t.Helper()
	warehouse, err := domain.WarehouseFromRow(map[string]any{
		"id":         id,
		"name":       "Galpão Central",
		"address":    "Rua A, 100",
		"email":      "galpao@example.com",
		"type":       "owned",
		"created_at": "2024-03-01 12:30:45",
		"updated_at": "2024-03-01 12:30:45",
	})
	assert.NoError(t, err)
	return warehouse
}

// TestCreate_Success testa a criação com recarga do registro persistido.
func TestCreate_Success(t *testing.T) {
	mockRepo := new(MockWarehouseRepository)
	mockLogger := logger.NewLogger("debug")

	svc := warehouseservice.NewService(mockRepo, mockLogger)

	persisted := storedWarehouse(t, "7")
	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Warehouse")).Return("7", nil)
	mockRepo.On("SelectOne", mock.Anything, "7").Return(persisted, nil)

	created, err := svc.Create(context.Background(), domain.WarehouseInput{
		Name:    "Galpão Central",
		Address: "Rua A, 100",
		Email:   "galpao@example.com",
		Type:    "owned",
	})

	assert.NoError(t, err)
	assert.Equal(t, "7", created.ID())
	assert.Equal(t, domain.WarehouseOwned, created.Type())
	mockRepo.AssertExpectations(t)
}

// TestCreate_Fail_TipoInvalido testa que tipo fora do conjunto não chega ao repositório.
func TestCreate_Fail_TipoInvalido(t *testing.T) {
	mockRepo := new(MockWarehouseRepository)
	mockLogger := logger.NewLogger("debug")

	svc := warehouseservice.NewService(mockRepo, mockLogger)

	_, err := svc.Create(context.Background(), domain.WarehouseInput{
		Name:    "Galpão",
		Address: "Rua A, 100",
		Email:   "galpao@example.com",
		Type:    "spaceship",
	})

	assert.Error(t, err)
	valErr, ok := err.(*apperror.ValidationError)
	if assert.True(t, ok) {
		assert.Equal(t, apperror.KindInvalidEnumValue, valErr.Kind)
	}
	mockRepo.AssertNotCalled(t, "Insert")
}

// TestUpdate_Fail_ZeroAffected testa que zero linhas afetadas vira NotFound.
func TestUpdate_Fail_ZeroAffected(t *testing.T) {
	mockRepo := new(MockWarehouseRepository)
	mockLogger := logger.NewLogger("debug")

	svc := warehouseservice.NewService(mockRepo, mockLogger)

	current := storedWarehouse(t, "7")
	mockRepo.On("SelectOne", mock.Anything, "7").Return(current, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Warehouse")).Return(int64(0), nil)

	_, err := svc.Update(context.Background(), "7", domain.WarehouseInput{
		Name:    "Galpão Sul",
		Address: "Rua B, 200",
		Email:   "sul@example.com",
		Type:    "supplier",
	})

	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	mockRepo.AssertExpectations(t)
}

// TestSearchByName_Fail_EmptyFragment testa o fragmento vazio.
func TestSearchByName_Fail_EmptyFragment(t *testing.T) {
	mockRepo := new(MockWarehouseRepository)
	mockLogger := logger.NewLogger("debug")

	svc := warehouseservice.NewService(mockRepo, mockLogger)

	_, _, err := svc.SearchByName(context.Background(), "", pagination.Default())

	assert.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "SearchByNamePattern")
}
