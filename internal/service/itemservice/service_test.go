package itemservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"plumelet/internal/domain"
	apperror "plumelet/internal/errors"
	"plumelet/internal/pkg/logger"
	"plumelet/internal/pkg/pagination"
	"plumelet/internal/service/itemservice"
)

// MockItemRepository é uma implementação mock da interface ItemRepository.
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Insert(ctx context.Context, item *domain.Item) (string, error) {
	args := m.Called(ctx, item)
	return args.String(0), args.Error(1)
}

func (m *MockItemRepository) SelectOne(ctx context.Context, id string) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) SelectAll(ctx context.Context) ([]*domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, item *domain.Item) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockItemRepository) SearchByNamePattern(ctx context.Context, fragment string, pag pagination.Pagination) ([]*domain.Item, error) {
	args := m.Called(ctx, fragment, pag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Item), args.Error(1)
}

func (m *MockItemRepository) CountByNamePattern(ctx context.Context, fragment string) (int, error) {
	args := m.Called(ctx, fragment)
	return args.Int(0), args.Error(1)
}

func storedItem(t *testing.T, id string) *domain.Item {
	t.Helper()
	item, err := domain.ItemFromRow(map[string]any{
		"id":          id,
		"name":        "Caixa",
		"description": "Caixa de papelão reforçada.",
		"price":       19.99,
		"created_at":  "2024-03-01 12:30:45",
		"updated_at":  "2024-03-01 12:30:45",
	})
	assert.NoError(t, err)
	return item
}

// TestCreate_Success testa a criação com recarga do registro persistido.
func TestCreate_Success(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockLogger := logger.NewLogger("debug")

	svc := itemservice.NewService(mockRepo, mockLogger)

	persisted := storedItem(t, "7")
	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Item")).Return("7", nil)
	mockRepo.On("SelectOne", mock.Anything, "7").Return(persisted, nil)

	created, err := svc.Create(context.Background(), domain.ItemInput{
		Name:        "Caixa",
		Description: "Caixa de papelão reforçada.",
		Price:       19.99,
	})

	assert.NoError(t, err)
	assert.Equal(t, "7", created.ID())
	mockRepo.AssertExpectations(t)
}

// TestCreate_Fail_Validation testa que entrada inválida nem chega ao repositório.
func TestCreate_Fail_Validation(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockLogger := logger.NewLogger("debug")

	svc := itemservice.NewService(mockRepo, mockLogger)

	_, err := svc.Create(context.Background(), domain.ItemInput{
		Name:        "   ",
		Description: "desc",
		Price:       1,
	})

	assert.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "Insert")
}

// TestGet_Fail_InvalidID testa a rejeição de IDs malformados.
func TestGet_Fail_InvalidID(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockLogger := logger.NewLogger("debug")

	svc := itemservice.NewService(mockRepo, mockLogger)

	_, err := svc.Get(context.Background(), "abc")

	assert.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "SelectOne")
}

// TestGet_Fail_NotFound testa a propagação do NotFound do repositório.
func TestGet_Fail_NotFound(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockLogger := logger.NewLogger("debug")

	svc := itemservice.NewService(mockRepo, mockLogger)

	mockRepo.On("SelectOne", mock.Anything, "99").
		Return(nil, apperror.NewNotFoundError("Item com ID 99 não encontrado."))

	_, err := svc.Get(context.Background(), "99")

	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	mockRepo.AssertExpectations(t)
}

// TestUpdate_Success testa o fluxo carregar-aplicar-persistir.
func TestUpdate_Success(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockLogger := logger.NewLogger("debug")

	svc := itemservice.NewService(mockRepo, mockLogger)

	current := storedItem(t, "7")
	mockRepo.On("SelectOne", mock.Anything, "7").Return(current, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Item")).Return(int64(1), nil)

	updated, err := svc.Update(context.Background(), "7", domain.ItemInput{
		Name:        "Caixa Grande",
		Description: "Caixa de papelão reforçada, tamanho G.",
		Price:       24.9,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Caixa Grande", updated.Name())
	mockRepo.AssertExpectations(t)
}

// TestUpdate_Fail_ZeroAffected testa que zero linhas afetadas vira NotFound.
func TestUpdate_Fail_ZeroAffected(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockLogger := logger.NewLogger("debug")

	svc := itemservice.NewService(mockRepo, mockLogger)

	current := storedItem(t, "7")
	mockRepo.On("SelectOne", mock.Anything, "7").Return(current, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Item")).Return(int64(0), nil)

	_, err := svc.Update(context.Background(), "7", domain.ItemInput{
		Name:        "Caixa",
		Description: "desc válida",
		Price:       1,
	})

	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	mockRepo.AssertExpectations(t)
}

// TestDelete_Fail_NotDeleted testa que delete sem linha removida vira NotFound.
func TestDelete_Fail_NotDeleted(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockLogger := logger.NewLogger("debug")

	svc := itemservice.NewService(mockRepo, mockLogger)

	mockRepo.On("Delete", mock.Anything, "7").Return(false, nil)

	err := svc.Delete(context.Background(), "7")

	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	mockRepo.AssertExpectations(t)
}

// TestSearchByName_Success testa a busca paginada com total.
func TestSearchByName_Success(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockLogger := logger.NewLogger("debug")

	svc := itemservice.NewService(mockRepo, mockLogger)

	pag, err := pagination.New(1, 10)
	assert.NoError(t, err)

	results := []*domain.Item{storedItem(t, "7")}
	mockRepo.On("SearchByNamePattern", mock.Anything, "Caixa", pag).Return(results, nil)
	mockRepo.On("CountByNamePattern", mock.Anything, "Caixa").Return(1, nil)

	items, total, err := svc.SearchByName(context.Background(), "  Caixa  ", pag)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, total)
	mockRepo.AssertExpectations(t)
}

// TestSearchByName_Fail_EmptyFragment testa o fragmento vazio.
func TestSearchByName_Fail_EmptyFragment(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockLogger := logger.NewLogger("debug")

	svc := itemservice.NewService(mockRepo, mockLogger)

	_, _, err := svc.SearchByName(context.Background(), "   ", pagination.Default())

	assert.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "SearchByNamePattern")
}

// TestGetAll_Fail_RepoError testa a propagação de erro de infraestrutura.
func TestGetAll_Fail_RepoError(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockLogger := logger.NewLogger("debug")

	svc := itemservice.NewService(mockRepo, mockLogger)

	repoError := apperror.NewDBError("Falha ao buscar todos os itens", errors.New("connection lost"))
	mockRepo.On("SelectAll", mock.Anything).Return(nil, repoError)

	_, err := svc.GetAll(context.Background())

	assert.Error(t, err)
	assert.IsType(t, &apperror.InternalError{}, err)
	assert.Contains(t, err.Error(), "connection lost")
	mockRepo.AssertExpectations(t)
}
