package userservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"plumelet/internal/domain"
	apperror "plumelet/internal/errors"
	"plumelet/internal/pkg/logger"
	"plumelet/internal/pkg/pagination"
	"plumelet/internal/service/userservice"
)

// MockUserRepository é uma implementação mock da interface UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user *domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) SelectOne(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SelectByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SelectAll(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) SearchByNamePattern(ctx context.Context, fragment string, pag pagination.Pagination) ([]*domain.User, error) {
	args := m.Called(ctx, fragment, pag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) CountByNamePattern(ctx context.Context, fragment string) (int, error) {
	args := m.Called(ctx, fragment)
	return args.Int(0), args.Error(1)
}

func storedUser(t *testing.T, id string) *domain.User {
	t.Helper()
	user, err := domain.UserFromRow(map[string]any{
		"id":            id,
		"name":          "Ana Souza",
		"email":         "ana@example.com",
		"password_hash": "$2a$10$abcdefghijklmnopqrstuv",
		"created_at":    "2024-03-01 12:30:45",
		"updated_at":    "2024-03-01 12:30:45",
	})
	assert.NoError(t, err)
	return user
}

// TestRegister_Success testa o registro com senha obrigatória.
func TestRegister_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockLogger := logger.NewLogger("debug")

	svc := userservice.NewService(mockRepo, mockLogger)

	persisted := storedUser(t, "12")
	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.User")).Return("12", nil)
	mockRepo.On("SelectOne", mock.Anything, "12").Return(persisted, nil)

	created, err := svc.Register(context.Background(), domain.UserInput{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Password: "s3cr3t!",
	})

	assert.NoError(t, err)
	assert.Equal(t, "12", created.ID())
	mockRepo.AssertExpectations(t)
}

// TestRegister_Fail_SenhaVazia testa que o registro exige senha.
func TestRegister_Fail_SenhaVazia(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockLogger := logger.NewLogger("debug")

	svc := userservice.NewService(mockRepo, mockLogger)

	_, err := svc.Register(context.Background(), domain.UserInput{
		Name:  "Ana",
		Email: "ana@example.com",
	})

	assert.Error(t, err)
	valErr, ok := err.(*apperror.ValidationError)
	if assert.True(t, ok) {
		assert.Equal(t, "password", valErr.Field)
	}
	mockRepo.AssertNotCalled(t, "Insert")
}

// TestRegister_Fail_EmailDuplicado testa a propagação do ConflictError.
func TestRegister_Fail_EmailDuplicado(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockLogger := logger.NewLogger("debug")

	svc := userservice.NewService(mockRepo, mockLogger)

	conflict := apperror.NewConflictError("O e-mail 'ana@example.com' já está em uso.")
	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.User")).Return("", conflict)

	_, err := svc.Register(context.Background(), domain.UserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "s3cr3t!",
	})

	assert.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
	mockRepo.AssertExpectations(t)
}

// TestGetByEmail_NormalizaAntesDeBuscar testa a normalização do e-mail de busca.
func TestGetByEmail_NormalizaAntesDeBuscar(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockLogger := logger.NewLogger("debug")

	svc := userservice.NewService(mockRepo, mockLogger)

	persisted := storedUser(t, "12")
	mockRepo.On("SelectByEmail", mock.Anything, "ana@example.com").Return(persisted, nil)

	user, err := svc.GetByEmail(context.Background(), "  Ana@EXAMPLE.com ")

	assert.NoError(t, err)
	assert.Equal(t, "12", user.ID())
	mockRepo.AssertExpectations(t)
}

// TestUpdate_SenhaOpcional testa que a senha só muda quando informada.
func TestUpdate_SenhaOpcional(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockLogger := logger.NewLogger("debug")

	svc := userservice.NewService(mockRepo, mockLogger)

	current := storedUser(t, "12")
	originalHash := current.PasswordHash()

	mockRepo.On("SelectOne", mock.Anything, "12").Return(current, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.PasswordHash() == originalHash
	})).Return(int64(1), nil)

	_, err := svc.Update(context.Background(), "12", domain.UserInput{
		Name:  "Ana Lima",
		Email: "ana@example.com",
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestDelete_Fail_NotDeleted testa que delete sem linha removida vira NotFound.
func TestDelete_Fail_NotDeleted(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockLogger := logger.NewLogger("debug")

	svc := userservice.NewService(mockRepo, mockLogger)

	mockRepo.On("Delete", mock.Anything, "12").Return(false, nil)

	err := svc.Delete(context.Background(), "12")

	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	mockRepo.AssertExpectations(t)
}
