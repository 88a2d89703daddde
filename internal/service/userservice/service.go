package userservice

import (
	"context"
	"fmt"
	"strings"

	"plumelet/internal/domain"
	apperror "plumelet/internal/errors"
	"plumelet/internal/pkg/logger"
	"plumelet/internal/pkg/pagination"
	"plumelet/internal/validate"
)

// UserRepository define o contrato que o Serviço de Usuários espera da camada de Persistência.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (string, error)
	SelectOne(ctx context.Context, id string) (*domain.User, error)
	SelectByEmail(ctx context.Context, email string) (*domain.User, error)
	SelectAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (int64, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	SearchByNamePattern(ctx context.Context, fragment string, pag pagination.Pagination) ([]*domain.User, error)
	CountByNamePattern(ctx context.Context, fragment string) (int, error)
}

// Service é a estrutura que implementa as operações de negócio de usuários.
type Service struct {
	repo   UserRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Usuários.
func NewService(repo UserRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Register valida a entrada, gera o hash da senha e persiste o novo usuário.
// A senha é obrigatória no registro.
func (s *Service) Register(ctx context.Context, input domain.UserInput) (*domain.User, error) {
	s.logger.Debug("Iniciando registro de usuário no serviço.", map[string]interface{}{"email": input.Email})

	if strings.TrimSpace(input.Password) == "" {
		return nil, apperror.NewValidationError(apperror.KindEmpty, "A senha não pode ser vazia.").WithField("password")
	}

	user, err := domain.NewUser(input)
	if err != nil {
		s.logger.Warn("Falha na validação do usuário.", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		s.logger.Error("Falha ao registrar usuário no repositório.", err)
		return nil, err // ConflictError de e-mail duplicado sobe intacto
	}

	created, err := s.repo.SelectOne(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao recarregar usuário recém-criado.", err)
		return nil, err
	}

	s.logger.Info("Usuário registrado com sucesso.", map[string]interface{}{"id": created.ID()})
	return created, nil
}

// Get busca um usuário pelo ID.
func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	s.logger.Debug("Iniciando busca de usuário por ID no serviço.", map[string]interface{}{"id": id})

	if err := s.validateID(id); err != nil {
		return nil, err
	}

	user, err := s.repo.SelectOne(ctx, id)
	if err != nil {
		return nil, err // Erros do repositório já são NotFoundError ou DBError
	}

	return user, nil
}

// GetByEmail busca um usuário pelo e-mail, normalizando a entrada antes.
func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.logger.Debug("Iniciando busca de usuário por e-mail no serviço.", nil)

	normalized, err := validate.Email(email, domain.UserEmailMaxLen)
	if err != nil {
		return nil, err
	}

	return s.repo.SelectByEmail(ctx, normalized)
}

// GetAll busca todos os usuários.
func (s *Service) GetAll(ctx context.Context) ([]*domain.User, error) {
	s.logger.Debug("Iniciando busca de todos os usuários no serviço.", nil)

	users, err := s.repo.SelectAll(ctx)
	if err != nil {
		s.logger.Error("Falha ao buscar todos os usuários no repositório.", err)
		return nil, err
	}

	s.logger.Info("Todos os usuários encontrados com sucesso.", map[string]interface{}{"count": len(users)})
	return users, nil
}

// Update carrega o usuário atual, aplica os campos da entrada e persiste.
// A senha só é trocada quando a entrada traz uma senha não vazia.
func (s *Service) Update(ctx context.Context, id string, input domain.UserInput) (*domain.User, error) {
	s.logger.Debug("Iniciando atualização de usuário no serviço.", map[string]interface{}{"id": id})

	if err := s.validateID(id); err != nil {
		return nil, err
	}

	user, err := s.repo.SelectOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := user.SetName(input.Name); err != nil {
		return nil, err
	}
	if err := user.SetEmail(input.Email); err != nil {
		return nil, err
	}
	if input.Password != "" {
		if err := user.SetPassword(input.Password); err != nil {
			return nil, err
		}
	}

	affected, err := s.repo.Update(ctx, user)
	if err != nil {
		s.logger.Error("Falha ao atualizar usuário no repositório.", err)
		return nil, err
	}
	if affected == 0 {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Usuário com ID %s não encontrado.", id))
	}

	updated, err := s.repo.SelectOne(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Usuário atualizado com sucesso.", map[string]interface{}{"id": id})
	return updated, nil
}

// Delete remove um usuário pelo ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("Iniciando exclusão de usuário no serviço.", map[string]interface{}{"id": id})

	if err := s.validateID(id); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao deletar usuário no repositório.", err)
		return err
	}
	if !deleted {
		return apperror.NewNotFoundError(fmt.Sprintf("Usuário com ID %s não encontrado.", id))
	}

	s.logger.Info("Usuário deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// SearchByName busca usuários por fragmento de nome, com paginação, e devolve
// também o total de registros que casam com o fragmento.
func (s *Service) SearchByName(ctx context.Context, fragment string, pag pagination.Pagination) ([]*domain.User, int, error) {
	s.logger.Debug("Iniciando busca de usuários por nome no serviço.", map[string]interface{}{"fragment": fragment})

	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, 0, apperror.NewValidationError(apperror.KindEmpty, "O termo de busca não pode ser vazio.")
	}

	users, err := s.repo.SearchByNamePattern(ctx, fragment, pag)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountByNamePattern(ctx, fragment)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Count devolve o total de usuários registrados.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// validateID garante que o identificador recebido tem o formato de serial válido.
func (s *Service) validateID(id string) error {
	if _, err := validate.Serial(id); err != nil {
		s.logger.Warn("ID de usuário inválido fornecido.", map[string]interface{}{"id": id, "error": err.Error()})
		return err
	}
	return nil
}
