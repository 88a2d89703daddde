package warehouseservice

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

// WarehouseRepository define o contrato que o Serviço de Armazéns espera da camada de Persistência.
type WarehouseRepository interface {
	Insert(ctx context.Context, warehouse *domain.Warehouse) (string, error)
	SelectOne(ctx context.Context, id string) (*domain.Warehouse, error)
	SelectAll(ctx context.Context) ([]*domain.Warehouse, error)
	Update(ctx context.Context, warehouse *domain.Warehouse) (int64, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	SearchByNamePattern(ctx context.Context, fragment string, pag pagination.Pagination) ([]*domain.Warehouse, error)
	CountByNamePattern(ctx context.Context, fragment string) (int, error)
}

// Service é a estrutura que implementa as operações de negócio de armazéns.
type Service struct {
	repo   WarehouseRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Armazéns.
func NewService(repo WarehouseRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create valida a entrada, persiste o armazém e devolve o registro recarregado do banco.
func (s *Service) Create(ctx context.Context, input domain.WarehouseInput) (*domain.Warehouse, error) {
	s.logger.Debug("Iniciando criação de armazém no serviço.", map[string]interface{}{"name": input.Name})

	warehouse, err := domain.NewWarehouse(input)
	if err != nil {
		s.logger.Warn("Falha na validação do armazém.", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	id, err := s.repo.Insert(ctx, warehouse)
	if err != nil {
		s.logger.Error("Falha ao criar armazém no repositório.", err)
		return nil, err
	}

	created, err := s.repo.SelectOne(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao recarregar armazém recém-criado.", err)
		return nil, err
	}

	s.logger.Info("Armazém criado com sucesso.", map[string]interface{}{"id": created.ID(), "name": created.Name()})
	return created, nil
}

// Get busca um armazém pelo ID.
func (s *Service) Get(ctx context.Context, id string) (*domain.Warehouse, error) {
	s.logger.Debug("Iniciando busca de armazém por ID no serviço.", map[string]interface{}{"id": id})

	if err := s.validateID(id); err != nil {
		return nil, err
	}

	warehouse, err := s.repo.SelectOne(ctx, id)
	if err != nil {
		return nil, err // Erros do repositório já são NotFoundError ou DBError
	}

	return warehouse, nil
}

// GetAll busca todos os armazéns.
func (s *Service) GetAll(ctx context.Context) ([]*domain.Warehouse, error) {
	s.logger.Debug("Iniciando busca de todos os armazéns no serviço.", nil)

	warehouses, err := s.repo.SelectAll(ctx)
	if err != nil {
		s.logger.Error("Falha ao buscar todos os armazéns no repositório.", err)
		return nil, err
	}

	s.logger.Info("Todos os armazéns encontrados com sucesso.", map[string]interface{}{"count": len(warehouses)})
	return warehouses, nil
}

// Update carrega o armazém atual, aplica os campos da entrada e persiste.
func (s *Service) Update(ctx context.Context, id string, input domain.WarehouseInput) (*domain.Warehouse, error) {
	s.logger.Debug("Iniciando atualização de armazém no serviço.", map[string]interface{}{"id": id})

	if err := s.validateID(id); err != nil {
		return nil, err
	}

	warehouse, err := s.repo.SelectOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := warehouse.SetName(input.Name); err != nil {
		return nil, err
	}
	if err := warehouse.SetAddress(input.Address); err != nil {
		return nil, err
	}
	if err := warehouse.SetEmail(input.Email); err != nil {
		return nil, err
	}
	if err := warehouse.SetType(input.Type); err != nil {
		return nil, err
	}

	affected, err := s.repo.Update(ctx, warehouse)
	if err != nil {
		s.logger.Error("Falha ao atualizar armazém no repositório.", err)
		return nil, err
	}
	if affected == 0 {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Armazém com ID %s não encontrado.", id))
	}

	updated, err := s.repo.SelectOne(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Armazém atualizado com sucesso.", map[string]interface{}{"id": id})
	return updated, nil
}

// Delete remove um armazém pelo ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("Iniciando exclusão de armazém no serviço.", map[string]interface{}{"id": id})

	if err := s.validateID(id); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao deletar armazém no repositório.", err)
		return err
	}
	if !deleted {
		return apperror.NewNotFoundError(fmt.Sprintf("Armazém com ID %s não encontrado.", id))
	}

	s.logger.Info("Armazém deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// SearchByName busca armazéns por fragmento de nome, com paginação, e devolve
// também o total de registros que casam com o fragmento.
func (s *Service) SearchByName(ctx context.Context, fragment string, pag pagination.Pagination) ([]*domain.Warehouse, int, error) {
	s.logger.Debug("Iniciando busca de armazéns por nome no serviço.", map[string]interface{}{"fragment": fragment})

	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, 0, apperror.NewValidationError(apperror.KindEmpty, "O termo de busca não pode ser vazio.")
	}

	warehouses, err := s.repo.SearchByNamePattern(ctx, fragment, pag)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountByNamePattern(ctx, fragment)
	if err != nil {
		return nil, 0, err
	}

	return warehouses, total, nil
}

// Count devolve o total de armazéns registrados.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// validateID garante que o identificador recebido tem o formato de serial válido.
func (s *Service) validateID(id string) error {
	if _, err := validate.Serial(id); err != nil {
		s.logger.Warn("ID de armazém inválido fornecido.", map[string]interface{}{"id": id, "error": err.Error()})
		return err
	}
	return nil
}
