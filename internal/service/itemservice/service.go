package itemservice

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

// ItemRepository define o contrato que o Serviço de Itens espera da camada de Persistência.
type ItemRepository interface {
	Insert(ctx context.Context, item *domain.Item) (string, error)
	SelectOne(ctx context.Context, id string) (*domain.Item, error)
	SelectAll(ctx context.Context) ([]*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) (int64, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	SearchByNamePattern(ctx context.Context, fragment string, pag pagination.Pagination) ([]*domain.Item, error)
	CountByNamePattern(ctx context.Context, fragment string) (int, error)
}

// Service é a estrutura que implementa as operações de negócio de itens.
type Service struct {
	repo   ItemRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Itens.
func NewService(repo ItemRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create valida a entrada, persiste o item e devolve o registro recarregado do banco.
func (s *Service) Create(ctx context.Context, input domain.ItemInput) (*domain.Item, error) {
	s.logger.Debug("Iniciando criação de item no serviço.", map[string]interface{}{"name": input.Name})

	item, err := domain.NewItem(input)
	if err != nil {
		s.logger.Warn("Falha na validação do item.", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	id, err := s.repo.Insert(ctx, item)
	if err != nil {
		s.logger.Error("Falha ao criar item no repositório.", err)
		return nil, err
	}

	created, err := s.repo.SelectOne(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao recarregar item recém-criado.", err)
		return nil, err
	}

	s.logger.Info("Item criado com sucesso.", map[string]interface{}{"id": created.ID(), "name": created.Name()})
	return created, nil
}

// Get busca um item pelo ID.
func (s *Service) Get(ctx context.Context, id string) (*domain.Item, error) {
	s.logger.Debug("Iniciando busca de item por ID no serviço.", map[string]interface{}{"id": id})

	if err := s.validateID(id); err != nil {
		return nil, err
	}

	item, err := s.repo.SelectOne(ctx, id)
	if err != nil {
		return nil, err // Erros do repositório já são NotFoundError ou DBError
	}

	return item, nil
}

// GetAll busca todos os itens.
func (s *Service) GetAll(ctx context.Context) ([]*domain.Item, error) {
	s.logger.Debug("Iniciando busca de todos os itens no serviço.", nil)

	items, err := s.repo.SelectAll(ctx)
	if err != nil {
		s.logger.Error("Falha ao buscar todos os itens no repositório.", err)
		return nil, err
	}

	s.logger.Info("Todos os itens encontrados com sucesso.", map[string]interface{}{"count": len(items)})
	return items, nil
}

// Update carrega o item atual, aplica os campos da entrada e persiste.
func (s *Service) Update(ctx context.Context, id string, input domain.ItemInput) (*domain.Item, error) {
	s.logger.Debug("Iniciando atualização de item no serviço.", map[string]interface{}{"id": id})

	if err := s.validateID(id); err != nil {
		return nil, err
	}

	item, err := s.repo.SelectOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.SetName(input.Name); err != nil {
		return nil, err
	}
	if err := item.SetDescription(input.Description); err != nil {
		return nil, err
	}
	if err := item.SetPrice(input.Price); err != nil {
		return nil, err
	}
	if err := item.SetCurrency(input.Currency); err != nil {
		return nil, err
	}

	affected, err := s.repo.Update(ctx, item)
	if err != nil {
		s.logger.Error("Falha ao atualizar item no repositório.", err)
		return nil, err
	}
	if affected == 0 {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Item com ID %s não encontrado.", id))
	}

	updated, err := s.repo.SelectOne(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Item atualizado com sucesso.", map[string]interface{}{"id": id})
	return updated, nil
}

// Delete remove um item pelo ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("Iniciando exclusão de item no serviço.", map[string]interface{}{"id": id})

	if err := s.validateID(id); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao deletar item no repositório.", err)
		return err
	}
	if !deleted {
		return apperror.NewNotFoundError(fmt.Sprintf("Item com ID %s não encontrado.", id))
	}

	s.logger.Info("Item deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// SearchByName busca itens por fragmento de nome, com paginação, e devolve
// também o total de registros que casam com o fragmento.
func (s *Service) SearchByName(ctx context.Context, fragment string, pag pagination.Pagination) ([]*domain.Item, int, error) {
	s.logger.Debug("Iniciando busca de itens por nome no serviço.", map[string]interface{}{"fragment": fragment})

	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, 0, apperror.NewValidationError(apperror.KindEmpty, "O termo de busca não pode ser vazio.")
	}

	items, err := s.repo.SearchByNamePattern(ctx, fragment, pag)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountByNamePattern(ctx, fragment)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Count devolve o total de itens registrados.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// validateID garante que o identificador recebido tem o formato de serial válido.
func (s *Service) validateID(id string) error {
	if _, err := validate.Serial(id); err != nil {
		s.logger.Warn("ID de item inválido fornecido.", map[string]interface{}{"id": id, "error": err.Error()})
		return err
	}
	return nil
}
