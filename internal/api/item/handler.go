package item

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"plumelet/internal/domain"
	apperror "plumelet/internal/errors"
	"plumelet/internal/pkg/logger"
	"plumelet/internal/pkg/pagination"
)

// ItemService define o contrato que o Handler espera da camada de Serviço.
type ItemService interface {
	Create(ctx context.Context, input domain.ItemInput) (*domain.Item, error)
	Get(ctx context.Context, id string) (*domain.Item, error)
	GetAll(ctx context.Context) ([]*domain.Item, error)
	Update(ctx context.Context, id string, input domain.ItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
	SearchByName(ctx context.Context, fragment string, pag pagination.Pagination) ([]*domain.Item, int, error)
}

// Handler agrupa todos os métodos de Handler de itens.
type Handler struct {
	Service ItemService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ItemService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// searchResponse é o envelope de resposta para buscas paginadas.
type searchResponse struct {
	Data    []*domain.Item `json:"data"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
				http.Error(w, "Erro ao codificar resposta", http.StatusInternalServerError)
			}
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	errorResponse := map[string]interface{}{
		"code":     status,
		"category": category,
		"message":  message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse)
}

// CreateItemHandler lida com a requisição POST /v1/items.
// @Summary Cria um novo item
// @Description Valida, sanitiza e cria um novo item no sistema.
// @Tags items
// @Accept json
// @Produce json
// @Param item body domain.ItemInput true "Dados do item para criação"
// @Success 201 {object} domain.Item "Item criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /items [post]
func (h *Handler) CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	var input domain.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.handleServiceResponse(w, r, nil, invalidPayloadErr(), http.StatusBadRequest)
		return
	}

	createdItem, err := h.Service.Create(ctx, input)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, createdItem, nil, http.StatusCreated)
}

// GetItemByIDHandler lida com a requisição GET /v1/items/{id}.
// @Summary Obtém um item por ID
// @Description Busca um item específico pelo seu ID.
// @Tags items
// @Produce json
// @Param id path string true "ID do Item"
// @Success 200 {object} domain.Item "Item encontrado"
// @Failure 404 {object} domain.ErrorResponse "Item não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /items/{id} [get]
func (h *Handler) GetItemByIDHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/v1/items/")

	item, err := h.Service.Get(ctx, id)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, item, nil, http.StatusOK)
}

// ListItemsHandler lida com a requisição GET /v1/items.
// Com o parâmetro ?q= a listagem vira uma busca paginada por nome.
// @Summary Lista ou busca itens
// @Description Retorna todos os itens, ou busca por fragmento de nome quando ?q= é informado.
// @Tags items
// @Produce json
// @Param q query string false "Fragmento do nome para busca"
// @Param page query int false "Página (a partir de 1)"
// @Param per_page query int false "Itens por página (máx. 100)"
// @Success 200 {array} domain.Item "Lista de itens"
// @Failure 400 {object} domain.ErrorResponse "Parâmetros inválidos"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /items [get]
func (h *Handler) ListItemsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	query := r.URL.Query()

	if fragment := query.Get("q"); fragment != "" {
		pag, err := paginationFromQuery(query.Get("page"), query.Get("per_page"))
		if err != nil {
			h.handleServiceResponse(w, r, nil, err, http.StatusOK)
			return
		}

		items, total, err := h.Service.SearchByName(ctx, fragment, pag)
		if err != nil {
			h.handleServiceResponse(w, r, nil, err, http.StatusOK)
			return
		}

		h.handleServiceResponse(w, r, searchResponse{
			Data:    items,
			Total:   total,
			Page:    pag.Page(),
			PerPage: pag.PerPage(),
		}, nil, http.StatusOK)
		return
	}

	items, err := h.Service.GetAll(ctx)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, items, nil, http.StatusOK)
}

// UpdateItemHandler lida com a requisição PUT /v1/items/{id}.
// @Summary Atualiza um item
// @Description Atualiza os dados de um item existente.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "ID do Item"
// @Param item body domain.ItemInput true "Dados do item para atualização"
// @Success 200 {object} domain.Item "Item atualizado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Item não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /items/{id} [put]
func (h *Handler) UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/v1/items/")

	var input domain.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.handleServiceResponse(w, r, nil, invalidPayloadErr(), http.StatusBadRequest)
		return
	}

	updatedItem, err := h.Service.Update(ctx, id, input)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, updatedItem, nil, http.StatusOK)
}

// DeleteItemHandler lida com a requisição DELETE /v1/items/{id}.
// @Summary Deleta um item
// @Description Remove um item do sistema pelo seu ID.
// @Tags items
// @Param id path string true "ID do Item"
// @Success 204 "Nenhum conteúdo"
// @Failure 404 {object} domain.ErrorResponse "Item não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /items/{id} [delete]
func (h *Handler) DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/v1/items/")

	err := h.Service.Delete(ctx, id)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, nil, nil, http.StatusNoContent)
}

// invalidPayloadErr é o erro padrão para corpos JSON que não decodificam.
func invalidPayloadErr() error {
	return &apperror.ValidationError{Msg: "Payload inválido. Verifique o formato JSON."}
}

// paginationFromQuery interpreta os parâmetros page/per_page da query string.
func paginationFromQuery(pageRaw, perPageRaw string) (pagination.Pagination, error) {
	if pageRaw == "" && perPageRaw == "" {
		return pagination.Default(), nil
	}

	page := pagination.DefaultPage
	if pageRaw != "" {
		parsed, err := strconv.Atoi(pageRaw)
		if err != nil {
			return pagination.Pagination{}, apperror.NewValidationError(apperror.KindInvalidNumber, "O parâmetro 'page' deve ser um inteiro.")
		}
		page = parsed
	}

	perPage := pagination.DefaultPerPage
	if perPageRaw != "" {
		parsed, err := strconv.Atoi(perPageRaw)
		if err != nil {
			return pagination.Pagination{}, apperror.NewValidationError(apperror.KindInvalidNumber, "O parâmetro 'per_page' deve ser um inteiro.")
		}
		perPage = parsed
	}

	return pagination.New(page, perPage)
}
