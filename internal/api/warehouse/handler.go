package warehouse

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

// WarehouseService define o contrato que o Handler espera da camada de Serviço.
type WarehouseService interface {
	Create(ctx context.Context, input domain.WarehouseInput) (*domain.Warehouse, error)
	Get(ctx context.Context, id string) (*domain.Warehouse, error)
	GetAll(ctx context.Context) ([]*domain.Warehouse, error)
	Update(ctx context.Context, id string, input domain.WarehouseInput) (*domain.Warehouse, error)
	Delete(ctx context.Context, id string) error
	SearchByName(ctx context.Context, fragment string, pag pagination.Pagination) ([]*domain.Warehouse, int, error)
}

// Handler agrupa todos os métodos de Handler de armazéns.
type Handler struct {
	Service WarehouseService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc WarehouseService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// searchResponse é o envelope de resposta para buscas paginadas.
type searchResponse struct {
	Data    []*domain.Warehouse `json:"data"`
	Total   int                 `json:"total"`
	Page    int                 `json:"page"`
	PerPage int                 `json:"per_page"`
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

// CreateWarehouseHandler lida com a requisição POST /v1/warehouses.
// @Summary Cria um novo armazém
// @Description Cria um novo armazém no sistema. O campo type aceita: owned, supplier, currier.
// @Tags warehouses
// @Accept json
// @Produce json
// @Param warehouse body domain.WarehouseInput true "Dados do armazém para criação"
// @Success 201 {object} domain.Warehouse "Armazém criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /warehouses [post]
func (h *Handler) CreateWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	var input domain.WarehouseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.handleServiceResponse(w, r, nil, invalidPayloadErr(), http.StatusBadRequest)
		return
	}

	createdWarehouse, err := h.Service.Create(ctx, input)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, createdWarehouse, nil, http.StatusCreated)
}

// GetWarehouseByIDHandler lida com a requisição GET /v1/warehouses/{id}.
// @Summary Obtém um armazém por ID
// @Description Busca um armazém específico pelo seu ID.
// @Tags warehouses
// @Produce json
// @Param id path string true "ID do Armazém"
// @Success 200 {object} domain.Warehouse "Armazém encontrado"
// @Failure 404 {object} domain.ErrorResponse "Armazém não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /warehouses/{id} [get]
func (h *Handler) GetWarehouseByIDHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/v1/warehouses/")

	warehouse, err := h.Service.Get(ctx, id)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, warehouse, nil, http.StatusOK)
}

// ListWarehousesHandler lida com a requisição GET /v1/warehouses.
// Com o parâmetro ?q= a listagem vira uma busca paginada por nome.
// @Summary Lista ou busca armazéns
// @Description Retorna todos os armazéns, ou busca por fragmento de nome quando ?q= é informado.
// @Tags warehouses
// @Produce json
// @Param q query string false "Fragmento do nome para busca"
// @Param page query int false "Página (a partir de 1)"
// @Param per_page query int false "Armazéns por página (máx. 100)"
// @Success 200 {array} domain.Warehouse "Lista de armazéns"
// @Failure 400 {object} domain.ErrorResponse "Parâmetros inválidos"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /warehouses [get]
func (h *Handler) ListWarehousesHandler(w http.ResponseWriter, r *http.Request) {
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

		warehouses, total, err := h.Service.SearchByName(ctx, fragment, pag)
		if err != nil {
			h.handleServiceResponse(w, r, nil, err, http.StatusOK)
			return
		}

		h.handleServiceResponse(w, r, searchResponse{
			Data:    warehouses,
			Total:   total,
			Page:    pag.Page(),
			PerPage: pag.PerPage(),
		}, nil, http.StatusOK)
		return
	}

	warehouses, err := h.Service.GetAll(ctx)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, warehouses, nil, http.StatusOK)
}

// UpdateWarehouseHandler lida com a requisição PUT /v1/warehouses/{id}.
// @Summary Atualiza um armazém
// @Description Atualiza os dados de um armazém existente.
// @Tags warehouses
// @Accept json
// @Produce json
// @Param id path string true "ID do Armazém"
// @Param warehouse body domain.WarehouseInput true "Dados do armazém para atualização"
// @Success 200 {object} domain.Warehouse "Armazém atualizado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Armazém não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /warehouses/{id} [put]
func (h *Handler) UpdateWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/v1/warehouses/")

	var input domain.WarehouseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.handleServiceResponse(w, r, nil, invalidPayloadErr(), http.StatusBadRequest)
		return
	}

	updatedWarehouse, err := h.Service.Update(ctx, id, input)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, updatedWarehouse, nil, http.StatusOK)
}

// DeleteWarehouseHandler lida com a requisição DELETE /v1/warehouses/{id}.
// @Summary Deleta um armazém
// @Description Remove um armazém do sistema pelo seu ID.
// @Tags warehouses
// @Param id path string true "ID do Armazém"
// @Success 204 "Nenhum conteúdo"
// @Failure 404 {object} domain.ErrorResponse "Armazém não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /warehouses/{id} [delete]
func (h *Handler) DeleteWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/v1/warehouses/")

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
