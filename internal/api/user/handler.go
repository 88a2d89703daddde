package user

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

// UserService define o contrato que o Handler espera da camada de Serviço.
type UserService interface {
	Register(ctx context.Context, input domain.UserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input domain.UserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	SearchByName(ctx context.Context, fragment string, pag pagination.Pagination) ([]*domain.User, int, error)
}

// Handler agrupa todos os métodos de Handler de usuários.
type Handler struct {
	Service UserService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UserService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// searchResponse é o envelope de resposta para buscas paginadas.
type searchResponse struct {
	Data    []*domain.User `json:"data"`
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

// RegisterUserHandler lida com a requisição POST /v1/users.
// @Summary Registra um novo usuário
// @Description Cria um novo usuário com senha armazenada como hash bcrypt.
// @Tags users
// @Accept json
// @Produce json
// @Param user body domain.UserInput true "Dados do usuário para registro"
// @Success 201 {object} domain.User "Usuário registrado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "E-mail já em uso"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /users [post]
func (h *Handler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	var input domain.UserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.handleServiceResponse(w, r, nil, invalidPayloadErr(), http.StatusBadRequest)
		return
	}

	createdUser, err := h.Service.Register(ctx, input)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, createdUser, nil, http.StatusCreated)
}

// GetUserByIDHandler lida com a requisição GET /v1/users/{id}.
// @Summary Obtém um usuário por ID
// @Description Busca um usuário específico pelo seu ID.
// @Tags users
// @Produce json
// @Param id path string true "ID do Usuário"
// @Success 200 {object} domain.User "Usuário encontrado"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /users/{id} [get]
func (h *Handler) GetUserByIDHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/v1/users/")

	user, err := h.Service.Get(ctx, id)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, user, nil, http.StatusOK)
}

// ListUsersHandler lida com a requisição GET /v1/users.
// Com o parâmetro ?q= a listagem vira uma busca paginada por nome.
// @Summary Lista ou busca usuários
// @Description Retorna todos os usuários, ou busca por fragmento de nome quando ?q= é informado.
// @Tags users
// @Produce json
// @Param q query string false "Fragmento do nome para busca"
// @Param page query int false "Página (a partir de 1)"
// @Param per_page query int false "Usuários por página (máx. 100)"
// @Success 200 {array} domain.User "Lista de usuários"
// @Failure 400 {object} domain.ErrorResponse "Parâmetros inválidos"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /users [get]
func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
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

		users, total, err := h.Service.SearchByName(ctx, fragment, pag)
		if err != nil {
			h.handleServiceResponse(w, r, nil, err, http.StatusOK)
			return
		}

		h.handleServiceResponse(w, r, searchResponse{
			Data:    users,
			Total:   total,
			Page:    pag.Page(),
			PerPage: pag.PerPage(),
		}, nil, http.StatusOK)
		return
	}

	users, err := h.Service.GetAll(ctx)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, users, nil, http.StatusOK)
}

// UpdateUserHandler lida com a requisição PUT /v1/users/{id}.
// @Summary Atualiza um usuário
// @Description Atualiza os dados de um usuário existente. A senha só é trocada quando informada.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "ID do Usuário"
// @Param user body domain.UserInput true "Dados do usuário para atualização"
// @Success 200 {object} domain.User "Usuário atualizado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Failure 409 {object} domain.ErrorResponse "E-mail já em uso"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /users/{id} [put]
func (h *Handler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/v1/users/")

	var input domain.UserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.handleServiceResponse(w, r, nil, invalidPayloadErr(), http.StatusBadRequest)
		return
	}

	updatedUser, err := h.Service.Update(ctx, id, input)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, updatedUser, nil, http.StatusOK)
}

// DeleteUserHandler lida com a requisição DELETE /v1/users/{id}.
// @Summary Deleta um usuário
// @Description Remove um usuário do sistema pelo seu ID.
// @Tags users
// @Param id path string true "ID do Usuário"
// @Success 204 "Nenhum conteúdo"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /users/{id} [delete]
func (h *Handler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/v1/users/")

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
