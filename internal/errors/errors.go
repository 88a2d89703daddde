package errors

import (
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do Plumelet.
// Ela permite que o código externo (Handler) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "NOT_FOUND", "INTERNAL_ERROR")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Kinds de Validação (códigos legíveis por máquina) ---

// Kind identifica a regra de validação que falhou.
// Os valores são estáveis: fazem parte do contrato com a camada de apresentação.
type Kind string

const (
	KindEmpty            Kind = "empty"
	KindTooLong          Kind = "too_long"
	KindOutOfRange       Kind = "out_of_range"
	KindInvalidNumber    Kind = "invalid_number"
	KindInvalidEmail     Kind = "invalid_email"
	KindInvalidDateTime  Kind = "invalid_datetime"
	KindInvalidEnumValue Kind = "invalid_enum_value"
)

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa falhas de validação de dados de entrada.
// Kind carrega o código da regra violada e Field o campo de origem (opcional).
type ValidationError struct {
	Kind  Kind
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("Erro de Validação: %s", e.Msg)
	}
	if e.Field != "" {
		return fmt.Sprintf("Erro de Validação [%s] no campo '%s': %s", e.Kind, e.Field, e.Msg)
	}
	return fmt.Sprintf("Erro de Validação [%s]: %s", e.Kind, e.Msg)
}
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return nil }                   // Não encapsula erro subjacente

// NewValidationError cria um novo erro de validação com o kind informado.
func NewValidationError(kind Kind, msg string) *ValidationError {
	return &ValidationError{Kind: kind, Msg: msg}
}

// WithField devolve uma cópia do erro anotada com o nome do campo.
// Usada pelos setters dos registros de domínio para contextualizar o erro
// sem alterar o kind retornado pelo validador puro.
func (e *ValidationError) WithField(field string) *ValidationError {
	return &ValidationError{Kind: e.Kind, Field: field, Msg: e.Msg}
}

// HydrationError representa um campo obrigatório que não pôde ser coerido
// a partir de uma linha bruta do banco. Diferente do ValidationError, a causa
// é integridade de dados no storage, não entrada do usuário: o Handler nunca
// expõe o detalhe de campo ao cliente final.
type HydrationError struct {
	Field  string
	Reason string
}

func (e *HydrationError) Error() string {
	return fmt.Sprintf("Erro de Hidratação no campo '%s': %s", e.Field, e.Reason)
}
func (e *HydrationError) Category() string { return "HYDRATION_ERROR" }
func (e *HydrationError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *HydrationError) Unwrap() error    { return nil }

// NewHydrationError cria um novo erro de hidratação.
func NewHydrationError(field, reason string) *HydrationError {
	return &HydrationError{Field: field, Reason: reason}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError representa um conflito na regra de negócio (e.g., recurso duplicado).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict } // 409
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB): %s", msg, err.Error()), err)
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP e corpo de resposta.
// Erros de hidratação são achatados para uma mensagem genérica: a causa é do
// lado do storage e o detalhe de campo não pertence ao usuário final.
func MapToHTTPStatus(err error) (int, string, string) {
	if hydErr, ok := err.(*HydrationError); ok {
		return hydErr.HTTPStatus(), hydErr.Category(), "Falha interna ao carregar o registro."
	}

	if appErr, ok := err.(AppError); ok {
		// O erro é tipado (ValidationError, NotFoundError, etc.)
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado (e.g., erro simples de pacote Go que não implementa AppError)
	// Tratar como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}
