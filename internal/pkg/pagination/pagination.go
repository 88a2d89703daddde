// Package pagination implementa a aritmética básica de paginação usada nas
// buscas por nome.
package pagination

import (
	apperror "plumelet/internal/errors"
)

// Padrões aplicados quando o cliente não informa os parâmetros.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Pagination é um par página/tamanho validado. Valor imutável após New.
type Pagination struct {
	page    int
	perPage int
}

// New valida e constrói a paginação. page e perPage devem ser >= 1;
// perPage é limitado a MaxPerPage.
func New(page, perPage int) (Pagination, error) {
	if page < 1 {
		return Pagination{}, apperror.NewValidationError(apperror.KindOutOfRange, "page deve ser >= 1.")
	}
	if perPage < 1 {
		return Pagination{}, apperror.NewValidationError(apperror.KindOutOfRange, "per_page deve ser >= 1.")
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Pagination{page: page, perPage: perPage}, nil
}

// Default devolve a paginação padrão (página 1, 20 por página).
func Default() Pagination {
	return Pagination{page: DefaultPage, perPage: DefaultPerPage}
}

// Page devolve o número da página (1-based).
func (p Pagination) Page() int { return p.page }

// PerPage devolve o tamanho da página.
func (p Pagination) PerPage() int { return p.perPage }

// Offset devolve o deslocamento para a cláusula LIMIT/OFFSET.
func (p Pagination) Offset() int { return (p.page - 1) * p.perPage }
