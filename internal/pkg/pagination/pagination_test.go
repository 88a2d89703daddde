package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "plumelet/internal/errors"
	"plumelet/internal/pkg/pagination"
)

func TestNew_Valida(t *testing.T) {
	pag, err := pagination.New(3, 25)

	assert.NoError(t, err)
	assert.Equal(t, 3, pag.Page())
	assert.Equal(t, 25, pag.PerPage())
	assert.Equal(t, 50, pag.Offset())
}

func TestNew_PaginaInvalida(t *testing.T) {
	_, err := pagination.New(0, 10)

	assert.Error(t, err)
	valErr, ok := err.(*apperror.ValidationError)
	if assert.True(t, ok) {
		assert.Equal(t, apperror.KindOutOfRange, valErr.Kind)
	}
}

func TestNew_PerPageInvalido(t *testing.T) {
	_, err := pagination.New(1, 0)
	assert.Error(t, err)
}

func TestNew_ClampaNoMaximo(t *testing.T) {
	pag, err := pagination.New(1, 500)

	assert.NoError(t, err)
	assert.Equal(t, pagination.MaxPerPage, pag.PerPage())
}

func TestDefault(t *testing.T) {
	pag := pagination.Default()

	assert.Equal(t, pagination.DefaultPage, pag.Page())
	assert.Equal(t, pagination.DefaultPerPage, pag.PerPage())
	assert.Equal(t, 0, pag.Offset())
}
