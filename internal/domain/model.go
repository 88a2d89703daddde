// Package domain define os registros validados do Plumelet (Item, User,
// Warehouse) e os contratos que as camadas de serviço e persistência trocam
// entre si. Cada registro guarda seus campos não exportados: toda mutação
// passa por um setter que revalida o campo, e só o caminho de hidratação
// (XFromRow) atribui identificador e timestamps vindos do storage confiável.
package domain

import (
	"errors"

	apperror "plumelet/internal/errors"
)

// fieldErr anota um erro de validação com o nome do campo de origem.
// Erros que não são de validação passam inalterados.
func fieldErr(err error, field string) error {
	var vErr *apperror.ValidationError
	if errors.As(err, &vErr) {
		return vErr.WithField(field)
	}
	return err
}

// nullableString converte "" em nil para linhas brutas (colunas NULL).
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
