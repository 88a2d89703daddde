package domain

import apperror "plumelet/internal/errors"

// WarehouseType é o conjunto fechado de tipos de armazém.
// Os valores espelham a coluna `type` da tabela warehouses.
type WarehouseType string

const (
	// WarehouseOwned indica armazém próprio da empresa.
	WarehouseOwned WarehouseType = "owned"
	// WarehouseSupplier indica armazém de um fornecedor.
	WarehouseSupplier WarehouseType = "supplier"
	// WarehouseCurrier indica armazém de uma transportadora.
	// A grafia "currier" vem do schema legado e é normativa.
	WarehouseCurrier WarehouseType = "currier"
)

// ParseWarehouseType valida um valor contra o conjunto fechado.
// Valores fora do conjunto falham com kind invalid_enum_value.
func ParseWarehouseType(value string) (WarehouseType, error) {
	switch WarehouseType(value) {
	case WarehouseOwned, WarehouseSupplier, WarehouseCurrier:
		return WarehouseType(value), nil
	}
	return "", apperror.NewValidationError(apperror.KindInvalidEnumValue,
		"Tipo de armazém inválido: '"+value+"'.")
}

// Label devolve um rótulo legível para exibição (e.g., em um <select>).
func (t WarehouseType) Label() string {
	switch t {
	case WarehouseOwned:
		return "Owned Warehouse"
	case WarehouseSupplier:
		return "Supplier Warehouse"
	case WarehouseCurrier:
		return "Courier Warehouse"
	}
	return string(t)
}
