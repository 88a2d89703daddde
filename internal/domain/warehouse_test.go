package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"plumelet/internal/domain"
	apperror "plumelet/internal/errors"
)

func TestParseWarehouseType(t *testing.T) {
	for _, value := range []string{"owned", "supplier", "currier"} {
		parsed, err := domain.ParseWarehouseType(value)
		assert.NoError(t, err)
		assert.Equal(t, domain.WarehouseType(value), parsed)
	}

	_, err := domain.ParseWarehouseType("spaceship")
	assert.Error(t, err)
	valErr, ok := err.(*apperror.ValidationError)
	if assert.True(t, ok) {
		assert.Equal(t, apperror.KindInvalidEnumValue, valErr.Kind)
	}
}

func TestWarehouseType_Label(t *testing.T) {
	assert.Equal(t, "Owned Warehouse", domain.WarehouseOwned.Label())
	assert.Equal(t, "Supplier Warehouse", domain.WarehouseSupplier.Label())
	assert.Equal(t, "Courier Warehouse", domain.WarehouseCurrier.Label())
}

func TestNewWarehouse_EntradaValida(t *testing.T) {
	warehouse, err := domain.NewWarehouse(domain.WarehouseInput{
		Name:    "Galpão Central",
		Address: "Rua A, 100",
		Email:   "galpao@example.com",
		Type:    "owned",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.WarehouseOwned, warehouse.Type())
}

func TestNewWarehouse_TipoInvalido(t *testing.T) {
	_, err := domain.NewWarehouse(domain.WarehouseInput{
		Name:    "Galpão",
		Address: "Rua A, 100",
		Email:   "galpao@example.com",
		Type:    "spaceship",
	})

	assert.Error(t, err)
	valErr, ok := err.(*apperror.ValidationError)
	if assert.True(t, ok) {
		assert.Equal(t, apperror.KindInvalidEnumValue, valErr.Kind)
	}
}

func TestWarehouseFromRow(t *testing.T) {
	row := map[string]any{
		"id":      "7",
		"name":    "Acme",
		"address": "Rua A, 100",
		"email":   "acme@example.com",
		"type":    "owned",
	}

	warehouse, err := domain.WarehouseFromRow(row)

	assert.NoError(t, err)
	assert.Equal(t, "7", warehouse.ID())
	assert.Equal(t, domain.WarehouseOwned, warehouse.Type())
}

func TestWarehouseFromRow_LinhaParcial(t *testing.T) {
	// Projeções sem address/email hidratam; os campos ausentes ficam vazios.
	warehouse, err := domain.WarehouseFromRow(map[string]any{
		"id":   "7",
		"name": "Acme",
		"type": "owned",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.WarehouseOwned, warehouse.Type())
	assert.Empty(t, warehouse.Address())
}

func TestWarehouseFromRow_TipoForaDoConjunto(t *testing.T) {
	row := map[string]any{
		"id":      "7",
		"name":    "Acme",
		"address": "Rua A, 100",
		"email":   "acme@example.com",
		"type":    "floating",
	}

	_, err := domain.WarehouseFromRow(row)

	// O tipo passa pela hidratação como string e falha no setter.
	assert.Error(t, err)
	valErr, ok := err.(*apperror.ValidationError)
	if assert.True(t, ok) {
		assert.Equal(t, apperror.KindInvalidEnumValue, valErr.Kind)
	}
}

func TestWarehouse_MarshalJSON_IncluiLabel(t *testing.T) {
	warehouse, err := domain.NewWarehouse(domain.WarehouseInput{
		Name:    "Galpão",
		Address: "Rua A, 100",
		Email:   "galpao@example.com",
		Type:    "currier",
	})
	assert.NoError(t, err)

	data, err := json.Marshal(warehouse)
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "currier", decoded["type"])
	assert.Equal(t, "Courier Warehouse", decoded["type_label"])
}
