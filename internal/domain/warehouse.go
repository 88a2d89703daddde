package domain

import (
	"encoding/json"
	"time"

	"plumelet/internal/hydrate"
	"plumelet/internal/validate"
)

const (
	warehouseNameMaxLen    = 255
	warehouseAddressMaxLen = 255
	warehouseEmailMaxLen   = 255
)

// warehouseFields é a tabela de descritores consumida pelo hidratador.
// address e email são NOT NULL no schema, mas ficam opcionais na hidratação
// para aceitar linhas parciais (projeções); os setters só rodam quando o
// valor está presente.
var warehouseFields = []hydrate.Field{
	{Name: "id", Type: hydrate.TypeString},
	{Name: "name", Type: hydrate.TypeString, Required: true},
	{Name: "address", Type: hydrate.TypeString},
	{Name: "email", Type: hydrate.TypeString},
	{Name: "type", Type: hydrate.TypeString, Required: true},
	{Name: "created_at", Type: hydrate.TypeString},
	{Name: "updated_at", Type: hydrate.TypeString},
}

// Warehouse é o registro validado de um armazém físico ou lógico.
type Warehouse struct {
	id        string
	name      string
	address   string
	email     string
	whType    WarehouseType
	createdAt string
	updatedAt string
}

// WarehouseInput é o payload de entrada para criação/atualização de armazéns.
type WarehouseInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Type    string `json:"type"`
}

// NewWarehouse constrói um registro novo (sem identificador e sem timestamps).
func NewWarehouse(input WarehouseInput) (*Warehouse, error) {
	warehouse := &Warehouse{}

	if err := warehouse.SetName(input.Name); err != nil {
		return nil, err
	}
	if err := warehouse.SetAddress(input.Address); err != nil {
		return nil, err
	}
	if err := warehouse.SetEmail(input.Email); err != nil {
		return nil, err
	}
	if err := warehouse.SetType(input.Type); err != nil {
		return nil, err
	}

	return warehouse, nil
}

// WarehouseFromRow hidrata um registro a partir de uma linha bruta do storage.
// Um `type` fora do conjunto fechado falha aqui, na invocação do setter.
func WarehouseFromRow(row map[string]any) (*Warehouse, error) {
	values, err := hydrate.Hydrate(row, warehouseFields)
	if err != nil {
		return nil, err
	}

	warehouse := &Warehouse{}
	if err := warehouse.SetName(hydrate.String(values, "name")); err != nil {
		return nil, err
	}
	if values["address"] != nil {
		if err := warehouse.SetAddress(hydrate.String(values, "address")); err != nil {
			return nil, err
		}
	}
	if values["email"] != nil {
		if err := warehouse.SetEmail(hydrate.String(values, "email")); err != nil {
			return nil, err
		}
	}
	if err := warehouse.SetType(hydrate.String(values, "type")); err != nil {
		return nil, err
	}

	if id := hydrate.String(values, "id"); id != "" {
		serial, err := validate.Serial(id)
		if err != nil {
			return nil, fieldErr(err, "id")
		}
		warehouse.id = serial
	}
	warehouse.createdAt = hydrate.String(values, "created_at")
	warehouse.updatedAt = hydrate.String(values, "updated_at")

	return warehouse, nil
}

// ToRow serializa o registro para uma linha bruta (coluna → escalar).
func (w *Warehouse) ToRow() map[string]any {
	return map[string]any{
		"id":         nullableString(w.id),
		"name":       w.name,
		"address":    nullableString(w.address),
		"email":      nullableString(w.email),
		"type":       string(w.whType),
		"created_at": nullableString(w.createdAt),
		"updated_at": nullableString(w.updatedAt),
	}
}

/* getters */

// ID devolve o identificador (string de dígitos; vazio para registro novo).
func (w *Warehouse) ID() string { return w.id }

// Name devolve o nome validado.
func (w *Warehouse) Name() string { return w.name }

// Address devolve o endereço validado.
func (w *Warehouse) Address() string { return w.address }

// Email devolve o e-mail normalizado.
func (w *Warehouse) Email() string { return w.email }

// Type devolve o tipo do armazém.
func (w *Warehouse) Type() WarehouseType { return w.whType }

// CreatedAt interpreta o timestamp de criação armazenado.
func (w *Warehouse) CreatedAt() (time.Time, error) {
	t, err := validate.DateTime(w.createdAt)
	if err != nil {
		return time.Time{}, fieldErr(err, "created_at")
	}
	return t, nil
}

// UpdatedAt interpreta o timestamp de atualização armazenado.
func (w *Warehouse) UpdatedAt() (time.Time, error) {
	t, err := validate.DateTime(w.updatedAt)
	if err != nil {
		return time.Time{}, fieldErr(err, "updated_at")
	}
	return t, nil
}

/* setters */

// SetName valida e define o nome (varchar 255).
func (w *Warehouse) SetName(name string) error {
	clean, err := validate.Varchar(name, warehouseNameMaxLen)
	if err != nil {
		return fieldErr(err, "name")
	}
	w.name = clean
	return nil
}

// SetAddress valida e define o endereço (varchar 255).
func (w *Warehouse) SetAddress(address string) error {
	clean, err := validate.Varchar(address, warehouseAddressMaxLen)
	if err != nil {
		return fieldErr(err, "address")
	}
	w.address = clean
	return nil
}

// SetEmail valida, normaliza e define o e-mail.
func (w *Warehouse) SetEmail(email string) error {
	clean, err := validate.Email(email, warehouseEmailMaxLen)
	if err != nil {
		return fieldErr(err, "email")
	}
	w.email = clean
	return nil
}

// SetType valida o tipo contra o conjunto fechado {owned, supplier, currier}.
func (w *Warehouse) SetType(value string) error {
	whType, err := ParseWarehouseType(value)
	if err != nil {
		return fieldErr(err, "type")
	}
	w.whType = whType
	return nil
}

// MarshalJSON expõe o registro para a camada de apresentação.
func (w *Warehouse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Address   string `json:"address"`
		Email     string `json:"email"`
		Type      string `json:"type"`
		TypeLabel string `json:"type_label"`
		CreatedAt string `json:"created_at,omitempty"`
		UpdatedAt string `json:"updated_at,omitempty"`
	}{
		ID:        w.id,
		Name:      w.name,
		Address:   w.address,
		Email:     w.email,
		Type:      string(w.whType),
		TypeLabel: w.whType.Label(),
		CreatedAt: w.createdAt,
		UpdatedAt: w.updatedAt,
	})
}
