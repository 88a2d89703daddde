package domain

import (
	"encoding/json"
	"time"

	"plumelet/internal/hydrate"
	"plumelet/internal/sanitize"
	"plumelet/internal/validate"
)

// Limites de comprimento das colunas varchar de items.
const (
	itemNameMaxLen        = 255
	itemDescriptionMaxLen = 1020
	itemCurrencyMaxLen    = 255
)

// shortDescriptionLimit é o corte do resumo de descrição (em code points).
const shortDescriptionLimit = 24

// itemFields é a tabela de descritores consumida pelo hidratador.
// created_at/updated_at ficam opcionais: registros recém-criados ainda não
// passaram pelo banco e não possuem timestamps.
var itemFields = []hydrate.Field{
	{Name: "id", Type: hydrate.TypeString},
	{Name: "name", Type: hydrate.TypeString, Required: true},
	{Name: "description", Type: hydrate.TypeString, Required: true},
	{Name: "price", Type: hydrate.TypeFloat, Required: true},
	{Name: "currency", Type: hydrate.TypeString},
	{Name: "created_at", Type: hydrate.TypeString},
	{Name: "updated_at", Type: hydrate.TypeString},
}

// Item é o registro validado de um item do catálogo.
type Item struct {
	id          string
	name        string
	description string
	price       float64
	currency    string
	createdAt   string
	updatedAt   string
}

// ItemInput é o payload de entrada para criação/atualização de itens.
type ItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
}

// NewItem constrói um registro novo (sem identificador e sem timestamps),
// destinado a um INSERT. Todos os campos passam pelos validadores.
func NewItem(input ItemInput) (*Item, error) {
	item := &Item{}

	if err := item.SetName(input.Name); err != nil {
		return nil, err
	}
	if err := item.SetDescription(input.Description); err != nil {
		return nil, err
	}
	if err := item.SetPrice(input.Price); err != nil {
		return nil, err
	}
	if err := item.SetCurrency(input.Currency); err != nil {
		return nil, err
	}

	return item, nil
}

// ItemFromRow hidrata um registro a partir de uma linha bruta do storage.
// Os campos de negócio passam pelos setters (revalidação); identificador e
// timestamps vêm do storage confiável e são atribuídos diretamente após a
// checagem de serial.
func ItemFromRow(row map[string]any) (*Item, error) {
	values, err := hydrate.Hydrate(row, itemFields)
	if err != nil {
		return nil, err
	}

	item := &Item{}
	if err := item.SetName(hydrate.String(values, "name")); err != nil {
		return nil, err
	}
	if err := item.SetDescription(hydrate.String(values, "description")); err != nil {
		return nil, err
	}
	if err := item.SetPrice(hydrate.Float(values, "price")); err != nil {
		return nil, err
	}
	if err := item.SetCurrency(hydrate.String(values, "currency")); err != nil {
		return nil, err
	}

	if id := hydrate.String(values, "id"); id != "" {
		serial, err := validate.Serial(id)
		if err != nil {
			return nil, fieldErr(err, "id")
		}
		item.id = serial
	}
	item.createdAt = hydrate.String(values, "created_at")
	item.updatedAt = hydrate.String(values, "updated_at")

	return item, nil
}

// ToRow serializa o registro de volta para uma linha bruta (coluna → escalar),
// o mesmo shape que o hidratador consome.
func (i *Item) ToRow() map[string]any {
	return map[string]any{
		"id":          nullableString(i.id),
		"name":        i.name,
		"description": i.description,
		"price":       i.price,
		"currency":    i.currency,
		"created_at":  nullableString(i.createdAt),
		"updated_at":  nullableString(i.updatedAt),
	}
}

/* getters */

// ID devolve o identificador (string de dígitos; vazio para registro novo).
func (i *Item) ID() string { return i.id }

// Name devolve o nome validado.
func (i *Item) Name() string { return i.name }

// Description devolve a descrição validada.
func (i *Item) Description() string { return i.description }

// ShortDescription devolve a descrição truncada em fronteira de palavra,
// com reticências quando houver corte.
func (i *Item) ShortDescription() string {
	return sanitize.EllipsisPreserveWords(i.description, shortDescriptionLimit)
}

// Currency devolve a moeda ("" quando não informada).
func (i *Item) Currency() string { return i.currency }

// Price revalida e devolve o preço arredondado a 2 casas.
func (i *Item) Price() (float64, error) {
	price, err := validate.Price(i.price, 2)
	if err != nil {
		return 0, fieldErr(err, "price")
	}
	return price, nil
}

// CreatedAt interpreta o timestamp de criação armazenado.
func (i *Item) CreatedAt() (time.Time, error) {
	t, err := validate.DateTime(i.createdAt)
	if err != nil {
		return time.Time{}, fieldErr(err, "created_at")
	}
	return t, nil
}

// UpdatedAt interpreta o timestamp de atualização armazenado.
func (i *Item) UpdatedAt() (time.Time, error) {
	t, err := validate.DateTime(i.updatedAt)
	if err != nil {
		return time.Time{}, fieldErr(err, "updated_at")
	}
	return t, nil
}

/* setters */

// SetName valida e define o nome (varchar 255).
func (i *Item) SetName(name string) error {
	clean, err := validate.Varchar(name, itemNameMaxLen)
	if err != nil {
		return fieldErr(err, "name")
	}
	i.name = clean
	return nil
}

// SetDescription valida e define a descrição (varchar 1020).
func (i *Item) SetDescription(description string) error {
	clean, err := validate.Varchar(description, itemDescriptionMaxLen)
	if err != nil {
		return fieldErr(err, "description")
	}
	i.description = clean
	return nil
}

// SetPrice valida e define o preço (arredondado a 2 casas).
func (i *Item) SetPrice(price float64) error {
	rounded, err := validate.Price(price, 2)
	if err != nil {
		return fieldErr(err, "price")
	}
	i.price = rounded
	return nil
}

// SetCurrency valida e define a moeda. Campo opcional: vazio vira "".
func (i *Item) SetCurrency(currency string) error {
	if currency == "" {
		i.currency = ""
		return nil
	}
	clean, err := validate.Varchar(currency, itemCurrencyMaxLen)
	if err != nil {
		return fieldErr(err, "currency")
	}
	i.currency = clean
	return nil
}

// MarshalJSON expõe o registro para a camada de apresentação.
func (i *Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID               string  `json:"id"`
		Name             string  `json:"name"`
		Description      string  `json:"description"`
		ShortDescription string  `json:"short_description"`
		Price            float64 `json:"price"`
		Currency         string  `json:"currency"`
		CreatedAt        string  `json:"created_at,omitempty"`
		UpdatedAt        string  `json:"updated_at,omitempty"`
	}{
		ID:               i.id,
		Name:             i.name,
		Description:      i.description,
		ShortDescription: i.ShortDescription(),
		Price:            i.price,
		Currency:         i.currency,
		CreatedAt:        i.createdAt,
		UpdatedAt:        i.updatedAt,
	})
}
