package domain_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"plumelet/internal/domain"
	apperror "plumelet/internal/errors"
)

func TestNewItem_EntradaValida(t *testing.T) {
	item, err := domain.NewItem(domain.ItemInput{
		Name:        "  Parafuso   M8  ",
		Description: "Parafuso sextavado de aço inox.",
		Price:       0.125,
		Currency:    "BRL",
	})

	assert.NoError(t, err)
	assert.Equal(t, "", item.ID())
	assert.Equal(t, "Parafuso M8", item.Name())
	assert.Equal(t, "BRL", item.Currency())

	price, err := item.Price()
	assert.NoError(t, err)
	assert.Equal(t, 0.13, price)
}

func TestNewItem_CamposInvalidos(t *testing.T) {
	_, err := domain.NewItem(domain.ItemInput{
		Name:        "   ",
		Description: "desc",
		Price:       1,
	})
	assertFieldError(t, err, "name", apperror.KindEmpty)

	_, err = domain.NewItem(domain.ItemInput{
		Name:        "ok",
		Description: strings.Repeat("a", 1021),
		Price:       1,
	})
	assertFieldError(t, err, "description", apperror.KindTooLong)

	_, err = domain.NewItem(domain.ItemInput{
		Name:        "ok",
		Description: "desc",
		Price:       -5,
	})
	assertFieldError(t, err, "price", apperror.KindInvalidNumber)
}

func TestItem_ShortDescription(t *testing.T) {
	item, err := domain.NewItem(domain.ItemInput{
		Name:        "Caixa",
		Description: "Uma descrição comprida o bastante para ser cortada",
		Price:       10,
	})
	assert.NoError(t, err)

	short := item.ShortDescription()
	assert.True(t, strings.HasSuffix(short, "…"))
	assert.LessOrEqual(t, len([]rune(short)), 25)
}

func TestItemFromRow_IdaEVolta(t *testing.T) {
	row := map[string]any{
		"id":          "7",
		"name":        "Caixa",
		"description": "Caixa de papelão reforçada.",
		"price":       42.5,
		"currency":    "BRL",
		"created_at":  "2024-03-01 12:30:45",
		"updated_at":  "2024-03-02 08:00:00",
	}

	item, err := domain.ItemFromRow(row)
	assert.NoError(t, err)
	assert.Equal(t, "7", item.ID())

	createdAt, err := item.CreatedAt()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC), createdAt)

	// ToRow devolve o mesmo shape que o hidratador consome.
	back, err := domain.ItemFromRow(item.ToRow())
	assert.NoError(t, err)
	assert.Equal(t, item.ID(), back.ID())
	assert.Equal(t, item.Name(), back.Name())
	assert.Equal(t, item.Description(), back.Description())
}

func TestItemFromRow_PrecoComoString(t *testing.T) {
	// Drivers de DB podem entregar NUMERIC como string.
	item, err := domain.ItemFromRow(map[string]any{
		"id":          "3",
		"name":        "Caixa",
		"description": "desc",
		"price":       "19.99",
	})

	assert.NoError(t, err)
	price, err := item.Price()
	assert.NoError(t, err)
	assert.Equal(t, 19.99, price)
}

func TestItemFromRow_CampoObrigatorioAusente(t *testing.T) {
	_, err := domain.ItemFromRow(map[string]any{
		"id":   "3",
		"name": "Caixa",
	})

	assert.Error(t, err)
	assert.IsType(t, &apperror.HydrationError{}, err)
}

func TestItem_MarshalJSON(t *testing.T) {
	item, err := domain.NewItem(domain.ItemInput{
		Name:        "Caixa",
		Description: "Caixa de papelão.",
		Price:       19.99,
	})
	assert.NoError(t, err)

	data, err := json.Marshal(item)
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Caixa", decoded["name"])
	assert.Contains(t, decoded, "short_description")
	assert.NotContains(t, decoded, "created_at") // omitempty em registro novo
}

// assertFieldError verifica o campo e o kind de um ValidationError.
func assertFieldError(t *testing.T, err error, field string, kind apperror.Kind) {
	t.Helper()
	assert.Error(t, err)
	valErr, ok := err.(*apperror.ValidationError)
	if assert.True(t, ok, "esperado *apperror.ValidationError, veio %T", err) {
		assert.Equal(t, field, valErr.Field)
		assert.Equal(t, kind, valErr.Kind)
	}
}
