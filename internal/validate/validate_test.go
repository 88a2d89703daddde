package validate_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperror "plumelet/internal/errors"
	"plumelet/internal/validate"
)

// assertKind verifica que o erro é um ValidationError com o kind esperado.
func assertKind(t *testing.T, err error, kind apperror.Kind) {
	t.Helper()
	assert.Error(t, err)
	valErr, ok := err.(*apperror.ValidationError)
	if assert.True(t, ok, "esperado *apperror.ValidationError, veio %T", err) {
		assert.Equal(t, kind, valErr.Kind)
	}
}

func TestSerial_RemoveZerosEsquerda(t *testing.T) {
	serial, err := validate.Serial("0000123")

	assert.NoError(t, err)
	assert.Equal(t, "123", serial)
}

func TestSerial_DescartaNaoDigitos(t *testing.T) {
	serial, err := validate.Serial(" 98-76 ")

	assert.NoError(t, err)
	assert.Equal(t, "9876", serial)
}

func TestSerial_TodoZeroViraZero(t *testing.T) {
	serial, err := validate.Serial("0000")

	assert.NoError(t, err)
	assert.Equal(t, "0", serial)
}

func TestSerial_Vazio(t *testing.T) {
	_, err := validate.Serial("   ")
	assertKind(t, err, apperror.KindEmpty)

	// Entrada sem nenhum dígito também conta como vazia.
	_, err = validate.Serial("abc")
	assertKind(t, err, apperror.KindEmpty)
}

func TestSerial_ValorMaximo(t *testing.T) {
	serial, err := validate.Serial(validate.MaxSerial)

	assert.NoError(t, err)
	assert.Equal(t, validate.MaxSerial, serial)
}

func TestSerial_AcimaDoMaximo(t *testing.T) {
	_, err := validate.Serial(strings.Repeat("9", 20))
	assertKind(t, err, apperror.KindOutOfRange)
}

func TestSerial_MuitoLongo(t *testing.T) {
	_, err := validate.Serial(strings.Repeat("1", 21))
	assertKind(t, err, apperror.KindTooLong)
}

func TestSerial_Idempotente(t *testing.T) {
	first, err := validate.Serial("007 42")
	assert.NoError(t, err)

	second, err := validate.Serial(first)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestVarchar_NormalizaEspacos(t *testing.T) {
	text, err := validate.Varchar("  Hello   World  ", 255)

	assert.NoError(t, err)
	assert.Equal(t, "Hello World", text)
}

func TestVarchar_Vazio(t *testing.T) {
	_, err := validate.Varchar("   ", 255)
	assertKind(t, err, apperror.KindEmpty)
}

func TestVarchar_MuitoLongo(t *testing.T) {
	// A normalização nunca trunca: exceder o limite é erro.
	_, err := validate.Varchar(strings.Repeat("a", 256), 255)
	assertKind(t, err, apperror.KindTooLong)
}

func TestVarchar_ContaCodePoints(t *testing.T) {
	// 10 code points multibyte dentro de um limite de 10.
	text, err := validate.Varchar(strings.Repeat("é", 10), 10)

	assert.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", 10), text)
}

func TestPrice_ArredondaMeioParaLonge(t *testing.T) {
	price, err := validate.Price(0.125, 2)

	assert.NoError(t, err)
	assert.Equal(t, 0.13, price)
}

func TestPrice_RepresentacaoBinaria(t *testing.T) {
	// 19.995 em float64 fica logo abaixo do meio exato: arredonda para baixo.
	price, err := validate.Price(19.995, 2)

	assert.NoError(t, err)
	assert.Equal(t, 19.99, price)
}

func TestPrice_ValoresInvalidos(t *testing.T) {
	_, err := validate.Price(-1, 2)
	assertKind(t, err, apperror.KindInvalidNumber)

	_, err = validate.Price(math.NaN(), 2)
	assertKind(t, err, apperror.KindInvalidNumber)

	_, err = validate.Price(math.Inf(1), 2)
	assertKind(t, err, apperror.KindInvalidNumber)
}

func TestPrice_ZeroValido(t *testing.T) {
	price, err := validate.Price(0, 2)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, price)
}

func TestEmail_NormalizaParaMinusculas(t *testing.T) {
	email, err := validate.Email("  Foo@EXAMPLE.com ", 255)

	assert.NoError(t, err)
	assert.Equal(t, "foo@example.com", email)
}

func TestEmail_RemoveEspacosInternos(t *testing.T) {
	email, err := validate.Email("fo o@exam ple.com", 255)

	assert.NoError(t, err)
	assert.Equal(t, "foo@example.com", email)
}

func TestEmail_Invalido(t *testing.T) {
	_, err := validate.Email("not-an-email", 255)
	assertKind(t, err, apperror.KindInvalidEmail)

	// Domínio sem ponto não serve para uso web.
	_, err = validate.Email("user@localhost", 255)
	assertKind(t, err, apperror.KindInvalidEmail)
}

func TestEmail_Vazio(t *testing.T) {
	_, err := validate.Email("   ", 255)
	assertKind(t, err, apperror.KindEmpty)
}

func TestEmail_MuitoLongo(t *testing.T) {
	long := strings.Repeat("a", 250) + "@example.com"
	_, err := validate.Email(long, 255)
	assertKind(t, err, apperror.KindTooLong)
}

func TestDateTime_FormatoExato(t *testing.T) {
	parsed, err := validate.DateTime("2024-03-01 12:30:45")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC), parsed)
}

func TestDateTime_Invalido(t *testing.T) {
	_, err := validate.DateTime("2024-03-01T12:30:45Z")
	assertKind(t, err, apperror.KindInvalidDateTime)

	_, err = validate.DateTime("2024-13-01 00:00:00")
	assertKind(t, err, apperror.KindInvalidDateTime)
}

func TestFormatDateTime_IdaEVolta(t *testing.T) {
	instant := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)

	formatted := validate.FormatDateTime(instant)
	assert.Equal(t, "2024-03-01 12:30:45", formatted)

	parsed, err := validate.DateTime(formatted)
	assert.NoError(t, err)
	assert.Equal(t, instant, parsed)
}
