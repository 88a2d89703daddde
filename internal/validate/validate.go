// Package validate reúne os validadores de campo dos registros de domínio.
// Cada função é pura: valida/normaliza um valor escalar e falha com um
// *apperror.ValidationError carregando o kind da regra violada. Nenhum valor
// inválido é corrigido silenciosamente, exceto onde o contrato manda
// (remoção de zeros à esquerda, arredondamento de preço).
package validate

import (
	"math"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	apperror "plumelet/internal/errors"
	"plumelet/internal/sanitize"
)

// MaxSerial é o maior identificador aceito: 2^64 - 1 (BIGINT UNSIGNED).
// Comparado como string para não depender de inteiros de 64 bits com sinal.
const MaxSerial = "18446744073709551615"

// DateTimeLayout é o formato fixo dos timestamps persistidos (UTC).
const DateTimeLayout = "2006-01-02 15:04:05"

var (
	nonDigits   = regexp.MustCompile(`[^0-9]`)
	controlRuns = regexp.MustCompile(`[[:cntrl:]]+`)
)

// Serial valida um identificador no intervalo de BIGINT UNSIGNED,
// representado como string de dígitos para evitar overflow.
//
// Sanitização: remove tudo que não é dígito e zeros à esquerda (entrada
// toda-zero normaliza para "0"). Falhas: entrada vazia (kind empty), mais
// de 20 dígitos (too_long), valor acima de MaxSerial (out_of_range).
// Idempotente: Serial(Serial(s)) == Serial(s).
func Serial(raw string) (string, error) {
	serial := strings.TrimSpace(raw)
	serial = nonDigits.ReplaceAllString(serial, "")

	if serial == "" {
		return "", apperror.NewValidationError(apperror.KindEmpty, "O serial não pode ser vazio.")
	}

	serial = strings.TrimLeft(serial, "0")
	if serial == "" {
		serial = "0"
	}

	if len(serial) > 20 {
		return "", apperror.NewValidationError(apperror.KindTooLong, "O serial é muito longo (máx. 20 dígitos).")
	}

	// Strings de dígitos sem zeros à esquerda e de mesmo comprimento comparam
	// lexicograficamente na mesma ordem que numericamente.
	if len(serial) == len(MaxSerial) && serial > MaxSerial {
		return "", apperror.NewValidationError(apperror.KindOutOfRange,
			"O serial excede o valor máximo permitido ("+MaxSerial+").")
	}

	return serial, nil
}

// Varchar normaliza texto livre e valida o limite de comprimento do campo.
// O comprimento é contado em code points, não em bytes. A normalização não
// trunca: exceder maxLen após normalizar é erro (too_long), nunca corte.
func Varchar(text string, maxLen int) (string, error) {
	text = sanitize.Sanitize(text, sanitize.Options{MaxLength: sanitize.NoLimit})

	if text == "" {
		return "", apperror.NewValidationError(apperror.KindEmpty, "O texto não pode ser vazio.")
	}
	if utf8.RuneCountInString(text) > maxLen {
		return "", apperror.NewValidationError(apperror.KindTooLong, "O texto é muito longo.")
	}

	// Remove caracteres de controle remanescentes.
	return controlRuns.ReplaceAllString(text, ""), nil
}

// Price valida um valor monetário: deve ser finito e não-negativo.
// Retorna o valor arredondado a digits casas decimais, modo half away
// from zero (math.Round sobre o valor escalado).
func Price(value float64, digits int) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, apperror.NewValidationError(apperror.KindInvalidNumber,
			"O preço deve ser um número finito e não-negativo.")
	}

	pow := math.Pow10(digits)
	return math.Round(value*pow) / pow, nil
}

// Email sanitiza e valida um endereço de e-mail.
// Remove espaços (inclusive internos), valida o limite de comprimento e a
// gramática do endereço, remove caracteres de controle e normaliza para
// minúsculas.
func Email(value string, maxLen int) (string, error) {
	email := strings.TrimSpace(value)
	email = strings.ReplaceAll(email, " ", "")

	if email == "" {
		return "", apperror.NewValidationError(apperror.KindEmpty, "O e-mail não pode ser vazio.")
	}
	if utf8.RuneCountInString(email) > maxLen {
		return "", apperror.NewValidationError(apperror.KindTooLong, "O e-mail é muito longo.")
	}

	if !isValidEmail(email) {
		return "", apperror.NewValidationError(apperror.KindInvalidEmail, "Endereço de e-mail inválido.")
	}

	email = controlRuns.ReplaceAllString(email, "")
	return strings.ToLower(email), nil
}

// isValidEmail verifica a gramática do endereço: parser RFC 5322 do net/mail
// mais as restrições usuais de uso web (parte local não vazia, domínio com
// ponto e sem ponto nas bordas).
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	local, domain := parts[0], parts[1]
	if local == "" {
		return false
	}
	if !strings.Contains(domain, ".") ||
		strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	return true
}

// DateTime interpreta um timestamp persistido no formato exato
// "2006-01-02 15:04:05", em UTC. Valores fora do formato falham com
// kind invalid_datetime.
func DateTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, apperror.NewValidationError(apperror.KindInvalidDateTime,
			"Formato de data/hora inválido: "+value)
	}
	return t, nil
}

// FormatDateTime serializa um instante no formato fixo de persistência (UTC).
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}
