// Package hydrate converte linhas brutas do banco (mapas coluna → valor
// escalar) em valores tipados, guiado por tabelas de descritores de campo
// declaradas por cada registro de domínio. A tabela estática substitui a
// introspecção em runtime: o mapeamento continua dirigido por dados, mas o
// shape de cada registro é explícito e verificável.
package hydrate

import (
	"fmt"
	"strconv"
	"strings"

	apperror "plumelet/internal/errors"
)

// Type é o tipo declarado de um campo na tabela de descritores.
type Type int

const (
	// TypeString estringifica valores escalares.
	TypeString Type = iota
	// TypeInt coage strings numéricas e números para int64.
	TypeInt
	// TypeFloat coage strings numéricas e números para float64.
	TypeFloat
	// TypeBool aplica o parse booleano permissivo (ver ParseBool).
	TypeBool
	// TypeComposite passa valores estruturados ([]any, map) adiante; escalares viram nil.
	TypeComposite
	// TypeRaw passa o valor adiante sem coerção alguma.
	TypeRaw
)

// Field descreve um campo esperado na linha bruta.
type Field struct {
	Name     string
	Type     Type
	Required bool
}

// Hydrate coage cada campo declarado a partir da linha bruta.
// Campo ausente ou não coercível vira nil; se o campo é obrigatório,
// a hidratação falha com *apperror.HydrationError. Colunas da linha que
// não constam na tabela são ignoradas.
func Hydrate(row map[string]any, fields []Field) (map[string]any, error) {
	values := make(map[string]any, len(fields))

	for _, field := range fields {
		raw, ok := row[field.Name]
		if !ok || raw == nil {
			if field.Required {
				return nil, apperror.NewHydrationError(field.Name, "campo obrigatório ausente na linha")
			}
			values[field.Name] = nil
			continue
		}

		coerced := coerce(raw, field.Type)
		if coerced == nil && field.Required {
			return nil, apperror.NewHydrationError(field.Name,
				fmt.Sprintf("valor %q não coercível para o tipo declarado", fmt.Sprint(raw)))
		}
		values[field.Name] = coerced
	}

	return values, nil
}

// coerce aplica a regra de coerção do tipo declarado. Valores não
// coercíveis degradam para nil; a decisão de falhar é do chamador
// (Hydrate), que conhece a obrigatoriedade do campo.
func coerce(raw any, t Type) any {
	switch t {
	case TypeInt:
		return coerceInt(raw)
	case TypeFloat:
		return coerceFloat(raw)
	case TypeBool:
		return coerceBool(raw)
	case TypeString:
		return coerceString(raw)
	case TypeComposite:
		switch raw.(type) {
		case []any, map[string]any:
			return raw
		}
		return nil
	default:
		return raw
	}
}

func coerceInt(raw any) any {
	switch v := raw.(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n
		}
		// Strings numéricas com parte decimal são truncadas, como um cast.
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return int64(f)
		}
	}
	return nil
}

func coerceFloat(raw any) any {
	switch v := raw.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return nil
}

func coerceBool(raw any) any {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		return ParseBool(v)
	}
	return nil
}

func coerceString(raw any) any {
	switch v := raw.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return nil
}

// ParseBool aplica o parse booleano permissivo sobre uma string.
// Lista de tokens fixada (case-insensitive, após trim):
// "1", "true", "yes", "on" → true; "0", "false", "no", "off", "" → false.
// Qualquer outro token retorna nil.
func ParseBool(value string) any {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off", "":
		return false
	}
	return nil
}

// --- Acessores tipados para o resultado de Hydrate ---
// Devolvem o valor zero quando o campo é nil (opcional ausente).

// String lê um campo coergido como string.
func String(values map[string]any, field string) string {
	if s, ok := values[field].(string); ok {
		return s
	}
	return ""
}

// Int lê um campo coergido como int64.
func Int(values map[string]any, field string) int64 {
	if n, ok := values[field].(int64); ok {
		return n
	}
	return 0
}

// Float lê um campo coergido como float64.
func Float(values map[string]any, field string) float64 {
	if f, ok := values[field].(float64); ok {
		return f
	}
	return 0
}

// Bool lê um campo coergido como bool.
func Bool(values map[string]any, field string) bool {
	if b, ok := values[field].(bool); ok {
		return b
	}
	return false
}
