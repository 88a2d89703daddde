package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

// RequestIDKey é a chave de contexto sob a qual o ID da requisição fica disponível.
const RequestIDKey contextKey = "request_id"

// RequestIDHeader é o header propagado na resposta (e aceito na entrada).
const RequestIDHeader = "X-Request-ID"

// RequestID anexa um identificador único a cada requisição. Se o cliente já
// enviou um X-Request-ID, ele é reaproveitado; caso contrário um UUID novo é gerado.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext recupera o ID da requisição, se presente.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
