package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "plumelet/docs"
	"plumelet/internal/api/item"
	"plumelet/internal/api/user"
	"plumelet/internal/api/warehouse"
	"plumelet/internal/pkg/cache"
	"plumelet/internal/pkg/middleware"
)

// Options agrupa as dependências transversais aplicadas sobre o mux.
type Options struct {
	Cache         cache.Client
	RateLimitMax  int
	RateLimitSpan time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(itemHandler *item.Handler, userHandler *user.Handler, warehouseHandler *warehouse.Handler, opts Options) http.Handler {

	mux := http.NewServeMux()

	// --- Rotas de Health Check ---
	mux.HandleFunc("/ping", PingHandler)

	// --- Documentação Swagger ---
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// --- Rotas do Módulo de Itens (v1) ---
	mux.HandleFunc("/v1/items", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			itemHandler.CreateItemHandler(w, r)
		default:
			itemHandler.ListItemsHandler(w, r)
		}
	})
	mux.HandleFunc("/v1/items/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			itemHandler.UpdateItemHandler(w, r)
		case http.MethodDelete:
			itemHandler.DeleteItemHandler(w, r)
		default:
			itemHandler.GetItemByIDHandler(w, r)
		}
	})

	// --- Rotas do Módulo de Usuários (v1) ---
	mux.HandleFunc("/v1/users", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			userHandler.RegisterUserHandler(w, r)
		default:
			userHandler.ListUsersHandler(w, r)
		}
	})
	mux.HandleFunc("/v1/users/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			userHandler.UpdateUserHandler(w, r)
		case http.MethodDelete:
			userHandler.DeleteUserHandler(w, r)
		default:
			userHandler.GetUserByIDHandler(w, r)
		}
	})

	// --- Rotas do Módulo de Armazéns (v1) ---
	mux.HandleFunc("/v1/warehouses", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			warehouseHandler.CreateWarehouseHandler(w, r)
		default:
			warehouseHandler.ListWarehousesHandler(w, r)
		}
	})
	mux.HandleFunc("/v1/warehouses/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			warehouseHandler.UpdateWarehouseHandler(w, r)
		case http.MethodDelete:
			warehouseHandler.DeleteWarehouseHandler(w, r)
		default:
			warehouseHandler.GetWarehouseByIDHandler(w, r)
		}
	})

	// --- Middlewares globais ---
	var handler http.Handler = mux
	if opts.Cache != nil && opts.RateLimitMax > 0 {
		handler = middleware.RateLimiter(opts.Cache, opts.RateLimitMax, opts.RateLimitSpan)(handler)
	}
	handler = middleware.RequestID(handler)

	return handler
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
