package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Pacotes de infraestrutura e utilitários
	"plumelet/config"
	"plumelet/internal/pkg/cache"
	"plumelet/internal/pkg/database"
	"plumelet/internal/pkg/logger"

	// Camadas para Injeção de Dependências
	"plumelet/internal/api/item"
	"plumelet/internal/api/router"
	"plumelet/internal/api/user"
	"plumelet/internal/api/warehouse"
	"plumelet/internal/repository/itemrepo"
	"plumelet/internal/repository/userrepo"
	"plumelet/internal/repository/warehouserepo"
	"plumelet/internal/service/itemservice"
	"plumelet/internal/service/userservice"
	"plumelet/internal/service/warehouseservice"
)

// @title Plumelet API
// @version 1.0
// @description API de cadastro de itens, usuários e armazéns com validação e sanitização de registros.
// @BasePath /v1
func main() {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando serviço Plumelet...")

	// O godotenv.Load() procura por um arquivo chamado .env na raiz.
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", nil)

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis)
	cacheClient := cache.NewRedisClient(cfg.RedisAddr)
	log.Info("Conexão Redis estabelecida.", nil)

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler

	itemRepo := itemrepo.NewItemRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, log)
	itemSvc := itemservice.NewService(itemRepo, log)
	itemHandler := item.NewHandler(itemSvc, log)
	log.Debug("Módulo de Itens inicializado.", nil)

	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, log)
	userSvc := userservice.NewService(userRepo, log)
	userHandler := user.NewHandler(userSvc, log)
	log.Debug("Módulo de Usuários inicializado.", nil)

	warehouseRepo := warehouserepo.NewWarehouseRepository(db, cfg.DBTimeout, log)
	warehouseSvc := warehouseservice.NewService(warehouseRepo, log)
	warehouseHandler := warehouse.NewHandler(warehouseSvc, log)
	log.Debug("Módulo de Armazéns inicializado.", nil)

	// 4. Configuração e Início do Roteador/Servidor

	r := router.NewRouter(itemHandler, userHandler, warehouseHandler, router.Options{
		Cache:         cacheClient,
		RateLimitMax:  cfg.RateLimitMaxRequests,
		RateLimitSpan: cfg.RateLimitPeriod,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor Plumelet ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
