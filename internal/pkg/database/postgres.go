package database

import (
	"database/sql"
	"fmt"
	"time"

	// Driver pq para PostgreSQL, registrado via side effect.
	_ "github.com/lib/pq"
)

// NewPostgresDB inicializa e configura o pool de conexões com o PostgreSQL.
// Retorna a conexão *sql.DB pronta para uso. O pool é o único recurso
// compartilhado do processo: aberto no bootstrap, fechado no shutdown.
func NewPostgresDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir a conexão com o DB: %w", err)
	}

	// Testa a conexão imediatamente: garante credenciais e servidor corretos.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no DB: %w", err)
	}

	// Configuração do Connection Pool.
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return db, nil
}
