package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client define o contrato de interface para qualquer serviço de cache que o
// Repositório e os middlewares possam usar. Isso segue o Princípio da
// Inversão de Dependência (DIP).
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	GetInt(ctx context.Context, key string) (int, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Incr(ctx context.Context, key string) error
	Delete(ctx context.Context, key string) error
}

// ErrCacheMiss é retornado quando a chave não é encontrada no cache.
var ErrCacheMiss = redis.Nil

// RedisClient é a implementação concreta da interface Client, usando Redis.
type RedisClient struct {
	rdb *redis.Client
}

// NewRedisClient cria e retorna uma nova instância do cliente Redis.
// Esta função é chamada no main.go. O cache é best-effort: uma falha de
// conexão aqui não impede o processo de subir.
func NewRedisClient(addr string) Client {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr, // Endereço do Redis (e.g., "localhost:6379")
	})

	// Teste de conexão: PING para garantir que o cache está disponível.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rdb.Ping(ctx)

	return &RedisClient{rdb: rdb}
}

// Get recupera o valor associado a uma chave.
func (c *RedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()

	// Se a chave não existir no Redis, retornamos o erro exportado (redis.Nil)
	if err == redis.Nil {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// GetInt recupera o valor de uma chave como inteiro (usado pelo rate limiter).
func (c *RedisClient) GetInt(ctx context.Context, key string) (int, error) {
	val, err := c.rdb.Get(ctx, key).Int()
	if err == redis.Nil {
		return 0, ErrCacheMiss
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}

// Set define um valor para uma chave com um tempo de expiração.
func (c *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.rdb.Set(ctx, key, value, expiration).Err()
}

// Incr incrementa atomicamente o contador de uma chave.
func (c *RedisClient) Incr(ctx context.Context, key string) error {
	return c.rdb.Incr(ctx, key).Err()
}

// Delete remove uma chave do cache.
func (c *RedisClient) Delete(ctx context.Context, key string) error {
	// Comando DEL, retorna o número de chaves deletadas (0 se não existir)
	return c.rdb.Del(ctx, key).Err()
}
