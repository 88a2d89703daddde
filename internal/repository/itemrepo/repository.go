package itemrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"plumelet/internal/domain"
	"plumelet/internal/errors"
	"plumelet/internal/pkg/cache"
	"plumelet/internal/pkg/logger"
	"plumelet/internal/pkg/pagination"
	"plumelet/internal/validate"
)

// ItemRepository implementa o gateway de persistência para items.
// As linhas atravessam a fronteira como mapas coluna → escalar e só viram
// registros de domínio passando pelo hidratador.
type ItemRepository struct {
	DB        *sql.DB
	Cache     cache.Client // Cliente para operações de cache (Redis)
	CacheTTL  time.Duration
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewItemRepository cria e retorna uma nova instância do Repositório de Items.
func NewItemRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, logger logger.Logger) *ItemRepository {
	return &ItemRepository{
		DB:        db,
		Cache:     cacheClient,
		CacheTTL:  cacheTTL,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// cacheKey define a chave de cache para um item.
func cacheKey(id string) string {
	return "item:" + id
}

// itemRow monta a linha bruta no shape que o hidratador consome.
func itemRow(id int64, name, description string, price float64, currency sql.NullString, createdAt, updatedAt time.Time) map[string]any {
	var currencyValue any
	if currency.Valid {
		currencyValue = currency.String
	}
	return map[string]any{
		"id":          strconv.FormatInt(id, 10),
		"name":        name,
		"description": description,
		"price":       price,
		"currency":    currencyValue,
		"created_at":  validate.FormatDateTime(createdAt),
		"updated_at":  validate.FormatDateTime(updatedAt),
	}
}

// Insert insere um novo item e devolve o identificador gerado pelo banco,
// como string de dígitos. Os timestamps ficam a cargo do DEFAULT da tabela.
func (r *ItemRepository) Insert(ctx context.Context, item *domain.Item) (string, error) {
	r.logger.Debug("Iniciando Insert no repositório de items.", map[string]interface{}{"name": item.Name()})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	price, err := item.Price()
	if err != nil {
		return "", err
	}

	query := `
        INSERT INTO items (name, description, price, currency)
        VALUES ($1, $2, $3, NULLIF($4, ''))
        RETURNING id`

	var id int64
	err = r.DB.QueryRowContext(ctxTimeout, query,
		item.Name(), item.Description(), price, item.Currency(),
	).Scan(&id)
	if err != nil {
		r.logger.Error("Falha ao inserir item no DB.", err)
		return "", errors.NewDBError("Falha ao criar item", err)
	}

	newID := strconv.FormatInt(id, 10)
	r.logger.Info("Item criado com sucesso.", map[string]interface{}{"id": newID, "name": item.Name()})
	return newID, nil
}

// SelectOne busca um item pelo ID, consultando o cache antes do banco.
func (r *ItemRepository) SelectOne(ctx context.Context, id string) (*domain.Item, error) {
	r.logger.Debug("Iniciando SelectOne no repositório de items.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	// 1. Tentativa de cache (read-through).
	if cached, err := r.Cache.Get(ctxTimeout, cacheKey(id)); err == nil {
		var row map[string]any
		if json.Unmarshal([]byte(cached), &row) == nil {
			if item, err := domain.ItemFromRow(row); err == nil {
				return item, nil
			}
		}
		// Entrada corrompida: descarta e segue para o banco.
		r.Cache.Delete(ctxTimeout, cacheKey(id))
	} else if err != cache.ErrCacheMiss {
		// Falha real de cache (ex: conexão perdida): logamos, mas continuamos.
		r.logger.Warn("Falha ao consultar o cache de items.", map[string]interface{}{"id": id, "error": err.Error()})
	}

	// 2. Banco de dados.
	query := `
        SELECT id, name, description, price, currency, created_at, updated_at
        FROM items
        WHERE id = $1`

	var (
		dbID                 int64
		name, description    string
		price                float64
		currency             sql.NullString
		createdAt, updatedAt time.Time
	)
	err := r.DB.QueryRowContext(ctxTimeout, query, id).Scan(
		&dbID, &name, &description, &price, &currency, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		r.logger.Info("Item não encontrado.", map[string]interface{}{"id": id})
		return nil, errors.NewNotFoundError(fmt.Sprintf("Item com ID %s não encontrado.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar item no DB.", err)
		return nil, errors.NewDBError("Falha ao buscar item", err)
	}

	row := itemRow(dbID, name, description, price, currency, createdAt, updatedAt)
	item, err := domain.ItemFromRow(row)
	if err != nil {
		return nil, err
	}

	// 3. Backfill do cache (best-effort).
	if payload, err := json.Marshal(row); err == nil {
		r.Cache.Set(ctxTimeout, cacheKey(id), payload, r.CacheTTL)
	}

	return item, nil
}

// SelectAll busca todos os items.
func (r *ItemRepository) SelectAll(ctx context.Context) ([]*domain.Item, error) {
	r.logger.Debug("Iniciando SelectAll no repositório de items.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, name, description, price, currency, created_at, updated_at
        FROM items
        ORDER BY id`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar SelectAll de items.", err)
		return nil, errors.NewDBError("Falha ao buscar todos os items", err)
	}
	defer rows.Close()

	items, err := r.collect(rows)
	if err != nil {
		return nil, err
	}

	r.logger.Info("SelectAll de items concluído.", map[string]interface{}{"total_items": len(items)})
	return items, nil
}

// Update atualiza um item existente dentro de uma transação e devolve o
// número de linhas afetadas. A decisão sobre 0 linhas fica com o serviço.
func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) (int64, error) {
	r.logger.Debug("Iniciando Update no repositório de items.", map[string]interface{}{"id": item.ID()})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	price, err := item.Price()
	if err != nil {
		return 0, err
	}

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		r.logger.Error("Falha ao abrir transação para atualizar item.", err)
		return 0, errors.NewDBError("Falha ao atualizar item", err)
	}

	query := `
        UPDATE items
        SET name = $1,
            description = $2,
            price = $3,
            currency = NULLIF($4, ''),
            updated_at = now()
        WHERE id = $5`

	result, err := tx.ExecContext(ctxTimeout, query,
		item.Name(), item.Description(), price, item.Currency(), item.ID(),
	)
	if err != nil {
		tx.Rollback()
		r.logger.Error("Falha ao atualizar item no DB.", err)
		return 0, errors.NewDBError("Falha ao atualizar item", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return 0, errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Falha ao commitar atualização de item.", err)
		return 0, errors.NewDBError("Falha ao atualizar item", err)
	}

	// Invalida a entrada de cache do registro alterado.
	r.Cache.Delete(ctxTimeout, cacheKey(item.ID()))

	r.logger.Info("Item atualizado.", map[string]interface{}{"id": item.ID(), "affected": affected})
	return affected, nil
}

// Delete remove um item pelo ID. Retorna true se alguma linha foi removida.
func (r *ItemRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.logger.Debug("Iniciando Delete no repositório de items.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar item do DB.", err)
		return false, errors.NewDBError("Falha ao deletar item", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}

	r.Cache.Delete(ctxTimeout, cacheKey(id))

	r.logger.Info("Delete de item concluído.", map[string]interface{}{"id": id, "deleted": affected > 0})
	return affected > 0, nil
}

// Count devolve o total de items registrados.
func (r *ItemRepository) Count(ctx context.Context) (int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(ctxTimeout, `SELECT COUNT(*) FROM items`).Scan(&total); err != nil {
		r.logger.Error("Falha ao contar items no DB.", err)
		return 0, errors.NewDBError("Falha ao contar items", err)
	}
	return total, nil
}

// SearchByNamePattern busca items cujo nome contém o fragmento, com paginação.
func (r *ItemRepository) SearchByNamePattern(ctx context.Context, fragment string, pag pagination.Pagination) ([]*domain.Item, error) {
	r.logger.Debug("Iniciando SearchByNamePattern no repositório de items.", map[string]interface{}{"fragment": fragment})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, name, description, price, currency, created_at, updated_at
        FROM items
        WHERE name ILIKE '%' || $1 || '%'
        ORDER BY name
        LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctxTimeout, query, fragment, pag.PerPage(), pag.Offset())
	if err != nil {
		r.logger.Error("Falha ao executar busca de items por nome.", err)
		return nil, errors.NewDBError("Falha ao buscar items por nome", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// CountByNamePattern conta os items cujo nome contém o fragmento.
func (r *ItemRepository) CountByNamePattern(ctx context.Context, fragment string) (int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	err := r.DB.QueryRowContext(ctxTimeout,
		`SELECT COUNT(*) FROM items WHERE name ILIKE '%' || $1 || '%'`, fragment,
	).Scan(&total)
	if err != nil {
		r.logger.Error("Falha ao contar items por nome no DB.", err)
		return 0, errors.NewDBError("Falha ao contar items por nome", err)
	}
	return total, nil
}

// collect hidrata cada linha do result set em um registro de domínio.
func (r *ItemRepository) collect(rows *sql.Rows) ([]*domain.Item, error) {
	var items []*domain.Item
	for rows.Next() {
		var (
			id                   int64
			name, description    string
			price                float64
			currency             sql.NullString
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&id, &name, &description, &price, &currency, &createdAt, &updatedAt); err != nil {
			r.logger.Error("Falha ao mapear item na iteração do result set.", err)
			return nil, errors.NewDBError("Falha ao mapear items do DB", err)
		}

		item, err := domain.ItemFromRow(itemRow(id, name, description, price, currency, createdAt, updatedAt))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de items.", err)
		return nil, errors.NewDBError("Erro após iteração de items", err)
	}
	return items, nil
}
