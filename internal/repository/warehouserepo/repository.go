package warehouserepo

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"plumelet/internal/domain"
	"plumelet/internal/errors"
	"plumelet/internal/pkg/logger"
	"plumelet/internal/pkg/pagination"
	"plumelet/internal/validate"
)

// WarehouseRepository implementa o gateway de persistência para armazéns.
type WarehouseRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewWarehouseRepository cria e retorna uma nova instância do Repositório de Armazéns.
func NewWarehouseRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *WarehouseRepository {
	return &WarehouseRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// warehouseRow monta a linha bruta no shape que o hidratador consome.
func warehouseRow(id int64, name, address, email, whType string, createdAt, updatedAt time.Time) map[string]any {
	return map[string]any{
		"id":         strconv.FormatInt(id, 10),
		"name":       name,
		"address":    address,
		"email":      email,
		"type":       whType,
		"created_at": validate.FormatDateTime(createdAt),
		"updated_at": validate.FormatDateTime(updatedAt),
	}
}

// Insert insere um novo armazém e devolve o identificador gerado.
func (r *WarehouseRepository) Insert(ctx context.Context, warehouse *domain.Warehouse) (string, error) {
	r.logger.Debug("Iniciando Insert no repositório de armazéns.", map[string]interface{}{"name": warehouse.Name()})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        INSERT INTO warehouses (name, address, email, type)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	var id int64
	err := r.DB.QueryRowContext(ctxTimeout, query,
		warehouse.Name(), warehouse.Address(), warehouse.Email(), string(warehouse.Type()),
	).Scan(&id)
	if err != nil {
		r.logger.Error("Falha ao inserir armazém no DB.", err)
		return "", errors.NewDBError("Falha ao criar armazém", err)
	}

	newID := strconv.FormatInt(id, 10)
	r.logger.Info("Armazém criado com sucesso.", map[string]interface{}{"id": newID})
	return newID, nil
}

// SelectOne busca um armazém pelo ID.
func (r *WarehouseRepository) SelectOne(ctx context.Context, id string) (*domain.Warehouse, error) {
	r.logger.Debug("Iniciando SelectOne no repositório de armazéns.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, name, address, email, type, created_at, updated_at
        FROM warehouses
        WHERE id = $1`

	var (
		dbID                        int64
		name, address, email, wType string
		createdAt, updatedAt        time.Time
	)
	err := r.DB.QueryRowContext(ctxTimeout, query, id).Scan(
		&dbID, &name, &address, &email, &wType, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		r.logger.Info("Armazém não encontrado.", map[string]interface{}{"id": id})
		return nil, errors.NewNotFoundError(fmt.Sprintf("Armazém com ID %s não encontrado.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar armazém no DB.", err)
		return nil, errors.NewDBError("Falha ao buscar armazém", err)
	}

	return domain.WarehouseFromRow(warehouseRow(dbID, name, address, email, wType, createdAt, updatedAt))
}

// SelectAll busca todos os armazéns.
func (r *WarehouseRepository) SelectAll(ctx context.Context) ([]*domain.Warehouse, error) {
	r.logger.Debug("Iniciando SelectAll no repositório de armazéns.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, name, address, email, type, created_at, updated_at
        FROM warehouses
        ORDER BY id`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar SelectAll de armazéns.", err)
		return nil, errors.NewDBError("Falha ao buscar todos os armazéns", err)
	}
	defer rows.Close()

	warehouses, err := r.collect(rows)
	if err != nil {
		return nil, err
	}

	r.logger.Info("SelectAll de armazéns concluído.", map[string]interface{}{"total_warehouses": len(warehouses)})
	return warehouses, nil
}

// Update atualiza um armazém existente dentro de uma transação e devolve
// o número de linhas afetadas.
func (r *WarehouseRepository) Update(ctx context.Context, warehouse *domain.Warehouse) (int64, error) {
	r.logger.Debug("Iniciando Update no repositório de armazéns.", map[string]interface{}{"id": warehouse.ID()})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		r.logger.Error("Falha ao abrir transação para atualizar armazém.", err)
		return 0, errors.NewDBError("Falha ao atualizar armazém", err)
	}

	query := `
        UPDATE warehouses
        SET name = $1,
            address = $2,
            email = $3,
            type = $4,
            updated_at = now()
        WHERE id = $5`

	result, err := tx.ExecContext(ctxTimeout, query,
		warehouse.Name(), warehouse.Address(), warehouse.Email(), string(warehouse.Type()), warehouse.ID(),
	)
	if err != nil {
		tx.Rollback()
		r.logger.Error("Falha ao atualizar armazém no DB.", err)
		return 0, errors.NewDBError("Falha ao atualizar armazém", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return 0, errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Falha ao commitar atualização de armazém.", err)
		return 0, errors.NewDBError("Falha ao atualizar armazém", err)
	}

	r.logger.Info("Armazém atualizado.", map[string]interface{}{"id": warehouse.ID(), "affected": affected})
	return affected, nil
}

// Delete remove um armazém pelo ID. Retorna true se alguma linha foi removida.
func (r *WarehouseRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.logger.Debug("Iniciando Delete no repositório de armazéns.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar armazém do DB.", err)
		return false, errors.NewDBError("Falha ao deletar armazém", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}

	r.logger.Info("Delete de armazém concluído.", map[string]interface{}{"id": id, "deleted": affected > 0})
	return affected > 0, nil
}

// Count devolve o total de armazéns registrados.
func (r *WarehouseRepository) Count(ctx context.Context) (int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(ctxTimeout, `SELECT COUNT(*) FROM warehouses`).Scan(&total); err != nil {
		r.logger.Error("Falha ao contar armazéns no DB.", err)
		return 0, errors.NewDBError("Falha ao contar armazéns", err)
	}
	return total, nil
}

// SearchByNamePattern busca armazéns cujo nome contém o fragmento, com paginação.
func (r *WarehouseRepository) SearchByNamePattern(ctx context.Context, fragment string, pag pagination.Pagination) ([]*domain.Warehouse, error) {
	r.logger.Debug("Iniciando SearchByNamePattern no repositório de armazéns.", map[string]interface{}{"fragment": fragment})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, name, address, email, type, created_at, updated_at
        FROM warehouses
        WHERE name ILIKE '%' || $1 || '%'
        ORDER BY name
        LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctxTimeout, query, fragment, pag.PerPage(), pag.Offset())
	if err != nil {
		r.logger.Error("Falha ao executar busca de armazéns por nome.", err)
		return nil, errors.NewDBError("Falha ao buscar armazéns por nome", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// CountByNamePattern conta os armazéns cujo nome contém o fragmento.
func (r *WarehouseRepository) CountByNamePattern(ctx context.Context, fragment string) (int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	err := r.DB.QueryRowContext(ctxTimeout,
		`SELECT COUNT(*) FROM warehouses WHERE name ILIKE '%' || $1 || '%'`, fragment,
	).Scan(&total)
	if err != nil {
		r.logger.Error("Falha ao contar armazéns por nome no DB.", err)
		return 0, errors.NewDBError("Falha ao contar armazéns por nome", err)
	}
	return total, nil
}

// collect hidrata cada linha do result set em um registro de domínio.
func (r *WarehouseRepository) collect(rows *sql.Rows) ([]*domain.Warehouse, error) {
	var warehouses []*domain.Warehouse
	for rows.Next() {
		var (
			id                          int64
			name, address, email, wType string
			createdAt, updatedAt        time.Time
		)
		if err := rows.Scan(&id, &name, &address, &email, &wType, &createdAt, &updatedAt); err != nil {
			r.logger.Error("Falha ao mapear armazém na iteração do result set.", err)
			return nil, errors.NewDBError("Falha ao mapear armazéns do DB", err)
		}

		warehouse, err := domain.WarehouseFromRow(warehouseRow(id, name, address, email, wType, createdAt, updatedAt))
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, warehouse)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de armazéns.", err)
		return nil, errors.NewDBError("Erro após iteração de armazéns", err)
	}
	return warehouses, nil
}
