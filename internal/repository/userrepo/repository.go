package userrepo

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/lib/pq"

	"plumelet/internal/domain"
	"plumelet/internal/errors"
	"plumelet/internal/pkg/logger"
	"plumelet/internal/pkg/pagination"
	"plumelet/internal/validate"
)

// uniqueViolation é o código de erro do PostgreSQL para violação de chave única.
const uniqueViolation = "23505"

// UserRepository implementa o gateway de persistência para usuários.
type UserRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewUserRepository cria e retorna uma nova instância do Repositório de Usuários.
func NewUserRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *UserRepository {
	return &UserRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// userRow monta a linha bruta no shape que o hidratador consome.
func userRow(id int64, name, email string, passwordHash sql.NullString, createdAt, updatedAt time.Time) map[string]any {
	var hashValue any
	if passwordHash.Valid {
		hashValue = passwordHash.String
	}
	return map[string]any{
		"id":            strconv.FormatInt(id, 10),
		"name":          name,
		"email":         email,
		"password_hash": hashValue,
		"created_at":    validate.FormatDateTime(createdAt),
		"updated_at":    validate.FormatDateTime(updatedAt),
	}
}

// Insert insere um novo usuário e devolve o identificador gerado.
// Violações de unicidade do e-mail viram ConflictError.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (string, error) {
	r.logger.Debug("Iniciando Insert no repositório de usuários.", map[string]interface{}{"email": user.Email()})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        INSERT INTO users (name, email, password_hash)
        VALUES ($1, $2, NULLIF($3, ''))
        RETURNING id`

	var id int64
	err := r.DB.QueryRowContext(ctxTimeout, query,
		user.Name(), user.Email(), user.PasswordHash(),
	).Scan(&id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			r.logger.Info("E-mail já cadastrado.", map[string]interface{}{"email": user.Email()})
			return "", errors.NewConflictError(fmt.Sprintf("O e-mail '%s' já está em uso.", user.Email()))
		}
		r.logger.Error("Falha ao inserir usuário no DB.", err)
		return "", errors.NewDBError("Falha ao criar usuário", err)
	}

	newID := strconv.FormatInt(id, 10)
	r.logger.Info("Usuário criado com sucesso.", map[string]interface{}{"id": newID})
	return newID, nil
}

// SelectOne busca um usuário pelo ID.
func (r *UserRepository) SelectOne(ctx context.Context, id string) (*domain.User, error) {
	r.logger.Debug("Iniciando SelectOne no repositório de usuários.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, name, email, password_hash, created_at, updated_at
        FROM users
        WHERE id = $1`

	var (
		dbID                 int64
		name, email          string
		passwordHash         sql.NullString
		createdAt, updatedAt time.Time
	)
	err := r.DB.QueryRowContext(ctxTimeout, query, id).Scan(
		&dbID, &name, &email, &passwordHash, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		r.logger.Info("Usuário não encontrado.", map[string]interface{}{"id": id})
		return nil, errors.NewNotFoundError(fmt.Sprintf("Usuário com ID %s não encontrado.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar usuário no DB.", err)
		return nil, errors.NewDBError("Falha ao buscar usuário", err)
	}

	return domain.UserFromRow(userRow(dbID, name, email, passwordHash, createdAt, updatedAt))
}

// SelectByEmail busca um usuário pelo e-mail normalizado.
func (r *UserRepository) SelectByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.logger.Debug("Iniciando SelectByEmail no repositório de usuários.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, name, email, password_hash, created_at, updated_at
        FROM users
        WHERE email = $1`

	var (
		dbID                 int64
		name, dbEmail        string
		passwordHash         sql.NullString
		createdAt, updatedAt time.Time
	)
	err := r.DB.QueryRowContext(ctxTimeout, query, email).Scan(
		&dbID, &name, &dbEmail, &passwordHash, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("Usuário não encontrado para o e-mail informado.")
	}
	if err != nil {
		r.logger.Error("Falha ao buscar usuário por e-mail no DB.", err)
		return nil, errors.NewDBError("Falha ao buscar usuário por e-mail", err)
	}

	return domain.UserFromRow(userRow(dbID, name, dbEmail, passwordHash, createdAt, updatedAt))
}

// SelectAll busca todos os usuários.
func (r *UserRepository) SelectAll(ctx context.Context) ([]*domain.User, error) {
	r.logger.Debug("Iniciando SelectAll no repositório de usuários.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, name, email, password_hash, created_at, updated_at
        FROM users
        ORDER BY id`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar SelectAll de usuários.", err)
		return nil, errors.NewDBError("Falha ao buscar todos os usuários", err)
	}
	defer rows.Close()

	users, err := r.collect(rows)
	if err != nil {
		return nil, err
	}

	r.logger.Info("SelectAll de usuários concluído.", map[string]interface{}{"total_users": len(users)})
	return users, nil
}

// Update atualiza um usuário existente dentro de uma transação e devolve
// o número de linhas afetadas.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) (int64, error) {
	r.logger.Debug("Iniciando Update no repositório de usuários.", map[string]interface{}{"id": user.ID()})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		r.logger.Error("Falha ao abrir transação para atualizar usuário.", err)
		return 0, errors.NewDBError("Falha ao atualizar usuário", err)
	}

	query := `
        UPDATE users
        SET name = $1,
            email = $2,
            password_hash = NULLIF($3, ''),
            updated_at = now()
        WHERE id = $4`

	result, err := tx.ExecContext(ctxTimeout, query,
		user.Name(), user.Email(), user.PasswordHash(), user.ID(),
	)
	if err != nil {
		tx.Rollback()
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return 0, errors.NewConflictError(fmt.Sprintf("O e-mail '%s' já está em uso.", user.Email()))
		}
		r.logger.Error("Falha ao atualizar usuário no DB.", err)
		return 0, errors.NewDBError("Falha ao atualizar usuário", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return 0, errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Falha ao commitar atualização de usuário.", err)
		return 0, errors.NewDBError("Falha ao atualizar usuário", err)
	}

	r.logger.Info("Usuário atualizado.", map[string]interface{}{"id": user.ID(), "affected": affected})
	return affected, nil
}

// Delete remove um usuário pelo ID. Retorna true se alguma linha foi removida.
func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.logger.Debug("Iniciando Delete no repositório de usuários.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar usuário do DB.", err)
		return false, errors.NewDBError("Falha ao deletar usuário", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}

	r.logger.Info("Delete de usuário concluído.", map[string]interface{}{"id": id, "deleted": affected > 0})
	return affected > 0, nil
}

// Count devolve o total de usuários registrados.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(ctxTimeout, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		r.logger.Error("Falha ao contar usuários no DB.", err)
		return 0, errors.NewDBError("Falha ao contar usuários", err)
	}
	return total, nil
}

// SearchByNamePattern busca usuários cujo nome contém o fragmento, com paginação.
func (r *UserRepository) SearchByNamePattern(ctx context.Context, fragment string, pag pagination.Pagination) ([]*domain.User, error) {
	r.logger.Debug("Iniciando SearchByNamePattern no repositório de usuários.", map[string]interface{}{"fragment": fragment})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, name, email, password_hash, created_at, updated_at
        FROM users
        WHERE name ILIKE '%' || $1 || '%'
        ORDER BY name
        LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctxTimeout, query, fragment, pag.PerPage(), pag.Offset())
	if err != nil {
		r.logger.Error("Falha ao executar busca de usuários por nome.", err)
		return nil, errors.NewDBError("Falha ao buscar usuários por nome", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// CountByNamePattern conta os usuários cujo nome contém o fragmento.
func (r *UserRepository) CountByNamePattern(ctx context.Context, fragment string) (int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	err := r.DB.QueryRowContext(ctxTimeout,
		`SELECT COUNT(*) FROM users WHERE name ILIKE '%' || $1 || '%'`, fragment,
	).Scan(&total)
	if err != nil {
		r.logger.Error("Falha ao contar usuários por nome no DB.", err)
		return 0, errors.NewDBError("Falha ao contar usuários por nome", err)
	}
	return total, nil
}

// collect hidrata cada linha do result set em um registro de domínio.
func (r *UserRepository) collect(rows *sql.Rows) ([]*domain.User, error) {
	var users []*domain.User
	for rows.Next() {
		var (
			id                   int64
			name, email          string
			passwordHash         sql.NullString
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&id, &name, &email, &passwordHash, &createdAt, &updatedAt); err != nil {
			r.logger.Error("Falha ao mapear usuário na iteração do result set.", err)
			return nil, errors.NewDBError("Falha ao mapear usuários do DB", err)
		}

		user, err := domain.UserFromRow(userRow(id, name, email, passwordHash, createdAt, updatedAt))
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de usuários.", err)
		return nil, errors.NewDBError("Erro após iteração de usuários", err)
	}
	return users, nil
}
