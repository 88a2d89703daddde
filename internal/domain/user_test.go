package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"plumelet/internal/domain"
	apperror "plumelet/internal/errors"
)

func TestNewUser_ComSenha(t *testing.T) {
	user, err := domain.NewUser(domain.UserInput{
		Name:     "Ana Souza",
		Email:    "  Ana@EXAMPLE.com ",
		Password: "s3cr3t!",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email())
	assert.True(t, user.HasPlainPassword())
	assert.NotEmpty(t, user.PasswordHash())
	assert.NotEqual(t, "s3cr3t!", user.PasswordHash())
}

func TestNewUser_SenhaOpcionalNaConstrucao(t *testing.T) {
	user, err := domain.NewUser(domain.UserInput{
		Name:  "Ana Souza",
		Email: "ana@example.com",
	})

	assert.NoError(t, err)
	assert.False(t, user.HasPlainPassword())
	assert.Empty(t, user.PasswordHash())
}

func TestUser_SetPassword_Vazia(t *testing.T) {
	user, err := domain.NewUser(domain.UserInput{Name: "Ana", Email: "ana@example.com"})
	assert.NoError(t, err)

	err = user.SetPassword("")
	assertFieldError(t, err, "password", apperror.KindEmpty)
}

func TestCheckPassword(t *testing.T) {
	user, err := domain.NewUser(domain.UserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "correto",
	})
	assert.NoError(t, err)

	assert.True(t, domain.CheckPassword("correto", user.PasswordHash()))
	assert.False(t, domain.CheckPassword("errado", user.PasswordHash()))
	assert.False(t, domain.CheckPassword("correto", ""))
}

func TestUserFromRow_HashPreservado(t *testing.T) {
	row := map[string]any{
		"id":            "12",
		"name":          "Ana Souza",
		"email":         "ana@example.com",
		"password_hash": "$2a$10$abcdefghijklmnopqrstuv",
		"created_at":    "2024-03-01 12:30:45",
		"updated_at":    "2024-03-01 12:30:45",
	}

	user, err := domain.UserFromRow(row)

	assert.NoError(t, err)
	assert.Equal(t, "12", user.ID())
	assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", user.PasswordHash())
	assert.False(t, user.HasPlainPassword())
}

func TestUser_ToRow_NuncaExpoeSenhaPura(t *testing.T) {
	user, err := domain.NewUser(domain.UserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "s3cr3t!",
	})
	assert.NoError(t, err)

	row := user.ToRow()
	for _, value := range row {
		assert.NotEqual(t, "s3cr3t!", value)
	}
	assert.Equal(t, user.PasswordHash(), row["password_hash"])
}

func TestUser_WithName(t *testing.T) {
	original, err := domain.UserFromRow(map[string]any{
		"id":            "12",
		"name":          "Ana Souza",
		"email":         "ana@example.com",
		"password_hash": "$2a$10$abcdefghijklmnopqrstuv",
		"created_at":    "2024-03-01 12:30:45",
		"updated_at":    "2024-03-02 08:00:00",
	})
	assert.NoError(t, err)

	derived, err := original.WithName("Ana Lima")
	assert.NoError(t, err)

	assert.Equal(t, "Ana Lima", derived.Name())
	assert.Equal(t, original.ID(), derived.ID())
	assert.Equal(t, original.Email(), derived.Email())
	assert.Equal(t, original.PasswordHash(), derived.PasswordHash())
	assert.False(t, derived.HasPlainPassword())

	// O original não é mutado.
	assert.Equal(t, "Ana Souza", original.Name())
}

func TestUser_MarshalJSON_OmiteHash(t *testing.T) {
	user, err := domain.NewUser(domain.UserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "s3cr3t!",
	})
	assert.NoError(t, err)

	data, err := json.Marshal(user)
	assert.NoError(t, err)

	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), user.PasswordHash())
}
