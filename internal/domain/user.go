package domain

import (
	"encoding/json"
	"time"

	"golang.org/x/crypto/bcrypt"

	apperror "plumelet/internal/errors"
	"plumelet/internal/hydrate"
	"plumelet/internal/validate"
)

const (
	userNameMaxLen = 255

	// UserEmailMaxLen é o tamanho máximo aceito para e-mails de usuário.
	UserEmailMaxLen = 255
)

// userFields é a tabela de descritores consumida pelo hidratador.
var userFields = []hydrate.Field{
	{Name: "id", Type: hydrate.TypeString},
	{Name: "name", Type: hydrate.TypeString, Required: true},
	{Name: "email", Type: hydrate.TypeString, Required: true},
	{Name: "password_hash", Type: hydrate.TypeString},
	{Name: "created_at", Type: hydrate.TypeString},
	{Name: "updated_at", Type: hydrate.TypeString},
}

// User é o registro validado de um usuário.
// A senha em texto puro é transiente: vive apenas no campo plainPassword
// entre o input e o hashing, e nunca é serializada ou persistida.
type User struct {
	id            string
	name          string
	email         string
	plainPassword string
	passwordHash  string
	createdAt     string
	updatedAt     string
}

// UserInput é o payload de entrada para criação/atualização de usuários.
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewUser constrói um registro novo (sem identificador e sem timestamps).
// A senha, quando informada, é validada e convertida em hash bcrypt.
func NewUser(input UserInput) (*User, error) {
	user := &User{}

	if err := user.SetName(input.Name); err != nil {
		return nil, err
	}
	if err := user.SetEmail(input.Email); err != nil {
		return nil, err
	}
	if input.Password != "" {
		if err := user.SetPassword(input.Password); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// UserFromRow hidrata um registro a partir de uma linha bruta do storage.
func UserFromRow(row map[string]any) (*User, error) {
	values, err := hydrate.Hydrate(row, userFields)
	if err != nil {
		return nil, err
	}

	user := &User{}
	if err := user.SetName(hydrate.String(values, "name")); err != nil {
		return nil, err
	}
	if err := user.SetEmail(hydrate.String(values, "email")); err != nil {
		return nil, err
	}
	user.passwordHash = hydrate.String(values, "password_hash")

	if id := hydrate.String(values, "id"); id != "" {
		serial, err := validate.Serial(id)
		if err != nil {
			return nil, fieldErr(err, "id")
		}
		user.id = serial
	}
	user.createdAt = hydrate.String(values, "created_at")
	user.updatedAt = hydrate.String(values, "updated_at")

	return user, nil
}

// ToRow serializa o registro para uma linha bruta. A senha em texto puro
// nunca atravessa esta fronteira: apenas o hash.
func (u *User) ToRow() map[string]any {
	return map[string]any{
		"id":            nullableString(u.id),
		"name":          u.name,
		"email":         u.email,
		"password_hash": u.passwordHash,
		"created_at":    nullableString(u.createdAt),
		"updated_at":    nullableString(u.updatedAt),
	}
}

/* getters */

// ID devolve o identificador (string de dígitos; vazio para registro novo).
func (u *User) ID() string { return u.id }

// Name devolve o nome validado.
func (u *User) Name() string { return u.name }

// Email devolve o e-mail normalizado.
func (u *User) Email() string { return u.email }

// PasswordHash devolve o hash bcrypt armazenado ("" se nunca definido).
func (u *User) PasswordHash() string { return u.passwordHash }

// HasPlainPassword informa se há uma senha transiente ainda não descartada.
func (u *User) HasPlainPassword() bool { return u.plainPassword != "" }

// CreatedAt interpreta o timestamp de criação armazenado.
func (u *User) CreatedAt() (time.Time, error) {
	t, err := validate.DateTime(u.createdAt)
	if err != nil {
		return time.Time{}, fieldErr(err, "created_at")
	}
	return t, nil
}

// UpdatedAt interpreta o timestamp de atualização armazenado.
func (u *User) UpdatedAt() (time.Time, error) {
	t, err := validate.DateTime(u.updatedAt)
	if err != nil {
		return time.Time{}, fieldErr(err, "updated_at")
	}
	return t, nil
}

/* setters */

// SetName valida e define o nome (varchar 255).
func (u *User) SetName(name string) error {
	clean, err := validate.Varchar(name, userNameMaxLen)
	if err != nil {
		return fieldErr(err, "name")
	}
	u.name = clean
	return nil
}

// SetEmail valida, normaliza e define o e-mail.
func (u *User) SetEmail(email string) error {
	clean, err := validate.Email(email, UserEmailMaxLen)
	if err != nil {
		return fieldErr(err, "email")
	}
	u.email = clean
	return nil
}

// SetPassword guarda a senha transiente e deriva o hash bcrypt.
// Hashing unidirecional: o texto puro nunca chega ao storage.
func (u *User) SetPassword(plain string) error {
	if plain == "" {
		return apperror.NewValidationError(apperror.KindEmpty, "A senha não pode ser vazia.").WithField("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	u.plainPassword = plain
	u.passwordHash = string(hash)
	return nil
}

// CheckPassword compara uma senha em texto puro com um hash armazenado.
// Determinística e sem efeitos colaterais.
func CheckPassword(plain, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plain)) == nil
}

// WithName deriva uma cópia com o nome substituído, compartilhando
// identificador, e-mail, hash de senha e timestamps. A senha transiente
// não é propagada. Usado para atualizações seguras sem mutação.
func (u *User) WithName(name string) (*User, error) {
	derived := &User{
		id:           u.id,
		email:        u.email,
		passwordHash: u.passwordHash,
		createdAt:    u.createdAt,
		updatedAt:    u.updatedAt,
	}
	if err := derived.SetName(name); err != nil {
		return nil, err
	}
	return derived, nil
}

// MarshalJSON expõe o registro para a camada de apresentação.
// O hash da senha nunca aparece na resposta.
func (u *User) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		CreatedAt string `json:"created_at,omitempty"`
		UpdatedAt string `json:"updated_at,omitempty"`
	}{
		ID:        u.id,
		Name:      u.name,
		Email:     u.email,
		CreatedAt: u.createdAt,
		UpdatedAt: u.updatedAt,
	})
}
