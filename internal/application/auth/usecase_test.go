package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/pkg/jwt"
)

type memUsers struct{ byEmail map[string]*entity.User }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.byEmail[u.Email] = u
	return nil
}
func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return m.byEmail[email], nil
}
func (m *memUsers) GetByEmailAndCompany(_ context.Context, email, companyID string) (*entity.User, error) {
	if u := m.byEmail[email]; u != nil && u.CompanyID == companyID {
		return u, nil
	}
	return nil, nil
}

type memCompanies struct{}

func (memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if id == "c1" {
		return &entity.Company{ID: "c1", Name: "Comercial Ávila", RIF: "J-12345678-4"}, nil
	}
	return nil, nil
}

func newAuth() (*AuthUseCase, *memUsers) {
	users := &memUsers{byEmail: map[string]*entity.User{}}
	return NewAuthUseCase(users, memCompanies{}, JWTConfig{Secret: "test-secret", ExpMinutes: 5, Issuer: "backoffice"}), users
}

func TestRegisterYLogin(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()

	u, err := uc.RegisterUser(ctx, "c1", dto.RegisterRequest{Email: " Ana@Example.com ", Password: "secreta123", Role: entity.RoleContador})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Equal(t, entity.RoleContador, u.Role)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)
	claims, err := jwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "c1", claims.CompanyID)
	assert.Equal(t, entity.RoleContador, claims.Role)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRegister_Validaciones(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, "c1", dto.RegisterRequest{Email: "x@example.com", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.RegisterUser(ctx, "c1", dto.RegisterRequest{Email: "x@example.com", Password: "secreta123", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.RegisterUser(ctx, "c9", dto.RegisterRequest{Email: "x@example.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.RegisterUser(ctx, "c1", dto.RegisterRequest{Email: "x@example.com", Password: "secreta123"})
	require.NoError(t, err)
	_, err = uc.RegisterUser(ctx, "c1", dto.RegisterRequest{Email: "X@example.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, users := newAuth()
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, "c1", dto.RegisterRequest{Email: "caja@example.com", Password: "secreta123", Role: entity.RoleCajero})
	require.NoError(t, err)
	users.byEmail["caja@example.com"].Status = "inactive"

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "caja@example.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
