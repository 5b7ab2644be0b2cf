package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

type memUserRepo struct{ users map[string]*entity.User }

var _ repository.UserRepository = (*memUserRepo)(nil)

func (r *memUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *memUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type memSettingsRepo struct{ settings *entity.SystemSettings }

var _ repository.SettingsRepository = (*memSettingsRepo)(nil)

func (r *memSettingsRepo) Get() (*entity.SystemSettings, error) {
	if r.settings == nil {
		return &entity.SystemSettings{}, nil
	}
	return r.settings, nil
}
func (r *memSettingsRepo) Save(s *entity.SystemSettings) error { r.settings = s; return nil }

func validUser() dto.UserRequest {
	return dto.UserRequest{
		Email:       "Ana@Negocio.PH",
		DisplayName: "Ana",
		Password:    "contraseña-larga",
		Role:        entity.RoleAdmin,
		Status:      entity.UserPending,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta y credenciales
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreate_NormalizaCorreoYHashea(t *testing.T) {
	repo := &memUserRepo{users: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(repo)

	u, err := uc.Create(context.Background(), validUser())
	require.NoError(t, err)

	assert.Equal(t, "ana@negocio.ph", u.Email, "el correo se guarda en minúsculas")
	assert.NotEqual(t, "contraseña-larga", u.PasswordHash, "nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("contraseña-larga")))
}

func TestUserCreate_CorreoDuplicado(t *testing.T) {
	repo := &memUserRepo{users: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, validUser())
	require.NoError(t, err)

	dup := validUser()
	dup.Email = "ANA@negocio.ph"
	_, err = uc.Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserCreate_SinContrasena(t *testing.T) {
	uc := usecase.NewUserUseCase(&memUserRepo{users: map[string]*entity.User{}})

	in := validUser()
	in.Password = ""
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVerifyCredentials_FlujoDeAprobacion(t *testing.T) {
	repo := &memUserRepo{users: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, validUser())
	require.NoError(t, err)

	// Pendiente: la contraseña es correcta pero el login se rechaza.
	_, err = uc.VerifyCredentials(ctx, "ana@negocio.ph", "contraseña-larga")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Approve(ctx, created.ID)
	require.NoError(t, err)

	u, err := uc.VerifyCredentials(ctx, "ana@negocio.ph", "contraseña-larga")
	require.NoError(t, err)
	assert.False(t, u.LastLoginAt.IsZero(), "el login exitoso registra la marca de tiempo")

	// Rechazado: vuelve a quedar fuera.
	_, err = uc.Reject(ctx, created.ID)
	require.NoError(t, err)
	_, err = uc.VerifyCredentials(ctx, "ana@negocio.ph", "contraseña-larga")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestVerifyCredentials_ContrasenaIncorrecta(t *testing.T) {
	repo := &memUserRepo{users: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, validUser())
	require.NoError(t, err)
	_, err = uc.Approve(ctx, created.ID)
	require.NoError(t, err)

	_, err = uc.VerifyCredentials(ctx, "ana@negocio.ph", "otra-cosa")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.VerifyCredentials(ctx, "nadie@negocio.ph", "contraseña-larga")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserUpdate_ContrasenaVaciaConservaHash(t *testing.T) {
	repo := &memUserRepo{users: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, validUser())
	require.NoError(t, err)
	originalHash := created.PasswordHash

	in := validUser()
	in.Password = ""
	in.DisplayName = "Ana María"
	updated, err := uc.Update(ctx, created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, "Ana María", updated.DisplayName)
	assert.Equal(t, originalHash, updated.PasswordHash)
}

// ──────────────────────────────────────────────────────────────────────────────
// Configuración del sistema
// ──────────────────────────────────────────────────────────────────────────────

func TestSettingsUpdate_SoloSuperadmin(t *testing.T) {
	repo := &memSettingsRepo{}
	uc := usecase.NewSettingsUseCase(repo, nil)
	ctx := context.Background()
	in := dto.SettingsRequest{
		BusinessName:   "Mi Tienda",
		Currency:       "PHP",
		CurrencySymbol: "₱",
	}

	for _, role := range []string{entity.RoleAdmin, entity.RoleUser, ""} {
		_, err := uc.Update(ctx, role, in)
		assert.ErrorIs(t, err, domain.ErrForbidden, "rol %q no puede editar configuración", role)
	}
	assert.Nil(t, repo.settings, "nada debe persistirse en los intentos rechazados")

	s, err := uc.Update(ctx, entity.RoleSuperadmin, in)
	require.NoError(t, err)
	assert.Equal(t, "Mi Tienda", s.BusinessName)
	assert.NotNil(t, repo.settings)
}
