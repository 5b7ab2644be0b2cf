package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// UserUseCase administración de usuarios: alta, edición de rol/estado y el
// flujo de aprobación. La autenticación corre por fuera; aquí solo se guarda
// el hash para el emisor de tokens.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// Create registra un usuario nuevo en estado PENDING salvo que el alta la haga
// un SUPERADMIN con otro estado explícito. El correo es único.
func (uc *UserUseCase) Create(ctx context.Context, in dto.UserRequest) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("correo %s ya registrado: %w", email, domain.ErrConflict)
	}
	if in.Password == "" {
		return nil, domain.Validationf("la contraseña es obligatoria al crear un usuario")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  in.DisplayName,
		PasswordHash: string(hash),
		Role:         in.Role,
		Status:       in.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Update edita nombre, rol y estado. La contraseña solo cambia si viene en el
// payload; vacía conserva el hash actual.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UserRequest) (*entity.User, error) {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	u.DisplayName = in.DisplayName
	u.Role = in.Role
	u.Status = in.Status
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash de contraseña: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	u.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Approve marca un usuario pendiente como aprobado.
func (uc *UserUseCase) Approve(ctx context.Context, id string) (*entity.User, error) {
	return uc.setStatus(ctx, id, entity.UserApproved)
}

// Reject marca un usuario pendiente como rechazado.
func (uc *UserUseCase) Reject(ctx context.Context, id string) (*entity.User, error) {
	return uc.setStatus(ctx, id, entity.UserRejected)
}

func (uc *UserUseCase) setStatus(ctx context.Context, id, status string) (*entity.User, error) {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	u.Status = status
	u.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List()
}

// VerifyCredentials valida correo y contraseña contra el hash almacenado y
// exige estado APPROVED. Lo usa el emisor de tokens en /auth/login.
func (uc *UserUseCase) VerifyCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrForbidden
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrForbidden
	}
	if u.Status != entity.UserApproved {
		return nil, fmt.Errorf("usuario %s no aprobado: %w", u.Email, domain.ErrForbidden)
	}
	u.LastLoginAt = time.Now()
	if err := uc.userRepo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}
