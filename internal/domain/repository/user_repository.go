package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// UserRepository puerto de usuarios (dato de referencia; la autenticación es externa).
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(u *entity.User) error
	List() ([]*entity.User, error)
}
