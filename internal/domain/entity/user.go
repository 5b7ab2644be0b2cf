package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperadmin = "SUPERADMIN"
	RoleAdmin      = "ADMIN"
	RoleUser       = "USER"
)

// Estados de aprobación de un usuario.
const (
	UserPending  = "PENDING"
	UserApproved = "APPROVED"
	UserRejected = "REJECTED"
)

// User registro de usuario del sistema. La autenticación es externa (el token
// llega ya emitido); aquí solo se administra rol y estado como dato de referencia.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  time.Time
}
