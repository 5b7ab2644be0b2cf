package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/jwt"
)

// AuthHandler emite tokens para usuarios aprobados (público).
type AuthHandler struct {
	users *usecase.UserUseCase
	cfg   config.JWTConfig
}

// NewAuthHandler construye el handler.
func NewAuthHandler(users *usecase.UserUseCase, cfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{users: users, cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login godoc
// @Summary      Iniciar sesión y obtener token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "email y contraseña"
// @Success      200   {object}  map[string]string
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in loginRequest
	if resp := parseValidated(c, &in); resp != nil {
		return resp
	}
	u, err := h.users.VerifyCredentials(c.Context(), in.Email, in.Password)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "credenciales inválidas o usuario no aprobado"})
	}
	token, err := jwt.Generate(h.cfg.Secret, u.ID, u.DisplayName, u.Email, u.Role, h.cfg.Issuer, h.cfg.Expiration)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user": userView{
			ID: u.ID, Email: u.Email, DisplayName: u.DisplayName, Role: u.Role, Status: u.Status,
		},
	})
}
