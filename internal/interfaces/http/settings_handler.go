package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// SettingsHandler maneja la configuración del sistema y los usuarios (protegido).
type SettingsHandler struct {
	settings *usecase.SettingsUseCase
	users    *usecase.UserUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(settings *usecase.SettingsUseCase, users *usecase.UserUseCase) *SettingsHandler {
	return &SettingsHandler{settings: settings, users: users}
}

// GetSettings devuelve la configuración vigente.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	s, err := h.settings.Get(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(s)
}

// UpdateSettings godoc
// @Summary      Actualizar configuración (solo SUPERADMIN)
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  entity.SystemSettings
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.SettingsRequest
	if resp := parseValidated(c, &in); resp != nil {
		return resp
	}
	s, err := h.settings.Update(c.Context(), GetIdentity(c).Role, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(s)
}

// userView oculta el hash de contraseña en las respuestas.
type userView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	Status      string `json:"status"`
}

// CreateUser registra un usuario nuevo.
func (h *SettingsHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.UserRequest
	if resp := parseValidated(c, &in); resp != nil {
		return resp
	}
	u, err := h.users.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(userView{
		ID: u.ID, Email: u.Email, DisplayName: u.DisplayName, Role: u.Role, Status: u.Status,
	})
}

// UpdateUser edita rol, estado o nombre de un usuario.
func (h *SettingsHandler) UpdateUser(c *fiber.Ctx) error {
	var in dto.UserRequest
	if resp := parseValidated(c, &in); resp != nil {
		return resp
	}
	u, err := h.users.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(userView{
		ID: u.ID, Email: u.Email, DisplayName: u.DisplayName, Role: u.Role, Status: u.Status,
	})
}

// ApproveUser marca un usuario pendiente como aprobado.
func (h *SettingsHandler) ApproveUser(c *fiber.Ctx) error {
	u, err := h.users.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(userView{
		ID: u.ID, Email: u.Email, DisplayName: u.DisplayName, Role: u.Role, Status: u.Status,
	})
}

// RejectUser marca un usuario pendiente como rechazado.
func (h *SettingsHandler) RejectUser(c *fiber.Ctx) error {
	u, err := h.users.Reject(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(userView{
		ID: u.ID, Email: u.Email, DisplayName: u.DisplayName, Role: u.Role, Status: u.Status,
	})
}

// ListUsers devuelve todos los usuarios.
func (h *SettingsHandler) ListUsers(c *fiber.Ctx) error {
	list, err := h.users.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]userView, 0, len(list))
	for _, u := range list {
		out = append(out, userView{
			ID: u.ID, Email: u.Email, DisplayName: u.DisplayName, Role: u.Role, Status: u.Status,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "users": out})
}
