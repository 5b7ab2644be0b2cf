package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/pkg/validator"
)

// ReferenceHandler maneja los datos de referencia (protegido). Seis recursos
// con el mismo contrato: crear, editar, listar.
type ReferenceHandler struct {
	uc *usecase.ReferenceUseCase
}

// NewReferenceHandler construye el handler.
func NewReferenceHandler(uc *usecase.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

// parseValidated parsea y valida el body en dst; devuelve una respuesta de
// error ya escrita o nil si todo está bien.
func parseValidated(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return invalidBody(c)
	}
	if errs := validator.ValidateStruct(dst); errs != nil {
		return validationFailed(c, validator.Summary(errs))
	}
	return nil
}

// Categorías

func (h *ReferenceHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if resp := parseValidated(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.CreateCategory(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ReferenceHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if resp := parseValidated(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.UpdateCategory(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ReferenceHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.Context(), c.QueryBool("active"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(out), "categories": out})
}

// Colores

func (h *ReferenceHandler) CreateColor(c *fiber.Ctx) error {
	var in dto.ColorRequest
	if resp := parseValidated(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.CreateColor(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ReferenceHandler) UpdateColor(c *fiber.Ctx) error {
	var in dto.ColorRequest
	if resp := parseValidated(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.UpdateColor(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ReferenceHandler) ListColors(c *fiber.Ctx) error {
	out, err := h.uc.ListColors(c.Context(), c.QueryBool("active"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(out), "colors": out})
}

// Tallas

func (h *ReferenceHandler) CreateSize(c *fiber.Ctx) error {
	var in dto.SizeRequest
	if resp := parseValidated(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.CreateSize(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ReferenceHandler) UpdateSize(c *fiber.Ctx) error {
	var in dto.SizeRequest
	if resp := parseValidated(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.UpdateSize(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ReferenceHandler) ListSizes(c *fiber.Ctx) error {
	out, err := h.uc.ListSizes(c.Context(), c.QueryBool("active"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(out), "sizes": out})
}

// Proveedores

func (h *ReferenceHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if resp := parseValidated(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.CreateSupplier(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ReferenceHandler) UpdateSupplier(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if resp := parseValidated(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.UpdateSupplier(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ReferenceHandler) ListSuppliers(c *fiber.Ctx) error {
	out, err := h.uc.ListSuppliers(c.Context(), c.QueryBool("active"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(out), "suppliers": out})
}

// Plataformas

func (h *ReferenceHandler) CreatePlatform(c *fiber.Ctx) error {
	var in dto.PlatformRequest
	if resp := parseValidated(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.CreatePlatform(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ReferenceHandler) UpdatePlatform(c *fiber.Ctx) error {
	var in dto.PlatformRequest
	if resp := parseValidated(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.UpdatePlatform(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ReferenceHandler) ListPlatforms(c *fiber.Ctx) error {
	out, err := h.uc.ListPlatforms(c.Context(), c.QueryBool("active"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(out), "platforms": out})
}

// Razones

func (h *ReferenceHandler) CreateReason(c *fiber.Ctx) error {
	var in dto.ReasonCategoryRequest
	if resp := parseValidated(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.CreateReason(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ReferenceHandler) UpdateReason(c *fiber.Ctx) error {
	var in dto.ReasonCategoryRequest
	if resp := parseValidated(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.UpdateReason(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListReasons lista razones; ?direction=IN|OUT filtra activas de esa dirección.
func (h *ReferenceHandler) ListReasons(c *fiber.Ctx) error {
	out, err := h.uc.ListReasons(c.Context(), c.Query("direction"), c.QueryBool("active"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(out), "reasons": out})
}
