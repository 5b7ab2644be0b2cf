package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/pkg/validator"
)

// CatalogHandler maneja productos y SKUs (protegido).
type CatalogHandler struct {
	products *catalog.ProductUseCase
	skus     *catalog.SKUUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(products *catalog.ProductUseCase, skus *catalog.SKUUseCase) *CatalogHandler {
	return &CatalogHandler{products: products, skus: skus}
}

func toSKUDTO(s *entity.SKU) dto.SKUDTO {
	return dto.SKUDTO{
		ID:           s.ID,
		ProductID:    s.ProductID,
		SKUCode:      s.SKUCode,
		SizeID:       s.SizeID,
		ColorID:      s.ColorID,
		Price:        s.Price,
		Cost:         s.Cost,
		Stock:        s.Stock,
		ReorderPoint: s.ReorderPoint,
		Status:       string(domaininv.Classify(s.Stock, s.ReorderPoint)),
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// ── Productos ───────────────────────────────────────────────────────────────

// CreateProduct godoc
// @Summary      Crear producto
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.ProductDTO
// @Router       /api/products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return validationFailed(c, validator.Summary(errs))
	}
	product, err := h.products.Create(c.Context(), GetIdentity(c).ID, catalog.ProductInput{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		ColorID:     in.ColorID,
		SizeID:      in.SizeID,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromProduct(product))
}

// UpdateProduct actualiza un producto.
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return validationFailed(c, validator.Summary(errs))
	}
	product, err := h.products.Update(c.Context(), c.Params("id"), catalog.ProductInput{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		ColorID:     in.ColorID,
		SizeID:      in.SizeID,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromProduct(product))
}

// DeleteProduct elimina un producto sin SKUs asociados.
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.products.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "producto eliminado"})
}

// GetProduct devuelve un producto por id.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.products.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromProduct(product))
}

// ListProducts lista productos; ?active=true filtra activos.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	list, err := h.products.List(c.Context(), c.QueryBool("active"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ProductDTO, 0, len(list))
	for _, p := range list {
		out = append(out, dto.FromProduct(p))
	}
	return c.JSON(fiber.Map{"total": len(out), "products": out})
}

// ── SKUs ────────────────────────────────────────────────────────────────────

// CreateSKU godoc
// @Summary      Crear SKU (con stock inicial)
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.SKUDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/skus [post]
func (h *CatalogHandler) CreateSKU(c *fiber.Ctx) error {
	var in dto.SKURequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return validationFailed(c, validator.Summary(errs))
	}
	sku, err := h.skus.Create(c.Context(), catalog.SKUInput{
		ProductID:    in.ProductID,
		SKUCode:      in.SKUCode,
		SizeID:       in.SizeID,
		ColorID:      in.ColorID,
		Price:        in.Price,
		Cost:         in.Cost,
		InitialStock: in.InitialStock,
		ReorderPoint: in.ReorderPoint,
		IsActive:     in.IsActive,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSKUDTO(sku))
}

// UpdateSKU edita un SKU; stock y costo no cambian por esta vía.
func (h *CatalogHandler) UpdateSKU(c *fiber.Ctx) error {
	var in dto.SKURequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return validationFailed(c, validator.Summary(errs))
	}
	sku, err := h.skus.Update(c.Context(), c.Params("id"), catalog.SKUInput{
		ProductID:    in.ProductID,
		SKUCode:      in.SKUCode,
		SizeID:       in.SizeID,
		ColorID:      in.ColorID,
		Price:        in.Price,
		Cost:         in.Cost,
		ReorderPoint: in.ReorderPoint,
		IsActive:     in.IsActive,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toSKUDTO(sku))
}

// DeleteSKU elimina un SKU del catálogo.
func (h *CatalogHandler) DeleteSKU(c *fiber.Ctx) error {
	if err := h.skus.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "sku eliminado"})
}

// GetSKU devuelve un SKU por id con su estado de stock derivado.
func (h *CatalogHandler) GetSKU(c *fiber.Ctx) error {
	sku, err := h.skus.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toSKUDTO(sku))
}

// ListSKUs lista SKUs; ?active=true filtra, ?product_id= filtra por producto.
func (h *CatalogHandler) ListSKUs(c *fiber.Ctx) error {
	var (
		list []*entity.SKU
		err  error
	)
	if productID := c.Query("product_id"); productID != "" {
		list, err = h.skus.ListByProduct(c.Context(), productID)
	} else {
		list, err = h.skus.List(c.Context(), c.QueryBool("active"))
	}
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SKUDTO, 0, len(list))
	for _, s := range list {
		out = append(out, toSKUDTO(s))
	}
	return c.JSON(fiber.Map{"total": len(out), "skus": out})
}
