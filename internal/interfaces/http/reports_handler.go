package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/audit"
	"github.com/jhoicas/Almacen-api/internal/application/reports"
)

// ReportsHandler maneja tablero, alertas y reportes por categoría (protegido).
type ReportsHandler struct {
	dashboard *reports.DashboardUseCase
	breakdown *reports.BreakdownUseCase
	auditor   *audit.Auditor
}

// NewReportsHandler construye el handler.
func NewReportsHandler(dashboard *reports.DashboardUseCase, breakdown *reports.BreakdownUseCase, auditor *audit.Auditor) *ReportsHandler {
	return &ReportsHandler{dashboard: dashboard, breakdown: breakdown, auditor: auditor}
}

// GetDashboardStats godoc
// @Summary      Consolidado del tablero
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/reports/dashboard [get]
func (h *ReportsHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.dashboard.GetStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// GetLowStockAlerts devuelve los SKUs en o bajo su punto de reorden.
func (h *ReportsHandler) GetLowStockAlerts(c *fiber.Ctx) error {
	alerts, err := h.dashboard.GetLowStockAlerts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(alerts), "alerts": alerts})
}

// GetRecentTransactions devuelve las últimas transacciones para el widget de actividad.
func (h *ReportsHandler) GetRecentTransactions(c *fiber.Ctx) error {
	n := c.QueryInt("limit", 10)
	if n <= 0 || n > 100 {
		n = 10
	}
	list, err := h.dashboard.Recent(c.Context(), n)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "transactions": list})
}

// GetCategoryBreakdown godoc
// @Summary      Reporte de movimientos por categoría y plataforma
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "yyyy-mm-dd"
// @Param        to    query  string  true  "yyyy-mm-dd"
// @Success      200   {array}  dto.CategoryBreakdownDTO
// @Router       /api/reports/category-breakdown [get]
func (h *ReportsHandler) GetCategoryBreakdown(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return validationFailed(c, err.Error())
	}
	groups, err := h.breakdown.GetCategoryBreakdown(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(groups), "categories": groups})
}

// GetAuditLog devuelve las últimas entradas de bitácora.
func (h *ReportsHandler) GetAuditLog(c *fiber.Ctx) error {
	n := c.QueryInt("limit", 50)
	if n <= 0 || n > 500 {
		n = 50
	}
	list, err := h.auditor.Recent(n)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "entries": list})
}
