// Package reports contiene la capa de agregación: cómputos derivados de solo
// lectura sobre catálogo y libro de transacciones. Nada aquí muta estado.
package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

const lowStockAlertLimit = 10 // tope del widget de alertas

// Etiquetas de día de semana para la serie semanal.
var weekdayLabels = [...]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// DashboardUseCase arma el consolidado del tablero y las alertas de stock bajo.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	skuRepo      repository.SKURepository
	txnRepo      repository.TransactionRepository
	settingsRepo repository.SettingsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	skuRepo repository.SKURepository,
	txnRepo repository.TransactionRepository,
	settingsRepo repository.SettingsRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:  productRepo,
		skuRepo:      skuRepo,
		txnRepo:      txnRepo,
		settingsRepo: settingsRepo,
	}
}

// GetStats calcula el consolidado: conteos activos, unidades en mano, valor al
// costo, conteos de stock bajo/agotado, ingreso de hoy y serie de 7 días
// (ventana móvil que incluye hoy, etiquetada por día de semana).
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := time.Now()
	todayStart := startOfDay(now)
	todayEnd := endOfDay(now)
	weekStart := startOfDay(now.AddDate(0, 0, -6))

	// Catálogo y libro en paralelo, al estilo de las consultas del tablero.
	type catalogResult struct {
		products []*entity.Product
		skus     []*entity.SKU
		err      error
	}
	type ledgerResult struct {
		txns []*entity.InventoryTransaction
		err  error
	}
	catalogCh := make(chan catalogResult, 1)
	weekCh := make(chan ledgerResult, 1)

	go func() {
		products, err := uc.productRepo.List(true)
		if err != nil {
			catalogCh <- catalogResult{err: err}
			return
		}
		skus, err := uc.skuRepo.List(true)
		catalogCh <- catalogResult{products: products, skus: skus, err: err}
	}()
	go func() {
		txns, err := uc.txnRepo.ListByDateRange(weekStart, todayEnd, entity.DirectionOUT)
		weekCh <- ledgerResult{txns: txns, err: err}
	}()

	catalog := <-catalogCh
	week := <-weekCh
	if catalog.err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", catalog.err)
	}
	if week.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de la semana: %w", week.err)
	}

	stats := &dto.DashboardStatsDTO{
		TotalProducts: len(catalog.products),
		TotalSKUs:     len(catalog.skus),
		TotalValue:    decimal.Zero,
		TodayRevenue:  decimal.Zero,
	}
	for _, sku := range catalog.skus {
		stats.TotalOnHand += sku.Stock
		stats.TotalValue = stats.TotalValue.Add(decimal.NewFromInt(int64(sku.Stock)).Mul(sku.Cost))
		switch domaininv.Classify(sku.Stock, sku.ReorderPoint) {
		case domaininv.StatusLowStock:
			stats.LowStockCount++
		case domaininv.StatusOutOfStock, domaininv.StatusCritical:
			stats.OutOfStockCount++
		}
	}

	// Serie semanal: un balde por día, en orden cronológico terminando hoy.
	series := make([]dto.SalesPointDTO, 7)
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i-6)
		label := weekdayLabels[day.Weekday()]
		series[i] = dto.SalesPointDTO{Label: label, Revenue: decimal.Zero}
		index[day.Format("2006-01-02")] = i
	}
	for _, txn := range week.txns {
		if i, ok := index[txn.TransactionDate.Format("2006-01-02")]; ok {
			series[i].Revenue = series[i].Revenue.Add(txn.TotalAmount)
			series[i].Count++
		}
		if !txn.TransactionDate.Before(todayStart) && !txn.TransactionDate.After(todayEnd) {
			stats.TodayRevenue = stats.TodayRevenue.Add(txn.TotalAmount)
			stats.TodayTransactions++
		}
	}
	stats.WeeklySales = series

	return stats, nil
}

// GetLowStockAlerts devuelve los SKUs activos en o bajo su punto de reorden,
// ascendente por stock, limitado a los 10 peores. Si las alertas están
// deshabilitadas en la configuración devuelve lista vacía.
func (uc *DashboardUseCase) GetLowStockAlerts(ctx context.Context) ([]dto.LowStockAlertDTO, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if !settings.EnableLowStockAlert {
		return []dto.LowStockAlertDTO{}, nil
	}

	skus, err := uc.skuRepo.List(true)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(false)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	alerts := make([]dto.LowStockAlertDTO, 0)
	for _, sku := range skus {
		if sku.Stock > sku.ReorderPoint {
			continue
		}
		alerts = append(alerts, dto.LowStockAlertDTO{
			SKUID:        sku.ID,
			SKUCode:      sku.SKUCode,
			ProductName:  names[sku.ProductID],
			Stock:        sku.Stock,
			ReorderPoint: sku.ReorderPoint,
			Status:       string(domaininv.Classify(sku.Stock, sku.ReorderPoint)),
		})
	}
	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].Stock != alerts[j].Stock {
			return alerts[i].Stock < alerts[j].Stock
		}
		return alerts[i].SKUCode < alerts[j].SKUCode
	})
	if len(alerts) > lowStockAlertLimit {
		alerts = alerts[:lowStockAlertLimit]
	}
	return alerts, nil
}

// Recent devuelve las últimas n transacciones para el widget de actividad.
func (uc *DashboardUseCase) Recent(ctx context.Context, n int) ([]dto.TransactionDTO, error) {
	txns, err := uc.txnRepo.ListRecent(n)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionDTO, 0, len(txns))
	for _, t := range txns {
		out = append(out, dto.FromTransaction(t))
	}
	return out, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Nanosecond)
}
