package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// NoPlatformKey balde sintético para transacciones sin plataforma.
const NoPlatformKey = "none"

// BreakdownUseCase arma el reporte por categoría: una fila resumen por SKU con
// stock actual, entradas/salidas totales y la matriz entrada/salida por
// plataforma, agrupadas por la categoría del producto.
type BreakdownUseCase struct {
	skuRepo      repository.SKURepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	sizeRepo     repository.SizeRepository
	colorRepo    repository.ColorRepository
	platformRepo repository.PlatformRepository
	txnRepo      repository.TransactionRepository
}

// NewBreakdownUseCase construye el caso de uso.
func NewBreakdownUseCase(
	skuRepo repository.SKURepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	sizeRepo repository.SizeRepository,
	colorRepo repository.ColorRepository,
	platformRepo repository.PlatformRepository,
	txnRepo repository.TransactionRepository,
) *BreakdownUseCase {
	return &BreakdownUseCase{
		skuRepo:      skuRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		sizeRepo:     sizeRepo,
		colorRepo:    colorRepo,
		platformRepo: platformRepo,
		txnRepo:      txnRepo,
	}
}

// GetCategoryBreakdown pliega las líneas de las transacciones del rango
// [from, to] sobre la celda (sku, plataforma-o-none) según la dirección.
// Los ajustes no entran al reporte; solo IN y OUT.
func (uc *BreakdownUseCase) GetCategoryBreakdown(ctx context.Context, from, to time.Time) ([]dto.CategoryBreakdownDTO, error) {
	txns, err := uc.txnRepo.ListByDateRange(from, to, "")
	if err != nil {
		return nil, fmt.Errorf("breakdown: transacciones: %w", err)
	}
	skus, err := uc.skuRepo.List(false)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(false)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categoryRepo.List(false)
	if err != nil {
		return nil, err
	}
	sizes, err := uc.sizeRepo.List(false)
	if err != nil {
		return nil, err
	}
	colors, err := uc.colorRepo.List(false)
	if err != nil {
		return nil, err
	}
	platforms, err := uc.platformRepo.List(false)
	if err != nil {
		return nil, err
	}

	productByID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}
	categoryName := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryName[c.ID] = c.Name
	}
	sizeName := make(map[string]string, len(sizes))
	for _, s := range sizes {
		sizeName[s.ID] = s.Name
	}
	colorName := make(map[string]string, len(colors))
	for _, c := range colors {
		colorName[c.ID] = c.Name
	}

	// Una fila por SKU, con la matriz por plataforma inicializada en cero
	// (todas las plataformas conocidas más el balde "none").
	rows := make(map[string]*dto.BreakdownRowDTO, len(skus))
	rowCategory := make(map[string]string, len(skus))
	for _, sku := range skus {
		breakdown := make(map[string]dto.PlatformMovementDTO, len(platforms)+1)
		for _, p := range platforms {
			breakdown[p.ID] = dto.PlatformMovementDTO{}
		}
		breakdown[NoPlatformKey] = dto.PlatformMovementDTO{}

		productName := ""
		categoryID := ""
		if p := productByID[sku.ProductID]; p != nil {
			productName = p.Name
			categoryID = p.CategoryID
		}
		rows[sku.ID] = &dto.BreakdownRowDTO{
			SKUID:             sku.ID,
			SKUCode:           sku.SKUCode,
			ProductName:       productName,
			SizeName:          sizeName[sku.SizeID],
			ColorName:         colorName[sku.ColorID],
			CurrentStock:      sku.Stock,
			PlatformBreakdown: breakdown,
		}
		rowCategory[sku.ID] = categoryID
	}

	for _, txn := range txns {
		platformKey := txn.PlatformID
		if platformKey == "" {
			platformKey = NoPlatformKey
		}
		for _, line := range txn.LineItems {
			row, ok := rows[line.SKUID]
			if !ok {
				continue // SKU eliminado del catálogo; el asiento conserva su snapshot
			}
			cell := row.PlatformBreakdown[platformKey]
			switch txn.Direction {
			case entity.DirectionIN:
				row.TotalStockIn += line.Quantity
				cell.StockIn += line.Quantity
			case entity.DirectionOUT:
				row.TotalStockOut += line.Quantity
				cell.StockOut += line.Quantity
			default:
				continue
			}
			row.PlatformBreakdown[platformKey] = cell
		}
	}

	// Agrupar por categoría del producto para presentación.
	groups := make(map[string]*dto.CategoryBreakdownDTO)
	for skuID, row := range rows {
		categoryID := rowCategory[skuID]
		group, ok := groups[categoryID]
		if !ok {
			name := categoryName[categoryID]
			if name == "" {
				name = "Sin categoría"
			}
			group = &dto.CategoryBreakdownDTO{CategoryID: categoryID, CategoryName: name}
			groups[categoryID] = group
		}
		group.Rows = append(group.Rows, *row)
	}

	result := make([]dto.CategoryBreakdownDTO, 0, len(groups))
	for _, g := range groups {
		sort.Slice(g.Rows, func(i, j int) bool { return g.Rows[i].SKUCode < g.Rows[j].SKUCode })
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CategoryName < result[j].CategoryName })
	return result, nil
}
