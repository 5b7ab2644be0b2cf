package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo adaptador de la configuración única del sistema. Se guarda como
// fila singleton (id fijo 1) con upsert.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// defaultSettings valores de arranque antes del primer guardado.
func defaultSettings() *entity.SystemSettings {
	return &entity.SystemSettings{
		BusinessName:        "Mi Negocio",
		Currency:            "PHP",
		CurrencySymbol:      "₱",
		DefaultReorderPoint: 5,
		LowStockThreshold:   5,
		EnableLowStockAlert: true,
		EnableNegativeStock: false,
	}
}

// Get devuelve la configuración vigente; si nunca se guardó, los defaults.
func (r *SettingsRepo) Get() (*entity.SystemSettings, error) {
	var s entity.SystemSettings
	err := r.q.QueryRow(context.Background(),
		`SELECT business_name, currency, currency_symbol, default_reorder_point, low_stock_threshold,
			enable_low_stock_alert, enable_negative_stock, updated_at
		FROM system_settings WHERE id = 1`).
		Scan(&s.BusinessName, &s.Currency, &s.CurrencySymbol, &s.DefaultReorderPoint,
			&s.LowStockThreshold, &s.EnableLowStockAlert, &s.EnableNegativeStock, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return defaultSettings(), nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Save reemplaza la configuración (upsert de la fila singleton).
func (r *SettingsRepo) Save(s *entity.SystemSettings) error {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now()
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO system_settings (id, business_name, currency, currency_symbol, default_reorder_point,
			low_stock_threshold, enable_low_stock_alert, enable_negative_stock, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			currency = EXCLUDED.currency,
			currency_symbol = EXCLUDED.currency_symbol,
			default_reorder_point = EXCLUDED.default_reorder_point,
			low_stock_threshold = EXCLUDED.low_stock_threshold,
			enable_low_stock_alert = EXCLUDED.enable_low_stock_alert,
			enable_negative_stock = EXCLUDED.enable_negative_stock,
			updated_at = EXCLUDED.updated_at`,
		s.BusinessName, s.Currency, s.CurrencySymbol, s.DefaultReorderPoint,
		s.LowStockThreshold, s.EnableLowStockAlert, s.EnableNegativeStock, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
