package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// SettingsUseCase lectura y actualización de la configuración única del
// sistema. La escritura está restringida al rol SUPERADMIN.
type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	events       SnapshotNotifier // opcional
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(settingsRepo repository.SettingsRepository, events SnapshotNotifier) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo, events: events}
}

// Get devuelve la configuración vigente.
func (uc *SettingsUseCase) Get(ctx context.Context) (*entity.SystemSettings, error) {
	return uc.settingsRepo.Get()
}

// Update reemplaza la configuración. actorRole debe ser SUPERADMIN; cualquier
// otro rol recibe ErrForbidden aunque el payload sea válido.
func (uc *SettingsUseCase) Update(ctx context.Context, actorRole string, in dto.SettingsRequest) (*entity.SystemSettings, error) {
	if actorRole != entity.RoleSuperadmin {
		return nil, domain.ErrForbidden
	}
	s := &entity.SystemSettings{
		BusinessName:        in.BusinessName,
		Currency:            in.Currency,
		CurrencySymbol:      in.CurrencySymbol,
		DefaultReorderPoint: in.DefaultReorderPoint,
		LowStockThreshold:   in.LowStockThreshold,
		EnableLowStockAlert: in.EnableLowStockAlert,
		EnableNegativeStock: in.EnableNegativeStock,
		UpdatedAt:           time.Now(),
	}
	if err := uc.settingsRepo.Save(s); err != nil {
		return nil, err
	}
	if uc.events != nil {
		uc.events.SnapshotChanged("settings", "updated")
	}
	return s, nil
}
