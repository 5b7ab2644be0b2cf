package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// SettingsRepository puerto de la configuración única del sistema.
type SettingsRepository interface {
	// Get devuelve la configuración vigente; si nunca se guardó, los valores
	// por defecto del negocio.
	Get() (*entity.SystemSettings, error)
	Save(s *entity.SystemSettings) error
}
