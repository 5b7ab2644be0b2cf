package dto

// SettingsRequest actualización de la configuración del sistema (solo SUPERADMIN).
type SettingsRequest struct {
	BusinessName        string `json:"business_name" validate:"required"`
	Currency            string `json:"currency" validate:"required"`
	CurrencySymbol      string `json:"currency_symbol" validate:"required"`
	DefaultReorderPoint int    `json:"default_reorder_point" validate:"min=0"`
	LowStockThreshold   int    `json:"low_stock_threshold" validate:"min=0"`
	EnableLowStockAlert bool   `json:"enable_low_stock_alerts"`
	EnableNegativeStock bool   `json:"enable_negative_stock"`
}

// UserRequest alta/edición de usuario (dato de referencia; el login es externo).
type UserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name" validate:"required"`
	Password    string `json:"password" validate:"omitempty,min=8"`
	Role        string `json:"role" validate:"required,oneof=SUPERADMIN ADMIN USER"`
	Status      string `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
}
