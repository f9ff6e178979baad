package dto

// ErrorResponse cuerpo de error HTTP. Details lleva datos adicionales cuando
// aplica (p. ej. stock insuficiente).
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// InsufficientStockDetails datos del rechazo por stock insuficiente.
type InsufficientStockDetails struct {
	ItemID    int64 `json:"itemId"`
	Available int64 `json:"available"`
	Requested int64 `json:"requested"`
}

// NormalizePage aplica valores por defecto y cotas a la paginación page/limit.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
