package catalogservice

// Service модель услуги из CatalogService
type Service struct {
	ID              int64   `json:"id"`
	VendorID        int64   `json:"vendor_id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	IsVisible       bool    `json:"is_visible"`
}

// servicesResponse ответ CatalogService со списком услуг
type servicesResponse struct {
	Services []*Service `json:"services"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
