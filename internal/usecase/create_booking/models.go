package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64     // ID клиента
	VendorID   int64     // ID вендора
	ServiceIDs []int64   // Выбранные услуги (минимум одна)
	StartTime  time.Time // Время начала бронирования
	Notes      *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64     // ID созданного бронирования
	VendorID   int64     // ID вендора
	CustomerID int64     // ID клиента
	StartTime  time.Time // Время начала
	EndTime    time.Time // Время окончания (начало + суммарная длительность)
	Status     string    // Статус бронирования (pending)
	TotalPrice float64   // Суммарная цена на момент бронирования
	Notes      *string   // Заметки

	Services []ServiceSnapshot // Снапшоты выбранных услуг

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// ServiceSnapshot снапшот цены и длительности услуги на момент бронирования
type ServiceSnapshot struct {
	ServiceID       int64
	Name            string
	Price           float64
	DurationMinutes int
}
