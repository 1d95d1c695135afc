package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	VendorID   int64     // ID вендора
	Date       time.Time // Дата для получения слотов (без времени)
	ServiceIDs []int64   // Выбранные услуги; пустой список - режим просмотра
}

// Response модель ответа со списком слотов на день
type Response struct {
	VendorID        int64     // ID вендора
	Date            time.Time // Дата, на которую запрашивались слоты
	DurationMinutes int       // Суммарная длительность выбранных услуг
	Slots           []Slot    // Слоты в порядке возрастания времени начала
}

// Slot модель временного слота
type Slot struct {
	StartTime time.Time // Время начала слота
	EndTime   time.Time // Время окончания (начало + суммарная длительность)
	Available bool      // Свободен ли слот
}
