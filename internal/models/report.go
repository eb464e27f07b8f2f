package models

import "time"

// Report обращение пользователя (жалоба, исправление данных, предложение)
type Report struct {
	CreatedAt   time.Time `json:"created_at"`
	ID          string    `json:"id"`
	DeviceID    string    `json:"device_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
}

// ReportCategories фиксированный список категорий обращений.
// Любая другая категория передается как "Others: <text>".
var ReportCategories = []string{
	"Problems / Issues",
	"Inquiries / Questions",
	"Feedback / Suggestions",
	"Complaints",
}

// ReportCategoryOthers категория со свободным уточнением
const ReportCategoryOthers = "Others"

// Device зарегистрированное клиентское устройство
type Device struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
}
