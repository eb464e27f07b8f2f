package api

import "time"

// ReportRequest запрос на отправку обращения
type ReportRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// ReportResponse ответ на успешную отправку обращения
type ReportResponse struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
}
