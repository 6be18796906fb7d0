package notificationapimodels

import (
	dbmodels "labourlink-backend/models/db"
	"time"
)

type NotificationView struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:        rec.ID,
		Code:      string(rec.Code),
		Title:     rec.Title,
		Message:   rec.Msg,
		IsRead:    rec.IsRead,
		CreatedAt: rec.CreatedAt,
	}
}

type UnreadCount struct {
	Count int64 `json:"count"`
}
