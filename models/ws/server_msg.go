package wsmodels

import dbmodels "labourlink-backend/models/db"

type ServerMessage struct {
	ToUserID string `json:"-"`
	ID       string `json:"id"`
	Time     string `json:"time"` // event time
	Code     string `json:"code"` // event code
	Title    string `json:"title"`
	Msg      string `json:"msg"`
}

func NotificationConvert(rec dbmodels.Notification) ServerMessage {
	return ServerMessage{
		ToUserID: rec.ToUserID,
		ID:       rec.ID,
		Time:     rec.CreatedAt.Format("02.01.2006 15:04:05"),
		Code:     string(rec.Code),
		Title:    rec.Title,
		Msg:      rec.Msg,
	}
}
