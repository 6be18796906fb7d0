package notificationhandler

import (
	"labourlink-backend/db"
	notificationstore "labourlink-backend/lib/notification/store"
	apperrors "labourlink-backend/lib/utils/app-errors"
	connectionhub "labourlink-backend/lib/ws/hub/connection-hub"
	"labourlink-backend/models"
	notificationapimodels "labourlink-backend/models/api/notification"
	dbmodels "labourlink-backend/models/db"
	wsmodels "labourlink-backend/models/ws"
	"time"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// SendNotification never fails the caller: errors are logged.
	SendNotification(toUserID string, data models.NotificationData)
	List(userID string) ([]notificationapimodels.NotificationView, error)
	MarkRead(userID, id string) (found bool, err error)
	UnreadCount(userID string) (int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(notificationstore.NewInstance(db.DB), connectionhub.Instance)
}

// NewInstance accepts a nil hub; notifications are then only stored.
func NewInstance(store notificationstore.Provider, hub connectionhub.Provider) Provider {
	return impl{
		store: store,
		hub:   hub,
	}
}

type impl struct {
	store notificationstore.Provider
	hub   connectionhub.Provider
}

func (i impl) getLogger(userID, code string) *log.Entry {
	logger := log.
		WithField("user_id", userID).
		WithField("event_code", code)
	return logger
}

func (i impl) SendNotification(toUserID string, data models.NotificationData) {
	logger := i.getLogger(toUserID, string(data.Code))
	if toUserID == "" {
		logger.Warn("notification without recipient skipped")
		return
	}
	rec := dbmodels.Notification{
		ToUserID: toUserID,
		Code:     data.Code,
		Title:    data.Title,
		Msg:      data.Msg,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to store notification")
		return
	}
	rec.ID = id
	rec.CreatedAt = time.Now()
	if i.hub != nil && i.hub.IsConnected(toUserID) {
		go i.hub.SendMessage(wsmodels.NotificationConvert(rec))
	}
}

func (i impl) List(userID string) ([]notificationapimodels.NotificationView, error) {
	list, err := i.store.List(userID)
	if err != nil {
		return nil, apperrors.Transient(err, "failed to load notifications")
	}
	result := make([]notificationapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, notificationapimodels.NotificationConvert(rec))
	}
	return result, nil
}

func (i impl) MarkRead(userID, id string) (bool, error) {
	found, err := i.store.MarkRead(userID, id)
	if err != nil {
		return false, apperrors.Transient(err, "failed to mark notification as read")
	}
	return found, nil
}

func (i impl) UnreadCount(userID string) (int64, error) {
	count, err := i.store.UnreadCount(userID)
	if err != nil {
		return 0, apperrors.Transient(err, "failed to count unread notifications")
	}
	return count, nil
}
