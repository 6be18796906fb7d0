package connectionhub

import (
	"labourlink-backend/db"
	notificationstore "labourlink-backend/lib/notification/store"
	wsmodels "labourlink-backend/models/ws"
	"sync"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	SendMessage(msg wsmodels.ServerMessage)
	SendClose(userID string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
		store:   notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[userID]
	store   notificationstore.Provider
}

func (i *impl) DeleteClient(userID string) {
	i.mu.Lock()
	sess, ok := i.clients[userID]
	if ok {
		delete(i.clients, userID)
	}
	i.mu.Unlock()
	if !ok {
		return
	}
	sess.stop()
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	oldSess, ok := i.clients[userID]
	i.clients[userID] = newSession(conn)
	i.mu.Unlock()
	if ok {
		oldSess.stop()
	}
	go i.sendUnread(userID)
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.RLock()
	sess, ok := i.clients[msg.ToUserID]
	i.mu.RUnlock()
	if ok {
		sess.push(msg)
	}
}

func (i *impl) SendClose(userID string) {
	i.mu.RLock()
	sess, ok := i.clients[userID]
	i.mu.RUnlock()
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	sess, ok := i.clients[userID]
	i.mu.RUnlock()
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

// sendUnread replays unread notifications to a freshly connected client.
func (i *impl) sendUnread(userID string) {
	logger := log.WithField("user_id", userID)
	list, err := i.store.List(userID)
	if err != nil {
		logger.WithError(err).Error("failed to load unread notifications")
		return
	}
	for k := len(list) - 1; k >= 0; k-- {
		item := list[k]
		if item.IsRead || !i.IsConnected(userID) {
			continue
		}
		i.SendMessage(wsmodels.NotificationConvert(item))
	}
}
