package wsclient

import (
	"encoding/json"
	wsmodels "labourlink-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

// ReadMarker marks a notification as read for the connected user.
type ReadMarker interface {
	MarkRead(userID, id string) (bool, error)
}

func NewClient(userID string, c *websocket.Conn, marker ReadMarker) *WsClient {
	return &WsClient{
		conn:   c,
		userID: userID,
		marker: marker,
	}
}

type WsClient struct {
	conn   *websocket.Conn
	userID string
	marker ReadMarker
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

func (c *WsClient) Dispatch() {
	for {
		if c.conn == nil {
			return
		}
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				log.WithError(err).WithField("user_id", c.userID).Error("failed to read ws message")
			}
			break
		}
		c.handle(data)
	}
}

func (c *WsClient) handle(data []byte) {
	logger := log.WithField("user_id", c.userID)
	var msg wsmodels.ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		logger.WithError(err).Debug("ignoring malformed ws message")
		return
	}
	switch msg.Action {
	case wsmodels.ClientActionRead:
		if c.marker == nil || msg.NotificationID == "" {
			return
		}
		if _, err := c.marker.MarkRead(c.userID, msg.NotificationID); err != nil {
			logger.WithError(err).Warn("failed to mark notification as read over ws")
		}
	default:
		logger.WithField("action", msg.Action).Debug("unknown ws action")
	}
}
