package wsmodels

const (
	ClientActionRead = "read"
)

// ClientMessage is sent by the app over the socket.
type ClientMessage struct {
	Action         string `json:"action"`
	NotificationID string `json:"notification_id"`
}
