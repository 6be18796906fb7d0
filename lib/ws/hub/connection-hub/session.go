package connectionhub

import (
	"context"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type clientSession struct {
	conn *websocket.Conn

	// Outbound messages, buffered.
	sendCh chan any
	ctx    context.Context
	stop   func()
}

func newSession(conn *websocket.Conn) clientSession {
	ctx, cancelFn := context.WithCancel(context.Background())
	sess := clientSession{
		stop:   cancelFn,
		ctx:    ctx,
		conn:   conn,
		sendCh: make(chan any, 16),
	}
	go sess.startSend()
	return sess
}

// push drops the message when the session is already stopped.
func (s clientSession) push(msg any) {
	select {
	case <-s.ctx.Done():
	case s.sendCh <- msg:
	}
}

func (s clientSession) startSend() {
	for {
		select {
		case <-s.ctx.Done():
			s.close()
			return
		case msg := <-s.sendCh:
			_, err := s.send(s.conn, msg)
			if err != nil {
				log.WithError(err).Error("failed to send ws message")
			}
		}
	}
}

func (s clientSession) send(conn *websocket.Conn, msg interface{}) (bool, error) {
	if conn == nil || conn.Conn == nil {
		return false, nil
	}
	err := conn.WriteJSON(msg)
	if err != nil {
		return false, err
	}
	log.Debugf("ws message sent: %+v", msg)
	return true, nil
}

func (s clientSession) close() {
	if s.conn == nil || s.conn.Conn == nil {
		return
	}
	err := s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	if err != nil {
		log.WithError(err).Debug("cant close")
	}
}
