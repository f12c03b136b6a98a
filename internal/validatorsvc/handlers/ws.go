package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/avvvet/bingo-validator/internal/comm"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// HandleWebSocket upgrades the connection and answers validate-cards
// messages until the client goes away.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("Failed to upgrade to WebSocket: %v", err)
		return
	}

	// the server's read/write timeouts survive the hijack; sessions are long lived
	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Time{})

	socketId := uuid.New().String()
	log.Infof("New WebSocket connection established: %s", socketId)

	go h.handleConnection(conn, socketId)
}

func (h *Handler) handleConnection(conn *websocket.Conn, socketId string) {
	defer func() {
		log.Infof("Closing WebSocket connection: %s", socketId)
		conn.Close()
	}()

	conn.SetReadLimit(h.maxUploadBytes)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Errorf("WebSocket unexpected close error for socket %s: %v", socketId, err)
			} else {
				log.Infof("WebSocket connection closed for socket: %s", socketId)
			}
			return
		}

		message := &comm.WSMessage{}
		if err := json.Unmarshal(raw, message); err != nil {
			log.Errorf("Failed to unmarshal message from socket %s: %v", socketId, err)
			h.sendErrorToClient(conn, "Invalid message format")
			continue
		}

		log.Debugf("Received message from socket %s: type=%s", socketId, message.Type)

		switch message.Type {
		case comm.TypeValidateCards:
			h.handleValidate(conn, socketId, message)
		default:
			log.Warnf("unknown event received: %s", message.Type)
			h.sendErrorToClient(conn, "Unknown message type: "+message.Type)
		}
	}
}

func (h *Handler) handleValidate(conn *websocket.Conn, socketId string, msg *comm.WSMessage) {
	var req comm.ValidateRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		log.Errorf("Error: invalid validate payload from socket %s: %s", socketId, err)
		h.sendErrorToClient(conn, "Invalid validate payload")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report, err := h.service.Validate(ctx, req.Text)
	if err != nil {
		h.sendErrorToClient(conn, err.Error())
		return
	}
	report.OriginalText = ""

	data, err := json.Marshal(report)
	if err != nil {
		log.Errorf("unable to marshal report for socket %s: %s", socketId, err)
		h.sendErrorToClient(conn, "Internal error")
		return
	}

	rsp := comm.WSMessage{Type: comm.TypeValidateResponse, Data: data, SocketId: socketId}
	if err := conn.WriteJSON(rsp); err != nil {
		log.Errorf("Failed to send report to socket %s: %v", socketId, err)
	}
}

// sendErrorToClient sends an error message back to the WebSocket client
func (h *Handler) sendErrorToClient(conn *websocket.Conn, errorMsg string) {
	if err := conn.WriteJSON(comm.WSMessage{Type: comm.TypeError, Error: errorMsg}); err != nil {
		log.Errorf("Failed to send error message to client: %v", err)
	}
}
