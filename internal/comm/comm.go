package comm

import (
	"encoding/json"
	"time"
)

// message types carried in WSMessage.Type
const (
	TypeValidateCards    = "validate-cards"
	TypeValidateResponse = "validate-cards-response"
	TypeValidateError    = "validate-cards-error"
	TypeError            = "error"
)

type WSMessage struct {
	Type     string          `json:"type"` // e.g. "validate-cards"
	Data     json.RawMessage `json:"data,omitempty"`
	SocketId string          `json:"socketid,omitempty"`
	Error    string          `json:"error,omitempty"`
}

type ValidateRequest struct {
	RequestId string `json:"request_id,omitempty"`
	Text      string `json:"text"`
}

type ValidateError struct {
	RequestId string `json:"request_id,omitempty"`
	Error     string `json:"error"`
}

type ServiceHeartbeat struct {
	ID        string    `json:"id"` // service id
	Timestamp time.Time `json:"timestamp"`
}
