package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avvvet/bingo-validator/internal/validatorsvc/service"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	upgrader       websocket.Upgrader
	service        *service.ValidationService
	maxUploadBytes int64
	port           string
}

type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
}

type validateRequest struct {
	Text string `json:"text"`
}

func NewHandler(s *service.ValidationService, maxUploadBytes int64, port string) *Handler {
	return &Handler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		service:        s,
		maxUploadBytes: maxUploadBytes,
		port:           port,
	}
}

func (h *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)
	if err := json.NewEncoder(w).Encode(rsp); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.CreateResponse(w, Response{
		Message: "validator service is running at port " + h.port,
		Code:    http.StatusOK,
	})
}

// ValidateHandler is the JSON variant of the upload form.
func (h *Handler) ValidateHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		code := http.StatusBadRequest
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			code = http.StatusRequestEntityTooLarge
		}
		h.CreateResponse(w, Response{
			Message: "invalid request body",
			Code:    code,
			Error:   err.Error(),
		})
		return
	}

	report, err := h.service.Validate(r.Context(), req.Text)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, service.ErrNoInput) || errors.Is(err, service.ErrNoCards) {
			code = http.StatusUnprocessableEntity
		} else {
			log.Errorf("Error [ValidationService.Validate] %s", err)
		}
		h.CreateResponse(w, Response{
			Message: "validation failed",
			Code:    code,
			Error:   err.Error(),
		})
		return
	}
	report.OriginalText = ""

	h.CreateResponse(w, Response{
		Message: "cards validated",
		Code:    http.StatusOK,
		Data:    report,
	})
}
