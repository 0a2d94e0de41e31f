package contact

import (
	"encoding/json"
	"log"
	"net/http"
)

// maxBodyBytes bounds the inquiry payload.
const maxBodyBytes = 64 << 10

type submitResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler is the contact feature handler
type Handler struct {
	Service *Service
	logger  *log.Logger
}

// NewHandler creates a new contact handler. A nil logger uses the standard logger.
func NewHandler(service *Service, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		Service: service,
		logger:  logger,
	}
}

// HandleSubmit relays a JSON inquiry to the team chat
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req Inquiry
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.writeError(w, Wrap(KindInternal, "decode inquiry", err))
		return
	}

	if err := h.Service.Submit(r.Context(), req); err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{Success: true})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch KindOf(err) {
	case KindValidation:
		// Caller mistake; nothing to log.
	case KindDelivery:
		h.logger.Printf("Slack webhook error: %v", err)
	default:
		h.logger.Printf("Contact API error: %v", err)
	}
	writeJSON(w, HTTPStatus(err), errorResponse{Error: PublicMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
