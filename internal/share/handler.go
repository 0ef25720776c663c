package share

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/tabsplit/internal/export"
	"github.com/fkhayef/tabsplit/internal/receipt"
	"github.com/fkhayef/tabsplit/pkg/middleware"
	"github.com/fkhayef/tabsplit/pkg/response"
)

// Handler handles HTTP requests for share operations
type Handler struct {
	service *Service
}

// NewHandler creates a new share handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for share endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/receipts/{id}/message", h.Message)
	r.Get("/receipts/{id}/payload", h.Payload)

	return r
}

// Message handles GET /share/receipts/{id}/message
// @Summary      Build a shareable message
// @Description  Render the payment message for a stored receipt, with deep links charging each participant's share
// @Tags         share
// @Produce      json
// @Param        id path string true "Receipt ID"
// @Param        handle query string false "Payment handle override"
// @Success      200 {object} response.APIResponse{data=MessageResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /share/receipts/{id}/message [get]
func (h *Handler) Message(w http.ResponseWriter, r *http.Request) {
	receiptID := chi.URLParam(r, "id")
	handle := r.URL.Query().Get("handle")

	// The message is written from the caller's perspective: their own share
	// is left out of it.
	selfID, _ := middleware.GetParticipantID(r.Context())

	message, err := h.service.BuildMessage(r.Context(), receiptID, selfID, handle)
	if err != nil {
		switch {
		case errors.Is(err, export.ErrMissingPaymentHandle):
			response.BadRequest(w, err.Error())
		case errors.Is(err, receipt.ErrReceiptNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to build message")
		}
		return
	}

	response.JSON(w, http.StatusOK, &MessageResponse{ReceiptID: receiptID, Message: message})
}

// Payload handles GET /share/receipts/{id}/payload
// @Summary      Build the API payload
// @Description  Render the serializable payload for a stored receipt
// @Tags         share
// @Produce      json
// @Param        id path string true "Receipt ID"
// @Success      200 {object} response.APIResponse{data=export.Payload}
// @Failure      404 {object} response.APIResponse
// @Router       /share/receipts/{id}/payload [get]
func (h *Handler) Payload(w http.ResponseWriter, r *http.Request) {
	payload, err := h.service.BuildPayload(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, receipt.ErrReceiptNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to build payload")
		return
	}

	response.JSON(w, http.StatusOK, payload)
}
