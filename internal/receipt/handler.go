package receipt

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/tabsplit/internal/group"
	"github.com/fkhayef/tabsplit/internal/split"
	"github.com/fkhayef/tabsplit/pkg/response"
)

// Handler handles HTTP requests for receipt operations
type Handler struct {
	service *Service
}

// NewHandler creates a new receipt handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for receipt endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/split", h.Split)
	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Delete("/{id}", h.Delete)

	// Group-based listing
	r.Get("/group/{groupId}", h.ListByGroup)

	return r
}

// Split handles POST /receipts/split
// @Summary      Compute a split
// @Description  Split a receipt across a roster without persisting anything
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        request body SplitRequest true "Receipt and roster"
// @Success      200 {object} response.APIResponse{data=SplitResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /receipts/split [post]
func (h *Handler) Split(w http.ResponseWriter, r *http.Request) {
	var req SplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	results, err := h.service.Split(r.Context(), &req)
	if err != nil {
		writeSplitError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, &SplitResponse{Results: results})
}

// Create handles POST /receipts
// @Summary      Split and store a receipt
// @Description  Compute per-person shares against the group roster and persist receipt, items and splits
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        request body CreateReceiptRequest true "Receipt creation request"
// @Success      201 {object} response.APIResponse{data=ReceiptResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /receipts [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.GroupID == "" {
		response.BadRequest(w, "group_id is required")
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		writeSplitError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, result.ToFullResponse())
}

// GetByID handles GET /receipts/{id}
// @Summary      Get receipt by ID
// @Description  Get a stored receipt with its items and per-person splits
// @Tags         receipts
// @Produce      json
// @Param        id path string true "Receipt ID"
// @Success      200 {object} response.APIResponse{data=ReceiptResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /receipts/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrReceiptNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get receipt")
		return
	}

	response.JSON(w, http.StatusOK, result.ToFullResponse())
}

// ListByGroup handles GET /receipts/group/{groupId}
// @Summary      List receipts by group
// @Description  Get a paginated list of receipts for a group
// @Tags         receipts
// @Produce      json
// @Param        groupId path string true "Group ID"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]ReceiptResponse}
// @Router       /receipts/group/{groupId} [get]
func (h *Handler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	page, perPage = clampPagination(page, perPage)

	receipts, total, err := h.service.ListByGroupID(r.Context(), chi.URLParam(r, "groupId"), page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list receipts")
		return
	}

	responses := make([]*ReceiptResponse, len(receipts))
	for i, receipt := range receipts {
		responses[i] = receipt.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	response.JSONWithMeta(w, http.StatusOK, responses, &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	})
}

// Delete handles DELETE /receipts/{id}
// @Summary      Delete a receipt
// @Tags         receipts
// @Param        id path string true "Receipt ID"
// @Success      204 "No Content"
// @Failure      404 {object} response.APIResponse
// @Router       /receipts/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrReceiptNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete receipt")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeSplitError maps engine errors to HTTP responses. Malformed input is the
// caller's 400; a stale participant reference is a 422 the client must
// reconcile before retrying.
func writeSplitError(w http.ResponseWriter, err error) {
	var validationErr *split.ValidationError
	var unknownErr *split.UnknownParticipantError

	switch {
	case errors.Is(err, ErrRosterRequired):
		response.BadRequest(w, err.Error())
	case errors.As(err, &validationErr):
		response.BadRequest(w, validationErr.Error())
	case errors.As(err, &unknownErr):
		response.UnprocessableEntity(w, unknownErr.Error())
	default:
		response.InternalError(w, "Failed to compute split")
	}
}
