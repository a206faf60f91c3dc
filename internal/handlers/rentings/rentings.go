package rentings

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rentix/rentix/internal/apperrors"
	"github.com/rentix/rentix/internal/dto"
	"github.com/rentix/rentix/pkg/auth"
	"github.com/rentix/rentix/pkg/utils"
	"github.com/rentix/rentix/pkg/validate"
)

type Service interface {
	PlaceHold(ctx context.Context, sessionID string, vehicleID, months int, monthlyFee, total float64) error
	CheckHold(ctx context.Context, sessionID string) (bool, error)
	Confirm(ctx context.Context, sessionID string, userID int) error
	CreateDirect(ctx context.Context, userID, vehicleID, months int, monthlyFee, total float64) error
}

type Handler struct {
	service Service

	rentingPolicy validate.Policy
}

func New(service Service) *Handler {
	return &Handler{
		service:       service,
		rentingPolicy: validate.NewPolicy("idVehiculo", "meses", "cuota", "total"),
	}
}

// Pending parks a renting on the anonymous session and reserves the
// vehicle until the hold expires.
func (h *Handler) Pending(w http.ResponseWriter, r *http.Request) {
	sessionID := auth.SessionIDFromContext(r.Context())
	if sessionID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "no session cookie present")
		return
	}

	req, ok := h.decodeRenting(w, r)
	if !ok {
		return
	}

	if err := h.service.PlaceHold(r.Context(), sessionID, req.VehicleID, req.Months, req.MonthlyFee, req.Total); err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "the renting is pending confirmation"})
}

func (h *Handler) CheckPendings(w http.ResponseWriter, r *http.Request) {
	sessionID := auth.SessionIDFromContext(r.Context())

	pending, err := h.service.CheckHold(r.Context(), sessionID)
	if err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CheckPendingsResponse{Pending: pending})
}

// Confirm turns the session's hold into a renting owned by the
// authenticated user.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	sessionID := auth.SessionIDFromContext(r.Context())
	userID := auth.UserIDFromContext(r.Context())

	if err := h.service.Confirm(r.Context(), sessionID, userID); err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "the renting has been confirmed"})
}

// Create rents a vehicle to the authenticated user without a prior hold.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	req, ok := h.decodeRenting(w, r)
	if !ok {
		return
	}

	if err := h.service.CreateDirect(r.Context(), userID, req.VehicleID, req.Months, req.MonthlyFee, req.Total); err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "the renting has been created"})
}

func (h *Handler) decodeRenting(w http.ResponseWriter, r *http.Request) (dto.PendingRentingRequest, bool) {
	var req dto.PendingRentingRequest

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if err := h.rentingPolicy.CheckJSON(body); err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return req, false
	}
	if err := json.Unmarshal(body, &req); err != nil || req.VehicleID <= 0 || req.Months <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	return req, true
}
