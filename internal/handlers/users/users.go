package users

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rentix/rentix/internal/apperrors"
	"github.com/rentix/rentix/internal/domain"
	"github.com/rentix/rentix/internal/dto"
	"github.com/rentix/rentix/pkg/auth"
	"github.com/rentix/rentix/pkg/utils"
	"github.com/rentix/rentix/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	FederatedLogin(ctx context.Context, accessToken string) (*domain.User, error)
	GenerateToken(user *domain.User) (string, error)
	Delete(ctx context.Context, userID int) (domain.RentalActivity, error)
	Profile(ctx context.Context, userID int) (*domain.User, *domain.Budget, []domain.RentalItem, error)
	RequestVerification(ctx context.Context, username, email string) error
}

type Handler struct {
	service Service

	registerPolicy   validate.Policy
	loginPolicy      validate.Policy
	oauthPolicy      validate.Policy
	validationPolicy validate.Policy
}

func New(service Service) *Handler {
	return &Handler{
		service:          service,
		registerPolicy:   validate.NewPolicy("nombreUsuario", "correo", "contrasenya"),
		loginPolicy:      validate.NewPolicy("correo", "contrasenya"),
		oauthPolicy:      validate.NewPolicy("accessToken"),
		validationPolicy: validate.NewPolicy("nombreUsuario", "correo"),
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.registerPolicy.CheckJSON(body); err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	var req dto.RegisterRequest
	if err := json.Unmarshal(body, &req); err != nil || req.Username == "" || req.Email == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	h.respondWithToken(w, http.StatusCreated, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.loginPolicy.CheckJSON(body); err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	var req dto.LoginRequest
	if err := json.Unmarshal(body, &req); err != nil || req.Email == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	h.respondWithToken(w, http.StatusOK, user)
}

func (h *Handler) OAuth(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.oauthPolicy.CheckJSON(body); err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	var req dto.OAuthRequest
	if err := json.Unmarshal(body, &req); err != nil || req.AccessToken == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.FederatedLogin(r.Context(), req.AccessToken)
	if err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	h.respondWithToken(w, http.StatusOK, user)
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	user, budget, items, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.NewProfileResponse(user, budget, items))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	activity, err := h.service.Delete(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	message := "the account has been deleted"
	if activity == domain.RentalActivityPast {
		message = "the account has been deactivated"
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}

func (h *Handler) Validation(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validationPolicy.CheckJSON(body); err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	var req dto.ValidationRequest
	if err := json.Unmarshal(body, &req); err != nil || req.Username == "" || req.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.RequestVerification(r.Context(), req.Username, req.Email); err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "a verification code has been sent"})
}

func (h *Handler) respondWithToken(w http.ResponseWriter, status int, user *domain.User) {
	token, err := h.service.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "could not issue a token")
		return
	}
	utils.RespondWithJSON(w, status, dto.TokenResponse{Token: token})
}
