package search

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rentix/rentix/internal/apperrors"
	"github.com/rentix/rentix/internal/domain"
	"github.com/rentix/rentix/internal/dto"
	"github.com/rentix/rentix/pkg/utils"
	"github.com/rentix/rentix/pkg/validate"
)

type Service interface {
	List(ctx context.Context) ([]domain.Vehicle, error)
	Search(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error)
	GetByID(ctx context.Context, id int) (*domain.Vehicle, error)
}

var sortOrders = map[string]string{
	domain.SortNewest:      domain.SortNewest,
	domain.SortMileageAsc:  domain.SortMileageAsc,
	domain.SortMileageDesc: domain.SortMileageDesc,
	domain.SortFeeAsc:      domain.SortFeeAsc,
	domain.SortFeeDesc:     domain.SortFeeDesc,
}

type Handler struct {
	service Service

	filterPolicy validate.Policy
}

func New(service Service) *Handler {
	return &Handler{
		service:      service,
		filterPolicy: validate.NewPolicy("nombre", "anyoMin", "precioMax", "kmMin", "orden"),
	}
}

func (h *Handler) Vehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.NewVehicleListResponse(vehicles))
}

func (h *Handler) Filter(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if err := h.filterPolicy.CheckQuery(query); err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	filter, err := parseFilter(query)
	if err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	vehicles, err := h.service.Search(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.NewVehicleListResponse(vehicles))
}

func (h *Handler) Vehicle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	vehicle, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, apperrors.StatusOf(err), err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.NewVehicleResponse(vehicle))
}

func parseFilter(query url.Values) (domain.VehicleFilter, error) {
	var filter domain.VehicleFilter

	filter.NameContains = query.Get("nombre")

	if v := query.Get("anyoMin"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return filter, apperrors.BadRequest("query parameter %q must be a number", "anyoMin")
		}
		filter.MinYear = year
	}
	if v := query.Get("precioMax"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, apperrors.BadRequest("query parameter %q must be a number", "precioMax")
		}
		filter.MaxPrice = price
	}
	if v := query.Get("kmMin"); v != "" {
		km, err := strconv.Atoi(v)
		if err != nil {
			return filter, apperrors.BadRequest("query parameter %q must be a number", "kmMin")
		}
		filter.MinMileage = km
	}
	if v := query.Get("orden"); v != "" {
		order, ok := sortOrders[v]
		if !ok {
			return filter, apperrors.BadRequest("unknown sort order %q", v)
		}
		filter.SortOrder = order
	}
	return filter, nil
}
