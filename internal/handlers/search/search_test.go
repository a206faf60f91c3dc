package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/rentix/rentix/internal/apperrors"
	"github.com/rentix/rentix/internal/domain"
)

func NewMock(t *testing.T) (*Handler, *MockService) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	return New(service), service
}

func TestHandler_Vehicles(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Catalogue returned", func(t *testing.T) {
		service.EXPECT().
			List(gomock.Any()).
			Return([]domain.Vehicle{{ID: 1, Name: "Seat Ibiza", Year: 2020, Price: 300}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/search/vehiculos", nil)
		w := httptest.NewRecorder()

		handler.Vehicles(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"nombre":"Seat Ibiza"`)
		assert.Contains(t, w.Body.String(), `"anyo":2020`)
	})

	t.Run("Empty catalogue answers 404", func(t *testing.T) {
		service.EXPECT().
			List(gomock.Any()).
			Return(nil, apperrors.NotFound("there are no vehicles available"))

		req := httptest.NewRequest(http.MethodGet, "/search/vehiculos", nil)
		w := httptest.NewRecorder()

		handler.Vehicles(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"error":true`)
	})
}

func TestHandler_Filter(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Filter forwarded to the service", func(t *testing.T) {
		service.EXPECT().
			Search(gomock.Any(), domain.VehicleFilter{
				NameContains: "ibiza",
				MinYear:      2018,
				MaxPrice:     400,
				SortOrder:    domain.SortFeeAsc,
			}).
			Return([]domain.Vehicle{{ID: 1, Name: "Seat Ibiza"}}, nil)

		req := httptest.NewRequest(http.MethodGet,
			"/search/vehiculos/filter?nombre=ibiza&anyoMin=2018&precioMax=400&orden=fee-asc", nil)
		w := httptest.NewRecorder()

		handler.Filter(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown query parameter rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/search/vehiculos/filter?color=rojo", nil)
		w := httptest.NewRecorder()

		handler.Filter(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Non-numeric bound rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/search/vehiculos/filter?anyoMin=dosmil", nil)
		w := httptest.NewRecorder()

		handler.Filter(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown sort order rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/search/vehiculos/filter?orden=alfabetico", nil)
		w := httptest.NewRecorder()

		handler.Filter(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("No matches answers 404", func(t *testing.T) {
		service.EXPECT().
			Search(gomock.Any(), domain.VehicleFilter{NameContains: "inexistente"}).
			Return(nil, apperrors.NotFound("no vehicles matched the requested filters"))

		req := httptest.NewRequest(http.MethodGet, "/search/vehiculos/filter?nombre=inexistente", nil)
		w := httptest.NewRecorder()

		handler.Filter(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Vehicle(t *testing.T) {
	handler, service := NewMock(t)

	newRequest := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/search/vehiculo/"+id, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	t.Run("Vehicle returned", func(t *testing.T) {
		service.EXPECT().
			GetByID(gomock.Any(), 3).
			Return(&domain.Vehicle{ID: 3, Name: "Seat Ibiza", Horsepower: 110, FuelType: "gasolina"}, nil)

		w := httptest.NewRecorder()
		handler.Vehicle(w, newRequest("3"))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"cv":110`)
		assert.Contains(t, w.Body.String(), `"combustible":"gasolina"`)
	})

	t.Run("Invalid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Vehicle(w, newRequest("tres"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown vehicle", func(t *testing.T) {
		service.EXPECT().
			GetByID(gomock.Any(), 99).
			Return(nil, apperrors.NotFound("could not find the requested vehicle"))

		w := httptest.NewRecorder()
		handler.Vehicle(w, newRequest("99"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
