package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cabanas/internal/reservations/service"
	apperrors "cabanas/pkg/errors"
	"cabanas/pkg/logger"
	"cabanas/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockReservationService struct {
	createResult *service.CreateResult
	createErr    error
	listResult   []model.Reservation
	listErr      error
	listUserID   string
}

func (m *mockReservationService) Create(ctx context.Context, reservation *model.Reservation) (*service.CreateResult, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.createResult, nil
}

func (m *mockReservationService) List(ctx context.Context, userID string) ([]model.Reservation, error) {
	m.listUserID = userID
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listResult, nil
}

func newRouter(svc service.ReservationService) *httprouter.Router {
	log := logger.New(logger.Config{Level: "error", Format: logger.TEXT, Service: "test"})
	router := httprouter.New()
	NewReservationHandler(svc, log).RegisterRoutes(router)
	return router
}

func createBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"cabin_id": "cabana-del-lago",
		"user_id":  "user-42",
		"guest": map[string]string{
			"name":  "Juan Pérez",
			"email": "juan@example.com",
		},
		"check_in":   "2026-09-10",
		"check_out":  "2026-09-15",
		"party_size": 3,
	})
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	return bytes.NewBuffer(body)
}

func TestCreateReturns201WithReservation(t *testing.T) {
	svc := &mockReservationService{
		createResult: &service.CreateResult{
			Reservation: &model.Reservation{
				ID:      "R_abc",
				CabinID: "cabana-del-lago",
				Status:  model.StatusConfirmed,
			},
			EmailSent: true,
		},
	}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", createBody(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp CreateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Reservation == nil || resp.Reservation.ID != "R_abc" {
		t.Errorf("expected reservation R_abc in response, got %+v", resp.Reservation)
	}
	if !resp.EmailSent {
		t.Error("expected email_sent true")
	}
	if resp.Message == "" {
		t.Error("expected non-empty message")
	}
}

func TestCreateMalformedJSON(t *testing.T) {
	router := newRouter(&mockReservationService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestCreateMapsServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing fields",
			err:        apperrors.MissingFields(map[string]any{"check_in": "is required"}),
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeMissingFields,
		},
		{
			name:       "cabin not found",
			err:        apperrors.NotFoundWithID("cabin", "nope"),
			wantStatus: http.StatusNotFound,
			wantCode:   apperrors.CodeNotFound,
		},
		{
			name:       "overlap conflict",
			err:        apperrors.Conflict("Cabin is already booked"),
			wantStatus: http.StatusConflict,
			wantCode:   apperrors.CodeConflict,
		},
		{
			name:       "storage failure",
			err:        apperrors.Internal("failed to store reservation", nil),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apperrors.CodeInternal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newRouter(&mockReservationService{createErr: tc.err})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", createBody(t))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.wantStatus, rec.Code, rec.Body.String())
			}

			var errResp struct {
				Code string `json:"code"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if errResp.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, errResp.Code)
			}
		})
	}
}

func TestListReturnsLegacyKey(t *testing.T) {
	svc := &mockReservationService{
		listResult: []model.Reservation{
			{ID: "R_1", UserID: "user-1"},
			{ID: "R_2", UserID: "user-2"},
		},
	}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	raw, ok := resp["reservas"]
	if !ok {
		t.Fatalf("expected reservas key in response, got keys %v", resp)
	}
	var reservations []model.Reservation
	if err := json.Unmarshal(raw, &reservations); err != nil {
		t.Fatalf("failed to decode reservations: %v", err)
	}
	if len(reservations) != 2 {
		t.Errorf("expected 2 reservations, got %d", len(reservations))
	}
}

func TestListPassesUserIDFilter(t *testing.T) {
	svc := &mockReservationService{listResult: []model.Reservation{}}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations?user_id=user-7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if svc.listUserID != "user-7" {
		t.Errorf("expected user_id filter user-7, got %q", svc.listUserID)
	}
}

func TestListEmptyIsArrayNotNull(t *testing.T) {
	router := newRouter(&mockReservationService{listResult: []model.Reservation{}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if !bytes.Contains(rec.Body.Bytes(), []byte(`"reservas":[]`)) {
		t.Errorf("expected empty array for reservas, got %s", rec.Body.String())
	}
}
