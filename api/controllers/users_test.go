package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/xomware/xomware-backend/api/middleware"
	"github.com/xomware/xomware-backend/internal/users"
	"github.com/xomware/xomware-backend/pkg/pagination"
)

type stubUsersService struct {
	me        *users.UserDTO
	meErr     error
	page      *users.Page
	listErr   error
	gotParams pagination.Params
}

func (s *stubUsersService) Me(_ context.Context, _ uuid.UUID) (*users.UserDTO, error) {
	return s.me, s.meErr
}

func (s *stubUsersService) List(_ context.Context, params pagination.Params) (*users.Page, error) {
	s.gotParams = params
	return s.page, s.listErr
}

func TestUsersMeSuccess(t *testing.T) {
	userID := uuid.New()
	svc := &stubUsersService{me: &users.UserDTO{ID: userID, Email: "me@xomware.com"}}
	handler := UsersMe(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload struct {
		Success bool          `json:"success"`
		Data    users.UserDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !payload.Success || payload.Data.ID != userID {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestUsersMeWithoutIdentity(t *testing.T) {
	handler := UsersMe(&stubUsersService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestUsersListRequiresAdmin(t *testing.T) {
	handler := UsersList(&stubUsersService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req = req.WithContext(middleware.WithRole(req.Context(), "member"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestUsersListPassesPaginationParams(t *testing.T) {
	svc := &stubUsersService{page: &users.Page{Users: []users.UserDTO{}}}
	handler := UsersList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?limit=5&cursor=abc", nil)
	req = req.WithContext(middleware.WithRole(req.Context(), "admin"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotParams.Limit != 5 || svc.gotParams.Cursor != "abc" {
		t.Fatalf("unexpected params %+v", svc.gotParams)
	}
}

func TestUsersListRejectsBadLimit(t *testing.T) {
	handler := UsersList(&stubUsersService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?limit=bogus", nil)
	req = req.WithContext(middleware.WithRole(req.Context(), "admin"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
